package main

import (
	"fmt"

	"cinelog/internal/rank"
	"cinelog/internal/ui"

	"charm.land/lipgloss/v2"
)

type SearchCmd struct {
	Term string `arg:"" help:"Title to look for"`
}

func (cmd *SearchCmd) Run(g *Globals) error {
	records, err := g.records()
	if err != nil {
		return err
	}

	res := rank.Search(records, cmd.Term)
	switch {
	case res.Exact:
		fmt.Fprintf(g.Out, "Movie %q found with exact match.\n", res.Matches[0].Title)
	case len(res.Matches) == 0:
		fmt.Fprintf(g.Out, "No results found for %q.\n", cmd.Term)
	default:
		titles := make([]string, len(res.Matches))
		for i, m := range res.Matches {
			titles[i] = m.Title
		}
		msg := fmt.Sprintf("The movie %q does not exist. Did you mean", cmd.Term)
		_, err = lipgloss.Fprint(g.Out, ui.RenderList(msg, titles))
	}
	return err
}
