package main

import (
	"fmt"

	"charm.land/lipgloss/v2"
)

type ListCmd struct {
	Titles bool `short:"t" help:"Output only movie titles (one per line)"`
}

func (cmd *ListCmd) Run(g *Globals) error {
	records, err := g.records()
	if err != nil {
		return err
	}

	if cmd.Titles {
		for _, r := range records {
			fmt.Fprintln(g.Out, r.Title)
		}
		return nil
	}

	heading := fmt.Sprintf("%d movies in total", len(records))
	_, err = lipgloss.Fprint(g.Out, g.Render.RenderMovieList(listView(heading, records)))
	return err
}
