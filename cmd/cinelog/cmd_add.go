package main

import (
	"errors"
	"fmt"
	"strconv"

	"cinelog/cmd/cinelog/render"
	"cinelog/internal/catalog"
	"cinelog/internal/lookup"
	"cinelog/internal/ui"

	"charm.land/lipgloss/v2"
)

type AddCmd struct {
	Title string `arg:"" help:"Movie title to look up"`
}

func (cmd *AddCmd) Run(g *Globals) error {
	r, err := g.Cat.AddMovie(g.context(), cmd.Title)
	if err != nil {
		if handleAddError(g, cmd.Title, err) {
			return nil
		}
		return err
	}

	_, err = lipgloss.Fprint(g.Out, ui.RenderCard("Added "+r.Title, []ui.Field{
		{Label: "Year", Value: yearString(r.Year)},
		{Label: "Rating", Value: render.FormatRating(r.Rating)},
		{Label: "Country", Value: r.Country},
		{Label: "IMDb", Value: r.IMDbID},
	}))
	return err
}

// handleAddError prints the outcomes of an add that are answers rather than
// failures. It reports whether err was handled.
func handleAddError(g *Globals, title string, err error) bool {
	var dup *catalog.DuplicateCandidateError
	switch {
	case errors.As(err, &dup):
		msg := fmt.Sprintf("Movie %q or similar already exists. To add another movie, enter its full title", dup.Title)
		_, _ = lipgloss.Fprint(g.Out, ui.RenderList(msg, dup.Matches))
		return true
	case errors.Is(err, lookup.ErrNotFound):
		fmt.Fprintf(g.Out, "Movie %q not found on OMDb.\n", title)
		return true
	}
	return false
}

func yearString(year int) string {
	if year == 0 {
		return ""
	}
	return strconv.Itoa(year)
}
