package main

import (
	"context"
	"io"
	"math/rand/v2"

	"cinelog/cmd/cinelog/render"
	"cinelog/internal/catalog"
	"cinelog/internal/config"
)

type Globals struct {
	Ctx      context.Context
	Cat      *catalog.Catalog
	Out      io.Writer
	Render   render.Renderer
	Prompter Prompter
	Report   config.ReportConfig
	// Rand is nil outside tests.
	Rand *rand.Rand
}

func (g *Globals) context() context.Context {
	if g.Ctx == nil {
		return context.Background()
	}
	return g.Ctx
}

func (g *Globals) records() ([]catalog.Record, error) {
	movies, err := g.Cat.ListMovies()
	if err != nil {
		return nil, err
	}
	return movies.Records(), nil
}

func listView(heading string, records []catalog.Record) render.MovieListView {
	items := make([]render.MovieListItem, len(records))
	for i, r := range records {
		items[i] = render.MovieListItem{
			Title:  r.Title,
			Year:   r.Year,
			Rating: r.Rating,
			Notes:  r.Notes,
		}
	}
	return render.MovieListView{Heading: heading, Items: items}
}
