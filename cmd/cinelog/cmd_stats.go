package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"cinelog/cmd/cinelog/render"
	"cinelog/internal/fsx"
	"cinelog/internal/rank"

	"charm.land/lipgloss/v2"
)

type StatsCmd struct{}

func (cmd *StatsCmd) Run(g *Globals) error {
	records, err := g.records()
	if err != nil {
		return err
	}

	view := render.StatsView{
		Count:   len(records),
		Average: rank.Average(records),
		Median:  rank.Median(records),
	}
	view.Best.Rating, view.Best.Titles = rank.Best(records)
	view.Worst.Rating, view.Worst.Titles = rank.Worst(records)

	_, err = lipgloss.Fprint(g.Out, g.Render.RenderStats(view))
	return err
}

type RandomCmd struct{}

func (cmd *RandomCmd) Run(g *Globals) error {
	records, err := g.records()
	if err != nil {
		return err
	}

	r, ok := rank.Random(records, g.Rand)
	if !ok {
		fmt.Fprintln(g.Out, "No movies found.")
		return nil
	}

	fmt.Fprintf(g.Out, "Your movie for tonight: %s, rated %s\n", r.Title, render.FormatRating(r.Rating))
	return nil
}

type SortedCmd struct{}

func (cmd *SortedCmd) Run(g *Globals) error {
	records, err := g.records()
	if err != nil {
		return err
	}

	view := listView("Movies sorted by rating", rank.SortByRating(records))
	_, err = lipgloss.Fprint(g.Out, g.Render.RenderMovieList(view))
	return err
}

type HistogramCmd struct {
	Bins   int    `short:"n" default:"10" help:"Number of rating buckets"`
	Output string `short:"o" help:"Also save the bucket table as CSV to this file"`
}

func (cmd *HistogramCmd) Run(g *Globals) error {
	records, err := g.records()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(g.Out, "No movies found.")
		return nil
	}

	buckets := rank.Histogram(records, cmd.Bins)
	bars := make([]render.HistogramBar, len(buckets))
	for i, b := range buckets {
		bars[i] = render.HistogramBar{Low: b.Low, High: b.High, Count: b.Count}
	}

	if _, err := lipgloss.Fprint(g.Out, g.Render.RenderHistogram(render.HistogramView{Bars: bars})); err != nil {
		return err
	}
	if cmd.Output == "" {
		return nil
	}

	if err := saveHistogram(cmd.Output, buckets); err != nil {
		return fmt.Errorf("failed to save histogram: %w", err)
	}
	fmt.Fprintf(g.Out, "Histogram saved to %s\n", cmd.Output)
	return nil
}

func saveHistogram(path string, buckets []rank.Bucket) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"low", "high", "count"})
	for _, b := range buckets {
		_ = w.Write([]string{
			strconv.FormatFloat(b.Low, 'f', -1, 64),
			strconv.FormatFloat(b.High, 'f', -1, 64),
			strconv.Itoa(b.Count),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return fsx.WriteFileAtomic(path, buf.Bytes(), 0o644)
}
