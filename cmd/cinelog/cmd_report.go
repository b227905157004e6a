package main

import (
	"fmt"

	"cinelog/internal/config"
	"cinelog/internal/report"
)

type ReportCmd struct {
	Template string `help:"HTML template with __TEMPLATE_TITLE__ and __TEMPLATE_MOVIE_GRID__ placeholders"`
	Output   string `short:"o" help:"Where to write the generated page"`
	Title    string `help:"Page title"`
}

func (cmd *ReportCmd) Run(g *Globals) error {
	records, err := g.records()
	if err != nil {
		return err
	}

	tmpl, err := config.ExpandPath(firstNonEmpty(cmd.Template, g.Report.Template))
	if err != nil {
		return fmt.Errorf("invalid template path: %w", err)
	}
	out, err := config.ExpandPath(firstNonEmpty(cmd.Output, g.Report.Output))
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	title := firstNonEmpty(cmd.Title, g.Report.Title)

	if err := report.Generate(tmpl, out, records, title); err != nil {
		return err
	}

	fmt.Fprintf(g.Out, "Website was generated successfully: %s\n", out)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
