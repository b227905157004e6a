package main

import "fmt"

type RmCmd struct {
	Title string `arg:"" help:"Exact movie title"`
}

func (cmd *RmCmd) Run(g *Globals) error {
	if err := g.Cat.DeleteMovie(cmd.Title); err != nil {
		return err
	}

	fmt.Fprintf(g.Out, "Movie %q has been deleted.\n", cmd.Title)
	return nil
}
