package main

import "fmt"

type NotesCmd struct {
	Title string `arg:"" help:"Exact movie title"`
	Notes string `arg:"" optional:"" help:"New notes (empty clears them)"`
}

func (cmd *NotesCmd) Run(g *Globals) error {
	if err := g.Cat.UpdateNotes(cmd.Title, cmd.Notes); err != nil {
		return err
	}

	fmt.Fprintf(g.Out, "Notes updated for movie %q.\n", cmd.Title)
	return nil
}
