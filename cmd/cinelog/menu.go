package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

var errExit = errors.New("exit requested")

type menuItem struct {
	Key     string
	Label   string
	Handler func(g *Globals, p Prompter) error
}

// Prompter asks the user for a menu choice or a line of input. Both return
// huh.ErrUserAborted when the user cancels.
type Prompter interface {
	Choose(title string, items []menuItem) (string, error)
	Input(prompt string) (string, error)
}

func defaultMenu() []menuItem {
	return []menuItem{
		{Key: "0", Label: "Exit", Handler: func(*Globals, Prompter) error { return errExit }},
		{Key: "1", Label: "List movies", Handler: func(g *Globals, _ Prompter) error {
			return (&ListCmd{}).Run(g)
		}},
		{Key: "2", Label: "Add movie", Handler: func(g *Globals, p Prompter) error {
			title, err := p.Input("Please enter a movie name")
			if err != nil {
				return err
			}
			return (&AddCmd{Title: title}).Run(g)
		}},
		{Key: "3", Label: "Delete movie", Handler: func(g *Globals, p Prompter) error {
			title, err := p.Input("Please enter a movie name")
			if err != nil {
				return err
			}
			return (&RmCmd{Title: title}).Run(g)
		}},
		{Key: "4", Label: "Update movie notes", Handler: func(g *Globals, p Prompter) error {
			title, err := p.Input("Enter movie name")
			if err != nil {
				return err
			}
			notes, err := p.Input(fmt.Sprintf("Enter movie notes for %q", title))
			if err != nil {
				return err
			}
			return (&NotesCmd{Title: title, Notes: notes}).Run(g)
		}},
		{Key: "5", Label: "Stats", Handler: func(g *Globals, _ Prompter) error {
			return (&StatsCmd{}).Run(g)
		}},
		{Key: "6", Label: "Random movie", Handler: func(g *Globals, _ Prompter) error {
			return (&RandomCmd{}).Run(g)
		}},
		{Key: "7", Label: "Search movie", Handler: func(g *Globals, p Prompter) error {
			term, err := p.Input("Enter the title of the movie to search for")
			if err != nil {
				return err
			}
			return (&SearchCmd{Term: term}).Run(g)
		}},
		{Key: "8", Label: "Movies sorted by rating", Handler: func(g *Globals, _ Prompter) error {
			return (&SortedCmd{}).Run(g)
		}},
		{Key: "9", Label: "Rating histogram", Handler: func(g *Globals, _ Prompter) error {
			return (&HistogramCmd{Bins: 10}).Run(g)
		}},
		{Key: "10", Label: "Generate website", Handler: func(g *Globals, _ Prompter) error {
			return (&ReportCmd{}).Run(g)
		}},
	}
}

// runMenu dispatches choices until Exit or an abort at the menu prompt. A
// failing handler is reported and the loop continues.
func runMenu(g *Globals, p Prompter, items []menuItem) error {
	handlers := make(map[string]menuItem, len(items))
	for _, item := range items {
		handlers[item.Key] = item
	}

	for {
		key, err := p.Choose("Menu", items)
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return err
		}

		item, ok := handlers[strings.TrimSpace(key)]
		if !ok {
			fmt.Fprintf(g.Out, "Invalid choice %q.\n\n", key)
			continue
		}

		err = item.Handler(g, p)
		switch {
		case errors.Is(err, errExit):
			fmt.Fprintln(g.Out, "Bye!")
			return nil
		case errors.Is(err, huh.ErrUserAborted):
		case err != nil:
			fmt.Fprintf(g.Out, "Error: %v\n", err)
		}
		fmt.Fprintln(g.Out)
	}
}

type MenuCmd struct{}

func (cmd *MenuCmd) Run(g *Globals) error {
	fmt.Fprintln(g.Out, "********** My Movies Database **********")
	fmt.Fprintln(g.Out)
	return runMenu(g, g.Prompter, defaultMenu())
}
