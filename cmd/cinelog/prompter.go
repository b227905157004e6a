package main

import (
	"strings"

	"cinelog/internal/ui"

	"github.com/charmbracelet/huh"
)

type huhPrompter struct {
	theme *huh.Theme
}

func newHuhPrompter() *huhPrompter {
	return &huhPrompter{theme: ui.WizardTheme()}
}

func (p *huhPrompter) Choose(title string, items []menuItem) (string, error) {
	options := make([]huh.Option[string], len(items))
	for i, item := range items {
		options[i] = huh.NewOption(item.Key+". "+item.Label, item.Key)
	}

	var key string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Value(&key),
		),
	).WithTheme(p.theme)

	if err := form.Run(); err != nil {
		return "", err
	}
	return key, nil
}

func (p *huhPrompter) Input(prompt string) (string, error) {
	var value string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(prompt).
				Value(&value),
		),
	).WithTheme(p.theme)

	if err := form.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}
