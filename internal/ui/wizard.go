package ui

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	activeSymbol   = "◆"
	completeSymbol = "◇"
	separator      = " · "
	borderTop      = "┌"
	borderSide     = "│"
	borderBottom   = "└"
	bulletSymbol   = "•"
)

func WizardTheme() *huh.Theme {
	t := huh.ThemeBase()
	red := lipgloss.Color("1")
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.SetString("✗").Foreground(red)
	t.Blurred.ErrorMessage = t.Blurred.ErrorMessage.SetString("✗").Foreground(red)
	return t
}

type Field struct {
	Label string
	Value string
}

func borderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
}

// RenderCard draws a bordered block headed by title. Fields without a value
// are left out.
func RenderCard(title string, fields []Field) string {
	var b strings.Builder
	border := borderStyle()

	writeHeader(&b, border, completeSymbol+" "+title)
	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		b.WriteString(border.Render(borderSide))
		b.WriteString(" ")
		b.WriteString(f.Label)
		b.WriteString(separator)
		b.WriteString(f.Value)
		b.WriteString("\n")
	}
	writeFooter(&b, border)

	return b.String()
}

// RenderList draws a bordered block with one bullet per item, used for
// conflicts and suggestions.
func RenderList(title string, items []string) string {
	var b strings.Builder
	border := borderStyle()

	writeHeader(&b, border, activeSymbol+" "+title)
	for _, item := range items {
		b.WriteString(border.Render(borderSide))
		b.WriteString(" ")
		b.WriteString(bulletSymbol)
		b.WriteString(" ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	writeFooter(&b, border)

	return b.String()
}

func writeHeader(b *strings.Builder, border lipgloss.Style, title string) {
	b.WriteString(border.Render(borderTop))
	b.WriteString(" ")
	b.WriteString(title)
	b.WriteString("\n")

	b.WriteString(border.Render(borderSide))
	b.WriteString("\n")
}

func writeFooter(b *strings.Builder, border lipgloss.Style) {
	b.WriteString(border.Render(borderBottom))
	b.WriteString("\n")
}
