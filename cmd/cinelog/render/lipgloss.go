package render

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/term"
)

const (
	barGlyph      = "█"
	minBarWidth   = 10
	histogramGaps = 4
)

type LipglossRenderer struct {
	width int

	titleStyle lipgloss.Style
	metaStyle  lipgloss.Style
	notesStyle lipgloss.Style
	labelStyle lipgloss.Style
	barStyle   lipgloss.Style
	bestStyle  lipgloss.Style
	worstStyle lipgloss.Style
}

func NewLipglossRenderer(width int) *LipglossRenderer {
	return &LipglossRenderer{
		width:      width,
		titleStyle: lipgloss.NewStyle().Bold(true),
		metaStyle:  lipgloss.NewStyle().Faint(true),
		notesStyle: lipgloss.NewStyle().Italic(true).Faint(true),
		labelStyle: lipgloss.NewStyle().Faint(true),
		barStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		bestStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		worstStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(width)
}

func (r *LipglossRenderer) RenderMovieList(view MovieListView) string {
	if view.IsEmpty() {
		return "No movies found.\n"
	}

	var sb strings.Builder
	if view.Heading != "" {
		sb.WriteString(view.Heading)
		sb.WriteString("\n\n")
	}
	for i, item := range view.Items {
		sb.WriteString(r.renderItem(item, i == len(view.Items)-1))
	}
	sb.WriteString("\n")
	return sb.String()
}

func (r *LipglossRenderer) renderItem(item MovieListItem, last bool) string {
	title := r.titleStyle.Render(item.Title)
	meta := r.metaStyle.Render(formatMeta(item))

	padding := max(1, r.width-lipgloss.Width(title)-lipgloss.Width(meta))
	lines := []string{title + strings.Repeat(" ", padding) + meta}
	if item.Notes != "" {
		lines = append(lines, r.notesStyle.Render("  "+item.Notes))
	}
	if !last {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n") + "\n"
}

func formatMeta(item MovieListItem) string {
	meta := "Rating " + FormatRating(item.Rating)
	if item.Year > 0 {
		meta += " · " + strconv.Itoa(item.Year)
	}
	return meta
}

// FormatRating prints a rating with the fewest digits that round-trip.
func FormatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', -1, 64)
}

func (r *LipglossRenderer) RenderStats(view StatsView) string {
	if view.Count == 0 {
		return "No movies found.\n"
	}

	var sb strings.Builder
	r.writeStat(&sb, "Movies", strconv.Itoa(view.Count))
	r.writeStat(&sb, "Average rating", strconv.FormatFloat(view.Average, 'f', 2, 64))
	r.writeStat(&sb, "Median rating", FormatRating(view.Median))
	r.writeStat(&sb, "Best movie(s) by rating ("+FormatRating(view.Best.Rating)+")",
		r.bestStyle.Render(strings.Join(view.Best.Titles, ", ")))
	r.writeStat(&sb, "Worst movie(s) by rating ("+FormatRating(view.Worst.Rating)+")",
		r.worstStyle.Render(strings.Join(view.Worst.Titles, ", ")))
	return sb.String()
}

func (r *LipglossRenderer) writeStat(sb *strings.Builder, label, value string) {
	sb.WriteString(r.labelStyle.Render(label + ":"))
	sb.WriteString(" ")
	sb.WriteString(value)
	sb.WriteString("\n")
}

func (r *LipglossRenderer) RenderHistogram(view HistogramView) string {
	if len(view.Bars) == 0 {
		return "No movies found.\n"
	}

	maxCount := 0
	labelWidth := 0
	for _, b := range view.Bars {
		maxCount = max(maxCount, b.Count)
		labelWidth = max(labelWidth, len(bucketLabel(b)))
	}
	countWidth := len(strconv.Itoa(maxCount))
	barWidth := max(minBarWidth, r.width-labelWidth-countWidth-histogramGaps)

	var sb strings.Builder
	for _, b := range view.Bars {
		length := 0
		if maxCount > 0 {
			length = b.Count * barWidth / maxCount
		}
		label := fmt.Sprintf("%*s", labelWidth, bucketLabel(b))
		sb.WriteString(r.labelStyle.Render(label))
		sb.WriteString(" │ ")
		sb.WriteString(r.barStyle.Render(strings.Repeat(barGlyph, length)))
		if length > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(strconv.Itoa(b.Count))
		sb.WriteString("\n")
	}
	return sb.String()
}

func bucketLabel(b HistogramBar) string {
	return strconv.FormatFloat(b.Low, 'f', 1, 64) + "-" + strconv.FormatFloat(b.High, 'f', 1, 64)
}
