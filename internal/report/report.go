// Package report renders the catalog as a static HTML page.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"strings"

	"cinelog/internal/catalog"
	"cinelog/internal/fsx"

	"github.com/biter777/countries"
)

const (
	GridPlaceholder  = "__TEMPLATE_MOVIE_GRID__"
	TitlePlaceholder = "__TEMPLATE_TITLE__"

	imdbTitleURL = "https://www.imdb.com/title/"
)

const starSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" fill="currentColor" class="bi bi-star-fill" viewBox="0 0 24 24">` +
	`<path d="M12 17.27l4.15 2.51c.76.46 1.69-.22 1.49-1.08l-1.1-4.72 3.67-3.18c.67-.58.31-1.68-.57-1.75l-4.83-.41-1.89-4.46c-.34-.81-1.5-.81-1.84 0L9.19 8.63l-4.83.41c-.88.07-1.24 1.17-.57 1.75l3.67 3.18-1.1 4.72c-.2.86.73 1.54 1.49 1.08l4.15-2.5z"/>` +
	`</svg>`

var movieTemplate = template.Must(template.New("movie").Parse(`<li>
    <div class="movie">
        <a href="` + imdbTitleURL + `{{.IMDbID}}" target="_blank">
            <img class="movie-poster" src="{{.PosterURL}}"{{if .Notes}} title="{{.Notes}}"{{end}}>
        </a>
{{- if .Flag}}
        <img class="movie-country-flag" title="{{.Country}}" src="https://flagsapi.com/{{.Flag}}/shiny/24.png">
{{- end}}
        <div class="movie-title">{{.Title}}</div>
        <div class="movie-year">{{.Year}}</div>
        <div class="movie-rating" title="{{.Rating}}">{{.Stars}}</div>
    </div>
</li>
`))

type movieView struct {
	catalog.Record
	Flag  string
	Stars template.HTML
}

// StarCount maps a 0-10 rating onto one to five stars.
func StarCount(rating float64) int {
	switch {
	case rating >= 9:
		return 5
	case rating >= 7:
		return 4
	case rating >= 4.6:
		return 3
	case rating >= 2.3:
		return 2
	default:
		return 1
	}
}

// CountryCode returns the ISO 3166-1 alpha-2 code for a country name, or ""
// when the name is not recognised.
func CountryCode(name string) string {
	if strings.TrimSpace(name) == "" {
		return ""
	}
	code := countries.ByName(name)
	if !code.IsValid() {
		return ""
	}
	return code.Alpha2()
}

// Grid renders one list item per record, in listing order.
func Grid(records []catalog.Record) (string, error) {
	var buf bytes.Buffer
	for _, r := range records {
		view := movieView{
			Record: r,
			Flag:   CountryCode(r.Country),
			Stars:  template.HTML(strings.Repeat(starSVG, StarCount(r.Rating))),
		}
		if err := movieTemplate.Execute(&buf, view); err != nil {
			return "", fmt.Errorf("failed to render %q: %w", r.Title, err)
		}
	}
	return buf.String(), nil
}

// Render substitutes the movie grid and the escaped page title into tmpl.
func Render(tmpl []byte, records []catalog.Record, title string) ([]byte, error) {
	grid, err := Grid(records)
	if err != nil {
		return nil, err
	}
	r := strings.NewReplacer(
		GridPlaceholder, grid,
		TitlePlaceholder, template.HTMLEscapeString(title),
	)
	return []byte(r.Replace(string(tmpl))), nil
}

// Generate reads the template at templatePath and atomically writes the
// rendered page to outputPath.
func Generate(templatePath, outputPath string, records []catalog.Record, title string) error {
	tmpl, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}

	page, err := Render(tmpl, records, title)
	if err != nil {
		return err
	}

	if err := fsx.WriteFileAtomic(outputPath, page, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
