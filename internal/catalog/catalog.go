package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cinelog/internal/logging"
	"cinelog/internal/lookup"
)

var ErrDuplicateCandidate = errors.New("movie or similar already exists")

type DuplicateCandidateError struct {
	Title   string
	Matches []string
}

func (e *DuplicateCandidateError) Error() string {
	return fmt.Sprintf("movie %q or similar already exists: %s", e.Title, strings.Join(e.Matches, ", "))
}

func (e *DuplicateCandidateError) Is(target error) bool {
	return target == ErrDuplicateCandidate
}

// Finder resolves a title to movie metadata from an external source.
type Finder interface {
	Find(ctx context.Context, title string) (lookup.Movie, error)
}

// Catalog enforces title rules on top of a Store. It never looks at the
// concrete store type.
type Catalog struct {
	store  Store
	finder Finder
}

func New(store Store, finder Finder) *Catalog {
	return &Catalog{store: store, finder: finder}
}

func (c *Catalog) ListMovies() (*Collection, error) {
	return c.store.List()
}

// AddMovie rejects titles overlapping an existing one (case-insensitive
// substring either way), then stores the metadata found for title.
func (c *Catalog) AddMovie(ctx context.Context, title string) (Record, error) {
	title = strings.TrimSpace(title)
	if err := ValidateTitle(title); err != nil {
		return Record{}, err
	}

	movies, err := c.store.List()
	if err != nil {
		return Record{}, err
	}

	if matches := conflictingTitles(movies.Titles(), title); len(matches) > 0 {
		return Record{}, &DuplicateCandidateError{Title: title, Matches: matches}
	}

	if c.finder == nil {
		return Record{}, fmt.Errorf("%w: no metadata source configured", lookup.ErrUnavailable)
	}
	found, err := c.finder.Find(ctx, title)
	if err != nil {
		return Record{}, err
	}

	r := Record{
		Title:     strings.TrimSpace(found.Title),
		Year:      found.Year,
		Rating:    found.Rating,
		PosterURL: found.PosterURL,
		Country:   FirstCountry(found.Country),
		IMDbID:    found.IMDbID,
	}
	if r.Title == "" {
		r.Title = title
	}
	if movies.Has(r.Title) {
		return Record{}, &DuplicateCandidateError{Title: r.Title, Matches: []string{r.Title}}
	}

	if err := c.store.Add(r); err != nil {
		return Record{}, err
	}

	logging.Debug().Str("title", r.Title).Str("query", title).Int("year", r.Year).Msg("movie added")
	return r, nil
}

func (c *Catalog) DeleteMovie(title string) error {
	if err := c.requirePresent(title); err != nil {
		return err
	}
	if err := c.store.Delete(title); err != nil {
		return err
	}

	logging.Debug().Str("title", title).Msg("movie deleted")
	return nil
}

func (c *Catalog) UpdateNotes(title, notes string) error {
	if err := c.requirePresent(title); err != nil {
		return err
	}
	if err := c.store.UpdateNotes(title, notes); err != nil {
		return err
	}

	logging.Debug().Str("title", title).Int("notes_len", len(notes)).Msg("movie notes updated")
	return nil
}

func (c *Catalog) requirePresent(title string) error {
	movies, err := c.store.List()
	if err != nil {
		return err
	}
	if !movies.Has(title) {
		return fmt.Errorf("%w: %q", ErrNotFound, title)
	}
	return nil
}

func conflictingTitles(existing []string, title string) []string {
	query := strings.ToLower(title)
	var matches []string
	for _, t := range existing {
		lower := strings.ToLower(t)
		if lower == "" {
			continue
		}
		if strings.Contains(lower, query) || strings.Contains(query, lower) {
			matches = append(matches, t)
		}
	}
	return matches
}
