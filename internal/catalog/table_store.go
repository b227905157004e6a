package catalog

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"cinelog/internal/fsx"
)

var tableHeader = []string{"title", "rating", "year", "poster_url", "country", "imdb_id", "notes"}

// TableStore keeps one CSV row per record under a fixed header.
type TableStore struct {
	path string
}

func NewTableStore(path string) (*TableStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	s := &TableStore{path: path}

	exists, err := fsx.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if !exists {
		if err := s.rewrite(&Collection{}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *TableStore) Path() string {
	return s.path
}

func (s *TableStore) List() (*Collection, error) {
	c, _, err := s.load()
	return c, err
}

// Add appends a row for a new title. A title already present, or a file whose
// header is missing or in another column order, forces a full rewrite.
func (s *TableStore) Add(r Record) error {
	c, data, err := s.load()
	if err != nil {
		return err
	}

	if c.Has(r.Title) || !hasTableHeader(data) {
		c.Put(r)
		return s.rewrite(c)
	}

	var buf bytes.Buffer
	if data[len(data)-1] != '\n' {
		buf.WriteByte('\n')
	}
	w := csv.NewWriter(&buf)
	_ = w.Write(recordToRow(r))
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: failed to encode row: %w", ErrStorageUnavailable, err)
	}

	return s.appendBytes(buf.Bytes())
}

func (s *TableStore) Delete(title string) error {
	c, _, err := s.load()
	if err != nil {
		return err
	}
	if !c.Delete(title) {
		return nil
	}
	return s.rewrite(c)
}

func (s *TableStore) UpdateNotes(title, notes string) error {
	c, _, err := s.load()
	if err != nil {
		return err
	}
	r, ok := c.Get(title)
	if !ok {
		return nil
	}
	c.Put(r.WithNotes(notes))
	return s.rewrite(c)
}

func (s *TableStore) load() (*Collection, []byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to read %s: %w", ErrStorageUnavailable, s.path, err)
	}

	c, err := parseTable(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to parse csv file %q: %w", ErrStorageCorrupt, s.path, err)
	}
	return c, data, nil
}

func parseTable(data []byte) (*Collection, error) {
	c := &Collection{}
	if len(bytes.TrimSpace(data)) == 0 {
		return c, nil
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, err
	}

	columns := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		columns[name] = i
	}
	for _, name := range tableHeader {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("header is missing column %q", name)
		}
	}

	for n, row := range rows[1:] {
		line := n + 2
		field := func(name string) string { return row[columns[name]] }

		rating, err := strconv.ParseFloat(field("rating"), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid rating %q", line, field("rating"))
		}
		year, err := strconv.Atoi(field("year"))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid year %q", line, field("year"))
		}

		c.Put(Record{
			Title:     field("title"),
			Year:      year,
			Rating:    rating,
			PosterURL: field("poster_url"),
			Country:   field("country"),
			IMDbID:    field("imdb_id"),
			Notes:     field("notes"),
		})
	}
	return c, nil
}

// hasTableHeader reports whether data starts with tableHeader in its exact
// column order, the only layout a row can be appended to.
func hasTableHeader(data []byte) bool {
	row, err := csv.NewReader(bytes.NewReader(data)).Read()
	return err == nil && slices.Equal(row, tableHeader)
}

func recordToRow(r Record) []string {
	return []string{
		r.Title,
		strconv.FormatFloat(r.Rating, 'f', -1, 64),
		strconv.Itoa(r.Year),
		r.PosterURL,
		r.Country,
		r.IMDbID,
		r.Notes,
	}
}

func (s *TableStore) rewrite(c *Collection) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(tableHeader)
	for _, r := range c.Records() {
		_ = w.Write(recordToRow(r))
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: failed to encode csv: %w", ErrStorageUnavailable, err)
	}

	if err := fsx.WriteFileAtomic(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", ErrStorageUnavailable, s.path, err)
	}
	return nil
}

func (s *TableStore) appendBytes(b []byte) error {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("%w: failed to open %s: %w", ErrStorageUnavailable, s.path, err)
	}
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: failed to append to %s: %w", ErrStorageUnavailable, s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: failed to close %s: %w", ErrStorageUnavailable, s.path, err)
	}
	return nil
}
