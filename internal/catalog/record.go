package catalog

import (
	"errors"
	"strings"
)

var ErrEmptyTitle = errors.New("movie title cannot be empty")

// Record is one movie. Title is the key; only Notes changes after creation.
type Record struct {
	Title     string
	Year      int
	Rating    float64
	PosterURL string
	Country   string
	IMDbID    string
	Notes     string
}

func (r Record) WithNotes(notes string) Record {
	newR := r
	newR.Notes = notes
	return newR
}

func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// FirstCountry returns the first entry of a comma separated country list.
func FirstCountry(country string) string {
	first, _, _ := strings.Cut(country, ",")
	return strings.TrimSpace(first)
}

// Collection maps titles to records and remembers insertion order.
// The zero value is an empty collection ready to use.
type Collection struct {
	records []Record
	index   map[string]int
}

func NewCollection(records ...Record) *Collection {
	c := &Collection{}
	for _, r := range records {
		c.Put(r)
	}
	return c
}

func (c *Collection) Len() int {
	return len(c.records)
}

func (c *Collection) Get(title string) (Record, bool) {
	i, ok := c.index[title]
	if !ok {
		return Record{}, false
	}
	return c.records[i], true
}

func (c *Collection) Has(title string) bool {
	_, ok := c.index[title]
	return ok
}

// Put stores r under r.Title. An existing entry keeps its position.
func (c *Collection) Put(r Record) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if i, ok := c.index[r.Title]; ok {
		c.records[i] = r
		return
	}
	c.index[r.Title] = len(c.records)
	c.records = append(c.records, r)
}

// Delete removes title and reports whether it was present.
func (c *Collection) Delete(title string) bool {
	i, ok := c.index[title]
	if !ok {
		return false
	}
	c.records = append(c.records[:i], c.records[i+1:]...)
	delete(c.index, title)
	for j := i; j < len(c.records); j++ {
		c.index[c.records[j].Title] = j
	}
	return true
}

func (c *Collection) Records() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

func (c *Collection) Titles() []string {
	titles := make([]string, len(c.records))
	for i, r := range c.records {
		titles[i] = r.Title
	}
	return titles
}
