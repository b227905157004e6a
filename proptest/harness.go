package proptest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"cinelog/internal/catalog"
	"cinelog/internal/lookup"

	"pgregory.net/rapid"
)

const (
	minMovies        = 0
	typicalMinMovies = 1
	typicalMaxMovies = 10
	maxMovies        = 20
)

type Harness struct {
	T   *rapid.T
	Dir string
}

func (h *Harness) GenRecord() catalog.Record {
	return recordGen().Draw(h.T, "record")
}

type StoreHarness struct {
	Harness
	Kind  catalog.Kind
	Path  string
	Store catalog.Store
}

// Reopen returns a fresh Store over the same file.
func (h *StoreHarness) Reopen() catalog.Store {
	s, err := catalog.Open(h.Kind, h.Path)
	if err != nil {
		h.T.Fatalf("failed to reopen %s store: %v", h.Kind, err)
	}
	return s
}

// AddRecords adds between minCount and maxCount records with distinct titles
// and returns them in insertion order.
func (h *StoreHarness) AddRecords(minCount, maxCount int) []catalog.Record {
	n := rapid.IntRange(minCount, maxCount).Draw(h.T, "numRecords")
	seen := make(map[string]bool)
	var added []catalog.Record
	for range n {
		r := h.GenRecord()
		if seen[r.Title] {
			continue
		}
		if err := h.Store.Add(r); err != nil {
			h.T.Fatalf("failed to add %q: %v", r.Title, err)
		}
		seen[r.Title] = true
		added = append(added, r)
	}
	return added
}

func (h *StoreHarness) MustList() []catalog.Record {
	c, err := h.Store.List()
	if err != nil {
		h.T.Fatalf("failed to list %s store: %v", h.Kind, err)
	}
	return c.Records()
}

// RunWithStore runs fn against a fresh store of every kind.
func RunWithStore(t *testing.T, fn func(h *StoreHarness)) {
	for _, kind := range catalog.Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			tempDir := t.TempDir()
			rapid.Check(t, func(rt *rapid.T) {
				iterDir := newIterDir(rt, tempDir)
				path := filepath.Join(iterDir, "movies."+string(kind))

				s, err := catalog.Open(kind, path)
				if err != nil {
					rt.Fatalf("failed to open %s store: %v", kind, err)
				}

				fn(&StoreHarness{
					Harness: Harness{T: rt, Dir: iterDir},
					Kind:    kind,
					Path:    path,
					Store:   s,
				})
			})
		})
	}
}

func RunBasic(t *testing.T, fn func(h *Harness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		fn(&Harness{T: rt, Dir: newIterDir(rt, tempDir)})
	})
}

func newIterDir(rt *rapid.T, tempDir string) string {
	iterDir, err := os.MkdirTemp(tempDir, "iter-")
	if err != nil {
		rt.Fatalf("failed to create iter dir: %v", err)
	}
	return iterDir
}

// finderFunc adapts a function to catalog.Finder.
type finderFunc func(ctx context.Context, title string) (lookup.Movie, error)

func (f finderFunc) Find(ctx context.Context, title string) (lookup.Movie, error) {
	return f(ctx, title)
}

// echoFinder resolves every title to itself.
func echoFinder(rating float64) catalog.Finder {
	return finderFunc(func(_ context.Context, title string) (lookup.Movie, error) {
		return lookup.Movie{Title: title, Year: 2000, Rating: rating}, nil
	})
}
