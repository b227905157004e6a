package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"cinelog/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "title,rating,year,poster_url,country,imdb_id,notes\n"

func newTestTableStore(t *testing.T, content string) (*catalog.TableStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.csv")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	s, err := catalog.NewTableStore(path)
	require.NoError(t, err)
	return s, path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestTableStore_New(t *testing.T) {
	t.Run("creates a header-only file", func(t *testing.T) {
		_, path := newTestTableStore(t, "")

		assert.Equal(t, header, readFile(t, path))
	})
}

func TestTableStore_Add(t *testing.T) {
	t.Run("appends one row per new title", func(t *testing.T) {
		s, path := newTestTableStore(t, "")

		require.NoError(t, s.Add(catalog.Record{Title: "Heat", Rating: 8.3, Year: 1995}))
		require.NoError(t, s.Add(catalog.Record{Title: "Alien", Rating: 8.5, Year: 1979, Notes: "a, b"}))

		expected := header +
			"Heat,8.3,1995,,,,\n" +
			"Alien,8.5,1979,,,,\"a, b\"\n"
		assert.Equal(t, expected, readFile(t, path))
	})

	t.Run("starts a new line when the file lacks a trailing newline", func(t *testing.T) {
		s, path := newTestTableStore(t, header+"Heat,8.3,1995,,,,")

		require.NoError(t, s.Add(catalog.Record{Title: "Alien", Rating: 8.5, Year: 1979}))

		assert.Equal(t, header+"Heat,8.3,1995,,,,\nAlien,8.5,1979,,,,\n", readFile(t, path))
	})

	t.Run("writes the header into an emptied file", func(t *testing.T) {
		s, path := newTestTableStore(t, "")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		require.NoError(t, s.Add(catalog.Record{Title: "Heat", Rating: 8.3, Year: 1995}))

		assert.Equal(t, header+"Heat,8.3,1995,,,,\n", readFile(t, path))
	})

	t.Run("writes the header into a blank file", func(t *testing.T) {
		s, path := newTestTableStore(t, "\n")

		require.NoError(t, s.Add(catalog.Record{Title: "Heat", Rating: 8.3, Year: 1995}))

		assert.Equal(t, header+"Heat,8.3,1995,,,,\n", readFile(t, path))
		c, err := s.List()
		require.NoError(t, err)
		assert.Equal(t, []string{"Heat"}, c.Titles())
	})

	t.Run("reordered header keeps every field in its column", func(t *testing.T) {
		s, path := newTestTableStore(t, "title,rating,year,country,poster_url,imdb_id,notes\nAlien,8.5,1979,United Kingdom,,tt0078748,\n")
		heat := catalog.Record{Title: "Heat", Rating: 8.3, Year: 1995, PosterURL: "http://p/h.jpg", Country: "United States"}

		require.NoError(t, s.Add(heat))

		c, err := s.List()
		require.NoError(t, err)
		got, ok := c.Get("Heat")
		require.True(t, ok)
		assert.Equal(t, heat, got)
		alien, ok := c.Get("Alien")
		require.True(t, ok)
		assert.Equal(t, "United Kingdom", alien.Country)
		assert.Equal(t, header+"Alien,8.5,1979,,United Kingdom,tt0078748,\nHeat,8.3,1995,http://p/h.jpg,United States,,\n", readFile(t, path))
	})

	t.Run("existing title is rewritten rather than appended", func(t *testing.T) {
		s, path := newTestTableStore(t, "")
		require.NoError(t, s.Add(catalog.Record{Title: "Heat", Rating: 8.3, Year: 1995}))

		require.NoError(t, s.Add(catalog.Record{Title: "Heat", Rating: 9, Year: 1995}))

		assert.Equal(t, header+"Heat,9,1995,,,,\n", readFile(t, path))
	})
}

func TestTableStore_Delete(t *testing.T) {
	t.Run("rewrites the file without the row", func(t *testing.T) {
		s, path := newTestTableStore(t, header+"Heat,8.3,1995,,,,\nAlien,8.5,1979,,,,\n")

		require.NoError(t, s.Delete("Heat"))

		assert.Equal(t, header+"Alien,8.5,1979,,,,\n", readFile(t, path))
	})

	t.Run("absent title leaves the file byte-identical", func(t *testing.T) {
		content := "title,rating,year,poster_url,country,imdb_id,notes\nHeat,8.30,1995,,,,\n"
		s, path := newTestTableStore(t, content)

		require.NoError(t, s.Delete("Alien"))
		require.NoError(t, s.UpdateNotes("Alien", "x"))

		assert.Equal(t, content, readFile(t, path))
	})
}

func TestTableStore_List(t *testing.T) {
	t.Run("reads columns by header name", func(t *testing.T) {
		s, _ := newTestTableStore(t, "notes,imdb_id,country,poster_url,year,rating,title\nok,tt1,France,,2001,7.5,Amelie\n")

		c, err := s.List()

		require.NoError(t, err)
		got, ok := c.Get("Amelie")
		require.True(t, ok)
		assert.Equal(t, catalog.Record{Title: "Amelie", Year: 2001, Rating: 7.5, Country: "France", IMDbID: "tt1", Notes: "ok"}, got)
	})

	t.Run("header-only file lists nothing", func(t *testing.T) {
		s, _ := newTestTableStore(t, header)

		c, err := s.List()

		require.NoError(t, err)
		assert.Equal(t, 0, c.Len())
	})

	tests := []struct {
		name    string
		content string
	}{
		{name: "missing column", content: "title,rating,year\nHeat,8.3,1995\n"},
		{name: "short row", content: header + "Heat,8.3\n"},
		{name: "invalid rating", content: header + "Heat,high,1995,,,,\n"},
		{name: "invalid year", content: header + "Heat,8.3,1995.5,,,,\n"},
		{name: "unterminated quote", content: header + "\"Heat,8.3,1995,,,,\n"},
	}
	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			s, _ := newTestTableStore(t, tt.content)

			_, err := s.List()

			assert.ErrorIs(t, err, catalog.ErrStorageCorrupt)
		})
	}
}
