package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inceptionResponse = `{
	"Title": "Inception",
	"Year": "2010",
	"imdbRating": "8.8",
	"Poster": "https://example.com/inception.jpg",
	"Country": "United States, United Kingdom",
	"imdbID": "tt1375666",
	"Response": "True"
}`

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestClient_Find(t *testing.T) {
	t.Run("parses a successful response", func(t *testing.T) {
		srv, _ := newTestServer(t, http.StatusOK, inceptionResponse)
		c := NewClient(Options{APIKey: "k", BaseURL: srv.URL})

		m, err := c.Find(context.Background(), "inception")

		require.NoError(t, err)
		assert.Equal(t, Movie{
			Title:     "Inception",
			Year:      2010,
			Rating:    8.8,
			PosterURL: "https://example.com/inception.jpg",
			Country:   "United States, United Kingdom",
			IMDbID:    "tt1375666",
		}, m)
	})

	t.Run("sends title and api key", func(t *testing.T) {
		var gotTitle, gotKey string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotTitle = r.URL.Query().Get("t")
			gotKey = r.URL.Query().Get("apikey")
			_, _ = w.Write([]byte(inceptionResponse))
		}))
		t.Cleanup(srv.Close)
		c := NewClient(Options{APIKey: "secret", BaseURL: srv.URL})

		_, err := c.Find(context.Background(), "The Thing")

		require.NoError(t, err)
		assert.Equal(t, "The Thing", gotTitle)
		assert.Equal(t, "secret", gotKey)
	})

	t.Run("false response maps to ErrNotFound", func(t *testing.T) {
		srv, _ := newTestServer(t, http.StatusOK, `{"Response":"False","Error":"Movie not found!"}`)
		c := NewClient(Options{APIKey: "k", BaseURL: srv.URL})

		_, err := c.Find(context.Background(), "zzzz")

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "Movie not found!")
	})

	t.Run("server error maps to ErrUnavailable", func(t *testing.T) {
		srv, _ := newTestServer(t, http.StatusInternalServerError, "boom")
		c := NewClient(Options{APIKey: "k", BaseURL: srv.URL})

		_, err := c.Find(context.Background(), "Heat")

		assert.ErrorIs(t, err, ErrUnavailable)
		var statusErr *HTTPStatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
		assert.NotContains(t, err.Error(), "apikey=k")
	})

	t.Run("undecodable body maps to ErrUnavailable", func(t *testing.T) {
		srv, _ := newTestServer(t, http.StatusOK, "<html>")
		c := NewClient(Options{APIKey: "k", BaseURL: srv.URL})

		_, err := c.Find(context.Background(), "Heat")

		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("missing api key fails before any request", func(t *testing.T) {
		srv, calls := newTestServer(t, http.StatusOK, inceptionResponse)
		c := NewClient(Options{BaseURL: srv.URL})

		_, err := c.Find(context.Background(), "Heat")

		assert.ErrorIs(t, err, ErrMissingAPIKey)
		assert.ErrorIs(t, err, ErrUnavailable)
		assert.Equal(t, int32(0), calls.Load())
	})

	t.Run("unreachable host maps to ErrUnavailable", func(t *testing.T) {
		srv, _ := newTestServer(t, http.StatusOK, inceptionResponse)
		url := srv.URL
		srv.Close()
		c := NewClient(Options{APIKey: "k", BaseURL: url})

		_, err := c.Find(context.Background(), "Heat")

		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("breaker opens after repeated failures", func(t *testing.T) {
		srv, calls := newTestServer(t, http.StatusBadGateway, "")
		c := NewClient(Options{APIKey: "k", BaseURL: srv.URL})

		for range 3 {
			_, err := c.Find(context.Background(), "Heat")
			require.ErrorIs(t, err, ErrUnavailable)
		}
		_, err := c.Find(context.Background(), "Heat")

		assert.ErrorIs(t, err, ErrUnavailable)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("not found answers do not open the breaker", func(t *testing.T) {
		srv, calls := newTestServer(t, http.StatusOK, `{"Response":"False","Error":"Movie not found!"}`)
		c := NewClient(Options{APIKey: "k", BaseURL: srv.URL})

		for range 5 {
			_, err := c.Find(context.Background(), "zzzz")
			require.ErrorIs(t, err, ErrNotFound)
		}

		assert.Equal(t, int32(5), calls.Load())
	})
}

func TestParseResponse(t *testing.T) {
	t.Run("series year range uses first year", func(t *testing.T) {
		m, err := parseResponse([]byte(`{"Response":"True","Title":"Dark","Year":"2017–2020","imdbRating":"8.7"}`), "dark")

		require.NoError(t, err)
		assert.Equal(t, 2017, m.Year)
	})

	t.Run("N/A values become zero or empty", func(t *testing.T) {
		m, err := parseResponse([]byte(`{"Response":"True","Title":"Obscure","Year":"N/A","imdbRating":"N/A","Poster":"N/A","Country":"N/A"}`), "obscure")

		require.NoError(t, err)
		assert.Equal(t, 0, m.Year)
		assert.Equal(t, 0.0, m.Rating)
		assert.Empty(t, m.PosterURL)
		assert.Empty(t, m.Country)
	})
}
