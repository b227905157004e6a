package lookup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"cinelog/internal/logging"
)

var (
	ErrNotFound      = errors.New("movie not found by metadata source")
	ErrUnavailable   = errors.New("metadata source unavailable")
	ErrMissingAPIKey = errors.New("OMDb API key is not configured")
)

const (
	DefaultBaseURL = "https://www.omdbapi.com/"
	defaultTimeout = 10 * time.Second
	maxBodySize    = 1 << 20
)

// Movie is the metadata the catalog needs to create a record.
type Movie struct {
	Title     string `validate:"required"`
	Year      int    `validate:"gte=0"`
	Rating    float64
	PosterURL string
	Country   string
	IMDbID    string
}

type Options struct {
	APIKey            string
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
	HTTPClient        *http.Client
}

// Client queries the OMDb title endpoint. Requests are rate limited and
// guarded by a circuit breaker.
type Client struct {
	apiKey   string
	baseURL  string
	http     *http.Client
	limiter  *rate.Limiter
	breaker  *gobreaker.CircuitBreaker[Movie]
	validate *validator.Validate
}

func NewClient(opts Options) *Client {
	baseURL := strings.TrimSpace(opts.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}

	return &Client{
		apiKey:   strings.TrimSpace(opts.APIKey),
		baseURL:  baseURL,
		http:     httpClient,
		limiter:  rate.NewLimiter(limit, 1),
		breaker:  newBreaker("omdb"),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func newBreaker(name string) *gobreaker.CircuitBreaker[Movie] {
	return gobreaker.NewCircuitBreaker[Movie](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		// A title the source does not know is a valid answer, not an outage.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
		},
	})
}

func (c *Client) Find(ctx context.Context, title string) (Movie, error) {
	if c.apiKey == "" {
		return Movie{}, fmt.Errorf("%w: %w", ErrUnavailable, ErrMissingAPIKey)
	}

	movie, err := c.breaker.Execute(func() (Movie, error) {
		return c.fetch(ctx, title)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		logging.Warn().Err(err).Str("title", title).Msg("metadata request rejected")
		return Movie{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return movie, err
}

func (c *Client) fetch(ctx context.Context, title string) (Movie, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return Movie{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return Movie{}, fmt.Errorf("%w: invalid base url: %w", ErrUnavailable, err)
	}
	q := u.Query()
	q.Set("apikey", c.apiKey)
	q.Set("t", title)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Movie{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Movie{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Movie{}, fmt.Errorf("%w: %w", ErrUnavailable, &HTTPStatusError{URL: redact(u), StatusCode: resp.StatusCode})
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return Movie{}, fmt.Errorf("%w: reading response: %w", ErrUnavailable, err)
	}

	movie, err := parseResponse(body, title)
	if err != nil {
		return Movie{}, err
	}
	if err := c.validate.Struct(movie); err != nil {
		return Movie{}, fmt.Errorf("%w: invalid metadata for %q: %w", ErrUnavailable, title, err)
	}

	logging.Debug().Str("title", movie.Title).Str("imdb_id", movie.IMDbID).Msg("metadata found")
	return movie, nil
}

type omdbResponse struct {
	Response   string `json:"Response"`
	Error      string `json:"Error"`
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	IMDbRating string `json:"imdbRating"`
	Poster     string `json:"Poster"`
	Country    string `json:"Country"`
	IMDbID     string `json:"imdbID"`
}

func parseResponse(body []byte, title string) (Movie, error) {
	var r omdbResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return Movie{}, fmt.Errorf("%w: decoding response: %w", ErrUnavailable, err)
	}

	if !strings.EqualFold(r.Response, "true") {
		reason := strings.TrimSpace(r.Error)
		if reason == "" {
			reason = "no match"
		}
		return Movie{}, fmt.Errorf("%w: %q (%s)", ErrNotFound, title, reason)
	}

	return Movie{
		Title:     r.Title,
		Year:      parseYear(r.Year),
		Rating:    parseRating(r.IMDbRating),
		PosterURL: notAvailableToEmpty(r.Poster),
		Country:   notAvailableToEmpty(r.Country),
		IMDbID:    r.IMDbID,
	}, nil
}

// parseYear reads the leading digits of values such as "2010" or "2010–2013".
func parseYear(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	year, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return year
}

func parseRating(s string) float64 {
	rating, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return rating
}

func notAvailableToEmpty(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), "N/A") {
		return ""
	}
	return s
}

func redact(u *url.URL) string {
	c := *u
	q := c.Query()
	if q.Has("apikey") {
		q.Set("apikey", "REDACTED")
	}
	c.RawQuery = q.Encode()
	return c.String()
}

type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
}
