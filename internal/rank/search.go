package rank

import (
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"cinelog/internal/catalog"
)

// SearchLimit is the number of suggestions returned when no title matches exactly.
const SearchLimit = 3

type Match struct {
	Title string
	Score int
}

type SearchResult struct {
	Exact   bool
	Matches []Match
}

// Search looks a term up among titles. A case-insensitive exact match returns
// that title alone. Otherwise the SearchLimit best scoring titles are returned
// regardless of how poor the score is.
func Search(records []catalog.Record, term string) SearchResult {
	query := strings.ToLower(term)

	for _, r := range records {
		if strings.ToLower(r.Title) == query {
			return SearchResult{Exact: true, Matches: []Match{{Title: r.Title, Score: 100}}}
		}
	}

	matches := make([]Match, 0, len(records))
	for _, r := range records {
		matches = append(matches, Match{Title: r.Title, Score: Similarity(query, strings.ToLower(r.Title))})
	}
	slices.SortStableFunc(matches, func(a, b Match) int {
		return b.Score - a.Score
	})
	if len(matches) > SearchLimit {
		matches = matches[:SearchLimit]
	}
	return SearchResult{Matches: matches}
}

// Similarity scores two strings from 0 to 100. It takes the better of the plain
// edit-distance ratio and the ratio over alphabetically sorted words, so
// reordered titles still score well.
func Similarity(a, b string) int {
	return max(Ratio(a, b), Ratio(sortTokens(a), sortTokens(b)))
}

// Ratio is 100 * (1 - levenshtein(a, b) / max(len(a), len(b))), counted in runes.
func Ratio(a, b string) int {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 100
	}
	d := levenshtein.ComputeDistance(a, b)
	return int(math.Round(100 * (1 - float64(d)/float64(longest))))
}

func sortTokens(s string) string {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r > utf8.RuneSelf)
	})
	slices.Sort(tokens)
	return strings.Join(tokens, " ")
}
