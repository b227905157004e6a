// Package rank computes statistics, orderings and title search over a
// listing of records. Functions never modify their input.
package rank

import (
	"math/rand/v2"
	"slices"

	"cinelog/internal/catalog"
)

func Average(records []catalog.Record) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, r := range records {
		sum += r.Rating
	}
	return sum / float64(len(records))
}

func Median(records []catalog.Record) float64 {
	n := len(records)
	if n == 0 {
		return 0
	}
	ratings := ratingsOf(records)
	slices.Sort(ratings)
	if n%2 == 0 {
		return (ratings[n/2-1] + ratings[n/2]) / 2
	}
	return ratings[n/2]
}

// Best returns the highest rating and every title that has it, in listing order.
func Best(records []catalog.Record) (float64, []string) {
	return extreme(records, func(a, b float64) bool { return a > b })
}

// Worst returns the lowest rating and every title that has it, in listing order.
func Worst(records []catalog.Record) (float64, []string) {
	return extreme(records, func(a, b float64) bool { return a < b })
}

func extreme(records []catalog.Record, better func(a, b float64) bool) (float64, []string) {
	if len(records) == 0 {
		return 0, nil
	}
	target := records[0].Rating
	for _, r := range records[1:] {
		if better(r.Rating, target) {
			target = r.Rating
		}
	}
	var titles []string
	for _, r := range records {
		if r.Rating == target {
			titles = append(titles, r.Title)
		}
	}
	return target, titles
}

// SortByRating orders records by descending rating. Equal ratings keep their
// listing order.
func SortByRating(records []catalog.Record) []catalog.Record {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b catalog.Record) int {
		switch {
		case a.Rating > b.Rating:
			return -1
		case a.Rating < b.Rating:
			return 1
		default:
			return 0
		}
	})
	return sorted
}

type Bucket struct {
	Low   float64
	High  float64
	Count int
}

// Histogram splits the 0-10 rating scale into bins equal-width buckets.
// Ratings outside the scale are clamped into the first or last bucket.
func Histogram(records []catalog.Record, bins int) []Bucket {
	if bins <= 0 {
		bins = 10
	}
	const scale = 10.0
	width := scale / float64(bins)

	buckets := make([]Bucket, bins)
	for i := range buckets {
		buckets[i].Low = float64(i) * width
		buckets[i].High = float64(i+1) * width
	}
	for _, r := range records {
		i := int(r.Rating / width)
		i = max(0, min(i, bins-1))
		buckets[i].Count++
	}
	return buckets
}

// Random picks one record uniformly. ok is false for an empty listing.
func Random(records []catalog.Record, rng *rand.Rand) (catalog.Record, bool) {
	if len(records) == 0 {
		return catalog.Record{}, false
	}
	if rng == nil {
		return records[rand.IntN(len(records))], true
	}
	return records[rng.IntN(len(records))], true
}

func ratingsOf(records []catalog.Record) []float64 {
	ratings := make([]float64, len(records))
	for i, r := range records {
		ratings[i] = r.Rating
	}
	return ratings
}
