package proptest

import (
	"cinelog/internal/catalog"

	"pgregory.net/rapid"
)

var (
	plainTitleGen = rapid.StringMatching(`[A-Za-z0-9][A-Za-z0-9 ,:'"&!?.éü-]{0,30}`)
	trickyTitles  = []string{
		"null", "true", "~", "1917", "1e3", "- dash", "# hash", "a: b",
		"Amélie", "Crouching Tiger, Hidden Dragon", `The "Quoted" One`, " padded ",
	}
	notesGen   = rapid.StringMatching(`[A-Za-z0-9 ,.'"!?]{0,40}`)
	countryGen = rapid.SampledFrom([]string{"", "United States", "France", "Japan", "South Korea"})
	queryGen   = rapid.StringMatching(`[a-z ]{1,12}`)
)

func titleGen() *rapid.Generator[string] {
	return rapid.OneOf(plainTitleGen, rapid.SampledFrom(trickyTitles))
}

// ratingGen yields ratings in tenths, the precision metadata sources use.
func ratingGen() *rapid.Generator[float64] {
	return rapid.Map(rapid.IntRange(0, 100), func(tenths int) float64 {
		return float64(tenths) / 10
	})
}

func recordGen() *rapid.Generator[catalog.Record] {
	return rapid.Custom(func(t *rapid.T) catalog.Record {
		return catalog.Record{
			Title:     titleGen().Draw(t, "title"),
			Year:      rapid.IntRange(0, 2100).Draw(t, "year"),
			Rating:    ratingGen().Draw(t, "rating"),
			PosterURL: rapid.SampledFrom([]string{"", "https://m.media-amazon.com/images/p.jpg"}).Draw(t, "poster"),
			Country:   countryGen.Draw(t, "country"),
			IMDbID:    rapid.StringMatching(`(tt[0-9]{7})?`).Draw(t, "imdbID"),
			Notes:     notesGen.Draw(t, "notes"),
		}
	})
}

func ratedRecordsGen(minCount, maxCount int) *rapid.Generator[[]catalog.Record] {
	return rapid.Custom(func(t *rapid.T) []catalog.Record {
		n := rapid.IntRange(minCount, maxCount).Draw(t, "n")
		records := make([]catalog.Record, n)
		for i := range records {
			records[i] = catalog.Record{
				Title:  plainTitleGen.Draw(t, "title"),
				Rating: ratingGen().Draw(t, "rating"),
			}
		}
		return records
	})
}

func malformedContentGen(kind catalog.Kind) *rapid.Generator[string] {
	shared := []*rapid.Generator[string]{
		rapid.StringMatching(`[^a-zA-Z0-9\s]{10,50}`),
		rapid.Custom(func(t *rapid.T) string {
			size := rapid.IntRange(10, 100).Draw(t, "size")
			bytes := make([]byte, size)
			for i := range bytes {
				bytes[i] = byte(rapid.IntRange(0, 255).Draw(t, "byte"))
			}
			return string(bytes)
		}),
	}

	var specific []*rapid.Generator[string]
	switch kind {
	case catalog.KindJSON:
		specific = []*rapid.Generator[string]{
			rapid.Just(`{"Heat": `),
			rapid.Just(`[1, 2, 3]`),
			rapid.Just(`{"Heat": "8.3"}`),
			rapid.Just(`{"Heat": {"rating": "high"}}`),
			rapid.Just(`{"Heat": {"year": 1e400}}`),
			rapid.Just(`{1: {}}`),
			rapid.Just(`"just a string"`),
			rapid.Just(`{"Heat": {}} trailing`),
		}
	case catalog.KindYAML:
		specific = []*rapid.Generator[string]{
			rapid.Just("{{{{"),
			rapid.Just("- - - -"),
			rapid.Just("key: [unclosed"),
			rapid.Just("Heat: 8.3"),
			rapid.Just("Heat:\n  rating: [1, 2]"),
			rapid.Just("? [complex, key]\n: {rating: 1}"),
			rapid.Just("\t\ttabs: everywhere"),
			rapid.Just("Heat: &a {rating: 1}\nAlien: *a"),
		}
	case catalog.KindCSV:
		specific = []*rapid.Generator[string]{
			rapid.Just("title,rating\nHeat,8.3\n"),
			rapid.Just("title,rating,year,poster_url,country,imdb_id,notes\nHeat\n"),
			rapid.Just("title,rating,year,poster_url,country,imdb_id,notes\n\"Heat,8.3,1995,,,,\n"),
			rapid.Just("title,rating,year,poster_url,country,imdb_id,notes\nHeat,abc,1995,,,,\n"),
			rapid.Just("title,rating,year,poster_url,country,imdb_id,notes\nHeat,1,x,,,,\n"),
			rapid.Just(",,,,,,\n,,,,,,\n"),
		}
	}

	return rapid.OneOf(append(specific, shared...)...)
}
