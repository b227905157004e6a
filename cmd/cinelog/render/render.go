package render

type Renderer interface {
	RenderMovieList(view MovieListView) string
	RenderStats(view StatsView) string
	RenderHistogram(view HistogramView) string
}

type MovieListView struct {
	Heading string
	Items   []MovieListItem
}

type MovieListItem struct {
	Title  string
	Year   int
	Rating float64
	Notes  string
}

func (v MovieListView) IsEmpty() bool {
	return len(v.Items) == 0
}

type StatsView struct {
	Count   int
	Average float64
	Median  float64
	Best    RatingGroup
	Worst   RatingGroup
}

type RatingGroup struct {
	Rating float64
	Titles []string
}

type HistogramView struct {
	Bars []HistogramBar
}

type HistogramBar struct {
	Low   float64
	High  float64
	Count int
}
