package reviewsense

import (
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes a batch of results.
type Stats struct {
	Total             int     `json:"total"`
	Positive          int     `json:"positive"`
	Negative          int     `json:"negative"`
	AverageConfidence float64 `json:"average_confidence"`
}

// Summarize counts results by label and averages their confidence. Every
// result that is not POSITIVE counts as negative, so neutral verdicts land
// there too. An empty batch yields zero stats.
func Summarize(results []ReviewResult) Stats {
	st := Stats{Total: len(results)}
	if len(results) == 0 {
		return st
	}

	confidences := make([]float64, len(results))
	for i, r := range results {
		if r.Sentiment == Positive {
			st.Positive++
		}
		confidences[i] = r.Confidence
	}
	st.Negative = st.Total - st.Positive
	st.AverageConfidence = roundTo(stat.Mean(confidences, nil), 4)
	return st
}
