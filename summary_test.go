package reviewsense

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		desc    string
		results []ReviewResult
		want    Stats
	}{
		{"empty", nil, Stats{}},
		{
			"neutral counts as negative",
			[]ReviewResult{
				{Sentiment: Positive, Confidence: 0.9},
				{Sentiment: Negative, Confidence: 0.6},
				{Sentiment: Neutral, Confidence: 0.3},
				{Sentiment: Positive, Confidence: 1.0},
			},
			Stats{Total: 4, Positive: 2, Negative: 2, AverageConfidence: 0.7},
		},
		{
			"rounded mean",
			[]ReviewResult{
				{Sentiment: Negative, Confidence: 0.1},
				{Sentiment: Negative, Confidence: 0.2},
				{Sentiment: Negative, Confidence: 0.2},
			},
			Stats{Total: 3, Negative: 3, AverageConfidence: 0.1667},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := Summarize(tt.results)
			assert.Equal(t, tt.want.Total, got.Total)
			assert.Equal(t, tt.want.Positive, got.Positive)
			assert.Equal(t, tt.want.Negative, got.Negative)
			assert.InDelta(t, tt.want.AverageConfidence, got.AverageConfidence, 1e-9)
		})
	}
}
