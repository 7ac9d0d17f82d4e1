package reviewsense

import (
	"context"
	"math"

	"github.com/jonreiter/govader"
)

// VaderClassifier is an in-process base classifier built on the VADER
// lexicon. Like a binary sentiment model it only answers POSITIVE or
// NEGATIVE; confidence grows with the magnitude of the compound score.
type VaderClassifier struct {
	sia *govader.SentimentIntensityAnalyzer
}

// NewVaderClassifier creates a VADER-backed classifier.
func NewVaderClassifier() *VaderClassifier {
	return &VaderClassifier{sia: govader.NewSentimentIntensityAnalyzer()}
}

// Classify scores text with VADER. A compound score of exactly zero counts
// as POSITIVE with confidence 0.5.
func (v *VaderClassifier) Classify(ctx context.Context, text string) (Prediction, error) {
	if err := ctx.Err(); err != nil {
		return Prediction{}, err
	}

	scores := v.sia.PolarityScores(text)
	label := Positive
	if scores.Compound < 0 {
		label = Negative
	}

	return Prediction{
		Label:      label,
		Confidence: math.Min(1.0, (1+math.Abs(scores.Compound))/2),
	}, nil
}
