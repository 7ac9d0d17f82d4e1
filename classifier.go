package reviewsense

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidPrediction is returned for predictions with an unknown label or
// a confidence outside [0, 1].
var ErrInvalidPrediction = errors.New("invalid prediction")

// Classifier is the base sentiment model. Implementations should honor ctx
// cancellation, since a call may be slow.
type Classifier interface {
	Classify(ctx context.Context, text string) (Prediction, error)
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(ctx context.Context, text string) (Prediction, error)

// Classify calls f(ctx, text).
func (f ClassifierFunc) Classify(ctx context.Context, text string) (Prediction, error) {
	return f(ctx, text)
}

// Validate checks that p can enter the pipeline.
func (p Prediction) Validate() error {
	if !p.Label.Valid() {
		return fmt.Errorf("%w: unknown label %q", ErrInvalidPrediction, p.Label)
	}
	if math.IsNaN(p.Confidence) || p.Confidence < 0 || p.Confidence > 1 {
		return fmt.Errorf("%w: confidence %v out of range", ErrInvalidPrediction, p.Confidence)
	}
	return nil
}

// ParseLabel maps a model label such as "positive" or "LABEL_1" onto a Label.
// Binary models that emit LABEL_0/LABEL_1 use the SST-2 convention.
func ParseLabel(s string) (Label, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "POSITIVE", "POS", "LABEL_1":
		return Positive, nil
	case "NEGATIVE", "NEG", "LABEL_0":
		return Negative, nil
	case "NEUTRAL", "NEU":
		return Neutral, nil
	}
	return "", fmt.Errorf("%w: unknown label %q", ErrInvalidPrediction, s)
}
