package reviewsense

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// AdjusterConfig configures the adjustment pipeline
type AdjusterConfig struct {
	// Priority override: strong Hinglish positives force a POSITIVE verdict
	// before weighting and boost the working score once.
	PriorityMarkers []string
	PriorityFloor   float64
	PriorityBoost   float64

	// Bounds applied after weighting.
	MinScore float64
	MaxScore float64

	// Negations are whole-word tokens or phrases that invert the verdict.
	Negations []string

	// Post-negation overrides, checked against the final label.
	PositiveMarkers []string
	PositiveFloor   float64
	NeutralMarkers  []string
	NeutralCeiling  float64

	MaxClassifierChars int           // characters of a review the classifier sees
	ClassifyTimeout    time.Duration // per classifier call, 0 disables
	Precision          int           // decimal digits kept in the output confidence
}

// DefaultAdjusterConfig returns the standard configuration
func DefaultAdjusterConfig() AdjusterConfig {
	return AdjusterConfig{
		PriorityMarkers:    []string{"badhiya", "mast", "jhakaas", "paise vasool", "ekdum sahi"},
		PriorityFloor:      0.8,
		PriorityBoost:      1.6,
		MinScore:           0.1,
		MaxScore:           1.0,
		Negations:          []string{"not", "no", "nahi", "never", "nope", "na", "without", "nahi hai", "nahi tha"},
		PositiveMarkers:    []string{"badhiya", "mast", "jhakaas"},
		PositiveFloor:      0.9,
		NeutralMarkers:     []string{"chalta hai", "timepass"},
		NeutralCeiling:     0.6,
		MaxClassifierChars: 512,
		ClassifyTimeout:    30 * time.Second,
		Precision:          4,
	}
}

// Adjuster corrects base classifier verdicts with the keyword index. It holds
// no mutable state and is safe for concurrent use.
type Adjuster struct {
	index      *Index
	classifier Classifier
	config     AdjusterConfig
	negation   *phraseMatcher
	log        *logrus.Entry
}

// NewAdjuster creates an adjuster over a compiled index and a base classifier.
func NewAdjuster(index *Index, classifier Classifier, opts ...AdjusterOpt) (*Adjuster, error) {
	if index == nil {
		return nil, errors.New("reviewsense: nil index")
	}
	if classifier == nil {
		return nil, errors.New("reviewsense: nil classifier")
	}

	o := adjusterOpts{
		config: DefaultAdjusterConfig(),
		logger: logrus.StandardLogger(),
	}
	for _, applyOpt := range opts {
		applyOpt(&o)
	}

	cfg := o.config
	cfg.PriorityMarkers = lowerAll(cfg.PriorityMarkers)
	cfg.Negations = lowerAll(cfg.Negations)
	cfg.PositiveMarkers = lowerAll(cfg.PositiveMarkers)
	cfg.NeutralMarkers = lowerAll(cfg.NeutralMarkers)
	if cfg.MinScore > cfg.MaxScore {
		return nil, fmt.Errorf("reviewsense: score bounds [%v, %v] are inverted", cfg.MinScore, cfg.MaxScore)
	}

	return &Adjuster{
		index:      index,
		classifier: classifier,
		config:     cfg,
		negation:   newPhraseMatcher(cfg.Negations),
		log:        o.logger.WithField("component", "sentiment_adjuster"),
	}, nil
}

// Index returns the keyword index the adjuster scans with.
func (a *Adjuster) Index() *Index {
	return a.index
}

// Analyze classifies and adjusts every non-blank review in order. A review
// whose classification or adjustment fails is logged and left out. The
// returned error is non-nil only when ctx ends, together with the results
// gathered so far.
func (a *Adjuster) Analyze(ctx context.Context, reviews []string) ([]ReviewResult, error) {
	results := make([]ReviewResult, 0, len(reviews))

	for i, review := range reviews {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		if strings.TrimSpace(review) == "" {
			continue
		}

		res, err := a.analyzeOne(ctx, review)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return results, ctxErr
			}
			a.log.WithFields(logrus.Fields{
				"review_index": i,
				"review":       preview(review),
			}).WithError(err).Warn("skipping review")
			continue
		}
		results = append(results, res)
	}

	return results, nil
}

func (a *Adjuster) analyzeOne(ctx context.Context, review string) (res ReviewResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while analyzing review: %v", r)
		}
	}()

	if a.config.ClassifyTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.ClassifyTimeout)
		defer cancel()
	}

	pred, err := a.classifier.Classify(ctx, truncateRunes(review, a.config.MaxClassifierChars))
	if err != nil {
		return ReviewResult{}, fmt.Errorf("classify: %w", err)
	}
	if err := pred.Validate(); err != nil {
		return ReviewResult{}, err
	}

	return a.Adjust(review, pred), nil
}

// Adjust runs the keyword pipeline over one review and its base prediction:
// priority override, weighting, negation and final overrides.
func (a *Adjuster) Adjust(review string, base Prediction) ReviewResult {
	lowered := lowerText(review)

	label, score := a.applyPriority(lowered, base.Label, base.Confidence)
	score = a.applyWeights(lowered, label, score)
	label, score = a.applyNegation(lowered, label, score)
	score = a.applyOverrides(lowered, label, score)

	return ReviewResult{
		Review:     review,
		Sentiment:  label,
		Confidence: roundTo(score, a.config.Precision),
		Keywords:   a.index.keywords(lowered),
	}
}

// applyPriority forces POSITIVE on the first strong Hinglish marker found
// and boosts the score once.
func (a *Adjuster) applyPriority(lowered string, label Label, score float64) (Label, float64) {
	for _, marker := range a.config.PriorityMarkers {
		if !strings.Contains(lowered, marker) {
			continue
		}
		if label != Positive {
			label = Positive
			score = math.Max(a.config.PriorityFloor, score)
		}
		return label, score * a.config.PriorityBoost
	}
	return label, score
}

// applyWeights multiplies the score by the weight of every match from the
// label's own class and by the reciprocal weight of every other match.
func (a *Adjuster) applyWeights(lowered string, label Label, score float64) float64 {
	var factors []float64
	for _, c := range Classes {
		for _, m := range a.index.matches(c, lowered) {
			w := a.index.weight(c, m)
			if c.Label() == label {
				factors = append(factors, w)
			} else {
				factors = append(factors, 1/w)
			}
		}
	}

	score *= floats.Prod(factors)
	return math.Min(a.config.MaxScore, math.Max(a.config.MinScore, score))
}

// applyNegation complements the score and swaps POSITIVE and NEGATIVE when a
// negation occurs anywhere in the text. NEUTRAL keeps its label.
func (a *Adjuster) applyNegation(lowered string, label Label, score float64) (Label, float64) {
	if !a.negation.MatchString(lowered) {
		return label, score
	}

	switch label {
	case Positive:
		label = Negative
	case Negative:
		label = Positive
	}
	return label, 1 - score
}

func (a *Adjuster) applyOverrides(lowered string, label Label, score float64) float64 {
	switch label {
	case Positive:
		if containsAny(lowered, a.config.PositiveMarkers) {
			score = math.Max(score, a.config.PositiveFloor)
		}
	case Neutral:
		if containsAny(lowered, a.config.NeutralMarkers) {
			score = math.Min(score, a.config.NeutralCeiling)
		}
	}
	return score
}

// Helper functions

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func lowerAll(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if t = lowerText(strings.TrimSpace(t)); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func roundTo(x float64, digits int) float64 {
	if digits < 0 {
		return x
	}
	p := math.Pow10(digits)
	return math.RoundToEven(x*p) / p
}

// preview shortens a review for log fields.
func preview(review string) string {
	const limit = 80
	if short := truncateRunes(review, limit); len(short) < len(review) {
		return short + "..."
	}
	return review
}
