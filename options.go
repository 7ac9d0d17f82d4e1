package reviewsense

import (
	"time"

	"github.com/sirupsen/logrus"
)

// An AdjusterOpt represents a setting that changes how an Adjuster is built.
//
// For example, it might shorten the classifier timeout:
//
//	adj, err := reviewsense.NewAdjuster(idx, clf, reviewsense.WithClassifyTimeout(5*time.Second))
type AdjusterOpt func(opts *adjusterOpts)

type adjusterOpts struct {
	config AdjusterConfig
	logger *logrus.Logger
}

// WithConfig replaces the whole pipeline configuration.
func WithConfig(config AdjusterConfig) AdjusterOpt {
	return func(opts *adjusterOpts) {
		opts.config = config
	}
}

// WithLogger sets the logger used for skipped reviews.
func WithLogger(logger *logrus.Logger) AdjusterOpt {
	return func(opts *adjusterOpts) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithClassifyTimeout bounds every classifier call. Zero disables the bound.
func WithClassifyTimeout(timeout time.Duration) AdjusterOpt {
	return func(opts *adjusterOpts) {
		opts.config.ClassifyTimeout = timeout
	}
}

// WithMaxClassifierChars sets how many characters of a review the classifier
// sees. Keyword and negation scans always use the full review.
func WithMaxClassifierChars(n int) AdjusterOpt {
	return func(opts *adjusterOpts) {
		opts.config.MaxClassifierChars = n
	}
}
