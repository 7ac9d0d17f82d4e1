package cache

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsawler/reviewsense"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	_, err := s.Get(ctx, "vader", "khana mast tha")
	assert.ErrorIs(t, err, ErrNotFound)

	want := reviewsense.Prediction{Label: reviewsense.Positive, Confidence: 0.93}
	require.NoError(t, s.Put(ctx, "vader", "khana mast tha", want))

	got, err := s.Get(ctx, "vader", "khana mast tha")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Other models do not see the entry.
	_, err = s.Get(ctx, "sst2", "khana mast tha")
	assert.ErrorIs(t, err, ErrNotFound)

	// Put replaces.
	require.NoError(t, s.Put(ctx, "vader", "khana mast tha", reviewsense.Prediction{Label: reviewsense.Negative, Confidence: 0.4}))
	got, err = s.Get(ctx, "vader", "khana mast tha")
	require.NoError(t, err)
	assert.Equal(t, reviewsense.Negative, got.Label)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDigest(t *testing.T) {
	assert.Equal(t, Digest("a"), Digest("a"))
	assert.NotEqual(t, Digest("a"), Digest("b"))
	assert.Len(t, Digest(""), 64)
}

func TestClassifierCachesPredictions(t *testing.T) {
	ctx := context.Background()
	calls := 0
	next := reviewsense.ClassifierFunc(func(ctx context.Context, text string) (reviewsense.Prediction, error) {
		calls++
		return reviewsense.Prediction{Label: reviewsense.Positive, Confidence: 0.7}, nil
	})

	c := NewClassifier(openStore(t), next, "stub", nil)
	for i := 0; i < 3; i++ {
		p, err := c.Classify(ctx, "paise vasool")
		require.NoError(t, err)
		assert.Equal(t, reviewsense.Positive, p.Label)
		assert.InDelta(t, 0.7, p.Confidence, 1e-9)
	}
	assert.Equal(t, 1, calls)
}

func TestClassifierPassesErrorsThrough(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("model unavailable")
	next := reviewsense.ClassifierFunc(func(ctx context.Context, text string) (reviewsense.Prediction, error) {
		return reviewsense.Prediction{}, boom
	})

	s := openStore(t)
	c := NewClassifier(s, next, "stub", nil)
	_, err := c.Classify(ctx, "bekaar")
	assert.ErrorIs(t, err, boom)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestClassifierFallsThroughOnStoreFailure(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	require.NoError(t, s.Close())

	logger, hook := test.NewNullLogger()
	next := reviewsense.ClassifierFunc(func(ctx context.Context, text string) (reviewsense.Prediction, error) {
		return reviewsense.Prediction{Label: reviewsense.Negative, Confidence: 0.8}, nil
	})

	c := NewClassifier(s, next, "stub", logger)
	p, err := c.Classify(ctx, "worst")
	require.NoError(t, err)
	assert.Equal(t, reviewsense.Negative, p.Label)

	require.Len(t, hook.AllEntries(), 2)
	for _, e := range hook.AllEntries() {
		assert.Equal(t, logrus.WarnLevel, e.Level)
	}
}
