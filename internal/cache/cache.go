// Package cache persists base classifier predictions in sqlite so repeated
// reviews skip the model call.
package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tsawler/reviewsense"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no prediction is stored for a key.
var ErrNotFound = errors.New("not found")

// Store wraps the sqlite connection.
type Store struct {
	conn *sql.DB
}

// Open opens or creates the cache database at path.
func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// sqlite allows one writer at a time.
	conn.SetMaxOpenConns(1)

	s := &Store{conn: conn}
	if err := s.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS predictions (
		model TEXT NOT NULL,
		digest TEXT NOT NULL,
		label TEXT NOT NULL,
		confidence REAL NOT NULL,
		created_at DATETIME NOT NULL,
		PRIMARY KEY (model, digest)
	);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Digest returns the hex sha256 of text, the cache key for a review.
func Digest(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Get returns the stored prediction for text under model.
func (s *Store) Get(ctx context.Context, model, text string) (reviewsense.Prediction, error) {
	var (
		label string
		p     reviewsense.Prediction
	)
	err := s.conn.QueryRowContext(ctx,
		`SELECT label, confidence FROM predictions WHERE model = ? AND digest = ?`,
		model, Digest(text),
	).Scan(&label, &p.Confidence)
	if errors.Is(err, sql.ErrNoRows) {
		return reviewsense.Prediction{}, ErrNotFound
	}
	if err != nil {
		return reviewsense.Prediction{}, fmt.Errorf("query prediction: %w", err)
	}
	p.Label = reviewsense.Label(label)
	return p, nil
}

// Put stores p for text under model, replacing any earlier value.
func (s *Store) Put(ctx context.Context, model, text string, p reviewsense.Prediction) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO predictions (model, digest, label, confidence, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(model, digest) DO UPDATE SET
			label = excluded.label,
			confidence = excluded.confidence,
			created_at = excluded.created_at`,
		model, Digest(text), string(p.Label), p.Confidence, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("store prediction: %w", err)
	}
	return nil
}

// Count returns the number of stored predictions.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM predictions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count predictions: %w", err)
	}
	return n, nil
}

// Classifier serves predictions from a Store and asks the wrapped classifier
// on a miss. Store failures are logged and never fail a classification.
type Classifier struct {
	store *Store
	next  reviewsense.Classifier
	model string
	log   *logrus.Entry
}

// NewClassifier wraps next. model namespaces the cache so switching models
// never serves stale verdicts.
func NewClassifier(store *Store, next reviewsense.Classifier, model string, logger *logrus.Logger) *Classifier {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Classifier{
		store: store,
		next:  next,
		model: model,
		log:   logger.WithFields(logrus.Fields{"component": "classifier_cache", "model": model}),
	}
}

// Classify implements reviewsense.Classifier.
func (c *Classifier) Classify(ctx context.Context, text string) (reviewsense.Prediction, error) {
	p, err := c.store.Get(ctx, c.model, text)
	switch {
	case err == nil && p.Validate() == nil:
		return p, nil
	case err != nil && !errors.Is(err, ErrNotFound):
		c.log.WithError(err).Warn("cache lookup failed")
	}

	p, err = c.next.Classify(ctx, text)
	if err != nil {
		return reviewsense.Prediction{}, err
	}
	if err := c.store.Put(ctx, c.model, text, p); err != nil {
		c.log.WithError(err).Warn("cache write failed")
	}
	return p, nil
}
