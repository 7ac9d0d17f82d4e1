// Package server exposes the sentiment adjuster over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tsawler/reviewsense"
)

const maxBodyBytes = 4 << 20

var (
	errNoReviews      = errors.New("No reviews provided")
	errNoValidReviews = errors.New("No valid reviews found")
	errInternal       = errors.New("Internal server error")
)

// Analyzer runs the adjustment pipeline over a batch of reviews.
type Analyzer interface {
	Analyze(ctx context.Context, reviews []string) ([]reviewsense.ReviewResult, error)
}

// Server serves POST /analyze and GET /healthz.
type Server struct {
	analyzer Analyzer
	splitter *reviewsense.Splitter
	mux      *http.ServeMux
	log      *logrus.Entry
}

// NewServer creates a server. splitter cuts the form field into reviews.
func NewServer(analyzer Analyzer, splitter *reviewsense.Splitter, logger *logrus.Logger) (*Server, error) {
	if analyzer == nil {
		return nil, errors.New("analyzer is required")
	}
	if splitter == nil {
		var err error
		if splitter, err = reviewsense.NewSplitter(reviewsense.SplitLines); err != nil {
			return nil, err
		}
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	s := &Server{
		analyzer: analyzer,
		splitter: splitter,
		mux:      http.NewServeMux(),
		log:      logger.WithField("component", "http"),
	}
	s.registerRoutes()
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/analyze", s.handleAnalyze)
	s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

type analyzeResponse struct {
	Sentiments []reviewsense.ReviewResult `json:"sentiments"`
	Stats      reviewsense.Stats          `json:"stats"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	reviews, err := s.readReviews(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.log.WithField("reviews", len(reviews)).Info("analyzing reviews")
	results, err := s.analyzer.Analyze(r.Context(), reviews)
	if err != nil {
		s.log.WithError(err).Error("analysis failed")
		writeError(w, http.StatusInternalServerError, errInternal)
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		Sentiments: results,
		Stats:      reviewsense.Summarize(results),
	})
}

// readReviews accepts a JSON body {"reviews": [...]} or {"reviews": "..."},
// or a form field named reviews holding one review per line.
func (s *Server) readReviews(r *http.Request) ([]string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		return s.readJSONReviews(r.Body)
	}

	raw := strings.TrimSpace(r.FormValue("reviews"))
	if raw == "" {
		return nil, errNoReviews
	}
	reviews := s.splitter.Split(raw)
	if len(reviews) == 0 {
		return nil, errNoValidReviews
	}
	return reviews, nil
}

func (s *Server) readJSONReviews(body io.Reader) ([]string, error) {
	var req struct {
		Reviews json.RawMessage `json:"reviews"`
	}
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errNoReviews
		}
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}
	if len(req.Reviews) == 0 || string(req.Reviews) == "null" {
		return nil, errNoReviews
	}

	var text string
	if err := json.Unmarshal(req.Reviews, &text); err == nil {
		if strings.TrimSpace(text) == "" {
			return nil, errNoReviews
		}
		if reviews := s.splitter.Split(text); len(reviews) > 0 {
			return reviews, nil
		}
		return nil, errNoValidReviews
	}

	var list []string
	if err := json.Unmarshal(req.Reviews, &list); err != nil {
		return nil, errors.New("reviews must be a string or a list of strings")
	}
	if len(list) == 0 {
		return nil, errNoReviews
	}
	if reviews := reviewsense.CleanReviews(list); len(reviews) > 0 {
		return reviews, nil
	}
	return nil, errNoValidReviews
}

func writeError(w http.ResponseWriter, status int, err error) {
	type resp struct {
		Error string `json:"error"`
	}
	writeJSON(w, status, resp{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(payload)
}

func methodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("only %s is supported", allow))
}
