package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsawler/reviewsense"
)

type fakeAnalyzer struct {
	got []string
	err error
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, reviews []string) ([]reviewsense.ReviewResult, error) {
	f.got = reviews
	if f.err != nil {
		return nil, f.err
	}
	results := make([]reviewsense.ReviewResult, 0, len(reviews))
	for i, r := range reviews {
		label := reviewsense.Positive
		if i%2 == 1 {
			label = reviewsense.Negative
		}
		results = append(results, reviewsense.ReviewResult{Review: r, Sentiment: label, Confidence: 0.5, Keywords: []string{}})
	}
	return results, nil
}

func newTestServer(t *testing.T, a Analyzer) *Server {
	t.Helper()
	logger, _ := test.NewNullLogger()
	srv, err := NewServer(a, nil, logger)
	require.NoError(t, err)
	return srv
}

func postForm(srv http.Handler, reviews string) *httptest.ResponseRecorder {
	form := url.Values{"reviews": {reviews}}
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func postJSON(srv http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestAnalyzeForm(t *testing.T) {
	a := &fakeAnalyzer{}
	srv := newTestServer(t, a)

	rec := postForm(srv, "  great food \n\n   \nservice was slow\n")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, []string{"great food", "service was slow"}, a.got)

	var resp analyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Sentiments, 2)
	assert.Equal(t, reviewsense.Stats{Total: 2, Positive: 1, Negative: 1, AverageConfidence: 0.5}, resp.Stats)
}

func TestAnalyzeJSON(t *testing.T) {
	tests := []struct {
		desc string
		body string
		want []string
	}{
		{"list", `{"reviews": ["ekdum mast", "  ", "bekaar"]}`, []string{"ekdum mast", "bekaar"}},
		{"text", `{"reviews": "line one\nline two"}`, []string{"line one", "line two"}},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			a := &fakeAnalyzer{}
			rec := postJSON(newTestServer(t, a), tt.body)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, a.got)
		})
	}
}

func TestAnalyzeBadRequests(t *testing.T) {
	tests := []struct {
		desc    string
		do      func(srv http.Handler) *httptest.ResponseRecorder
		wantErr string
	}{
		{"empty form", func(srv http.Handler) *httptest.ResponseRecorder { return postForm(srv, "   ") }, "No reviews provided"},
		{"missing json field", func(srv http.Handler) *httptest.ResponseRecorder { return postJSON(srv, `{}`) }, "No reviews provided"},
		{"empty json list", func(srv http.Handler) *httptest.ResponseRecorder { return postJSON(srv, `{"reviews": []}`) }, "No reviews provided"},
		{"blank json list", func(srv http.Handler) *httptest.ResponseRecorder { return postJSON(srv, `{"reviews": [" ", ""]}`) }, "No valid reviews found"},
		{"wrong json type", func(srv http.Handler) *httptest.ResponseRecorder { return postJSON(srv, `{"reviews": 3}`) }, "reviews must be a string or a list of strings"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			a := &fakeAnalyzer{}
			rec := tt.do(newTestServer(t, a))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantErr, decodeError(t, rec))
			assert.Nil(t, a.got)
		})
	}
}

func TestAnalyzeInternalError(t *testing.T) {
	srv := newTestServer(t, &fakeAnalyzer{err: errors.New("boom")})
	rec := postForm(srv, "anything")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeError(t, rec))
}

func TestAnalyzeMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, &fakeAnalyzer{})
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/analyze", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, &fakeAnalyzer{})
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAnalyzeWithAdjuster(t *testing.T) {
	logger, _ := test.NewNullLogger()
	idx, err := reviewsense.Compile(reviewsense.DefaultLexicon(), reviewsense.WithIndexLogger(logger))
	require.NoError(t, err)

	base := reviewsense.ClassifierFunc(func(ctx context.Context, text string) (reviewsense.Prediction, error) {
		return reviewsense.Prediction{Label: reviewsense.Negative, Confidence: 0.6}, nil
	})
	adj, err := reviewsense.NewAdjuster(idx, base, reviewsense.WithLogger(logger))
	require.NoError(t, err)

	srv, err := NewServer(adj, nil, logger)
	require.NoError(t, err)

	rec := postForm(srv, "Khana ekdum badhiya tha")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp analyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Sentiments, 1)
	assert.Equal(t, reviewsense.Positive, resp.Sentiments[0].Sentiment)
	assert.GreaterOrEqual(t, resp.Sentiments[0].Confidence, 0.9)
	assert.Contains(t, resp.Sentiments[0].Keywords, "badhiya")
	assert.Equal(t, 1, resp.Stats.Positive)
}
