package reviewsense

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultInferenceModel is the hosted binary sentiment model used when no
// model is configured.
const DefaultInferenceModel = "distilbert-base-uncased-finetuned-sst-2-english"

const huggingFaceModelsURL = "https://api-inference.huggingface.co/models/"

// HuggingFaceEndpoint returns the hosted inference URL for model.
func HuggingFaceEndpoint(model string) string {
	if strings.TrimSpace(model) == "" {
		model = DefaultInferenceModel
	}
	return huggingFaceModelsURL + model
}

// HTTPClassifier calls a remote text-classification endpoint that accepts
// {"inputs": text} and answers with label/score pairs.
type HTTPClassifier struct {
	endpoint string
	token    string
	client   *http.Client
}

// HTTPClassifierOpt configures an HTTPClassifier.
type HTTPClassifierOpt func(c *HTTPClassifier)

// WithBearerToken sets the API token sent with each request.
func WithBearerToken(token string) HTTPClassifierOpt {
	return func(c *HTTPClassifier) {
		c.token = token
	}
}

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(client *http.Client) HTTPClassifierOpt {
	return func(c *HTTPClassifier) {
		if client != nil {
			c.client = client
		}
	}
}

// NewHTTPClassifier creates a classifier for endpoint.
func NewHTTPClassifier(endpoint string, opts ...HTTPClassifierOpt) (*HTTPClassifier, error) {
	if strings.TrimSpace(endpoint) == "" {
		return nil, errors.New("reviewsense: classifier endpoint is required")
	}
	c := &HTTPClassifier{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
	for _, applyOpt := range opts {
		applyOpt(c)
	}
	return c, nil
}

type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

type inferenceScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classify posts text to the endpoint and returns the top-scoring label.
func (c *HTTPClassifier) Classify(ctx context.Context, text string) (Prediction, error) {
	body, err := json.Marshal(inferenceRequest{Inputs: text})
	if err != nil {
		return Prediction{}, fmt.Errorf("encode inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Prediction{}, fmt.Errorf("build inference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Prediction{}, fmt.Errorf("inference request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Prediction{}, fmt.Errorf("read inference response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Prediction{}, fmt.Errorf("inference endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	scores, err := decodeScores(raw)
	if err != nil {
		return Prediction{}, err
	}
	return topPrediction(scores)
}

// decodeScores accepts both the batched [[...]] and the flat [...] shapes.
func decodeScores(raw []byte) ([]inferenceScore, error) {
	var nested [][]inferenceScore
	if err := json.Unmarshal(raw, &nested); err == nil {
		if len(nested) == 0 {
			return nil, fmt.Errorf("%w: empty inference response", ErrInvalidPrediction)
		}
		return nested[0], nil
	}

	var flat []inferenceScore
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, fmt.Errorf("decode inference response: %w", err)
	}
	return flat, nil
}

func topPrediction(scores []inferenceScore) (Prediction, error) {
	if len(scores) == 0 {
		return Prediction{}, fmt.Errorf("%w: no scores in inference response", ErrInvalidPrediction)
	}

	best := scores[0]
	for _, s := range scores[1:] {
		if s.Score > best.Score {
			best = s
		}
	}

	label, err := ParseLabel(best.Label)
	if err != nil {
		return Prediction{}, err
	}
	return Prediction{Label: label, Confidence: best.Score}, nil
}
