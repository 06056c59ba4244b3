package zeroshot

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrUnavailable indicates the zero-shot NLI sidecar is unreachable or
// failed during inference.
var ErrUnavailable = errors.New("zero-shot NLI service unavailable")

const defaultTimeout = 30 * time.Second

// Result holds the ranked zero-shot output for one text. Labels carries
// the candidate sentences ordered descending by score; Scores is the
// parallel confidence sequence summing to 1 over the candidates.
type Result struct {
	Labels       []string  `json:"labels"`
	Scores       []float64 `json:"scores"`
	ModelVersion string    `json:"model_version,omitempty"`
}

// Top returns the highest-ranked candidate sentence and its score.
func (r *Result) Top() (string, float64) {
	if len(r.Labels) == 0 || len(r.Scores) == 0 {
		return "", 0
	}
	return r.Labels[0], r.Scores[0]
}

// Client is an HTTP client for the zero-shot NLI sidecar.
type Client struct {
	baseURL    string
	candidates []string
	hypothesis string
	httpClient *http.Client
}

// NewClient creates a zero-shot client bound to a fixed candidate set
// and hypothesis template. Candidates are immutable for the lifetime of
// the client.
func NewClient(baseURL string, candidates []string, hypothesisTemplate string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		candidates: append([]string(nil), candidates...),
		hypothesis: hypothesisTemplate,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Classify scores text against the client's candidate sentences in
// single-label (mutually exclusive) mode.
func (c *Client) Classify(ctx context.Context, text string) (*Result, error) {
	req := &classifyRequest{
		Text:               text,
		CandidateLabels:    c.candidates,
		HypothesisTemplate: c.hypothesis,
		MultiLabel:         false,
	}

	var resp classifyResponse
	if err := doClassify(ctx, c.httpClient, c.baseURL, req, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	if len(resp.Labels) == 0 || len(resp.Labels) != len(resp.Scores) {
		return nil, fmt.Errorf("%w: malformed response (%d labels, %d scores)",
			ErrUnavailable, len(resp.Labels), len(resp.Scores))
	}

	return &Result{
		Labels:       resp.Labels,
		Scores:       resp.Scores,
		ModelVersion: resp.ModelVersion,
	}, nil
}

// Health checks whether the sidecar is up and returns its model version.
func (c *Client) Health(ctx context.Context) (string, error) {
	reachable, _, modelVersion, err := doHealth(ctx, c.httpClient, c.baseURL)
	if err != nil {
		if !reachable {
			return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		return "", err
	}
	return modelVersion, nil
}
