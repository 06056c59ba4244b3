// Package zeroshot is the HTTP client for the zero-shot NLI sidecar
// that serves the multilingual entailment model.
package zeroshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// classifyRequest is the request body for POST /classify.
type classifyRequest struct {
	Text               string   `json:"text"`
	CandidateLabels    []string `json:"candidate_labels"`
	HypothesisTemplate string   `json:"hypothesis_template"`
	MultiLabel         bool     `json:"multi_label"`
}

// classifyResponse is the response body from POST /classify. Labels are
// the candidate sentences ranked descending by score; scores sum to 1
// in single-label mode.
type classifyResponse struct {
	Labels       []string  `json:"labels"`
	Scores       []float64 `json:"scores"`
	ModelVersion string    `json:"model_version"`
}

// healthResponse is the JSON shape returned by GET /health.
type healthResponse struct {
	ModelVersion string `json:"model_version"`
}

// doClassify sends POST /classify to baseURL, decoding into resp.
func doClassify(ctx context.Context, httpClient *http.Client, baseURL string, req *classifyRequest, resp *classifyResponse) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/classify", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("nli service returned %d", httpResp.StatusCode)
	}

	if decodeErr := json.NewDecoder(httpResp.Body).Decode(resp); decodeErr != nil {
		return fmt.Errorf("decode response: %w", decodeErr)
	}

	return nil
}

// doHealth calls GET /health at baseURL and returns reachable,
// latencyMs, model_version, and any error. The sidecar loads model
// weights on its first health probe, so this call doubles as warmup.
func doHealth(ctx context.Context, httpClient *http.Client, baseURL string) (reachable bool, latencyMs int64, modelVersion string, err error) {
	start := time.Now()

	httpReq, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/health", http.NoBody)
	if reqErr != nil {
		return false, 0, "", fmt.Errorf("create request: %w", reqErr)
	}

	resp, doErr := httpClient.Do(httpReq)
	latencyMs = time.Since(start).Milliseconds()
	if doErr != nil {
		return false, latencyMs, "", fmt.Errorf("service unreachable: %w", doErr)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return false, latencyMs, "", fmt.Errorf("unhealthy status: %d", resp.StatusCode)
	}

	reachable = true
	var healthResp healthResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&healthResp); decodeErr == nil {
		modelVersion = healthResp.ModelVersion
	}
	return reachable, latencyMs, modelVersion, nil
}
