package zeroshot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCandidates = []string{"trabalho", "social"}

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Classify_RankedResult(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/classify", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req classifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, testCandidates, req.CandidateLabels)
		assert.False(t, req.MultiLabel)
		assert.Equal(t, "Este e-mail é {}.", req.HypothesisTemplate)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(classifyResponse{
			Labels:       []string{"trabalho", "social"},
			Scores:       []float64{0.82, 0.18},
			ModelVersion: "mnli-xnli-1",
		})
	})

	client := NewClient(srv.URL, testCandidates, "Este e-mail é {}.", 0)
	result, err := client.Classify(context.Background(), "segue o status do chamado")
	require.NoError(t, err)

	top, score := result.Top()
	assert.Equal(t, "trabalho", top)
	assert.InDelta(t, 0.82, score, 1e-9)
	assert.Equal(t, "mnli-xnli-1", result.ModelVersion)
}

func TestClient_Classify_ServerError(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	client := NewClient(srv.URL, testCandidates, "Este e-mail é {}.", 0)
	_, err := client.Classify(context.Background(), "qualquer texto")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_Classify_Unreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", testCandidates, "Este e-mail é {}.", 0)
	_, err := client.Classify(context.Background(), "qualquer texto")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_Classify_MalformedResponse(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(classifyResponse{
			Labels: []string{"trabalho", "social"},
			Scores: []float64{0.9}, // length mismatch
		})
	})

	client := NewClient(srv.URL, testCandidates, "Este e-mail é {}.", 0)
	_, err := client.Classify(context.Background(), "texto")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_Health(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(healthResponse{ModelVersion: "mnli-xnli-1"})
	})

	client := NewClient(srv.URL, testCandidates, "Este e-mail é {}.", 0)
	version, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "mnli-xnli-1", version)
}
