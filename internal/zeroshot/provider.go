package zeroshot

import (
	"context"
	"sync"
	"time"

	"github.com/jonesrussell/mail-triage/internal/logger"
)

// Provider owns the process-wide zero-shot client. The sidecar loads
// model weights on first contact, which can take seconds, so the client
// is constructed lazily on first use and then shared read-only across
// requests for the lifetime of the process.
type Provider struct {
	mu     sync.Mutex
	client *Client

	baseURL    string
	candidates []string
	hypothesis string
	timeout    time.Duration
	logger     logger.Logger
}

// NewProvider creates an uninitialized provider. No network contact
// happens until the first Client call.
func NewProvider(baseURL string, candidates []string, hypothesisTemplate string, timeout time.Duration, log logger.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		candidates: candidates,
		hypothesis: hypothesisTemplate,
		timeout:    timeout,
		logger:     log,
	}
}

// Client returns the shared zero-shot client, constructing and warming
// it up on first use. The mutex serializes concurrent first use so the
// warmup happens at most once. A failed warmup leaves the provider
// uninitialized; the next request retries construction, so a sidecar
// that comes up late does not wedge the process.
func (p *Provider) Client(ctx context.Context) (*Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		return p.client, nil
	}

	client := NewClient(p.baseURL, p.candidates, p.hypothesis, p.timeout)

	start := time.Now()
	modelVersion, err := client.Health(ctx)
	if err != nil {
		p.logger.Error("zero-shot warmup failed",
			logger.String("service_url", p.baseURL),
			logger.Error(err))
		return nil, err
	}

	p.logger.Info("zero-shot model ready",
		logger.String("service_url", p.baseURL),
		logger.String("model_version", modelVersion),
		logger.Duration("warmup", time.Since(start)))

	p.client = client
	return p.client, nil
}

// Healthy reports whether the sidecar currently answers its health
// endpoint. Used by the readiness and ml-health endpoints; does not
// initialize the shared client.
func (p *Provider) Healthy(ctx context.Context) (latencyMs int64, modelVersion string, err error) {
	probe := NewClient(p.baseURL, p.candidates, p.hypothesis, p.timeout)
	reachable, latencyMs, modelVersion, err := doHealth(ctx, probe.httpClient, p.baseURL)
	if err != nil && !reachable {
		return latencyMs, "", err
	}
	return latencyMs, modelVersion, err
}
