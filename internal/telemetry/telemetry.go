// Package telemetry provides OpenTelemetry instrumentation for the
// mail-triage service. It exports Prometheus metrics and a tracer.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "mail-triage"

// Metrics holds all mail-triage Prometheus metrics.
type Metrics struct {
	// Pipeline metrics
	EmailsClassified   *prometheus.CounterVec
	ClassifyFailed     *prometheus.CounterVec
	ClassifyDuration   prometheus.Histogram
	RuleShortCircuits  prometheus.Counter
	FallbackDecisions  prometheus.Counter

	// Zero-shot sidecar metrics
	ZeroShotLatency prometheus.Histogram
	ZeroShotErrors  prometheus.Counter

	// Upload metrics
	UploadsExtracted *prometheus.CounterVec
}

// Provider wraps telemetry providers.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics.
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

// RecordClassification records one finished classification.
func (p *Provider) RecordClassification(label, origin string, duration time.Duration) {
	if p == nil {
		return
	}
	p.Metrics.EmailsClassified.WithLabelValues(label, origin).Inc()
	p.Metrics.ClassifyDuration.Observe(duration.Seconds())
	switch origin {
	case "rule":
		p.Metrics.RuleShortCircuits.Inc()
	case "model+fallback":
		p.Metrics.FallbackDecisions.Inc()
	}
}

// RecordFailure records a failed classification by error code.
func (p *Provider) RecordFailure(errorCode string) {
	if p == nil {
		return
	}
	p.Metrics.ClassifyFailed.WithLabelValues(errorCode).Inc()
}

// RecordZeroShot records a zero-shot sidecar round trip.
func (p *Provider) RecordZeroShot(duration time.Duration, err error) {
	if p == nil {
		return
	}
	p.Metrics.ZeroShotLatency.Observe(duration.Seconds())
	if err != nil {
		p.Metrics.ZeroShotErrors.Inc()
	}
}

// RecordUpload records a text extraction by source format.
func (p *Provider) RecordUpload(format string) {
	if p == nil {
		return
	}
	p.Metrics.UploadsExtracted.WithLabelValues(format).Inc()
}

func initMetrics() *Metrics {
	return &Metrics{
		EmailsClassified: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mailtriage_emails_classified_total",
			Help: "Total emails classified, by final label and decision origin",
		}, []string{"label", "origin"}),

		ClassifyFailed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mailtriage_classify_failed_total",
			Help: "Total classification requests that failed",
		}, []string{"error_code"}),

		ClassifyDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "mailtriage_classify_duration_seconds",
			Help:    "Time to classify a single email end to end",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		}),

		RuleShortCircuits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mailtriage_rule_short_circuits_total",
			Help: "Classifications decided by a strong rule before model inference",
		}),

		FallbackDecisions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mailtriage_fallback_decisions_total",
			Help: "Classifications corrected by the low-confidence keyword fallback",
		}),

		ZeroShotLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "mailtriage_zeroshot_latency_seconds",
			Help:    "Latency of zero-shot sidecar inference calls",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		}),

		ZeroShotErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mailtriage_zeroshot_errors_total",
			Help: "Failed zero-shot sidecar inference calls",
		}),

		UploadsExtracted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mailtriage_uploads_extracted_total",
			Help: "Uploaded files turned into text, by format",
		}, []string{"format"}),
	}
}
