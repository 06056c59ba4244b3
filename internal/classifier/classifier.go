package classifier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jonesrussell/mail-triage/internal/domain"
	"github.com/jonesrussell/mail-triage/internal/logger"
	"github.com/jonesrussell/mail-triage/internal/telemetry"
	"github.com/jonesrussell/mail-triage/internal/textnorm"
	"github.com/jonesrussell/mail-triage/internal/zeroshot"
)

// Decision policy constants.
const (
	// ruleScore is reported when a strong rule decides the label.
	ruleScore = 0.99
	// fallbackScoreCap bounds the reported score when the keyword
	// fallback had to correct a low-confidence model output.
	fallbackScoreCap = 0.59
)

// ModelClient is the zero-shot inference surface the policy consumes.
type ModelClient interface {
	Classify(ctx context.Context, text string) (*zeroshot.Result, error)
}

// ModelProvider supplies the lazily initialized shared model client.
type ModelProvider interface {
	Client(ctx context.Context) (ModelClient, error)
}

// Config holds decision policy settings.
type Config struct {
	// MinConfidence is the minimum top model score trusted without
	// the keyword fallback.
	MinConfidence float64
}

// Service orchestrates the triage pipeline: normalize, strong rules,
// zero-shot model, confidence fallback. Stateless per request; the only
// shared state is the model client owned by the provider.
type Service struct {
	model         ModelProvider
	minConfidence float64
	telemetry     *telemetry.Provider
	logger        logger.Logger
}

// NewService creates a triage service.
func NewService(model ModelProvider, cfg Config, log logger.Logger, tp *telemetry.Provider) *Service {
	return &Service{
		model:         model,
		minConfidence: cfg.MinConfidence,
		telemetry:     tp,
		logger:        log,
	}
}

// Classify normalizes text and runs the decision policy.
// Returns domain.ErrEmptyInput when nothing is left after
// normalization, and domain.ErrModelUnavailable when the zero-shot
// sidecar cannot be constructed or invoked. Model failures are never
// replaced by a default label; a broken deployment must stay visible.
func (s *Service) Classify(ctx context.Context, text string) (*domain.ClassificationResult, error) {
	normalized := textnorm.Normalize(text)
	if normalized == "" {
		s.telemetry.RecordFailure("empty_input")
		return nil, domain.ErrEmptyInput
	}
	return s.decide(ctx, normalized)
}

// decide runs the layered decision procedure on non-empty normalized
// text. Linear, no retries: rule short-circuit, then model, then the
// confidence-gated keyword fallback.
func (s *Service) decide(ctx context.Context, normalized string) (*domain.ClassificationResult, error) {
	start := time.Now()

	var span trace.Span
	if s.telemetry != nil {
		ctx, span = s.telemetry.Tracer.Start(ctx, "classifier.decide")
		defer span.End()
	}

	lower := strings.ToLower(normalized)

	if MatchesStrongImprodutivo(lower) {
		result := &domain.ClassificationResult{
			Label:  domain.LabelImprodutivo,
			Score:  ruleScore,
			Origin: domain.OriginRule,
			Raw:    map[string]string{"reason": "rule_improdutivo"},
		}
		s.finish(span, result, start)
		return result, nil
	}

	client, err := s.model.Client(ctx)
	if err != nil {
		s.telemetry.RecordFailure("model_unavailable")
		return nil, fmt.Errorf("%w: %w", domain.ErrModelUnavailable, err)
	}

	inferenceStart := time.Now()
	out, err := client.Classify(ctx, normalized)
	s.telemetry.RecordZeroShot(time.Since(inferenceStart), err)
	if err != nil {
		s.telemetry.RecordFailure("model_unavailable")
		return nil, fmt.Errorf("%w: %w", domain.ErrModelUnavailable, err)
	}

	topSentence, topScore := out.Top()
	label := labelForSentence(topSentence)
	origin := domain.OriginModel

	if topScore < s.minConfidence {
		// Low-confidence model output: re-derive the label from weak
		// work signals and cap the score to reflect the uncertainty.
		if matchesMildProdutivo(lower) {
			label = domain.LabelProdutivo
		} else {
			label = domain.LabelImprodutivo
		}
		topScore = min(topScore, fallbackScoreCap)
		origin = domain.OriginModelFallback
	}

	result := &domain.ClassificationResult{
		Label:  label,
		Score:  topScore,
		Origin: origin,
		Raw:    out,
	}
	s.finish(span, result, start)
	return result, nil
}

func (s *Service) finish(span trace.Span, result *domain.ClassificationResult, start time.Time) {
	duration := time.Since(start)

	if span != nil {
		span.SetAttributes(
			attribute.String("triage.label", string(result.Label)),
			attribute.String("triage.origin", string(result.Origin)),
			attribute.Float64("triage.score", result.Score),
		)
	}

	s.telemetry.RecordClassification(string(result.Label), string(result.Origin), duration)

	s.logger.Info("email classified",
		logger.String("label", string(result.Label)),
		logger.String("origin", string(result.Origin)),
		logger.Float64("score", result.Score),
		logger.Duration("duration", duration),
	)
}

// SuggestReply maps the original text and final label to a reply
// template. Total function, never fails.
func (s *Service) SuggestReply(text string, label domain.Label) string {
	return Suggest(text, label)
}
