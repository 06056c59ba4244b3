package classifier

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/mail-triage/internal/domain"
	"github.com/jonesrussell/mail-triage/internal/logger"
	"github.com/jonesrussell/mail-triage/internal/zeroshot"
)

// stubModel implements ModelClient with a canned result.
type stubModel struct {
	result *zeroshot.Result
	err    error
	calls  int
}

func (s *stubModel) Classify(_ context.Context, _ string) (*zeroshot.Result, error) {
	s.calls++
	return s.result, s.err
}

// stubProvider implements ModelProvider.
type stubProvider struct {
	client ModelClient
	err    error
}

func (p *stubProvider) Client(_ context.Context) (ModelClient, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.client, nil
}

func newTestService(model *stubModel, providerErr error) *Service {
	return NewService(
		&stubProvider{client: model, err: providerErr},
		Config{MinConfidence: 0.60},
		logger.NewNop(),
		nil,
	)
}

func rankedResult(topSentence string, topScore float64) *zeroshot.Result {
	other := candidateImprodutivo
	if topSentence == candidateImprodutivo {
		other = candidateProdutivo
	}
	return &zeroshot.Result{
		Labels: []string{topSentence, other},
		Scores: []float64{topScore, 1 - topScore},
	}
}

func TestClassify_RulePrecedesModel(t *testing.T) {
	// Even a model that would say Produtivo must never be consulted
	// when a strong rule fires.
	model := &stubModel{result: rankedResult(candidateProdutivo, 0.97)}
	svc := newTestService(model, nil)

	result, err := svc.Classify(context.Background(), "Feliz aniversário! Parabéns!")
	require.NoError(t, err)

	assert.Equal(t, domain.LabelImprodutivo, result.Label)
	assert.Equal(t, 0.99, result.Score)
	assert.Equal(t, domain.OriginRule, result.Origin)
	assert.Equal(t, 0, model.calls, "rule hit must short-circuit model inference")
}

func TestClassify_EmptyInput(t *testing.T) {
	svc := newTestService(&stubModel{}, nil)

	for _, input := range []string{"", "   ", "\n\t  \r\n"} {
		_, err := svc.Classify(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrEmptyInput, "input %q", input)
	}
}

func TestClassify_ConfidentModelIsTrusted(t *testing.T) {
	model := &stubModel{result: rankedResult(candidateProdutivo, 0.82)}
	svc := newTestService(model, nil)

	result, err := svc.Classify(context.Background(), "Podemos alinhar os próximos passos da migração?")
	require.NoError(t, err)

	assert.Equal(t, domain.LabelProdutivo, result.Label)
	assert.InDelta(t, 0.82, result.Score, 1e-9)
	assert.Equal(t, domain.OriginModel, result.Origin)
	assert.GreaterOrEqual(t, result.Score, 0.60, "model origin implies the confidence gate passed")
}

func TestClassify_ThresholdBoundaryIsTrusted(t *testing.T) {
	model := &stubModel{result: rankedResult(candidateImprodutivo, 0.60)}
	svc := newTestService(model, nil)

	result, err := svc.Classify(context.Background(), "Passando para avisar que mudei de equipe.")
	require.NoError(t, err)

	assert.Equal(t, domain.OriginModel, result.Origin)
	assert.InDelta(t, 0.60, result.Score, 1e-9)
}

func TestClassify_LowConfidenceFallsBackToImprodutivo(t *testing.T) {
	// "Obrigado pela ajuda": no strong rule, no mild work signal, model
	// unsure at 0.55. The fallback lands on Improdutivo with the score
	// capped below the trust threshold.
	model := &stubModel{result: rankedResult(candidateProdutivo, 0.55)}
	svc := newTestService(model, nil)

	result, err := svc.Classify(context.Background(), "Obrigado pela ajuda")
	require.NoError(t, err)

	assert.Equal(t, domain.LabelImprodutivo, result.Label)
	assert.Equal(t, domain.OriginModelFallback, result.Origin)
	assert.LessOrEqual(t, result.Score, 0.59)
	assert.InDelta(t, 0.55, result.Score, 1e-9, "cap only lowers, never raises")
}

func TestClassify_LowConfidenceWithWorkSignalFallsBackToProdutivo(t *testing.T) {
	model := &stubModel{result: rankedResult(candidateImprodutivo, 0.52)}
	svc := newTestService(model, nil)

	result, err := svc.Classify(context.Background(), "Alguma novidade sobre o chamado de ontem?")
	require.NoError(t, err)

	assert.Equal(t, domain.LabelProdutivo, result.Label)
	assert.Equal(t, domain.OriginModelFallback, result.Origin)
	assert.LessOrEqual(t, result.Score, 0.59)
}

func TestClassify_FallbackScoreCappedAtMaximum(t *testing.T) {
	// A score just under the gate still gets clamped to 0.59.
	model := &stubModel{result: rankedResult(candidateProdutivo, 0.595)}
	svc := newTestService(model, nil)

	result, err := svc.Classify(context.Background(), "Conforme combinado, seguimos em contato.")
	require.NoError(t, err)

	assert.Equal(t, domain.OriginModelFallback, result.Origin)
	assert.InDelta(t, 0.59, result.Score, 1e-9)
}

func TestClassify_UnmappedSentenceDefaultsToProdutivo(t *testing.T) {
	model := &stubModel{result: &zeroshot.Result{
		Labels: []string{"frase desconhecida", candidateImprodutivo},
		Scores: []float64{0.91, 0.09},
	}}
	svc := newTestService(model, nil)

	result, err := svc.Classify(context.Background(), "Texto qualquer sem sinais fortes.")
	require.NoError(t, err)

	assert.Equal(t, domain.LabelProdutivo, result.Label, "unmapped candidate must default conservatively")
	assert.Equal(t, domain.OriginModel, result.Origin)
}

func TestClassify_ModelFailureIsFatal(t *testing.T) {
	model := &stubModel{err: zeroshot.ErrUnavailable}
	svc := newTestService(model, nil)

	_, err := svc.Classify(context.Background(), "Preciso de uma análise deste contrato.")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrModelUnavailable)
	assert.ErrorIs(t, err, zeroshot.ErrUnavailable)
}

func TestClassify_ProviderFailureIsFatal(t *testing.T) {
	svc := newTestService(nil, errors.New("warmup failed"))

	_, err := svc.Classify(context.Background(), "Preciso de uma análise deste contrato.")
	assert.ErrorIs(t, err, domain.ErrModelUnavailable)
}

func TestLabelForSentence(t *testing.T) {
	assert.Equal(t, domain.LabelProdutivo, labelForSentence(candidateProdutivo))
	assert.Equal(t, domain.LabelImprodutivo, labelForSentence(candidateImprodutivo))
	assert.Equal(t, domain.LabelProdutivo, labelForSentence("anything else"))
}
