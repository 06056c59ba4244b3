// Package domain defines the core types shared across the mail-triage service.
package domain

// Label is the final triage category for an email.
// The set is closed and never extended at runtime.
type Label string

const (
	// LabelProdutivo marks work-related, actionable email.
	LabelProdutivo Label = "Produtivo"
	// LabelImprodutivo marks social, promotional or otherwise non-actionable email.
	LabelImprodutivo Label = "Improdutivo"
)

// Origin identifies which stage of the decision policy produced the final label.
type Origin string

const (
	// OriginRule means a strong lexical rule short-circuited classification.
	OriginRule Origin = "rule"
	// OriginModel means the zero-shot model output was trusted as-is.
	OriginModel Origin = "model"
	// OriginModelFallback means the model score was below the confidence
	// threshold and the keyword fallback corrected the label.
	OriginModelFallback Origin = "model+fallback"
)

// ClassificationResult is the outcome of triaging a single email.
type ClassificationResult struct {
	Label  Label   `json:"label"`
	Score  float64 `json:"score"`
	Origin Origin  `json:"origin"`
	// Raw carries an opaque audit record: the rule reason or the full
	// zero-shot output that led to this result.
	Raw any `json:"raw,omitempty"`
}
