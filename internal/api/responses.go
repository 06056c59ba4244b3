package api

import (
	"math"
	"time"
)

// User-facing error messages. The frontend shows these verbatim, so
// they are Portuguese like the rest of the product surface.
const (
	msgEmptyInput        = "Nenhum texto de e-mail enviado."
	msgUnsupportedFormat = "Formato não suportado. Envie .txt ou .pdf."
	msgFileUnreadable    = "Não foi possível ler o arquivo enviado."
	msgModelUnavailable  = "Serviço de classificação indisponível. Tente novamente."
)

// ClassifyResponse is the triage result returned to the frontend.
type ClassifyResponse struct {
	Category       string  `json:"category"`
	Confidence     float64 `json:"confidence"`
	SuggestedReply string  `json:"suggested_reply"`
	Origin         string  `json:"origin"`
}

// RulesListResponse lists the compiled rule patterns by tier.
type RulesListResponse struct {
	Rules map[string][]string `json:"rules"`
	Total int                 `json:"total"`
}

// MLHealthResponse reports the zero-shot sidecar status.
type MLHealthResponse struct {
	Reachable    bool      `json:"reachable"`
	LatencyMs    int64     `json:"latency_ms"`
	ModelVersion string    `json:"model_version,omitempty"`
	Error        string    `json:"error,omitempty"`
	LastChecked  time.Time `json:"last_checked"`
}

// roundConfidence keeps the reported confidence at three decimals so
// the API output is stable across float formatting differences.
func roundConfidence(score float64) float64 {
	return math.Round(score*1000) / 1000
}
