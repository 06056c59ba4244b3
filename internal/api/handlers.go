package api

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/mail-triage/internal/classifier"
	"github.com/jonesrussell/mail-triage/internal/domain"
	"github.com/jonesrussell/mail-triage/internal/extract"
	"github.com/jonesrussell/mail-triage/internal/logger"
	"github.com/jonesrussell/mail-triage/internal/telemetry"
)

// TriageService is the classification surface the handlers consume.
type TriageService interface {
	Classify(ctx context.Context, text string) (*domain.ClassificationResult, error)
	SuggestReply(text string, label domain.Label) string
}

// SidecarHealth probes the zero-shot sidecar for readiness reporting.
type SidecarHealth interface {
	Healthy(ctx context.Context) (latencyMs int64, modelVersion string, err error)
}

// Handler handles HTTP requests for the mail-triage API.
type Handler struct {
	triage         TriageService
	sidecar        SidecarHealth
	telemetry      *telemetry.Provider
	logger         logger.Logger
	serviceName    string
	serviceVersion string
	maxUploadBytes int64
}

// NewHandler creates an API handler.
func NewHandler(
	triage TriageService,
	sidecar SidecarHealth,
	tp *telemetry.Provider,
	log logger.Logger,
	serviceName, serviceVersion string,
	maxUploadBytes int64,
) *Handler {
	return &Handler{
		triage:         triage,
		sidecar:        sidecar,
		telemetry:      tp,
		logger:         log,
		serviceName:    serviceName,
		serviceVersion: serviceVersion,
		maxUploadBytes: maxUploadBytes,
	}
}

// Classify handles POST /classify. Accepts a multipart or URL-encoded
// form with either an email_text field or an email_file upload (.txt or
// .pdf). Pasted text wins over an uploaded file when both arrive.
func (h *Handler) Classify(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	text := c.PostForm("email_text")

	if text == "" {
		fileText, ok := h.textFromUpload(c)
		if !ok {
			return
		}
		text = fileText
	}

	result, err := h.triage.Classify(c.Request.Context(), text)
	if err != nil {
		h.classifyError(c, err)
		return
	}

	c.JSON(http.StatusOK, ClassifyResponse{
		Category:       string(result.Label),
		Confidence:     roundConfidence(result.Score),
		SuggestedReply: h.triage.SuggestReply(text, result.Label),
		Origin:         string(result.Origin),
	})
}

// textFromUpload pulls text out of an email_file upload, if present.
// Returns ok=false after writing an error response.
func (h *Handler) textFromUpload(c *gin.Context) (string, bool) {
	file, header, err := c.Request.FormFile("email_file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			// No upload either; the empty-input check downstream answers.
			return "", true
		}
		h.logger.Warn("upload rejected", logger.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": msgFileUnreadable})
		return "", false
	}
	defer closeUpload(file, h.logger)

	if header.Filename == "" {
		return "", true
	}

	text, err := extract.FromFile(file, header.Filename)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgUnsupportedFormat})
			return "", false
		}
		h.logger.Warn("text extraction failed",
			logger.String("filename", header.Filename),
			logger.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": msgFileUnreadable})
		return "", false
	}

	h.telemetry.RecordUpload(extract.Format(header.Filename))
	return text, true
}

func closeUpload(file multipart.File, log logger.Logger) {
	if err := file.Close(); err != nil {
		log.Warn("closing upload failed", logger.Error(err))
	}
}

func (h *Handler) classifyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgEmptyInput})
	case errors.Is(err, domain.ErrModelUnavailable):
		h.logger.Error("classification unavailable", logger.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": msgModelUnavailable})
	default:
		h.logger.Error("classification failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor."})
	}
}

// Healthz handles GET /healthz, the liveness probe.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Health handles GET /health with the full dependency picture. The
// sidecar being down degrades the service rather than failing it: rule
// short-circuits still work, only model-path requests return 502.
func (h *Handler) Health(c *gin.Context) {
	response := gin.H{
		"status":  "healthy",
		"service": h.serviceName,
		"version": h.serviceVersion,
	}

	latencyMs, modelVersion, err := h.sidecar.Healthy(c.Request.Context())
	check := gin.H{"latency_ms": latencyMs}
	if err != nil {
		response["status"] = "degraded"
		check["status"] = "unhealthy"
		check["message"] = err.Error()
	} else {
		check["status"] = "healthy"
		check["model_version"] = modelVersion
	}
	response["checks"] = gin.H{"zero_shot": check}

	c.JSON(http.StatusOK, response)
}

// Ready handles GET /ready. Ready means the sidecar answers; a pod that
// cannot classify by model should not receive traffic.
func (h *Handler) Ready(c *gin.Context) {
	if _, _, err := h.sidecar.Healthy(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"checks": gin.H{"zero_shot": err.Error()},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"checks": gin.H{"zero_shot": "ok"},
	})
}

// ListRules handles GET /api/v1/rules.
func (h *Handler) ListRules(c *gin.Context) {
	rules := classifier.RulePatterns()

	total := 0
	for _, patterns := range rules {
		total += len(patterns)
	}

	c.JSON(http.StatusOK, RulesListResponse{
		Rules: rules,
		Total: total,
	})
}

// GetMLHealth handles GET /api/v1/metrics/ml-health.
func (h *Handler) GetMLHealth(c *gin.Context) {
	latencyMs, modelVersion, err := h.sidecar.Healthy(c.Request.Context())

	response := MLHealthResponse{
		Reachable:    err == nil,
		LatencyMs:    latencyMs,
		ModelVersion: modelVersion,
		LastChecked:  time.Now().UTC(),
	}
	if err != nil {
		response.Error = err.Error()
	}

	c.JSON(http.StatusOK, response)
}
