package api

import (
	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/mail-triage/internal/config"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler, cfg *config.Config) {
	// Health and readiness checks
	router.GET("/healthz", handler.Healthz)
	router.GET("/health", handler.Health)
	router.GET("/ready", handler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(handler.telemetry.Handler()))

	// Classification endpoint, rate-limited
	router.POST("/classify",
		RateLimitMiddleware(cfg.Service.RateLimitRPS, cfg.Service.RateLimitBurst),
		handler.Classify)

	// Admin API, JWT-protected when a secret is configured
	v1 := ProtectedGroup(router, "/api/v1", cfg.Auth.JWTSecret)

	rules := v1.Group("/rules")
	rules.GET("", handler.ListRules) // GET /api/v1/rules

	metrics := v1.Group("/metrics")
	metrics.GET("/ml-health", handler.GetMLHealth) // GET /api/v1/metrics/ml-health
}
