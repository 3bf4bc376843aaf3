package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger reports reachability of one backing component
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports per-dependency health. A broken cache degrades
// the service but does not fail the check; a broken store does.
type HealthHandler struct {
	store Pinger
	cache Pinger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store, cache Pinger) *HealthHandler {
	return &HealthHandler{store: store, cache: cache}
}

// Health handles GET /api/health
func (h *HealthHandler) Health(c *gin.Context) {
	status := http.StatusOK
	report := gin.H{
		"status":   "ok",
		"database": "connected",
		"cache":    "connected",
	}

	if err := h.store.Ping(c.Request.Context()); err != nil {
		status = http.StatusServiceUnavailable
		report["status"] = "error"
		report["database"] = "unreachable"
		report["error"] = err.Error()
	}

	if err := h.cache.Ping(c.Request.Context()); err != nil {
		report["cache"] = "degraded"
	}

	c.JSON(status, report)
}
