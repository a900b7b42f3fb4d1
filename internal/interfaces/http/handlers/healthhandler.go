package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// PingFunc checks that the active storage backend is reachable.
type PingFunc func(ctx context.Context) error

type HealthHandler struct {
	backend string
	ping    PingFunc
	logger  logger.Interface
}

// NewHealthHandler creates a health handler. ping may be nil.
func NewHealthHandler(backend string, ping PingFunc, log logger.Interface) *HealthHandler {
	return &HealthHandler{backend: backend, ping: ping, logger: log}
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			h.logger.Warnw("storage backend unreachable", "backend", h.backend, "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"service": "helpdesk",
				"backend": h.backend,
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "helpdesk",
		"backend": h.backend,
	})
}
