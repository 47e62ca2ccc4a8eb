package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"roundup/internal/logger"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports process and store liveness
type HealthHandler struct {
	store Pinger
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// HealthResponse describes service health.
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

// Health reports whether the store answers a ping
// @Summary     Health check
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse "Healthy"
// @Failure     503 {object} HealthResponse "Store unreachable"
// @Router      /api/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		logger.Get().Warnw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Store: "disconnected"})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Store: "connected"})
}
