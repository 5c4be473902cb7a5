package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/recipegraph-backend/internal/platform/logger"
)

// Pinger verifies connectivity to the graph store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	log   *logger.Logger
	store Pinger
}

func NewHealthHandler(log *logger.Logger, store Pinger) *HealthHandler {
	return &HealthHandler{log: log.With("handler", "HealthHandler"), store: store}
}

// GET /health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "neo4j": "not configured"})
		return
	}
	if err := h.store.Ping(ctx); err != nil {
		h.log.Warn("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "neo4j": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "neo4j": "connected"})
}
