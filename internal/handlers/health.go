package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/akhileshasapu/passvault/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

const healthCheckTimeout = 2 * time.Second

type HealthHandler struct {
	store Pinger
	log   *slog.Logger
}

func NewHealthHandler(store Pinger, log *slog.Logger) *HealthHandler {
	if log == nil {
		log = slog.Default()
	}
	return &HealthHandler{store: store, log: log}
}

func (h *HealthHandler) Check(c *drift.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.log.WarnContext(ctx, "health check failed", "error", err)
		_ = c.JSON(503, dto.HealthResponse{Status: "unavailable"})
		return
	}

	_ = c.JSON(200, dto.HealthResponse{Status: "ok"})
}
