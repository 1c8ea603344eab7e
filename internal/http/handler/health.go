package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"notely/internal/http/handler/middleware"
	"time"

	"go.uber.org/zap"
)

var (
	Health  = "GET /healthz"
	Metrics = "GET /metrics"
)

const pingTimeout = 2 * time.Second

type HealthHandler struct {
	logs   *zap.SugaredLogger
	pinger Pinger
}

func NewHealthHandler(logger *zap.SugaredLogger, pinger Pinger) *HealthHandler {
	return &HealthHandler{
		logs:   logger,
		pinger: pinger,
	}
}

// HandleHealth reports 503 while the database is unreachable.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	status, code := "ok", http.StatusOK
	if err := h.pinger.Ping(ctx); err != nil {
		status, code = "unavailable", http.StatusServiceUnavailable
		h.logs.Errorw("health check failed",
			"error", err,
			"handler", Health,
			"request_id", middleware.RequestIDFromContext(r.Context()))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(map[string]string{"status": status}); err != nil {
		h.logs.Errorw("failed to encode response", "error", err)
	}
}
