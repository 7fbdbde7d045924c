package rest

import (
	"context"
	"net/http"
	"property-search-service/internal/contextkeys"
	"property-search-service/internal/core/port"
	"time"
)

const healthCheckTimeout = 3 * time.Second

type SystemHandler struct {
	health port.HealthCheckPort
}

func NewSystemHandler(health port.HealthCheckPort) *SystemHandler {
	return &SystemHandler{health: health}
}

// Welcome обрабатывает GET /
func (h *SystemHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, MessageResponse{Message: "Welcome to Property Search API"})
}

// Health обрабатывает GET /health, проверяя доступность базы
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Health"})

	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		logger.Error("Database is unreachable", err, nil)
		WriteJSONError(w, http.StatusServiceUnavailable, "Database is unavailable")
		return
	}

	RespondWithJSON(w, http.StatusOK, StatusResponse{Status: "OK"})
}
