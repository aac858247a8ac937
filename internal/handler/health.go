package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/BrandishSpin_Go/internal/database"
	"github.com/osse101/BrandishSpin_Go/internal/logger"
)

// ReadinessTimeout bounds the database ping
const ReadinessTimeout = 2 * time.Second

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz checks database connectivity. A nil pool means the in-memory
// store is in use and the service is always ready.
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(dbPool database.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if dbPool == nil {
			respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), ReadinessTimeout)
		defer cancel()

		if err := dbPool.Ping(ctx); err != nil {
			logger.FromContext(r.Context()).Error(LogMsgReadinessFailed, "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  "unavailable",
				Message: "database connection failed",
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
