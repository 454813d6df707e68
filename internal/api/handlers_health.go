// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/indradhanu/internal/apperrors"
	"github.com/tomtom215/indradhanu/internal/models"
)

// Root returns the service banner.
//
// @Summary Service banner
// @Description Returns the API name and links to the docs and health endpoints
// @Tags Core
// @Produce json
// @Success 200 {object} models.RootResponse
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &models.RootResponse{
		Message: "🌾 Crop Recommendation API v2.0",
		Docs:    "/docs",
		Health:  "/health",
	})
}

// Health reports model and dependency state. It always answers 200 so
// dashboards can read the body; use /health/ready for gating traffic.
//
// @Summary Get service health
// @Description Returns model load state, dataset size and weather integration status
// @Tags Core
// @Produce json
// @Success 200 {object} models.HealthStatus
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	status := models.HealthStatus{
		Status:  "degraded",
		Weather: "disabled",
		Uptime:  time.Since(h.startTime).Seconds(),
		Version: h.version,
	}

	if h.modelsReady() {
		stats := h.recommender.Stats()
		status.Status = "healthy"
		status.ModelsLoaded = true
		status.Crops = stats.Crops
		status.Records = stats.Records
		status.FromCache = stats.FromCache
		if !stats.TrainedAt.IsZero() {
			trained := stats.TrainedAt
			status.TrainedAt = &trained
		}
	}
	if h.weather != nil && h.weather.Configured() {
		status.Weather = "configured"
	}

	respondJSON(w, http.StatusOK, &status)
}

// HealthLive is the liveness probe.
//
// @Summary Liveness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.ProbeStatus
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &models.ProbeStatus{Status: "alive"})
}

// HealthReady is the readiness probe. It fails until models are loaded.
//
// @Summary Readiness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.ProbeStatus
// @Failure 503 {object} models.ErrorResponse
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !h.modelsReady() {
		respondServiceError(w, r, apperrors.ErrNotReady, "")
		return
	}
	respondJSON(w, http.StatusOK, &models.ProbeStatus{Status: "ready"})
}
