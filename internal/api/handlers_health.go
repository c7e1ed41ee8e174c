// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

package api

import (
	"net/http"
	"time"

	"github.com/navakit/nava/internal/models"
)

// HealthStatus is the payload of the health endpoints.
type HealthStatus struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	CatalogSongs  int     `json:"catalog_songs"`
	CatalogLoaded bool    `json:"catalog_loaded"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// serviceVersion is stamped at build time via -ldflags.
var serviceVersion = "dev"

// Health handles health check requests
//
// @Summary Get service health status
// @Description Returns health status including catalog load state and uptime
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=api.HealthStatus} "Health status"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	loaded := h.catalog != nil
	songs := 0
	if loaded {
		songs = h.catalog.Stats().Songs
	}

	status := "healthy"
	if !loaded || songs == 0 {
		status = "degraded"
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: HealthStatus{
			Status:        status,
			Version:       serviceVersion,
			CatalogSongs:  songs,
			CatalogLoaded: loaded,
			UptimeSeconds: time.Since(h.startTime).Seconds(),
		},
		Metadata: &models.APIMetadata{
			Timestamp: time.Now().UTC(),
		},
	})
}

// HealthLive handles liveness probe requests. Returns 200 if the process
// is alive, regardless of dependencies.
//
// @Summary Liveness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse "Process is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   map[string]string{"status": "alive"},
		Metadata: &models.APIMetadata{
			Timestamp: time.Now().UTC(),
		},
	})
}

// HealthReady handles readiness probe requests. Ready means the catalog
// loaded with at least one song.
//
// @Summary Readiness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse "Service is ready"
// @Failure 503 {object} models.APIResponse "Catalog not loaded"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.catalog == nil || h.catalog.Stats().Songs == 0 {
		respondError(w, r, http.StatusServiceUnavailable, models.ErrCodeInternal, "Catalog not loaded", nil)
		return
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   map[string]string{"status": "ready"},
		Metadata: &models.APIMetadata{
			Timestamp: time.Now().UTC(),
		},
	})
}
