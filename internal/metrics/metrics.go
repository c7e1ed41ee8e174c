// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

// Package metrics defines the Prometheus instrumentation for the service:
// HTTP endpoint latency and throughput, rate limiting, the recommendation
// pipeline, catalog size, and the outbound platform client.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	APIAuthFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_auth_failures_total",
			Help: "Total number of rejected authentication attempts",
		},
		[]string{"reason"},
	)

	// Recommendation pipeline metrics.
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"ranked"}, // "true" when favorite artists drove ranking
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "End-to-end recommendation pipeline duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	RecommendationEmpty = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendations_empty_total",
			Help: "Recommendation requests whose filter matched no songs",
		},
	)

	// Catalog metrics, set once at startup.
	CatalogSongs = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_songs",
			Help: "Number of songs in the loaded catalog",
		},
	)

	CatalogArtists = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_artists",
			Help: "Number of artists in the loaded catalog",
		},
	)

	CatalogSongsByGenre = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_songs_by_genre",
			Help: "Number of songs per genre in the loaded catalog",
		},
		[]string{"genre"},
	)

	// Outbound platform client metrics.
	PlatformRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "platform_requests_total",
			Help: "Total number of outbound music platform requests",
		},
		[]string{"operation", "outcome"}, // outcome: "ok", "error", "open_circuit"
	)

	PlatformBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "platform_breaker_state",
			Help: "Platform circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
	)
)

// RecordAPIRequest records one completed HTTP request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one pipeline run.
func RecordRecommendation(ranked bool, empty bool, duration time.Duration) {
	label := "false"
	if ranked {
		label = "true"
	}
	RecommendationsTotal.WithLabelValues(label).Inc()
	RecommendationDuration.Observe(duration.Seconds())
	if empty {
		RecommendationEmpty.Inc()
	}
}

// SetCatalogStats publishes catalog sizes, called once after load.
func SetCatalogStats(songs, artists int, byGenre map[string]int) {
	CatalogSongs.Set(float64(songs))
	CatalogArtists.Set(float64(artists))
	for genre, count := range byGenre {
		CatalogSongsByGenre.WithLabelValues(genre).Set(float64(count))
	}
}
