// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/navakit/nava/docs"

	"github.com/navakit/nava/internal/auth"
	"github.com/navakit/nava/internal/config"
	"github.com/navakit/nava/internal/middleware"
	"github.com/navakit/nava/internal/models"
)

// Router wires handlers, middleware, and auth into an http.Handler.
type Router struct {
	handler *Handler
	mw      *Middleware

	authMode  string
	jwt       *auth.JWTManager
	basicAuth *auth.BasicAuthManager
}

// NewRouter builds the router from the service configuration.
func NewRouter(cfg *config.Config, handler *Handler, jwtManager *auth.JWTManager, basicManager *auth.BasicAuthManager) *Router {
	mwConfig := DefaultMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mwConfig.RateLimitRequests = cfg.Security.RateLimitReqs
	mwConfig.RateLimitWindow = cfg.Security.RateLimitWindow
	mwConfig.RateLimitDisabled = cfg.Security.RateLimitDisabled

	return &Router{
		handler:   handler,
		mw:        NewMiddleware(mwConfig),
		authMode:  cfg.Security.AuthMode,
		jwt:       jwtManager,
		basicAuth: basicManager,
	}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(router.mw.CORS())

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	// Health endpoints: permissive rate limit so monitors never trip.
	r.Route("/health", func(r chi.Router) {
		r.Use(router.mw.RateLimitHealth())
		r.Use(SecurityHeaders())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// Prometheus metrics endpoint.
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// OpenAPI documentation.
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Token issuance: strict rate limit, no auth (it IS the auth).
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Use(router.mw.RateLimitAuth())
		r.Use(SecurityHeaders())
		r.Post("/token", router.handler.Token)
	})

	// Data API: authenticated, standard rate limit.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.mw.RateLimit())
		r.Use(SecurityHeaders())
		r.Use(auth.Middleware(router.authMode, router.jwt, router.basicAuth))

		r.Get("/genres", router.handler.Genres)
		r.Get("/artists", router.handler.Artists)
		r.Get("/artists/{id}", router.handler.ArtistByID)
		r.Get("/songs", router.handler.Songs)
		r.Get("/songs/{id}", router.handler.SongByID)
		r.Get("/search/artists", router.handler.SearchArtists)
		r.Get("/search/songs", router.handler.SearchSongs)
		r.Get("/recommendations", router.handler.Recommendations)
		r.Get("/preferences", router.handler.Preferences)
	})

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, "resource not found", nil)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, models.ErrCodeMethodNotAllowed, "method not allowed", nil)
}
