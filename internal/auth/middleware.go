// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/navakit/nava/internal/logging"
	"github.com/navakit/nava/internal/metrics"
	"github.com/navakit/nava/internal/models"
)

type contextKey string

const claimsKey contextKey = "auth_claims"

// ClaimsFromContext returns the claims stored by the JWT middleware, nil
// when the request was not token-authenticated.
func ClaimsFromContext(ctx context.Context) *Claims {
	if claims, ok := ctx.Value(claimsKey).(*Claims); ok {
		return claims
	}
	return nil
}

// Middleware authenticates requests for a route group.
func Middleware(mode string, jwtManager *JWTManager, basicManager *BasicAuthManager) func(http.Handler) http.Handler {
	switch mode {
	case "jwt":
		return jwtMiddleware(jwtManager)
	case "basic":
		return basicMiddleware(basicManager)
	default:
		// "none": validated at config load, pass everything through.
		return func(next http.Handler) http.Handler { return next }
	}
}

// jwtMiddleware accepts a bearer token in the Authorization header, or an
// access_token query parameter for clients that cannot set headers.
func jwtMiddleware(manager *JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := bearerToken(r)
			if tokenString == "" {
				unauthorized(w, r, "missing_token", "Missing access token")
				return
			}
			claims, err := manager.ValidateToken(tokenString)
			if err != nil {
				unauthorized(w, r, "invalid_token", "Invalid or expired access token")
				return
			}
			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func basicMiddleware(manager *BasicAuthManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := manager.ValidateCredentials(r.Header.Get("Authorization")); err != nil {
				w.Header().Set("WWW-Authenticate", `Basic realm="nava"`)
				unauthorized(w, r, "invalid_credentials", "Invalid credentials")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts the access token from the Authorization header or
// the access_token query parameter, header first.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return r.URL.Query().Get("access_token")
}

func unauthorized(w http.ResponseWriter, r *http.Request, reason, message string) {
	metrics.APIAuthFailures.WithLabelValues(reason).Inc()
	logging.Ctx(r.Context()).Warn().
		Str("reason", reason).
		Str("path", r.URL.Path).
		Msg("Request rejected")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	resp := models.NewErrorResponse(models.ErrCodeUnauthorized, message)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to encode error response")
	}
}
