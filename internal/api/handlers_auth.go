// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

package api

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/navakit/nava/internal/metrics"
	"github.com/navakit/nava/internal/models"
	"github.com/navakit/nava/internal/platform"
)

// tokenRequest is the client-credentials payload for POST /auth/token.
type tokenRequest struct {
	ClientID     string `json:"client_id" validate:"required"`
	ClientSecret string `json:"client_secret" validate:"required"`
}

// tokenResponse is the issued access token.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Token exchanges client credentials for a JWT access token.
//
// @Summary Issue access token
// @Description Exchanges client credentials for a bearer token used on all /api/v1 data endpoints.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body api.tokenRequest true "Client credentials"
// @Success 200 {object} models.APIResponse{data=api.tokenResponse} "Access token"
// @Failure 400 {object} models.APIResponse "Malformed request"
// @Failure 401 {object} models.APIResponse "Invalid credentials"
// @Router /auth/token [post]
func (h *Handler) Token(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.jwt == nil {
		respondError(w, r, http.StatusServiceUnavailable, models.ErrCodeInternal, "token issuance is not enabled", nil)
		return
	}

	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, "malformed JSON body", nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}

	idOK := subtle.ConstantTimeCompare([]byte(req.ClientID), []byte(h.config.Security.ClientID)) == 1
	secretOK := subtle.ConstantTimeCompare([]byte(req.ClientSecret), []byte(h.config.Security.ClientSecret)) == 1
	if !idOK || !secretOK {
		metrics.APIAuthFailures.WithLabelValues("bad_client_credentials").Inc()
		respondError(w, r, http.StatusUnauthorized, models.ErrCodeUnauthorized, "invalid client credentials", nil)
		return
	}

	token, err := h.jwt.GenerateToken(req.ClientID, "client")
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeInternal, "failed to issue token", err)
		return
	}

	respondJSON(w, r, http.StatusOK, models.NewSuccessResponse(tokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.jwt.TokenTTL().Seconds()),
	}, time.Since(start)))
}

// Preferences imports the listener's taste profile from the external music
// platform and maps it onto catalog genres and artists.
//
// @Summary Import listener preferences
// @Description Fetches the listener's top artists and genres from the connected music platform using the platform token supplied in the X-Platform-Token header.
// @Tags Auth
// @Produce json
// @Param X-Platform-Token header string true "Music platform access token"
// @Success 200 {object} models.APIResponse{data=models.Preferences} "Mapped preferences"
// @Failure 400 {object} models.APIResponse "Missing platform token"
// @Failure 502 {object} models.APIResponse "Platform request failed"
// @Failure 503 {object} models.APIResponse "Platform import disabled or circuit open"
// @Security BearerAuth
// @Router /preferences [get]
func (h *Handler) Preferences(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.platform == nil {
		respondError(w, r, http.StatusServiceUnavailable, models.ErrCodeUpstream, "platform import is not enabled", nil)
		return
	}

	userToken := r.Header.Get("X-Platform-Token")
	if userToken == "" {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, "X-Platform-Token header is required", nil)
		return
	}

	prefs, err := h.platform.FetchPreferences(r.Context(), userToken)
	if err != nil {
		if errors.Is(err, platform.ErrUnavailable) {
			respondError(w, r, http.StatusServiceUnavailable, models.ErrCodeUpstream, "music platform temporarily unavailable", nil)
			return
		}
		respondError(w, r, http.StatusBadGateway, models.ErrCodeUpstream, "failed to fetch platform preferences", err)
		return
	}

	respondJSON(w, r, http.StatusOK, models.NewSuccessResponse(prefs, time.Since(start)))
}
