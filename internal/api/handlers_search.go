// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/navakit/nava/internal/catalog"
	"github.com/navakit/nava/internal/models"
)

// searchParams carries the validated search query.
type searchParams struct {
	Query string `validate:"required,min=1,max=200"`
	Limit int    `validate:"min=0,max=20"`
}

func parseSearchParams(r *http.Request) searchParams {
	return searchParams{
		Query: strings.TrimSpace(r.URL.Query().Get("q")),
		Limit: getIntParam(r, "limit", 0),
	}
}

// SearchArtists finds artists by fuzzy name match on English or Farsi names.
//
// @Summary Search artists
// @Tags Search
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Maximum results (default 5, max 20)"
// @Success 200 {object} models.APIResponse{data=[]catalog.ArtistMatch} "Scored matches, best first"
// @Failure 400 {object} models.APIResponse "Missing query"
// @Security BearerAuth
// @Router /search/artists [get]
func (h *Handler) SearchArtists(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	params := parseSearchParams(r)
	if apiErr := validateRequest(&params); apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}

	matches := h.catalog.SearchArtists(params.Query, params.Limit)
	if matches == nil {
		matches = []catalog.ArtistMatch{}
	}

	respondJSON(w, r, http.StatusOK, models.NewSuccessResponse(matches, time.Since(start)))
}

// SearchSongs finds songs by fuzzy name match on English or Farsi names.
//
// @Summary Search songs
// @Tags Search
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Maximum results (default 5, max 20)"
// @Success 200 {object} models.APIResponse{data=[]catalog.SongMatch} "Scored matches, best first"
// @Failure 400 {object} models.APIResponse "Missing query"
// @Security BearerAuth
// @Router /search/songs [get]
func (h *Handler) SearchSongs(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	params := parseSearchParams(r)
	if apiErr := validateRequest(&params); apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}

	matches := h.catalog.SearchSongs(params.Query, params.Limit)
	if matches == nil {
		matches = []catalog.SongMatch{}
	}

	respondJSON(w, r, http.StatusOK, models.NewSuccessResponse(matches, time.Since(start)))
}
