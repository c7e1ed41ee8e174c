// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/navakit/nava/internal/logging"
	"github.com/navakit/nava/internal/metrics"
	"github.com/navakit/nava/internal/models"
	"github.com/navakit/nava/internal/recommend"
)

// Recommendations runs the recommendation pipeline for one query.
//
// @Summary Get song recommendations
// @Description Filters the catalog by genre and song type, samples candidates, ranks them against the listener's favorite artists, and returns the top matches.
// @Tags Recommendations
// @Produce json
// @Param genres query string true "Comma-separated genres" example(pop,rock)
// @Param artists query string false "Comma-separated favorite artist IDs" example(12,93)
// @Param song_type query string false "Required files: any, any_file, preview, full, preview_full"
// @Param limit query int false "Maximum songs returned (default 5, max 20)"
// @Success 200 {object} models.APIResponse{data=recommend.Response} "Recommendations"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Security BearerAuth
// @Router /recommendations [get]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, apiErr := parseRecommendRequest(r)
	if apiErr != nil {
		respondValidationError(w, r, apiErr)
		return
	}

	resp, err := h.engine.Recommend(r.Context(), req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// Client went away; nothing useful to write.
			logging.Ctx(r.Context()).Debug().Err(err).Msg("Recommendation canceled")
			return
		}
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, err.Error(), nil)
		return
	}

	metrics.RecordRecommendation(resp.Metadata.Ranked, len(resp.Songs) == 0, resp.Metadata.Elapsed)

	respondJSON(w, r, http.StatusOK, models.NewSuccessResponse(resp, time.Since(start)))
}

// parseRecommendRequest maps query parameters onto a pipeline request.
// Unknown genres, bad artist IDs, and unknown song types surface as
// field-level validation errors.
func parseRecommendRequest(r *http.Request) (*recommend.Request, *models.APIError) {
	q := r.URL.Query()
	details := make(map[string]string)

	genres, err := models.ParseGenres(q.Get("genres"))
	if err != nil {
		details["genres"] = err.Error()
	} else if len(genres) == 0 {
		details["genres"] = "at least one genre is required"
	}

	artistIDs, err := parseCommaSeparatedInts(q.Get("artists"))
	if err != nil {
		details["artists"] = err.Error()
	}

	songType := models.SongTypeAny
	if raw := q.Get("song_type"); raw != "" {
		songType, err = models.ParseSongType(raw)
		if err != nil {
			details["song_type"] = err.Error()
		}
	}

	limit := getIntParam(r, "limit", 0)
	if limit < 0 {
		details["limit"] = "limit must not be negative"
	}

	if len(details) > 0 {
		return nil, &models.APIError{
			Code:    models.ErrCodeValidation,
			Message: "invalid recommendation parameters",
			Details: details,
		}
	}

	return &recommend.Request{
		Genres:            genres,
		FavoriteArtistIDs: artistIDs,
		SongType:          songType,
		Limit:             limit,
	}, nil
}
