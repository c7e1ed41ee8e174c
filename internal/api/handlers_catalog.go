// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/navakit/nava/internal/models"
)

// genresResponse is the payload of GET /api/v1/genres.
type genresResponse struct {
	Genres []models.Genre `json:"genres"`
	Age    *int           `json:"age,omitempty"`
}

// Genres lists the available genres, optionally narrowed by listener age.
//
// @Summary List genres
// @Description Returns all genres, or the age-appropriate subset when the age query parameter is given
// @Tags Catalog
// @Produce json
// @Param age query int false "Listener age" minimum(0)
// @Success 200 {object} models.APIResponse{data=api.genresResponse} "Genre list"
// @Failure 400 {object} models.APIResponse "Invalid age"
// @Security BearerAuth
// @Router /genres [get]
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	resp := genresResponse{Genres: models.AllGenres()}

	if raw := r.URL.Query().Get("age"); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil || age < 0 {
			respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, "age must be a non-negative integer", nil)
			return
		}
		resp.Genres = models.GenresForAge(age)
		resp.Age = &age
	}

	respondJSON(w, r, http.StatusOK, models.NewSuccessResponse(resp, time.Since(start)))
}

// ArtistByID returns one artist with its song references.
//
// @Summary Get artist by ID
// @Tags Catalog
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} models.APIResponse{data=models.Artist} "Artist"
// @Failure 400 {object} models.APIResponse "Invalid ID"
// @Failure 404 {object} models.APIResponse "Artist not found"
// @Security BearerAuth
// @Router /artists/{id} [get]
func (h *Handler) ArtistByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, "artist id must be an integer", nil)
		return
	}

	artist, ok := h.catalog.ArtistByID(id)
	if !ok {
		respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, "artist not found", nil)
		return
	}

	respondJSON(w, r, http.StatusOK, models.NewSuccessResponse(artist, time.Since(start)))
}

// Artists returns a batch of artists by ID.
//
// @Summary Get artists by IDs
// @Description Returns up to 10 artists by comma-separated IDs. Unknown IDs are skipped.
// @Tags Catalog
// @Produce json
// @Param ids query string true "Comma-separated artist IDs" example(1,2,3)
// @Success 200 {object} models.APIResponse{data=[]models.Artist} "Artists"
// @Failure 400 {object} models.APIResponse "Invalid or too many IDs"
// @Security BearerAuth
// @Router /artists [get]
func (h *Handler) Artists(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ids, err := parseCommaSeparatedInts(r.URL.Query().Get("ids"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, err.Error(), nil)
		return
	}
	if len(ids) == 0 {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, "ids query parameter is required", nil)
		return
	}

	artists, err := h.catalog.ArtistsByIDs(ids)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, err.Error(), nil)
		return
	}

	respondJSON(w, r, http.StatusOK, models.NewSuccessResponse(artists, time.Since(start)))
}

// SongByID returns one song.
//
// @Summary Get song by ID
// @Tags Catalog
// @Produce json
// @Param id path int true "Song ID"
// @Success 200 {object} models.APIResponse{data=models.Song} "Song"
// @Failure 400 {object} models.APIResponse "Invalid ID"
// @Failure 404 {object} models.APIResponse "Song not found"
// @Security BearerAuth
// @Router /songs/{id} [get]
func (h *Handler) SongByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, "song id must be an integer", nil)
		return
	}

	song, ok := h.catalog.SongByID(id)
	if !ok {
		respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, "song not found", nil)
		return
	}

	respondJSON(w, r, http.StatusOK, models.NewSuccessResponse(song, time.Since(start)))
}

// Songs returns a batch of songs by ID.
//
// @Summary Get songs by IDs
// @Description Returns up to 10 songs by comma-separated IDs. Unknown IDs are skipped.
// @Tags Catalog
// @Produce json
// @Param ids query string true "Comma-separated song IDs" example(1,2,3)
// @Success 200 {object} models.APIResponse{data=[]models.Song} "Songs"
// @Failure 400 {object} models.APIResponse "Invalid or too many IDs"
// @Security BearerAuth
// @Router /songs [get]
func (h *Handler) Songs(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ids, err := parseCommaSeparatedInts(r.URL.Query().Get("ids"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, err.Error(), nil)
		return
	}
	if len(ids) == 0 {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, "ids query parameter is required", nil)
		return
	}

	songs, err := h.catalog.SongsByIDs(ids)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, err.Error(), nil)
		return
	}

	respondJSON(w, r, http.StatusOK, models.NewSuccessResponse(songs, time.Since(start)))
}
