// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

package recommend

import (
	"time"

	"github.com/navakit/nava/internal/models"
)

// Catalog is the read-only song/artist source the engine recommends from.
// Implemented by the catalog store; kept narrow so tests can fake it.
type Catalog interface {
	// Songs returns every catalog song. The engine never mutates the
	// returned slice or its elements.
	Songs() []*models.Song

	// ArtistByID resolves a favorite-artist ID from the request.
	ArtistByID(id int) (*models.Artist, bool)

	// ArtistDescription returns the ranking text for an artist, empty when
	// unknown.
	ArtistDescription(artistID int) string
}

// Request is one recommendation query.
type Request struct {
	// Genres the user asked for. At least one is required.
	Genres []models.Genre `json:"genres"`

	// FavoriteArtistIDs drive the similarity ranking. Empty means no
	// ranking: sampled songs come back in sample order.
	FavoriteArtistIDs []int `json:"favorite_artist_ids,omitempty"`

	// SongType filters candidates by attached files before sampling.
	// Empty means models.SongTypeAny.
	SongType models.SongType `json:"song_type,omitempty"`

	// Limit is the maximum number of songs returned. Zero means the
	// configured default.
	Limit int `json:"limit,omitempty"`
}

// ScoredSong is one recommended song with its ranking score. Scores are
// relative within a single response, not comparable across responses.
type ScoredSong struct {
	Song  *models.Song `json:"song"`
	Score float64      `json:"score"`
}

// Response is the outcome of one recommendation query.
type Response struct {
	Songs    []ScoredSong     `json:"songs"`
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata reports how many songs survived each pipeline stage.
type ResponseMetadata struct {
	GeneratedAt   time.Time     `json:"generated_at"`
	Elapsed       time.Duration `json:"-"`
	ElapsedMS     int64         `json:"elapsed_ms"`
	FilteredCount int           `json:"filtered_count"`
	SampledCount  int           `json:"sampled_count"`
	Ranked        bool          `json:"ranked"`
}
