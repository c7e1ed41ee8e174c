// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

package recommend

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/navakit/nava/internal/models"
)

// Engine runs the recommendation pipeline over an injected catalog.
// It is safe for concurrent use.
type Engine struct {
	config  *Config
	catalog Catalog
	logger  zerolog.Logger

	// Random source for sampling (protected by rngMu for concurrent access).
	rng   *rand.Rand
	rngMu sync.Mutex
}

// NewEngine validates the configuration and builds an engine. A nil config
// uses DefaultConfig.
func NewEngine(cfg *Config, cat Catalog, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recommend config: %w", err)
	}
	if cat == nil {
		return nil, fmt.Errorf("catalog is required")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Engine{
		config:  cfg.Clone(),
		catalog: cat,
		logger:  logger.With().Str("component", "recommend").Logger(),
		rng:     rand.New(rand.NewSource(seed)),
	}, nil
}

// Recommend runs filter, sample, rank, truncate for one request.
// An empty candidate set at any stage yields an empty response, not an
// error; only invalid requests fail.
func (e *Engine) Recommend(ctx context.Context, req *Request) (*Response, error) {
	start := time.Now()

	if err := e.validateRequest(req); err != nil {
		return nil, err
	}
	limit := req.Limit
	if limit == 0 {
		limit = e.config.DefaultLimit
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	filtered := filterByGenre(e.catalog.Songs(), req.Genres)
	filtered = filterBySongType(filtered, req.SongType)
	if len(filtered) == 0 {
		e.logger.Debug().
			Interface("genres", req.Genres).
			Str("song_type", string(req.SongType)).
			Msg("No songs matched the filter")
		return e.emptyResponse(start), nil
	}

	sampled := e.sample(filtered)

	favorites := e.resolveFavorites(req.FavoriteArtistIDs)
	scored := rankBySimilarity(sampled, favorites, e.catalog.ArtistDescription, e.config.ArtistBonus)
	if len(scored) > limit {
		scored = scored[:limit]
	}

	elapsed := time.Since(start)
	e.logger.Debug().
		Interface("genres", req.Genres).
		Int("favorites", len(favorites)).
		Int("filtered", len(filtered)).
		Int("sampled", len(sampled)).
		Int("returned", len(scored)).
		Dur("elapsed", elapsed).
		Msg("Recommendation generated")

	return &Response{
		Songs: scored,
		Metadata: ResponseMetadata{
			GeneratedAt:   time.Now().UTC(),
			Elapsed:       elapsed,
			ElapsedMS:     elapsed.Milliseconds(),
			FilteredCount: len(filtered),
			SampledCount:  len(sampled),
			Ranked:        len(favorites) > 0,
		},
	}, nil
}

func (e *Engine) validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if len(req.Genres) == 0 {
		return fmt.Errorf("at least one genre is required")
	}
	for _, g := range req.Genres {
		if _, err := models.ParseGenre(string(g)); err != nil {
			return err
		}
	}
	if req.SongType != "" {
		if _, err := models.ParseSongType(string(req.SongType)); err != nil {
			return err
		}
	}
	if req.Limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", req.Limit)
	}
	if req.Limit > e.config.MaxLimit {
		return fmt.Errorf("limit %d exceeds maximum %d", req.Limit, e.config.MaxLimit)
	}
	return nil
}

// sample draws the configured number of songs under the engine's rng.
func (e *Engine) sample(songs []*models.Song) []*models.Song {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return sampleSongs(songs, e.config.SampleSize, e.rng)
}

// resolveFavorites maps favorite-artist IDs to ranking documents. Unknown
// IDs and artists without descriptions are dropped; they have nothing to
// rank against.
func (e *Engine) resolveFavorites(ids []int) []favorite {
	favorites := make([]favorite, 0, len(ids))
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		artist, ok := e.catalog.ArtistByID(id)
		if !ok {
			e.logger.Debug().Int("artist_id", id).Msg("Favorite artist not in catalog")
			continue
		}
		favorites = append(favorites, favorite{
			artistID:    artist.ID,
			description: artist.Description,
		})
	}
	return favorites
}

func (e *Engine) emptyResponse(start time.Time) *Response {
	elapsed := time.Since(start)
	return &Response{
		Songs: []ScoredSong{},
		Metadata: ResponseMetadata{
			GeneratedAt: time.Now().UTC(),
			Elapsed:     elapsed,
			ElapsedMS:   elapsed.Milliseconds(),
		},
	}
}
