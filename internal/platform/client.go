// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

// Package platform imports user taste profiles from an external music
// platform. The outbound HTTP client is rate limited and wrapped in a
// circuit breaker so a slow or failing upstream cannot stall request
// handling.
package platform

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/navakit/nava/internal/catalog"
	"github.com/navakit/nava/internal/metrics"
	"github.com/navakit/nava/internal/models"
)

// ErrUnavailable is returned while the circuit is open.
var ErrUnavailable = errors.New("music platform temporarily unavailable")

// Config holds the outbound client settings.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration

	RatePerSecond float64
	Burst         int

	BreakerMaxFailures uint32
	BreakerTimeout     time.Duration
}

// ArtistResolver maps platform artist names onto catalog artists.
// Implemented by the catalog store.
type ArtistResolver interface {
	SearchArtists(query string, limit int) []catalog.ArtistMatch
}

// Client fetches a user's top artists and genres from the platform and
// resolves them against the local catalog.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	cb         *gobreaker.CircuitBreaker[*topResponse]
	resolver   ArtistResolver
	logger     zerolog.Logger
}

// topResponse is the upstream payload shape.
type topResponse struct {
	Artists []struct {
		Name string `json:"name"`
	} `json:"artists"`
	Genres []string `json:"genres"`
}

// NewClient builds a platform client. The resolver is required; favorite
// artists that cannot be resolved against the catalog are dropped.
func NewClient(cfg Config, resolver ArtistResolver, logger zerolog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("platform base URL is required")
	}
	if resolver == nil {
		return nil, fmt.Errorf("artist resolver is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = 5
	}
	if cfg.Burst <= 0 {
		cfg.Burst = int(cfg.RatePerSecond)
	}
	if cfg.BreakerMaxFailures == 0 {
		cfg.BreakerMaxFailures = 5
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = 30 * time.Second
	}

	log := logger.With().Str("component", "platform").Logger()

	cb := gobreaker.NewCircuitBreaker[*topResponse](gobreaker.Settings{
		Name:    "music-platform",
		Timeout: cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerMaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Platform circuit breaker state change")
			metrics.PlatformBreakerState.Set(breakerStateValue(to))
		},
	})

	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst),
		cb:         cb,
		resolver:   resolver,
		logger:     log,
	}, nil
}

// FetchPreferences retrieves the user's top artists and genres using the
// user's platform access token, and maps them onto catalog entities.
// Unknown genres and unresolvable artists are dropped, not errors.
func (c *Client) FetchPreferences(ctx context.Context, userToken string) (*models.Preferences, error) {
	if userToken == "" {
		return nil, fmt.Errorf("platform user token is required")
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	top, err := c.cb.Execute(func() (*topResponse, error) {
		return c.fetchTop(ctx, userToken)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.PlatformRequestsTotal.WithLabelValues("top", "open_circuit").Inc()
			return nil, ErrUnavailable
		}
		metrics.PlatformRequestsTotal.WithLabelValues("top", "error").Inc()
		return nil, err
	}
	metrics.PlatformRequestsTotal.WithLabelValues("top", "ok").Inc()

	return c.resolve(top), nil
}

func (c *Client) fetchTop(ctx context.Context, userToken string) (*topResponse, error) {
	endpoint, err := url.JoinPath(c.baseURL, "v1", "me", "top")
	if err != nil {
		return nil, fmt.Errorf("building platform URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+userToken)
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("platform request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("platform returned status %d", resp.StatusCode)
	}

	var top topResponse
	if err := json.NewDecoder(resp.Body).Decode(&top); err != nil {
		return nil, fmt.Errorf("decoding platform response: %w", err)
	}
	return &top, nil
}

// resolve maps the upstream payload onto catalog genres and artists.
func (c *Client) resolve(top *topResponse) *models.Preferences {
	prefs := &models.Preferences{
		Genres:  []models.Genre{},
		Artists: []models.SimpleArtist{},
	}

	seenGenres := make(map[models.Genre]struct{})
	for _, raw := range top.Genres {
		g, err := models.ParseGenre(raw)
		if err != nil {
			continue
		}
		if _, dup := seenGenres[g]; dup {
			continue
		}
		seenGenres[g] = struct{}{}
		prefs.Genres = append(prefs.Genres, g)
	}

	seenArtists := make(map[int]struct{})
	for _, a := range top.Artists {
		hits := c.resolver.SearchArtists(a.Name, 1)
		if len(hits) == 0 {
			c.logger.Debug().Str("artist", a.Name).Msg("Platform artist not in catalog")
			continue
		}
		artist := hits[0].Artist
		if _, dup := seenArtists[artist.ID]; dup {
			continue
		}
		seenArtists[artist.ID] = struct{}{}
		prefs.Artists = append(prefs.Artists, models.SimpleArtist{
			ID:     artist.ID,
			Name:   artist.Name,
			NameFa: artist.NameFa,
		})
	}

	return prefs
}

func breakerStateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	default:
		return 2
	}
}
