// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

package recommend

import (
	"fmt"
)

// Config holds the tunable parameters of the recommendation pipeline.
type Config struct {
	// SampleSize is how many filtered songs enter the ranking stage.
	// Keeping this small bounds ranking cost and adds variety between
	// otherwise identical requests.
	SampleSize int `koanf:"sample_size" validate:"min=1,max=500"`

	// DefaultLimit is the result count when the request does not pick one.
	DefaultLimit int `koanf:"default_limit" validate:"min=1"`

	// MaxLimit caps the per-request result count.
	MaxLimit int `koanf:"max_limit" validate:"min=1"`

	// Seed seeds the sampling random source. Zero means seed from the
	// current time; any other value makes sampling deterministic.
	Seed int64 `koanf:"seed"`

	// ArtistBonus is added to a song's score when its artist is one of the
	// request's favorite artists.
	ArtistBonus float64 `koanf:"artist_bonus" validate:"min=0"`
}

// DefaultConfig returns production defaults.
func DefaultConfig() *Config {
	return &Config{
		SampleSize:   20,
		DefaultLimit: 5,
		MaxLimit:     20,
		Seed:         0,
		ArtistBonus:  1.0,
	}
}

// Validate checks parameter ranges and cross-field consistency.
func (c *Config) Validate() error {
	if c.SampleSize < 1 {
		return fmt.Errorf("sample_size must be at least 1, got %d", c.SampleSize)
	}
	if c.DefaultLimit < 1 {
		return fmt.Errorf("default_limit must be at least 1, got %d", c.DefaultLimit)
	}
	if c.MaxLimit < c.DefaultLimit {
		return fmt.Errorf("max_limit %d must not be below default_limit %d", c.MaxLimit, c.DefaultLimit)
	}
	if c.MaxLimit > c.SampleSize {
		return fmt.Errorf("max_limit %d must not exceed sample_size %d", c.MaxLimit, c.SampleSize)
	}
	if c.ArtistBonus < 0 {
		return fmt.Errorf("artist_bonus must not be negative, got %v", c.ArtistBonus)
	}
	return nil
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
