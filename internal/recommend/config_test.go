// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

package recommend

import (
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero sample size", mutate: func(c *Config) { c.SampleSize = 0 }},
		{name: "zero default limit", mutate: func(c *Config) { c.DefaultLimit = 0 }},
		{name: "max below default", mutate: func(c *Config) { c.MaxLimit = 2; c.DefaultLimit = 5 }},
		{name: "max above sample size", mutate: func(c *Config) { c.MaxLimit = 100 }},
		{name: "negative bonus", mutate: func(c *Config) { c.ArtistBonus = -0.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestConfigClone(t *testing.T) {
	t.Parallel()

	original := DefaultConfig()
	clone := original.Clone()
	clone.SampleSize = 7
	if original.SampleSize == 7 {
		t.Error("Clone() must not share state with the original")
	}
}
