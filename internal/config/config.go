// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

// Package config loads and validates service configuration with layered
// precedence: built-in defaults, then an optional YAML file, then NAVA_*
// environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/navakit/nava/internal/catalog"
	"github.com/navakit/nava/internal/recommend"
)

// Config is the root configuration for the service.
type Config struct {
	Server    ServerConfig     `koanf:"server"`
	Catalog   catalog.Config   `koanf:"catalog"`
	Security  SecurityConfig   `koanf:"security"`
	Recommend recommend.Config `koanf:"recommend"`
	Platform  PlatformConfig   `koanf:"platform"`
	Logging   LoggingConfig    `koanf:"logging"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	// Environment is "development" or "production". Production enforces
	// stricter validation (a real JWT secret, no wildcard CORS).
	Environment string `koanf:"environment"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig controls authentication and rate limiting.
type SecurityConfig struct {
	// AuthMode is jwt, basic, or none.
	AuthMode string `koanf:"auth_mode"`

	// JWTSecret signs access tokens (HS256). Required in jwt mode.
	JWTSecret string `koanf:"jwt_secret"`

	// TokenTTL is how long issued tokens stay valid.
	TokenTTL time.Duration `koanf:"token_ttl"`

	// ClientID and ClientSecret are the credentials the chat-bot front end
	// exchanges for a token at /api/v1/auth/token.
	ClientID     string `koanf:"client_id"`
	ClientSecret string `koanf:"client_secret"`

	// AdminUsername and AdminPassword serve basic mode. The password is a
	// bcrypt hash, never plaintext.
	AdminUsername string `koanf:"admin_username"`
	AdminPassword string `koanf:"admin_password"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	CORSOrigins []string `koanf:"cors_origins"`
}

// PlatformConfig controls the outbound music-platform client used for
// preference imports.
type PlatformConfig struct {
	Enabled bool   `koanf:"enabled"`
	BaseURL string `koanf:"base_url"`
	APIKey  string `koanf:"api_key"`

	Timeout time.Duration `koanf:"timeout"`

	// RatePerSecond and Burst throttle outbound calls.
	RatePerSecond float64 `koanf:"rate_per_second"`
	Burst         int     `koanf:"burst"`

	// BreakerMaxFailures consecutive failures open the circuit for
	// BreakerTimeout.
	BreakerMaxFailures uint32        `koanf:"breaker_max_failures"`
	BreakerTimeout     time.Duration `koanf:"breaker_timeout"`
}

// LoggingConfig mirrors the logging package settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// minJWTSecretLen is the minimum secret length accepted in production.
const minJWTSecretLen = 32

// Validate checks the whole configuration tree. Called by Load; exposed for
// tests and tooling.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	production := c.Server.Environment == "production"

	switch c.Security.AuthMode {
	case "jwt":
		if c.Security.JWTSecret == "" {
			return fmt.Errorf("security.jwt_secret is required in jwt mode")
		}
		if production && len(c.Security.JWTSecret) < minJWTSecretLen {
			return fmt.Errorf("security.jwt_secret must be at least %d characters in production", minJWTSecretLen)
		}
		if c.Security.ClientID == "" || c.Security.ClientSecret == "" {
			return fmt.Errorf("security.client_id and security.client_secret are required in jwt mode")
		}
	case "basic":
		if c.Security.AdminUsername == "" || c.Security.AdminPassword == "" {
			return fmt.Errorf("security.admin_username and security.admin_password are required in basic mode")
		}
	case "none":
		if production {
			return fmt.Errorf("security.auth_mode none is not allowed in production")
		}
	default:
		return fmt.Errorf("security.auth_mode must be jwt, basic, or none, got %q", c.Security.AuthMode)
	}

	if c.Security.TokenTTL <= 0 {
		return fmt.Errorf("security.token_ttl must be positive")
	}
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("security.rate_limit_reqs must be at least 1")
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("security.rate_limit_window must be positive")
		}
	}
	if production {
		for _, origin := range c.Security.CORSOrigins {
			if origin == "*" {
				return fmt.Errorf("security.cors_origins must not contain * in production")
			}
		}
	}

	if c.Catalog.Dir == "" {
		return fmt.Errorf("catalog.dir is required")
	}

	if err := c.Recommend.Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	if c.Platform.Enabled {
		if c.Platform.BaseURL == "" {
			return fmt.Errorf("platform.base_url is required when platform import is enabled")
		}
		if c.Platform.Timeout <= 0 {
			return fmt.Errorf("platform.timeout must be positive")
		}
	}

	return nil
}
