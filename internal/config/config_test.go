// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func validConfig() *Config {
	cfg := defaultConfig()
	cfg.Security.JWTSecret = "0123456789abcdef0123456789abcdef"
	cfg.Security.ClientID = "bot"
	cfg.Security.ClientSecret = "bot-secret"
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid jwt config", mutate: func(c *Config) {}},
		{name: "bad port", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "jwt without secret", mutate: func(c *Config) { c.Security.JWTSecret = "" }, wantErr: true},
		{name: "jwt without client creds", mutate: func(c *Config) { c.Security.ClientID = "" }, wantErr: true},
		{
			name: "short secret allowed in development",
			mutate: func(c *Config) {
				c.Security.JWTSecret = "short"
			},
		},
		{
			name: "short secret rejected in production",
			mutate: func(c *Config) {
				c.Server.Environment = "production"
				c.Security.JWTSecret = "short"
			},
			wantErr: true,
		},
		{
			name: "wildcard cors rejected in production",
			mutate: func(c *Config) {
				c.Server.Environment = "production"
			},
			wantErr: true,
		},
		{
			name: "none mode rejected in production",
			mutate: func(c *Config) {
				c.Server.Environment = "production"
				c.Security.AuthMode = "none"
				c.Security.CORSOrigins = []string{"https://bot.nava.example"}
			},
			wantErr: true,
		},
		{
			name: "none mode allowed in development",
			mutate: func(c *Config) {
				c.Security.AuthMode = "none"
			},
		},
		{
			name: "basic mode requires credentials",
			mutate: func(c *Config) {
				c.Security.AuthMode = "basic"
			},
			wantErr: true,
		},
		{name: "unknown auth mode", mutate: func(c *Config) { c.Security.AuthMode = "oauth" }, wantErr: true},
		{name: "zero token ttl", mutate: func(c *Config) { c.Security.TokenTTL = 0 }, wantErr: true},
		{name: "zero rate limit", mutate: func(c *Config) { c.Security.RateLimitReqs = 0 }, wantErr: true},
		{
			name: "zero rate limit ok when disabled",
			mutate: func(c *Config) {
				c.Security.RateLimitReqs = 0
				c.Security.RateLimitDisabled = true
			},
		},
		{name: "missing catalog dir", mutate: func(c *Config) { c.Catalog.Dir = "" }, wantErr: true},
		{name: "bad recommend config", mutate: func(c *Config) { c.Recommend.SampleSize = 0 }, wantErr: true},
		{
			name: "platform enabled without base url",
			mutate: func(c *Config) {
				c.Platform.Enabled = true
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() should fail")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"NAVA_SERVER_PORT", "server.port"},
		{"NAVA_SECURITY_JWT_SECRET", "security.jwt_secret"},
		{"NAVA_CATALOG_DIR", "catalog.dir"},
		{"NAVA_RECOMMEND_SAMPLE_SIZE", "recommend.sample_size"},
		{"NAVA_LOGGING_LEVEL", "logging.level"},
	}
	for _, tt := range tests {
		if got := envTransformFunc(tt.input); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLoadLayering(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 9000
security:
  jwt_secret: file-secret-0123456789abcdef0123
  client_id: bot
  client_secret: bot-secret
catalog:
  dir: ` + dir + `
`
	if err := os.WriteFile(configFile, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(ConfigPathEnvVar, configFile)
	t.Setenv("NAVA_SERVER_PORT", "9100")
	t.Setenv("NAVA_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("env should override file: port = %d, want 9100", cfg.Server.Port)
	}
	if cfg.Security.JWTSecret != "file-secret-0123456789abcdef0123" {
		t.Errorf("file value lost: jwt_secret = %q", cfg.Security.JWTSecret)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging.level = %q, want debug", cfg.Logging.Level)
	}
	// Untouched values keep their defaults.
	if cfg.Recommend.SampleSize != 20 {
		t.Errorf("recommend.sample_size = %d, want default 20", cfg.Recommend.SampleSize)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("server.shutdown_timeout = %v, want default 10s", cfg.Server.ShutdownTimeout)
	}
}

func TestLoadCORSOriginsFromEnv(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	yaml := `
security:
  jwt_secret: file-secret-0123456789abcdef0123
  client_id: bot
  client_secret: bot-secret
catalog:
  dir: ` + dir + `
`
	if err := os.WriteFile(configFile, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, configFile)
	t.Setenv("NAVA_SECURITY_CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("cors_origins = %v, want two parsed origins", cfg.Security.CORSOrigins)
	}
}
