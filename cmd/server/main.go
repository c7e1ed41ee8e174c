// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/navakit/nava/internal/api"
	"github.com/navakit/nava/internal/auth"
	"github.com/navakit/nava/internal/catalog"
	"github.com/navakit/nava/internal/config"
	"github.com/navakit/nava/internal/logging"
	"github.com/navakit/nava/internal/metrics"
	"github.com/navakit/nava/internal/platform"
	"github.com/navakit/nava/internal/recommend"
	"github.com/navakit/nava/internal/supervisor"
	"github.com/navakit/nava/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings.
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("catalog_dir", cfg.Catalog.Dir).
		Str("auth_mode", cfg.Security.AuthMode).
		Str("environment", cfg.Server.Environment).
		Msg("Configuration loaded")

	// Load the song catalog. The service cannot run without it.
	store, err := catalog.Load(cfg.Catalog, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load catalog")
	}
	stats := store.Stats()
	byGenre := make(map[string]int, len(stats.SongsByGenre))
	for g, n := range stats.SongsByGenre {
		byGenre[string(g)] = n
	}
	metrics.SetCatalogStats(stats.Songs, stats.Artists, byGenre)
	logging.Info().
		Int("songs", stats.Songs).
		Int("artists", stats.Artists).
		Msg("Catalog loaded")

	engine, err := recommend.NewEngine(&cfg.Recommend, store, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	var jwtManager *auth.JWTManager
	var basicAuthManager *auth.BasicAuthManager

	switch cfg.Security.AuthMode {
	case "jwt":
		jwtManager, err = auth.NewJWTManager(cfg.Security.JWTSecret, cfg.Security.TokenTTL)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize JWT manager")
		}
		logging.Info().Msg("JWT authentication enabled")
	case "basic":
		basicAuthManager, err = auth.NewBasicAuthManager(cfg.Security.AdminUsername, cfg.Security.AdminPassword)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize Basic Auth manager")
		}
		logging.Info().Msg("Basic authentication enabled")
		logging.Warn().Msg("Basic Auth transmits credentials with each request. Use HTTPS in production!")
	case "none":
		logging.Warn().Msg("Authentication is DISABLED (auth_mode=none); use only for local development")
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED; this should only be used in tests")
	}

	var platformClient *platform.Client
	if cfg.Platform.Enabled {
		platformClient, err = platform.NewClient(platform.Config{
			BaseURL:            cfg.Platform.BaseURL,
			APIKey:             cfg.Platform.APIKey,
			Timeout:            cfg.Platform.Timeout,
			RatePerSecond:      cfg.Platform.RatePerSecond,
			Burst:              cfg.Platform.Burst,
			BreakerMaxFailures: cfg.Platform.BreakerMaxFailures,
			BreakerTimeout:     cfg.Platform.BreakerTimeout,
		}, store, logging.Logger())
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to create platform client")
		}
		logging.Info().Str("base_url", cfg.Platform.BaseURL).Msg("Platform preference import enabled")
	} else {
		logging.Info().Msg("Platform preference import disabled")
	}

	handler := api.NewHandler(cfg, store, engine, jwtManager, platformClient)
	router := api.NewRouter(cfg, handler, jwtManager, basicAuthManager)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog.
	slogLogger := logging.NewSlogLogger(logging.Logger())

	tree, err := supervisor.NewTree(slogLogger, supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}
