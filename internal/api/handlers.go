// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

package api

import (
	"time"

	"github.com/navakit/nava/internal/auth"
	"github.com/navakit/nava/internal/catalog"
	"github.com/navakit/nava/internal/config"
	"github.com/navakit/nava/internal/platform"
	"github.com/navakit/nava/internal/recommend"
)

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	config    *config.Config
	catalog   *catalog.Store
	engine    *recommend.Engine
	jwt       *auth.JWTManager
	platform  *platform.Client
	startTime time.Time
}

// NewHandler creates the handler set. The platform client and JWT manager
// may be nil when the corresponding feature is disabled; the affected
// endpoints then answer with an explanatory error.
func NewHandler(cfg *config.Config, store *catalog.Store, engine *recommend.Engine, jwtManager *auth.JWTManager, platformClient *platform.Client) *Handler {
	return &Handler{
		config:    cfg,
		catalog:   store,
		engine:    engine,
		jwt:       jwtManager,
		platform:  platformClient,
		startTime: time.Now(),
	}
}
