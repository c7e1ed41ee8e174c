// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

// Package api provides HTTP routing and handlers using the Chi router.
//
// Every endpoint responds with the models.APIResponse envelope. Routes are
// grouped by concern with per-group rate limits: permissive for health
// probes, strict for token issuance, standard for the data API.
package api
