// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

// Package main provides the Nava HTTP server
//
// Nava recommends songs from a curated catalog, ranked by similarity to
// the listener's favorite artists.
//
// @title Nava Music Recommendation API
// @version 1.0
// @description Genre-aware song recommendations ranked by similarity to the listener's favorite artists.
// @description
// @description ## Pipeline
// @description
// @description Each recommendation request filters the catalog by genre and song type,
// @description draws a random sample of candidates, ranks them against the listener's
// @description favorite artists using text similarity over artist descriptions, and
// @description returns the top matches.
// @description
// @description ## Authentication
// @description
// @description Data endpoints require a JWT bearer token. Exchange client credentials
// @description at `/api/v1/auth/token`, then send `Authorization: Bearer <token>`.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address. Token
// @description issuance is limited to 10 requests per minute per IP.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message",
// @description     "details": {}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-01-15T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/navakit/nava/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8642
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT bearer token. Obtain via /api/v1/auth/token, send as "Bearer <token>".
//
// @tag.name Core
// @tag.description Health checks and service status
//
// @tag.name Auth
// @tag.description Token issuance and preference imports
//
// @tag.name Catalog
// @tag.description Genre, artist, and song lookups
//
// @tag.name Search
// @tag.description Fuzzy name search over artists and songs
//
// @tag.name Recommendations
// @tag.description The recommendation pipeline
package main
