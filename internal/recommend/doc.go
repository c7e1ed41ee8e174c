// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

// Package recommend implements the recommendation pipeline: genre filtering,
// random sampling, and TF-IDF/cosine ranking of candidate songs against a
// user's favorite artists.
//
// The pipeline stages are pure functions over their inputs; the only state
// the Engine holds is its configuration and a seeded random source, so
// results are reproducible under a fixed seed. The package depends on the
// catalog only through the Catalog interface to keep the coupling one-way.
package recommend
