// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

package recommend

import (
	"math/rand"

	"github.com/navakit/nava/internal/models"
)

// sampleSongs picks n distinct songs uniformly at random, without
// replacement (partial Fisher-Yates over a copy). When the input already
// fits it is returned as-is, order preserved.
func sampleSongs(songs []*models.Song, n int, rng *rand.Rand) []*models.Song {
	if n <= 0 {
		return nil
	}
	if len(songs) <= n {
		return songs
	}

	pool := make([]*models.Song, len(songs))
	copy(pool, songs)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
