// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

package recommend

import (
	"github.com/navakit/nava/internal/models"
)

// filterByGenre selects songs carrying at least one requested genre.
//
// Persian songs form their own partition of the catalog: when persian is
// among the requested genres only Persian songs qualify and the other
// requested genres are ignored; otherwise Persian songs are excluded even
// when they also carry a requested genre. The two repertoires never mix in
// one result.
func filterByGenre(songs []*models.Song, genres []models.Genre) []*models.Song {
	if len(genres) == 0 {
		return nil
	}

	persianRequested := false
	for _, g := range genres {
		if g == models.GenrePersian {
			persianRequested = true
			break
		}
	}

	var out []*models.Song
	for _, song := range songs {
		if persianRequested {
			if song.IsPersian() {
				out = append(out, song)
			}
			continue
		}
		if song.IsPersian() {
			continue
		}
		for _, g := range genres {
			if song.HasGenre(g) {
				out = append(out, song)
				break
			}
		}
	}
	return out
}

// filterBySongType keeps songs matching the requested file availability.
func filterBySongType(songs []*models.Song, t models.SongType) []*models.Song {
	if t == "" || t == models.SongTypeAny {
		return songs
	}
	var out []*models.Song
	for _, song := range songs {
		if t.Matches(song) {
			out = append(out, song)
		}
	}
	return out
}
