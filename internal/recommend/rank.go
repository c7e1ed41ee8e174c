// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

package recommend

import (
	"sort"

	"github.com/navakit/nava/internal/models"
)

// favorite is a resolved favorite artist: its ID plus the description text
// the ranking vectorizes.
type favorite struct {
	artistID    int
	description string
}

// rankBySimilarity orders candidates by taste similarity, best first.
//
// The corpus is the favorite descriptions followed by the candidates' artist
// descriptions, vectorized together so IDF weights are shared. A song's
// score is the sum of its cosine similarities to every favorite, plus
// artistBonus when the song's artist is itself a favorite. The sort is
// stable, so equal scores keep the incoming (sampled) order.
//
// With no favorites the candidates come back unranked in their given order,
// all scores zero.
func rankBySimilarity(candidates []*models.Song, favorites []favorite, descOf func(artistID int) string, artistBonus float64) []ScoredSong {
	scored := make([]ScoredSong, len(candidates))
	for i, song := range candidates {
		scored[i] = ScoredSong{Song: song}
	}
	if len(favorites) == 0 || len(candidates) == 0 {
		return scored
	}

	favoriteIDs := make(map[int]struct{}, len(favorites))
	docs := make([]string, 0, len(favorites)+len(candidates))
	for _, fav := range favorites {
		favoriteIDs[fav.artistID] = struct{}{}
		docs = append(docs, fav.description)
	}
	for _, song := range candidates {
		docs = append(docs, descOf(song.Artist.ID))
	}

	vectors := vectorize(docs)
	favVectors := vectors[:len(favorites)]
	songVectors := vectors[len(favorites):]

	for i := range scored {
		var score float64
		for _, fv := range favVectors {
			score += cosine(fv, songVectors[i])
		}
		if _, ok := favoriteIDs[scored[i].Song.Artist.ID]; ok {
			score += artistBonus
		}
		scored[i].Score = score
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	return scored
}
