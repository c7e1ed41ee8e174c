// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

package catalog

import (
	"sort"
	"strings"

	"github.com/navakit/nava/internal/models"
)

// searchCutoff is the minimum similarity for a search hit.
const searchCutoff = 0.6

// DefaultSearchLimit bounds result sets when the caller does not pick one.
const DefaultSearchLimit = 5

// MaxSearchLimit is the hard ceiling on search result sets.
const MaxSearchLimit = 20

// ArtistMatch is a scored artist search hit.
type ArtistMatch struct {
	Artist *models.Artist `json:"artist"`
	Score  float64        `json:"score"`
}

// SongMatch is a scored song search hit.
type SongMatch struct {
	Song  *models.Song `json:"song"`
	Score float64      `json:"score"`
}

// SearchArtists finds artists whose English or Farsi name is similar to the
// query, best matches first. Ties break on ascending artist ID.
func (s *Store) SearchArtists(query string, limit int) []ArtistMatch {
	limit = clampSearchLimit(limit)
	q := normalizeQuery(query)
	if q == "" {
		return nil
	}

	matches := make([]ArtistMatch, 0, limit)
	for _, artist := range s.artistList {
		score := nameSimilarity(q, artist.Name, artist.NameFa)
		if score >= searchCutoff {
			matches = append(matches, ArtistMatch{Artist: artist, Score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// SearchSongs finds songs by name similarity, best matches first.
func (s *Store) SearchSongs(query string, limit int) []SongMatch {
	limit = clampSearchLimit(limit)
	q := normalizeQuery(query)
	if q == "" {
		return nil
	}

	matches := make([]SongMatch, 0, limit)
	for _, song := range s.songList {
		score := nameSimilarity(q, song.Name, song.NameFa)
		if score >= searchCutoff {
			matches = append(matches, SongMatch{Song: song, Score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func clampSearchLimit(limit int) int {
	if limit <= 0 {
		return DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		return MaxSearchLimit
	}
	return limit
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// nameSimilarity scores the query against both name forms and keeps the best.
func nameSimilarity(query string, names ...string) float64 {
	best := 0.0
	for _, name := range names {
		if name == "" {
			continue
		}
		if r := similarityRatio(query, strings.ToLower(name)); r > best {
			best = r
		}
	}
	return best
}

// similarityRatio is the classic sequence-matcher ratio: twice the total
// length of the longest matching blocks over the combined length. 1.0 is an
// exact match, 0.0 shares nothing.
func similarityRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 1.0
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0.0
	}
	matched := matchTotal(ra, rb, 0, len(ra), 0, len(rb))
	return 2.0 * float64(matched) / float64(len(ra)+len(rb))
}

// matchTotal sums matching-block lengths by recursing around the longest
// common block, mirroring how difference engines compute match ratios.
func matchTotal(a, b []rune, alo, ahi, blo, bhi int) int {
	i, j, size := longestMatch(a, b, alo, ahi, blo, bhi)
	if size == 0 {
		return 0
	}
	total := size
	total += matchTotal(a, b, alo, i, blo, j)
	total += matchTotal(a, b, i+size, ahi, j+size, bhi)
	return total
}

func longestMatch(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	// b2j maps each rune in b's window to its positions.
	b2j := make(map[rune][]int, bhi-blo)
	for j := blo; j < bhi; j++ {
		b2j[b[j]] = append(b2j[b[j]], j)
	}

	besti, bestj = alo, blo
	// j2len[j] is the length of the match ending at a[i-1], b[j-1].
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}
	return besti, bestj, bestsize
}
