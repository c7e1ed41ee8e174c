// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

package recommend

import (
	"testing"

	"github.com/navakit/nava/internal/models"
)

// descMap adapts a plain map to the descOf lookup used by the ranker.
func descMap(m map[int]string) func(int) string {
	return func(artistID int) string { return m[artistID] }
}

func TestRankBySimilarityOrdering(t *testing.T) {
	t.Parallel()

	descriptions := map[int]string{
		10: "melodic british rock band with anthemic stadium guitar sound",
		11: "conscious american rapper acclaimed for dense hip hop lyricism",
		12: "minimalist italian pianist composing quiet instrumental pieces",
	}
	candidates := []*models.Song{
		song(1, 11, models.GenreRap),
		song(2, 12, models.GenreInstrumental),
		song(3, 10, models.GenreRock),
	}
	favorites := []favorite{
		{artistID: 99, description: "british rock band famous for stadium anthems and guitar"},
	}

	scored := rankBySimilarity(candidates, favorites, descMap(descriptions), 1.0)
	if scored[0].Song.ID != 3 {
		t.Fatalf("best match = song %d, want 3 (the rock band)", scored[0].Song.ID)
	}
	if scored[0].Score <= scored[1].Score {
		t.Error("scores should strictly order the rock song above the others")
	}
}

func TestRankBySimilaritySumsOverFavorites(t *testing.T) {
	t.Parallel()

	descriptions := map[int]string{
		10: "rock guitar anthems",
		11: "rap verses flow",
	}
	candidates := []*models.Song{
		song(1, 10, models.GenreRock),
		song(2, 11, models.GenreRap),
	}
	oneFavorite := []favorite{
		{artistID: 90, description: "rock guitar anthems"},
	}
	twoFavorites := []favorite{
		{artistID: 90, description: "rock guitar anthems"},
		{artistID: 91, description: "rock guitar anthems"},
	}

	one := rankBySimilarity(candidates, oneFavorite, descMap(descriptions), 0)
	two := rankBySimilarity(candidates, twoFavorites, descMap(descriptions), 0)
	if two[0].Score <= one[0].Score {
		t.Errorf("two matching favorites should add up: got %v vs %v", two[0].Score, one[0].Score)
	}
}

func TestRankBySimilarityArtistBonus(t *testing.T) {
	t.Parallel()

	descriptions := map[int]string{
		10: "generic pop artist",
		11: "british rock band famous for stadium anthems and guitar",
	}
	candidates := []*models.Song{
		song(1, 11, models.GenreRock),
		song(2, 10, models.GenrePop),
	}
	// Favorite 10 has a weak text match; the bonus must still put its own
	// song first.
	favorites := []favorite{
		{artistID: 10, description: "generic pop artist"},
	}

	scored := rankBySimilarity(candidates, favorites, descMap(descriptions), 1.0)
	if scored[0].Song.ID != 2 {
		t.Fatalf("favorite artist's own song should rank first, got song %d", scored[0].Song.ID)
	}
	if scored[0].Score < 1.0 {
		t.Errorf("bonus-carrying score = %v, want at least the bonus 1.0", scored[0].Score)
	}
}

func TestRankBySimilarityStableTies(t *testing.T) {
	t.Parallel()

	// All candidates share an artist with no description: every score is
	// zero and the incoming order must survive.
	candidates := []*models.Song{
		song(5, 20, models.GenrePop),
		song(2, 20, models.GenrePop),
		song(9, 20, models.GenrePop),
	}
	favorites := []favorite{
		{artistID: 99, description: "rock guitar anthems"},
	}

	scored := rankBySimilarity(candidates, favorites, descMap(nil), 1.0)
	want := []int{5, 2, 9}
	for i := range want {
		if scored[i].Song.ID != want[i] {
			t.Fatalf("tied scores reordered: got %d at %d, want %d", scored[i].Song.ID, i, want[i])
		}
		if scored[i].Score != 0 {
			t.Errorf("empty-description candidate scored %v, want 0", scored[i].Score)
		}
	}
}

func TestRankBySimilarityNoFavorites(t *testing.T) {
	t.Parallel()

	candidates := []*models.Song{
		song(3, 10, models.GenrePop),
		song(1, 11, models.GenrePop),
	}
	scored := rankBySimilarity(candidates, nil, descMap(nil), 1.0)
	if len(scored) != 2 {
		t.Fatalf("got %d scored songs, want 2", len(scored))
	}
	if scored[0].Song.ID != 3 || scored[1].Song.ID != 1 {
		t.Error("without favorites the sampled order must be preserved")
	}
	for _, s := range scored {
		if s.Score != 0 {
			t.Errorf("unranked song scored %v, want 0", s.Score)
		}
	}
}

func TestRankBySimilarityEmptyCandidates(t *testing.T) {
	t.Parallel()

	scored := rankBySimilarity(nil, []favorite{{artistID: 1, description: "rock"}}, descMap(nil), 1.0)
	if len(scored) != 0 {
		t.Errorf("got %d scored songs for empty input, want 0", len(scored))
	}
}
