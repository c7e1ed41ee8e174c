// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

package catalog

import (
	"testing"
)

func TestSimilarityRatio(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical", a: "coldplay", b: "coldplay", want: 1.0},
		{name: "both empty", a: "", b: "", want: 1.0},
		{name: "one empty", a: "coldplay", b: "", want: 0.0},
		{name: "disjoint", a: "abc", b: "xyz", want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := similarityRatio(tt.a, tt.b); got != tt.want {
				t.Errorf("similarityRatio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilarityRatioOrdering(t *testing.T) {
	t.Parallel()

	near := similarityRatio("coldpaly", "coldplay")
	far := similarityRatio("beyonce", "coldplay")
	if near <= far {
		t.Errorf("transposed name (%v) should score above an unrelated one (%v)", near, far)
	}
	if near < searchCutoff {
		t.Errorf("one transposition scored %v, below the search cutoff", near)
	}
}

func TestSearchArtists(t *testing.T) {
	t.Parallel()

	s := loadTestStore(t)

	exact := s.SearchArtists("Coldplay", 5)
	if len(exact) == 0 {
		t.Fatal("exact name search returned nothing")
	}
	if exact[0].Artist.ID != 1 {
		t.Errorf("best match for Coldplay = artist %d, want 1", exact[0].Artist.ID)
	}
	if exact[0].Score != 1.0 {
		t.Errorf("exact match score = %v, want 1.0", exact[0].Score)
	}

	typo := s.SearchArtists("coldpaly", 5)
	if len(typo) == 0 || typo[0].Artist.ID != 1 {
		t.Error("typo search should still find Coldplay first")
	}

	if got := s.SearchArtists("zzzzzzzz", 5); len(got) != 0 {
		t.Errorf("nonsense query matched %d artists, want 0", len(got))
	}
	if got := s.SearchArtists("   ", 5); got != nil {
		t.Errorf("blank query should return nil, got %v", got)
	}
}

func TestSearchArtistsFarsiName(t *testing.T) {
	t.Parallel()

	s := loadTestStore(t)
	got := s.SearchArtists("ابی", 5)
	if len(got) == 0 || got[0].Artist.ID != 4 {
		t.Error("farsi name search should find Ebi")
	}
}

func TestSearchSongs(t *testing.T) {
	t.Parallel()

	s := loadTestStore(t)

	got := s.SearchSongs("shake it of", 5)
	if len(got) == 0 || got[0].Song.ID != 4 {
		t.Error("near-exact song search should find Shake It Off first")
	}
}

func TestSearchLimitClamping(t *testing.T) {
	t.Parallel()

	if got := clampSearchLimit(0); got != DefaultSearchLimit {
		t.Errorf("clampSearchLimit(0) = %d, want %d", got, DefaultSearchLimit)
	}
	if got := clampSearchLimit(1000); got != MaxSearchLimit {
		t.Errorf("clampSearchLimit(1000) = %d, want %d", got, MaxSearchLimit)
	}
	if got := clampSearchLimit(3); got != 3 {
		t.Errorf("clampSearchLimit(3) = %d, want 3", got)
	}
}
