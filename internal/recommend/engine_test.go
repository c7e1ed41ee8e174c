// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

package recommend

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/navakit/nava/internal/models"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// fakeCatalog implements Catalog over fixed slices.
type fakeCatalog struct {
	songs   []*models.Song
	artists map[int]*models.Artist
}

func (f *fakeCatalog) Songs() []*models.Song { return f.songs }

func (f *fakeCatalog) ArtistByID(id int) (*models.Artist, bool) {
	a, ok := f.artists[id]
	return a, ok
}

func (f *fakeCatalog) ArtistDescription(artistID int) string {
	if a, ok := f.artists[artistID]; ok {
		return a.Description
	}
	return ""
}

func testCatalog() *fakeCatalog {
	artists := map[int]*models.Artist{
		1: {ID: 1, Name: "Coldplay", Description: "british rock band with anthemic stadium guitar sound"},
		2: {ID: 2, Name: "Kendrick Lamar", Description: "conscious american rapper dense hip hop lyricism"},
		3: {ID: 3, Name: "Ebi", Description: "legendary iranian pop vocalist persian ballads"},
	}
	songs := []*models.Song{
		song(1, 1, models.GenreRock),
		song(2, 1, models.GenreRock, models.GenrePop),
		song(3, 2, models.GenreRap),
		song(4, 3, models.GenrePersian),
		song(5, 2, models.GenreRap),
		song(6, 1, models.GenrePop),
	}
	return &fakeCatalog{songs: songs, artists: artists}
}

func testEngine(t *testing.T, cfg *Config) *Engine {
	t.Helper()
	if cfg == nil {
		cfg = DefaultConfig()
		cfg.Seed = 42
	}
	e, err := NewEngine(cfg, testCatalog(), testLogger())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestNewEngineValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewEngine(nil, nil, testLogger()); err == nil {
		t.Error("nil catalog should fail")
	}

	bad := DefaultConfig()
	bad.SampleSize = 0
	if _, err := NewEngine(bad, testCatalog(), testLogger()); err == nil {
		t.Error("invalid config should fail")
	}

	if _, err := NewEngine(nil, testCatalog(), testLogger()); err != nil {
		t.Errorf("nil config should use defaults, got %v", err)
	}
}

func TestRecommendRequestValidation(t *testing.T) {
	t.Parallel()

	e := testEngine(t, nil)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "nil request", req: nil},
		{name: "no genres", req: &Request{}},
		{name: "unknown genre", req: &Request{Genres: []models.Genre{"jazz"}}},
		{name: "negative limit", req: &Request{Genres: []models.Genre{models.GenrePop}, Limit: -1}},
		{name: "limit over max", req: &Request{Genres: []models.Genre{models.GenrePop}, Limit: 1000}},
		{name: "bad song type", req: &Request{Genres: []models.Genre{models.GenrePop}, SongType: "vinyl"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := e.Recommend(ctx, tt.req); err == nil {
				t.Error("Recommend() should fail")
			}
		})
	}
}

func TestRecommendHappyPath(t *testing.T) {
	t.Parallel()

	e := testEngine(t, nil)
	resp, err := e.Recommend(context.Background(), &Request{
		Genres:            []models.Genre{models.GenreRock, models.GenreRap},
		FavoriteArtistIDs: []int{1},
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(resp.Songs) == 0 {
		t.Fatal("expected recommendations")
	}
	if !resp.Metadata.Ranked {
		t.Error("Metadata.Ranked = false with a favorite artist")
	}
	if resp.Metadata.FilteredCount != 5 {
		t.Errorf("FilteredCount = %d, want 5 (4 rock/rap songs plus the rock+pop one)", resp.Metadata.FilteredCount)
	}
	// Favorite artist 1 is a rock band; its songs should lead.
	if resp.Songs[0].Song.Artist.ID != 1 {
		t.Errorf("top song by artist %d, want favorite artist 1", resp.Songs[0].Song.Artist.ID)
	}
}

func TestRecommendEmptyFilterIsNotAnError(t *testing.T) {
	t.Parallel()

	e := testEngine(t, nil)
	resp, err := e.Recommend(context.Background(), &Request{
		Genres: []models.Genre{models.GenreTraditional},
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(resp.Songs) != 0 {
		t.Errorf("got %d songs for an unmatched genre, want 0", len(resp.Songs))
	}
	if resp.Songs == nil {
		t.Error("empty response should carry an empty slice, not nil")
	}
}

func TestRecommendPersianPartition(t *testing.T) {
	t.Parallel()

	e := testEngine(t, nil)
	resp, err := e.Recommend(context.Background(), &Request{
		Genres: []models.Genre{models.GenrePersian, models.GenreRock},
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	for _, s := range resp.Songs {
		if !s.Song.IsPersian() {
			t.Errorf("song %d is not persian in a persian request", s.Song.ID)
		}
	}
}

func TestRecommendTruncation(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.DefaultLimit = 2
	e := testEngine(t, cfg)

	resp, err := e.Recommend(context.Background(), &Request{
		Genres: []models.Genre{models.GenreRock, models.GenreRap, models.GenrePop},
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(resp.Songs) != 2 {
		t.Errorf("default limit: got %d songs, want 2", len(resp.Songs))
	}

	resp, err = e.Recommend(context.Background(), &Request{
		Genres: []models.Genre{models.GenreRock, models.GenreRap, models.GenrePop},
		Limit:  4,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(resp.Songs) != 4 {
		t.Errorf("explicit limit: got %d songs, want 4", len(resp.Songs))
	}
}

func TestRecommendDeterministicUnderSeed(t *testing.T) {
	t.Parallel()

	req := &Request{Genres: []models.Genre{models.GenreRock, models.GenreRap, models.GenrePop}, Limit: 3}

	run := func() []int {
		cfg := DefaultConfig()
		cfg.Seed = 7
		cfg.SampleSize = 3
		e, err := NewEngine(cfg, testCatalog(), testLogger())
		if err != nil {
			t.Fatalf("NewEngine: %v", err)
		}
		resp, err := e.Recommend(context.Background(), req)
		if err != nil {
			t.Fatalf("Recommend: %v", err)
		}
		ids := make([]int, len(resp.Songs))
		for i, s := range resp.Songs {
			ids[i] = s.Song.ID
		}
		return ids
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("runs differ in length: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed, different results: %v vs %v", a, b)
		}
	}
}

func TestRecommendUnknownFavoritesIgnored(t *testing.T) {
	t.Parallel()

	e := testEngine(t, nil)
	resp, err := e.Recommend(context.Background(), &Request{
		Genres:            []models.Genre{models.GenreRock},
		FavoriteArtistIDs: []int{999},
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if resp.Metadata.Ranked {
		t.Error("unknown favorites only: response should be unranked")
	}
}

func TestRecommendCancelledContext(t *testing.T) {
	t.Parallel()

	e := testEngine(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := e.Recommend(ctx, &Request{Genres: []models.Genre{models.GenreRock}}); err == nil {
		t.Error("cancelled context should fail")
	}
}
