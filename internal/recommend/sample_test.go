// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

package recommend

import (
	"math/rand"
	"testing"

	"github.com/navakit/nava/internal/models"
)

func makeSongs(n int) []*models.Song {
	songs := make([]*models.Song, n)
	for i := range songs {
		songs[i] = song(i+1, 1, models.GenrePop)
	}
	return songs
}

func TestSampleSongsSize(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	songs := makeSongs(100)

	got := sampleSongs(songs, 20, rng)
	if len(got) != 20 {
		t.Fatalf("sampleSongs(100, 20) returned %d songs", len(got))
	}
}

func TestSampleSongsNoReplacement(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	songs := makeSongs(50)

	got := sampleSongs(songs, 30, rng)
	seen := make(map[int]struct{}, len(got))
	for _, s := range got {
		if _, dup := seen[s.ID]; dup {
			t.Fatalf("song %d sampled twice", s.ID)
		}
		seen[s.ID] = struct{}{}
	}
}

func TestSampleSongsSmallInputPassedThrough(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	songs := makeSongs(5)

	got := sampleSongs(songs, 20, rng)
	if len(got) != 5 {
		t.Fatalf("sampleSongs(5, 20) returned %d songs", len(got))
	}
	for i, s := range got {
		if s.ID != songs[i].ID {
			t.Fatal("input at or under the sample size must keep its order")
		}
	}
}

func TestSampleSongsDeterministicUnderSeed(t *testing.T) {
	t.Parallel()

	songs := makeSongs(100)
	a := sampleSongs(songs, 20, rand.New(rand.NewSource(42)))
	b := sampleSongs(songs, 20, rand.New(rand.NewSource(42)))
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatal("same seed must produce the same sample")
		}
	}

	c := sampleSongs(songs, 20, rand.New(rand.NewSource(43)))
	same := true
	for i := range a {
		if a[i].ID != c[i].ID {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical samples; sampling looks non-random")
	}
}

func TestSampleSongsDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	songs := makeSongs(30)
	before := songIDs(songs)
	sampleSongs(songs, 10, rand.New(rand.NewSource(3)))
	after := songIDs(songs)
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("sampleSongs must not reorder the caller's slice")
		}
	}
}

func TestSampleSongsZeroN(t *testing.T) {
	t.Parallel()

	if got := sampleSongs(makeSongs(10), 0, rand.New(rand.NewSource(1))); got != nil {
		t.Errorf("sampleSongs(_, 0) = %v, want nil", songIDs(got))
	}
}
