// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

package models

import (
	"fmt"
	"strings"
)

// Genre is a closed catalog genre vocabulary. Every song in the catalog
// carries one or more of these values; anything outside the set is rejected
// at parse time so the pipeline never sees an unknown genre.
type Genre string

const (
	GenreClassical    Genre = "classical"
	GenreCountry      Genre = "country"
	GenreInstrumental Genre = "instrumental"
	GenrePersian      Genre = "persian"
	GenrePop          Genre = "pop"
	GenreRap          Genre = "rap"
	GenreRnB          Genre = "rnb"
	GenreRock         Genre = "rock"
	GenreTraditional  Genre = "traditional"
)

// AllGenres returns the full vocabulary in stable display order.
func AllGenres() []Genre {
	return []Genre{
		GenreClassical,
		GenreCountry,
		GenreInstrumental,
		GenrePersian,
		GenrePop,
		GenreRap,
		GenreRnB,
		GenreRock,
		GenreTraditional,
	}
}

var genreSet = func() map[Genre]struct{} {
	m := make(map[Genre]struct{}, len(AllGenres()))
	for _, g := range AllGenres() {
		m[g] = struct{}{}
	}
	return m
}()

// ParseGenre normalizes and validates a genre string.
// Accepts "r&b" and "r'n'b" as aliases for rnb.
func ParseGenre(s string) (Genre, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	switch normalized {
	case "r&b", "r'n'b", "rhythm and blues":
		normalized = string(GenreRnB)
	}
	g := Genre(normalized)
	if _, ok := genreSet[g]; !ok {
		return "", fmt.Errorf("unknown genre %q", s)
	}
	return g, nil
}

// ParseGenres parses a comma-separated genre list, rejecting the first
// unknown value. An empty input yields an empty slice, not an error.
func ParseGenres(s string) ([]Genre, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	genres := make([]Genre, 0, len(parts))
	seen := make(map[Genre]struct{}, len(parts))
	for _, p := range parts {
		g, err := ParseGenre(p)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		genres = append(genres, g)
	}
	return genres, nil
}

// ageBracket maps an inclusive upper age bound to the genres considered
// appropriate for that bracket. Brackets are checked in ascending order;
// listeners above the last bracket get every genre.
type ageBracket struct {
	maxAge int
	genres []Genre
}

var ageBrackets = []ageBracket{
	{9, []Genre{GenrePop}},
	{14, []Genre{GenrePop, GenreRock}},
	{19, []Genre{GenrePop, GenreRock, GenreRap}},
	{24, []Genre{GenrePop, GenreRock, GenreRap, GenreRnB}},
	{29, []Genre{GenrePop, GenreRock, GenreRap, GenreRnB, GenreCountry, GenreInstrumental}},
}

// GenresForAge returns the genre subset suggested for a listener of the
// given age. Negative ages fall into the youngest bracket.
func GenresForAge(age int) []Genre {
	for _, b := range ageBrackets {
		if age <= b.maxAge {
			out := make([]Genre, len(b.genres))
			copy(out, b.genres)
			return out
		}
	}
	return AllGenres()
}
