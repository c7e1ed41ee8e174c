// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

package models

import (
	"fmt"
	"strings"
)

// SongType selects songs by which downloadable files they carry.
type SongType string

const (
	// SongTypeAny matches every song regardless of attached files.
	SongTypeAny SongType = "any"
	// SongTypeAnyFile matches songs with at least one file (preview or full).
	SongTypeAnyFile SongType = "any_file"
	// SongTypePreview requires a preview file.
	SongTypePreview SongType = "preview"
	// SongTypeFull requires a full file.
	SongTypeFull SongType = "full"
	// SongTypePreviewFull requires both files.
	SongTypePreviewFull SongType = "preview_full"
)

// ParseSongType validates a song type string. Empty input means SongTypeAny.
// "preview,full" is accepted as an alias for preview_full.
func ParseSongType(s string) (SongType, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return SongTypeAny, nil
	}
	if normalized == "preview,full" || normalized == "full,preview" {
		return SongTypePreviewFull, nil
	}
	switch t := SongType(normalized); t {
	case SongTypeAny, SongTypeAnyFile, SongTypePreview, SongTypeFull, SongTypePreviewFull:
		return t, nil
	default:
		return "", fmt.Errorf("unknown song type %q", s)
	}
}

// Matches reports whether the song satisfies the type's file requirements.
func (t SongType) Matches(s *Song) bool {
	switch t {
	case SongTypeAnyFile:
		return s.PreviewURL != "" || s.DownloadURL != ""
	case SongTypePreview:
		return s.PreviewURL != ""
	case SongTypeFull:
		return s.DownloadURL != ""
	case SongTypePreviewFull:
		return s.PreviewURL != "" && s.DownloadURL != ""
	default:
		return true
	}
}

// Song is a catalog track. Persian-market songs carry both an English and a
// Farsi display name; either may be empty but never both.
type Song struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	NameFa      string       `json:"name_fa,omitempty"`
	Artist      SimpleArtist `json:"artist"`
	Genres      []Genre      `json:"genres"`
	PreviewURL  string       `json:"preview_url,omitempty"`
	DownloadURL string       `json:"download_url,omitempty"`
	SpotifyID   string       `json:"spotify_id,omitempty"`
}

// HasGenre reports whether the song carries the given genre.
func (s *Song) HasGenre(g Genre) bool {
	for _, sg := range s.Genres {
		if sg == g {
			return true
		}
	}
	return false
}

// IsPersian reports whether the song belongs to the Persian partition of
// the catalog. Persian songs are only ever recommended when explicitly
// requested.
func (s *Song) IsPersian() bool {
	return s.HasGenre(GenrePersian)
}

// DisplayName prefers the English name and falls back to the Farsi one.
func (s *Song) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.NameFa
}

// Artist is a catalog artist. Description is English prose (biography and
// style notes) and is the text the ranking stage vectorizes.
type Artist struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	NameFa      string       `json:"name_fa,omitempty"`
	Description string       `json:"description,omitempty"`
	SpotifyID   string       `json:"spotify_id,omitempty"`
	Songs       []SimpleSong `json:"songs,omitempty"`
}

// DisplayName prefers the English name and falls back to the Farsi one.
func (a *Artist) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.NameFa
}

// SimpleArtist is the shallow artist reference embedded in Song, avoiding
// a serialization cycle between the two entities.
type SimpleArtist struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	NameFa string `json:"name_fa,omitempty"`
}

// SimpleSong is the shallow song reference embedded in Artist.
type SimpleSong struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	NameFa string `json:"name_fa,omitempty"`
}

// Preferences is a user taste profile imported from an external music
// platform: favorite genres plus favorite artists resolved against the
// catalog.
type Preferences struct {
	Genres  []Genre        `json:"genres"`
	Artists []SimpleArtist `json:"artists"`
}
