// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

// Package catalog loads the static song/artist catalog from CSV files into
// memory and serves lookups over it. The catalog is immutable after Load, so
// every accessor is safe for concurrent use without locking.
package catalog

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/navakit/nava/internal/models"
)

// MaxBatchIDs caps how many IDs a single batch lookup may request.
const MaxBatchIDs = 10

// Config locates the catalog data files.
type Config struct {
	Dir         string `koanf:"dir" validate:"required"`
	SongsFile   string `koanf:"songs_file"`
	ArtistsFile string `koanf:"artists_file"`
}

// DefaultConfig returns the conventional file layout under a data directory.
func DefaultConfig() Config {
	return Config{
		Dir:         "data",
		SongsFile:   "songs.csv",
		ArtistsFile: "artists.csv",
	}
}

// Store is the in-memory catalog. Built once by Load, then read-only.
type Store struct {
	songs      map[int]*models.Song
	artists    map[int]*models.Artist
	songList   []*models.Song
	artistList []*models.Artist
	byGenre    map[models.Genre][]*models.Song
	logger     zerolog.Logger
}

// Load reads the catalog CSV files and builds all indexes. Any missing or
// malformed file is an error; callers treat that as fatal at startup.
func Load(cfg Config, logger zerolog.Logger) (*Store, error) {
	if cfg.SongsFile == "" {
		cfg.SongsFile = "songs.csv"
	}
	if cfg.ArtistsFile == "" {
		cfg.ArtistsFile = "artists.csv"
	}

	log := logger.With().Str("component", "catalog").Logger()

	artists, err := loadArtists(cfg.Dir, cfg.ArtistsFile)
	if err != nil {
		return nil, fmt.Errorf("loading artists: %w", err)
	}
	songs, err := loadSongs(cfg.Dir, cfg.SongsFile, artists)
	if err != nil {
		return nil, fmt.Errorf("loading songs: %w", err)
	}

	s := &Store{
		songs:   songs,
		artists: artists,
		byGenre: make(map[models.Genre][]*models.Song),
		logger:  log,
	}

	s.songList = make([]*models.Song, 0, len(songs))
	for _, song := range songs {
		s.songList = append(s.songList, song)
	}
	sort.Slice(s.songList, func(i, j int) bool { return s.songList[i].ID < s.songList[j].ID })

	s.artistList = make([]*models.Artist, 0, len(artists))
	for _, artist := range artists {
		s.artistList = append(s.artistList, artist)
	}
	sort.Slice(s.artistList, func(i, j int) bool { return s.artistList[i].ID < s.artistList[j].ID })

	for _, song := range s.songList {
		for _, g := range song.Genres {
			s.byGenre[g] = append(s.byGenre[g], song)
		}
		if artist, ok := artists[song.Artist.ID]; ok {
			artist.Songs = append(artist.Songs, models.SimpleSong{
				ID:     song.ID,
				Name:   song.Name,
				NameFa: song.NameFa,
			})
		}
	}

	log.Info().
		Int("songs", len(s.songList)).
		Int("artists", len(s.artistList)).
		Int("genres", len(s.byGenre)).
		Msg("Catalog loaded")

	return s, nil
}

// Songs returns every song in ascending ID order. Callers must not mutate
// the returned slice or its elements.
func (s *Store) Songs() []*models.Song {
	return s.songList
}

// Artists returns every artist in ascending ID order.
func (s *Store) Artists() []*models.Artist {
	return s.artistList
}

// SongsByGenre returns all songs carrying the genre, ascending ID order.
func (s *Store) SongsByGenre(g models.Genre) []*models.Song {
	return s.byGenre[g]
}

// SongByID looks up a single song.
func (s *Store) SongByID(id int) (*models.Song, bool) {
	song, ok := s.songs[id]
	return song, ok
}

// ArtistByID looks up a single artist.
func (s *Store) ArtistByID(id int) (*models.Artist, bool) {
	artist, ok := s.artists[id]
	return artist, ok
}

// ArtistDescription returns the ranking text for an artist, empty when the
// artist is unknown or has no description.
func (s *Store) ArtistDescription(artistID int) string {
	if artist, ok := s.artists[artistID]; ok {
		return artist.Description
	}
	return ""
}

// SongsByIDs resolves a batch of song IDs, skipping unknown ones.
// Batches larger than MaxBatchIDs are rejected.
func (s *Store) SongsByIDs(ids []int) ([]*models.Song, error) {
	if len(ids) > MaxBatchIDs {
		return nil, fmt.Errorf("batch lookup limited to %d ids, got %d", MaxBatchIDs, len(ids))
	}
	out := make([]*models.Song, 0, len(ids))
	for _, id := range ids {
		if song, ok := s.songs[id]; ok {
			out = append(out, song)
		}
	}
	return out, nil
}

// ArtistsByIDs resolves a batch of artist IDs, skipping unknown ones.
// Batches larger than MaxBatchIDs are rejected.
func (s *Store) ArtistsByIDs(ids []int) ([]*models.Artist, error) {
	if len(ids) > MaxBatchIDs {
		return nil, fmt.Errorf("batch lookup limited to %d ids, got %d", MaxBatchIDs, len(ids))
	}
	out := make([]*models.Artist, 0, len(ids))
	for _, id := range ids {
		if artist, ok := s.artists[id]; ok {
			out = append(out, artist)
		}
	}
	return out, nil
}

// Stats summarizes the loaded catalog for health and metrics reporting.
type Stats struct {
	Songs        int                  `json:"songs"`
	Artists      int                  `json:"artists"`
	SongsByGenre map[models.Genre]int `json:"songs_by_genre"`
}

// Stats returns catalog size counters.
func (s *Store) Stats() Stats {
	byGenre := make(map[models.Genre]int, len(s.byGenre))
	for g, songs := range s.byGenre {
		byGenre[g] = len(songs)
	}
	return Stats{
		Songs:        len(s.songList),
		Artists:      len(s.artistList),
		SongsByGenre: byGenre,
	}
}
