// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/navakit/nava/internal/models"
)

// artistColumns is the required artists.csv header.
var artistColumns = []string{"id", "name", "name_fa", "description", "spotify_id"}

// songColumns is the required songs.csv header.
var songColumns = []string{"id", "name", "name_fa", "artist_id", "genres", "preview_url", "download_url", "spotify_id"}

func loadArtists(dir, file string) (map[int]*models.Artist, error) {
	path := filepath.Join(dir, file)
	rows, err := readCSV(path, artistColumns)
	if err != nil {
		return nil, err
	}

	artists := make(map[int]*models.Artist, len(rows))
	for i, row := range rows {
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad artist id %q", path, i+2, row[0])
		}
		if _, dup := artists[id]; dup {
			return nil, fmt.Errorf("%s row %d: duplicate artist id %d", path, i+2, id)
		}
		artists[id] = &models.Artist{
			ID:          id,
			Name:        cleanField(row[1]),
			NameFa:      cleanField(row[2]),
			Description: cleanDescription(row[3]),
			SpotifyID:   cleanField(row[4]),
		}
	}
	return artists, nil
}

func loadSongs(dir, file string, artists map[int]*models.Artist) (map[int]*models.Song, error) {
	path := filepath.Join(dir, file)
	rows, err := readCSV(path, songColumns)
	if err != nil {
		return nil, err
	}

	songs := make(map[int]*models.Song, len(rows))
	for i, row := range rows {
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad song id %q", path, i+2, row[0])
		}
		if _, dup := songs[id]; dup {
			return nil, fmt.Errorf("%s row %d: duplicate song id %d", path, i+2, id)
		}
		artistID, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad artist id %q", path, i+2, row[3])
		}
		artist, ok := artists[artistID]
		if !ok {
			return nil, fmt.Errorf("%s row %d: song %d references unknown artist %d", path, i+2, id, artistID)
		}
		genres, err := parseGenreField(row[4])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		if len(genres) == 0 {
			return nil, fmt.Errorf("%s row %d: song %d has no genres", path, i+2, id)
		}
		songs[id] = &models.Song{
			ID:     id,
			Name:   cleanField(row[1]),
			NameFa: cleanField(row[2]),
			Artist: models.SimpleArtist{
				ID:     artist.ID,
				Name:   artist.Name,
				NameFa: artist.NameFa,
			},
			Genres:      genres,
			PreviewURL:  cleanField(row[5]),
			DownloadURL: cleanField(row[6]),
			SpotifyID:   cleanField(row[7]),
		}
	}
	return songs, nil
}

// readCSV reads all data rows of a CSV file after validating its header.
func readCSV(path string, columns []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(columns)

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: reading header: %w", path, err)
	}
	for i, col := range columns {
		if strings.TrimSpace(strings.ToLower(header[i])) != col {
			return nil, fmt.Errorf("%s: header column %d is %q, want %q", path, i, header[i], col)
		}
	}

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// cleanField normalizes a raw CSV cell. Spreadsheet exports leave "NaN" and
// "null" sentinels in optional columns; those become empty strings.
func cleanField(s string) string {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "nan", "null", "none":
		return ""
	}
	return s
}

// cleanDescription additionally collapses hard line breaks left over from
// scraped biography text.
func cleanDescription(s string) string {
	s = cleanField(s)
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.Join(strings.Fields(s), " ")
}

// parseGenreField parses the semicolon-separated genre cell.
func parseGenreField(s string) ([]models.Genre, error) {
	parts := strings.Split(s, ";")
	genres := make([]models.Genre, 0, len(parts))
	seen := make(map[models.Genre]struct{}, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		g, err := models.ParseGenre(p)
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
