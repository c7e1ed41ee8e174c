// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

package validation

import (
	"strings"
	"testing"

	"github.com/navakit/nava/internal/models"
)

type recommendQuery struct {
	Genres   []string `validate:"required,min=1,dive,genre"`
	SongType string   `validate:"omitempty,songtype"`
	Limit    int      `validate:"min=0,max=20"`
}

func TestValidateStructSuccess(t *testing.T) {
	t.Parallel()

	q := recommendQuery{Genres: []string{"pop", "rock"}, SongType: "preview", Limit: 5}
	if verr := ValidateStruct(&q); verr != nil {
		t.Errorf("ValidateStruct() = %v, want nil", verr)
	}
}

func TestValidateStructFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		query     recommendQuery
		wantField string
	}{
		{name: "missing genres", query: recommendQuery{}, wantField: "Genres"},
		{name: "unknown genre", query: recommendQuery{Genres: []string{"jazz"}}, wantField: "Genres"},
		{name: "unknown song type", query: recommendQuery{Genres: []string{"pop"}, SongType: "vinyl"}, wantField: "SongType"},
		{name: "limit too big", query: recommendQuery{Genres: []string{"pop"}, Limit: 100}, wantField: "Limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			verr := ValidateStruct(&tt.query)
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			apiErr := verr.ToAPIError()
			if apiErr.Code != models.ErrCodeValidation {
				t.Errorf("code = %q, want %q", apiErr.Code, models.ErrCodeValidation)
			}
			found := false
			for _, f := range verr.Fields() {
				if strings.Contains(f.Field, tt.wantField) {
					found = true
				}
			}
			if !found {
				t.Errorf("no failure mentions field %q: %v", tt.wantField, verr)
			}
		})
	}
}

func TestToAPIErrorDetails(t *testing.T) {
	t.Parallel()

	q := recommendQuery{Genres: []string{"jazz"}, Limit: 100}
	verr := ValidateStruct(&q)
	if verr == nil {
		t.Fatal("expected validation failures")
	}
	apiErr := verr.ToAPIError()
	if len(apiErr.Details) != 2 {
		t.Errorf("details = %v, want 2 entries", apiErr.Details)
	}
}
