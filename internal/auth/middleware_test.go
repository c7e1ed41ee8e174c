// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

package auth

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func okHandler(t *testing.T) (http.Handler, *bool) {
	t.Helper()
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), &called
}

func TestJWTMiddleware(t *testing.T) {
	t.Parallel()

	m, err := NewJWTManager(testSecret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	token, err := m.GenerateToken("chatbot", "client")
	if err != nil {
		t.Fatal(err)
	}
	mw := Middleware("jwt", m, nil)

	tests := []struct {
		name       string
		setup      func(*http.Request)
		wantStatus int
		wantClaims bool
	}{
		{
			name:       "bearer header",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) },
			wantStatus: http.StatusOK,
			wantClaims: true,
		},
		{
			name:       "access_token query parameter",
			setup:      func(r *http.Request) { r.URL.RawQuery = "access_token=" + token },
			wantStatus: http.StatusOK,
			wantClaims: true,
		},
		{
			name:       "missing token",
			setup:      func(r *http.Request) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") },
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var gotClaims *Claims
			handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotClaims = ClaimsFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/genres", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantClaims && (gotClaims == nil || gotClaims.ClientID != "chatbot") {
				t.Errorf("claims = %+v, want chatbot claims in context", gotClaims)
			}
		})
	}
}

func TestBasicMiddleware(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	m, err := NewBasicAuthManager("admin", string(hash))
	if err != nil {
		t.Fatal(err)
	}
	mw := Middleware("basic", nil, m)

	handler, called := okHandler(t)
	wrapped := mw(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("admin:hunter2hunter2")))
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || !*called {
		t.Errorf("valid credentials: status = %d, called = %v", rec.Code, *called)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("admin:wrong")))
	rec = httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad password: status = %d, want 401", rec.Code)
	}
	if rec.Header().Get("WWW-Authenticate") == "" {
		t.Error("WWW-Authenticate header missing on 401")
	}
}

func TestNoneMiddlewarePassesThrough(t *testing.T) {
	t.Parallel()

	mw := Middleware("none", nil, nil)
	handler, called := okHandler(t)
	rec := httptest.NewRecorder()
	mw(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if !*called {
		t.Error("none mode must not block requests")
	}
}

func TestNewBasicAuthManagerValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewBasicAuthManager("", "$2a$10$abcdefghijklmnopqrstuv"); err == nil {
		t.Error("empty username should fail")
	}
	if _, err := NewBasicAuthManager("admin", "plaintext"); err == nil {
		t.Error("non-bcrypt password should fail")
	}
}
