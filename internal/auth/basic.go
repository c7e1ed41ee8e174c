// Nava - Music Recommendation Service
// Copyright 2026 Nava Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/navakit/nava

package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// BasicAuthManager validates HTTP Basic credentials against a single
// configured account. The password arrives pre-hashed (bcrypt) from
// configuration; plaintext never touches the config file.
type BasicAuthManager struct {
	username     string
	passwordHash []byte
}

// NewBasicAuthManager builds a manager from a username and a bcrypt
// password hash.
func NewBasicAuthManager(username, passwordHash string) (*BasicAuthManager, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if !strings.HasPrefix(passwordHash, "$2") {
		return nil, fmt.Errorf("admin password must be a bcrypt hash")
	}
	return &BasicAuthManager{
		username:     username,
		passwordHash: []byte(passwordHash),
	}, nil
}

// ValidateCredentials checks an Authorization header value. Comparison is
// constant-time for the username; bcrypt handles the password.
func (m *BasicAuthManager) ValidateCredentials(authHeader string) (string, error) {
	if !strings.HasPrefix(authHeader, "Basic ") {
		return "", fmt.Errorf("invalid authorization header format")
	}

	credentials, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(authHeader, "Basic "))
	if err != nil {
		return "", fmt.Errorf("failed to decode credentials")
	}
	username, password, found := strings.Cut(string(credentials), ":")
	if !found {
		return "", fmt.Errorf("invalid credentials format")
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(m.username)) == 1
	passwordErr := bcrypt.CompareHashAndPassword(m.passwordHash, []byte(password))
	if !usernameMatch || passwordErr != nil {
		return "", fmt.Errorf("invalid username or password")
	}
	return username, nil
}
