// Copyright 2026 The GoTicket Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Profile is the subset of the backend user record the client keeps
// locally alongside the token. Everything else is fetched fresh from
// GET /api/profile when needed.
type Profile struct {
	// UserID is the backend's identifier for the user.
	UserID string `json:"user_id"`

	// FullName is the user's display name.
	FullName string `json:"full_name"`

	// Email is the address the account was registered with.
	Email string `json:"email"`
}

// Session holds the authenticated identity persisted between runs:
// the opaque bearer token plus the user profile. Token and profile
// are always written and removed together — a session file with one
// but not the other is treated as corrupt.
type Session struct {
	// Token is the opaque bearer token returned by login/register.
	// The backend verifies it on every authenticated call.
	Token string `json:"token"`

	// User is the profile returned alongside the token.
	User Profile `json:"user"`
}

// FilePath returns the path to the session file. Checks the
// GOTICKET_SESSION_FILE environment variable first, then falls back
// to ~/.config/goticket/session.json.
func FilePath() string {
	if envPath := os.Getenv("GOTICKET_SESSION_FILE"); envPath != "" {
		return envPath
	}

	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			// Fallback — this should rarely happen.
			return filepath.Join("/tmp", "goticket-session.json")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "goticket", "session.json")
}

// Store reads and writes the session file. Construct one per process
// and pass it to whatever needs authentication state — there is no
// package-level singleton. The store re-reads the file on each Load,
// so "is a user logged in" is always recomputed from disk rather
// than cached across screens.
type Store struct {
	path string
}

// NewStore creates a store backed by the well-known session path
// (see FilePath).
func NewStore() *Store {
	return &Store{path: FilePath()}
}

// NewStoreAt creates a store backed by a specific file path. Used by
// config overrides and tests.
func NewStoreAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the file path this store reads and writes.
func (store *Store) Path() string {
	return store.path
}

// Load reads the session from disk. Returns a clear error directing
// the user to "goticket login" if no session exists.
func (store *Store) Load() (*Session, error) {
	data, err := os.ReadFile(store.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no GoTicket session found at %s — run \"goticket login\" first", store.path)
		}
		return nil, fmt.Errorf("reading session file %s: %w", store.path, err)
	}

	var loaded Session
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parsing session file %s: %w", store.path, err)
	}

	if loaded.Token == "" {
		return nil, fmt.Errorf("session file %s has no token", store.path)
	}
	if loaded.User.UserID == "" {
		return nil, fmt.Errorf("session file %s has no user profile", store.path)
	}

	return &loaded, nil
}

// Token returns the stored bearer token, or "" when no valid session
// exists. Token presence is the sole authoritative logged-in signal.
func (store *Store) Token() string {
	loaded, err := store.Load()
	if err != nil {
		return ""
	}
	return loaded.Token
}

// LoggedIn reports whether a valid session is on disk.
func (store *Store) LoggedIn() bool {
	return store.Token() != ""
}

// Save writes the session to disk. Creates the parent directory with
// mode 0700 if it doesn't exist. The file is written with mode 0600
// (owner-only read/write) since it contains the bearer token.
func (store *Store) Save(current *Session) error {
	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	data = append(data, '\n')

	directory := filepath.Dir(store.path)
	if err := os.MkdirAll(directory, 0700); err != nil {
		return fmt.Errorf("creating session directory %s: %w", directory, err)
	}

	if err := os.WriteFile(store.path, data, 0600); err != nil {
		return fmt.Errorf("writing session file %s: %w", store.path, err)
	}

	return nil
}

// Clear removes the session file. Token and profile go together —
// there is no partial logout. Clearing an already-absent session is
// not an error.
func (store *Store) Clear() error {
	if err := os.Remove(store.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file %s: %w", store.path, err)
	}
	return nil
}
