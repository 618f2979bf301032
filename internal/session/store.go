// Package session persists the single authenticated session between runs.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// RoleAdmin unlocks the admin commands.
const RoleAdmin = "ADMIN"

// Session is the active authenticated identity plus its bearer credential.
// The username doubles as the opaque user id.
type Session struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

// IsAdmin reports whether the session's role unlocks admin operations.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// Store holds the current session and mirrors it to one JSON file under a
// fixed path. Absence of a session implies guest mode. The file is read
// once at startup via Restore and written only by Save and Clear, so
// there is no concurrent-writer scenario.
type Store struct {
	path    string
	current *Session
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Restore loads a previously persisted session, if any. A missing file
// means guest mode and is not an error. A corrupt file is treated as
// guest mode too: identity state is recoverable by logging in again.
func (s *Store) Restore() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.current = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("os.ReadFile(%s) > %w", s.path, err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		s.current = nil
		return nil
	}
	s.current = &sess
	return nil
}

// Current returns the active session, or nil in guest mode.
func (s *Store) Current() *Session {
	return s.current
}

// IsGuest reports whether no session is active.
func (s *Store) IsGuest() bool {
	return s.current == nil
}

// Token returns the active credential, or "" in guest mode.
func (s *Store) Token() string {
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// Save makes the given session current and persists it.
func (s *Store) Save(sess Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("json.Marshal > %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(s.path), err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", s.path, err)
	}
	s.current = &sess
	return nil
}

// Clear drops the in-memory session and removes the persisted entry.
// Clearing an absent session is not an error.
func (s *Store) Clear() error {
	s.current = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("os.Remove(%s) > %w", s.path, err)
	}
	return nil
}
