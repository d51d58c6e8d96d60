// Package history persists per-entry launch counts and favorites at
// ~/.config/flare/history.toml.
package history

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// storeFileName is the name of the history file
const storeFileName = "history.toml"

// Store holds usage counts and favorites, keyed by entry identity.
// Counts only ever grow; there is no decay or expiry.
type Store struct {
	Usage     map[string]uint64 `toml:"usage"`
	Favorites []string          `toml:"favorites"`

	path string
}

// Load reads the store from dir. A missing file is a normal first run;
// an unreadable or corrupt file degrades to an empty in-memory store
// with a warning, never an error for the caller.
func Load(dir string) (*Store, string) {
	s := &Store{
		Usage: make(map[string]uint64),
		path:  filepath.Join(dir, storeFileName),
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, ""
		}
		return s, fmt.Sprintf("failed to read history (%v), counts start at zero", err)
	}

	if err := toml.Unmarshal(data, s); err != nil {
		s.Usage = make(map[string]uint64)
		s.Favorites = nil
		return s, fmt.Sprintf("invalid history file (%v), counts start at zero", err)
	}
	if s.Usage == nil {
		s.Usage = make(map[string]uint64)
	}
	return s, ""
}

// Count returns the launch count for an identity key, zero if unknown
func (s *Store) Count(key string) uint64 {
	return s.Usage[key]
}

// RecordLaunch increments one entry's count and persists the store.
// The increment always sticks in memory; a persistence failure is
// returned for reporting but must not block the launch.
func (s *Store) RecordLaunch(key string) error {
	s.Usage[key]++
	return s.Save()
}

// IsFavorite reports whether the identity key is marked favorite
func (s *Store) IsFavorite(key string) bool {
	for _, f := range s.Favorites {
		if f == key {
			return true
		}
	}
	return false
}

// ToggleFavorite flips the favorite mark for key and persists the store
func (s *Store) ToggleFavorite(key string) error {
	for i, f := range s.Favorites {
		if f == key {
			s.Favorites = append(s.Favorites[:i], s.Favorites[i+1:]...)
			return s.Save()
		}
	}
	s.Favorites = append(s.Favorites, key)
	return s.Save()
}

// Save writes the full store atomically: encode to a temp file in the
// same directory, then rename over the old one, so a failed write never
// clobbers a previously valid store.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), storeFileName+".*")
	if err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(s); err != nil {
		tmp.Close()
		return fmt.Errorf("encode history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace history: %w", err)
	}
	return nil
}
