// Package state keeps the reader's last-used pacing preferences and other
// per-user files under the XDG state directory.
package state

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

const (
	appName       = "rsvp"
	stateFileName = "preferences.toml"
	logFileName   = "rsvp.log"
)

// Preferences are the pacing options remembered between runs.
type Preferences struct {
	WPM            int  `toml:"wpm"`
	SmartPauses    bool `toml:"smart_pauses"`
	PairShortWords bool `toml:"pair_short_words"`
}

// StateStore manages persistent preferences.
type StateStore struct {
	path  string
	prefs *Preferences
	mu    sync.RWMutex
}

// NewStateStore creates or loads state from XDG_STATE_HOME/rsvp/
func NewStateStore() (*StateStore, error) {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	store := &StateStore{path: filepath.Join(dir, stateFileName)}
	if err := store.load(); err != nil {
		// Non-fatal - start with no saved preferences
		store.prefs = nil
	}
	return store, nil
}

// Dir returns XDG_STATE_HOME/rsvp or ~/.local/state/rsvp
func Dir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", appName)
}

// LogPath returns the default log file location.
func LogPath() string {
	return filepath.Join(Dir(), logFileName)
}

// Path returns the preferences file location.
func (s *StateStore) Path() string {
	return s.path
}

// Preferences returns the saved preferences, if any.
func (s *StateStore) Preferences() (Preferences, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.prefs == nil {
		return Preferences{}, false
	}
	return *s.prefs, true
}

// Save stores p and writes it to disk.
func (s *StateStore) Save(p Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = &p
	return s.save()
}

// Clear removes the saved preferences.
func (s *StateStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = nil
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s *StateStore) load() error {
	var p Preferences
	_, err := toml.DecodeFile(s.path, &p)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	s.prefs = &p
	return nil
}

func (s *StateStore) save() error {
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(s.prefs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
