// Package session tracks recently opened boards so the editor can resume
// where the user left off.
//
// Entries are stored as a single JSON file in the user's config directory.
// The most recently touched board sorts first; `flowboard edit` with no
// argument reopens it.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"
)

// ErrNoSession is returned by [Store.Last] when no board has been opened yet.
var ErrNoSession = errors.New("no recent board")

// maxEntries caps the recent-board list.
const maxEntries = 10

// Entry records one opened board.
type Entry struct {
	Path     string    `json:"path"`
	OpenedAt time.Time `json:"opened_at"`
}

// Store is a file-backed recent-board list.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a recent-board store under baseDir.
// If baseDir is empty, defaults to ~/.config/flowboard/.
func NewStore(baseDir string) (*Store, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "flowboard")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	return &Store{path: filepath.Join(baseDir, "recent.json")}, nil
}

// Touch records that the board at path was just opened, moving it to the
// front of the list. The path is stored in absolute form so the list stays
// meaningful across working directories.
func (s *Store) Touch(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	entries, err := s.load()
	if err != nil {
		return err
	}
	entries = slices.DeleteFunc(entries, func(e Entry) bool { return e.Path == abs })
	entries = append([]Entry{{Path: abs, OpenedAt: time.Now()}}, entries...)
	if len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}
	return s.save(entries)
}

// Recent returns the recent boards, most recent first.
func (s *Store) Recent() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Last returns the path of the most recently opened board, or ErrNoSession.
func (s *Store) Last() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", ErrNoSession
	}
	return entries[0].Path, nil
}

func (s *Store) load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read recent list: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		// Corrupt list: start over rather than block the editor.
		return nil, nil
	}
	return entries, nil
}

func (s *Store) save(entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal recent list: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write recent list: %w", err)
	}
	return nil
}
