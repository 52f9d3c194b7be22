package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestLastEmpty(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Last(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("Last on empty store = %v, want ErrNoSession", err)
	}
}

func TestTouchOrdering(t *testing.T) {
	s := newTestStore(t)
	for _, p := range []string{"/tmp/a.json", "/tmp/b.json", "/tmp/c.json"} {
		if err := s.Touch(p); err != nil {
			t.Fatal(err)
		}
	}

	last, err := s.Last()
	if err != nil {
		t.Fatal(err)
	}
	if last != "/tmp/c.json" {
		t.Errorf("Last = %q, want the most recent touch", last)
	}

	// Re-touching moves an entry to the front without duplicating it.
	if err := s.Touch("/tmp/a.json"); err != nil {
		t.Fatal(err)
	}
	entries, err := s.Recent()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	if entries[0].Path != "/tmp/a.json" {
		t.Errorf("entries[0] = %q, want /tmp/a.json", entries[0].Path)
	}
}

func TestTouchResolvesRelativePaths(t *testing.T) {
	s := newTestStore(t)
	if err := s.Touch("board.json"); err != nil {
		t.Fatal(err)
	}
	last, err := s.Last()
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(last) {
		t.Errorf("stored path %q is not absolute", last)
	}
}

func TestTouchCapsList(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < maxEntries+5; i++ {
		if err := s.Touch(fmt.Sprintf("/tmp/board-%d.json", i)); err != nil {
			t.Fatal(err)
		}
	}
	entries, err := s.Recent()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != maxEntries {
		t.Errorf("entries = %d, want cap %d", len(entries), maxEntries)
	}
	if entries[0].Path != fmt.Sprintf("/tmp/board-%d.json", maxEntries+4) {
		t.Errorf("entries[0] = %q, oldest entries should be evicted", entries[0].Path)
	}
}

func TestCorruptListStartsOver(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "recent.json"), []byte("{{{"), 0600); err != nil {
		t.Fatal(err)
	}

	entries, err := s.Recent()
	if err != nil {
		t.Fatalf("corrupt list should not error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("entries = %d, want empty after corruption", len(entries))
	}
	if err := s.Touch("/tmp/fresh.json"); err != nil {
		t.Fatalf("Touch after corruption: %v", err)
	}
}
