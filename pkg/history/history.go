// Package history keeps an ordered list of previously entered lines and
// persists it to a plain text file, one entry per line.
//
// The file is only touched by Load and Save, so a session reads its history
// once when it starts and writes it once when it ends.
package history

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// Store is an append-only line history backed by a file.
type Store struct {
	path  string
	limit int
	lines []string
}

// New returns an empty store for path. A limit of 0 keeps every entry;
// otherwise only the newest limit entries are kept.
func New(path string, limit int) *Store {
	return &Store{path: path, limit: limit}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load replaces the in-memory entries with the file's contents. A missing
// file leaves the store empty and returns an error satisfying os.IsNotExist.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.lines = nil
		return err
	}
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	for sc.Scan() {
		if line := sc.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read history %s: %w", s.path, err)
	}
	s.lines = lines
	s.trim()
	return nil
}

// Add appends a line. Empty lines are not recorded.
func (s *Store) Add(line string) {
	if line == "" {
		return
	}
	s.lines = append(s.lines, line)
	s.trim()
}

// Lines returns the entries, oldest first.
func (s *Store) Lines() []string {
	return append([]string(nil), s.lines...)
}

// Len returns the number of entries.
func (s *Store) Len() int { return len(s.lines) }

// Save writes every entry to the backing file, creating its directory.
func (s *Store) Save() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create history directory: %w", err)
		}
	}
	var buf bytes.Buffer
	for _, line := range s.lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}

func (s *Store) trim() {
	if s.limit > 0 && len(s.lines) > s.limit {
		s.lines = append([]string(nil), s.lines[len(s.lines)-s.limit:]...)
	}
}
