// Package cache keeps a short-lived, per-session copy of the git state so
// that frequent status line refreshes do not re-run git every time.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/statusline/errors"
	"github.com/grovetools/statusline/git"
)

// Entry is the content of one session cache file.
type Entry struct {
	// Dir is the directory the git state describes.
	Dir       string    `yaml:"dir"`
	UpdatedAt time.Time `yaml:"updated_at"`
	Git       git.State `yaml:"git"`
}

// Store reads and writes session cache files under a directory.
type Store struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

// NewStore creates a store rooted at dir whose entries stay valid for ttl.
func NewStore(dir string, ttl time.Duration) *Store {
	return &Store{dir: dir, ttl: ttl, now: time.Now}
}

// entryPath returns the cache file of a session. Only UUID session ids are
// accepted, and the canonical form is used as the file name.
func (s *Store) entryPath(sessionID string) (string, error) {
	if s.dir == "" {
		return "", errors.CacheUnavailable("no cache directory")
	}
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return "", errors.CacheUnavailable("session id is not a UUID").WithDetail("session_id", sessionID)
	}
	return filepath.Join(s.dir, id.String()+".yml"), nil
}

// Load reads the entry of a session. A missing file is an error.
func (s *Store) Load(sessionID string) (*Entry, error) {
	path, err := s.entryPath(sessionID)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cache file: %w", err)
	}

	var entry Entry
	if err := yaml.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("parse cache file: %w", err)
	}
	return &entry, nil
}

// Save writes the entry of a session. The file is replaced atomically so
// concurrent status line processes never read a partial file.
func (s *Store) Save(sessionID string, entry *Entry) error {
	path, err := s.entryPath(sessionID)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	data, err := yaml.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".entry-*")
	if err != nil {
		return fmt.Errorf("create cache file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}
	return nil
}

// Lookup returns the cached git state of dir if it is fresh.
func (s *Store) Lookup(sessionID, dir string) (git.State, bool) {
	entry, err := s.Load(sessionID)
	if err != nil {
		return git.State{}, false
	}
	if !s.fresh(entry, dir) {
		return git.State{}, false
	}
	return entry.Git, true
}

// Put records the git state of dir for a session.
func (s *Store) Put(sessionID, dir string, state git.State) error {
	return s.Save(sessionID, &Entry{
		Dir:       filepath.Clean(dir),
		UpdatedAt: s.now(),
		Git:       state,
	})
}

func (s *Store) fresh(entry *Entry, dir string) bool {
	if s.ttl <= 0 || entry.Dir != filepath.Clean(dir) {
		return false
	}
	age := s.now().Sub(entry.UpdatedAt)
	return age >= 0 && age < s.ttl
}
