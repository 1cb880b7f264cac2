// Package history persists which people the user has viewed, so the
// browser can reopen where they left off and offer recently visited
// people. History is stored as a JSON file in a config directory.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// MaxRecent caps the recently-viewed list.
const MaxRecent = 20

// History records the viewing trail of one user.
type History struct {
	// LastViewed is the person id the tree was last centered on.
	LastViewed string `json:"last_viewed"`

	// Recent lists recently viewed person ids, most recent first.
	Recent []string `json:"recent,omitempty"`

	// UpdatedAt is when the history was last written.
	UpdatedAt time.Time `json:"updated_at"`
}

// Visit records that the tree was centered on personID. The id moves to
// the front of the recent list; the list is capped at MaxRecent.
func (h *History) Visit(personID string) {
	if personID == "" {
		return
	}
	h.LastViewed = personID

	recent := make([]string, 0, len(h.Recent)+1)
	recent = append(recent, personID)
	for _, id := range h.Recent {
		if id != personID {
			recent = append(recent, id)
		}
	}
	if len(recent) > MaxRecent {
		recent = recent[:MaxRecent]
	}
	h.Recent = recent
	h.UpdatedAt = time.Now()
}

// FileStore is a file-based history store for CLI applications.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a new file-based history store.
// If baseDir is empty, defaults to ~/.config/kintree/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "kintree")
	}
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}
	return &FileStore{path: filepath.Join(baseDir, "history.json")}, nil
}

// Load reads the stored history. A missing file yields an empty history.
func (s *FileStore) Load() (History, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var h History
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return h, nil
		}
		return h, fmt.Errorf("read history file: %w", err)
	}
	if err := json.Unmarshal(data, &h); err != nil {
		return History{}, fmt.Errorf("parse history: %w", err)
	}
	return h, nil
}

// Save writes the history to disk.
func (s *FileStore) Save(h History) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write history file: %w", err)
	}
	return nil
}

// Path returns the history file path.
func (s *FileStore) Path() string {
	return s.path
}
