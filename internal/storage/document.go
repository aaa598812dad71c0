package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DocumentStore persists independently keyed JSON documents as files under a
// base directory, replaced whole on every write. It is the local stand-in
// for browser storage: two small documents, no partial updates.
//
// Read-modify-write sequences on the same store are serialized by a mutex so
// concurrent HTTP requests cannot interleave counter updates.
type DocumentStore struct {
	basePath string
	mu       sync.Mutex
}

// NewDocumentStore initializes a DocumentStore rooted at basePath.
func NewDocumentStore(basePath string) (*DocumentStore, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, errors.New("storage: base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: ensure base path: %w", err)
	}
	return &DocumentStore{basePath: basePath}, nil
}

// BasePath returns the configured root directory.
func (s *DocumentStore) BasePath() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

// Read unmarshals the document at key into out. A missing document reports
// os.ErrNotExist; corrupt JSON is surfaced so callers can decide to
// reinitialize.
func (s *DocumentStore) Read(ctx context.Context, key string, out any) error {
	if s == nil {
		return errors.New("storage: no store configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.documentPath(key)
	if err != nil {
		return err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage: document %s: %w", key, os.ErrNotExist)
		}
		return fmt.Errorf("storage: read document: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("storage: decode document %s: %w", key, err)
	}
	return nil
}

// Write replaces the document at key with the JSON encoding of v. The
// replacement is atomic: a temp file is written first, then renamed over the
// old document.
func (s *DocumentStore) Write(ctx context.Context, key string, v any) error {
	if s == nil {
		return errors.New("storage: no store configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.documentPath(key)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: encode document %s: %w", key, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("storage: write document: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("storage: replace document: %w", err)
	}
	return nil
}

// Update runs fn while holding the store lock, serializing read-modify-write
// sequences across goroutines.
func (s *DocumentStore) Update(fn func() error) error {
	if s == nil {
		return errors.New("storage: no store configured")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// documentPath validates the key and resolves it to a file path. Keys are
// flat names; separators are rejected to prevent traversal.
func (s *DocumentStore) documentPath(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New("storage: key is required")
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("storage: invalid key %q", key)
	}
	return filepath.Join(s.basePath, key+".json"), nil
}
