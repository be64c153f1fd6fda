package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mr-romero/slidegrid/pkg/slide"
)

// FileStore stores each slide as one JSON document in a directory, for CLI
// usage. Filenames are the slide IDs, so IDs must be path-safe (UUIDs are).
type FileStore struct {
	mu  sync.RWMutex
	dir string
}

// NewFileStore creates a file-based slide store in the given directory.
// If dir is empty, defaults to ~/.config/slidegrid/slides/.
// The directory is created if it doesn't exist.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		dir = filepath.Join(home, ".config", "slidegrid", "slides")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create slide dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// Get retrieves a slide by ID.
func (s *FileStore) Get(ctx context.Context, id string) (slide.Slide, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(id))
	if os.IsNotExist(err) {
		return slide.Slide{}, ErrNotFound
	}
	if err != nil {
		return slide.Slide{}, fmt.Errorf("read slide file: %w", err)
	}

	doc, err := slide.Unmarshal(data)
	if err != nil {
		return slide.Slide{}, fmt.Errorf("parse slide %s: %w", id, err)
	}
	return doc, nil
}

// Put stores a slide.
func (s *FileStore) Put(ctx context.Context, doc slide.Slide) error {
	if doc.ID == "" {
		return ErrMissingID
	}

	data, err := slide.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode slide %s: %w", doc.ID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(s.path(doc.ID), data, 0o644); err != nil {
		return fmt.Errorf("write slide file: %w", err)
	}
	return nil
}

// Delete removes a slide. Missing slides are a no-op.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(id))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// List returns all stored slide IDs.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read slide dir: %w", err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".json"))
	}
	return ids, nil
}

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
