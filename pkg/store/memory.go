package store

import (
	"context"
	"sync"

	"github.com/mr-romero/slidegrid/pkg/slide"
)

// MemoryStore is an in-memory slide store for development and testing.
// Documents are deep-copied on the way in and out, so callers never share
// state with the store.
type MemoryStore struct {
	mu     sync.RWMutex
	slides map[string]slide.Slide
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slides: make(map[string]slide.Slide)}
}

// Get retrieves a slide by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (slide.Slide, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.slides[id]
	if !ok {
		return slide.Slide{}, ErrNotFound
	}
	return doc.Clone(), nil
}

// Put stores a slide.
func (s *MemoryStore) Put(ctx context.Context, doc slide.Slide) error {
	if doc.ID == "" {
		return ErrMissingID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slides[doc.ID] = doc.Clone()
	return nil
}

// Delete removes a slide. Missing slides are a no-op.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slides, id)
	return nil
}

// List returns all stored slide IDs.
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.slides))
	for id := range s.slides {
		ids = append(ids, id)
	}
	return ids, nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close() error { return nil }

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
