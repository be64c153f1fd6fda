package present

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory session store for single-instance
// deployments and testing.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	byCode   map[string]string // join code -> session ID
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
		byCode:   make(map[string]string),
	}
}

// Get retrieves a session by ID.
func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if sess.IsExpired() {
		_ = s.Delete(ctx, sessionID)
		return nil, ErrExpired
	}
	copy := *sess
	return &copy, nil
}

// GetByCode resolves a join code to its session.
func (s *MemoryStore) GetByCode(ctx context.Context, joinCode string) (*Session, error) {
	s.mu.RLock()
	id, ok := s.byCode[joinCode]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	return s.Get(ctx, id)
}

// Set stores a session.
func (s *MemoryStore) Set(ctx context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy := *sess
	s.sessions[sess.ID] = &copy
	s.byCode[sess.JoinCode] = sess.ID
	return nil
}

// Delete ends a session and frees its join code.
func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[sessionID]; ok {
		delete(s.byCode, sess.JoinCode)
		delete(s.sessions, sessionID)
	}
	return nil
}

// Cleanup removes expired sessions.
func (s *MemoryStore) Cleanup(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		if sess.IsExpired() {
			delete(s.byCode, sess.JoinCode)
			delete(s.sessions, id)
		}
	}
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
