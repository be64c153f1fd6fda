// Package present provides live presentation session management.
//
// When a teacher presents a lesson, students join the running session with
// a short code and follow the active slide. The real-time transport that
// pushes slide changes to students lives outside this module; what lives
// here is the session registry - creating sessions, resolving join codes,
// tracking the active slide index, and expiring stale sessions.
//
// Two storage backends are provided:
//   - memory: single-instance deployments, development, and testing
//   - redis: production multi-instance deployments
//
// # Usage
//
// Create a session store and start presenting:
//
//	store := present.NewMemoryStore()
//	sess, err := present.New("lesson-42", present.DefaultTTL)
//	if err != nil {
//	    return err
//	}
//	store.Set(ctx, sess)
//
//	// A student joins by code:
//	sess, err := store.GetByCode(ctx, "XKCD42")
package present

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors for session operations.
var (
	// ErrNotFound is returned when a session does not exist.
	ErrNotFound = errors.New("session not found")

	// ErrExpired is returned when a session exists but has exceeded its TTL.
	ErrExpired = errors.New("session expired")
)

// Default durations.
const (
	// DefaultTTL is the default presentation session duration. Long enough
	// for a double lesson, short enough that abandoned sessions free their
	// join codes the same day.
	DefaultTTL = 4 * time.Hour
)

// codeAlphabet excludes easily confused characters (0/O, 1/I/L).
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// codeLength is the join code length shown to students.
const codeLength = 6

// Session is one live presentation of a lesson.
type Session struct {
	ID         string    `json:"id"`
	JoinCode   string    `json:"join_code"`
	LessonID   string    `json:"lesson_id"`
	SlideIndex int       `json:"slide_index"`
	Paused     bool      `json:"paused"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// IsExpired returns true if the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// New creates a session for the given lesson with a fresh ID and join code.
func New(lessonID string, ttl time.Duration) (*Session, error) {
	code, err := GenerateJoinCode()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		JoinCode:  code,
		LessonID:  lessonID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}, nil
}

// GenerateJoinCode creates a cryptographically random student join code.
// The alphabet avoids characters that read ambiguously on a projector.
func GenerateJoinCode() (string, error) {
	code := make([]byte, codeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			return "", err
		}
		code[i] = codeAlphabet[n.Int64()]
	}
	return string(code), nil
}

// Store is the interface for session storage backends.
type Store interface {
	// Get retrieves a session by ID.
	// Returns ErrNotFound if it doesn't exist, ErrExpired if it has expired.
	Get(ctx context.Context, sessionID string) (*Session, error)

	// GetByCode resolves a student join code to its session.
	// Returns ErrNotFound for unknown codes, ErrExpired for stale ones.
	GetByCode(ctx context.Context, joinCode string) (*Session, error)

	// Set stores a session, replacing any previous state.
	Set(ctx context.Context, session *Session) error

	// Delete ends a session and frees its join code.
	Delete(ctx context.Context, sessionID string) error

	// Cleanup removes expired sessions (may be a no-op for Redis, which
	// expires keys itself).
	Cleanup(ctx context.Context) error
}
