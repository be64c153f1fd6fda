// Package store provides persistence backends for slide documents.
//
// The layout engine is pure and I/O-free; the editor service loads a slide
// from a Store, transforms it, and saves it back. This package defines the
// Store interface and three backends:
//   - memory: in-memory storage for development and testing
//   - file: one JSON document per slide, for CLI usage
//   - mongo: document storage for the hosted editor
//
// All backends treat the slide document as opaque apart from its ID - the
// engine's silent-normalization guarantees mean a loaded document is always
// safe to transform.
package store

import (
	"context"
	"errors"

	"github.com/mr-romero/slidegrid/pkg/slide"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a requested slide does not exist.
	ErrNotFound = errors.New("slide not found")

	// ErrMissingID is returned when saving a slide without an ID.
	ErrMissingID = errors.New("slide ID must not be empty")
)

// Store is the interface for slide document storage backends.
type Store interface {
	// Get retrieves a slide by ID. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id string) (slide.Slide, error)

	// Put stores a slide, replacing any existing document with the same ID.
	Put(ctx context.Context, s slide.Slide) error

	// Delete removes a slide. Deleting a missing slide is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored slides, in unspecified order.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close() error
}
