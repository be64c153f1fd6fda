// Package events provides a typed event bus scoped to one editor session.
//
// Editor surfaces (grid view, block settings, connection overlays) need to
// react to layout changes made elsewhere in the UI. Rather than ambient
// process-wide callbacks, each editing session owns a Bus: mutating
// operations publish typed events and interested components subscribe.
//
// Dispatch is synchronous and in subscription order - the engine's
// operations are cheap value transformations, so there is no queueing or
// background delivery. Handlers must not block.
package events

import "sync"

// Event is implemented by all editor event types.
type Event interface {
	// Name returns a stable identifier for the event type, usable as a
	// log field or metric label.
	Name() string
}

// BlockAssigned is published when a block's anchor is recorded.
type BlockAssigned struct {
	SlideID string
	BlockID string
	Row     int
	Column  int
}

func (BlockAssigned) Name() string { return "block_assigned" }

// AssignRejected is published when the guarded assignment mode refuses an
// occupied anchor cell.
type AssignRejected struct {
	SlideID string
	BlockID string
	Row     int
	Column  int
}

func (AssignRejected) Name() string { return "assign_rejected" }

// GridResized is published after an explicit grid resize.
type GridResized struct {
	SlideID string
	Rows    int
	Columns int
}

func (GridResized) Name() string { return "grid_resized" }

// SpanChanged is published after a span grow or shrink.
type SpanChanged struct {
	SlideID string
	BlockID string
	Rows    int
	Columns int
}

func (SpanChanged) Name() string { return "span_changed" }

// ColumnPromoted is published when a single-column slide is promoted to
// two columns by a drag gesture.
type ColumnPromoted struct {
	SlideID   string
	DraggedID string
}

func (ColumnPromoted) Name() string { return "column_promoted" }

// BlockAdded is published when a new block joins the slide.
type BlockAdded struct {
	SlideID string
	BlockID string
	Kind    string
}

func (BlockAdded) Name() string { return "block_added" }

// BlockDuplicated is published when a block is cloned.
type BlockDuplicated struct {
	SlideID  string
	SourceID string
	NewID    string
}

func (BlockDuplicated) Name() string { return "block_duplicated" }

// BlockDeleted is published when a block and its layout entries are removed.
type BlockDeleted struct {
	SlideID string
	BlockID string
}

func (BlockDeleted) Name() string { return "block_deleted" }

// Handler receives published events.
type Handler func(Event)

// Bus is a synchronous publish/subscribe bus for one editor session.
// The zero value is ready to use. Bus is safe for concurrent use.
type Bus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[int]Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus { return &Bus{} }

// Subscribe registers a handler for all events and returns a function that
// removes it again. Unsubscribing twice is harmless.
func (b *Bus) Subscribe(h Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.handlers == nil {
		b.handlers = make(map[int]Handler)
	}
	id := b.nextID
	b.nextID++
	b.handlers[id] = h
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers, id)
	}
}

// Publish delivers e to every subscribed handler, synchronously, in
// subscription order. A nil bus drops events - callers that do not care
// about notifications can pass one around freely.
func (b *Bus) Publish(e Event) {
	if b == nil {
		return
	}
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.handlers))
	for id := 0; id < b.nextID; id++ {
		if h, ok := b.handlers[id]; ok {
			handlers = append(handlers, h)
		}
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(e)
	}
}
