// Package editor is the stateful layer over the layout engine: it loads
// slides from a store, applies layout operations, saves the result, and
// publishes events for interested UI surfaces.
//
// The engine itself (package layout) is pure value transformations; the
// Editor adds persistence, validation, structured logging, and hooks.
// Both the CLI and the HTTP API drive the same Editor, so behavior is
// identical across surfaces.
//
// # Usage
//
//	ed := editor.New(store, editor.WithBus(bus))
//	doc, err := ed.AssignBlock(ctx, slideID, blockID, grid.Position{Row: 1}, layout.Overwrite)
package editor

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/mr-romero/slidegrid/pkg/errors"
	"github.com/mr-romero/slidegrid/pkg/events"
	"github.com/mr-romero/slidegrid/pkg/grid"
	"github.com/mr-romero/slidegrid/pkg/layout"
	"github.com/mr-romero/slidegrid/pkg/observability"
	"github.com/mr-romero/slidegrid/pkg/slide"
	"github.com/mr-romero/slidegrid/pkg/store"
)

// Editor applies layout operations to stored slides.
//
// The Editor is stateless except for its store handle, bus, and logger.
// Multiple goroutines can safely share one Editor; concurrent edits to
// the same slide are last-writer-wins, matching the store semantics.
type Editor struct {
	store  store.Store
	bus    *events.Bus
	logger *log.Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithBus attaches an event bus. Without one, events are dropped.
func WithBus(b *events.Bus) Option { return func(e *Editor) { e.bus = b } }

// WithLogger sets the structured logger. Defaults to log.Default().
func WithLogger(l *log.Logger) Option { return func(e *Editor) { e.logger = l } }

// New creates an Editor over the given slide store.
func New(s store.Store, opts ...Option) *Editor {
	e := &Editor{store: s, logger: log.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CreateSlide creates and stores an empty slide.
func (e *Editor) CreateSlide(ctx context.Context, title string) (slide.Slide, error) {
	doc := slide.New(title)
	if err := e.store.Put(ctx, doc); err != nil {
		return slide.Slide{}, errors.Wrap(errors.ErrCodeStore, err, "create slide")
	}
	e.logger.Info("created slide", "slide", doc.ID, "title", title)
	return doc, nil
}

// GetSlide loads a slide by ID.
func (e *Editor) GetSlide(ctx context.Context, slideID string) (slide.Slide, error) {
	return e.load(ctx, slideID)
}

// ListSlides returns all stored slide IDs.
func (e *Editor) ListSlides(ctx context.Context) ([]string, error) {
	ids, err := e.store.List(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list slides")
	}
	return ids, nil
}

// DeleteSlide removes a slide from the store.
func (e *Editor) DeleteSlide(ctx context.Context, slideID string) error {
	if err := e.store.Delete(ctx, slideID); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete slide %s", slideID)
	}
	e.logger.Info("deleted slide", "slide", slideID)
	return nil
}

// AddBlock appends a new block of the given kind to the slide. The block
// starts unpositioned; it resolves to the origin cell until assigned.
func (e *Editor) AddBlock(ctx context.Context, slideID, kind string) (slide.Slide, error) {
	if !slide.ValidKinds[kind] {
		return slide.Slide{}, errors.New(errors.ErrCodeInvalidKind, "unknown block kind: %s", kind)
	}

	return e.mutate(ctx, "add_block", slideID, func(doc slide.Slide) (slide.Slide, error) {
		out := doc.Clone()
		b := slide.NewBlock(kind)
		out.Blocks = append(out.Blocks, b)
		e.bus.Publish(events.BlockAdded{SlideID: slideID, BlockID: b.ID, Kind: kind})
		return out, nil
	})
}

// AssignBlock records a block's anchor position. Under layout.Reject the
// assignment fails with ErrCodeCellOccupied when another block already
// anchors at the target cell; under layout.Overwrite anchors may stack.
func (e *Editor) AssignBlock(ctx context.Context, slideID, blockID string, pos grid.Position, policy layout.ConflictPolicy) (slide.Slide, error) {
	return e.mutate(ctx, "assign", slideID, func(doc slide.Slide) (slide.Slide, error) {
		if !doc.HasBlock(blockID) {
			return slide.Slide{}, errors.New(errors.ErrCodeBlockNotFound, "block %s not on slide %s", blockID, slideID)
		}

		out, ok := layout.Assign(doc, blockID, pos, policy)
		if !ok {
			observability.Editor().OnConflict(ctx, slideID, blockID)
			e.bus.Publish(events.AssignRejected{SlideID: slideID, BlockID: blockID, Row: pos.Row, Column: pos.Column})
			return slide.Slide{}, errors.New(errors.ErrCodeCellOccupied, "cell (%d,%d) is occupied", pos.Row, pos.Column)
		}

		recorded := out.Layout.PositionOf(blockID)
		e.bus.Publish(events.BlockAssigned{SlideID: slideID, BlockID: blockID, Row: recorded.Row, Column: recorded.Column})
		return out, nil
	})
}

// ResizeGrid sets the grid dimensions, clamping every position and span
// into the new bounds. Dimensions are floored at 1x1.
func (e *Editor) ResizeGrid(ctx context.Context, slideID string, rows, cols int) (slide.Slide, error) {
	return e.mutate(ctx, "resize", slideID, func(doc slide.Slide) (slide.Slide, error) {
		out := doc.Clone()
		out.Layout = layout.Resize(doc.Layout, rows, cols)
		dim := out.Layout.Dim()
		e.bus.Publish(events.GridResized{SlideID: slideID, Rows: dim.Rows, Columns: dim.Columns})
		return out, nil
	})
}

// Span directions accepted by AdjustSpan.
const (
	AxisRow    = "row"
	AxisColumn = "column"
	DirGrow    = "grow"
	DirShrink  = "shrink"
)

// AdjustSpan grows or shrinks a block's span by one cell along one axis.
// Growth clamps at the grid edge, shrink floors at a single cell.
func (e *Editor) AdjustSpan(ctx context.Context, slideID, blockID, axis, dir string) (slide.Slide, error) {
	var fn func(*slide.Layout, string) *slide.Layout
	switch {
	case axis == AxisRow && dir == DirGrow:
		fn = layout.GrowRowSpan
	case axis == AxisRow && dir == DirShrink:
		fn = layout.ShrinkRowSpan
	case axis == AxisColumn && dir == DirGrow:
		fn = layout.GrowColumnSpan
	case axis == AxisColumn && dir == DirShrink:
		fn = layout.ShrinkColumnSpan
	default:
		return slide.Slide{}, errors.New(errors.ErrCodeInvalidInput, "unknown span adjustment %s/%s", axis, dir)
	}

	op := "span_" + axis + "_" + dir
	return e.mutate(ctx, op, slideID, func(doc slide.Slide) (slide.Slide, error) {
		if !doc.HasBlock(blockID) {
			return slide.Slide{}, errors.New(errors.ErrCodeBlockNotFound, "block %s not on slide %s", blockID, slideID)
		}
		out := doc.Clone()
		out.Layout = fn(doc.Layout, blockID)
		span := out.Layout.SpanOf(blockID)
		e.bus.Publish(events.SpanChanged{SlideID: slideID, BlockID: blockID, Rows: span.Rows, Columns: span.Columns})
		return out, nil
	})
}

// PromoteColumn converts a single-column slide to two columns, placing
// the dragged block in the new right column. No-op when the slide has
// fewer than two blocks or is already multi-column.
func (e *Editor) PromoteColumn(ctx context.Context, slideID, draggedID string) (slide.Slide, error) {
	return e.mutate(ctx, "promote", slideID, func(doc slide.Slide) (slide.Slide, error) {
		if !doc.HasBlock(draggedID) {
			return slide.Slide{}, errors.New(errors.ErrCodeBlockNotFound, "block %s not on slide %s", draggedID, slideID)
		}
		out, ok := layout.PromoteToTwoColumns(doc, draggedID)
		if ok {
			e.bus.Publish(events.ColumnPromoted{SlideID: slideID, DraggedID: draggedID})
		}
		return out, nil
	})
}

// DuplicateBlock clones a block with a fresh ID and places the copy next
// to the original (right neighbor, else start of the next row, else the
// same cell). The copy does not inherit the original's span.
func (e *Editor) DuplicateBlock(ctx context.Context, slideID, sourceID string) (slide.Slide, error) {
	return e.mutate(ctx, "duplicate", slideID, func(doc slide.Slide) (slide.Slide, error) {
		src, ok := doc.Block(sourceID)
		if !ok {
			return slide.Slide{}, errors.New(errors.ErrCodeBlockNotFound, "block %s not on slide %s", sourceID, slideID)
		}

		out := doc.Clone()
		dup := src
		dup.ID = uuid.NewString()
		out.Blocks = append(out.Blocks, dup)
		out.Layout = layout.Duplicate(doc.Layout, sourceID, dup.ID)

		e.bus.Publish(events.BlockDuplicated{SlideID: slideID, SourceID: sourceID, NewID: dup.ID})
		return out, nil
	})
}

// DeleteBlock removes a block and all its layout entries. The grid never
// shrinks and remaining blocks keep their cells.
func (e *Editor) DeleteBlock(ctx context.Context, slideID, blockID string) (slide.Slide, error) {
	return e.mutate(ctx, "delete_block", slideID, func(doc slide.Slide) (slide.Slide, error) {
		if !doc.HasBlock(blockID) {
			return slide.Slide{}, errors.New(errors.ErrCodeBlockNotFound, "block %s not on slide %s", blockID, slideID)
		}

		out := doc.Clone()
		kept := out.Blocks[:0]
		for _, b := range out.Blocks {
			if b.ID != blockID {
				kept = append(kept, b)
			}
		}
		out.Blocks = kept
		out.Layout = layout.Delete(doc.Layout, blockID)

		e.bus.Publish(events.BlockDeleted{SlideID: slideID, BlockID: blockID})
		return out, nil
	})
}

// Cells returns the slide's blocks grouped by resolved grid cell.
func (e *Editor) Cells(ctx context.Context, slideID string) (map[layout.Cell][]slide.Block, error) {
	doc, err := e.load(ctx, slideID)
	if err != nil {
		return nil, err
	}
	return layout.Cells(doc), nil
}

// load fetches a slide, translating store errors to coded errors.
func (e *Editor) load(ctx context.Context, slideID string) (slide.Slide, error) {
	doc, err := e.store.Get(ctx, slideID)
	if err == store.ErrNotFound {
		return slide.Slide{}, errors.New(errors.ErrCodeSlideNotFound, "slide %s not found", slideID)
	}
	if err != nil {
		return slide.Slide{}, errors.Wrap(errors.ErrCodeStore, err, "load slide %s", slideID)
	}
	return doc, nil
}

// mutate runs the load → transform → save cycle shared by every editing
// operation, with timing, logging, and hooks around it.
func (e *Editor) mutate(ctx context.Context, op, slideID string, fn func(slide.Slide) (slide.Slide, error)) (slide.Slide, error) {
	start := time.Now()

	doc, err := e.load(ctx, slideID)
	if err == nil {
		var out slide.Slide
		out, err = fn(doc)
		if err == nil {
			if saveErr := e.store.Put(ctx, out); saveErr != nil {
				err = errors.Wrap(errors.ErrCodeStore, saveErr, "save slide %s", slideID)
			} else {
				doc = out
			}
		}
	}

	duration := time.Since(start)
	observability.Editor().OnOperation(ctx, op, slideID, duration, err)
	if err != nil {
		e.logger.Warn("operation failed", "op", op, "slide", slideID, "err", err)
		return slide.Slide{}, err
	}
	e.logger.Debug("applied operation", "op", op, "slide", slideID, "duration", duration)
	return doc, nil
}
