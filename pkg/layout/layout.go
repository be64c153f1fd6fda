// Package layout implements the slide grid layout engine.
//
// The engine places content blocks on a per-slide grid, lets blocks span
// multiple rows and columns, resolves which cells are hidden under another
// block's span, and keeps the layout consistent as blocks are added,
// duplicated, deleted, moved, or as the grid itself is resized.
//
// # Value semantics
//
// Every operation is a pure transformation: it deep-copies its input and
// returns a new value. Callers can keep the previous slide around (for
// example to diff or broadcast) without aliasing hazards.
//
// # Error policy
//
// The engine favors silent normalization over errors - an editor must never
// crash mid-edit. Out-of-range positions and spans are clamped, unknown
// block IDs are no-ops, and the only "failure" is the guarded assignment
// mode reporting a conflict through its boolean return.
//
// # Usage
//
//	s, ok := layout.Assign(s, "b1", grid.Position{Row: 0, Column: 1}, layout.Overwrite)
//	l := layout.Resize(s.Layout, 3, 2)
//	cells := layout.Cells(s)
package layout

import (
	"github.com/mr-romero/slidegrid/pkg/grid"
	"github.com/mr-romero/slidegrid/pkg/slide"
)

// ConflictPolicy selects how Assign treats a target cell where another
// block already anchors. The two behaviors exist because different editor
// surfaces want different guarantees: free-form drag uses Overwrite and
// tolerates stacked cells, while structured placement uses Reject and
// surfaces the conflict to the user.
type ConflictPolicy int

const (
	// Overwrite records the anchor unconditionally. Two blocks may end up
	// sharing a cell; the grouping query renders them stacked.
	Overwrite ConflictPolicy = iota

	// Reject refuses assignment into an occupied anchor cell and leaves
	// the slide unchanged.
	Reject
)

// String returns the policy name.
func (p ConflictPolicy) String() string {
	if p == Reject {
		return "reject"
	}
	return "overwrite"
}

// Resize sets the grid to rows x cols (each floored at 1), then clamps
// every recorded position into the new bounds and every recorded span
// against its (possibly just-clamped) position. Growth caps are a caller
// concern - the engine accepts any size.
//
// Resize accepts a nil layout and creates one: resizing the grid is one of
// the two mutations that bring a layout into existence (the other is
// assigning a position). Resize is idempotent.
//
// Blocks are not moved to dodge collisions created by a shrink; a cell may
// legitimately hold several anchors afterwards.
func Resize(l *slide.Layout, rows, cols int) *slide.Layout {
	if l == nil {
		return slide.NewLayout(rows, cols)
	}

	out := l.Clone()
	d := grid.Dim{Rows: rows, Columns: cols}.Normalize()
	out.Rows = d.Rows
	out.Columns = d.Columns

	for id, pos := range out.Positions {
		out.Positions[id] = grid.ClampPosition(pos, d)
	}
	for id, span := range out.Spans {
		out.Spans[id] = grid.ClampSpan(out.Positions[id], span, d)
	}
	return out
}
