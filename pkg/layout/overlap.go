package layout

import (
	"github.com/mr-romero/slidegrid/pkg/grid"
	"github.com/mr-romero/slidegrid/pkg/slide"
)

// Covered reports whether the cell (row, col) is hidden because another
// block's span reaches over it. A block never covers its own anchor cell,
// and coverage is checked symmetrically on both axes: a 2-row span hides
// the cell below its anchor exactly as a 2-column span hides the cell to
// its right.
//
// Covered cells are skipped entirely when producing the render grid - they
// contribute no cell and no drop target.
func Covered(l *slide.Layout, row, col int) bool {
	if l == nil {
		return false
	}
	for id, pos := range l.Positions {
		if pos.Row == row && pos.Column == col {
			continue
		}
		if grid.Covers(pos, l.SpanOf(id), row, col) {
			return true
		}
	}
	return false
}

// CanAssign reports whether pos is free to receive a new anchor: no block
// other than excludeID anchors exactly there. Span coverage does not block
// assignment - only an identical anchor does. This is the predicate behind
// the Reject conflict policy.
func CanAssign(l *slide.Layout, pos grid.Position, excludeID string) bool {
	if l == nil {
		return true
	}
	for id, p := range l.Positions {
		if id != excludeID && p == pos {
			return false
		}
	}
	return true
}
