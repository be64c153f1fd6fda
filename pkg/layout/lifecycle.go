package layout

import (
	"github.com/mr-romero/slidegrid/pkg/grid"
	"github.com/mr-romero/slidegrid/pkg/slide"
)

// Duplicate records a position for newID adjacent to sourceID's anchor:
// one column to the right if the grid still has a column there, otherwise
// one row down at column 0, otherwise the source's own cell (an intentional
// stacked overlap). A source without a recorded position is a no-op - the
// clone inherits the unpositioned default.
//
// Only the position is cloned; the new block starts with the default 1x1
// span regardless of the source's span.
func Duplicate(l *slide.Layout, sourceID, newID string) *slide.Layout {
	if l == nil {
		return nil
	}

	out := l.Clone()
	pos, ok := out.Positions[sourceID]
	if !ok {
		return out
	}

	switch {
	case pos.Column+1 < out.Columns:
		out.Positions[newID] = grid.Position{Row: pos.Row, Column: pos.Column + 1}
	case pos.Row+1 < out.Rows:
		out.Positions[newID] = grid.Position{Row: pos.Row + 1, Column: 0}
	default:
		out.Positions[newID] = pos
	}
	return out
}

// Delete removes blockID's position and span entries. Remaining positions
// are not compacted and the grid does not shrink. Unknown IDs are a no-op.
func Delete(l *slide.Layout, blockID string) *slide.Layout {
	if l == nil {
		return nil
	}
	out := l.Clone()
	delete(out.Positions, blockID)
	delete(out.Spans, blockID)
	return out
}
