package layout

import (
	"github.com/mr-romero/slidegrid/pkg/grid"
	"github.com/mr-romero/slidegrid/pkg/slide"
)

// Assign places blockID's anchor at pos, returning the updated slide and
// whether the assignment was applied.
//
// The layout is created lazily on first assignment, sized to at least 2x2
// (the editor's bias toward multi-column presentation) and large enough to
// contain pos. An existing grid grows to contain an out-of-bounds target -
// it never shrinks here. The block's recorded span, if any, is re-clamped
// against the new anchor so span invariants hold after every mutation.
//
// Under Overwrite the call always succeeds, even into a cell where another
// block already anchors (the cell renders stacked). Under Reject an
// occupied target cell leaves the slide untouched and returns false.
//
// When growth converts a single-column grid into exactly two columns, every
// other block without an explicit position is distributed to row 0 of the
// less-populated column (ties toward column 0) - a simple load balance, not
// bin packing.
func Assign(s slide.Slide, blockID string, pos grid.Position, policy ConflictPolicy) (slide.Slide, bool) {
	out := s.Clone()

	l := out.Layout
	if l == nil {
		l = slide.NewLayout(max(2, pos.Row+1), max(2, pos.Column+1))
		out.Layout = l
	}

	hadSingleColumn := l.Columns == 1

	d := l.Dim().Grow(pos)
	l.Rows = d.Rows
	l.Columns = d.Columns

	if policy == Reject && !CanAssign(l, pos, blockID) {
		return s, false
	}

	l.Positions[blockID] = pos
	if span, ok := l.Spans[blockID]; ok {
		l.Spans[blockID] = grid.ClampSpan(pos, span, d)
	}

	if hadSingleColumn && l.Columns == 2 {
		distributeUnpositioned(out, blockID)
	}

	return out, true
}

// PromoteToTwoColumns converts a single-column slide into a two-column
// slide in response to a drag into the virtual second-column drop zone. The
// dragged block lands at {0,1}; every other block without an explicit
// position is distributed into row 0 of the less-populated column, which
// for a freshly promoted grid means they all land at {0,0} and render
// stacked.
//
// Promotion is one-shot and only fires while the grid has a single column
// (or no layout at all) and the slide holds more than one block; otherwise
// the slide is returned unchanged with ok=false. There is no symmetric
// demotion - going back to one column takes an explicit Resize.
func PromoteToTwoColumns(s slide.Slide, draggedID string) (slide.Slide, bool) {
	if len(s.Blocks) <= 1 {
		return s, false
	}
	if s.Layout != nil && s.Layout.Columns != 1 {
		return s, false
	}

	out := s.Clone()
	if out.Layout == nil {
		out.Layout = slide.NewLayout(1, 1)
	}

	l := out.Layout
	l.Columns = 2
	l.Positions[draggedID] = grid.Position{Row: 0, Column: 1}
	if span, ok := l.Spans[draggedID]; ok {
		l.Spans[draggedID] = grid.ClampSpan(l.Positions[draggedID], span, l.Dim())
	}

	distributeUnpositioned(out, draggedID)
	return out, true
}

// distributeUnpositioned assigns row 0 of the less-populated of the first
// two columns to every block that lacks an explicit position, skipping
// placedID (the block the triggering operation just placed). Column
// counters are seeded from existing anchors and incremented as blocks are
// placed; ties break toward column 0.
func distributeUnpositioned(s slide.Slide, placedID string) {
	l := s.Layout

	var count [2]int
	for _, pos := range l.Positions {
		if pos.Column == 0 || pos.Column == 1 {
			count[pos.Column]++
		}
	}

	for _, b := range s.Blocks {
		if b.ID == placedID {
			continue
		}
		if _, ok := l.Positions[b.ID]; ok {
			continue
		}
		col := 0
		if count[1] < count[0] {
			col = 1
		}
		l.Positions[b.ID] = grid.Position{Row: 0, Column: col}
		count[col]++
	}
}
