package layout

import (
	"fmt"

	"github.com/mr-romero/slidegrid/pkg/grid"
	"github.com/mr-romero/slidegrid/pkg/slide"
)

// Cell identifies one grid cell in query results.
type Cell struct {
	Row    int
	Column int
}

// String returns the "row-col" key used by rendering boundaries.
func (c Cell) String() string { return fmt.Sprintf("%d-%d", c.Row, c.Column) }

// Cells groups the slide's blocks by their resolved grid cell. Every cell
// in [0, rows) x [0, cols) is present in the result with a non-nil (possibly
// empty) list, and each block appears exactly once, in slide order, under
// its resolved position. Several blocks can legally share a cell - stacked
// rendering - when the overwrite policy or a fresh promotion put them there.
//
// A slide without a layout is treated as a 1x1 grid with every block
// stacked at the origin. Resolved positions are clamped into bounds so the
// grouping never drops a block.
func Cells(s slide.Slide) map[Cell][]slide.Block {
	d := grid.Dim{Rows: 1, Columns: 1}
	if s.Layout != nil {
		d = s.Layout.Dim().Normalize()
	}

	cells := make(map[Cell][]slide.Block, d.Rows*d.Columns)
	for r := 0; r < d.Rows; r++ {
		for c := 0; c < d.Columns; c++ {
			cells[Cell{Row: r, Column: c}] = []slide.Block{}
		}
	}

	for _, b := range s.Blocks {
		pos := grid.ClampPosition(s.Layout.PositionOf(b.ID), d)
		key := Cell{Row: pos.Row, Column: pos.Column}
		cells[key] = append(cells[key], b)
	}
	return cells
}

// CoveredCells lists the cells hidden under some block's span, in row-major
// order. Rendering walks the grid and skips these.
func CoveredCells(l *slide.Layout) []Cell {
	if l == nil {
		return nil
	}
	var covered []Cell
	for r := 0; r < l.Rows; r++ {
		for c := 0; c < l.Columns; c++ {
			if Covered(l, r, c) {
				covered = append(covered, Cell{Row: r, Column: c})
			}
		}
	}
	return covered
}

// RemainingCapacity reports how far blockID's span could still grow from
// its anchor, inclusive of the anchor cell. UI span controls use this to
// enable or disable their grow buttons.
func RemainingCapacity(l *slide.Layout, blockID string) grid.Span {
	if l == nil {
		return grid.DefaultSpan()
	}
	return grid.RemainingCapacity(l.PositionOf(blockID), l.Dim())
}
