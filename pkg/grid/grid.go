// Package grid provides the pure geometry primitives for slide grid layouts.
//
// A slide's layout places content blocks on a small two-dimensional grid.
// This package defines the coordinate types (Position, Span, Dim) and the
// clamping helpers that keep positions and spans inside grid bounds. All
// functions are pure: they take values and return values, never mutating
// their inputs.
//
// Coordinates are zero-based: a Position of {0, 0} is the top-left cell.
// Spans extend right and down from their anchor, so a block at {0, 0} with
// a span of {1, 2} occupies cells (0,0) and (0,1).
package grid

// Position is a block's anchor (top-left) cell on the grid.
type Position struct {
	Row    int `json:"row" bson:"row"`
	Column int `json:"column" bson:"column"`
}

// Span is a block's extent from its anchor. Both components are at least 1;
// the zero value is not a valid span - use DefaultSpan.
type Span struct {
	Rows    int `json:"rowSpan" bson:"rowSpan"`
	Columns int `json:"columnSpan" bson:"columnSpan"`
}

// Dim is the size of a grid. Both components are at least 1.
type Dim struct {
	Rows    int `json:"rows" bson:"rows"`
	Columns int `json:"columns" bson:"columns"`
}

// DefaultSpan returns the single-cell span every block has unless a larger
// one was recorded.
func DefaultSpan() Span { return Span{Rows: 1, Columns: 1} }

// Contains reports whether pos falls inside a grid of size d.
func (d Dim) Contains(pos Position) bool {
	return pos.Row >= 0 && pos.Row < d.Rows && pos.Column >= 0 && pos.Column < d.Columns
}

// Normalize raises both dimensions to at least 1.
func (d Dim) Normalize() Dim {
	if d.Rows < 1 {
		d.Rows = 1
	}
	if d.Columns < 1 {
		d.Columns = 1
	}
	return d
}

// Grow returns the smallest grid that is at least d and also contains pos.
// Grids only ever grow here - shrinking is an explicit resize operation.
func (d Dim) Grow(pos Position) Dim {
	if pos.Row >= d.Rows {
		d.Rows = pos.Row + 1
	}
	if pos.Column >= d.Columns {
		d.Columns = pos.Column + 1
	}
	return d
}

// ClampPosition clamps pos into [0, d.Rows) x [0, d.Columns).
func ClampPosition(pos Position, d Dim) Position {
	pos.Row = clamp(pos.Row, 0, d.Rows-1)
	pos.Column = clamp(pos.Column, 0, d.Columns-1)
	return pos
}

// ClampSpan reduces span so the rectangle anchored at pos stays inside a
// grid of size d. The anchor is assumed to be in bounds already (clamp it
// first). The result never falls below 1x1.
func ClampSpan(pos Position, span Span, d Dim) Span {
	remaining := RemainingCapacity(pos, d)
	span.Rows = clamp(span.Rows, 1, remaining.Rows)
	span.Columns = clamp(span.Columns, 1, remaining.Columns)
	return span
}

// RemainingCapacity returns how many rows and columns are available for a
// span growing from pos, inclusive of the anchor cell itself. An anchor in
// the last column has a column capacity of 1.
func RemainingCapacity(pos Position, d Dim) Span {
	return Span{
		Rows:    max(1, d.Rows-pos.Row),
		Columns: max(1, d.Columns-pos.Column),
	}
}

// Covers reports whether the rectangle anchored at pos with the given span
// includes the cell (row, col). The anchor cell itself counts as covered.
func Covers(pos Position, span Span, row, col int) bool {
	return row >= pos.Row && row < pos.Row+span.Rows &&
		col >= pos.Column && col < pos.Column+span.Columns
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
