package grid

import "testing"

func TestClampPosition(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		dim  Dim
		want Position
	}{
		{
			name: "in bounds unchanged",
			pos:  Position{Row: 1, Column: 1},
			dim:  Dim{Rows: 3, Columns: 3},
			want: Position{Row: 1, Column: 1},
		},
		{
			name: "row past bottom",
			pos:  Position{Row: 5, Column: 0},
			dim:  Dim{Rows: 2, Columns: 2},
			want: Position{Row: 1, Column: 0},
		},
		{
			name: "column past right edge",
			pos:  Position{Row: 0, Column: 9},
			dim:  Dim{Rows: 2, Columns: 3},
			want: Position{Row: 0, Column: 2},
		},
		{
			name: "negative coordinates",
			pos:  Position{Row: -2, Column: -1},
			dim:  Dim{Rows: 2, Columns: 2},
			want: Position{Row: 0, Column: 0},
		},
		{
			name: "one by one grid",
			pos:  Position{Row: 4, Column: 4},
			dim:  Dim{Rows: 1, Columns: 1},
			want: Position{Row: 0, Column: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampPosition(tt.pos, tt.dim); got != tt.want {
				t.Errorf("ClampPosition() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClampSpan(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		span Span
		dim  Dim
		want Span
	}{
		{
			name: "fits unchanged",
			pos:  Position{Row: 0, Column: 0},
			span: Span{Rows: 2, Columns: 2},
			dim:  Dim{Rows: 2, Columns: 2},
			want: Span{Rows: 2, Columns: 2},
		},
		{
			name: "column span trimmed at edge",
			pos:  Position{Row: 0, Column: 1},
			span: Span{Rows: 1, Columns: 3},
			dim:  Dim{Rows: 2, Columns: 2},
			want: Span{Rows: 1, Columns: 1},
		},
		{
			name: "row span trimmed at bottom",
			pos:  Position{Row: 1, Column: 0},
			span: Span{Rows: 4, Columns: 1},
			dim:  Dim{Rows: 3, Columns: 2},
			want: Span{Rows: 2, Columns: 1},
		},
		{
			name: "zero span raised to one",
			pos:  Position{Row: 0, Column: 0},
			span: Span{},
			dim:  Dim{Rows: 2, Columns: 2},
			want: Span{Rows: 1, Columns: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampSpan(tt.pos, tt.span, tt.dim); got != tt.want {
				t.Errorf("ClampSpan() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRemainingCapacity(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		dim  Dim
		want Span
	}{
		{
			name: "origin of 3x4 grid",
			pos:  Position{Row: 0, Column: 0},
			dim:  Dim{Rows: 3, Columns: 4},
			want: Span{Rows: 3, Columns: 4},
		},
		{
			name: "interior anchor",
			pos:  Position{Row: 1, Column: 2},
			dim:  Dim{Rows: 3, Columns: 4},
			want: Span{Rows: 2, Columns: 2},
		},
		{
			name: "bottom-right corner",
			pos:  Position{Row: 2, Column: 3},
			dim:  Dim{Rows: 3, Columns: 4},
			want: Span{Rows: 1, Columns: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemainingCapacity(tt.pos, tt.dim); got != tt.want {
				t.Errorf("RemainingCapacity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDimGrow(t *testing.T) {
	d := Dim{Rows: 2, Columns: 2}

	grown := d.Grow(Position{Row: 3, Column: 1})
	if grown != (Dim{Rows: 4, Columns: 2}) {
		t.Errorf("Grow row = %v, want {4 2}", grown)
	}

	grown = d.Grow(Position{Row: 0, Column: 5})
	if grown != (Dim{Rows: 2, Columns: 6}) {
		t.Errorf("Grow column = %v, want {2 6}", grown)
	}

	// In-bounds position leaves the grid alone.
	if got := d.Grow(Position{Row: 1, Column: 1}); got != d {
		t.Errorf("Grow in bounds = %v, want %v", got, d)
	}
}

func TestDimNormalize(t *testing.T) {
	if got := (Dim{}).Normalize(); got != (Dim{Rows: 1, Columns: 1}) {
		t.Errorf("Normalize zero = %v, want {1 1}", got)
	}
	if got := (Dim{Rows: -3, Columns: 2}).Normalize(); got != (Dim{Rows: 1, Columns: 2}) {
		t.Errorf("Normalize negative = %v, want {1 2}", got)
	}
}

func TestCovers(t *testing.T) {
	pos := Position{Row: 1, Column: 1}
	span := Span{Rows: 2, Columns: 2}

	tests := []struct {
		name     string
		row, col int
		want     bool
	}{
		{name: "anchor cell", row: 1, col: 1, want: true},
		{name: "right of anchor", row: 1, col: 2, want: true},
		{name: "below anchor", row: 2, col: 1, want: true},
		{name: "diagonal corner", row: 2, col: 2, want: true},
		{name: "outside right", row: 1, col: 3, want: false},
		{name: "outside below", row: 3, col: 1, want: false},
		{name: "above anchor", row: 0, col: 1, want: false},
		{name: "left of anchor", row: 1, col: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Covers(pos, span, tt.row, tt.col); got != tt.want {
				t.Errorf("Covers(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.want)
			}
		})
	}
}
