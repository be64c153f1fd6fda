package layout

import (
	"testing"

	"github.com/mr-romero/slidegrid/pkg/grid"
	"github.com/mr-romero/slidegrid/pkg/slide"
)

func TestCellsGroupsByResolvedPosition(t *testing.T) {
	s := slide.Slide{
		ID: "s1",
		Blocks: []slide.Block{
			{ID: "a", Kind: slide.KindText},
			{ID: "b", Kind: slide.KindImage},
			{ID: "c", Kind: slide.KindQuestion}, // unpositioned, aliases to origin
		},
		Layout: slide.NewLayout(2, 2),
	}
	s.Layout.Positions["a"] = grid.Position{Row: 0, Column: 0}
	s.Layout.Positions["b"] = grid.Position{Row: 1, Column: 1}

	cells := Cells(s)

	if len(cells) != 4 {
		t.Fatalf("cell count = %d, want 4 (every cell pre-populated)", len(cells))
	}
	origin := cells[Cell{Row: 0, Column: 0}]
	if len(origin) != 2 || origin[0].ID != "a" || origin[1].ID != "c" {
		t.Errorf("origin cell = %v, want [a c] in slide order", origin)
	}
	if got := cells[Cell{Row: 1, Column: 1}]; len(got) != 1 || got[0].ID != "b" {
		t.Errorf("cell (1,1) = %v, want [b]", got)
	}
	if got := cells[Cell{Row: 0, Column: 1}]; got == nil || len(got) != 0 {
		t.Errorf("empty cell should be a non-nil empty list, got %v", got)
	}
}

func TestCellsRoundTripReproducesBlockSet(t *testing.T) {
	s := slide.Slide{
		ID: "s1",
		Blocks: []slide.Block{
			{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"},
		},
		Layout: slide.NewLayout(3, 2),
	}
	s.Layout.Positions["a"] = grid.Position{Row: 0, Column: 1}
	s.Layout.Positions["b"] = grid.Position{Row: 2, Column: 0}
	// c and d stay unpositioned.

	seen := map[string]int{}
	for _, blocks := range Cells(s) {
		for _, b := range blocks {
			seen[b.ID]++
		}
	}

	if len(seen) != len(s.Blocks) {
		t.Fatalf("flattened %d distinct blocks, want %d", len(seen), len(s.Blocks))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("block %s appeared %d times, want exactly once", id, n)
		}
	}
}

func TestCellsWithoutLayout(t *testing.T) {
	s := slide.Slide{
		ID:     "s1",
		Blocks: []slide.Block{{ID: "a"}, {ID: "b"}},
	}

	cells := Cells(s)
	if len(cells) != 1 {
		t.Fatalf("cell count = %d, want 1 for the implicit 1x1 grid", len(cells))
	}
	if got := cells[Cell{}]; len(got) != 2 {
		t.Errorf("origin = %v, want both blocks stacked", got)
	}
}

func TestCoveredCells(t *testing.T) {
	l := slide.NewLayout(2, 2)
	l.Positions["wide"] = grid.Position{Row: 0, Column: 0}
	l.Spans["wide"] = grid.Span{Rows: 1, Columns: 2}

	got := CoveredCells(l)
	if len(got) != 1 || got[0] != (Cell{Row: 0, Column: 1}) {
		t.Errorf("CoveredCells = %v, want [{0 1}]", got)
	}

	if CoveredCells(nil) != nil {
		t.Error("nil layout has no covered cells")
	}
}

func TestCellString(t *testing.T) {
	if got := (Cell{Row: 2, Column: 1}).String(); got != "2-1" {
		t.Errorf("String() = %q, want \"2-1\"", got)
	}
}

func TestRemainingCapacityQuery(t *testing.T) {
	l := slide.NewLayout(3, 4)
	l.Positions["a"] = grid.Position{Row: 1, Column: 1}

	if got := RemainingCapacity(l, "a"); got != (grid.Span{Rows: 2, Columns: 3}) {
		t.Errorf("capacity = %v, want {2 3}", got)
	}
	// Unpositioned block measures from the origin.
	if got := RemainingCapacity(l, "ghost"); got != (grid.Span{Rows: 3, Columns: 4}) {
		t.Errorf("capacity = %v, want {3 4}", got)
	}
	if got := RemainingCapacity(nil, "a"); got != grid.DefaultSpan() {
		t.Errorf("nil layout capacity = %v, want 1x1", got)
	}
}
