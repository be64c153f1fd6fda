package layout

import (
	"testing"

	"github.com/mr-romero/slidegrid/pkg/grid"
	"github.com/mr-romero/slidegrid/pkg/slide"
)

func twoBlockSlide() slide.Slide {
	return slide.Slide{
		ID: "s1",
		Blocks: []slide.Block{
			{ID: "b1", Kind: slide.KindText},
			{ID: "b2", Kind: slide.KindImage},
		},
	}
}

func TestAssignCreatesLayoutLazily(t *testing.T) {
	s := slide.Slide{ID: "s1", Blocks: []slide.Block{{ID: "b1", Kind: slide.KindText}}}

	got, ok := Assign(s, "b1", grid.Position{Row: 0, Column: 0}, Overwrite)
	if !ok {
		t.Fatal("Assign rejected")
	}
	if got.Layout == nil {
		t.Fatal("layout not created")
	}
	// First placement defaults to at least a 2x2 grid.
	if got.Layout.Rows != 2 || got.Layout.Columns != 2 {
		t.Errorf("dims = %dx%d, want 2x2", got.Layout.Rows, got.Layout.Columns)
	}
	if got.Layout.Positions["b1"] != (grid.Position{}) {
		t.Errorf("b1 at %v, want origin", got.Layout.Positions["b1"])
	}
	// The original slide still has no layout.
	if s.Layout != nil {
		t.Error("Assign mutated its input")
	}
}

func TestAssignLazyLayoutContainsFarPosition(t *testing.T) {
	s := slide.Slide{ID: "s1", Blocks: []slide.Block{{ID: "b1", Kind: slide.KindText}}}

	got, _ := Assign(s, "b1", grid.Position{Row: 3, Column: 0}, Overwrite)
	if got.Layout.Rows != 4 || got.Layout.Columns != 2 {
		t.Errorf("dims = %dx%d, want 4x2", got.Layout.Rows, got.Layout.Columns)
	}
}

func TestAssignGrowsGridWithoutDisturbingOthers(t *testing.T) {
	s := twoBlockSlide()
	s.Layout = slide.NewLayout(1, 1)
	s.Layout.Positions["b1"] = grid.Position{Row: 0, Column: 0}

	// Direct positional assign beyond bounds grows the grid; promotion only
	// fires on the drag trigger, so b1 stays where it is.
	got, ok := Assign(s, "b2", grid.Position{Row: 0, Column: 1}, Overwrite)
	if !ok {
		t.Fatal("Assign rejected")
	}
	if got.Layout.Rows != 1 || got.Layout.Columns != 2 {
		t.Errorf("dims = %dx%d, want 1x2", got.Layout.Rows, got.Layout.Columns)
	}
	if got.Layout.Positions["b2"] != (grid.Position{Row: 0, Column: 1}) {
		t.Errorf("b2 at %v", got.Layout.Positions["b2"])
	}
	if got.Layout.Positions["b1"] != (grid.Position{Row: 0, Column: 0}) {
		t.Errorf("b1 moved to %v", got.Layout.Positions["b1"])
	}
}

func TestAssignGrowsExactly(t *testing.T) {
	s := twoBlockSlide()
	s.Layout = slide.NewLayout(2, 2)

	got, _ := Assign(s, "b1", grid.Position{Row: 4, Column: 2}, Overwrite)
	if got.Layout.Rows != 5 || got.Layout.Columns != 3 {
		t.Errorf("dims = %dx%d, want 5x3", got.Layout.Rows, got.Layout.Columns)
	}
}

func TestAssignOverwriteAllowsSharedAnchor(t *testing.T) {
	s := twoBlockSlide()
	s.Layout = slide.NewLayout(2, 2)
	s.Layout.Positions["b1"] = grid.Position{Row: 0, Column: 1}

	got, ok := Assign(s, "b2", grid.Position{Row: 0, Column: 1}, Overwrite)
	if !ok {
		t.Fatal("overwrite mode should always accept")
	}
	if got.Layout.Positions["b1"] != got.Layout.Positions["b2"] {
		t.Error("expected stacked anchors under overwrite")
	}
}

func TestAssignRejectOnOccupiedAnchor(t *testing.T) {
	s := twoBlockSlide()
	s.Layout = slide.NewLayout(2, 2)
	s.Layout.Positions["b1"] = grid.Position{Row: 0, Column: 1}

	got, ok := Assign(s, "b2", grid.Position{Row: 0, Column: 1}, Reject)
	if ok {
		t.Fatal("reject mode should refuse an occupied anchor")
	}
	if _, placed := got.Layout.Positions["b2"]; placed {
		t.Error("rejected assignment must leave the slide unchanged")
	}
}

func TestAssignRejectAllowsReassigningSameBlock(t *testing.T) {
	s := twoBlockSlide()
	s.Layout = slide.NewLayout(2, 2)
	s.Layout.Positions["b1"] = grid.Position{Row: 0, Column: 1}

	// Moving a block onto its own anchor is not a conflict.
	_, ok := Assign(s, "b1", grid.Position{Row: 0, Column: 1}, Reject)
	if !ok {
		t.Error("block should be allowed to keep its own anchor")
	}
}

func TestAssignReclampsExistingSpan(t *testing.T) {
	s := twoBlockSlide()
	s.Layout = slide.NewLayout(2, 3)
	s.Layout.Positions["b1"] = grid.Position{Row: 0, Column: 0}
	s.Layout.Spans["b1"] = grid.Span{Rows: 1, Columns: 3}

	// Anchor moves to the last column; the 3-column span no longer fits.
	got, _ := Assign(s, "b1", grid.Position{Row: 0, Column: 2}, Overwrite)
	if got.Layout.Spans["b1"] != (grid.Span{Rows: 1, Columns: 1}) {
		t.Errorf("span = %v, want {1 1}", got.Layout.Spans["b1"])
	}
}

func TestAssignTwoColumnAutoDistribution(t *testing.T) {
	s := slide.Slide{
		ID: "s1",
		Blocks: []slide.Block{
			{ID: "b1", Kind: slide.KindText},
			{ID: "b2", Kind: slide.KindText},
			{ID: "b3", Kind: slide.KindText},
		},
	}
	s.Layout = slide.NewLayout(1, 1)

	// Growth from one column to exactly two triggers distribution of the
	// unpositioned blocks into row 0 of the less-populated column.
	got, _ := Assign(s, "b2", grid.Position{Row: 0, Column: 1}, Overwrite)

	if got.Layout.Columns != 2 {
		t.Fatalf("columns = %d, want 2", got.Layout.Columns)
	}
	for _, id := range []string{"b1", "b3"} {
		pos, ok := got.Layout.Positions[id]
		if !ok {
			t.Fatalf("%s not distributed", id)
		}
		if pos != (grid.Position{Row: 0, Column: 0}) {
			t.Errorf("%s at %v, want {0 0}", id, pos)
		}
	}
}

func TestAssignNoDistributionWhenAlreadyTwoColumns(t *testing.T) {
	s := twoBlockSlide()
	s.Layout = slide.NewLayout(2, 2)

	got, _ := Assign(s, "b1", grid.Position{Row: 1, Column: 1}, Overwrite)
	if _, ok := got.Layout.Positions["b2"]; ok {
		t.Error("no auto-distribution expected on an already two-column grid")
	}
}

func TestPromoteToTwoColumns(t *testing.T) {
	s := slide.Slide{
		ID: "s1",
		Blocks: []slide.Block{
			{ID: "b1", Kind: slide.KindText},
			{ID: "b2", Kind: slide.KindText},
			{ID: "b3", Kind: slide.KindText},
		},
		Layout: slide.NewLayout(1, 1),
	}

	got, ok := PromoteToTwoColumns(s, "b2")
	if !ok {
		t.Fatal("promotion should apply")
	}
	if got.Layout.Columns != 2 {
		t.Fatalf("columns = %d, want 2", got.Layout.Columns)
	}
	if got.Layout.Positions["b2"] != (grid.Position{Row: 0, Column: 1}) {
		t.Errorf("dragged block at %v, want {0 1}", got.Layout.Positions["b2"])
	}
	// The remaining blocks alias to the origin cell - the documented
	// stacked-cell edge case of a fresh promotion.
	for _, id := range []string{"b1", "b3"} {
		if got.Layout.Positions[id] != (grid.Position{Row: 0, Column: 0}) {
			t.Errorf("%s at %v, want {0 0}", id, got.Layout.Positions[id])
		}
	}
}

func TestPromoteRequiresMultipleBlocks(t *testing.T) {
	s := slide.Slide{
		ID:     "s1",
		Blocks: []slide.Block{{ID: "b1", Kind: slide.KindText}},
		Layout: slide.NewLayout(1, 1),
	}
	if _, ok := PromoteToTwoColumns(s, "b1"); ok {
		t.Error("promotion needs more than one block")
	}
}

func TestPromoteRequiresSingleColumn(t *testing.T) {
	s := twoBlockSlide()
	s.Layout = slide.NewLayout(1, 2)
	if _, ok := PromoteToTwoColumns(s, "b1"); ok {
		t.Error("promotion only fires on a single-column grid")
	}
}

func TestPromoteWithoutLayout(t *testing.T) {
	s := twoBlockSlide()

	got, ok := PromoteToTwoColumns(s, "b1")
	if !ok {
		t.Fatal("promotion should create the layout")
	}
	if got.Layout == nil || got.Layout.Columns != 2 {
		t.Fatalf("layout = %+v, want two columns", got.Layout)
	}
	if got.Layout.Positions["b1"] != (grid.Position{Row: 0, Column: 1}) {
		t.Errorf("b1 at %v, want {0 1}", got.Layout.Positions["b1"])
	}
}
