package layout

import (
	"testing"

	"github.com/mr-romero/slidegrid/pkg/grid"
	"github.com/mr-romero/slidegrid/pkg/slide"
)

func spanLayout() *slide.Layout {
	l := slide.NewLayout(3, 3)
	l.Positions["a"] = grid.Position{Row: 0, Column: 0}
	l.Positions["edge"] = grid.Position{Row: 2, Column: 2}
	return l
}

func TestGrowColumnSpan(t *testing.T) {
	l := spanLayout()

	l = GrowColumnSpan(l, "a")
	if got := l.SpanOf("a"); got != (grid.Span{Rows: 1, Columns: 2}) {
		t.Errorf("after one grow: %v", got)
	}

	l = GrowColumnSpan(l, "a")
	l = GrowColumnSpan(l, "a") // at capacity, no-op
	if got := l.SpanOf("a"); got != (grid.Span{Rows: 1, Columns: 3}) {
		t.Errorf("capped span = %v, want {1 3}", got)
	}
}

func TestGrowColumnSpanAtEdge(t *testing.T) {
	l := GrowColumnSpan(spanLayout(), "edge")
	if got := l.SpanOf("edge"); got != grid.DefaultSpan() {
		t.Errorf("edge block span = %v, want unchanged 1x1", got)
	}
}

func TestShrinkColumnSpanFloorsAtOne(t *testing.T) {
	l := spanLayout()
	l.Spans["a"] = grid.Span{Rows: 1, Columns: 2}

	l = ShrinkColumnSpan(l, "a")
	if got := l.SpanOf("a"); got != (grid.Span{Rows: 1, Columns: 1}) {
		t.Errorf("after shrink: %v", got)
	}

	l = ShrinkColumnSpan(l, "a") // already 1, no-op
	if got := l.SpanOf("a"); got != (grid.Span{Rows: 1, Columns: 1}) {
		t.Errorf("span fell below one cell: %v", got)
	}
}

func TestGrowRowSpanPreservesColumns(t *testing.T) {
	l := spanLayout()
	l.Spans["a"] = grid.Span{Rows: 1, Columns: 2}

	l = GrowRowSpan(l, "a")
	if got := l.SpanOf("a"); got != (grid.Span{Rows: 2, Columns: 2}) {
		t.Errorf("span = %v, want {2 2}", got)
	}
}

func TestShrinkRowSpanPreservesColumns(t *testing.T) {
	l := spanLayout()
	l.Spans["a"] = grid.Span{Rows: 3, Columns: 2}

	l = ShrinkRowSpan(l, "a")
	if got := l.SpanOf("a"); got != (grid.Span{Rows: 2, Columns: 2}) {
		t.Errorf("span = %v, want {2 2}", got)
	}
}

func TestSpanOpsOnUnpositionedBlock(t *testing.T) {
	// An unpositioned block anchors at the origin default, so it has the
	// whole grid as capacity.
	l := slide.NewLayout(2, 2)
	l = GrowColumnSpan(l, "ghost")
	if got := l.SpanOf("ghost"); got != (grid.Span{Rows: 1, Columns: 2}) {
		t.Errorf("span = %v, want {1 2}", got)
	}
}

func TestSpanOpsDoNotMutateInput(t *testing.T) {
	l := spanLayout()
	GrowColumnSpan(l, "a")
	if _, ok := l.Spans["a"]; ok {
		t.Error("GrowColumnSpan mutated its input")
	}
}

func TestSpanOpsNilLayout(t *testing.T) {
	if GrowColumnSpan(nil, "a") != nil {
		t.Error("nil layout should stay nil")
	}
	if ShrinkRowSpan(nil, "a") != nil {
		t.Error("nil layout should stay nil")
	}
}
