package layout

import (
	"github.com/mr-romero/slidegrid/pkg/grid"
	"github.com/mr-romero/slidegrid/pkg/slide"
)

// GrowColumnSpan widens blockID's span by one column if capacity remains
// between its anchor and the right edge of the grid. At the edge, or with a
// nil layout, the layout is returned unchanged. The row span is preserved.
func GrowColumnSpan(l *slide.Layout, blockID string) *slide.Layout {
	return adjustSpan(l, blockID, func(span grid.Span, capacity grid.Span) grid.Span {
		if span.Columns < capacity.Columns {
			span.Columns++
		}
		return span
	})
}

// ShrinkColumnSpan narrows blockID's span by one column, never below the
// block's own cell. The row span is preserved.
func ShrinkColumnSpan(l *slide.Layout, blockID string) *slide.Layout {
	return adjustSpan(l, blockID, func(span grid.Span, _ grid.Span) grid.Span {
		if span.Columns > 1 {
			span.Columns--
		}
		return span
	})
}

// GrowRowSpan extends blockID's span by one row if capacity remains between
// its anchor and the bottom edge of the grid. The column span is preserved.
func GrowRowSpan(l *slide.Layout, blockID string) *slide.Layout {
	return adjustSpan(l, blockID, func(span grid.Span, capacity grid.Span) grid.Span {
		if span.Rows < capacity.Rows {
			span.Rows++
		}
		return span
	})
}

// ShrinkRowSpan reduces blockID's span by one row, never below the block's
// own cell. The column span is preserved.
func ShrinkRowSpan(l *slide.Layout, blockID string) *slide.Layout {
	return adjustSpan(l, blockID, func(span grid.Span, _ grid.Span) grid.Span {
		if span.Rows > 1 {
			span.Rows--
		}
		return span
	})
}

// adjustSpan applies fn to blockID's effective span and records the result
// atomically. The effective span starts from the recorded entry or the 1x1
// default, and fn receives the remaining capacity from the block's anchor
// so growth can stop at the grid edge.
func adjustSpan(l *slide.Layout, blockID string, fn func(span, capacity grid.Span) grid.Span) *slide.Layout {
	if l == nil {
		return nil
	}

	out := l.Clone()
	pos := out.PositionOf(blockID)
	capacity := grid.RemainingCapacity(pos, out.Dim())

	span := fn(out.SpanOf(blockID), capacity)
	out.Spans[blockID] = grid.ClampSpan(pos, span, out.Dim())
	return out
}
