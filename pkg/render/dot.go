package render

import (
	"bytes"
	"context"
	"fmt"
	"html"

	"github.com/goccy/go-graphviz"

	"github.com/mr-romero/slidegrid/pkg/grid"
	"github.com/mr-romero/slidegrid/pkg/slide"
)

// ToDOT converts a slide layout to Graphviz DOT format. The grid is
// emitted as a single plaintext node carrying an HTML-like table label,
// with ROWSPAN/COLSPAN mirroring block spans. The resulting DOT string
// can be rendered with [RenderDOTSVG] or any graphviz toolchain.
//
// Overlapping blocks cannot be expressed in a table: when two blocks
// resolve to the same cell, the one earliest in slide order wins and
// the rest are dropped from the DOT output.
func ToDOT(doc slide.Slide) string {
	dim := grid.Dim{Rows: 1, Columns: 1}
	if doc.Layout != nil {
		dim = doc.Layout.Dim()
	}

	// anchor and covered maps, first block per cell wins.
	type anchored struct {
		block slide.Block
		span  grid.Span
	}
	anchors := make(map[grid.Position]anchored)
	covered := make(map[grid.Position]bool)
	for _, b := range doc.Blocks {
		pos := grid.ClampPosition(doc.Layout.PositionOf(b.ID), dim)
		if covered[pos] {
			continue
		}
		span := grid.ClampSpan(pos, doc.Layout.SpanOf(b.ID), dim)
		anchors[pos] = anchored{block: b, span: span}
		for r := pos.Row; r < pos.Row+span.Rows; r++ {
			for c := pos.Column; c < pos.Column+span.Columns; c++ {
				covered[grid.Position{Row: r, Column: c}] = true
			}
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph slide {\n")
	buf.WriteString("  node [shape=plaintext];\n")
	fmt.Fprintf(&buf, "  grid [label=<\n")
	buf.WriteString("    <TABLE BORDER=\"0\" CELLBORDER=\"1\" CELLSPACING=\"4\" CELLPADDING=\"12\">\n")

	emitted := make(map[grid.Position]bool)
	for row := 0; row < dim.Rows; row++ {
		buf.WriteString("      <TR>")
		for col := 0; col < dim.Columns; col++ {
			cell := grid.Position{Row: row, Column: col}
			if a, ok := anchors[cell]; ok {
				fmt.Fprintf(&buf, `<TD ROWSPAN="%d" COLSPAN="%d">%s</TD>`,
					a.span.Rows, a.span.Columns, html.EscapeString(a.block.Kind))
				markEmitted(emitted, cell, a.span)
				continue
			}
			if emitted[cell] {
				continue // consumed by an earlier rowspan/colspan
			}
			buf.WriteString(`<TD></TD>`)
		}
		buf.WriteString("</TR>\n")
	}

	buf.WriteString("    </TABLE>\n")
	buf.WriteString("  >];\n")
	buf.WriteString("}\n")
	return buf.String()
}

func markEmitted(emitted map[grid.Position]bool, pos grid.Position, span grid.Span) {
	for r := pos.Row; r < pos.Row+span.Rows; r++ {
		for c := pos.Column; c < pos.Column+span.Columns; c++ {
			emitted[grid.Position{Row: r, Column: c}] = true
		}
	}
}

// RenderDOTSVG renders a DOT graph to SVG using Graphviz.
func RenderDOTSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
