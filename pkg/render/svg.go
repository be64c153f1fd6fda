package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/mr-romero/slidegrid/pkg/grid"
	"github.com/mr-romero/slidegrid/pkg/slide"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	cellW   float64
	cellH   float64
	gap     float64
	margin  float64
	showIDs bool
}

// WithCellSize sets the rendered size of a single grid cell in pixels.
func WithCellSize(w, h float64) SVGOption {
	return func(r *svgRenderer) { r.cellW, r.cellH = w, h }
}

// WithIDs includes block IDs under the kind labels.
func WithIDs() SVGOption { return func(r *svgRenderer) { r.showIDs = true } }

// kindFill maps block kinds to their preview colors.
var kindFill = map[string]string{
	slide.KindText:             "#dbeafe",
	slide.KindImage:            "#dcfce7",
	slide.KindQuestion:         "#fef9c3",
	slide.KindGraph:            "#fae8ff",
	slide.KindAIChat:           "#e0e7ff",
	slide.KindFeedbackQuestion: "#ffe4e6",
}

// RenderSVG draws the slide's grid and blocks as an SVG document. Cells
// are drawn first as a faint background grid, then blocks in slide order,
// so overlapping blocks stack with later blocks on top.
func RenderSVG(doc slide.Slide, opts ...SVGOption) []byte {
	r := svgRenderer{cellW: 240, cellH: 140, gap: 12, margin: 16}
	for _, opt := range opts {
		opt(&r)
	}

	dim := grid.Dim{Rows: 1, Columns: 1}
	if doc.Layout != nil {
		dim = doc.Layout.Dim()
	}

	width := r.margin*2 + float64(dim.Columns)*r.cellW + float64(dim.Columns-1)*r.gap
	height := r.margin*2 + float64(dim.Rows)*r.cellH + float64(dim.Rows-1)*r.gap

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)

	// Background grid.
	for row := 0; row < dim.Rows; row++ {
		for col := 0; col < dim.Columns; col++ {
			x, y := r.cellOrigin(row, col)
			fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="6" fill="none" stroke="#e5e7eb" stroke-dasharray="4 4"/>`+"\n",
				x, y, r.cellW, r.cellH)
		}
	}

	for _, b := range doc.Blocks {
		r.renderBlock(&buf, doc, b, dim)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) cellOrigin(row, col int) (float64, float64) {
	x := r.margin + float64(col)*(r.cellW+r.gap)
	y := r.margin + float64(row)*(r.cellH+r.gap)
	return x, y
}

func (r *svgRenderer) renderBlock(buf *bytes.Buffer, doc slide.Slide, b slide.Block, dim grid.Dim) {
	pos := grid.ClampPosition(doc.Layout.PositionOf(b.ID), dim)
	span := grid.ClampSpan(pos, doc.Layout.SpanOf(b.ID), dim)

	x, y := r.cellOrigin(pos.Row, pos.Column)
	w := float64(span.Columns)*r.cellW + float64(span.Columns-1)*r.gap
	h := float64(span.Rows)*r.cellH + float64(span.Rows-1)*r.gap

	fill, ok := kindFill[b.Kind]
	if !ok {
		fill = "#f3f4f6"
	}

	fmt.Fprintf(buf, `  <g id="block-%s">`+"\n", html.EscapeString(b.ID))
	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="8" fill="%s" stroke="#9ca3af"/>`+"\n",
		x, y, w, h, fill)
	fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="16" text-anchor="middle">%s</text>`+"\n",
		x+w/2, y+h/2, html.EscapeString(b.Kind))
	if r.showIDs {
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-family="monospace" font-size="10" fill="#6b7280" text-anchor="middle">%s</text>`+"\n",
			x+w/2, y+h/2+18, html.EscapeString(b.ID))
	}
	buf.WriteString("  </g>\n")
}
