// Package render turns slide layouts into visual output.
//
// # Overview
//
// Three output paths are provided:
//
//   - Direct SVG: [RenderSVG] draws the grid and its blocks as an SVG
//     document, the format used for previews in the editor.
//   - Graphviz: [ToDOT] emits the layout as a DOT graph with an
//     HTML-like table label, rendered via [RenderDOTSVG]. Useful for
//     quick terminal-adjacent inspection and for tooling that already
//     speaks DOT.
//   - Format conversion: [ToPDF] and [ToPNG] convert any SVG to other
//     formats using the external rsvg-convert tool (from librsvg).
//
// # Usage
//
//	svg := render.RenderSVG(doc, render.WithCellSize(200, 120))
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// Overlapping blocks (stacked anchors or span overlap) are drawn in
// slide order, so later blocks appear on top.
package render
