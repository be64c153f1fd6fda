// Package pkg provides the core libraries for the slidegrid layout engine.
//
// # Overview
//
// Slidegrid places lesson content blocks on small per-slide grids. The pkg
// directory is organized into these areas:
//
//  1. [grid] - Pure geometry: positions, spans, dimensions, clamping
//  2. [slide] - The slide document model and its serialization
//  3. [layout] - The layout engine: assign, resize, span, promote, query
//  4. [editor] - Stateful editing over a store, with events and hooks
//  5. [store] - Slide persistence (memory, file, MongoDB)
//  6. [present] - Live presentation sessions (memory, Redis)
//  7. [render] - SVG, Graphviz DOT, and PNG/PDF export
//  8. [config] - TOML configuration and backend wiring
//
// # Architecture
//
// The typical data flow through slidegrid:
//
//	Slide document (JSON/BSON)
//	         ↓
//	    [layout] package (value transformations, silent clamping)
//	         ↓
//	    [editor] package (load → transform → save, events)
//	         ↓
//	    CLI / HTTP API / renders
//
// # Quick Start
//
// Anchor a block and inspect the result:
//
//	doc, _ := layout.Assign(doc, blockID, grid.Position{Row: 1, Column: 1}, layout.Overwrite)
//	cells := layout.Cells(doc)
package pkg
