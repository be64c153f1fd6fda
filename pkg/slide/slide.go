// Package slide defines the document model for a single lesson slide.
//
// A slide owns an ordered list of content blocks and, optionally, a grid
// layout describing where each block sits. The types here are the canonical
// serialization format: they carry both JSON tags (for the editor API and
// file storage) and BSON tags (for the Mongo document store), and are
// designed for round-trip fidelity - load → transform → save reproduces
// every field.
//
// The layout engine in package layout treats these as immutable values:
// every operation deep-copies before changing anything. Use Clone when you
// need the same guarantee.
package slide

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/mr-romero/slidegrid/pkg/grid"
)

// Block kinds. The layout engine never inspects block content - it keys
// purely by ID - but the kind set is closed so editor surfaces can match
// exhaustively.
const (
	KindText             = "text"
	KindImage            = "image"
	KindQuestion         = "question"
	KindGraph            = "graph"
	KindAIChat           = "ai-chat"
	KindFeedbackQuestion = "feedback-question"
)

// ValidKinds is the set of supported block kinds.
var ValidKinds = map[string]bool{
	KindText:             true,
	KindImage:            true,
	KindQuestion:         true,
	KindGraph:            true,
	KindAIChat:           true,
	KindFeedbackQuestion: true,
}

// Block is one content element on a slide. Content is opaque to the layout
// engine and round-tripped untouched.
type Block struct {
	ID      string         `json:"id" bson:"id"`
	Kind    string         `json:"kind" bson:"kind"`
	Content map[string]any `json:"content,omitempty" bson:"content,omitempty"`
}

// NewBlock creates a block of the given kind with a fresh random ID.
func NewBlock(kind string) Block {
	return Block{ID: uuid.NewString(), Kind: kind}
}

// Layout is the persisted grid layout for one slide: the grid dimensions
// plus per-block anchor positions and spans. Blocks without an entry in
// Positions default to the origin cell; blocks without an entry in Spans
// default to a single cell.
type Layout struct {
	Rows      int                      `json:"gridRows" bson:"gridRows"`
	Columns   int                      `json:"gridColumns" bson:"gridColumns"`
	Positions map[string]grid.Position `json:"blockPositions,omitempty" bson:"blockPositions,omitempty"`
	Spans     map[string]grid.Span     `json:"blockSpans,omitempty" bson:"blockSpans,omitempty"`
}

// NewLayout creates an empty layout of the given size, floored at 1x1.
func NewLayout(rows, cols int) *Layout {
	d := grid.Dim{Rows: rows, Columns: cols}.Normalize()
	return &Layout{
		Rows:      d.Rows,
		Columns:   d.Columns,
		Positions: map[string]grid.Position{},
		Spans:     map[string]grid.Span{},
	}
}

// Dim returns the layout's grid dimensions.
func (l *Layout) Dim() grid.Dim {
	return grid.Dim{Rows: l.Rows, Columns: l.Columns}
}

// PositionOf returns the recorded anchor for blockID, or the origin cell if
// none is recorded. Multiple unpositioned blocks therefore alias to {0,0};
// the grouping query in package layout handles stacked cells.
func (l *Layout) PositionOf(blockID string) grid.Position {
	if l == nil {
		return grid.Position{}
	}
	return l.Positions[blockID]
}

// SpanOf returns the recorded span for blockID, or the default 1x1 span.
func (l *Layout) SpanOf(blockID string) grid.Span {
	if l != nil {
		if s, ok := l.Spans[blockID]; ok {
			return s
		}
	}
	return grid.DefaultSpan()
}

// Clone returns a deep copy of the layout. Returns nil for a nil layout.
func (l *Layout) Clone() *Layout {
	if l == nil {
		return nil
	}
	out := &Layout{
		Rows:      l.Rows,
		Columns:   l.Columns,
		Positions: make(map[string]grid.Position, len(l.Positions)),
		Spans:     make(map[string]grid.Span, len(l.Spans)),
	}
	for id, p := range l.Positions {
		out.Positions[id] = p
	}
	for id, s := range l.Spans {
		out.Spans[id] = s
	}
	return out
}

// Slide is one lesson slide: an identity, an ordered block list, and an
// optional layout. Layout is nil until the first layout mutation - the
// engine creates it lazily.
type Slide struct {
	ID     string  `json:"id" bson:"id"`
	Title  string  `json:"title,omitempty" bson:"title,omitempty"`
	Blocks []Block `json:"blocks" bson:"blocks"`
	Layout *Layout `json:"layout,omitempty" bson:"layout,omitempty"`
}

// New creates an empty slide with a fresh random ID.
func New(title string) Slide {
	return Slide{ID: uuid.NewString(), Title: title}
}

// Block returns the block with the given ID and true, or a zero Block and
// false if the slide has no such block.
func (s Slide) Block(id string) (Block, bool) {
	for _, b := range s.Blocks {
		if b.ID == id {
			return b, true
		}
	}
	return Block{}, false
}

// HasBlock reports whether the slide contains a block with the given ID.
func (s Slide) HasBlock(id string) bool {
	_, ok := s.Block(id)
	return ok
}

// Clone returns a deep copy of the slide. Block content maps are copied
// shallowly - content is opaque and treated as read-only.
func (s Slide) Clone() Slide {
	out := s
	out.Blocks = make([]Block, len(s.Blocks))
	copy(out.Blocks, s.Blocks)
	out.Layout = s.Layout.Clone()
	return out
}

// Unmarshal deserializes JSON bytes to a Slide.
func Unmarshal(data []byte) (Slide, error) {
	var s Slide
	if err := json.Unmarshal(data, &s); err != nil {
		return Slide{}, err
	}
	return s, nil
}

// Marshal serializes a slide to indented JSON, the on-disk document format.
func Marshal(s Slide) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
