package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mr-romero/slidegrid/pkg/editor"
	"github.com/mr-romero/slidegrid/pkg/grid"
	"github.com/mr-romero/slidegrid/pkg/layout"
	"github.com/mr-romero/slidegrid/pkg/slide"
)

// newEditCmd creates the "edit" command: an interactive grid editor.
func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <slide-id>",
		Short: "Edit a slide's layout interactively",
		Long: `Open an interactive terminal editor for a slide's grid. Move the
cursor with the arrow keys, grab and drop blocks to anchor them, and
adjust spans in place. Every change is saved immediately.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ed, s, cfg, err := openEditor(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			doc, err := ed.GetSlide(ctx, args[0])
			if err != nil {
				return err
			}

			m := newGridModel(ctx, ed, doc, cfg.Grid.MaxDim())
			_, err = tea.NewProgram(m).Run()
			return err
		},
	}
}

// =============================================================================
// GridModel - Interactive layout editing
// =============================================================================

// gridModel is the bubbletea model for the interactive grid editor.
type gridModel struct {
	ctx    context.Context
	editor *editor.Editor
	maxDim grid.Dim // configured grid size cap

	doc     slide.Slide
	cursor  grid.Position
	grabbed string // block ID being moved, empty when nothing is grabbed
	status  string
}

func newGridModel(ctx context.Context, ed *editor.Editor, doc slide.Slide, maxDim grid.Dim) gridModel {
	return gridModel{ctx: ctx, editor: ed, doc: doc, maxDim: maxDim}
}

func (m gridModel) Init() tea.Cmd {
	return nil
}

// dim returns the current grid dimensions, 1x1 for layout-less slides.
func (m gridModel) dim() grid.Dim {
	if m.doc.Layout == nil {
		return grid.Dim{Rows: 1, Columns: 1}
	}
	return m.doc.Layout.Dim()
}

// blockAtCursor returns the first block anchored at the cursor cell.
func (m gridModel) blockAtCursor() (slide.Block, bool) {
	cells := layout.Cells(m.doc)
	blocks := cells[layout.Cell{Row: m.cursor.Row, Column: m.cursor.Column}]
	if len(blocks) == 0 {
		return slide.Block{}, false
	}
	return blocks[0], true
}

func (m gridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit

		case "up", "k":
			if m.cursor.Row > 0 {
				m.cursor.Row--
			}
		case "down", "j":
			if m.cursor.Row < m.dim().Rows-1 {
				m.cursor.Row++
			}
		case "left", "h":
			if m.cursor.Column > 0 {
				m.cursor.Column--
			}
		case "right", "l":
			if m.cursor.Column < m.dim().Columns-1 {
				m.cursor.Column++
			}

		case "enter", " ":
			return m.grabOrDrop(), nil

		case "n":
			return m.apply("added block", func() (slide.Slide, error) {
				return m.editor.AddBlock(m.ctx, m.doc.ID, slide.KindText)
			}), nil

		case "D":
			if b, ok := m.blockAtCursor(); ok {
				return m.apply("duplicated "+shortID(b.ID), func() (slide.Slide, error) {
					return m.editor.DuplicateBlock(m.ctx, m.doc.ID, b.ID)
				}), nil
			}
		case "x":
			if b, ok := m.blockAtCursor(); ok {
				return m.apply("deleted "+shortID(b.ID), func() (slide.Slide, error) {
					return m.editor.DeleteBlock(m.ctx, m.doc.ID, b.ID)
				}), nil
			}
		case "p":
			if b, ok := m.blockAtCursor(); ok {
				return m.apply("promoted to two columns", func() (slide.Slide, error) {
					return m.editor.PromoteColumn(m.ctx, m.doc.ID, b.ID)
				}), nil
			}

		case "L":
			return m.span(editor.AxisColumn, editor.DirGrow), nil
		case "H":
			return m.span(editor.AxisColumn, editor.DirShrink), nil
		case "J":
			return m.span(editor.AxisRow, editor.DirGrow), nil
		case "K":
			return m.span(editor.AxisRow, editor.DirShrink), nil

		case "R":
			if d := m.dim(); d.Rows >= m.maxDim.Rows {
				m.status = fmt.Sprintf("grid capped at %d rows", m.maxDim.Rows)
				return m, nil
			}
			return m.apply("grew grid", func() (slide.Slide, error) {
				d := m.dim()
				return m.editor.ResizeGrid(m.ctx, m.doc.ID, d.Rows+1, d.Columns)
			}), nil
		case "C":
			if d := m.dim(); d.Columns >= m.maxDim.Columns {
				m.status = fmt.Sprintf("grid capped at %d columns", m.maxDim.Columns)
				return m, nil
			}
			return m.apply("grew grid", func() (slide.Slide, error) {
				d := m.dim()
				return m.editor.ResizeGrid(m.ctx, m.doc.ID, d.Rows, d.Columns+1)
			}), nil
		}
	}
	return m, nil
}

// grabOrDrop picks up the block under the cursor, or drops a grabbed
// block at the cursor cell.
func (m gridModel) grabOrDrop() gridModel {
	if m.grabbed == "" {
		b, ok := m.blockAtCursor()
		if !ok {
			m.status = "nothing to grab here"
			return m
		}
		m.grabbed = b.ID
		m.status = "grabbed " + shortID(b.ID)
		return m
	}

	grabbed := m.grabbed
	m.grabbed = ""
	return m.apply("placed "+shortID(grabbed), func() (slide.Slide, error) {
		return m.editor.AssignBlock(m.ctx, m.doc.ID, grabbed, m.cursor, layout.Overwrite)
	})
}

func (m gridModel) span(axis, dir string) gridModel {
	b, ok := m.blockAtCursor()
	if !ok {
		m.status = "no block to resize here"
		return m
	}
	return m.apply(fmt.Sprintf("%s span %s", axis, dir), func() (slide.Slide, error) {
		return m.editor.AdjustSpan(m.ctx, m.doc.ID, b.ID, axis, dir)
	})
}

// apply runs a mutation, refreshing the model's slide and status line.
func (m gridModel) apply(okStatus string, fn func() (slide.Slide, error)) gridModel {
	doc, err := fn()
	if err != nil {
		m.status = StyleWarning.Render(err.Error())
		return m
	}
	m.doc = doc
	m.status = okStatus

	// The grid may have grown or the cursor's cell disappeared in a
	// resize; keep the cursor in bounds.
	m.cursor = grid.ClampPosition(m.cursor, m.dim())
	return m
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func (m gridModel) View() string {
	var b strings.Builder

	title := m.doc.Title
	if title == "" {
		title = "(untitled)"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %s", m.doc.ID)))
	b.WriteString("\n\n")

	b.WriteString(renderGrid(m.doc))
	b.WriteString("\n")

	cursor := fmt.Sprintf("cursor %d-%d", m.cursor.Row, m.cursor.Column)
	if m.grabbed != "" {
		cursor += "  carrying " + StyleHighlight.Render(shortID(m.grabbed))
	}
	b.WriteString(StyleDim.Render(cursor))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑↓←→ move  ⏎ grab/drop  n add  D dup  x del  p promote"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("HJKL span  R/C grow grid  q quit"))
	return b.String()
}
