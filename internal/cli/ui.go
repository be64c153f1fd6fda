package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mr-romero/slidegrid/pkg/grid"
	"github.com/mr-romero/slidegrid/pkg/layout"
	"github.com/mr-romero/slidegrid/pkg/slide"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)

	styleKindText     = lipgloss.NewStyle().Foreground(colorBlue)
	styleKindQuestion = lipgloss.NewStyle().Foreground(colorYellow)
	styleKindOther    = lipgloss.NewStyle().Foreground(colorWhite)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCovered = "↖" // cell consumed by a span anchored up or to the left
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// =============================================================================
// Grid Display
// =============================================================================

// blockLabel formats a block for display in a grid cell: its kind, the
// first characters of its ID, and its span when larger than one cell.
func blockLabel(doc slide.Slide, b slide.Block) string {
	id := b.ID
	if len(id) > 8 {
		id = id[:8]
	}
	label := fmt.Sprintf("%s %s", b.Kind, id)

	span := doc.Layout.SpanOf(b.ID)
	if span != grid.DefaultSpan() {
		label += fmt.Sprintf(" [%dx%d]", span.Rows, span.Columns)
	}
	return label
}

func kindStyle(kind string) lipgloss.Style {
	switch kind {
	case slide.KindText:
		return styleKindText
	case slide.KindQuestion, slide.KindFeedbackQuestion:
		return styleKindQuestion
	}
	return styleKindOther
}

// renderGrid draws the slide's grid as a bordered terminal table. Each
// cell lists the blocks anchored there; stacked blocks appear on
// separate lines, and cells hidden under a neighboring span carry a dim
// marker pointing back at the spanning block's anchor.
func renderGrid(doc slide.Slide) string {
	dim := grid.Dim{Rows: 1, Columns: 1}
	if doc.Layout != nil {
		dim = doc.Layout.Dim()
	}
	cells := layout.Cells(doc)

	covered := make(map[layout.Cell]bool)
	for _, cell := range layout.CoveredCells(doc.Layout) {
		covered[cell] = true
	}

	rows := make([][]string, dim.Rows)
	for r := 0; r < dim.Rows; r++ {
		rows[r] = make([]string, dim.Columns)
		for c := 0; c < dim.Columns; c++ {
			cell := layout.Cell{Row: r, Column: c}
			blocks := cells[cell]
			lines := make([]string, len(blocks))
			for i, b := range blocks {
				lines[i] = kindStyle(b.Kind).Render(blockLabel(doc, b))
			}
			if len(lines) == 0 && covered[cell] {
				rows[r][c] = StyleDim.Render(iconCovered)
				continue
			}
			rows[r][c] = strings.Join(lines, "\n")
		}
	}

	headers := make([]string, dim.Columns)
	for c := range headers {
		headers[c] = fmt.Sprintf("col %d", c)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	return t.Render()
}
