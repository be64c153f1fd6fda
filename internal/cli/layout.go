package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mr-romero/slidegrid/pkg/grid"
	"github.com/mr-romero/slidegrid/pkg/layout"
)

// newLayoutCmd groups the layout operations.
func newLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Edit a slide's grid layout",
	}
	cmd.AddCommand(newAssignCmd())
	cmd.AddCommand(newResizeCmd())
	cmd.AddCommand(newSpanCmd())
	cmd.AddCommand(newPromoteCmd())
	return cmd
}

func parseInt(name, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, v)
	}
	return n, nil
}

func newAssignCmd() *cobra.Command {
	var policyName string

	cmd := &cobra.Command{
		Use:   "assign <slide-id> <block-id> <row> <col>",
		Short: "Anchor a block at a grid cell",
		Long: `Anchor a block at the given cell. The grid grows to contain an
out-of-bounds target, up to the configured maximum size; it never
shrinks. With --policy reject, the assignment fails when another block
already anchors at the cell.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			row, err := parseInt("row", args[2])
			if err != nil {
				return err
			}
			col, err := parseInt("col", args[3])
			if err != nil {
				return err
			}

			ed, s, cfg, err := openEditor(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			policy := cfg.Policy()
			switch policyName {
			case "":
			case "overwrite":
				policy = layout.Overwrite
			case "reject":
				policy = layout.Reject
			default:
				return fmt.Errorf("unknown policy %q (overwrite or reject)", policyName)
			}

			pos := cfg.Grid.ClampPosition(grid.Position{Row: row, Column: col})
			doc, err := ed.AssignBlock(ctx, args[0], args[1], pos, policy)
			if err != nil {
				return err
			}

			printSuccess("anchored %s at %d-%d", args[1], pos.Row, pos.Column)
			fmt.Println(renderGrid(doc))
			return nil
		},
	}

	cmd.Flags().StringVar(&policyName, "policy", "", "conflict policy: overwrite or reject (default from config)")
	return cmd
}

func newResizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resize <slide-id> <rows> <cols>",
		Short: "Resize a slide's grid",
		Long: `Set the grid dimensions explicitly. Positions and spans outside the
new bounds are clamped in, never dropped. Dimensions floor at 1x1 and
cap at the configured maximum size.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rows, err := parseInt("rows", args[1])
			if err != nil {
				return err
			}
			cols, err := parseInt("cols", args[2])
			if err != nil {
				return err
			}

			ed, s, cfg, err := openEditor(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			rows, cols = cfg.Grid.ClampDim(rows, cols)
			doc, err := ed.ResizeGrid(ctx, args[0], rows, cols)
			if err != nil {
				return err
			}

			dim := doc.Layout.Dim()
			printSuccess("grid is now %dx%d", dim.Rows, dim.Columns)
			fmt.Println(renderGrid(doc))
			return nil
		},
	}
}

func newSpanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "span <slide-id> <block-id> <row|column> <grow|shrink>",
		Short: "Grow or shrink a block's span",
		Long: `Adjust a block's span by one cell along one axis. Growth clamps at
the grid edge; shrinking floors at a single cell.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ed, s, _, err := openEditor(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			doc, err := ed.AdjustSpan(ctx, args[0], args[1], args[2], args[3])
			if err != nil {
				return err
			}

			span := doc.Layout.SpanOf(args[1])
			printSuccess("span of %s is now %dx%d", args[1], span.Rows, span.Columns)
			fmt.Println(renderGrid(doc))
			return nil
		},
	}
}

func newPromoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promote <slide-id> <block-id>",
		Short: "Promote a single-column slide to two columns",
		Long: `Convert a single-column slide to two columns, as a drag into the
virtual second-column drop zone would. The named block lands in the
new right column; other unpositioned blocks stack in the left one.
No-op when the slide already has multiple columns or fewer than two
blocks.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ed, s, _, err := openEditor(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			before, err := ed.GetSlide(ctx, args[0])
			if err != nil {
				return err
			}

			doc, err := ed.PromoteColumn(ctx, args[0], args[1])
			if err != nil {
				return err
			}

			promoted := before.Layout == nil || before.Layout.Columns == 1
			if promoted && doc.Layout != nil && doc.Layout.Columns == 2 {
				printSuccess("promoted to two columns")
			} else {
				printInfo("nothing to promote")
			}
			fmt.Println(renderGrid(doc))
			return nil
		},
	}
}
