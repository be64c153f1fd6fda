package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mr-romero/slidegrid/pkg/slide"
)

// newBlockCmd groups the block-level commands.
func newBlockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Manage content blocks on a slide",
	}
	cmd.AddCommand(newBlockAddCmd())
	cmd.AddCommand(newBlockDuplicateCmd())
	cmd.AddCommand(newBlockDeleteCmd())
	return cmd
}

func kindList() string {
	kinds := make([]string, 0, len(slide.ValidKinds))
	for k := range slide.ValidKinds {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return strings.Join(kinds, ", ")
}

func newBlockAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <slide-id> <kind>",
		Short: "Add a block to a slide",
		Long:  "Add a new content block of the given kind. Valid kinds: " + kindList() + ".",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ed, s, _, err := openEditor(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			doc, err := ed.AddBlock(ctx, args[0], args[1])
			if err != nil {
				return err
			}

			added := doc.Blocks[len(doc.Blocks)-1]
			printSuccess("added %s block %s", args[1], StyleHighlight.Render(added.ID))
			printNextStep("place it", fmt.Sprintf("slidegrid layout assign %s %s <row> <col>", doc.ID, added.ID))
			return nil
		},
	}
}

func newBlockDuplicateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duplicate <slide-id> <block-id>",
		Short: "Duplicate a block",
		Long:  "Clone a block with a fresh ID. The copy lands in the next free neighbor cell (right, then next row, then the same cell) and does not inherit the original's span.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ed, s, _, err := openEditor(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			doc, err := ed.DuplicateBlock(ctx, args[0], args[1])
			if err != nil {
				return err
			}

			dup := doc.Blocks[len(doc.Blocks)-1]
			pos := doc.Layout.PositionOf(dup.ID)
			printSuccess("duplicated %s as %s at %d-%d", args[1], StyleHighlight.Render(dup.ID), pos.Row, pos.Column)
			return nil
		},
	}
}

func newBlockDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <slide-id> <block-id>",
		Short: "Delete a block",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ed, s, _, err := openEditor(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			if _, err := ed.DeleteBlock(ctx, args[0], args[1]); err != nil {
				return err
			}
			printSuccess("deleted block %s", args[1])
			return nil
		},
	}
}
