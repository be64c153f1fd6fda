package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mr-romero/slidegrid/pkg/slide"
)

// newNewCmd creates the "new" command for creating a slide.
func newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new [title]",
		Short: "Create a new slide",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ed, s, _, err := openEditor(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			title := ""
			if len(args) > 0 {
				title = args[0]
			}

			p := newProgress(loggerFromContext(ctx))
			doc, err := ed.CreateSlide(ctx, title)
			if err != nil {
				return err
			}
			p.done("Created slide")

			printSuccess("created slide %s", StyleHighlight.Render(doc.ID))
			printNextStep("add a block", fmt.Sprintf("slidegrid block add %s text", doc.ID))
			return nil
		},
	}
}

// newListCmd creates the "list" command.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored slides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ed, s, _, err := openEditor(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			ids, err := ed.ListSlides(ctx)
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				printInfo("no slides yet")
				printNextStep("create one", "slidegrid new \"My first slide\"")
				return nil
			}

			for _, id := range ids {
				doc, err := ed.GetSlide(ctx, id)
				if err != nil {
					printError("%s: %v", id, err)
					continue
				}
				title := doc.Title
				if title == "" {
					title = StyleDim.Render("(untitled)")
				}
				fmt.Printf("%s  %s  %s\n",
					StyleHighlight.Render(id), title,
					StyleDim.Render(fmt.Sprintf("%d blocks", len(doc.Blocks))))
			}
			return nil
		},
	}
}

// newShowCmd creates the "show" command that prints a slide's grid.
func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <slide-id>",
		Short: "Display a slide's grid layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ed, s, _, err := openEditor(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			doc, err := ed.GetSlide(ctx, args[0])
			if err != nil {
				return err
			}

			title := doc.Title
			if title == "" {
				title = "(untitled)"
			}
			fmt.Println(StyleTitle.Render(title))
			printKeyValue("slide", doc.ID)
			if doc.Layout != nil {
				printKeyValue("grid", fmt.Sprintf("%dx%d", doc.Layout.Rows, doc.Layout.Columns))
			} else {
				printKeyValue("grid", "1x1 (implicit)")
			}
			printKeyValue("blocks", fmt.Sprintf("%d", len(doc.Blocks)))
			fmt.Println()
			fmt.Println(renderGrid(doc))

			unpositioned := unpositionedIDs(doc)
			if len(unpositioned) > 0 {
				printDetail("unpositioned (render at 0-0): %s", strings.Join(unpositioned, ", "))
			}
			return nil
		},
	}
}

// unpositionedIDs returns the IDs of blocks without an explicit position.
func unpositionedIDs(doc slide.Slide) []string {
	var ids []string
	for _, b := range doc.Blocks {
		if doc.Layout == nil {
			ids = append(ids, b.ID)
			continue
		}
		if _, ok := doc.Layout.Positions[b.ID]; !ok {
			ids = append(ids, b.ID)
		}
	}
	return ids
}
