package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mr-romero/slidegrid/pkg/render"
	"github.com/mr-romero/slidegrid/pkg/slide"
)

// newRenderCmd creates the "render" command for exporting slides.
func newRenderCmd() *cobra.Command {
	var (
		output string
		format string
		scale  float64
	)

	cmd := &cobra.Command{
		Use:   "render <slide-id>",
		Short: "Export a slide layout as SVG, PNG, PDF, DOT, or JSON",
		Long: `Render a slide's grid layout to a file. The format is taken from the
output extension, or forced with --format. PNG and PDF go through SVG
and require rsvg-convert (librsvg). DOT emits a Graphviz document; JSON
emits the slide document itself.`,
		Args: cobra.ExactArgs(1),
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

			if format == "" {
				format = strings.TrimPrefix(filepath.Ext(output), ".")
			}
			if format == "" {
				format = "svg"
			}
			if output == "" {
				output = doc.ID + "." + format
			}

			p := newProgress(loggerFromContext(ctx))
			data, err := renderAs(ctx, doc, format, scale)
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Rendered %s", format))

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("rendered slide %s", doc.ID)
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <slide-id>.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: svg, png, pdf, dot, json")
	cmd.Flags().Float64Var(&scale, "scale", 2.0, "PNG scale factor")
	return cmd
}

func renderAs(ctx context.Context, doc slide.Slide, format string, scale float64) ([]byte, error) {
	switch format {
	case "svg":
		return render.RenderSVG(doc, render.WithIDs()), nil
	case "png":
		return render.ToPNG(ctx, render.RenderSVG(doc, render.WithIDs()), scale)
	case "pdf":
		return render.ToPDF(ctx, render.RenderSVG(doc, render.WithIDs()))
	case "dot":
		return []byte(render.ToDOT(doc)), nil
	case "json":
		return slide.Marshal(doc)
	default:
		return nil, fmt.Errorf("unknown format %q (svg, png, pdf, dot, json)", format)
	}
}
