package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// ToPDF converts a rendered slide SVG to PDF, for printable handouts.
// Requires rsvg-convert (librsvg) on PATH.
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return rsvgConvert(ctx, svg, "pdf")
}

// ToPNG converts a rendered slide SVG to PNG at the given scale factor;
// 2.0 doubles the resolution for high-DPI displays.
// Requires rsvg-convert (librsvg) on PATH.
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	return rsvgConvert(ctx, svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

// rsvgConvert pipes the slide SVG through rsvg-convert.
func rsvgConvert(ctx context.Context, svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, fmt.Errorf("%s slide export needs rsvg-convert (librsvg). Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.CommandContext(ctx, "rsvg-convert", args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("convert slide to %s: %w: %s", format, err, stderr.String())
	}
	return out.Bytes(), nil
}
