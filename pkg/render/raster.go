package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/goccy/go-graphviz"
)

// SVG renders a DOT graph to SVG using Graphviz.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// PNG renders a DOT graph as PNG via SVG conversion with the given scale
// factor. A scale of 2.0 produces a 2x resolution image for high-DPI
// displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func PNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := SVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return toPNG(svg, scale)
}

// toPNG shells out to rsvg-convert for SVG to PNG conversion.
func toPNG(svg []byte, scale float64) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, fmt.Errorf("PNG export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin")
	}

	cmd := exec.Command("rsvg-convert", "-f", "png", "-z", fmt.Sprintf("%.2f", scale))
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("rsvg-convert: %v: %s", err, errBuf.String())
	}
	return out.Bytes(), nil
}
