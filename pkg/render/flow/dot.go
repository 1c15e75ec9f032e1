// Package flow renders the step sequence of a plan as a directed diagram.
//
// Sections appear as boxes connected by arrows labeled with the transition
// between them. This is the quickest way to inspect what the sequencer
// produced for a narrative without playing the animation.
package flow

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/conclusiv/conclusiv/pkg/plan"
	"github.com/conclusiv/conclusiv/pkg/render"
)

// Options configures flow diagram rendering.
type Options struct {
	// Detailed includes positions and durations in node labels.
	// When false, only the section title is shown.
	Detailed bool
}

// ToDOT converts a plan to Graphviz DOT format for flow visualization.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(p *plan.Plan, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph flow {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for i, s := range p.Steps {
		label := fmtLabel(s, i, opts.Detailed)
		fmt.Fprintf(&buf, "  %q [label=%q];\n", s.Section.ID, label)
	}

	buf.WriteString("\n")
	for i := 1; i < len(p.Steps); i++ {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q, fontsize=16];\n",
			p.Steps[i-1].Section.ID, p.Steps[i].Section.ID, p.Steps[i].Transition)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(s plan.Step, i int, detailed bool) string {
	if !detailed {
		return s.Section.Title
	}

	parts := []string{
		fmt.Sprintf("step: %d", i+1),
		fmt.Sprintf("pos: %.0f,%.0f", s.Position.X, s.Position.Y),
		fmt.Sprintf("duration: %.2fs", s.Duration),
	}
	return s.Section.Title + "\n" + strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
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
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
