package pipeline

import (
	"fmt"

	"github.com/conclusiv/conclusiv/pkg/plan"
	"github.com/conclusiv/conclusiv/pkg/render/flow"
	"github.com/conclusiv/conclusiv/pkg/render/storyboard"
)

// RenderFromPlan generates output artifacts in the requested formats.
// SVG, PNG, and PDF come from the storyboard renderer; JSON is the playback
// document; DOT is the flow diagram source.
func RenderFromPlan(p *plan.Plan, opts Options) (map[string][]byte, error) {
	opts.SetRenderDefaults()

	svgOpts := buildSVGOptions(opts)
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = storyboard.RenderSVG(p, svgOpts...)
		case FormatPNG:
			data, err = storyboard.RenderPNG(p,
				storyboard.WithPNGSVGOptions(svgOpts...),
				storyboard.WithScale(opts.Scale))
		case FormatPDF:
			data, err = storyboard.RenderPDF(p,
				storyboard.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = storyboard.RenderJSON(p,
				storyboard.WithJSONTheme(opts.Theme),
				storyboard.WithJSONFrames(opts.Frames))
		case FormatDOT:
			data = []byte(flow.ToDOT(p, flow.Options{Detailed: opts.Detailed}))
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// RenderFromPlanData renders output from serialized plan data.
// This is useful when the plan was computed elsewhere (e.g., cached).
func RenderFromPlanData(planData []byte, opts Options) (map[string][]byte, error) {
	p, err := plan.Unmarshal(planData)
	if err != nil {
		return nil, fmt.Errorf("parse plan: %w", err)
	}
	return RenderFromPlan(p, opts)
}

// buildSVGOptions builds storyboard SVG rendering options.
func buildSVGOptions(opts Options) []storyboard.SVGOption {
	svgOpts := []storyboard.SVGOption{
		storyboard.WithTheme(storyboard.ThemeByName(opts.Theme)),
	}
	if opts.Animations {
		svgOpts = append(svgOpts, storyboard.WithAnimations())
	}
	if opts.TransitionLabels {
		svgOpts = append(svgOpts, storyboard.WithTransitionLabels())
	}
	if len(opts.Icons) > 0 {
		svgOpts = append(svgOpts, storyboard.WithIcons(opts.Icons))
	}
	return svgOpts
}
