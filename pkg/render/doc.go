// Package render provides output generation for presentation plans.
//
// # Overview
//
// This package contains the rendering pipeline that transforms presentation
// plans into visual outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Storyboard rendering (in [storyboard] subpackage)
//   - Flow diagrams (in [flow] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). These are used by both
// storyboard and flow renderers.
//
//	svg := storyboard.RenderSVG(p, opts...)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Storyboard Rendering
//
// The [storyboard] subpackage renders a plan as a single SVG canvas: one
// card per section placed at its computed position, with the template's
// enter animations embedded as CSS keyframes so the SVG plays in a browser.
//
// # Flow Diagrams
//
// The [flow] subpackage renders the step sequence as a directed diagram
// using Graphviz. Sections appear as boxes connected by arrows labeled
// with the transition between them.
//
//	dot := flow.ToDOT(p, flow.Options{})
//	svg, err := flow.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//
// [storyboard]: github.com/conclusiv/conclusiv/pkg/render/storyboard
// [flow]: github.com/conclusiv/conclusiv/pkg/render/flow
package render
