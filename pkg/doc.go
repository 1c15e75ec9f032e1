// Package pkg provides the core libraries for Conclusiv narrative presentations.
//
// # Overview
//
// Conclusiv turns structured narratives into animated presentation plans.
// A narrative is a sequence of sections; a motion template decides where
// each section sits on the canvas, how the camera travels between them,
// and how card content animates in.
//
// The packages compose into a pipeline:
//
//	narrative → motion → plan → render
//
//   - [narrative]: the input model (sections, validation, text parsing)
//   - [motion]: template configs, layouts, transitions, easing
//   - [plan]: resolves a narrative against a template into concrete steps
//   - [render]: storyboard (SVG/PNG/PDF/JSON) and flow (DOT) output
//   - [pipeline]: the cached plan → render runner shared by CLI and API
//
// Supporting packages: [cache] (file/redis artifact cache), [store]
// (narrative persistence and share tokens), [icons] (glyph resolution),
// [config] (TOML app config), [errors] (coded errors), [observability]
// (instrumentation hooks), [buildinfo] (version stamping).
package pkg
