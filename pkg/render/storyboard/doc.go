// Package storyboard renders presentation plans to concrete output formats.
//
// The storyboard is the flat, everything-at-once view of a plan: every
// section card drawn at its computed canvas position with step connectors
// between them. It is what the CLI writes to disk and what the server
// streams to browsers.
//
// # Formats
//
//   - [RenderSVG]: canonical vector output, optionally with embedded CSS
//     animations ([WithAnimations]) so the file plays in a browser
//   - [RenderJSON]: data interchange for playback clients, optionally with
//     pre-eased camera frames ([WithJSONFrames])
//   - [RenderPNG], [RenderPDF]: raster/print conversion via rsvg-convert
//
// All renderers are pure functions of the plan and their options; they are
// safe for concurrent use.
package storyboard
