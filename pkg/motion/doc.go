// Package motion is the template animation engine for Conclusiv.
//
// A narrative is an ordered list of sections; a template is a named visual
// and motion personality applied uniformly across those sections. This
// package maps (template, section count) onto everything a renderer needs
// to animate the narrative:
//
//   - [ConfigFor] returns the per-template camera, spring, card, and timing
//     configuration.
//   - [NodePositions] places section nodes on a square canvas using the
//     template's layout algorithm (spiral, horizontal, vertical, grid, or
//     radial).
//   - [TransitionSequence] produces the cyclic list of transition tags used
//     when moving focus from one section to the next.
//   - [ContentAnimationFor] returns the per-field enter animations for
//     title, body, and list items.
//   - [MobileOverrides] derives a reduced-motion variant for constrained
//     devices.
//
// Every function is a pure computation over its arguments: no I/O, no
// shared state, and deterministic output for fixed inputs. Unknown or empty
// template names resolve to [DefaultTemplate] rather than erroring, so all
// lookups are total.
package motion
