// Package icons resolves icon names to inline SVG glyphs.
//
// Sections reference icons by slug ("rocket", "trending-up"). Resolution
// happens in two tiers: a builtin table of common glyphs that works
// offline, and an optional HTTP resolver that fetches from an upstream
// icon set with caching and retry. Unresolved icons are not an error -
// cards simply render without one.
package icons

import (
	"context"
	"strings"
)

// Resolver maps icon names to SVG glyph markup (the inner elements of a
// 24x24 viewBox, without the outer <svg> tag).
type Resolver interface {
	// Resolve returns the glyph for an icon name.
	// Returns ok=false when the icon is unknown; errors are reserved for
	// transport failures.
	Resolve(ctx context.Context, name string) (glyph string, ok bool, err error)
}

// builtin is the offline glyph table. Paths use a 24x24 viewBox and
// stroke-based drawing to match common icon sets.
var builtin = map[string]string{
	"rocket":      `<path d="M5 19c-1 1-2 4-2 4s3-1 4-2l9-9c2-2 4-6 4-9-3 0-7 2-9 4l-9 9z" fill="none" stroke="currentColor" stroke-width="2"/><circle cx="15" cy="9" r="1.5"/>`,
	"trending-up": `<path d="M3 17l6-6 4 4 8-8" fill="none" stroke="currentColor" stroke-width="2"/><path d="M15 7h6v6" fill="none" stroke="currentColor" stroke-width="2"/>`,
	"target":      `<circle cx="12" cy="12" r="9" fill="none" stroke="currentColor" stroke-width="2"/><circle cx="12" cy="12" r="5" fill="none" stroke="currentColor" stroke-width="2"/><circle cx="12" cy="12" r="1.5"/>`,
	"lightbulb":   `<path d="M9 18h6M10 22h4M12 2a7 7 0 0 0-4 12c1 1 1 2 1 4h6c0-2 0-3 1-4a7 7 0 0 0-4-12z" fill="none" stroke="currentColor" stroke-width="2"/>`,
	"flag":        `<path d="M5 22V3m0 1h13l-3 4 3 4H5" fill="none" stroke="currentColor" stroke-width="2"/>`,
	"chart-bar":   `<path d="M4 20V10M10 20V4M16 20v-7M22 20H2" fill="none" stroke="currentColor" stroke-width="2"/>`,
	"users":       `<circle cx="9" cy="8" r="3.5" fill="none" stroke="currentColor" stroke-width="2"/><path d="M2 20c0-3.5 3-6 7-6s7 2.5 7 6M16 5a3.5 3.5 0 0 1 0 7m6 8c0-3-2-5-5-6" fill="none" stroke="currentColor" stroke-width="2"/>`,
	"globe":       `<circle cx="12" cy="12" r="9" fill="none" stroke="currentColor" stroke-width="2"/><path d="M3 12h18M12 3c3 3 3 15 0 18-3-3-3-15 0-18z" fill="none" stroke="currentColor" stroke-width="2"/>`,
	"shield":      `<path d="M12 2l8 3v6c0 5-3 9-8 11-5-2-8-6-8-11V5l8-3z" fill="none" stroke="currentColor" stroke-width="2"/>`,
	"clock":       `<circle cx="12" cy="12" r="9" fill="none" stroke="currentColor" stroke-width="2"/><path d="M12 7v5l3 3" fill="none" stroke="currentColor" stroke-width="2"/>`,
	"check":       `<path d="M4 13l5 5L20 6" fill="none" stroke="currentColor" stroke-width="2"/>`,
	"warning":     `<path d="M12 3L1 21h22L12 3z" fill="none" stroke="currentColor" stroke-width="2"/><path d="M12 10v5" stroke="currentColor" stroke-width="2"/><circle cx="12" cy="18" r="1"/>`,
}

// BuiltinResolver resolves from the compiled-in glyph table only.
type BuiltinResolver struct{}

// NewBuiltinResolver creates the offline resolver.
func NewBuiltinResolver() Resolver {
	return &BuiltinResolver{}
}

// Resolve looks up the builtin table. Namespaced names ("lucide/rocket")
// fall back to their bare slug.
func (r *BuiltinResolver) Resolve(ctx context.Context, name string) (string, bool, error) {
	if glyph, ok := builtin[name]; ok {
		return glyph, true, nil
	}
	if _, bare, ok := strings.Cut(name, "/"); ok {
		if glyph, found := builtin[bare]; found {
			return glyph, true, nil
		}
	}
	return "", false, nil
}

// Builtin returns the names in the builtin glyph table.
func Builtin() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	return names
}

// ResolveAll resolves every icon referenced by names, skipping unknowns.
// The returned map is suitable for storyboard.WithIcons.
func ResolveAll(ctx context.Context, r Resolver, names []string) (map[string]string, error) {
	out := make(map[string]string)
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, done := out[name]; done {
			continue
		}
		glyph, ok, err := r.Resolve(ctx, name)
		if err != nil {
			return nil, err
		}
		if ok {
			out[name] = glyph
		}
	}
	return out, nil
}
