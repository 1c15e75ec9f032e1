// Package pipeline provides the core presentation pipeline for Conclusiv.
//
// This package implements the complete plan → render pipeline that can be
// used by CLI, API, and worker components. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Plan: Resolve a narrative against a template into positions,
//     transitions, and content animations
//  2. Render: Generate output in various formats (SVG, PNG, PDF, JSON, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Template: "zoom_reveal",
//	    Formats:  []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, n, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Plan only
//	p, err := runner.Build(ctx, n, opts)
//
//	// Render an existing plan
//	artifacts, err := runner.Render(ctx, p, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/conclusiv/conclusiv/pkg/cache"
	"github.com/conclusiv/conclusiv/pkg/plan"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Worker
// =============================================================================

const (
	// DefaultCanvas is the default canvas dimension in pixels.
	DefaultCanvas = plan.DefaultCanvas

	// DefaultScale is the default PNG scale factor.
	DefaultScale = 2.0

	// DefaultFrames is the default number of eased camera frames per step
	// in JSON output. Zero means clients interpolate themselves.
	DefaultFrames = 0

	// DefaultTheme is the default color theme.
	DefaultTheme = "dark"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidThemes is the set of supported color themes.
var ValidThemes = map[string]bool{
	"dark":  true,
	"light": true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the presentation pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Plan options. An unknown or empty Template resolves to the default
	// template rather than failing; that fallback is part of the contract.
	Template string  `json:"template,omitempty"`
	Canvas   float64 `json:"canvas,omitempty"`
	Mobile   bool    `json:"mobile,omitempty"`
	Refresh  bool    `json:"refresh,omitempty"`

	// Render options
	Formats          []string `json:"formats,omitempty"`
	Theme            string   `json:"theme,omitempty"`
	Scale            float64  `json:"scale,omitempty"`
	Frames           int      `json:"frames,omitempty"`
	Animations       bool     `json:"animations,omitempty"`
	TransitionLabels bool     `json:"transition_labels,omitempty"`
	Detailed         bool     `json:"detailed,omitempty"` // detailed DOT labels

	// Runtime options (not serialized)
	Logger *log.Logger       `json:"-"`
	Icons  map[string]string `json:"-"` // resolved icon glyphs by name

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Plan is the computed presentation plan.
	Plan *plan.Plan

	// PlanHash is the content hash of the plan.
	PlanHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	StepCount  int
	PlanTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	PlanHit   bool // Whether the plan came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, pdf, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateTheme checks that a theme is valid.
func ValidateTheme(theme string) error {
	if !ValidThemes[theme] {
		return fmt.Errorf("invalid theme: %q (must be one of: dark, light)", theme)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetPlanDefaults()
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateTheme(o.Theme); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetPlanDefaults sets default values for plan computation.
func (o *Options) SetPlanDefaults() {
	if o.Canvas == 0 {
		o.Canvas = DefaultCanvas
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateTheme(o.Theme)
}

// PlanKeyOpts returns cache key options for plan computation.
func (o *Options) PlanKeyOpts() cache.PlanKeyOpts {
	return cache.PlanKeyOpts{
		Template: o.Template,
		Canvas:   o.Canvas,
		Mobile:   o.Mobile,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Theme:  o.Theme,
		Width:  renderVariant(o, format),
	}
}

// renderVariant folds format-specific render options into one int so the
// artifact key changes when they do.
func renderVariant(o *Options, format string) int {
	v := 0
	if o.Animations {
		v |= 1
	}
	if o.TransitionLabels {
		v |= 2
	}
	if o.Detailed {
		v |= 4
	}
	if format == FormatJSON {
		v |= o.Frames << 3
	}
	if format == FormatPNG {
		v |= int(o.Scale*100) << 3
	}
	return v
}
