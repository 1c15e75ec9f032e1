package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/conclusiv/conclusiv/pkg/cache"
	"github.com/conclusiv/conclusiv/pkg/narrative"
	"github.com/conclusiv/conclusiv/pkg/observability"
	"github.com/conclusiv/conclusiv/pkg/plan"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete plan → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, n *narrative.Narrative, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Plan
	planStart := time.Now()
	observability.Pipeline().OnPlanStart(ctx, opts.Template, n.SectionCount())
	p, planHit, err := r.BuildWithCacheInfo(ctx, n, opts)
	if err != nil {
		observability.Pipeline().OnPlanComplete(ctx, opts.Template, 0, time.Since(planStart), err)
		return nil, fmt.Errorf("plan: %w", err)
	}
	observability.Pipeline().OnPlanComplete(ctx, string(p.Template), p.StepCount(), time.Since(planStart), nil)
	result.Plan = p
	result.Stats.PlanTime = time.Since(planStart)
	result.Stats.StepCount = p.StepCount()
	result.CacheInfo.PlanHit = planHit

	// Compute plan hash for cache keys and API responses
	if planData, err := plan.Marshal(p); err == nil {
		result.PlanHash = cache.Hash(planData)
	}

	r.Logger.Info("computed plan",
		"template", p.Template,
		"steps", p.StepCount(),
		"duration", result.Stats.PlanTime)

	// Stage 2: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, p, opts)
	if err != nil {
		observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
		return nil, fmt.Errorf("render: %w", err)
	}
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), nil)
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// BuildWithCacheInfo computes a plan with caching and returns cache hit info.
func (r *Runner) BuildWithCacheInfo(ctx context.Context, n *narrative.Narrative, opts Options) (*plan.Plan, bool, error) {
	opts.SetPlanDefaults()

	// Compute cache key from the narrative content
	narrativeData, err := narrative.Marshal(n)
	if err != nil {
		return nil, false, err
	}
	cacheKey := r.Keyer.PlanKey(cache.Hash(narrativeData), opts.PlanKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if p, err := plan.Unmarshal(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "plan")
				return p, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
	}
	observability.Cache().OnCacheMiss(ctx, "plan")

	p := plan.Build(n, opts.Template, opts.Canvas, opts.Mobile)

	// Cache the result
	if data, err := plan.Marshal(p); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.PlanTTL)
		observability.Cache().OnCacheSet(ctx, "plan", len(data))
	}

	return p, false, nil // Cache miss
}

// Build is a convenience wrapper that calls BuildWithCacheInfo and discards the cache hit info.
func (r *Runner) Build(ctx context.Context, n *narrative.Narrative, opts Options) (*plan.Plan, error) {
	p, _, err := r.BuildWithCacheInfo(ctx, n, opts)
	return p, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, p *plan.Plan, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	// Compute cache key from plan data
	planData, err := plan.Marshal(p)
	if err != nil {
		return nil, false, fmt.Errorf("serialize plan for cache key: %w", err)
	}
	planHash := cache.Hash(planData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(planHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil // All artifacts from cache
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	// Render all formats
	rendered, err := RenderFromPlan(p, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(planHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.ArtifactTTL)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, p *plan.Plan, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, p, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
