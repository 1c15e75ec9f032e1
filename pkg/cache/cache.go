// Package cache provides caching for expensive pipeline stages.
//
// Two stages are cached independently: computed plans (narrative + template
// options resolved to positions and transition sequences) and rendered
// artifacts (SVG/PNG/PDF bytes). Icon fetches over HTTP are cached as a
// third, longer-lived tier since upstream icon sets change rarely.
//
// Implementations: FileCache for CLI usage, RedisCache for server
// deployments, NullCache to disable caching entirely.
package cache

import (
	"context"
	"time"
)

// TTL constants for the different cache tiers.
const (
	// PlanTTL is how long computed plans stay cached. Plans are pure
	// functions of their inputs, so the TTL exists only to bound disk use.
	PlanTTL = 7 * 24 * time.Hour

	// ArtifactTTL is how long rendered artifacts stay cached.
	ArtifactTTL = 7 * 24 * time.Hour

	// HTTPTTL is how long upstream HTTP responses (icon fetches) stay cached.
	HTTPTTL = 30 * 24 * time.Hour
)

// Cache is the storage interface shared by all cache backends.
//
// Get returns (data, true, nil) on a hit and (nil, false, nil) on a miss;
// errors are reserved for backend failures, never for missing keys.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// PlanKeyOpts captures every input that affects plan computation.
// Adding a field here invalidates old plan cache entries, which is the point.
type PlanKeyOpts struct {
	Template string  `json:"template"`
	Canvas   float64 `json:"canvas"`
	Mobile   bool    `json:"mobile"`
}

// ArtifactKeyOpts captures every input that affects rendered output.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Width  int    `json:"width"`
	Theme  string `json:"theme"`
}

// Keyer generates cache keys for the pipeline stages.
// Implementations must be deterministic: equal inputs, equal keys.
type Keyer interface {
	// HTTPKey generates a key for an upstream HTTP response.
	HTTPKey(namespace, key string) string

	// PlanKey generates a key for a computed plan, derived from the
	// narrative content hash and the planning options.
	PlanKey(narrativeHash string, opts PlanKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact, derived from
	// the plan hash and the render options.
	ArtifactKey(planHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// HTTPKey generates a key for HTTP response caching.
// Format: http:<namespace>:<key>
func (k *DefaultKeyer) HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}

// PlanKey generates a key for plan caching.
func (k *DefaultKeyer) PlanKey(narrativeHash string, opts PlanKeyOpts) string {
	return hashKey("plan", narrativeHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", planHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
