// Package httputil provides HTTP utilities for upstream API clients.
//
// # Overview
//
// This package provides infrastructure used by clients that fetch remote
// resources (currently the icon resolver):
//
//   - [Cache]: File-based HTTP response caching
//   - [Retry]: Automatic retry with exponential backoff
//
// # Caching
//
// [Cache] stores HTTP responses in the filesystem (~/.cache/conclusiv/)
// with configurable TTL. This dramatically speeds up repeated operations
// and reduces load on upstream icon sets.
//
// Usage:
//
//	cache, err := httputil.NewCache("", 24*time.Hour)
//	ok, _ := cache.Get("icons:rocket", &glyph)  // Check cache
//	if !ok {
//	    glyph = fetchFromAPI()
//	    cache.Set("icons:rocket", glyph)        // Store for later
//	}
//
// Cache keys should be namespaced by source to avoid collisions.
//
// # Retry
//
// [Retry] wraps HTTP requests with automatic retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// It uses exponential backoff to avoid thundering herd:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    return fetchIcon(name)
//	})
//
// # Configuration
//
// Default settings are suitable for most use cases:
//
//   - Cache directory: ~/.cache/conclusiv/
//   - Max retries: 3
//   - Base backoff: 1 second
//
// The cache can be cleared via `conclusiv cache clear` or by deleting
// the cache directory.
package httputil
