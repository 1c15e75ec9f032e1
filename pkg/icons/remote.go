package icons

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/conclusiv/conclusiv/pkg/httputil"
	"github.com/conclusiv/conclusiv/pkg/observability"
)

const (
	// DefaultBaseURL serves raw SVG files for the lucide icon set.
	DefaultBaseURL = "https://unpkg.com/lucide-static@latest/icons"

	httpTimeout = 10 * time.Second
)

var (
	// ErrIconNotFound is returned when the upstream set has no icon
	// with the requested name.
	ErrIconNotFound = errors.New("icon not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection
	// errors, 5xx responses).
	ErrNetwork = errors.New("network error")
)

// RemoteResolver fetches glyphs from an upstream icon set over HTTP,
// falling back to the builtin table first. Responses are cached on disk
// so repeated renders work offline.
type RemoteResolver struct {
	http    *http.Client
	cache   *httputil.Cache
	baseURL string
	refresh bool
}

// RemoteOption configures a RemoteResolver.
type RemoteOption func(*RemoteResolver)

// WithBaseURL overrides the upstream icon set URL.
func WithBaseURL(url string) RemoteOption {
	return func(r *RemoteResolver) { r.baseURL = strings.TrimSuffix(url, "/") }
}

// WithRefresh bypasses the cache and always fetches fresh glyphs.
func WithRefresh(refresh bool) RemoteOption {
	return func(r *RemoteResolver) { r.refresh = refresh }
}

// NewRemoteResolver creates a resolver backed by the given HTTP cache.
// Pass nil to create a default cache in ~/.cache/conclusiv/ with a
// 30-day TTL.
func NewRemoteResolver(cache *httputil.Cache, opts ...RemoteOption) (*RemoteResolver, error) {
	if cache == nil {
		c, err := httputil.NewCache("", 30*24*time.Hour)
		if err != nil {
			return nil, err
		}
		cache = c
	}
	r := &RemoteResolver{
		http:    &http.Client{Timeout: httpTimeout},
		cache:   cache.Namespace("icons:"),
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Resolve checks the builtin table, then the disk cache, then the
// upstream set. Unknown icons (404) resolve to ok=false without error;
// negative results are cached too so missing icons don't hit the
// network on every render.
func (r *RemoteResolver) Resolve(ctx context.Context, name string) (string, bool, error) {
	if glyph, ok := builtin[name]; ok {
		return glyph, true, nil
	}

	var glyph string
	if !r.refresh {
		if ok, _ := r.cache.Get(name, &glyph); ok {
			return glyph, glyph != "", nil
		}
	}

	err := httputil.RetryWithBackoff(ctx, func() error {
		g, fetchErr := r.fetch(ctx, name)
		glyph = g
		return fetchErr
	})
	if errors.Is(err, ErrIconNotFound) {
		_ = r.cache.Set(name, "")
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	_ = r.cache.Set(name, glyph)
	return glyph, true, nil
}

func (r *RemoteResolver) fetch(ctx context.Context, name string) (string, error) {
	slug := name
	if _, bare, ok := strings.Cut(name, "/"); ok {
		slug = bare
	}
	url := fmt.Sprintf("%s/%s.svg", r.baseURL, slug)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	observability.HTTP().OnRequest(ctx, http.MethodGet, req.URL.Host, req.URL.Path)
	start := time.Now()
	resp, err := r.http.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, http.MethodGet, req.URL.Host, req.URL.Path, err)
		return "", &httputil.RetryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	defer resp.Body.Close()
	observability.HTTP().OnResponse(ctx, http.MethodGet, req.URL.Host, req.URL.Path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		return "", err
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &httputil.RetryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	return innerSVG(string(data)), nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrIconNotFound
	case code >= 500:
		return &httputil.RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, code)}
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}

var svgTagRe = regexp.MustCompile(`(?s)<svg[^>]*>(.*)</svg>`)

// innerSVG strips the outer <svg> wrapper so the glyph can be embedded
// inside a storyboard card. Documents without a wrapper pass through.
func innerSVG(doc string) string {
	if m := svgTagRe.FindStringSubmatch(doc); len(m) == 2 {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(doc)
}

var _ Resolver = (*RemoteResolver)(nil)
