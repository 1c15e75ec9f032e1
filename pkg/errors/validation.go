package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateOutputPath validates an output file path for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}

// iconNameRegex matches valid icon identifiers: lowercase slug form,
// optionally namespaced with a single slash (e.g. "lucide/rocket").
var iconNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*(/[a-z0-9][a-z0-9-]*)?$`)

// ValidateIconName validates an icon identifier.
// Icon names travel into URLs and cache keys, so the rules are conservative.
func ValidateIconName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "icon name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidInput, "icon name too long (max 128 characters)")
	}

	if !iconNameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid icon name: %q", name)
	}

	return nil
}

// shareTokenRegex matches share tokens: UUID form, lowercase.
var shareTokenRegex = regexp.MustCompile(`^[a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12}$`)

// ValidateShareToken validates a share token before it touches storage.
func ValidateShareToken(token string) error {
	if token == "" {
		return New(ErrCodeInvalidInput, "share token cannot be empty")
	}

	if !shareTokenRegex.MatchString(token) {
		return New(ErrCodeShareNotFound, "malformed share token")
	}

	return nil
}
