package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// =============================================================================
// Slug Generation
// =============================================================================

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSeparators   = regexp.MustCompile(`[\s-]+`)
)

// NormalizeSlug derives a URL-safe slug from a title: lowercase, trim,
// strip everything outside [a-z0-9\s-], collapse whitespace and hyphen
// runs to a single hyphen. A title with no latinizable characters (e.g.
// all emoji) yields a short random token so the slug is never empty.
func NormalizeSlug(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugSeparators.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if slug == "" {
		return RandomSlugToken()
	}
	return slug
}

// RandomSlugToken returns a short random alphanumeric token
func RandomSlugToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// SlugWithSuffix appends the numeric disambiguation suffix to a base slug.
// Attempt 0 is the base slug itself.
func SlugWithSuffix(base string, attempt int) string {
	if attempt == 0 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, attempt)
}
