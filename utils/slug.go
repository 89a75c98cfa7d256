package utils

import (
	"regexp"
	"strings"
)

var (
	slugPattern    = regexp.MustCompile(`^[a-z0-9_-]+$`)
	slugDisallowed = regexp.MustCompile(`[^a-z0-9_-]+`)
	slugCollapse   = regexp.MustCompile(`-+`)
)

// IsValidSlug reports whether s is a URL-safe identifier: lowercase
// latin letters, digits, hyphen, underscore.
func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// Slugify normalizes input into a URL-safe slug.
func Slugify(input string) string {
	lower := strings.ToLower(strings.TrimSpace(input))
	hyphenated := strings.ReplaceAll(lower, " ", "-")
	cleaned := slugDisallowed.ReplaceAllString(hyphenated, "")
	collapsed := slugCollapse.ReplaceAllString(cleaned, "-")
	return strings.Trim(collapsed, "-")
}
