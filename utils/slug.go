package utils

import (
	"strconv"
	"strings"
	"unicode"
)

// DefaultSlug is used when a title has no letters or digits.
const DefaultSlug = "news"

// Slugify lowercases s, keeps letters and digits, and collapses every
// other run of characters into a single hyphen.
func Slugify(s string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash && b.Len() > 0 {
			b.WriteRune('-')
			lastDash = true
		}
	}

	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return DefaultSlug
	}
	return slug
}

// SlugCandidate returns the n-th candidate for base: base itself for
// n <= 1, otherwise base-n.
func SlugCandidate(base string, n int) string {
	if n <= 1 {
		return base
	}
	return base + "-" + strconv.Itoa(n)
}
