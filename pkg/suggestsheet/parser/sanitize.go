package parser

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// Sanitize removes markup tags from raw and trims surrounding whitespace.
// Malformed markup is left in place; the function never fails.
func Sanitize(raw string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(raw, ""))
}
