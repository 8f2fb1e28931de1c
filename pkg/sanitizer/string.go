package sanitizer

import (
	"html"
	"strings"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeWhitespace collapses runs of whitespace into one space and trims the result.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// EscapeHTML encodes <, >, &, ' and " as HTML entities so the value can be
// displayed literally. Tags are kept as text, not removed.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// StripHTML removes every HTML tag and keeps only the text content.
// Script and style elements are removed together with their bodies.
// Entities are left encoded, which makes the function idempotent.
func StripHTML(s string) string {
	s = scriptBlockRegex.ReplaceAllString(s, "")
	s = styleBlockRegex.ReplaceAllString(s, "")
	return htmlTagRegex.ReplaceAllString(s, "")
}
