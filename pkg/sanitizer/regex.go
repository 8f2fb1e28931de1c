package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Elements whose content is never text: removed together with their body.
	scriptBlockRegex = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	styleBlockRegex  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style\s*>`)

	// HTML stripping
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)
)
