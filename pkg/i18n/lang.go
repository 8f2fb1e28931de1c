package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "en"

// NormalizeLanguage returns the canonical BCP 47 form of tag, so that
// "en_US", "EN-us" and "en-US" name the same catalog. Tags that do not
// parse are lower-cased and returned as is.
func NormalizeLanguage(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}
	parsed, err := language.Parse(strings.ReplaceAll(tag, "_", "-"))
	if err != nil {
		return strings.ToLower(tag)
	}
	return parsed.String()
}

// BaseLanguage returns the language subtag of tag: "pt" for "pt-BR".
func BaseLanguage(tag string) string {
	parsed, err := language.Parse(strings.ReplaceAll(tag, "_", "-"))
	if err != nil {
		if i := strings.IndexAny(tag, "-_"); i > 0 {
			return strings.ToLower(tag[:i])
		}
		return strings.ToLower(tag)
	}
	base, _ := parsed.Base()
	return base.String()
}

// isLanguageTag reports whether name is a known language tag with a two or
// three letter base, such as "en", "fr" or "pt_BR".
func isLanguageTag(name string) bool {
	base := name
	if i := strings.IndexAny(name, "-_"); i >= 0 {
		base = name[:i]
	}
	if len(base) < 2 || len(base) > 3 {
		return false
	}
	_, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	return err == nil
}
