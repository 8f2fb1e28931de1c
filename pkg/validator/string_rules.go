package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/fortress/pkg/input"
)

// text returns the textual form of a scalar. Lists, booleans and nil have none.
func text(v input.Value) (string, bool) {
	if v.IsList() {
		return "", false
	}
	switch s := v.Scalar().(type) {
	case string:
		return s, true
	case bool, nil:
		return "", false
	default:
		return scalarString(s)
	}
}

// Required validates that a value is present: not nil, not blank after
// trimming whitespace, and not an empty list.
func Required(field string, v input.Value) Rule {
	return newRule(field, KeyRequired, nil, func() bool {
		if v.IsList() {
			return v.Len() > 0
		}
		switch s := v.Scalar().(type) {
		case nil:
			return false
		case string:
			return strings.TrimSpace(s) != ""
		default:
			return true
		}
	})
}

// LengthBetween validates that a value has between min and max characters.
func LengthBetween(field string, v input.Value, min, max int) Rule {
	return newRule(field, KeyLengthBetween, map[string]any{"min": min, "max": max}, func() bool {
		s, ok := text(v)
		n := utf8.RuneCountInString(s)
		return ok && n >= min && n <= max
	})
}

// MinLength validates that a value has at least min characters.
func MinLength(field string, v input.Value, min int) Rule {
	return newRule(field, KeyLengthMin, map[string]any{"min": min}, func() bool {
		s, ok := text(v)
		return ok && utf8.RuneCountInString(s) >= min
	})
}

// MaxLength validates that a value has at most max characters.
func MaxLength(field string, v input.Value, max int) Rule {
	return newRule(field, KeyLengthMax, map[string]any{"max": max}, func() bool {
		s, ok := text(v)
		return ok && utf8.RuneCountInString(s) <= max
	})
}

// Pattern validates that a value contains a match of re.
func Pattern(field string, v input.Value, re *regexp.Regexp) Rule {
	return newRule(field, KeyRegex, map[string]any{"regex": re.String()}, func() bool {
		s, ok := text(v)
		return ok && re.MatchString(s)
	})
}

// NoLeadingSpace validates that a value does not begin with whitespace.
func NoLeadingSpace(field string, v input.Value) Rule {
	return newRule(field, KeyNoLeadingWhitespace, nil, func() bool {
		s, ok := text(v)
		return ok && NoLeadingWhitespace(s)
	})
}

// NoTrailingSpace validates that a value does not end with whitespace.
func NoTrailingSpace(field string, v input.Value) Rule {
	return newRule(field, KeyNoTrailingWhitespace, nil, func() bool {
		s, ok := text(v)
		return ok && NoTrailingWhitespace(s)
	})
}
