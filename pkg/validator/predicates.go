package validator

import (
	"math"
	"regexp"
	"strings"
	"sync"
	"unicode"

	playground "github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
)

var (
	phoneUSRegex  = regexp.MustCompile(`^(\+?1-?)?(\([2-9]([02-9]\d|1[02-9])\)|[2-9]([02-9]\d|1[02-9]))-?[2-9]\d{2}-?\d{4}$`)
	usernameRegex = regexp.MustCompile(`(?i)^([a-z0-9.\-_])+$`)

	noLeadingWhitespaceRegex  = regexp.MustCompile(`^\S.*$`)
	noTrailingWhitespaceRegex = regexp.MustCompile(`^.*\S$`)
)

var (
	formatValidator *playground.Validate
	formatOnce      sync.Once
)

func format() *playground.Validate {
	formatOnce.Do(func() {
		formatValidator = playground.New()
	})
	return formatValidator
}

// EqualsValue reports whether value equals target. Numeric strings equal the
// numbers they denote. Unless caseSensitive is set, textual values are
// compared after case folding.
func EqualsValue(value, target any, caseSensitive bool) bool {
	if !caseSensitive {
		if s, ok := value.(string); ok {
			fold := cases.Fold()
			value = fold.String(s)
			if t, ok := target.(string); ok {
				target = fold.String(t)
			}
		}
	}
	return looseEqual(value, target)
}

// NotEqualsValue is the negation of EqualsValue.
func NotEqualsValue(value, target any, caseSensitive bool) bool {
	return !EqualsValue(value, target, caseSensitive)
}

// PhoneUS reports whether value is a US phone number. Whitespace is ignored.
// Area codes and exchanges may not start with 0 or 1; an optional 1 or +1
// prefix, parentheses around the area code and dashes are accepted.
func PhoneUS(value string) bool {
	value = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, value)
	return len(value) > 9 && phoneUSRegex.MatchString(value)
}

// Username reports whether value consists only of letters, digits, dots,
// dashes and underscores.
func Username(value string) bool {
	return usernameRegex.MatchString(value)
}

// NoLeadingWhitespace reports whether value starts with a non-space character.
func NoLeadingWhitespace(value string) bool {
	return noLeadingWhitespaceRegex.MatchString(value)
}

// NoTrailingWhitespace reports whether value ends with a non-space character.
func NoTrailingWhitespace(value string) bool {
	return noTrailingWhitespaceRegex.MatchString(value)
}

// MemberOf reports whether value is one of values. In strict mode type and
// value must both match; otherwise values are compared loosely.
func MemberOf(value any, values []any, strict bool) bool {
	for _, candidate := range values {
		if strict && strictEqual(value, candidate) {
			return true
		}
		if !strict && looseEqual(value, candidate) {
			return true
		}
	}
	return false
}

// IsInteger reports whether value is an integer or a string holding one.
// Integral floats count as integers.
func IsInteger(value any) bool {
	switch v := value.(type) {
	case string:
		return integerRegex.MatchString(strings.TrimSpace(v))
	case float32, float64:
		f, ok := toNumber(v)
		return ok && f == math.Trunc(f)
	default:
		return isNumberType(value)
	}
}

// IsNumeric reports whether value is a number or a numeric string.
func IsNumeric(value any) bool {
	_, ok := toNumber(value)
	return ok
}

// IsEmail reports whether value is a syntactically valid email address.
func IsEmail(value string) bool {
	return format().Var(value, "required,email") == nil
}

// IsURL reports whether value is a syntactically valid absolute URL.
func IsURL(value string) bool {
	return format().Var(value, "required,url") == nil
}
