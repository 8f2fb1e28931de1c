package validator

import (
	"fmt"
	"maps"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/fortress/pkg/sanitizer"
)

// RuleName identifies a validator that a schema may declare.
type RuleName uint8

const (
	RuleUnknown RuleName = iota
	RuleArray
	RuleEmail
	RuleEquals
	RuleNotEquals
	RuleInteger
	RuleNumeric
	RuleLength
	RuleMatches
	RuleNotMatches
	RuleMemberOf
	RuleNotMemberOf
	RuleNoLeadingWhitespace
	RuleNoTrailingWhitespace
	RuleRange
	RuleRegex
	RuleRequired
	RuleTelephone
	RuleURI
	RuleUsername
	RuleUUID
)

var ruleNames = map[string]RuleName{
	"array":                  RuleArray,
	"email":                  RuleEmail,
	"equals":                 RuleEquals,
	"not_equals":             RuleNotEquals,
	"integer":                RuleInteger,
	"numeric":                RuleNumeric,
	"length":                 RuleLength,
	"matches":                RuleMatches,
	"not_matches":            RuleNotMatches,
	"member_of":              RuleMemberOf,
	"not_member_of":          RuleNotMemberOf,
	"no_leading_whitespace":  RuleNoLeadingWhitespace,
	"no_trailing_whitespace": RuleNoTrailingWhitespace,
	"range":                  RuleRange,
	"regex":                  RuleRegex,
	"required":               RuleRequired,
	"telephone":              RuleTelephone,
	"uri":                    RuleURI,
	"username":               RuleUsername,
	"uuid":                   RuleUUID,
}

// ParseRuleName maps a schema validator name to its rule. Names are matched
// exactly; anything else is RuleUnknown.
func ParseRuleName(name string) RuleName {
	return ruleNames[name]
}

func (n RuleName) String() string {
	for name, rule := range ruleNames {
		if rule == n {
			return name
		}
	}
	return "unknown"
}

// Translation keys of the built-in messages.
const (
	KeyArray                = "validation.array"
	KeyEmail                = "validation.email"
	KeyEquals               = "validation.equals"
	KeyNotEquals            = "validation.not_equals"
	KeyInteger              = "validation.integer"
	KeyNumeric              = "validation.numeric"
	KeyLengthBetween        = "validation.length_between"
	KeyLengthMin            = "validation.length_min"
	KeyLengthMax            = "validation.length_max"
	KeyMatches              = "validation.matches"
	KeyNotMatches           = "validation.not_matches"
	KeyMemberOf             = "validation.member_of"
	KeyNotMemberOf          = "validation.not_member_of"
	KeyNoLeadingWhitespace  = "validation.no_leading_whitespace"
	KeyNoTrailingWhitespace = "validation.no_trailing_whitespace"
	KeyRangeBetween         = "validation.range_between"
	KeyRangeMin             = "validation.range_min"
	KeyRangeMax             = "validation.range_max"
	KeyRegex                = "validation.regex"
	KeyRequired             = "validation.required"
	KeyTelephone            = "validation.telephone"
	KeyURI                  = "validation.uri"
	KeyUsername             = "validation.username"
	KeyUUID                 = "validation.uuid"
)

// DefaultMessages holds the English message of every built-in rule.
// Placeholders in braces are replaced by the translation values of the
// error; {field} is replaced by the field label.
var DefaultMessages = map[string]string{
	KeyArray:                "{field} must be an array",
	KeyEmail:                "{field} is not a valid email address",
	KeyEquals:               "{field} must be equal to '{value}'",
	KeyNotEquals:            "{field} must not be equal to '{value}'",
	KeyInteger:              "{field} must be an integer",
	KeyNumeric:              "{field} must be numeric",
	KeyLengthBetween:        "{field} must be between {min} and {max} characters long",
	KeyLengthMin:            "{field} must be at least {min} characters long",
	KeyLengthMax:            "{field} must be at most {max} characters long",
	KeyMatches:              "{field} must be the same as '{other}'",
	KeyNotMatches:           "{field} must be different than '{other}'",
	KeyMemberOf:             "{field} contains invalid value",
	KeyNotMemberOf:          "{field} contains invalid value",
	KeyNoLeadingWhitespace:  "{field} must not begin with whitespace",
	KeyNoTrailingWhitespace: "{field} must not end with whitespace",
	KeyRangeBetween:         "{field} must be between {min} and {max}",
	KeyRangeMin:             "{field} must be at least {min}",
	KeyRangeMax:             "{field} must be no more than {max}",
	KeyRegex:                "{field} contains invalid characters",
	KeyRequired:             "{field} is required",
	KeyTelephone:            "{field} must be a valid US phone number",
	KeyURI:                  "{field} is not a valid URL",
	KeyUsername:             "{field} may only contain letters, numbers, '.', '-' and '_'",
	KeyUUID:                 "{field} must be a valid UUID",
}

// Label turns a field name into its display form: underscores become
// single spaces and every word starts with a capital letter.
func Label(field string) string {
	words := sanitizer.NormalizeWhitespace(strings.ReplaceAll(field, "_", " "))
	return cases.Title(language.English, cases.NoLower).String(words)
}

// Interpolate replaces {name} placeholders in message with values.
// {field} is replaced by the label of values["field"].
func Interpolate(message string, values map[string]any) string {
	if !strings.Contains(message, "{") {
		return message
	}
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		if k == "field" {
			if s, ok := v.(string); ok {
				v = Label(s)
			}
		}
		pairs = append(pairs, "{"+k+"}", formatParam(v))
	}
	return strings.NewReplacer(pairs...).Replace(message)
}

func formatParam(v any) string {
	switch p := v.(type) {
	case string:
		return p
	case []any:
		items := make([]string, len(p))
		for i, item := range p {
			items[i] = formatParam(item)
		}
		return strings.Join(items, ", ")
	case nil:
		return ""
	default:
		if s, ok := scalarString(p); ok {
			return s
		}
		return fmt.Sprint(p)
	}
}

func newRule(field, key string, params map[string]any, check func() bool) Rule {
	values := map[string]any{"field": field}
	maps.Copy(values, params)

	return Rule{
		Check: check,
		Error: ValidationError{
			Field:             field,
			Message:           Interpolate(DefaultMessages[key], values),
			TranslationKey:    key,
			TranslationValues: values,
		},
	}
}
