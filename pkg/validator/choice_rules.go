package validator

import "github.com/dmitrymomot/fortress/pkg/input"

// Equals validates that a value equals target. See EqualsValue.
func Equals(field string, v input.Value, target any, caseSensitive bool) Rule {
	return newRule(field, KeyEquals, map[string]any{"value": target, "caseSensitive": caseSensitive}, func() bool {
		return !v.IsList() && EqualsValue(v.Scalar(), target, caseSensitive)
	})
}

// NotEquals validates that a value differs from target.
func NotEquals(field string, v input.Value, target any, caseSensitive bool) Rule {
	return newRule(field, KeyNotEquals, map[string]any{"value": target, "caseSensitive": caseSensitive}, func() bool {
		return !v.IsList() && NotEqualsValue(v.Scalar(), target, caseSensitive)
	})
}

// InList validates that a value is one of values, comparing type and value.
// For a list every item must be allowed.
func InList(field string, v input.Value, values []any) Rule {
	return newRule(field, KeyMemberOf, map[string]any{"values": values}, func() bool {
		for _, item := range items(v) {
			if !MemberOf(item, values, true) {
				return false
			}
		}
		return true
	})
}

// NotInList validates that a value is none of values.
// For a list no item may be forbidden.
func NotInList(field string, v input.Value, values []any) Rule {
	return newRule(field, KeyNotMemberOf, map[string]any{"values": values}, func() bool {
		for _, item := range items(v) {
			if MemberOf(item, values, true) {
				return false
			}
		}
		return true
	})
}

// SameAs validates that a value equals the value of the other field.
// It fails when the other field is absent.
func SameAs(field string, v input.Value, other string, data *input.Data) Rule {
	return newRule(field, KeyMatches, map[string]any{"other": other}, func() bool {
		ov, ok := data.Get(other)
		return ok && sameValue(v, ov)
	})
}

// DifferentFrom validates that a value differs from the value of the other
// field. It fails when the other field is absent.
func DifferentFrom(field string, v input.Value, other string, data *input.Data) Rule {
	return newRule(field, KeyNotMatches, map[string]any{"other": other}, func() bool {
		ov, ok := data.Get(other)
		return ok && !sameValue(v, ov)
	})
}

func sameValue(a, b input.Value) bool {
	if a.IsList() || b.IsList() {
		return a.Equal(b)
	}
	return looseEqual(a.Scalar(), b.Scalar())
}

func items(v input.Value) []any {
	if v.IsList() {
		return v.List()
	}
	return []any{v.Scalar()}
}
