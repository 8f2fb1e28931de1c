package validator

import "github.com/dmitrymomot/fortress/pkg/input"

// Integer validates that a value is an integer or a string holding one.
func Integer(field string, v input.Value) Rule {
	return newRule(field, KeyInteger, nil, func() bool {
		return !v.IsList() && IsInteger(v.Scalar())
	})
}

// Numeric validates that a value is a number or a numeric string.
func Numeric(field string, v input.Value) Rule {
	return newRule(field, KeyNumeric, nil, func() bool {
		return !v.IsList() && IsNumeric(v.Scalar())
	})
}

// Between validates that a numeric value lies within [min, max].
func Between(field string, v input.Value, min, max float64) Rule {
	return newRule(field, KeyRangeBetween, map[string]any{"min": min, "max": max}, func() bool {
		n, ok := number(v)
		return ok && n >= min && n <= max
	})
}

// Min validates that a numeric value is at least min.
func Min(field string, v input.Value, min float64) Rule {
	return newRule(field, KeyRangeMin, map[string]any{"min": min}, func() bool {
		n, ok := number(v)
		return ok && n >= min
	})
}

// Max validates that a numeric value is at most max.
func Max(field string, v input.Value, max float64) Rule {
	return newRule(field, KeyRangeMax, map[string]any{"max": max}, func() bool {
		n, ok := number(v)
		return ok && n <= max
	})
}

func number(v input.Value) (float64, bool) {
	if v.IsList() {
		return 0, false
	}
	return toNumber(v.Scalar())
}
