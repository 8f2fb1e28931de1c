package validator

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var (
	numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)
	integerRegex = regexp.MustCompile(`^[+-]?(0|[1-9]\d*)$`)
)

// toNumber converts numeric types and numeric strings to float64.
func toNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case float32:
		f = float64(n)
	case float64:
		f = n
	case string:
		s := strings.TrimSpace(n)
		if !numericRegex.MatchString(s) {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// isNumberType reports whether v holds a Go numeric type.
func isNumberType(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

// scalarString formats a scalar the way it would be submitted in a form.
func scalarString(v any) (string, bool) {
	switch s := v.(type) {
	case nil:
		return "", true
	case string:
		return s, true
	case bool:
		return strconv.FormatBool(s), true
	}
	if f, ok := toNumber(v); ok && isNumberType(v) {
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return "", false
}

// looseEqual compares two scalars the way form input is compared: numeric
// values are equal when they denote the same number, whatever their type.
func looseEqual(a, b any) bool {
	if fa, ok := toNumber(a); ok {
		if fb, ok := toNumber(b); ok {
			return fa == fb
		}
	}
	sa, okA := scalarString(a)
	sb, okB := scalarString(b)
	if okA && okB {
		return sa == sb
	}
	return reflect.DeepEqual(a, b)
}

// strictEqual compares type and value. All numeric types count as one type.
func strictEqual(a, b any) bool {
	if isNumberType(a) && isNumberType(b) {
		fa, _ := toNumber(a)
		fb, _ := toNumber(b)
		return fa == fb
	}
	return reflect.DeepEqual(a, b)
}
