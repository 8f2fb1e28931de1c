package validator

import "github.com/dmitrymomot/fortress/pkg/input"

// Array validates that a value is a list.
func Array(field string, v input.Value) Rule {
	return newRule(field, KeyArray, nil, v.IsList)
}
