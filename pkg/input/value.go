package input

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Value is a raw field value: either a single scalar or an ordered list of
// scalars, such as the values of a checkbox group. The zero Value is a nil scalar.
type Value struct {
	scalar any
	list   []any
	isList bool
}

// Scalar wraps a single value.
func Scalar(v any) Value {
	return Value{scalar: v}
}

// List wraps an ordered list of values. The items are copied.
func List(items ...any) Value {
	list := make([]any, len(items))
	copy(list, items)
	return Value{list: list, isList: true}
}

// Of wraps v as a List when it is a slice of scalars and as a Scalar otherwise.
func Of(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case []any:
		return List(t...)
	case []string:
		items := make([]any, len(t))
		for i, s := range t {
			items[i] = s
		}
		return Value{list: items, isList: true}
	default:
		return Scalar(v)
	}
}

// IsList reports whether the value holds a list.
func (v Value) IsList() bool {
	return v.isList
}

// Scalar returns the scalar, or nil for a list.
func (v Value) Scalar() any {
	if v.isList {
		return nil
	}
	return v.scalar
}

// List returns a copy of the items, or nil for a scalar.
func (v Value) List() []any {
	if !v.isList {
		return nil
	}
	out := make([]any, len(v.list))
	copy(out, v.list)
	return out
}

// Len returns the number of list items, or 1 for a scalar.
func (v Value) Len() int {
	if v.isList {
		return len(v.list)
	}
	return 1
}

// Map applies fn to the scalar, or to every list item preserving order and length.
func (v Value) Map(fn func(any) any) Value {
	if !v.isList {
		return Scalar(fn(v.scalar))
	}
	out := make([]any, len(v.list))
	for i, item := range v.list {
		out[i] = fn(item)
	}
	return Value{list: out, isList: true}
}

// IsEmpty reports whether the value is nil, an empty string or an empty list.
func (v Value) IsEmpty() bool {
	if v.isList {
		return len(v.list) == 0
	}
	switch s := v.scalar.(type) {
	case nil:
		return true
	case string:
		return s == ""
	default:
		return false
	}
}

// Interface returns the scalar, or the list as []any.
func (v Value) Interface() any {
	if v.isList {
		return v.List()
	}
	return v.scalar
}

// Equal reports whether both values have the same shape and items.
func (v Value) Equal(other Value) bool {
	if v.isList != other.isList {
		return false
	}
	if !v.isList {
		return reflect.DeepEqual(v.scalar, other.scalar)
	}
	return reflect.DeepEqual(v.list, other.list)
}

func (v Value) String() string {
	if v.isList {
		return fmt.Sprint(v.list)
	}
	if v.scalar == nil {
		return ""
	}
	return fmt.Sprint(v.scalar)
}

// MarshalJSON encodes the scalar or the list.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}
