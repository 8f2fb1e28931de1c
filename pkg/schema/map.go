package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Map is an insertion-ordered mapping from string keys to schema nodes.
// Values are scalars (string, bool, int, float64, nil), lists ([]any) or
// nested *Map nodes. The zero value is not usable; create maps with NewMap
// or MapOf. A nil *Map behaves as an empty, read-only map.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{values: make(map[string]any)}
}

// MapOf builds a Map from alternating key/value arguments.
// It panics when a key is not a string or a value is missing, which makes it
// suitable for literals in code and tests only.
//
//	schema.MapOf("min", 5, "max", 10)
func MapOf(pairs ...any) *Map {
	if len(pairs)%2 != 0 {
		panic("schema: MapOf requires an even number of arguments")
	}
	m := NewMap()
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("schema: MapOf key at position %d is %T, not string", i, pairs[i]))
		}
		m.Set(key, pairs[i+1])
	}
	return m
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set stores value under key. A new key is appended; an existing key keeps
// its position and has its value replaced. Plain map[string]any values are
// converted to *Map with sorted keys, and typed slices become []any.
func (m *Map) Set(key string, value any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = normalize(value)
}

// Delete removes key. Missing keys are ignored.
func (m *Map) Delete(key string) {
	if m == nil {
		return
	}
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Each calls fn for every entry in insertion order.
func (m *Map) Each(fn func(key string, value any)) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}

// Clone returns a deep copy. Nested maps and lists are copied; scalars are shared.
func (m *Map) Clone() *Map {
	out := NewMap()
	m.Each(func(k string, v any) {
		out.Set(k, cloneValue(v))
	})
	return out
}

// ToMap converts the tree into plain Go maps and slices. Ordering is lost.
func (m *Map) ToMap() map[string]any {
	out := make(map[string]any, m.Len())
	m.Each(func(k string, v any) {
		out[k] = plainValue(v)
	})
	return out
}

// MarshalJSON encodes the map as a JSON object preserving key order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case *Map:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

func plainValue(v any) any {
	switch t := v.(type) {
	case *Map:
		return t.ToMap()
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = plainValue(item)
		}
		return out
	default:
		return v
	}
}
