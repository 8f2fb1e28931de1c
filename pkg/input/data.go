package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned when JSON input is malformed or its top level is not an object.
var ErrInvalidJSON = errors.New("input must be a JSON object")

// Data is an insertion-ordered map of field names to raw values.
// It is not safe for concurrent mutation.
type Data struct {
	keys   []string
	values map[string]Value
}

// NewData returns an empty Data.
func NewData() *Data {
	return &Data{values: make(map[string]Value)}
}

// Set stores v under name. Existing names keep their position.
func (d *Data) Set(name string, v Value) *Data {
	if _, ok := d.values[name]; !ok {
		d.keys = append(d.keys, name)
	}
	d.values[name] = v
	return d
}

// Get returns the value of name.
func (d *Data) Get(name string) (Value, bool) {
	if d == nil {
		return Value{}, false
	}
	v, ok := d.values[name]
	return v, ok
}

// Has reports whether name is present.
func (d *Data) Has(name string) bool {
	_, ok := d.Get(name)
	return ok
}

// Delete removes name.
func (d *Data) Delete(name string) {
	if d == nil {
		return
	}
	if _, ok := d.values[name]; !ok {
		return
	}
	delete(d.values, name)
	for i, k := range d.keys {
		if k == name {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
}

// Keys returns field names in insertion order.
func (d *Data) Keys() []string {
	if d == nil {
		return nil
	}
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Len returns the number of fields.
func (d *Data) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Each calls fn for every field in insertion order.
func (d *Data) Each(fn func(name string, v Value)) {
	if d == nil {
		return
	}
	for _, k := range d.keys {
		fn(k, d.values[k])
	}
}

// ToMap converts the data to a plain map; lists become []any.
func (d *Data) ToMap() map[string]any {
	out := make(map[string]any, d.Len())
	d.Each(func(name string, v Value) {
		out[name] = v.Interface()
	})
	return out
}

// MarshalJSON encodes the data as a JSON object preserving field order.
func (d *Data) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(d.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// FromMap builds Data from a plain map. Keys are sorted so the result is
// stable; slices become lists.
func FromMap(m map[string]any) *Data {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	d := NewData()
	for _, k := range keys {
		d.Set(k, Of(m[k]))
	}
	return d
}

// FromJSON builds Data from a JSON object, preserving field order.
// Arrays become lists; integral numbers decode as int, others as float64.
func FromJSON(content []byte) (*Data, error) {
	if !gjson.ValidBytes(content) {
		return nil, ErrInvalidJSON
	}
	root := gjson.ParseBytes(content)
	if !root.IsObject() {
		return nil, ErrInvalidJSON
	}

	d := NewData()
	root.ForEach(func(k, v gjson.Result) bool {
		if v.IsArray() {
			var items []any
			v.ForEach(func(_, item gjson.Result) bool {
				items = append(items, jsonScalar(item))
				return true
			})
			d.Set(k.String(), List(items...))
			return true
		}
		d.Set(k.String(), Scalar(jsonScalar(v)))
		return true
	})
	return d, nil
}

// UnmarshalJSON implements json.Unmarshaler with FromJSON semantics.
func (d *Data) UnmarshalJSON(content []byte) error {
	parsed, err := FromJSON(content)
	if err != nil {
		return err
	}
	*d = *parsed
	return nil
}

// jsonScalar decodes a JSON value. Nested objects stay map[string]any.
func jsonScalar(r gjson.Result) any {
	if r.Type == gjson.Number {
		if i, err := strconv.Atoi(r.Raw); err == nil {
			return i
		}
		return r.Float()
	}
	return r.Value()
}

// FromValues builds Data from form or query values. Fields with one value
// become scalars and fields with several become lists. A "name[]" key always
// yields a list stored under "name". Keys are sorted for a stable order.
func FromValues(values url.Values) *Data {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	d := NewData()
	for _, k := range keys {
		vs := values[k]
		if name, ok := strings.CutSuffix(k, "[]"); ok {
			d.Set(name, Of(vs))
			continue
		}
		if len(vs) == 1 {
			d.Set(k, Scalar(vs[0]))
			continue
		}
		d.Set(k, Of(vs))
	}
	return d
}
