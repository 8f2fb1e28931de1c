package validator

import (
	"encoding/json"
	"sort"
	"strings"
)

// Report maps field names to their error messages. An empty Report means the
// data is valid.
type Report map[string][]string

// Add appends message to the messages of field.
func (r Report) Add(field, message string) {
	r[field] = append(r[field], message)
}

// Has reports whether field has at least one message.
func (r Report) Has(field string) bool {
	return len(r[field]) > 0
}

// Get returns the messages of field.
func (r Report) Get(field string) []string {
	return r[field]
}

// Fields returns the fields with messages, sorted.
func (r Report) Fields() []string {
	fields := make([]string, 0, len(r))
	for field := range r {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// IsEmpty reports whether the report holds no messages.
func (r Report) IsEmpty() bool {
	return len(r) == 0
}

// Messages returns every message, grouped by field in sorted field order.
func (r Report) Messages() []string {
	var messages []string
	for _, field := range r.Fields() {
		messages = append(messages, r[field]...)
	}
	return messages
}

func (r Report) Error() string {
	if r.IsEmpty() {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(r.Messages(), "; ")
}

// MarshalJSON encodes an empty report as {} rather than null.
func (r Report) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string][]string(r))
}
