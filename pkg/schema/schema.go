package schema

// Keys of a field definition node.
const (
	KeyDefault         = "default"
	KeyTransformations = "transformations"
	KeyValidators      = "validators"
)

// Keys with special meaning inside a validator parameter node.
const (
	ParamMessage = "message"
	ParamDomain  = "domain"
)

// Validator domains. Validators without a domain apply on both sides.
const (
	DomainClient = "client"
	DomainServer = "server"
	DomainBoth   = "both"
)

// Schema is a mutable, ordered set of field definitions.
//
// A Schema is not safe for concurrent mutation. It may be read by many
// goroutines at once as long as nobody mutates it at the same time.
type Schema struct {
	root *Map
}

// New returns an empty schema.
func New() *Schema {
	return &Schema{root: NewMap()}
}

// FromMap wraps an existing tree. A nil map yields an empty schema.
// The tree is used as is, not copied.
func FromMap(m *Map) *Schema {
	if m == nil {
		m = NewMap()
	}
	return &Schema{root: m}
}

// All returns the whole schema tree.
func (s *Schema) All() *Map {
	return s.root
}

// Clone returns an independent deep copy.
func (s *Schema) Clone() *Schema {
	return &Schema{root: s.root.Clone()}
}

// Has reports whether the schema defines field.
func (s *Schema) Has(field string) bool {
	return s.root.Has(field)
}

// Len returns the number of fields.
func (s *Schema) Len() int {
	return s.root.Len()
}

// SetDefault sets or replaces the default value of field.
func (s *Schema) SetDefault(field string, value any) *Schema {
	s.field(field).Set(KeyDefault, value)
	return s
}

// AddValidator creates or replaces the validator name on field.
// Nil params are stored as an empty parameter map.
func (s *Schema) AddValidator(field, name string, params *Map) *Schema {
	if params == nil {
		params = NewMap()
	}
	def := s.field(field)
	validators, ok := mapValue(def, KeyValidators)
	if !ok {
		validators = NewMap()
		def.Set(KeyValidators, validators)
	}
	validators.Set(name, params)
	return s
}

// RemoveValidator deletes the validator name from field. It does nothing
// when the field or the validator does not exist.
func (s *Schema) RemoveValidator(field, name string) *Schema {
	def, ok := mapValue(s.root, field)
	if !ok {
		return s
	}
	if validators, ok := mapValue(def, KeyValidators); ok {
		validators.Delete(name)
	}
	return s
}

// SetTransformations replaces the transformation list of field.
// A single name is stored as a one-element list.
func (s *Schema) SetTransformations(field string, names ...string) *Schema {
	list := make([]any, len(names))
	for i, n := range names {
		list[i] = n
	}
	s.field(field).Set(KeyTransformations, list)
	return s
}

// field returns the definition node of name, creating it when absent or
// when the existing node is not a mapping.
func (s *Schema) field(name string) *Map {
	if def, ok := mapValue(s.root, name); ok {
		return def
	}
	def := NewMap()
	s.root.Set(name, def)
	return def
}

func mapValue(m *Map, key string) (*Map, bool) {
	v, ok := m.Get(key)
	if !ok {
		return nil, false
	}
	child, ok := v.(*Map)
	return child, ok && child != nil
}
