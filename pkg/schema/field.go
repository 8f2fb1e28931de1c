package schema

// Field is a read-only view of one field definition.
type Field struct {
	Name            string
	Default         any
	HasDefault      bool
	Transformations []string
	Validators      []Validator
}

// Validator is a read-only view of one validator entry of a field.
type Validator struct {
	Name   string
	Params *Map
}

// Fields returns the field definitions in schema order.
func (s *Schema) Fields() []Field {
	fields := make([]Field, 0, s.root.Len())
	s.root.Each(func(name string, node any) {
		fields = append(fields, buildField(name, node))
	})
	return fields
}

// Field returns the definition of name.
func (s *Schema) Field(name string) (Field, bool) {
	node, ok := s.root.Get(name)
	if !ok {
		return Field{}, false
	}
	return buildField(name, node), true
}

// buildField reads a definition node. Nodes that are not mappings, such as a
// bare `name:` in YAML, are treated as empty definitions.
func buildField(name string, node any) Field {
	f := Field{Name: name}
	def, _ := node.(*Map)

	if v, ok := def.Get(KeyDefault); ok && v != nil {
		f.Default = v
		f.HasDefault = true
	}

	if v, ok := def.Get(KeyTransformations); ok {
		switch t := v.(type) {
		case string:
			f.Transformations = []string{t}
		case []any:
			for _, item := range t {
				if tname, ok := item.(string); ok {
					f.Transformations = append(f.Transformations, tname)
				}
			}
		}
	}

	if validators, ok := mapValue(def, KeyValidators); ok {
		validators.Each(func(vname string, params any) {
			p, _ := params.(*Map)
			if p == nil {
				p = NewMap()
			}
			f.Validators = append(f.Validators, Validator{Name: vname, Params: p})
		})
	}

	return f
}

// Message returns the translation key of the custom message, if any.
func (v Validator) Message() string {
	s, _ := v.String(ParamMessage)
	return s
}

// Domain returns the declared domain, or an empty string.
func (v Validator) Domain() string {
	s, _ := v.String(ParamDomain)
	return s
}

// Param returns the raw parameter stored under key.
func (v Validator) Param(key string) (any, bool) {
	return v.Params.Get(key)
}

// Int returns an integral parameter. Numeric strings are accepted.
func (v Validator) Int(key string) (int, bool) {
	p, ok := v.Param(key)
	if !ok {
		return 0, false
	}
	return toInt(p)
}

// Float returns a numeric parameter. Numeric strings are accepted.
func (v Validator) Float(key string) (float64, bool) {
	p, ok := v.Param(key)
	if !ok {
		return 0, false
	}
	return toFloat(p)
}

// Bool returns a boolean parameter.
func (v Validator) Bool(key string) (bool, bool) {
	p, ok := v.Param(key)
	if !ok {
		return false, false
	}
	return toBool(p)
}

// String returns a textual parameter. Numbers are formatted.
func (v Validator) String(key string) (string, bool) {
	p, ok := v.Param(key)
	if !ok {
		return "", false
	}
	return toStringValue(p)
}

// List returns a list parameter.
func (v Validator) List(key string) ([]any, bool) {
	p, ok := v.Param(key)
	if !ok {
		return nil, false
	}
	list, ok := p.([]any)
	return list, ok
}

// ParamsMap returns the parameters as a plain map.
func (v Validator) ParamsMap() map[string]any {
	return v.Params.ToMap()
}
