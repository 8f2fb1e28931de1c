// Package transformer normalises untrusted input according to the
// transformation lists of a schema before it is validated.
//
// A schema field may list any of purify, escape, purge and trim. Names are
// matched case-insensitively and unknown names are ignored:
//
//	s, _ := schema.Parse([]byte(`
//	display_name:
//	  transformations: [purge, trim]
//	  default: anonymous
//	`))
//
//	t := transformer.New()
//	out, err := t.Transform(s, data, transformer.Skip)
//
// Transformations operate on string values. Lists are transformed element
// by element, and other scalars pass through unchanged.
//
// The OnUnexpectedVar policy decides what happens to input fields the schema
// does not declare: Skip drops them, Allow keeps them unchanged and Error
// fails with an *UnexpectedFieldError.
package transformer
