// Package schema holds request schemas: declarative, ordered per-field rule
// sets describing defaults, transformations and validators.
//
// A schema document maps field names to definitions:
//
//	email:
//	  transformations: [trim]
//	  validators:
//	    required:
//	      message: VALIDATE.REQUIRED
//	    email: {}
//	display_name:
//	  default: Anonymous
//	  transformations: trim
//	  validators:
//	    length:
//	      min: 1
//	      max: 50
//	      domain: client
//
// Documents are read with Load, Parse or a Loader. YAML is attempted first
// and JSON is used as a fallback; a document that is neither fails with
// ErrInvalidFormat. Field and validator order is the document order, so rule
// evaluation and error reports are reproducible.
//
// Schemas may be changed between uses with SetDefault, AddValidator,
// RemoveValidator, SetTransformations and MergeItems. Each of these creates
// the field when it is missing. There is no internal locking: a schema must
// not be mutated while another goroutine reads it.
package schema
