// Package input models untrusted request input as ordered field values.
//
// A field value is either a scalar or an ordered list of scalars (checkbox
// groups, multi-selects). Value makes that distinction explicit so code that
// transforms or validates input handles both cases without type switches on
// interface{} values. Data keeps fields in the order they arrived, which
// keeps transformation output and error reports reproducible.
//
// Data can be built from JSON bodies (FromJSON), form or query values
// (FromValues) or plain maps (FromMap).
package input
