package schema

import "errors"

var (
	// ErrInvalidFormat is returned when a schema document is neither valid YAML nor valid JSON,
	// or when its top level is not a mapping.
	ErrInvalidFormat = errors.New("schema document is neither valid YAML nor valid JSON")

	// ErrReadFile is returned when the schema file cannot be read.
	ErrReadFile = errors.New("failed to read schema file")
)
