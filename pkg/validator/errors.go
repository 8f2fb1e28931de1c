package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidParams marks a schema validator whose parameters cannot be
	// used. Such validators are skipped.
	ErrInvalidParams = errors.New("invalid validator parameters")
)
