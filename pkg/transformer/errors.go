package transformer

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedField is returned by Transform under the Error policy when
	// the input carries a field the schema does not declare.
	ErrUnexpectedField = errors.New("unexpected input field")

	// ErrUnknownPolicy is returned by ParsePolicy for an unrecognised name.
	ErrUnknownPolicy = errors.New("unknown unexpected-field policy")
)

// UnexpectedFieldError names the offending input field.
type UnexpectedFieldError struct {
	Field string
}

func (e *UnexpectedFieldError) Error() string {
	return fmt.Sprintf("The field '%s' is not a valid input field.", e.Field)
}

func (e *UnexpectedFieldError) Unwrap() error {
	return ErrUnexpectedField
}
