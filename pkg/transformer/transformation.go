package transformer

import (
	"fmt"
	"strings"
)

// Transformation is one of the named string transformations a schema field
// may list. Names outside the vocabulary parse to Unknown, which is a no-op.
type Transformation uint8

const (
	Unknown Transformation = iota
	Purify
	Escape
	Purge
	Trim
)

var transformationNames = map[Transformation]string{
	Purify: "purify",
	Escape: "escape",
	Purge:  "purge",
	Trim:   "trim",
}

// ParseTransformation matches name case-insensitively.
func ParseTransformation(name string) Transformation {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "purify":
		return Purify
	case "escape":
		return Escape
	case "purge":
		return Purge
	case "trim":
		return Trim
	default:
		return Unknown
	}
}

func (t Transformation) String() string {
	if name, ok := transformationNames[t]; ok {
		return name
	}
	return "unknown"
}

// OnUnexpectedVar decides what Transform does with input fields that the
// schema does not declare.
type OnUnexpectedVar uint8

const (
	// Skip drops undeclared fields from the result.
	Skip OnUnexpectedVar = iota
	// Allow passes undeclared fields through unchanged.
	Allow
	// Error aborts the transformation.
	Error
)

// ParsePolicy converts "skip", "allow" or "error" to a policy.
// An empty name selects Skip.
func ParsePolicy(name string) (OnUnexpectedVar, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "skip":
		return Skip, nil
	case "allow":
		return Allow, nil
	case "error":
		return Error, nil
	default:
		return Skip, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

func (p OnUnexpectedVar) String() string {
	switch p {
	case Allow:
		return "allow"
	case Error:
		return "error"
	default:
		return "skip"
	}
}
