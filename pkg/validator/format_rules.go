package validator

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/fortress/pkg/input"
)

// ValidEmail validates that a value is an email address.
func ValidEmail(field string, v input.Value) Rule {
	return newRule(field, KeyEmail, nil, func() bool {
		s, ok := text(v)
		return ok && IsEmail(s)
	})
}

// ValidURI validates that a value is an absolute URL.
func ValidURI(field string, v input.Value) Rule {
	return newRule(field, KeyURI, nil, func() bool {
		s, ok := text(v)
		return ok && IsURL(s)
	})
}

// ValidTelephone validates that a value is a US phone number.
func ValidTelephone(field string, v input.Value) Rule {
	return newRule(field, KeyTelephone, nil, func() bool {
		s, ok := text(v)
		return ok && PhoneUS(s)
	})
}

// ValidUsername validates that a value only holds username characters.
func ValidUsername(field string, v input.Value) Rule {
	return newRule(field, KeyUsername, nil, func() bool {
		s, ok := text(v)
		return ok && Username(s)
	})
}

// ValidUUID validates that a value is a UUID in canonical 36-character form.
func ValidUUID(field string, v input.Value) Rule {
	return newRule(field, KeyUUID, nil, func() bool {
		s, ok := text(v)
		if !ok || len(s) != 36 {
			return false
		}
		_, err := uuid.Parse(s)
		return err == nil
	})
}
