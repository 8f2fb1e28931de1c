package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

// Fields returns the fields with errors in order of first failure.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Translate rewrites Message in place for every error that carries a
// TranslationKey. A nil fn is a no-op.
func (ve ValidationErrors) Translate(fn func(key string, values map[string]any) string) {
	if fn == nil {
		return
	}
	for i := range ve {
		if ve[i].TranslationKey == "" {
			continue
		}
		ve[i].Message = fn(ve[i].TranslationKey, ve[i].TranslationValues)
	}
}

// Report groups the messages by field, keeping their order.
func (ve ValidationErrors) Report() Report {
	report := make(Report)
	for _, err := range ve {
		report.Add(err.Field, err.Message)
	}
	return report
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithMessage returns a copy of the rule reporting message instead of its
// default, under the given translation key and values.
func (r Rule) WithMessage(message, key string, values map[string]any) Rule {
	r.Error.Message = message
	r.Error.TranslationKey = key
	r.Error.TranslationValues = values
	return r
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	if errs := collect(rules); !errs.IsEmpty() {
		return errs
	}
	return nil
}

func collect(rules []Rule) ValidationErrors {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
