package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.String(strconv.Itoa(i), err.Error()))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", err.Error())
}

// Field records an input field name.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Validator records a validator name such as "length" or "email".
func Validator(name string) slog.Attr {
	return slog.String("validator", name)
}

// Transformation records a transformation name.
func Transformation(name string) slog.Attr {
	return slog.String("transformation", name)
}

// Lang records a language tag.
func Lang(lang string) slog.Attr {
	return slog.String("lang", lang)
}

// Key records a translation key.
func Key(key string) slog.Attr {
	return slog.String("key", key)
}

// File records a file path.
func File(path string) slog.Attr {
	return slog.String("file", path)
}

// Count records a number of processed items.
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
