package i18n

import (
	"context"
	"path/filepath"
	"strings"
)

// Parser decodes the content of a translation file into a nested tree.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]any, error)

	// SupportsFileExtension accepts the extension with or without its dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser chosen by file extension, or nil.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// MultiParser delegates to the first parser supporting a file extension.
type MultiParser []Parser

// NewMultiParser accepts both YAML and JSON files.
func NewMultiParser() MultiParser {
	return MultiParser{NewYAMLParser(), NewJSONParser()}
}

// ForExtension returns the parser handling ext, or nil.
func (m MultiParser) ForExtension(ext string) Parser {
	for _, p := range m {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

// Parse uses the first parser. Adapters select by extension instead.
func (m MultiParser) Parse(ctx context.Context, content []byte) (map[string]any, error) {
	if len(m) == 0 {
		return nil, ErrUnsupportedFile
	}
	return m[0].Parse(ctx, content)
}

func (m MultiParser) SupportsFileExtension(ext string) bool {
	return m.ForExtension(ext) != nil
}

// parserFor resolves the parser for a file name.
func parserFor(p Parser, name string) Parser {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if m, ok := p.(MultiParser); ok {
		return m.ForExtension(ext)
	}
	if p.SupportsFileExtension(ext) {
		return p
	}
	return nil
}
