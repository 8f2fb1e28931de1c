package schema

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fortress/pkg/logger"
)

// Parse builds a schema from a YAML or JSON document.
// YAML is tried first; JSON is the fallback. A document that parses to
// nothing yields an empty schema.
func Parse(content []byte) (*Schema, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return New(), nil
	}

	root, yamlErr := parseYAML(content)
	if yamlErr == nil {
		return FromMap(root), nil
	}

	root, jsonErr := parseJSON(content)
	if jsonErr == nil {
		return FromMap(root), nil
	}

	return nil, errors.Join(ErrInvalidFormat, yamlErr, jsonErr)
}

// Load reads and parses the schema file at path without caching.
func Load(path string) (*Schema, error) {
	return NewLoader().Load(path)
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithCacheSize keeps up to size parsed documents in memory. Entries are
// invalidated when the file's size or modification time changes.
func WithCacheSize(size int) LoaderOption {
	return func(l *Loader) {
		if size > 0 {
			l.cache = newDocumentCache(size)
		}
	}
}

// WithLogger sets the logger used for load diagnostics.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Loader reads schema documents from disk.
// It is safe for concurrent use; every call returns an independent Schema.
type Loader struct {
	cache  *documentCache
	logger *slog.Logger
}

// NewLoader creates a Loader. Caching is disabled unless WithCacheSize is given.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads and parses the schema file at path.
func (l *Loader) Load(path string) (*Schema, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}
	stamp := fileStamp{size: info.Size(), modTime: info.ModTime()}

	if l.cache != nil {
		if doc, ok := l.cache.get(path, stamp); ok {
			l.logger.Debug("schema served from cache", logger.File(path))
			return FromMap(doc.Clone()), nil
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}

	s, err := Parse(content)
	if err != nil {
		l.logger.Warn("schema parse failed", logger.File(path), logger.Error(err))
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if l.cache != nil {
		l.cache.put(path, stamp, s.root.Clone())
	}
	l.logger.Debug("schema loaded", logger.File(path), logger.Count(s.Len()))
	return s, nil
}

func parseYAML(content []byte) (*Map, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, err
	}
	v, err := fromYAML(&doc)
	if err != nil {
		return nil, err
	}
	return topLevel(v)
}

func fromYAML(n *yaml.Node) (any, error) {
	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromYAML(n.Content[0])
	case yaml.AliasNode:
		return fromYAML(n.Alias)
	case yaml.MappingNode:
		m := NewMap()
		var merged []*Map
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := fromYAML(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			if isMergeKey(n.Content[i]) {
				src, err := mergeSources(v)
				if err != nil {
					return nil, err
				}
				merged = append(merged, src...)
				continue
			}
			m.Set(n.Content[i].Value, v)
		}
		// Explicit keys win over merged ones; earlier merge sources win over later.
		for _, src := range merged {
			src.Each(func(key string, value any) {
				if !m.Has(key) {
					m.Set(key, value)
				}
			})
		}
		return m, nil
	case yaml.SequenceNode:
		list := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := fromYAML(item)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
}

func isMergeKey(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Value == "<<" &&
		(n.Tag == "" || n.Tag == "!" || n.ShortTag() == "!!merge")
}

// mergeSources returns the mappings named by a `<<` key, which is either a
// single mapping or a sequence of mappings.
func mergeSources(v any) ([]*Map, error) {
	switch t := v.(type) {
	case *Map:
		return []*Map{t}, nil
	case []any:
		out := make([]*Map, 0, len(t))
		for _, item := range t {
			m, ok := item.(*Map)
			if !ok {
				return nil, errors.New("merge key value must be a mapping or a list of mappings")
			}
			out = append(out, m)
		}
		return out, nil
	default:
		return nil, errors.New("merge key value must be a mapping or a list of mappings")
	}
}

func parseJSON(content []byte) (*Map, error) {
	if !gjson.ValidBytes(content) {
		return nil, errors.New("invalid JSON document")
	}
	return topLevel(fromJSON(gjson.ParseBytes(content)))
}

func fromJSON(r gjson.Result) any {
	switch {
	case r.IsObject():
		m := NewMap()
		r.ForEach(func(k, v gjson.Result) bool {
			m.Set(k.String(), fromJSON(v))
			return true
		})
		return m
	case r.IsArray():
		list := make([]any, 0)
		r.ForEach(func(_, v gjson.Result) bool {
			list = append(list, fromJSON(v))
			return true
		})
		return list
	}

	switch r.Type {
	case gjson.True:
		return true
	case gjson.False:
		return false
	case gjson.Number:
		if i, err := strconv.Atoi(r.Raw); err == nil {
			return i
		}
		return r.Float()
	case gjson.String:
		return r.Str
	default:
		return nil
	}
}

// topLevel accepts a mapping or an empty document.
func topLevel(v any) (*Map, error) {
	switch t := v.(type) {
	case nil:
		return NewMap(), nil
	case *Map:
		return t, nil
	default:
		return nil, fmt.Errorf("top level of schema must be a mapping, got %T", v)
	}
}
