package schema

import "strings"

// MergeItems deep-merges items into the subtree at the dot-separated key.
// An empty key targets the root.
//
// When both the existing node and items are mappings, keys are merged
// recursively and the incoming leaf wins. Lists merge by index the same way.
// Any other combination replaces the existing node wholesale. Missing
// intermediate nodes are created.
func (s *Schema) MergeItems(key string, items any) *Schema {
	if key == "" {
		if src, ok := normalize(items).(*Map); ok {
			mergeMaps(s.root, src)
		}
		return s
	}

	parts := strings.Split(key, ".")
	parent := s.root
	for _, part := range parts[:len(parts)-1] {
		child, ok := mapValue(parent, part)
		if !ok {
			child = NewMap()
			parent.Set(part, child)
		}
		parent = child
	}

	last := parts[len(parts)-1]
	existing, _ := parent.Get(last)
	parent.Set(last, mergeNodes(existing, normalize(items)))
	return s
}

func mergeNodes(dst, src any) any {
	switch s := src.(type) {
	case *Map:
		if d, ok := dst.(*Map); ok && d != nil {
			mergeMaps(d, s)
			return d
		}
		return s.Clone()
	case []any:
		if d, ok := dst.([]any); ok {
			return mergeLists(d, s)
		}
		return cloneValue(s)
	default:
		return src
	}
}

func mergeMaps(dst, src *Map) {
	src.Each(func(k string, v any) {
		existing, _ := dst.Get(k)
		dst.Set(k, mergeNodes(existing, v))
	})
}

func mergeLists(dst, src []any) []any {
	size := max(len(dst), len(src))
	out := make([]any, size)
	for i := range size {
		switch {
		case i < len(dst) && i < len(src):
			out[i] = mergeNodes(cloneValue(dst[i]), src[i])
		case i < len(src):
			out[i] = cloneValue(src[i])
		default:
			out[i] = cloneValue(dst[i])
		}
	}
	return out
}
