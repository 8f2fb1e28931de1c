package transformer

import (
	"context"
	"log/slog"

	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/fortress/pkg/input"
	"github.com/dmitrymomot/fortress/pkg/logger"
	"github.com/dmitrymomot/fortress/pkg/sanitizer"
	"github.com/dmitrymomot/fortress/pkg/schema"
)

// Transformer applies the transformation lists declared in a schema to raw
// input. It holds no per-call state and is safe for concurrent use as long
// as the schemas passed to it are not mutated concurrently.
type Transformer struct {
	logger *slog.Logger
	policy *bluemonday.Policy
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Transformer) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithPurifyPolicy replaces the HTML policy used by the purify transformation.
func WithPurifyPolicy(policy *bluemonday.Policy) Option {
	return func(t *Transformer) {
		t.policy = policy
	}
}

// New creates a Transformer.
func New(opts ...Option) *Transformer {
	t := &Transformer{
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Transform runs every input field through its schema transformations and
// then backfills schema defaults for fields the input did not provide.
//
// Fields are visited in input order. Undeclared fields are handled according
// to policy; under Error the first one aborts the call with an
// *UnexpectedFieldError and no result. Defaults are appended in schema order.
func (t *Transformer) Transform(s *schema.Schema, data *input.Data, policy OnUnexpectedVar) (*input.Data, error) {
	result := input.NewData()

	for _, name := range data.Keys() {
		value, _ := data.Get(name)

		if s.Has(name) || policy == Allow {
			result.Set(name, t.TransformField(s, name, value))
			continue
		}

		if policy == Error {
			return nil, &UnexpectedFieldError{Field: name}
		}

		t.logger.Debug("skipping unexpected input field", logger.Field(name))
	}

	for _, field := range s.Fields() {
		if !field.HasDefault || result.Has(field.Name) {
			continue
		}
		result.Set(field.Name, input.Of(field.Default))
	}

	return result, nil
}

// TransformField applies the transformations of field name to value.
// The value is returned unchanged when the field is undeclared or lists no
// transformations. Lists are transformed element by element; only string
// elements are affected.
func (t *Transformer) TransformField(s *schema.Schema, name string, value input.Value) input.Value {
	field, ok := s.Field(name)
	if !ok || len(field.Transformations) == 0 {
		return value
	}

	pipeline := t.pipeline(field.Transformations)

	return value.Map(func(item any) any {
		str, ok := item.(string)
		if !ok {
			return item
		}
		return pipeline(str)
	})
}

func (t *Transformer) pipeline(names []string) func(string) string {
	steps := make([]func(string) string, 0, len(names))
	for _, name := range names {
		tr := ParseTransformation(name)
		if tr == Unknown {
			if t.logger.Enabled(context.Background(), slog.LevelDebug) {
				t.logger.Debug("ignoring unknown transformation", logger.Transformation(name))
			}
			continue
		}
		steps = append(steps, t.step(tr))
	}
	return sanitizer.Compose(steps...)
}

func (t *Transformer) step(tr Transformation) func(string) string {
	switch tr {
	case Purify:
		if t.policy != nil {
			return func(s string) string { return sanitizer.PurifyWith(s, t.policy) }
		}
		return sanitizer.Purify
	case Escape:
		return sanitizer.EscapeHTML
	case Purge:
		return sanitizer.StripHTML
	case Trim:
		return sanitizer.Trim
	default:
		return func(s string) string { return s }
	}
}
