package transformer_test

import (
	"errors"
	"testing"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fortress/pkg/input"
	"github.com/dmitrymomot/fortress/pkg/schema"
	"github.com/dmitrymomot/fortress/pkg/transformer"
)

func TestParseTransformation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected transformer.Transformation
	}{
		{"purify", transformer.Purify},
		{"ESCAPE", transformer.Escape},
		{"Purge", transformer.Purge},
		{" trim ", transformer.Trim},
		{"uppercase", transformer.Unknown},
		{"", transformer.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, transformer.ParseTransformation(tt.name))
		})
	}

	assert.Equal(t, "purge", transformer.Purge.String())
	assert.Equal(t, "unknown", transformer.Unknown.String())
}

func TestParsePolicy(t *testing.T) {
	t.Parallel()

	for name, expected := range map[string]transformer.OnUnexpectedVar{
		"":      transformer.Skip,
		"skip":  transformer.Skip,
		"Allow": transformer.Allow,
		"error": transformer.Error,
	} {
		p, err := transformer.ParsePolicy(name)
		require.NoError(t, err, name)
		assert.Equal(t, expected, p, name)
	}

	_, err := transformer.ParsePolicy("ignore")
	assert.ErrorIs(t, err, transformer.ErrUnknownPolicy)
}

func TestTransformField(t *testing.T) {
	t.Parallel()

	tr := transformer.New()

	tests := []struct {
		name            string
		transformations []string
		value           input.Value
		expected        input.Value
	}{
		{
			name:            "trim scalar",
			transformations: []string{"trim"},
			value:           input.Scalar("  Bob  "),
			expected:        input.Scalar("Bob"),
		},
		{
			name:            "escape scalar",
			transformations: []string{"escape"},
			value:           input.Scalar("<b>x</b>"),
			expected:        input.Scalar("&lt;b&gt;x&lt;/b&gt;"),
		},
		{
			name:            "purge scalar",
			transformations: []string{"purge"},
			value:           input.Scalar("<p>Hello <em>there</em></p><script>evil()</script>"),
			expected:        input.Scalar("Hello there"),
		},
		{
			name:            "purify keeps safe tags",
			transformations: []string{"purify"},
			value:           input.Scalar("<b>Hi</b><script>alert(1)</script>"),
			expected:        input.Scalar("<b>Hi</b>"),
		},
		{
			name:            "applied in order",
			transformations: []string{"purge", "trim"},
			value:           input.Scalar("  <i>x</i>  "),
			expected:        input.Scalar("x"),
		},
		{
			name:            "case-insensitive names",
			transformations: []string{"TRIM"},
			value:           input.Scalar(" a "),
			expected:        input.Scalar("a"),
		},
		{
			name:            "unknown name is a no-op",
			transformations: []string{"reverse", "trim"},
			value:           input.Scalar(" ab "),
			expected:        input.Scalar("ab"),
		},
		{
			name:            "list transformed elementwise",
			transformations: []string{"trim"},
			value:           input.List(" a ", "b ", " c"),
			expected:        input.List("a", "b", "c"),
		},
		{
			name:            "non-string scalars pass through",
			transformations: []string{"trim", "escape"},
			value:           input.List(42, true, " x "),
			expected:        input.List(42, true, "x"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := schema.New().SetTransformations("f", tt.transformations...)
			assert.Equal(t, tt.expected, tr.TransformField(s, "f", tt.value))
		})
	}

	t.Run("undeclared field unchanged", func(t *testing.T) {
		t.Parallel()
		v := input.Scalar("  raw ")
		assert.Equal(t, v, tr.TransformField(schema.New(), "missing", v))
	})

	t.Run("field without transformations unchanged", func(t *testing.T) {
		t.Parallel()
		s := schema.New().SetDefault("f", "x")
		v := input.Scalar(" raw ")
		assert.Equal(t, v, tr.TransformField(s, "f", v))
	})
}

func TestTransformField_Elementwise(t *testing.T) {
	t.Parallel()

	tr := transformer.New()
	items := []any{"  <b>one</b> & ", "<script>x</script> two "}

	for _, name := range []string{"trim", "escape", "purge", "purify"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := schema.New().SetTransformations("f", name)
			list := tr.TransformField(s, "f", input.List(items...)).List()
			require.Len(t, list, len(items))

			for i, item := range items {
				single := tr.TransformField(s, "f", input.Scalar(item))
				assert.Equal(t, single.Scalar(), list[i])
			}
		})
	}
}

func TestTransformField_Idempotent(t *testing.T) {
	t.Parallel()

	tr := transformer.New()
	values := []string{"  x  ", "<p>a <b>b</b></p>", "<<b>c>", "a &lt; b", "\t\n"}

	for _, name := range []string{"trim", "purge"} {
		s := schema.New().SetTransformations("f", name)
		for _, v := range values {
			once := tr.TransformField(s, "f", input.Scalar(v))
			twice := tr.TransformField(s, "f", once)
			assert.Equal(t, once, twice, "%s(%q)", name, v)
		}
	}
}

func TestTransformField_PurifyPolicy(t *testing.T) {
	t.Parallel()

	tr := transformer.New(transformer.WithPurifyPolicy(bluemonday.StrictPolicy()))
	s := schema.New().SetTransformations("f", "purify")

	assert.Equal(t, "Hi", tr.TransformField(s, "f", input.Scalar("<b>Hi</b>")).Scalar())
}

func TestTransform_Policies(t *testing.T) {
	t.Parallel()

	s := schema.New().MergeItems("", map[string]any{"known": map[string]any{}})
	data := func() *input.Data {
		return input.NewData().
			Set("known", input.Scalar("x")).
			Set("extra", input.Scalar("y"))
	}
	tr := transformer.New()

	t.Run("skip", func(t *testing.T) {
		t.Parallel()
		out, err := tr.Transform(s, data(), transformer.Skip)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"known": "x"}, out.ToMap())
	})

	t.Run("allow", func(t *testing.T) {
		t.Parallel()
		out, err := tr.Transform(s, data(), transformer.Allow)
		require.NoError(t, err)
		assert.Equal(t, []string{"known", "extra"}, out.Keys())
		assert.Equal(t, map[string]any{"known": "x", "extra": "y"}, out.ToMap())
	})

	t.Run("error", func(t *testing.T) {
		t.Parallel()
		out, err := tr.Transform(s, data(), transformer.Error)
		require.Error(t, err)
		assert.Nil(t, out)
		assert.ErrorIs(t, err, transformer.ErrUnexpectedField)

		var fieldErr *transformer.UnexpectedFieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "extra", fieldErr.Field)
		assert.Equal(t, "The field 'extra' is not a valid input field.", err.Error())
	})
}

func TestTransform_Defaults(t *testing.T) {
	t.Parallel()

	s := schema.New().
		SetDefault("role", "member").
		SetDefault("tags", []any{"a", "b"}).
		SetDefault("given", "unused").
		SetTransformations("given", "trim")

	tr := transformer.New()

	for _, policy := range []transformer.OnUnexpectedVar{transformer.Skip, transformer.Allow, transformer.Error} {
		t.Run(policy.String(), func(t *testing.T) {
			t.Parallel()

			out, err := tr.Transform(s, input.NewData().Set("given", input.Scalar(" v ")), policy)
			require.NoError(t, err)

			assert.Equal(t, []string{"given", "role", "tags"}, out.Keys())

			role, _ := out.Get("role")
			assert.Equal(t, "member", role.Scalar())

			tags, _ := out.Get("tags")
			assert.Equal(t, []any{"a", "b"}, tags.List())

			given, _ := out.Get("given")
			assert.Equal(t, "v", given.Scalar())
		})
	}
}

func TestTransform_NullDefault(t *testing.T) {
	t.Parallel()

	s, err := schema.Parse([]byte("f:\n  default: ~\n"))
	require.NoError(t, err)

	for _, policy := range []transformer.OnUnexpectedVar{transformer.Skip, transformer.Allow, transformer.Error} {
		out, err := transformer.New().Transform(s, input.NewData(), policy)
		require.NoError(t, err)
		assert.Equal(t, 0, out.Len(), policy.String())
	}
}

func TestTransform_EmptyInput(t *testing.T) {
	t.Parallel()

	out, err := transformer.New().Transform(schema.New(), input.NewData(), transformer.Error)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())
}

func TestTransform_EndToEnd(t *testing.T) {
	t.Parallel()

	s, err := schema.Parse([]byte(`
email:
  validators:
    required: {}
    email: {}
display_name:
  transformations: [trim]
`))
	require.NoError(t, err)

	out, err := transformer.New().Transform(s, input.NewData().Set("display_name", input.Scalar("  Bob  ")), transformer.Skip)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"display_name": "Bob"}, out.ToMap())
}
