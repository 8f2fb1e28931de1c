package schema_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fortress/pkg/schema"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("yaml document", func(t *testing.T) {
		t.Parallel()
		s, err := schema.Parse([]byte(`
email:
  default: nobody@example.com
  transformations: [trim, purge]
  validators:
    required:
      message: VALIDATE.REQUIRED
    email: {}
`))
		require.NoError(t, err)

		f, ok := s.Field("email")
		require.True(t, ok)
		assert.Equal(t, "nobody@example.com", f.Default)
		assert.Equal(t, []string{"trim", "purge"}, f.Transformations)
		require.Len(t, f.Validators, 2)
		assert.Equal(t, "VALIDATE.REQUIRED", f.Validators[0].Message())
	})

	t.Run("yaml merge keys", func(t *testing.T) {
		t.Parallel()
		s, err := schema.Parse([]byte(`
base: &base
  validators:
    required: {}
named: &named
  default: anonymous
name:
  <<: *base
  transformations: [trim]
alias:
  <<: [*named, *base]
  default: override
`))
		require.NoError(t, err)

		name, _ := s.All().Get("name")
		assert.Equal(t, []string{"transformations", "validators"}, name.(*schema.Map).Keys())

		f, ok := s.Field("name")
		require.True(t, ok)
		assert.Equal(t, []string{"trim"}, f.Transformations)
		require.Len(t, f.Validators, 1)
		assert.Equal(t, "required", f.Validators[0].Name)

		f, _ = s.Field("alias")
		assert.Equal(t, "override", f.Default)
		require.Len(t, f.Validators, 1)
		assert.Equal(t, "required", f.Validators[0].Name)
	})

	t.Run("merge key with a scalar value", func(t *testing.T) {
		t.Parallel()
		_, err := schema.Parse([]byte("name:\n  <<: oops\n"))
		assert.ErrorIs(t, err, schema.ErrInvalidFormat)
	})

	t.Run("null default is no default", func(t *testing.T) {
		t.Parallel()
		s, err := schema.Parse([]byte("f:\n  default: ~\ng:\n  default: 0\n"))
		require.NoError(t, err)

		f, _ := s.Field("f")
		assert.False(t, f.HasDefault)
		g, _ := s.Field("g")
		assert.True(t, g.HasDefault)
	})

	t.Run("json document", func(t *testing.T) {
		t.Parallel()
		s, err := schema.Parse([]byte(`{"pw": {"validators": {"length": {"min": 5, "max": 10}}}}`))
		require.NoError(t, err)

		f, _ := s.Field("pw")
		require.Len(t, f.Validators, 1)
		maxLen, _ := f.Validators[0].Int("max")
		assert.Equal(t, 10, maxLen)
	})

	t.Run("duplicate keys resolve to the last value", func(t *testing.T) {
		t.Parallel()
		s, err := schema.Parse([]byte(`{"a": {}, "a": {"default": 1}}`))
		require.NoError(t, err)

		f, ok := s.Field("a")
		require.True(t, ok)
		assert.Equal(t, 1, f.Default)
	})

	t.Run("empty document yields empty schema", func(t *testing.T) {
		t.Parallel()
		for _, doc := range []string{"", "   \n", "---\n", "~", "{}"} {
			s, err := schema.Parse([]byte(doc))
			require.NoError(t, err, doc)
			require.NotNil(t, s)
			assert.Equal(t, 0, s.Len(), doc)
		}
	})

	t.Run("malformed document", func(t *testing.T) {
		t.Parallel()
		_, err := schema.Parse([]byte("email: [unclosed\n  validators: {"))
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrInvalidFormat)
	})

	t.Run("non-mapping top level", func(t *testing.T) {
		t.Parallel()
		_, err := schema.Parse([]byte(`["a", "b"]`))
		assert.ErrorIs(t, err, schema.ErrInvalidFormat)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "register.yaml", "username:\n  validators:\n    username: {}\n")

		s, err := schema.Load(path)
		require.NoError(t, err)
		assert.True(t, s.Has("username"))
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := schema.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, schema.ErrReadFile)
	})

	t.Run("malformed file", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "bad.json", "{\"a\": [}")

		_, err := schema.Load(path)
		assert.ErrorIs(t, err, schema.ErrInvalidFormat)
	})
}

func TestLoader_Cache(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "cached.yaml", "name:\n  default: Bob\n")
	loader := schema.NewLoader(schema.WithCacheSize(4))

	first, err := loader.Load(path)
	require.NoError(t, err)
	first.SetDefault("name", "Mutated")

	second, err := loader.Load(path)
	require.NoError(t, err)
	f, _ := second.Field("name")
	assert.Equal(t, "Bob", f.Default, "cached documents are returned as copies")

	require.NoError(t, os.WriteFile(path, []byte("name:\n  default: Alice Cooper\n"), 0o600))
	future := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, future, future))

	third, err := loader.Load(path)
	require.NoError(t, err)
	f, _ = third.Field("name")
	assert.Equal(t, "Alice Cooper", f.Default, "changed files are re-read")
}
