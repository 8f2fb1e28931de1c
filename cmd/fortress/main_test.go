package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fortress/pkg/config"
)

const userSchema = `
name:
  default: Guest
  transformations: [purge, trim]
  validators:
    length:
      min: 2
      max: 20
email:
  transformations: trim
  validators:
    required:
      message: VALIDATE.REQUIRED
    email:
      domain: server
phone:
  validators:
    telephone:
      domain: client
`

type result struct {
	code   int
	stdout string
	stderr string
}

func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func setup(t *testing.T) string {
	t.Helper()

	for _, key := range []string{"FORTRESS_LOCALE", "FORTRESS_LOCALE_DIR", "FORTRESS_ON_UNEXPECTED", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "user.yaml"), []byte(userSchema), 0o600))
	return dir
}

func TestTransformCommand(t *testing.T) {
	dir := setup(t)
	schemaPath := filepath.Join(dir, "user.yaml")
	body := `{"email": "  bob@example.com ", "name": " <b>Bob</b> ", "admin": true}`

	t.Run("skips undeclared fields and backfills defaults", func(t *testing.T) {
		res := execute(t, `{"email": " a@b.co "}`, "transform", "--schema", schemaPath)
		require.Equal(t, 0, res.code, res.stderr)
		assert.JSONEq(t, `{"email": "a@b.co", "name": "Guest"}`, res.stdout)
	})

	t.Run("keeps input order", func(t *testing.T) {
		res := execute(t, body, "transform", "-s", schemaPath)
		require.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "{\n  \"email\": \"bob@example.com\",\n  \"name\": \"Bob\"\n}\n", res.stdout)
	})

	t.Run("allow policy", func(t *testing.T) {
		res := execute(t, body, "transform", "-s", schemaPath, "--on-unexpected", "allow")
		require.Equal(t, 0, res.code, res.stderr)
		assert.JSONEq(t, `{"email": "bob@example.com", "name": "Bob", "admin": true}`, res.stdout)
	})

	t.Run("error policy from environment", func(t *testing.T) {
		t.Setenv("FORTRESS_ON_UNEXPECTED", "error")
		config.ResetCache()
		t.Cleanup(config.ResetCache)

		res := execute(t, body, "transform", "-s", schemaPath)
		assert.Equal(t, 2, res.code)
		assert.Contains(t, res.stderr, "The field 'admin' is not a valid input field.")
		assert.Empty(t, res.stdout)
	})

	t.Run("data file", func(t *testing.T) {
		dataPath := filepath.Join(dir, "request.json")
		require.NoError(t, os.WriteFile(dataPath, []byte(`{"name": "  Al  "}`), 0o600))

		res := execute(t, "", "transform", "-s", schemaPath, "--data", dataPath)
		require.Equal(t, 0, res.code, res.stderr)
		assert.JSONEq(t, `{"name": "Al"}`, res.stdout)
	})

	t.Run("invalid json", func(t *testing.T) {
		res := execute(t, `[1, 2]`, "transform", "-s", schemaPath)
		assert.Equal(t, 2, res.code)
		assert.Contains(t, res.stderr, "Error:")
	})

	t.Run("missing schema flag", func(t *testing.T) {
		res := execute(t, `{}`, "transform")
		assert.Equal(t, 2, res.code)
		assert.Contains(t, res.stderr, "--schema is required")
	})
}

func TestValidateCommand(t *testing.T) {
	dir := setup(t)
	schemaPath := filepath.Join(dir, "user.yaml")

	t.Run("valid input", func(t *testing.T) {
		res := execute(t, `{"email": "bob@example.com", "name": "Bob"}`, "validate", "-s", schemaPath)
		assert.Equal(t, 0, res.code, res.stderr)
		assert.JSONEq(t, `{}`, res.stdout)
	})

	t.Run("invalid input exits with 1", func(t *testing.T) {
		res := execute(t, `{"name": "B", "phone": "nope"}`, "validate", "-s", schemaPath)
		assert.Equal(t, 1, res.code)
		assert.JSONEq(t, `{
			"email": ["email is required"],
			"name": ["Name must be between 2 and 20 characters long"]
		}`, res.stdout)
		assert.Empty(t, res.stderr)
	})

	t.Run("transform before validating", func(t *testing.T) {
		res := execute(t, `{"email": "  bob@example.com  ", "name": " <i>Bo</i> "}`, "validate", "-s", schemaPath, "--transform")
		assert.Equal(t, 0, res.code, res.stdout)
	})

	t.Run("without transform whitespace fails email", func(t *testing.T) {
		res := execute(t, `{"email": "  bob@example.com  "}`, "validate", "-s", schemaPath)
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stdout, `"email"`)
	})

	t.Run("locale directory", func(t *testing.T) {
		localeDir := filepath.Join(dir, "locale")
		require.NoError(t, os.Mkdir(localeDir, 0o700))
		require.NoError(t, os.WriteFile(filepath.Join(localeDir, "fr.yaml"),
			[]byte("VALIDATE:\n  REQUIRED: \"{{self}} est requis\"\n"), 0o600))

		t.Setenv("FORTRESS_LOCALE_DIR", localeDir)
		config.ResetCache()
		t.Cleanup(config.ResetCache)

		res := execute(t, `{}`, "validate", "-s", schemaPath, "--locale", "fr")
		assert.Equal(t, 1, res.code)
		assert.JSONEq(t, `{"email": ["email est requis"]}`, res.stdout)

		res = execute(t, `{}`, "validate", "-s", schemaPath, "--locale", "de")
		assert.JSONEq(t, `{"email": ["email is required"]}`, res.stdout)
	})

	t.Run("invalid log level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "loud")
		config.ResetCache()
		t.Cleanup(config.ResetCache)

		res := execute(t, `{}`, "validate", "-s", schemaPath)
		assert.Equal(t, 2, res.code)
		assert.Contains(t, res.stderr, "invalid log level")
	})
}

func TestValidateCommand_VerboseLogging(t *testing.T) {
	dir := setup(t)
	schemaPath := filepath.Join(dir, "user.yaml")

	res := execute(t, `{"email": "x"}`, "validate", "-s", schemaPath, "-v")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "component=fortress")
	assert.Contains(t, res.stderr, "input failed validation")
}

func TestRulesCommand(t *testing.T) {
	dir := setup(t)
	schemaPath := filepath.Join(dir, "user.yaml")

	res := execute(t, "", "rules", "-s", schemaPath)
	require.Equal(t, 0, res.code, res.stderr)
	assert.JSONEq(t, `{
		"rules": {
			"name": {"rangelength": [2, 20]},
			"email": {"required": true},
			"phone": {"phoneUS": true}
		},
		"messages": {
			"email": {"required": "email is required"}
		}
	}`, res.stdout)

	res = execute(t, "", "rules", "-s", schemaPath, "--prefix", "user")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, `"user[email]"`)
}

func TestEnvFileFlag(t *testing.T) {
	dir := setup(t)
	schemaPath := filepath.Join(dir, "user.yaml")
	envPath := filepath.Join(dir, ".env.test")
	require.NoError(t, os.WriteFile(envPath, []byte("FORTRESS_ON_UNEXPECTED=allow\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("FORTRESS_ON_UNEXPECTED") })

	res := execute(t, `{"extra": 1}`, "transform", "-s", schemaPath, "--env-file", envPath)
	require.Equal(t, 0, res.code, res.stderr)
	assert.JSONEq(t, `{"extra": 1, "name": "Guest"}`, res.stdout)
}
