package clientrules_test

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fortress/pkg/clientrules"
	"github.com/dmitrymomot/fortress/pkg/schema"
	"github.com/dmitrymomot/fortress/pkg/validator"
)

const registration = `
user_name:
  validators:
    required:
      message: VALIDATE.REQUIRED
    length:
      min: 1
      max: 50
    no_leading_whitespace: {}
    no_trailing_whitespace: {}
    username: {}
email:
  validators:
    required: {}
    email:
      domain: server
age:
  validators:
    integer: {}
    range:
      min: 18
password:
  validators:
    length:
      max: 100
passwordc:
  validators:
    matches:
      field: password
      message: VALIDATE.PASSWORD_MISMATCH
old_password:
  validators:
    not_matches:
      field: password
color:
  validators:
    member_of:
      values: [red, green]
    not_member_of:
      values: [blue]
phone:
  validators:
    telephone: {}
website:
  validators:
    uri: {}
score:
  validators:
    numeric: {}
    range:
      min: 1
      max: 10
code:
  validators:
    regex:
      regex: '^\d+$'
terms:
  validators:
    equals:
      value: yes
      caseSensitive: false
      message: VALIDATE.TERMS
nickname:
  validators:
    not_equals:
      value: admin
tags:
  validators:
    array: {}
    frobnicate: {}
`

func TestJQueryAdapter_Rules(t *testing.T) {
	t.Parallel()

	s, err := schema.Parse([]byte(registration))
	require.NoError(t, err)

	translator := validator.TranslatorFunc(func(key string, params map[string]any) string {
		return fmt.Sprintf("%s(%v)", key, params["self"])
	})

	out, err := clientrules.NewJQueryAdapter(translator).JSON(s)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"rules": {
			"user_name": {"required": true, "rangelength": [1, 50], "noLeadingWhitespace": true, "noTrailingWhitespace": true, "username": true},
			"email": {"required": true},
			"age": {"digits": true, "min": 18},
			"password": {"maxlength": 100},
			"passwordc": {"matchFormField": "password"},
			"old_password": {"notMatchFormField": "password"},
			"color": {"memberOf": ["red", "green"], "notMemberOf": ["blue"]},
			"phone": {"phoneUS": true},
			"website": {"url": true},
			"score": {"number": true, "range": [1, 10]},
			"code": {"pattern": "^\\d+$"},
			"terms": {"equals": {"value": "yes", "caseSensitive": false}},
			"nickname": {"notEquals": {"value": "admin"}}
		},
		"messages": {
			"user_name": {"required": "VALIDATE.REQUIRED(user_name)"},
			"passwordc": {"matchFormField": "VALIDATE.PASSWORD_MISMATCH(passwordc)"},
			"terms": {"equals": "VALIDATE.TERMS(terms)"}
		}
	}`, string(out))
}

func TestJQueryAdapter_Order(t *testing.T) {
	t.Parallel()

	s := schema.New().
		AddValidator("zeta", "required", nil).
		AddValidator("alpha", "email", nil).
		AddValidator("alpha", "required", nil)

	out, err := clientrules.NewJQueryAdapter(nil).JSON(s)
	require.NoError(t, err)
	assert.Equal(t, `{"rules":{"zeta":{"required":true},"alpha":{"email":true,"required":true}},"messages":{}}`, string(out))
}

func TestJQueryAdapter_ArrayPrefix(t *testing.T) {
	t.Parallel()

	s := schema.New().AddValidator("email", "email", schema.MapOf("message", "VALIDATE.EMAIL"))
	translator := validator.TranslatorFunc(func(_ string, params map[string]any) string {
		return fmt.Sprintf("%v looks wrong", params["self"])
	})

	res := clientrules.NewJQueryAdapter(translator, clientrules.WithArrayPrefix("user")).Rules(s)

	assert.Equal(t, []string{"user[email]"}, res.Rules.Keys())
	msgs, ok := res.Messages.Get("user[email]")
	require.True(t, ok)
	msg, _ := msgs.(*schema.Map).Get(clientrules.RuleEmail)
	assert.Equal(t, "email looks wrong", msg)
}

func TestJQueryAdapter_MessageNotReinterpolated(t *testing.T) {
	t.Parallel()

	translator := validator.TranslatorFunc(func(_ string, params map[string]any) string {
		return fmt.Sprintf("%v in form {{field}} is required", params["self"])
	})
	s := schema.New().AddValidator("user_name", "required", schema.MapOf("message", "VALIDATE.REQUIRED_IN_FORM"))

	res := clientrules.NewJQueryAdapter(translator).Rules(s)

	msgs, ok := res.Messages.Get("user_name")
	require.True(t, ok)
	msg, _ := msgs.(*schema.Map).Get(clientrules.RuleRequired)
	assert.Equal(t, "user_name in form {{field}} is required", msg)
}

func TestJQueryAdapter_UUIDPattern(t *testing.T) {
	t.Parallel()

	s := schema.New().AddValidator("account_id", "uuid", nil)

	res := clientrules.NewJQueryAdapter(nil).Rules(s)

	rules, ok := res.Rules.Get("account_id")
	require.True(t, ok)
	pattern, ok := rules.(*schema.Map).Get(clientrules.RulePattern)
	require.True(t, ok)
	re := regexp.MustCompile(pattern.(string))
	assert.True(t, re.MatchString("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	assert.False(t, re.MatchString("urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
}

func TestJQueryAdapter_EmptySchema(t *testing.T) {
	t.Parallel()

	out, err := clientrules.NewJQueryAdapter(nil).JSON(schema.New())
	require.NoError(t, err)
	assert.Equal(t, `{"rules":{},"messages":{}}`, string(out))
}
