package clientrules

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"maps"

	"github.com/dmitrymomot/fortress/pkg/logger"
	"github.com/dmitrymomot/fortress/pkg/schema"
	"github.com/dmitrymomot/fortress/pkg/validator"
)

// jQuery Validation rule names.
const (
	RuleEmail                = "email"
	RuleEquals               = "equals"
	RuleDigits               = "digits"
	RuleRangeLength          = "rangelength"
	RuleMinLength            = "minlength"
	RuleMaxLength            = "maxlength"
	RuleMatchFormField       = "matchFormField"
	RuleMemberOf             = "memberOf"
	RuleNoLeadingWhitespace  = "noLeadingWhitespace"
	RuleNoTrailingWhitespace = "noTrailingWhitespace"
	RuleNotEquals            = "notEquals"
	RuleNotMatchFormField    = "notMatchFormField"
	RuleNotMemberOf          = "notMemberOf"
	RuleNumber               = "number"
	RuleRange                = "range"
	RuleMin                  = "min"
	RuleMax                  = "max"
	RulePattern              = "pattern"
	RuleRequired             = "required"
	RulePhoneUS              = "phoneUS"
	RuleURL                  = "url"
	RuleUsername             = "username"
)

// Result holds the rules and messages of every field in schema order.
type Result struct {
	Rules    *schema.Map
	Messages *schema.Map
}

// MarshalJSON encodes the result as {"rules": ..., "messages": ...}.
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"rules":`)
	rules, err := json.Marshal(r.Rules)
	if err != nil {
		return nil, err
	}
	buf.Write(rules)
	buf.WriteString(`,"messages":`)
	messages, err := json.Marshal(r.Messages)
	if err != nil {
		return nil, err
	}
	buf.Write(messages)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// JQueryAdapter converts schema validators into rules for the jQuery
// Validation plugin.
type JQueryAdapter struct {
	translator  validator.Translator
	arrayPrefix string
	logger      *slog.Logger
}

// Option configures a JQueryAdapter.
type Option func(*JQueryAdapter)

// WithArrayPrefix names every field prefix[field], for forms that submit
// their fields as a nested array.
func WithArrayPrefix(prefix string) Option {
	return func(a *JQueryAdapter) {
		a.arrayPrefix = prefix
	}
}

// WithLogger sets the logger used to report skipped validators.
func WithLogger(logger *slog.Logger) Option {
	return func(a *JQueryAdapter) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewJQueryAdapter creates an adapter resolving custom messages through t.
// A nil t leaves message keys untranslated.
func NewJQueryAdapter(t validator.Translator, opts ...Option) *JQueryAdapter {
	if t == nil {
		t = validator.TranslatorFunc(func(key string, _ map[string]any) string { return key })
	}
	a := &JQueryAdapter{
		translator: t,
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Rules converts s. Validators with domain "server", unknown names and
// validators without a client-side counterpart are left out. Fields without
// any client rule are omitted.
func (a *JQueryAdapter) Rules(s *schema.Schema) *Result {
	result := &Result{Rules: schema.NewMap(), Messages: schema.NewMap()}

	for _, field := range s.Fields() {
		rules := schema.NewMap()
		messages := schema.NewMap()

		for _, spec := range field.Validators {
			if spec.Domain() == schema.DomainServer {
				continue
			}

			converted := convert(validator.ParseRuleName(spec.Name), spec)
			if converted.Len() == 0 {
				a.logger.Debug("no client rule for validator",
					logger.Field(field.Name),
					logger.Validator(spec.Name))
				continue
			}

			message := a.message(field.Name, spec)
			converted.Each(func(rule string, value any) {
				rules.Set(rule, value)
				if message != "" {
					messages.Set(rule, message)
				}
			})
		}

		if rules.Len() == 0 {
			continue
		}

		name := a.fieldName(field.Name)
		result.Rules.Set(name, rules)
		if messages.Len() > 0 {
			result.Messages.Set(name, messages)
		}
	}

	return result
}

// JSON converts s and encodes the result.
func (a *JQueryAdapter) JSON(s *schema.Schema) ([]byte, error) {
	return json.Marshal(a.Rules(s))
}

func (a *JQueryAdapter) fieldName(name string) string {
	if a.arrayPrefix == "" {
		return name
	}
	return a.arrayPrefix + "[" + name + "]"
}

func (a *JQueryAdapter) message(field string, spec schema.Validator) string {
	key := spec.Message()
	if key == "" {
		return ""
	}
	params := spec.ParamsMap()
	values := make(map[string]any, len(params)+1)
	maps.Copy(values, params)
	values["self"] = field
	return a.translator.Translate(key, values)
}

// ruleParams returns the validator parameters without message and domain.
func ruleParams(spec schema.Validator) *schema.Map {
	params := spec.Params.Clone()
	params.Delete(schema.ParamMessage)
	params.Delete(schema.ParamDomain)
	return params
}

// uuidPattern accepts the canonical 36-character form that ValidUUID accepts.
const uuidPattern = `^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`

func convert(name validator.RuleName, spec schema.Validator) *schema.Map {
	out := schema.NewMap()

	switch name {
	case validator.RuleEmail:
		out.Set(RuleEmail, true)
	case validator.RuleEquals:
		out.Set(RuleEquals, ruleParams(spec))
	case validator.RuleNotEquals:
		out.Set(RuleNotEquals, ruleParams(spec))
	case validator.RuleInteger:
		out.Set(RuleDigits, true)
	case validator.RuleNumeric:
		out.Set(RuleNumber, true)
	case validator.RuleLength:
		bounds(out, spec, RuleRangeLength, RuleMinLength, RuleMaxLength)
	case validator.RuleRange:
		bounds(out, spec, RuleRange, RuleMin, RuleMax)
	case validator.RuleMatches:
		if other, ok := spec.String("field"); ok {
			out.Set(RuleMatchFormField, other)
		}
	case validator.RuleNotMatches:
		if other, ok := spec.String("field"); ok {
			out.Set(RuleNotMatchFormField, other)
		}
	case validator.RuleMemberOf:
		if values, ok := spec.List("values"); ok {
			out.Set(RuleMemberOf, values)
		}
	case validator.RuleNotMemberOf:
		if values, ok := spec.List("values"); ok {
			out.Set(RuleNotMemberOf, values)
		}
	case validator.RuleNoLeadingWhitespace:
		out.Set(RuleNoLeadingWhitespace, true)
	case validator.RuleNoTrailingWhitespace:
		out.Set(RuleNoTrailingWhitespace, true)
	case validator.RuleRegex:
		if pattern, ok := spec.String("regex"); ok {
			out.Set(RulePattern, pattern)
		}
	case validator.RuleRequired:
		out.Set(RuleRequired, true)
	case validator.RuleTelephone:
		out.Set(RulePhoneUS, true)
	case validator.RuleURI:
		out.Set(RuleURL, true)
	case validator.RuleUsername:
		out.Set(RuleUsername, true)
	case validator.RuleUUID:
		out.Set(RulePattern, uuidPattern)
	}

	return out
}

// bounds sets the between rule when both min and max are present, otherwise
// whichever single bound exists.
func bounds(out *schema.Map, spec schema.Validator, between, lower, upper string) {
	min, hasMin := spec.Param("min")
	max, hasMax := spec.Param("max")

	switch {
	case hasMin && hasMax:
		out.Set(between, []any{min, max})
	case hasMin:
		out.Set(lower, min)
	case hasMax:
		out.Set(upper, max)
	}
}
