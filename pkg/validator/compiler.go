package validator

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"regexp"

	"github.com/dmitrymomot/fortress/pkg/input"
	"github.com/dmitrymomot/fortress/pkg/logger"
	"github.com/dmitrymomot/fortress/pkg/schema"
)

// SchemaValidator compiles the validators declared in a schema into rules
// and runs them against input data. It is safe for concurrent use as long
// as the schemas passed to it are not mutated concurrently.
type SchemaValidator struct {
	translator Translator
	logger     *slog.Logger
}

// Option configures a SchemaValidator.
type Option func(*SchemaValidator)

// WithLogger sets the logger used to report skipped validators.
func WithLogger(logger *slog.Logger) Option {
	return func(v *SchemaValidator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// NewSchemaValidator creates a validator that resolves custom schema
// messages through t. A nil t returns message keys untranslated.
func NewSchemaValidator(t Translator, opts ...Option) *SchemaValidator {
	if t == nil {
		t = keyTranslator{}
	}
	v := &SchemaValidator{
		translator: t,
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks data against every server-side validator of s and returns
// the failures grouped by field. Fields and validators are evaluated in
// schema order.
func (v *SchemaValidator) Validate(s *schema.Schema, data *input.Data) Report {
	return v.Rules(s, data).Report()
}

// Check is Validate returning ValidationErrors, or nil when data is valid.
func (v *SchemaValidator) Check(s *schema.Schema, data *input.Data) error {
	if errs := v.Rules(s, data); !errs.IsEmpty() {
		return errs
	}
	return nil
}

// Rules returns the failed rules of data as ValidationErrors in
// registration order.
func (v *SchemaValidator) Rules(s *schema.Schema, data *input.Data) ValidationErrors {
	return collect(v.Compile(s, data))
}

// Compile builds the rules for data without running them.
//
// Validators with domain "client" and unknown validator names are skipped.
// A field whose value is absent or empty is only checked by its required
// rule. Validators with unusable parameters, including patterns RE2 cannot
// compile, are skipped and logged at warn level.
func (v *SchemaValidator) Compile(s *schema.Schema, data *input.Data) []Rule {
	var rules []Rule

	for _, field := range s.Fields() {
		value, _ := data.Get(field.Name)
		empty := value.IsEmpty()

		for _, spec := range field.Validators {
			if spec.Domain() == schema.DomainClient {
				continue
			}

			name := ParseRuleName(spec.Name)
			if name == RuleUnknown {
				v.logger.Debug("ignoring unknown validator",
					logger.Field(field.Name),
					logger.Validator(spec.Name))
				continue
			}

			if empty && name != RuleRequired {
				continue
			}

			compiled, err := compileRule(name, field.Name, value, spec, data)
			if err != nil {
				v.logger.Warn("skipping validator",
					logger.Field(field.Name),
					logger.Validator(spec.Name),
					logger.Error(err))
				continue
			}

			for _, rule := range compiled {
				rules = append(rules, v.withMessage(rule, field.Name, spec))
			}
		}
	}

	return rules
}

func (v *SchemaValidator) withMessage(rule Rule, field string, spec schema.Validator) Rule {
	key := spec.Message()
	if key == "" {
		return rule
	}

	params := spec.ParamsMap()
	values := make(map[string]any, len(params)+1)
	maps.Copy(values, params)
	values["self"] = field

	return rule.WithMessage(v.translator.Translate(key, values), key, values)
}

func compileRule(name RuleName, field string, value input.Value, spec schema.Validator, data *input.Data) ([]Rule, error) {
	switch name {
	case RuleArray:
		return one(Array(field, value))
	case RuleEmail:
		return one(ValidEmail(field, value))
	case RuleEquals, RuleNotEquals:
		target, ok := spec.Param("value")
		if !ok {
			return nil, missingParam("value")
		}
		caseSensitive, _ := spec.Bool("caseSensitive")
		if name == RuleEquals {
			return one(Equals(field, value, target, caseSensitive))
		}
		return one(NotEquals(field, value, target, caseSensitive))
	case RuleInteger:
		return one(Integer(field, value))
	case RuleNumeric:
		return one(Numeric(field, value))
	case RuleLength:
		return lengthRule(field, value, spec)
	case RuleMatches, RuleNotMatches:
		other, ok := spec.String("field")
		if !ok || other == "" {
			return nil, missingParam("field")
		}
		if name == RuleMatches {
			return one(SameAs(field, value, other, data))
		}
		return one(DifferentFrom(field, value, other, data))
	case RuleMemberOf, RuleNotMemberOf:
		values, ok := spec.List("values")
		if !ok {
			return nil, missingParam("values")
		}
		if name == RuleMemberOf {
			return one(InList(field, value, values))
		}
		return one(NotInList(field, value, values))
	case RuleNoLeadingWhitespace:
		return one(NoLeadingSpace(field, value))
	case RuleNoTrailingWhitespace:
		return one(NoTrailingSpace(field, value))
	case RuleRange:
		return rangeRule(field, value, spec)
	case RuleRegex:
		pattern, ok := spec.String("regex")
		if !ok {
			return nil, missingParam("regex")
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, errors.Join(ErrInvalidParams, err)
		}
		return one(Pattern(field, value, re))
	case RuleRequired:
		return one(Required(field, value))
	case RuleTelephone:
		return one(ValidTelephone(field, value))
	case RuleURI:
		return one(ValidURI(field, value))
	case RuleUsername:
		return one(ValidUsername(field, value))
	case RuleUUID:
		return one(ValidUUID(field, value))
	default:
		return nil, nil
	}
}

// lengthRule applies whichever of min and max are given.
func lengthRule(field string, value input.Value, spec schema.Validator) ([]Rule, error) {
	min, hasMin, err := intParam(spec, "min")
	if err != nil {
		return nil, err
	}
	max, hasMax, err := intParam(spec, "max")
	if err != nil {
		return nil, err
	}

	switch {
	case hasMin && hasMax:
		return one(LengthBetween(field, value, min, max))
	case hasMin:
		return one(MinLength(field, value, min))
	case hasMax:
		return one(MaxLength(field, value, max))
	default:
		return nil, nil
	}
}

// rangeRule applies whichever of min and max are given.
func rangeRule(field string, value input.Value, spec schema.Validator) ([]Rule, error) {
	min, hasMin, err := floatParam(spec, "min")
	if err != nil {
		return nil, err
	}
	max, hasMax, err := floatParam(spec, "max")
	if err != nil {
		return nil, err
	}

	switch {
	case hasMin && hasMax:
		return one(Between(field, value, min, max))
	case hasMin:
		return one(Min(field, value, min))
	case hasMax:
		return one(Max(field, value, max))
	default:
		return nil, nil
	}
}

func intParam(spec schema.Validator, key string) (int, bool, error) {
	if _, ok := spec.Param(key); !ok {
		return 0, false, nil
	}
	n, ok := spec.Int(key)
	if !ok {
		return 0, false, fmt.Errorf("%w: %s is not an integer", ErrInvalidParams, key)
	}
	return n, true, nil
}

func floatParam(spec schema.Validator, key string) (float64, bool, error) {
	if _, ok := spec.Param(key); !ok {
		return 0, false, nil
	}
	n, ok := spec.Float(key)
	if !ok {
		return 0, false, fmt.Errorf("%w: %s is not a number", ErrInvalidParams, key)
	}
	return n, true, nil
}

func missingParam(key string) error {
	return fmt.Errorf("%w: missing %s", ErrInvalidParams, key)
}

func one(r Rule) ([]Rule, error) {
	return []Rule{r}, nil
}
