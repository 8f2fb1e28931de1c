// Package validator checks request input against the validators declared in
// a schema and reports failures as localized, per-field messages.
//
// # Rules
//
// A Rule pairs a Check function with the ValidationError reported when the
// check fails. Rule constructors such as Required, LengthBetween, InList or
// ValidEmail take a field name and an input.Value and carry an English
// default message together with a translation key and values, so they can
// be used on their own:
//
//	err := validator.Apply(
//	    validator.Required("email", email),
//	    validator.ValidEmail("email", email),
//	    validator.LengthBetween("password", password, 8, 64),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//	    errs.Translate(translate)
//	}
//
// # Schema validation
//
// SchemaValidator compiles the validators of a schema into rules. Validator
// names map to rules through the closed RuleName set; unknown names are
// ignored. Validators declared with domain "client" are skipped. When a
// validator declares a message key, the message is resolved through the
// Translator with the validator parameters plus "self", the field name.
//
//	v := validator.NewSchemaValidator(translator)
//	report := v.Validate(s, data)
//	if !report.IsEmpty() {
//	    // report["email"] == []string{"Email is required"}
//	}
//
// Rules other than required are not evaluated for a field whose value is
// absent or empty. Validators whose parameters cannot be used, such as a
// length with a non-numeric min or a regex that does not compile, are
// skipped.
//
// # Predicates
//
// EqualsValue, NotEqualsValue, PhoneUS, Username, MemberOf, IsInteger,
// IsNumeric, IsEmail and IsURL are plain functions usable outside of rules.
package validator
