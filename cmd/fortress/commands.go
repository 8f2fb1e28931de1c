package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fortress/pkg/clientrules"
	"github.com/dmitrymomot/fortress/pkg/input"
	"github.com/dmitrymomot/fortress/pkg/logger"
	"github.com/dmitrymomot/fortress/pkg/schema"
	"github.com/dmitrymomot/fortress/pkg/transformer"
	"github.com/dmitrymomot/fortress/pkg/validator"
)

type transformFlags struct {
	schema       string
	data         string
	onUnexpected string
}

func (f *transformFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.schema, "schema", "s", "", "schema file (YAML or JSON)")
	cmd.Flags().StringVarP(&f.data, "data", "d", "-", "JSON input file, - for stdin")
	cmd.Flags().StringVar(&f.onUnexpected, "on-unexpected", "", "policy for undeclared fields: skip, allow or error")
}

func (a *app) transform(s *schema.Schema, data *input.Data, policyName string) (*input.Data, error) {
	if policyName == "" {
		policyName = a.cfg.OnUnexpected
	}
	policy, err := transformer.ParsePolicy(policyName)
	if err != nil {
		return nil, err
	}
	return transformer.New(transformer.WithLogger(a.log)).Transform(s, data, policy)
}

func newTransformCommand(a *app) *cobra.Command {
	var flags transformFlags

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Apply the schema's transformations and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.loadSchema(flags.schema)
			if err != nil {
				return err
			}
			data, err := a.loadData(cmd, flags.data)
			if err != nil {
				return err
			}
			out, err := a.transform(s, data, flags.onUnexpected)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	flags.register(cmd)
	return cmd
}

func newValidateCommand(a *app) *cobra.Command {
	var (
		flags     transformFlags
		locale    string
		transform bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate input against the schema and print the error report",
		Long: "Validate input against the schema's server-side validators.\n" +
			"The report maps each failing field to its messages; the command exits\n" +
			"with status 1 when the report is not empty.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.loadSchema(flags.schema)
			if err != nil {
				return err
			}
			data, err := a.loadData(cmd, flags.data)
			if err != nil {
				return err
			}
			if transform {
				if data, err = a.transform(s, data, flags.onUnexpected); err != nil {
					return err
				}
			}

			tr, err := a.translator(cmd, locale)
			if err != nil {
				return err
			}

			report := validator.NewSchemaValidator(tr, validator.WithLogger(a.log)).Validate(s, data)
			if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			if !report.IsEmpty() {
				a.log.Debug("input failed validation", logger.Count(len(report)))
				return errInvalidInput
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&locale, "locale", "l", "", "message language (default $FORTRESS_LOCALE)")
	cmd.Flags().BoolVarP(&transform, "transform", "t", false, "transform the input before validating it")
	return cmd
}

func newRulesCommand(a *app) *cobra.Command {
	var (
		schemaPath string
		locale     string
		prefix     string
	)

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the schema's client-side rules as jQuery Validation JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.loadSchema(schemaPath)
			if err != nil {
				return err
			}
			tr, err := a.translator(cmd, locale)
			if err != nil {
				return err
			}

			adapter := clientrules.NewJQueryAdapter(tr,
				clientrules.WithArrayPrefix(prefix),
				clientrules.WithLogger(a.log),
			)
			return writeJSON(cmd.OutOrStdout(), adapter.Rules(s))
		},
	}
	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "schema file (YAML or JSON)")
	cmd.Flags().StringVarP(&locale, "locale", "l", "", "message language (default $FORTRESS_LOCALE)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "wrap field names as prefix[field]")
	return cmd
}

func (a *app) translator(cmd *cobra.Command, locale string) (validator.Translator, error) {
	if locale == "" {
		locale = a.cfg.Locale
	}
	tr, err := newTranslator(cmd.Context(), a.cfg.LocaleDir, a.log)
	if err != nil {
		return nil, err
	}
	return tr.Locale(locale), nil
}
