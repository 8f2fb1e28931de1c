package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fortress/pkg/config"
	"github.com/dmitrymomot/fortress/pkg/input"
	"github.com/dmitrymomot/fortress/pkg/schema"
)

var errInvalidInput = errors.New("input failed validation")

// app is the state shared by the subcommands once the root command has
// resolved configuration and logging.
type app struct {
	cfg     Config
	log     *slog.Logger
	envFile []string
	verbose bool
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "fortress",
		Short:         "Schema-driven request transformation and validation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadEnv(a.envFile...); err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log, err := cfg.newLogger(cmd.ErrOrStderr(), a.verbose)
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, log
			return nil
		},
	}

	root.PersistentFlags().StringSliceVar(&a.envFile, "env-file", nil, "additional .env files to load")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug details to stderr")

	root.AddCommand(
		newTransformCommand(a),
		newValidateCommand(a),
		newRulesCommand(a),
	)
	return root
}

func (a *app) loadSchema(path string) (*schema.Schema, error) {
	if path == "" {
		return nil, errors.New("--schema is required")
	}
	return schema.NewLoader(schema.WithLogger(a.log)).Load(path)
}

// loadData reads the JSON request body from path, or from stdin when path
// is "-" or empty.
func (a *app) loadData(cmd *cobra.Command, path string) (*input.Data, error) {
	var (
		content []byte
		err     error
	)
	if path == "" || path == "-" {
		content, err = io.ReadAll(cmd.InOrStdin())
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return input.FromJSON(content)
}

func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
