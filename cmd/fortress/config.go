package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/fortress/pkg/config"
	"github.com/dmitrymomot/fortress/pkg/logger"
	"github.com/dmitrymomot/fortress/pkg/transformer"
)

// Config holds the environment defaults of the command line tool. Flags
// take precedence over these values.
type Config struct {
	Locale       string `env:"FORTRESS_LOCALE" envDefault:"en"`
	LocaleDir    string `env:"FORTRESS_LOCALE_DIR"`
	OnUnexpected string `env:"FORTRESS_ON_UNEXPECTED" envDefault:"skip"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"text"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	if _, err := transformer.ParsePolicy(cfg.OnUnexpected); err != nil {
		return Config{}, fmt.Errorf("FORTRESS_ON_UNEXPECTED: %w", err)
	}
	return cfg, nil
}

func (c Config) newLogger(w io.Writer, verbose bool) (*slog.Logger, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(c.LogFormat)
	if err != nil {
		return nil, err
	}
	return logger.New(
		logger.WithOutput(w),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithVerbose(verbose),
		logger.WithAttr(logger.Component("fortress")),
	), nil
}
