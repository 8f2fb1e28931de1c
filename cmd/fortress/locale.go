package main

import (
	"context"
	"embed"
	"log/slog"

	"github.com/dmitrymomot/fortress/pkg/i18n"
)

//go:embed locale/*.yaml
var defaultCatalogs embed.FS

// newTranslator loads the built-in catalogs and, when dir is set, the
// catalogs found there on top of them.
func newTranslator(ctx context.Context, dir string, log *slog.Logger) (*i18n.Translator, error) {
	chain := i18n.ChainAdapter{
		i18n.NewFSAdapter(i18n.NewYAMLParser(), defaultCatalogs, "locale", log),
	}
	if dir != "" {
		chain = append(chain, i18n.NewDirectoryAdapter(i18n.NewMultiParser(), dir, log))
	}

	return i18n.NewTranslator(ctx, chain,
		i18n.WithDefaultLanguage(i18n.DefaultLanguage),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(log.Enabled(ctx, slog.LevelDebug)),
	)
}
