// Package logger builds the slog loggers used by the command line tool and
// passed to the transformer, validator and translator.
//
// New takes functional options for format, level, output and static
// attributes. ContextExtractor callbacks add values carried by the context,
// such as the locale, to every record. Helpers in attr.go keep attribute
// keys consistent across packages:
//
//	log := logger.New(logger.WithFormat(logger.FormatJSON), logger.WithLevel(slog.LevelDebug))
//	log.Debug("skipping validator", logger.Field("email"), logger.Validator("email"))
//
// Discard returns a logger that drops everything; libraries use it when no
// logger is configured.
package logger
