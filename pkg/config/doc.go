// Package config loads typed configuration from the environment.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: Load
// reads an optional .env file once, parses environment variables into a
// struct according to its env tags and caches the result per type.
//
//	type Config struct {
//	    Locale     string `env:"FORTRESS_LOCALE" envDefault:"en"`
//	    OnUnknown  string `env:"FORTRESS_ON_UNEXPECTED" envDefault:"skip"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// LoadEnv reads additional .env files before the first Load. ResetCache
// clears the cache, which tests use after changing the environment.
//
// Errors wrap the sentinels ErrParsingConfig, ErrLoadingEnvFile and
// ErrNilPointer.
package config
