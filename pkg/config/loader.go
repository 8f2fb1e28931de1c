package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// entry is the parsed configuration of one struct type.
type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	// cache maps reflect.Type to *entry.
	cache sync.Map

	dotenvLoaded sync.Once
)

// Load parses environment variables into v using its env struct tags.
// The default .env file is read once if present. Each configuration type is
// parsed once; later calls copy the cached value. A failed parse is not
// cached, so the next call tries again.
//
//	type Config struct {
//		Locale    string `env:"FORTRESS_LOCALE" envDefault:"en"`
//		LocaleDir string `env:"FORTRESS_LOCALE_DIR"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvLoaded.Do(func() {
		// A missing .env file is not an error.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()
	cached, _ := cache.LoadOrStore(key, &entry{})
	e := cached.(*entry)

	e.once.Do(func() {
		cfg := *v
		if err := env.Parse(&cfg); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = cfg
	})

	if e.err != nil {
		cache.CompareAndDelete(key, e)
		return e.err
	}
	*v = e.value.(T)
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv reads the given .env files into the process environment. Variables
// that are already set keep their value, and earlier files win over later
// ones.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache forgets every cached configuration so the next Load parses the
// environment again.
func ResetCache() {
	cache.Clear()
}
