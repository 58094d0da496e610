package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type cache struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}

var (
	loaded       = &cache{values: make(map[reflect.Type]any)}
	dotenvLoaded sync.Once
)

// LoadEnvFiles loads the given files into the process environment without
// overriding variables that are already set. With no arguments it loads ".env".
func LoadEnvFiles(files ...string) error {
	return godotenv.Load(files...)
}

// Load parses the environment into v once per type T and returns the cached
// copy on later calls.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvLoaded.Do(func() {
		// A missing .env file is normal outside local development.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()

	loaded.mu.Lock()
	defer loaded.mu.Unlock()

	if cached, ok := loaded.values[key]; ok {
		*v = cached.(T)
		return nil
	}
	if err := Parse(v); err != nil {
		return err
	}
	loaded.values[key] = *v
	return nil
}

// Parse reads the environment into v without touching the cache.
func Parse[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}
