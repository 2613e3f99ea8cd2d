package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	globalCache = &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}

	defaultEnvLoaded sync.Once
)

// Option tunes a single Parse or Load call.
type Option func(*options)

type options struct {
	prefix string
}

// WithPrefix prepends prefix to every env tag of the parsed struct.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// LoadEnv loads the given .env files into the process environment.
// Variables already present are kept. With no paths it reads ./.env.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv is LoadEnv that panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(err)
	}
}

// Parse reads the current environment into a new T.
// The default .env file is loaded once per process when present.
func Parse[T any](opts ...Option) (T, error) {
	loadDefaultEnv()

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var v T
	if err := env.ParseWithOptions(&v, env.Options{Prefix: o.prefix}); err != nil {
		return v, errors.Join(ErrParsingConfig, err)
	}
	return v, nil
}

// Load parses environment variables into v. Each configuration type (and
// prefix) is parsed once; later calls are served from the cache.
//
//	var s Settings
//	if err := config.Load(&s, config.WithPrefix("PARAMBIND_")); err != nil {
//		return err
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	key := o.prefix + getTypeName[T]()

	globalCache.mu.RLock()
	if cached, ok := globalCache.values[key]; ok {
		*v = cached.(T)
		globalCache.mu.RUnlock()
		return nil
	}
	globalCache.mu.RUnlock()

	globalCache.mu.Lock()
	once, exists := globalCache.onces[key]
	if !exists {
		once = new(sync.Once)
		globalCache.onces[key] = once
	}
	globalCache.mu.Unlock()

	var err error
	once.Do(func() {
		parsed, parseErr := Parse[T](opts...)
		if parseErr != nil {
			err = parseErr
			return
		}

		globalCache.mu.Lock()
		globalCache.values[key] = parsed
		globalCache.mu.Unlock()
	})

	if err != nil {
		// A failed parse must not poison later attempts.
		globalCache.mu.Lock()
		delete(globalCache.onces, key)
		globalCache.mu.Unlock()
		return err
	}

	globalCache.mu.RLock()
	defer globalCache.mu.RUnlock()
	if cached, ok := globalCache.values[key]; ok {
		*v = cached.(T)
		return nil
	}
	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ResetCache drops every cached configuration.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	globalCache.values = make(map[string]any)
	globalCache.onces = make(map[string]*sync.Once)
}

func loadDefaultEnv() {
	defaultEnvLoaded.Do(func() {
		// The default .env file is optional.
		_ = godotenv.Load()
	})
}

func getTypeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
