// SPDX-FileCopyrightText: Copyright 2026 SafariHQ, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/safarihq/envcore/coerce"
	"github.com/safarihq/envcore/locale"
)

// Well-known store keys consulted by the derived accessors.
const (
	// EnvironmentKey names the deployment environment ("test",
	// "development", "production"). Overridable per Env via
	// WithEnvironmentKey.
	EnvironmentKey = "APP_ENV"

	// RuntimeKey names the hosting runtime, compared against "heroku"
	// by IsHeroku.
	RuntimeKey = "RUNTIME_ENV"

	// VersionKey overrides the version passed to APIVersion.
	VersionKey = "API_VERSION"

	// LocaleKey overrides the detected locale in Locale.
	LocaleKey = "DEFAULT_LOCALE"

	// CountryCodeKey overrides the derived code in CountryCode.
	CountryCodeKey = "DEFAULT_COUNTRY_CODE"
)

// Env reads typed values from an environment store. The zero value is
// not usable; construct with New.
//
// All read accessors trigger the one-time dotenv load before consulting
// the store. Env is safe for concurrent readers; writes go through the
// underlying Store's own guarantees.
type Env struct {
	store      Store
	loader     FileLoader
	detector   locale.Detector
	log        *zap.Logger
	dir        string
	envKey     string
	runtimeKey string

	loadOnce   sync.Once
	loadResult LoadResult
}

// Option configures an Env created by New.
type Option func(*Env)

// WithStore sets the backing store. The default is the process
// environment via OSStore.
func WithStore(s Store) Option {
	return func(e *Env) {
		e.store = s
	}
}

// WithDir sets the base directory searched for the .env file.
// The default is the process working directory at load time.
func WithDir(dir string) Option {
	return func(e *Env) {
		e.dir = dir
	}
}

// WithFileLoader sets the dotenv loader. The default is DotenvLoader.
func WithFileLoader(l FileLoader) Option {
	return func(e *Env) {
		e.loader = l
	}
}

// WithLogger sets the logger used for coercion fallback warnings.
// The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Env) {
		e.log = log
	}
}

// WithLocaleDetector sets the OS locale detector used by Locale.
func WithLocaleDetector(d locale.Detector) Option {
	return func(e *Env) {
		e.detector = d
	}
}

// WithEnvironmentKey overrides the store key consulted by Is and the
// environment predicates.
func WithEnvironmentKey(key string) Option {
	return func(e *Env) {
		e.envKey = key
	}
}

// WithRuntimeKey overrides the store key consulted by IsHeroku.
func WithRuntimeKey(key string) Option {
	return func(e *Env) {
		e.runtimeKey = key
	}
}

// New constructs an Env over the process environment, configured by the
// given options.
func New(opts ...Option) *Env {
	e := &Env{
		store:      &OSStore{},
		loader:     &DotenvLoader{},
		detector:   locale.NewOSDetector(),
		log:        zap.NewNop(),
		envKey:     EnvironmentKey,
		runtimeKey: RuntimeKey,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load performs the one-time dotenv bootstrap and returns its memoized
// result. The file is read at most once per Env regardless of how many
// times Load (or any read accessor) is called.
//
// Pairs from the file are written to the store only for keys not
// already present; existing environment entries always win. A missing
// file is success with an empty result. A malformed file records the
// error on the result without disturbing reads of what is already in
// the store.
func (e *Env) Load() LoadResult {
	e.loadOnce.Do(e.loadDotenv)
	return e.loadResult
}

func (e *Env) loadDotenv() {
	dir := e.dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			e.loadResult = LoadResult{Err: fmt.Errorf("resolve working directory: %w", err)}
			return
		}
		dir = wd
	}

	values, err := e.loader.Load(dir)
	if err != nil {
		e.log.Warn("dotenv load failed", zap.String("dir", dir), zap.Error(err))
		e.loadResult = LoadResult{Err: err}
		return
	}

	for key, value := range values {
		if _, ok := e.store.Lookup(key); ok {
			continue
		}
		if err := e.store.Set(key, value); err != nil {
			e.loadResult = LoadResult{Values: values, Err: fmt.Errorf("seed %s: %w", key, err)}
			return
		}
	}
	e.loadResult = LoadResult{Values: values}
}

// Lookup returns the raw stored value for key and whether it is
// present. No coercion is applied.
func (e *Env) Lookup(key string) (string, bool) {
	e.Load()
	return e.store.Lookup(key)
}

// Get returns the raw stored value for key, or def when the key is
// absent. A present-but-empty value is returned as-is, not replaced by
// the default.
func (e *Env) Get(key, def string) string {
	if v, ok := e.Lookup(key); ok {
		return v
	}
	return def
}

// Set coerces value to its string form, stores it under key, and
// returns the stored string. Non-string values round-trip through the
// same coercion the read accessors apply.
func (e *Env) Set(key string, value any) (string, error) {
	s := coerce.ToString(value)
	if err := e.store.Set(key, s); err != nil {
		return "", fmt.Errorf("set %s: %w", key, err)
	}
	return s, nil
}

// Clear removes the given keys from the store. Absent keys are ignored.
func (e *Env) Clear(keys ...string) {
	for _, key := range keys {
		if err := e.store.Unset(key); err != nil {
			e.log.Warn("unset failed", zap.String("key", key), zap.Error(err))
		}
	}
}
