// SPDX-FileCopyrightText: Copyright 2026 SafariHQ, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=store.go -destination=mocks/mock_store.go -package=mocks Store

import (
	"os"
	"sync"
)

// Store defines an interface for environment variable access.
// Lookup reports presence so callers can distinguish an unset key from
// one set to the empty string.
type Store interface {
	Lookup(key string) (string, bool)
	Set(key, value string) error
	Unset(key string) error
}

// OSStore implements Store using the standard os package. Mutations are
// process-global, exactly like os.Setenv.
type OSStore struct{}

// Lookup returns the value of the environment variable named by key and
// whether it is present.
func (*OSStore) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Set sets the environment variable named by key.
func (*OSStore) Set(key, value string) error {
	return os.Setenv(key, value)
}

// Unset removes the environment variable named by key.
func (*OSStore) Unset(key string) error {
	return os.Unsetenv(key)
}

// MapStore implements Store over an in-memory map. It is safe for
// concurrent use and is intended for tests and hermetic embedding.
type MapStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMapStore returns a MapStore seeded with a copy of seed.
// A nil seed yields an empty store.
func NewMapStore(seed map[string]string) *MapStore {
	values := make(map[string]string, len(seed))
	for k, v := range seed {
		values[k] = v
	}
	return &MapStore{values: values}
}

// Lookup returns the stored value for key and whether it is present.
func (s *MapStore) Lookup(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key. It never fails.
func (s *MapStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Unset removes key. Removing an absent key is a no-op.
func (s *MapStore) Unset(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
