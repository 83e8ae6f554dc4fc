// SPDX-FileCopyrightText: Copyright 2026 SafariHQ, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t, map[string]string{EnvironmentKey: "test"})

	assert.True(t, e.Is("test"))
	assert.True(t, e.Is("TEST"))
	assert.True(t, e.Is("Test"))
	assert.False(t, e.Is("production"))
}

func TestIs_UnsetEnvironment(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t, nil)
	assert.False(t, e.Is("test"))
	assert.False(t, e.Is("production"))
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		environment  string
		isTest       bool
		isDev        bool
		isProduction bool
		isLocal      bool
	}{
		{"test", true, false, false, true},
		{"development", false, true, false, true},
		{"production", false, false, true, false},
		{"staging", false, false, false, false},
		{"PRODUCTION", false, false, true, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.environment, func(t *testing.T) {
			t.Parallel()
			e := newTestEnv(t, map[string]string{EnvironmentKey: tt.environment})
			assert.Equal(t, tt.isTest, e.IsTest())
			assert.Equal(t, tt.isDev, e.IsDevelopment())
			assert.Equal(t, tt.isProduction, e.IsProduction())
			assert.Equal(t, tt.isLocal, e.IsLocal())
		})
	}
}

func TestIsHeroku(t *testing.T) {
	t.Parallel()

	assert.True(t, newTestEnv(t, map[string]string{RuntimeKey: "heroku"}).IsHeroku())
	assert.True(t, newTestEnv(t, map[string]string{RuntimeKey: "Heroku"}).IsHeroku())
	assert.False(t, newTestEnv(t, map[string]string{RuntimeKey: "gcp"}).IsHeroku())
	assert.False(t, newTestEnv(t, nil).IsHeroku())
}

func TestWithEnvironmentKey(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t,
		map[string]string{"GO_ENV": "production"},
		WithEnvironmentKey("GO_ENV"),
	)
	assert.True(t, e.IsProduction())
}

func TestWithRuntimeKey(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t,
		map[string]string{"DYNO_RUNTIME": "heroku"},
		WithRuntimeKey("DYNO_RUNTIME"),
	)
	assert.True(t, e.IsHeroku())
}
