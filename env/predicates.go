// SPDX-FileCopyrightText: Copyright 2026 SafariHQ, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import "strings"

// Is reports whether the deployment environment equals name,
// case-insensitively.
func (e *Env) Is(name string) bool {
	return strings.EqualFold(e.Get(e.envKey, ""), name)
}

// IsTest reports whether the deployment environment is "test".
func (e *Env) IsTest() bool { return e.Is("test") }

// IsDevelopment reports whether the deployment environment is
// "development".
func (e *Env) IsDevelopment() bool { return e.Is("development") }

// IsProduction reports whether the deployment environment is
// "production".
func (e *Env) IsProduction() bool { return e.Is("production") }

// IsLocal reports whether the deployment environment is either "test"
// or "development".
func (e *Env) IsLocal() bool { return e.IsTest() || e.IsDevelopment() }

// IsHeroku reports whether the runtime environment is "heroku",
// case-insensitively.
func (e *Env) IsHeroku() bool {
	return strings.EqualFold(e.Get(e.runtimeKey, ""), "heroku")
}
