// SPDX-FileCopyrightText: Copyright 2026 SafariHQ, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env reads and type-coerces process environment variables behind
an injectable store, with a one-time .env bootstrap and a few derived
conveniences (environment predicates, API version strings, locale and
country-code derivation).

# Basic Usage

Construct an Env once and use its accessors anywhere configuration is
read. The first read triggers a single, memoized load of the .env file
in the working directory; variables already present in the environment
always win over file contents.

	e := env.New()
	port := e.GetNumber("PORT", 8080)
	hosts := e.GetArray("ALLOWED_HOSTS", "localhost")
	debug := e.GetBool("DEBUG", false)
	if e.IsProduction() {
		// ...
	}

# Coercion Rules

Accessors never return errors. A missing key resolves to the supplied
default; a present key is coerced best-effort, with NaN, the raw string,
or the zero value standing in for unparseable input. Present-but-empty
values are returned as stored, not replaced by the default, so an
explicitly empty variable is distinguishable from an unset one.

# Testing

The Store and FileLoader interfaces allow fully hermetic tests. Use
MapStore and StaticLoader directly, or the generated gomock mocks in the
mocks sub-package:

	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().Lookup("PORT").Return("9090", true)

	e := env.New(env.WithStore(store), env.WithFileLoader(&env.StaticLoader{}))

# Design

This package follows the interface-based dependency injection pattern
used throughout envcore. Production code constructs an Env over the real
process environment; tests substitute in-memory fakes or mocks.
*/
package env
