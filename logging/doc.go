// SPDX-FileCopyrightText: Copyright 2026 SafariHQ, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package logging builds pre-configured [log/slog] loggers.

It is the structured-logging counterpart to the zap-based logger
package, for callers that prefer the standard library's slog front end.

# Usage

	log := logging.New(
		logging.WithFormat(logging.FormatText),
		logging.WithLevel(slog.LevelDebug),
	)

# Environment-derived configuration

FromEnv pulls format and level from the environment store, so deployed
processes can switch output without a rebuild:

	e := env.New()
	log := logging.New(logging.FromEnv(e))

LOG_FORMAT=text selects the text handler; LOG_LEVEL accepts debug,
info, warn, and error.
*/
package logging
