// SPDX-FileCopyrightText: Copyright 2026 SafariHQ, Inc.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/safarihq/envcore/env"
)

// Format represents the log output format.
type Format int

const (
	// FormatJSON produces JSON output via [log/slog.JSONHandler].
	// This is the default, suitable for production.
	FormatJSON Format = iota

	// FormatText produces human-readable output via
	// [log/slog.TextHandler], suitable for local development.
	FormatText
)

// config holds the resolved configuration for creating a logger.
type config struct {
	format Format
	level  slog.Leveler
	output io.Writer
}

// Option configures the logger created by [New].
type Option func(*config)

// WithFormat sets the output format. The default is [FormatJSON].
func WithFormat(f Format) Option {
	return func(c *config) {
		c.format = f
	}
}

// WithLevel sets the minimum log level. The default is
// [log/slog.LevelInfo]. Accepts any [log/slog.Leveler], including
// [*log/slog.LevelVar] for dynamic level changes.
func WithLevel(l slog.Leveler) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithOutput sets the destination writer. The default is [os.Stderr].
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// FromEnv derives format and level from the environment store:
// LOG_FORMAT ("json" or "text") and LOG_LEVEL ("debug", "info", "warn",
// "error"). Unset or unrecognized values leave the defaults untouched,
// so FromEnv composes with the explicit With options in either order.
func FromEnv(e *env.Env) Option {
	return func(c *config) {
		if strings.EqualFold(e.GetString("LOG_FORMAT", ""), "text") {
			c.format = FormatText
		}
		switch strings.ToLower(e.GetString("LOG_LEVEL", "")) {
		case "debug":
			c.level = slog.LevelDebug
		case "info":
			c.level = slog.LevelInfo
		case "warn":
			c.level = slog.LevelWarn
		case "error":
			c.level = slog.LevelError
		}
	}
}

// New creates a pre-configured [*log/slog.Logger].
//
// Defaults:
//   - Format: JSON ([FormatJSON])
//   - Level: INFO ([log/slog.LevelInfo])
//   - Output: [os.Stderr]
//   - Timestamps: [time.RFC3339]
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		format: FormatJSON,
		level:  slog.LevelInfo,
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:       cfg.level,
		ReplaceAttr: replaceAttr,
	}

	var handler slog.Handler
	switch cfg.format {
	case FormatText:
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	default:
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}
	return slog.New(handler)
}

// replaceAttr formats the time attribute to RFC3339; everything else
// passes through unchanged.
func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		if t, ok := a.Value.Any().(time.Time); ok {
			a.Value = slog.StringValue(t.Format(time.RFC3339))
		}
	}
	return a
}
