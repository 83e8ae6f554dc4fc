// SPDX-FileCopyrightText: Copyright 2026 SafariHQ, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.uber.org/zap"
)

// versionConfig holds the resolved options for APIVersion.
type versionConfig struct {
	version string
	prefix  string
	major   bool
	minor   bool
	patch   bool
}

// VersionOption configures the string produced by APIVersion.
type VersionOption func(*versionConfig)

// WithVersion sets the semantic version used when the store has no
// API_VERSION override. The default is "1.0.0".
func WithVersion(version string) VersionOption {
	return func(c *versionConfig) {
		c.version = version
	}
}

// WithPrefix sets the string prepended to the formatted version.
// The default is "v".
func WithPrefix(prefix string) VersionOption {
	return func(c *versionConfig) {
		c.prefix = prefix
	}
}

// WithMajor toggles the major-only granularity. It is on by default and
// is the fallback whenever neither minor nor patch is requested.
func WithMajor(enabled bool) VersionOption {
	return func(c *versionConfig) {
		c.major = enabled
	}
}

// WithMinor requests major.minor granularity.
func WithMinor(enabled bool) VersionOption {
	return func(c *versionConfig) {
		c.minor = enabled
	}
}

// WithPatch requests major.minor.patch granularity. Patch wins over
// minor, which wins over bare major.
func WithPatch(enabled bool) VersionOption {
	return func(c *versionConfig) {
		c.patch = enabled
	}
}

// APIVersion formats an API version string such as "v2" or "v2.3.4"
// from the configured version, with any API_VERSION store value taking
// precedence over the WithVersion option.
//
// An unparseable override falls back to the configured version; if that
// is also unparseable the zero version is formatted ("v0").
func (e *Env) APIVersion(opts ...VersionOption) string {
	cfg := &versionConfig{
		version: "1.0.0",
		prefix:  "v",
		major:   true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	v := e.coerceVersion(e.Get(VersionKey, cfg.version), cfg.version)
	switch {
	case cfg.patch:
		return fmt.Sprintf("%s%d.%d.%d", cfg.prefix, v.Major(), v.Minor(), v.Patch())
	case cfg.minor:
		return fmt.Sprintf("%s%d.%d", cfg.prefix, v.Major(), v.Minor())
	default:
		return fmt.Sprintf("%s%d", cfg.prefix, v.Major())
	}
}

func (e *Env) coerceVersion(raw, fallback string) *semver.Version {
	if v, err := parseVersion(raw); err == nil {
		return v
	}
	e.log.Warn("unparseable version", zap.String("value", raw))
	if v, err := parseVersion(fallback); err == nil {
		return v
	}
	return &semver.Version{}
}

// parseVersion parses a semantic version, tolerating a "v" prefix and
// partial forms like "2" or "2.3".
func parseVersion(s string) (*semver.Version, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if s == "" {
		return nil, fmt.Errorf("empty version string")
	}
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("invalid version format %q: %w", s, err)
	}
	return v, nil
}
