// SPDX-FileCopyrightText: Copyright 2026 SafariHQ, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import "strings"

// Fallbacks used when detection and derivation both come up empty.
const (
	DefaultLocale      = "sw"
	DefaultCountryCode = "TZ"
)

// Locale returns the OS-detected locale, falling back to def (or
// DefaultLocale when def is empty) if detection fails. A DEFAULT_LOCALE
// store value supersedes both. The result is recomputed on every call.
func (e *Env) Locale(def string) string {
	if def == "" {
		def = DefaultLocale
	}
	detected, err := e.detector.Detect()
	if err != nil {
		detected = def
	}
	return e.Get(LocaleKey, detected)
}

// CountryCode derives a country code from the locale: the last segment
// after splitting on underscore, then on hyphen, with the hyphen split
// winning when both apply. Locales without a region segment fall back
// to def (or DefaultCountryCode when def is empty). A
// DEFAULT_COUNTRY_CODE store value supersedes the derived code.
func (e *Env) CountryCode(def string) string {
	if def == "" {
		def = DefaultCountryCode
	}
	loc := e.Locale("")

	code := ""
	if parts := strings.Split(loc, "_"); len(parts) > 1 {
		code = parts[len(parts)-1]
	}
	if parts := strings.Split(loc, "-"); len(parts) > 1 {
		code = parts[len(parts)-1]
	}
	if code == "" {
		code = def
	}
	return e.Get(CountryCodeKey, code)
}
