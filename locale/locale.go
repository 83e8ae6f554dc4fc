// SPDX-FileCopyrightText: Copyright 2026 SafariHQ, Inc.
// SPDX-License-Identifier: Apache-2.0

package locale

import (
	"errors"
	"os"
	"strings"

	"golang.org/x/text/language"
)

// ErrNotDetected is returned when no usable locale can be derived from
// the environment.
var ErrNotDetected = errors.New("locale not detected")

// Detector derives a locale identifier such as "en_US" or "sw".
type Detector interface {
	Detect() (string, error)
}

// LookupFunc resolves an environment variable, reporting presence.
type LookupFunc func(key string) (string, bool)

// localeKeys in POSIX priority order.
var localeKeys = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// OSDetector implements Detector by reading the POSIX locale
// environment variables.
type OSDetector struct {
	lookup LookupFunc
}

// NewOSDetector returns an OSDetector backed by the process environment.
func NewOSDetector() *OSDetector {
	return &OSDetector{lookup: os.LookupEnv}
}

// NewOSDetectorWithLookup returns an OSDetector that resolves variables
// through fn instead of the process environment.
func NewOSDetectorWithLookup(fn LookupFunc) *OSDetector {
	return &OSDetector{lookup: fn}
}

// Detect returns the first usable locale from LC_ALL, LC_MESSAGES, or
// LANG. The raw spelling is preserved ("en_US", not "en-US") so callers
// can rely on the conventional underscore form from the environment.
func (d *OSDetector) Detect() (string, error) {
	for _, key := range localeKeys {
		raw, ok := d.lookup(key)
		if !ok {
			continue
		}
		tag := Normalize(raw)
		if tag == "" || !Valid(tag) {
			continue
		}
		return tag, nil
	}
	return "", ErrNotDetected
}

// Normalize strips the charset and modifier suffixes from a POSIX
// locale value ("en_US.UTF-8@euro" becomes "en_US") and maps the C and
// POSIX pseudo-locales to the empty string.
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		raw = raw[:i]
	}
	if i := strings.IndexByte(raw, '@'); i >= 0 {
		raw = raw[:i]
	}
	switch raw {
	case "", "C", "POSIX":
		return ""
	}
	return raw
}

// Valid reports whether tag parses as a BCP 47 language tag.
// Underscores are folded to hyphens for validation only; POSIX spellings
// like "en_US" are considered valid.
func Valid(tag string) bool {
	_, err := language.Parse(strings.ReplaceAll(tag, "_", "-"))
	return err == nil
}
