// SPDX-FileCopyrightText: Copyright 2026 SafariHQ, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"math"
	"slices"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/safarihq/envcore/coerce"
)

// GetArray returns the comma-separated values stored under key,
// appended to the given defaults. Every element is whitespace-trimmed,
// empty elements are dropped, and duplicates are removed preserving
// first-seen order. An empty key contributes nothing beyond the
// defaults.
func (e *Env) GetArray(key string, def ...string) []string {
	out := make([]string, 0, len(def))
	seen := make(map[string]struct{}, len(def))
	add := func(tok string) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return
		}
		if _, dup := seen[tok]; dup {
			return
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}

	for _, d := range def {
		add(d)
	}
	if key != "" {
		for _, tok := range strings.Split(e.Get(key, ""), ",") {
			add(tok)
		}
	}
	return out
}

// GetNumbers returns GetArray's elements coerced to numbers.
// Unparseable elements come back as NaN.
func (e *Env) GetNumbers(key string, def ...float64) []float64 {
	seeds := make([]string, 0, len(def))
	for _, d := range def {
		seeds = append(seeds, coerce.ToString(d))
	}
	items := e.GetArray(key, seeds...)
	out := make([]float64, 0, len(items))
	for _, item := range items {
		n := coerce.ToNumber(item)
		if math.IsNaN(n) {
			e.log.Warn("unparseable number in list",
				zap.String("key", key), zap.String("value", item))
		}
		out = append(out, n)
	}
	return out
}

// GetStrings is GetArray with defaults of any type, each coerced to its
// string form first.
func (e *Env) GetStrings(key string, def ...any) []string {
	seeds := make([]string, 0, len(def))
	for _, d := range def {
		seeds = append(seeds, coerce.ToString(d))
	}
	return e.GetArray(key, seeds...)
}

// GetStringSet is GetStrings with the result sorted lexicographically
// and deduplicated, so equal elements collapse regardless of position.
func (e *Env) GetStringSet(key string, def ...any) []string {
	items := e.GetStrings(key, def...)
	slices.Sort(items)
	return slices.Compact(items)
}

// GetNumber returns the value stored under key coerced to a number, or
// def when the key is absent. A present-but-empty value yields 0, and
// an unparseable value yields NaN; the default is never coerced.
func (e *Env) GetNumber(key string, def float64) float64 {
	raw, ok := e.Lookup(key)
	if !ok {
		return def
	}
	if raw == "" {
		return 0
	}
	n := coerce.ToNumber(raw)
	if math.IsNaN(n) {
		e.log.Warn("unparseable number", zap.String("key", key), zap.String("value", raw))
	}
	return n
}

// GetString returns the value stored under key, or def when the key is
// absent. A present-but-empty value is returned as-is.
func (e *Env) GetString(key, def string) string {
	raw, ok := e.Lookup(key)
	if !ok {
		return def
	}
	return raw
}

// GetBool returns the value stored under key as a boolean, or def when
// the key is absent. The literals "false" and "true" map to their
// boolean values; the empty string is false; any other present value is
// true, including "0" and "no".
func (e *Env) GetBool(key string, def bool) bool {
	raw, ok := e.Lookup(key)
	if !ok {
		return def
	}
	switch raw {
	case "true":
		return true
	case "false", "":
		return false
	}
	e.log.Debug("non-canonical boolean treated as true",
		zap.String("key", key), zap.String("value", raw))
	return true
}

// GetObject returns the value stored under key decoded from JSON, or
// def when the key is absent or empty. A nil def resolves to an empty
// map. Values that are not valid JSON are returned as the raw string
// rather than an error.
func (e *Env) GetObject(key string, def any) any {
	if def == nil {
		def = map[string]any{}
	}
	raw, ok := e.Lookup(key)
	if !ok || raw == "" {
		return def
	}
	if !gjson.Valid(raw) {
		e.log.Debug("value is not valid JSON, returning raw string",
			zap.String("key", key))
		return raw
	}
	return gjson.Parse(raw).Value()
}
