// SPDX-FileCopyrightText: Copyright 2026 SafariHQ, Inc.
// SPDX-License-Identifier: Apache-2.0

package coerce

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// ToNumber coerces v to a float64 on a best-effort basis.
//
// nil and empty (or whitespace-only) strings coerce to 0. Numeric types
// pass through, booleans become 0 or 1, and numeric strings are parsed.
// Anything else yields NaN rather than an error.
func ToNumber(v any) float64 {
	if v == nil {
		return 0
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return 0
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return math.NaN()
	}
	return f
}

// ToString coerces v to a string on a best-effort basis.
//
// nil coerces to the empty string. Scalars use their canonical textual
// form ("true", "42", "3.5"). Slices, maps, and structs fall back to a
// JSON rendering; values that cannot be marshalled use fmt formatting.
// The non-scalar path exists for completeness and is not exercised by
// the typed accessors in the env package.
func ToString(v any) string {
	if v == nil {
		return ""
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
