// SPDX-FileCopyrightText: Copyright 2026 SafariHQ, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package coerce provides best-effort scalar coercion for values read from
the environment.

Environment values are always strings; callers usually want numbers,
booleans, or canonical string forms. The functions here never return an
error. Inputs that cannot be coerced yield a sentinel instead: ToNumber
returns NaN, ToString falls back to a JSON rendering.

# Usage

	coerce.ToNumber("42")    // 42
	coerce.ToNumber("")      // 0
	coerce.ToNumber("nope")  // NaN
	coerce.ToString(nil)     // ""
	coerce.ToString(3.5)     // "3.5"

Callers that need to distinguish "not a number" from a real value should
check the result with [math.IsNaN].
*/
package coerce
