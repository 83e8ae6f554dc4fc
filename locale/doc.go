// SPDX-FileCopyrightText: Copyright 2026 SafariHQ, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package locale detects the operating-system locale.

Detection reads the POSIX locale environment variables in priority
order (LC_ALL, then LC_MESSAGES, then LANG), strips any charset or
modifier suffix ("en_US.UTF-8" becomes "en_US"), skips the C and POSIX
pseudo-locales, and validates the remainder as a BCP 47 language tag.

# Usage

	d := locale.NewOSDetector()
	tag, err := d.Detect()
	if errors.Is(err, locale.ErrNotDetected) {
		tag = "sw"
	}

# Testing

Detector is a single-method interface so callers can inject a stub. For
OSDetector itself, the environment lookup function is injectable:

	d := locale.NewOSDetectorWithLookup(func(key string) (string, bool) {
		if key == "LANG" {
			return "en_US.UTF-8", true
		}
		return "", false
	})
*/
package locale
