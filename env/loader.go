// SPDX-FileCopyrightText: Copyright 2026 SafariHQ, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=loader.go -destination=mocks/mock_loader.go -package=mocks FileLoader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// FileLoader reads key/value pairs from a configuration file under the
// given base directory.
type FileLoader interface {
	Load(dir string) (map[string]string, error)
}

// DotenvLoader implements FileLoader by parsing a dotenv file.
// A missing file is not an error; it loads as an empty set of pairs.
type DotenvLoader struct {
	// Filename overrides the file name within the base directory.
	// Empty means ".env".
	Filename string
}

// Load parses <dir>/.env and returns its key/value pairs.
// Comment lines, blank lines, and quoted values are handled by the
// dotenv format; malformed content surfaces as an error.
func (l *DotenvLoader) Load(dir string) (map[string]string, error) {
	name := l.Filename
	if name == "" {
		name = ".env"
	}
	path := filepath.Join(dir, name)
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return values, nil
}

// StaticLoader implements FileLoader with fixed results, for tests and
// hermetic embedding.
type StaticLoader struct {
	Values map[string]string
	Err    error
}

// Load returns the configured values and error regardless of dir.
func (l *StaticLoader) Load(string) (map[string]string, error) {
	return l.Values, l.Err
}

// LoadResult describes the outcome of the one-time dotenv load: the
// pairs parsed from the file (including ones skipped because the store
// already had them) and any parse or IO error.
type LoadResult struct {
	Values map[string]string
	Err    error
}
