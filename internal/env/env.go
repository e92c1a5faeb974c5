// Package env loads environment variables from .env files so provider API
// keys can stay out of the YAML config.
package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// DefaultFile is the .env file read from the working directory.
const DefaultFile = ".env"

// Load reads KEY=VALUE lines from path and sets them with os.Setenv. Values
// from the file override the process environment.
//
// File format:
//   - Empty lines and lines starting with # are ignored
//   - An optional "export " prefix is accepted
//   - Values may be wrapped in single or double quotes (stripped)
//
// A missing file is not an error.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		// Split on the first "=" so values may contain "="
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"'`)

		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}
	return nil
}
