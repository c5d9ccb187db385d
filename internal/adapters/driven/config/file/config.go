// Package file loads the optional TOML configuration for the tedparse
// CLI. A missing file is not an error: every setting has a default and
// command-line flags override whatever the file provides.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the tool configuration as stored on disk.
type Config struct {
	// DefaultCharset decodes payloads with no matching path hint.
	DefaultCharset string `toml:"default_charset"`

	// ArchiveGlob is the case-insensitive base-name pattern for
	// candidate archives.
	ArchiveGlob string `toml:"archive_glob"`

	// Filters is the record inclusion predicate: required field to
	// expected value.
	Filters map[string]string `toml:"filters"`

	// CharsetHints maps a base-name substring to the charset used for
	// matching archives.
	CharsetHints map[string]string `toml:"charset_hints"`
}

// Load reads a TOML config file. An empty path or a missing file yields
// the zero config; malformed TOML is an error.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
