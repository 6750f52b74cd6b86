// Package config loads CLI defaults from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File holds defaults for the search command. Pointer fields distinguish
// "unset" from the zero value.
type File struct {
	IgnoreCase      *bool   `yaml:"ignore_case"`
	MatchWholeWords *bool   `yaml:"match_whole_words"`
	ContextLines    *int    `yaml:"context_lines"`
	Color           *string `yaml:"color"`
	Format          *string `yaml:"format"`
	MaxFileSize     *int64  `yaml:"max_file_size"`
}

var (
	validColors  = map[string]bool{"auto": true, "always": true, "never": true}
	validFormats = map[string]bool{"human": true, "json": true, "sarif": true}
)

// DefaultPath returns $XDG_CONFIG_HOME/wgrep/config.yaml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset. Empty if neither is known.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "wgrep", "config.yaml")
}

// Parse decodes and validates YAML bytes.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads the config file at path. When path is empty the default path is
// used and a missing file yields an empty File; an explicit path must exist.
func Load(path string) (*File, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return &File{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

// Validate checks enumerated and numeric fields.
func (f *File) Validate() error {
	if f.ContextLines != nil && *f.ContextLines < 0 {
		return fmt.Errorf("context_lines must be >= 0, got %d", *f.ContextLines)
	}
	if f.MaxFileSize != nil && *f.MaxFileSize < 0 {
		return fmt.Errorf("max_file_size must be >= 0, got %d", *f.MaxFileSize)
	}
	if f.Color != nil && !validColors[*f.Color] {
		return fmt.Errorf("unknown color mode %q (want auto, always or never)", *f.Color)
	}
	if f.Format != nil && !validFormats[*f.Format] {
		return fmt.Errorf("unknown output format %q (want human, json or sarif)", *f.Format)
	}
	return nil
}
