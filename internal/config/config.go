// Package config holds the formatter configuration used by the hook.
//
// The defaults are the fixed configuration: Python sources, black targeting
// Python 3.12, 80 columns and no string quote normalization. A repository may
// commit a .stagefmt.yml to override them.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/fusecore/stagefmt/internal/formatter"
	"github.com/fusecore/stagefmt/internal/validator"
)

const FileName = ".stagefmt.yml"

const (
	DefaultTargetVersion = "py312"
	DefaultLineLength    = 80
)

const schemaID = "https://github.com/fusecore/stagefmt/config.schema.json"

//go:embed schema.json
var schemaJSON []byte

const DefaultConfigContent = `# stagefmt configuration
#
# stagefmt runs as a git pre-commit hook. It formats the staged files whose
# name ends with one of the extensions below and stages them again.

# File extensions to format.
extensions:
  - .py

formatter:
  # Formatter executable. Use an absolute path to pin a virtualenv's black.
  command: black
  # Oldest Python version the formatted code must run on.
  targetVersion: py312
  lineLength: 80
  # Leave string literal quotes as they are written.
  skipStringNormalization: true
`

type FormatterConfig struct {
	Command                 string `yaml:"command"`
	TargetVersion           string `yaml:"targetVersion"`
	LineLength              int    `yaml:"lineLength"`
	SkipStringNormalization bool   `yaml:"skipStringNormalization"`
}

// Options converts the settings into formatter options.
func (f FormatterConfig) Options() formatter.Options {
	return formatter.Options{
		TargetVersion:           f.TargetVersion,
		LineLength:              f.LineLength,
		SkipStringNormalization: f.SkipStringNormalization,
	}
}

type Config struct {
	Extensions []string        `yaml:"extensions"`
	Formatter  FormatterConfig `yaml:"formatter"`

	// Path is the file the configuration was read from, empty for defaults.
	Path string `yaml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Extensions: []string{".py"},
		Formatter: FormatterConfig{
			Command:                 formatter.DefaultBlackCommand,
			TargetVersion:           DefaultTargetVersion,
			LineLength:              DefaultLineLength,
			SkipStringNormalization: true,
		},
	}
}

// Load reads FileName from root and applies it over Default. A missing file
// yields the defaults.
func Load(root string, compiler validator.Compiler) (*Config, error) {
	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(path, data, compiler)
}

// Parse validates data against the configuration schema and applies it over
// Default. An empty document yields the defaults.
func Parse(path string, data []byte, compiler validator.Compiler) (*Config, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &InvalidYAMLError{Path: path, Wrapped: err}
	}

	cfg := Default()
	cfg.Path = path
	if raw == nil {
		return cfg, nil
	}

	doc, err := validator.ToJSONDocument(raw)
	if err != nil {
		return nil, &InvalidYAMLError{Path: path, Wrapped: err}
	}

	v, err := validator.CompileSchema(compiler, schemaID, schemaJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to compile configuration schema: %w", err)
	}
	if err := v.Validate(doc); err != nil {
		return nil, &InvalidConfigError{Path: path, Wrapped: err}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &InvalidYAMLError{Path: path, Wrapped: err}
	}
	return cfg, nil
}

// WriteDefault writes DefaultConfigContent to FileName in root and returns the
// path written. An existing file is only replaced when force is set.
func WriteDefault(root string, force bool) (string, error) {
	path := filepath.Join(root, FileName)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", &ConfigExistsError{Path: path}
		}
	}
	if err := os.WriteFile(path, []byte(DefaultConfigContent), 0o644); err != nil {
		return "", fmt.Errorf("failed to write configuration file: %w", err)
	}
	return path, nil
}
