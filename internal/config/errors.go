package config

import "fmt"

type InvalidYAMLError struct {
	Path    string
	Wrapped error
}

func (e *InvalidYAMLError) Error() string {
	return fmt.Sprintf("%s is not a valid yaml document: %v", e.Path, e.Wrapped)
}

func (e *InvalidYAMLError) Unwrap() error { return e.Wrapped }

// InvalidConfigError reports a config document that does not match the
// configuration schema.
type InvalidConfigError struct {
	Path    string
	Wrapped error
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("%s is not a valid stagefmt configuration: %v", e.Path, e.Wrapped)
}

func (e *InvalidConfigError) Unwrap() error { return e.Wrapped }

type ConfigExistsError struct {
	Path string
}

func (e *ConfigExistsError) Error() string {
	return fmt.Sprintf("configuration already exists: %s (use --force to overwrite)", e.Path)
}
