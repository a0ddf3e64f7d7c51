// Package formatter runs an external code formatter over a set of files.
package formatter

import "context"

// Formatter rewrites files in place.
type Formatter interface {
	// Format rewrites the given repository-relative paths. A non-nil error
	// means the formatter failed and the files may be partially rewritten.
	Format(ctx context.Context, paths []string) error
}

// Options is the fixed configuration handed to the formatter on every run.
type Options struct {
	// TargetVersion selects the language version the output must support,
	// for example "py312".
	TargetVersion string
	// LineLength is the maximum line length.
	LineLength int
	// SkipStringNormalization leaves string literal quotes as written.
	SkipStringNormalization bool
}
