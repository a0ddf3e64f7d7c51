// Package repo provides access to the git index for the pre-commit hook.
package repo

import "context"

// StagedDiffFilter selects index entries that are Added, Copied or Modified.
const StagedDiffFilter = "ACM"

// VersionControl is the subset of git the hook depends on.
type VersionControl interface {
	// StagedFiles lists repository-relative paths staged as Added, Copied or
	// Modified, in git's listing order.
	StagedFiles(ctx context.Context) ([]string, error)

	// Add stages the given repository-relative paths.
	Add(ctx context.Context, paths []string) error
}

// Locator resolves locations inside the current repository.
type Locator interface {
	// Root returns the absolute path of the work tree's top level.
	Root(ctx context.Context) (string, error)

	// GitPath resolves a path inside the git directory, such as "hooks".
	GitPath(ctx context.Context, name string) (string, error)
}
