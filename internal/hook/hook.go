// Package hook implements the pre-commit formatting pass: list the staged
// files, format the ones with a matching extension and stage them again.
package hook

import (
	"context"
	"log/slog"
	"slices"

	"github.com/fusecore/stagefmt/internal/formatter"
	"github.com/fusecore/stagefmt/internal/repo"
)

// Result describes a completed run.
type Result struct {
	// Files is the staged file set that was formatted and re-staged.
	// It is empty when there was nothing to do.
	Files []string
}

// NoOp reports whether the run found no matching staged files.
func (r Result) NoOp() bool {
	return len(r.Files) == 0
}

// Hook runs one formatting pass over the staged files.
type Hook struct {
	vc         repo.VersionControl
	formatter  formatter.Formatter
	extensions []string
	logger     *slog.Logger
}

// New creates a Hook. A nil logger discards log output.
func New(vc repo.VersionControl, f formatter.Formatter, extensions []string, logger *slog.Logger) *Hook {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Hook{
		vc:         vc,
		formatter:  f,
		extensions: NormalizeExtensions(extensions),
		logger:     logger.With("component", "hook"),
	}
}

// Run lists the staged files, formats those matching the configured
// extensions and re-stages every one of them. The first collaborator failure
// stops the run and is returned as a *StagedListFailure, *FormatterFailure or
// *IndexUpdateFailure.
func (h *Hook) Run(ctx context.Context) (Result, error) {
	staged, err := h.vc.StagedFiles(ctx)
	if err != nil {
		return Result{}, &StagedListFailure{Err: err}
	}

	files := Filter(staged, h.extensions)
	h.logger.Debug("staged files listed", "staged", len(staged), "matching", len(files),
		"extensions", h.extensions)
	if len(files) == 0 {
		return Result{}, nil
	}

	// files backs the Result; collaborators get copies.
	if err := h.formatter.Format(ctx, slices.Clone(files)); err != nil {
		h.logger.Debug("formatter failed", "files", files, "error", err)
		return Result{}, &FormatterFailure{Files: files, Err: err}
	}

	// Every formatted file is re-staged, changed or not.
	if err := h.vc.Add(ctx, slices.Clone(files)); err != nil {
		h.logger.Debug("re-staging failed", "files", files, "error", err)
		return Result{}, &IndexUpdateFailure{Files: files, Err: err}
	}

	h.logger.Debug("staged files formatted", "files", files)
	return Result{Files: files}, nil
}
