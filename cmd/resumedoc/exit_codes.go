package main

import (
	"errors"
	"os"

	resumedoc "github.com/alnah/go-resumedoc"
	"github.com/alnah/go-resumedoc/internal/config"
	"github.com/alnah/go-resumedoc/internal/extract"
)

// Exit codes for the resumedoc CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Every document written
	ExitGeneral = 1 // General/unexpected error, or degraded output with --strict
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, unreadable input
	ExitBrowser = 4 // Chrome engine errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, resumedoc.ErrBrowserConnect) ||
		errors.Is(err, resumedoc.ErrPageCreate) ||
		errors.Is(err, resumedoc.ErrPageLoad) ||
		errors.Is(err, resumedoc.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoResumes) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, extract.ErrEmptyDocument) ||
		errors.Is(err, extract.ErrCorruptDocument) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrOverwriteInput) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, resumedoc.ErrEmptyInput) ||
		errors.Is(err, resumedoc.ErrUnrecognizedFormat) ||
		errors.Is(err, resumedoc.ErrUnsupportedFormat) ||
		errors.Is(err, resumedoc.ErrUnknownEngine) ||
		errors.Is(err, resumedoc.ErrInvalidPageSize) ||
		errors.Is(err, resumedoc.ErrInvalidOrientation) ||
		errors.Is(err, resumedoc.ErrInvalidMargin) ||
		errors.Is(err, resumedoc.ErrInvalidSidebarWidth) ||
		errors.Is(err, resumedoc.ErrInvalidFooterPosition) ||
		errors.Is(err, resumedoc.ErrInvalidFooterDate) ||
		errors.Is(err, resumedoc.ErrStyleNotFound) ||
		errors.Is(err, resumedoc.ErrTemplateNotFound) ||
		errors.Is(err, resumedoc.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
