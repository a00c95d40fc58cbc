package main

// Notes:
// - exitCodeFor: we test the sentinel errors of the library, config and
//   extract packages and of the CLI itself, plus wrapped errors to verify
//   the errors.Is() chain.
// - Exit code constants: we verify Unix conventions (0=success, 1=general,
//   2=usage) and custom codes below 126.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	resumedoc "github.com/alnah/go-resumedoc"
	"github.com/alnah/go-resumedoc/internal/config"
	"github.com/alnah/go-resumedoc/internal/extract"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Browser errors (exit 4)
		{"browser connect", resumedoc.ErrBrowserConnect, ExitBrowser},
		{"page create", resumedoc.ErrPageCreate, ExitBrowser},
		{"page load", resumedoc.ErrPageLoad, ExitBrowser},
		{"pdf generation", resumedoc.ErrPDFGeneration, ExitBrowser},
		{"strict degraded by browser", fmt.Errorf("%w: 1 document(s): %w", ErrDegraded, resumedoc.ErrBrowserConnect), ExitBrowser},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"no resumes", ErrNoResumes, ExitIO},
		{"read input", ErrReadInput, ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"empty document", extract.ErrEmptyDocument, ExitIO},
		{"corrupt document", extract.ErrCorruptDocument, ExitIO},
		{"wrapped file not exist", fmt.Errorf("reading: %w", os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"worker count", ErrInvalidWorkerCount, ExitUsage},
		{"overwrite input", ErrOverwriteInput, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"invalid config", config.ErrInvalidConfig, ExitUsage},
		{"empty input", resumedoc.ErrEmptyInput, ExitUsage},
		{"unrecognized input", resumedoc.ErrUnrecognizedFormat, ExitUsage},
		{"unsupported output", resumedoc.ErrUnsupportedFormat, ExitUsage},
		{"unknown engine", resumedoc.ErrUnknownEngine, ExitUsage},
		{"invalid page size", resumedoc.ErrInvalidPageSize, ExitUsage},
		{"invalid orientation", resumedoc.ErrInvalidOrientation, ExitUsage},
		{"invalid margin", resumedoc.ErrInvalidMargin, ExitUsage},
		{"invalid sidebar width", resumedoc.ErrInvalidSidebarWidth, ExitUsage},
		{"invalid footer position", resumedoc.ErrInvalidFooterPosition, ExitUsage},
		{"invalid footer date", resumedoc.ErrInvalidFooterDate, ExitUsage},
		{"style not found", resumedoc.ErrStyleNotFound, ExitUsage},
		{"template not found", resumedoc.ErrTemplateNotFound, ExitUsage},
		{"invalid asset path", resumedoc.ErrInvalidAssetPath, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading: %w", config.ErrConfigParse), ExitUsage},

		// General errors (exit 1)
		{"degraded", ErrDegraded, ExitGeneral},
		{"missing sections", resumedoc.ErrMissingSections, ExitGeneral},
		{"canceled", context.Canceled, ExitGeneral},
		{"unknown error", errors.New("something unexpected"), ExitGeneral},
		{"wrapped unknown", fmt.Errorf("context: %w", errors.New("unknown")), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix conventions
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Errorf("standard codes = %d/%d/%d, want 0/1/2", ExitSuccess, ExitGeneral, ExitUsage)
	}
	for _, code := range []int{ExitIO, ExitBrowser} {
		if code <= ExitUsage || code >= 126 {
			t.Errorf("custom code %d outside 3..125", code)
		}
	}
}
