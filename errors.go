package resumedoc

import (
	"errors"

	"github.com/alnah/go-resumedoc/internal/assets"
	"github.com/alnah/go-resumedoc/internal/extract"
	"github.com/alnah/go-resumedoc/internal/render"
)

// Sentinel errors for library operations.
var (
	ErrEmptyInput      = errors.New("resume text cannot be empty")
	ErrRenderFailure   = errors.New("structured rendering failed")
	ErrMissingSections = errors.New("required sections missing")
	ErrUnknownEngine   = errors.New("unknown pdf engine")

	// Input errors shared with the extraction and rendering layers.
	ErrUnrecognizedFormat = extract.ErrUnrecognizedFormat
	ErrUnsupportedFormat  = render.ErrUnsupportedFormat

	// Chrome engine errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")

	// Page settings validation errors.
	ErrInvalidPageSize     = errors.New("invalid page size")
	ErrInvalidOrientation  = errors.New("invalid orientation")
	ErrInvalidMargin       = errors.New("invalid margin")
	ErrInvalidSidebarWidth = errors.New("invalid sidebar width")

	// Footer validation errors.
	ErrInvalidFooterPosition = errors.New("invalid footer position")
	ErrInvalidFooterDate     = errors.New("invalid footer date")

	// Asset loading errors.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrTemplateNotFound = assets.ErrTemplateNotFound
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

// RenderError describes a failed rendering attempt: the stage it failed at,
// the output format and the cause. Use errors.As to inspect it.
type RenderError = render.Error
