package resumedoc

import (
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-resumedoc/internal/dateutil"
	"github.com/alnah/go-resumedoc/internal/fallback"
	"github.com/alnah/go-resumedoc/internal/render"
	"github.com/alnah/go-resumedoc/internal/sections"
)

// Format identifies an output format.
type Format = render.Format

// Output formats.
const (
	FormatPDF  = render.FormatPDF
	FormatDOCX = render.FormatDOCX
	FormatHTML = render.FormatHTML
)

// ParseFormat resolves a case-insensitive format name such as "pdf" or ".docx".
func ParseFormat(s string) (Format, error) {
	return render.ParseFormat(s)
}

// Tier records which path produced a document.
type Tier = fallback.Tier

// Tiers, best first.
const (
	// TierStructured is the full two-column layout.
	TierStructured = fallback.TierStructured
	// TierStructural is the raw text under a notice, in one column.
	TierStructural = fallback.TierStructural
	// TierTotal is the static error document.
	TierTotal = fallback.TierTotal
)

// Warning is a non-fatal diagnostic about the résumé text.
type Warning = sections.Warning

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Geometry bounds in millimetres.
const (
	MinMargin           = 5.0
	MaxMargin           = 50.0
	DefaultMargin       = 15.0
	MinSidebarWidth     = 30.0
	MaxSidebarWidth     = 120.0
	DefaultSidebarWidth = 50.0
	sidebarGutter       = 5.0
)

// PageSettings configures the page geometry of paged formats.
type PageSettings struct {
	Size         string  // "a4", "letter", "legal"
	Orientation  string  // "portrait", "landscape"
	Margin       float64 // millimetres, applied to all sides
	SidebarWidth float64 // millimetres; the main column starts one gutter after it
}

// DefaultPageSettings returns A4 portrait with 15 mm margins and a 50 mm
// sidebar.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:         PageSizeA4,
		Orientation:  OrientationPortrait,
		Margin:       DefaultMargin,
		SidebarWidth: DefaultSidebarWidth,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	switch strings.ToLower(p.Size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	switch strings.ToLower(p.Orientation) {
	case OrientationPortrait, OrientationLandscape:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.1f (must be between %.0f and %.0f mm)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	if p.SidebarWidth < MinSidebarWidth || p.SidebarWidth > MaxSidebarWidth {
		return fmt.Errorf("%w: %.1f (must be between %.0f and %.0f mm)", ErrInvalidSidebarWidth, p.SidebarWidth, MinSidebarWidth, MaxSidebarWidth)
	}

	return nil
}

// toRender converts validated settings to render geometry.
func (p *PageSettings) toRender() render.Page {
	if p == nil {
		p = DefaultPageSettings()
	}
	return render.Page{
		Size:         strings.ToLower(p.Size),
		Landscape:    strings.EqualFold(p.Orientation, OrientationLandscape),
		Margin:       p.Margin,
		SidebarWidth: p.SidebarWidth,
		Gutter:       sidebarGutter,
	}
}

// Footer configures the page footer.
type Footer struct {
	Position       string // "left", "center", "right" (default: "right")
	ShowPageNumber bool
	Date           string // literal text, "auto" or "auto:FORMAT"
	Text           string
}

// Validate checks that footer settings are valid.
// Returns nil if f is nil (nil means no footer).
func (f *Footer) Validate() error {
	if f == nil {
		return nil
	}
	switch strings.ToLower(f.Position) {
	case "", "left", "center", "right":
	default:
		return fmt.Errorf("%w: %q (must be left, center, or right)", ErrInvalidFooterPosition, f.Position)
	}
	if _, err := dateutil.Resolve(f.Date, time.Time{}); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFooterDate, err)
	}
	return nil
}

// resolve converts f to render form with its date resolved at now.
func (f *Footer) resolve(now time.Time) (*render.Footer, error) {
	if f == nil {
		return nil, nil
	}
	date, err := dateutil.Resolve(f.Date, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFooterDate, err)
	}
	pos := strings.ToLower(f.Position)
	if pos == "" {
		pos = "right"
	}
	return &render.Footer{
		Position:       pos,
		ShowPageNumber: f.ShowPageNumber,
		Date:           date,
		Text:           f.Text,
	}, nil
}

// Input contains conversion parameters.
type Input struct {
	Text    string        // Résumé markdown or plain text (required)
	Formats []Format      // Output formats (optional, nil = pdf)
	Page    *PageSettings // Page settings (optional, nil = renderer default)
	Footer  *Footer       // Footer (optional, nil = renderer default)

	// Title and Author set document metadata. Front matter at the top of
	// Text fills them when empty; the name section is the last resort.
	Title  string
	Author string

	// KeepPlaceholders renders the structured layout even when required
	// sections had to be synthesized. By default such résumés get the
	// structural fallback, which shows the text as it was received.
	KeepPlaceholders bool
}

// Document is one rendered output.
type Document struct {
	ID       string // render id, shared by all documents of one conversion
	Format   Format
	Bytes    []byte
	Tier     Tier
	Pages    int // paged formats only
	Warnings []Warning

	// Err is the failure that moved the document below TierStructured.
	Err error
}

// MIMEType returns the media type of the document.
func (d *Document) MIMEType() string {
	return d.Format.MIMEType()
}

// Degraded reports whether a fallback produced the document.
func (d *Document) Degraded() bool {
	return d.Tier != TierStructured
}

// Result is the outcome of Convert.
type Result struct {
	ID        string
	Sections  sections.Map
	Warnings  []Warning
	Preamble  []string
	Documents []*Document
}

// Document returns the document rendered in format f, or nil.
func (r *Result) Document(f Format) *Document {
	for _, d := range r.Documents {
		if d.Format == f {
			return d
		}
	}
	return nil
}

// FrontMatter is the optional YAML block at the top of résumé text.
type FrontMatter struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}
