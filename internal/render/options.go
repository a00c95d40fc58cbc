package render

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"

	"github.com/alnah/go-resumedoc/internal/layout"
)

// Page holds physical page geometry in millimetres.
type Page struct {
	Size         string // "a4", "letter", "legal"
	Landscape    bool
	Margin       float64
	SidebarWidth float64
	Gutter       float64
}

// DefaultPage returns A4 portrait with 15 mm margins and a 50 mm sidebar,
// which puts the main column at x = 70 mm.
func DefaultPage() Page {
	return Page{Size: "a4", Margin: 15, SidebarWidth: 50, Gutter: 5}
}

// pageSizes maps size names to portrait width and height in millimetres.
var pageSizes = map[string][2]float64{
	"a4":     {210, 297},
	"letter": {215.9, 279.4},
	"legal":  {215.9, 355.6},
}

// Dimensions returns the width and height of the page in millimetres.
func (p Page) Dimensions() (w, h float64, err error) {
	dims, ok := pageSizes[strings.ToLower(p.Size)]
	if !ok {
		return 0, 0, fmt.Errorf("%w: unknown page size %q", ErrCanvas, p.Size)
	}
	w, h = dims[0], dims[1]
	if p.Landscape {
		w, h = h, w
	}
	return w, h, nil
}

// Footer is a resolved page footer. Date is already formatted.
type Footer struct {
	Position       string // "left", "center", "right"
	ShowPageNumber bool
	Date           string
	Text           string
}

// Parts returns the static footer segments in display order.
func (f *Footer) Parts() []string {
	if f == nil {
		return nil
	}
	var parts []string
	if f.Date != "" {
		parts = append(parts, f.Date)
	}
	if f.Text != "" {
		parts = append(parts, f.Text)
	}
	return parts
}

// Meta is document metadata.
type Meta struct {
	Title   string
	Author  string
	Creator string
	Created time.Time
}

// Options configures a single rendering.
type Options struct {
	Page   Page
	Footer *Footer
	Meta   Meta

	// CSS is the stylesheet embedded by the html backend.
	CSS string
}

// Backend renders a composed document into one output format.
// Implementations are safe for concurrent use.
type Backend interface {
	Format() Format
	// Charset is the encoding documents must be composed with for this
	// backend; nil means UTF-8.
	Charset() *charmap.Charmap
	Render(doc layout.Document, opts Options) ([]byte, error)
}
