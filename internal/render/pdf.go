package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/alnah/go-resumedoc/internal/layout"
)

const (
	pdfFontFamily   = "Helvetica"
	pdfBulletIndent = 5.0 // mm reserved for the bullet glyph
	pdfRuleGap      = 3.0
	pdfFooterHeight = 8.0
	pdfFooterFontPt = 8.0
)

// pdfFont is the point size and line height (mm) of a size tier.
type pdfFont struct {
	pt, lineHeight float64
}

// pdfFonts maps size tiers to fonts. The sidebar draws body text one point
// smaller, like the small tier.
var pdfFonts = map[layout.Size]pdfFont{
	layout.SizeSmall:   {9, 4.5},
	layout.SizeBody:    {10, 5},
	layout.SizeHeading: {12, 8},
	layout.SizeTitle:   {18, 12},
}

// PDF renders documents onto a fixed-geometry page with the core Helvetica
// font. The sidebar is drawn first, then the main column starts again at the
// top of page one. Columns do not detect collisions with each other.
type PDF struct{}

// NewPDF creates a PDF backend.
func NewPDF() *PDF {
	return &PDF{}
}

// Format returns FormatPDF.
func (*PDF) Format() Format { return FormatPDF }

// pdfCharset is the text encoding of canvas documents. The core fonts cover
// Windows-1252, but text is kept to Latin-1 so typographic dashes, bullets
// and ellipses are written as their ASCII forms.
var pdfCharset = charmap.ISO8859_1

// Charset returns ISO-8859-1.
func (*PDF) Charset() *charmap.Charmap { return pdfCharset }

// column is a vertical strip of the page.
type column struct {
	x, w    float64
	sidebar bool
}

// canvas carries the drawing state of one rendering.
type canvas struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	top float64

	curStyle  string
	curPt     float64
	fontDirty bool
}

// Render draws doc and returns the PDF bytes.
func (b *PDF) Render(doc layout.Document, opts Options) ([]byte, error) {
	if _, _, err := opts.Page.Dimensions(); err != nil {
		return nil, err
	}

	orientation := "P"
	if opts.Page.Landscape {
		orientation = "L"
	}
	pdf := fpdf.New(orientation, "mm", strings.ToLower(opts.Page.Size), "")

	m := opts.Page.Margin
	bottom := m
	if opts.Footer != nil {
		bottom += pdfFooterHeight
	}
	pdf.SetMargins(m, m, m)
	pdf.SetAutoPageBreak(true, bottom)
	setPDFMeta(pdf, opts.Meta)

	c := &canvas{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
		top: m,
	}
	pdf.SetAcceptPageBreakFunc(c.acceptPageBreak)
	if opts.Footer != nil {
		pdf.AliasNbPages("")
		pdf.SetFooterFunc(func() { c.drawFooter(opts.Footer, m) })
	}
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	if len(doc.Sidebar) == 0 {
		c.drawColumn(column{x: m, w: pageW - 2*m}, doc.Main)
	} else {
		side := column{x: m, w: opts.Page.SidebarWidth, sidebar: true}
		mainX := m + opts.Page.SidebarWidth + opts.Page.Gutter
		c.drawColumn(side, doc.Sidebar)

		pdf.SetPage(1)
		c.fontDirty = true
		c.drawColumn(column{x: mainX, w: pageW - m - mainX}, doc.Main)
	}

	// Close draws the last footer on the current page.
	pdf.SetPage(pdf.PageCount())

	if pdf.Err() {
		return nil, fmt.Errorf("%w: %v", ErrCanvas, pdf.Error())
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCanvas, err)
	}
	return buf.Bytes(), nil
}

func setPDFMeta(pdf *fpdf.Fpdf, meta Meta) {
	if meta.Title != "" {
		pdf.SetTitle(meta.Title, true)
	}
	if meta.Author != "" {
		pdf.SetAuthor(meta.Author, true)
	}
	if meta.Creator != "" {
		pdf.SetCreator(meta.Creator, true)
	}
	if !meta.Created.IsZero() {
		pdf.SetCreationDate(meta.Created)
	}
}

// acceptPageBreak reuses pages an earlier column already created. It only
// lets fpdf add a page when the cursor is on the last page.
func (c *canvas) acceptPageBreak() bool {
	cur := c.pdf.PageNo()
	if cur >= c.pdf.PageCount() {
		c.fontDirty = true
		return true
	}
	x := c.pdf.GetX()
	c.pdf.SetPage(cur + 1)
	c.pdf.SetXY(x, c.top)
	if c.curPt > 0 {
		// The pending cell is drawn right after this returns.
		c.pdf.SetFontSize(c.curPt)
	}
	c.fontDirty = true
	return false
}

// breakPage moves to the top of the next page explicitly, for drawing
// operations that do not trigger fpdf's automatic break.
func (c *canvas) breakPage(col column) {
	if c.acceptPageBreak() {
		c.pdf.AddPage()
	}
	c.pdf.SetXY(col.x, c.top)
}

func (c *canvas) drawColumn(col column, blocks []layout.Block) {
	c.pdf.SetXY(col.x, c.top)
	for _, b := range blocks {
		c.drawBlock(col, b)
	}
}

func (c *canvas) drawBlock(col column, b layout.Block) {
	switch b.Kind {
	case layout.KindSpacer:
		c.advance(col, spacerHeight(b.Size))
		return
	case layout.KindRule:
		_, pageH := c.pdf.GetPageSize()
		_, _, _, bottom := c.pdf.GetMargins()
		if c.pdf.GetY()+pdfRuleGap > pageH-bottom {
			c.breakPage(col)
		}
		y := c.pdf.GetY()
		c.pdf.Line(col.x, y, col.x+col.w, y)
		c.advance(col, pdfRuleGap)
		return
	}

	font := c.fontFor(b.Size, col.sidebar)
	textX := col.x + float64(b.Indent)*pdfBulletIndent
	if b.Kind == layout.KindBullet && b.Indent == 0 {
		textX += pdfBulletIndent
	}
	avail := col.x + col.w - textX

	measure := func(text string, r layout.Run) float64 {
		c.setFont(r, font.pt)
		return c.pdf.GetStringWidth(c.tr(text))
	}

	lines := layout.WrapFunc(b.Runs, avail, measure)
	for i, line := range lines {
		x := textX
		if b.Align == layout.AlignCenter {
			lineW := 0.0
			for _, r := range line {
				lineW += measure(r.Text, r)
			}
			x = col.x + (col.w-lineW)/2
		}

		if b.Kind == layout.KindBullet && i == 0 {
			c.pdf.SetXY(textX-pdfBulletIndent, c.pdf.GetY())
			c.setFont(layout.Run{}, font.pt)
			c.pdf.CellFormat(pdfBulletIndent, font.lineHeight, c.tr(layout.Bullet(pdfCharset)), "", 0, "L", false, 0, "")
		} else {
			c.pdf.SetXY(x, c.pdf.GetY())
		}

		for _, r := range line {
			c.setFont(r, font.pt)
			text := c.tr(r.Text)
			c.pdf.CellFormat(c.pdf.GetStringWidth(text), font.lineHeight, text, "", 0, "L", false, 0, "")
		}
		c.pdf.SetXY(col.x, c.pdf.GetY()+font.lineHeight)
	}
}

// advance moves the cursor down by h within col.
func (c *canvas) advance(col column, h float64) {
	c.pdf.SetXY(col.x, c.pdf.GetY()+h)
}

func (c *canvas) fontFor(size layout.Size, sidebar bool) pdfFont {
	if sidebar && size == layout.SizeBody {
		size = layout.SizeSmall
	}
	f, ok := pdfFonts[size]
	if !ok {
		f = pdfFonts[layout.SizeBody]
	}
	return f
}

// setFont selects the font for r, re-emitting it after a page switch since
// each page keeps its own text state.
func (c *canvas) setFont(r layout.Run, pt float64) {
	style := ""
	if r.Bold {
		style += "B"
	}
	if r.Italic {
		style += "I"
	}
	if !c.fontDirty && style == c.curStyle && pt == c.curPt {
		return
	}
	c.pdf.SetFont(pdfFontFamily, style, pt)
	if c.fontDirty {
		c.pdf.SetFontSize(pt)
	}
	c.curStyle, c.curPt, c.fontDirty = style, pt, false
}

func (c *canvas) drawFooter(f *Footer, margin float64) {
	parts := f.Parts()
	if f.ShowPageNumber {
		parts = append(parts, fmt.Sprintf("%d/{nb}", c.pdf.PageNo()))
	}
	if len(parts) == 0 {
		return
	}

	align := "R"
	switch f.Position {
	case "left":
		align = "L"
	case "center":
		align = "C"
	}

	c.pdf.SetY(-(margin + pdfFooterHeight/2))
	c.pdf.SetFont(pdfFontFamily, "I", pdfFooterFontPt)
	c.pdf.SetTextColor(128, 128, 128)
	c.pdf.CellFormat(0, pdfFooterHeight/2, c.tr(layout.Transliterate(strings.Join(parts, " - "), pdfCharset)), "", 0, align, false, 0, "")
	c.pdf.SetTextColor(0, 0, 0)
	c.fontDirty = true
}

func spacerHeight(s layout.Size) float64 {
	if s == layout.SizeSmall {
		return 2
	}
	return 4
}
