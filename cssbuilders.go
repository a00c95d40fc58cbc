package resumedoc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alnah/go-resumedoc/internal/render"
)

// defaultFontFamily is the font stack of Chrome's native footer.
const defaultFontFamily = "Helvetica, Arial, sans-serif"

// buildColumnsCSS sizes the html grid to the configured sidebar and gutter.
// It is appended after the stylesheet so it wins over the style's defaults.
func buildColumnsCSS(p render.Page) string {
	return fmt.Sprintf(`
/* Columns */
.resume {
  grid-template-columns: %smm 1fr;
  column-gap: %smm;
}
.resume.single-column {
  grid-template-columns: 1fr;
}
`, cssNumber(p.SidebarWidth), cssNumber(p.Gutter))
}

// buildPageCSS sets the printed page box for the chrome engine. The bottom
// margin leaves room for Chrome's footer when one is drawn.
func buildPageCSS(p render.Page, footer bool) string {
	w, h, err := p.Dimensions()
	if err != nil {
		// Printing falls back to Chrome's default page; buildPDFOptions reports the error.
		return ""
	}
	bottom := p.Margin
	if footer {
		bottom += footerReserveMM
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, `
/* Page box */
@page {
  size: %smm %smm;
  margin: %smm %smm %smm %smm;
}
.resume {
  max-width: none;
}
`, cssNumber(w), cssNumber(h), cssNumber(p.Margin), cssNumber(p.Margin), cssNumber(bottom), cssNumber(p.Margin))
	buf.WriteString(`
/* Page breaks: keep headings with their first line */
h2, h3 {
  break-after: avoid;
  page-break-after: avoid;
}
p, li {
  orphans: 2;
  widows: 2;
}
`)
	return buf.String()
}

// cssNumber formats v without trailing zeros.
func cssNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
