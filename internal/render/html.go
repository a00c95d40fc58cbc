package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/alnah/go-resumedoc/internal/layout"
)

// Generator is written into the generator meta tag of html output.
const Generator = "go-resumedoc"

// HTML renders documents through an html/template page.
type HTML struct {
	tmpl *template.Template
	lang string
}

// HTMLOption configures the html backend.
type HTMLOption func(*HTML)

// WithLang sets the lang attribute of the root element.
func WithLang(lang string) HTMLOption {
	return func(h *HTML) {
		if lang != "" {
			h.lang = lang
		}
	}
}

// NewHTML parses src as the page template. The template receives the view
// built by Render and may call the "block" and "runs" templates it defines.
func NewHTML(src string, opts ...HTMLOption) (*HTML, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("%w: empty template", ErrTemplate)
	}
	tmpl, err := template.New("page").Option("missingkey=error").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplate, err)
	}
	h := &HTML{tmpl: tmpl, lang: "en"}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Format returns FormatHTML.
func (*HTML) Format() Format { return FormatHTML }

// Charset returns nil: html output is UTF-8.
func (*HTML) Charset() *charmap.Charmap { return nil }

type htmlBlock struct {
	Kind  string
	Runs  []layout.Run
	Align string
	Size  string
}

type htmlPage struct {
	Lang        string
	Generator   string
	Title       string
	CSS         template.CSS
	Sidebar     []htmlBlock
	Main        []htmlBlock
	Footer      string
	FooterAlign string
}

var htmlSizes = map[layout.Size]string{
	layout.SizeSmall:   "small",
	layout.SizeBody:    "body",
	layout.SizeHeading: "heading",
	layout.SizeTitle:   "title",
}

// Render executes the page template for doc.
func (h *HTML) Render(doc layout.Document, opts Options) ([]byte, error) {
	title := opts.Meta.Title
	if title == "" {
		title = doc.Title
	}

	page := htmlPage{
		Lang:      h.lang,
		Generator: Generator,
		Title:     title,
		CSS:       sanitizeCSS(opts.CSS),
		Sidebar:   htmlBlocks(doc.Sidebar),
		Main:      htmlBlocks(doc.Main),
	}
	if opts.Footer != nil {
		page.Footer = strings.Join(opts.Footer.Parts(), " - ")
		page.FooterAlign = opts.Footer.Position
		if page.FooterAlign == "" {
			page.FooterAlign = "right"
		}
	}

	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplate, err)
	}
	return buf.Bytes(), nil
}

func htmlBlocks(blocks []layout.Block) []htmlBlock {
	out := make([]htmlBlock, 0, len(blocks))
	for _, b := range blocks {
		align := "left"
		if b.Align == layout.AlignCenter {
			align = "center"
		}
		size, ok := htmlSizes[b.Size]
		if !ok {
			size = "body"
		}
		out = append(out, htmlBlock{Kind: b.Kind.String(), Runs: b.Runs, Align: align, Size: size})
	}
	return out
}

// sanitizeCSS neutralizes sequences that would close the style element.
func sanitizeCSS(css string) template.CSS {
	css = strings.ReplaceAll(css, "</", `<\/`)
	return template.CSS(css)
}
