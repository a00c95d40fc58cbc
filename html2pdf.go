package resumedoc

import (
	"context"
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"golang.org/x/text/encoding/charmap"

	"github.com/alnah/go-resumedoc/internal/fileutil"
	"github.com/alnah/go-resumedoc/internal/layout"
	"github.com/alnah/go-resumedoc/internal/process"
	"github.com/alnah/go-resumedoc/internal/render"
)

// pdfRenderer abstracts PDF rendering from an HTML file to enable testing without a browser.
type pdfRenderer interface {
	RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error)
	Close() error
}

// contextBackend is implemented by backends whose rendering can be cancelled.
type contextBackend interface {
	RenderContext(ctx context.Context, doc layout.Document, opts render.Options) ([]byte, error)
}

// Compile-time interface checks
var (
	_ pdfRenderer    = (*rodRenderer)(nil)
	_ render.Backend = (*chromeBackend)(nil)
	_ contextBackend = (*chromeBackend)(nil)
)

// pdfOptions holds options for PDF generation.
type pdfOptions struct {
	Page   render.Page
	Footer *render.Footer
}

const (
	mmPerInch = 25.4

	// footerReserveMM is added to the bottom margin when Chrome draws a footer.
	footerReserveMM = 7
)

// rodRenderer implements pdfRenderer using go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodRenderer struct {
	mu       sync.Mutex
	launcher *launcher.Launcher
	browser  *rod.Browser
	timeout  time.Duration
}

// newRodRenderer creates a rodRenderer with the given timeout.
func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (r *rodRenderer) ensureBrowser() (*rod.Browser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser != nil {
		return r.browser, nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		r.kill(l)
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.launcher, r.browser = l, browser
	return browser, nil
}

// Close releases browser resources, including any child processes the
// browser left behind.
func (r *rodRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	if r.launcher != nil {
		r.kill(r.launcher)
		r.launcher = nil
	}
	return err
}

func (r *rodRenderer) kill(l *launcher.Launcher) {
	if pid := l.PID(); pid > 0 {
		process.KillProcessGroup(pid)
	}
	l.Kill()
}

// RenderFromFile opens a local HTML file in headless Chrome and renders it to PDF.
// Returns explicit errors instead of panicking when browser operations fail.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	browser, err := r.ensureBrowser()
	if err != nil {
		return nil, err
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "file://" + filePath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	// Wait for page to load with timeout from context or default
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdfOpts, err := buildPDFOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	reader, err := page.PDF(pdfOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// buildPDFOptions constructs proto.PagePrintToPDF for the page geometry with
// an optional native footer.
func buildPDFOptions(opts *pdfOptions) (*proto.PagePrintToPDF, error) {
	page := render.DefaultPage()
	var footer *render.Footer
	if opts != nil {
		page, footer = opts.Page, opts.Footer
	}

	w, h, err := page.Dimensions()
	if err != nil {
		return nil, err
	}
	margin := page.Margin / mmPerInch
	marginBottom := margin
	if footer != nil {
		marginBottom = (page.Margin + footerReserveMM) / mmPerInch
	}

	pdfOpts := &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(w / mmPerInch),
		PaperHeight:     floatPtr(h / mmPerInch),
		MarginTop:       floatPtr(margin),
		MarginBottom:    floatPtr(marginBottom),
		MarginLeft:      floatPtr(margin),
		MarginRight:     floatPtr(margin),
		PrintBackground: true,
	}

	if footer != nil {
		pdfOpts.DisplayHeaderFooter = true
		pdfOpts.HeaderTemplate = "<span></span>" // Empty header
		pdfOpts.FooterTemplate = buildFooterTemplate(footer, page.Margin)
	}

	return pdfOpts, nil
}

// buildFooterTemplate generates an HTML template for Chrome's native footer.
// Page numbers use Chrome's pageNumber and totalPages classes.
func buildFooterTemplate(f *render.Footer, marginMM float64) string {
	if f == nil {
		return "<span></span>"
	}

	var parts []string
	for _, p := range f.Parts() {
		parts = append(parts, html.EscapeString(p))
	}
	if f.ShowPageNumber {
		parts = append(parts, `<span class="pageNumber"></span>/<span class="totalPages"></span>`)
	}

	if len(parts) == 0 {
		return "<span></span>"
	}

	textAlign := "right"
	switch f.Position {
	case "left":
		textAlign = "left"
	case "center":
		textAlign = "center"
	}

	return fmt.Sprintf(`<div style="font-size: 8px; font-family: %s; color: #888; width: 100%%; text-align: %s; padding: 0 %.1fmm;">%s</div>`,
		defaultFontFamily, textAlign, marginMM, strings.Join(parts, " - "))
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}

// chromeBackend renders PDF by printing the html output in headless Chrome.
// It keeps the stylesheet's typography, at the cost of a browser process.
type chromeBackend struct {
	html     *render.HTML
	renderer pdfRenderer
	timeout  time.Duration
}

// newChromeBackend creates a chrome backend printing pages of h.
func newChromeBackend(h *render.HTML, timeout time.Duration) *chromeBackend {
	return &chromeBackend{html: h, renderer: newRodRenderer(timeout), timeout: timeout}
}

// Format returns FormatPDF.
func (*chromeBackend) Format() Format { return FormatPDF }

// Charset returns nil: Chrome renders UTF-8 text.
func (*chromeBackend) Charset() *charmap.Charmap { return nil }

// Render prints doc with the backend timeout.
func (c *chromeBackend) Render(doc layout.Document, opts render.Options) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	return c.RenderContext(ctx, doc, opts)
}

// RenderContext renders doc to html, writes it to a temporary file and
// prints it. The footer is drawn by Chrome, not by the html page.
func (c *chromeBackend) RenderContext(ctx context.Context, doc layout.Document, opts render.Options) ([]byte, error) {
	pageOpts := opts
	pageOpts.Footer = nil
	pageOpts.CSS = opts.CSS + buildPageCSS(opts.Page, opts.Footer != nil)

	htmlContent, err := c.html.Render(doc, pageOpts)
	if err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(string(htmlContent), "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return c.renderer.RenderFromFile(ctx, tmpPath, &pdfOptions{Page: opts.Page, Footer: opts.Footer})
}

// Close releases browser resources.
func (c *chromeBackend) Close() error {
	if c.renderer != nil {
		return c.renderer.Close()
	}
	return nil
}
