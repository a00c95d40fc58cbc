package resumedoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-resumedoc/internal/assets"
	"github.com/alnah/go-resumedoc/internal/fallback"
	"github.com/alnah/go-resumedoc/internal/layout"
	"github.com/alnah/go-resumedoc/internal/logging"
	"github.com/alnah/go-resumedoc/internal/render"
	"github.com/alnah/go-resumedoc/internal/sections"
	"github.com/alnah/go-resumedoc/internal/yamlutil"
)

// Compile-time interface implementation checks.
var (
	_ render.Backend = (*render.PDF)(nil)
	_ render.Backend = (*render.DOCX)(nil)
	_ render.Backend = (*render.HTML)(nil)
)

// Renderer turns résumé text into documents.
// Create with NewRenderer, use Convert or Render, and Close when done.
// A Renderer is safe for concurrent use.
type Renderer struct {
	cfg      rendererConfig
	logger   *slog.Logger
	parser   *sections.Parser
	css      string
	backends map[Format]render.Backend
	closers  []io.Closer
}

// NewRenderer creates a Renderer with default configuration: canvas PDF
// engine, default style, A4 portrait, no footer.
// Returns error if an option is invalid or asset loading fails.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		cfg: rendererConfig{
			timeout: defaultTimeout,
			engine:  EngineCanvas,
			style:   assets.DefaultStyleName,
			lang:    "en",
			now:     time.Now,
		},
	}

	for _, opt := range opts {
		opt(r)
	}

	r.logger = logging.OrDiscard(r.cfg.logger)
	r.parser = sections.NewParser(r.logger)

	engine, err := ParseEngine(string(r.cfg.engine))
	if err != nil {
		return nil, err
	}
	r.cfg.engine = engine
	if r.cfg.page == nil {
		r.cfg.page = DefaultPageSettings()
	}
	if err := r.cfg.page.Validate(); err != nil {
		return nil, err
	}
	if err := r.cfg.footer.Validate(); err != nil {
		return nil, err
	}
	if r.cfg.style == "" {
		r.cfg.style = assets.DefaultStyleName
	}

	resolver, err := assets.NewResolver(r.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	r.css, err = resolver.Style(r.cfg.style)
	if err != nil {
		return nil, fmt.Errorf("loading style %q: %w", r.cfg.style, err)
	}
	tmpl, err := resolver.Template(assets.DefaultTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading template: %w", err)
	}
	htmlBackend, err := render.NewHTML(tmpl, render.WithLang(r.cfg.lang))
	if err != nil {
		return nil, fmt.Errorf("initializing html backend: %w", err)
	}

	r.backends = map[Format]render.Backend{
		FormatHTML: htmlBackend,
		FormatDOCX: render.NewDOCX(),
		FormatPDF:  render.NewPDF(),
	}
	if r.cfg.engine == EngineChrome {
		chrome := newChromeBackend(htmlBackend, r.cfg.timeout)
		r.backends[FormatPDF] = chrome
		r.closers = append(r.closers, chrome)
	}

	r.logger.Debug("renderer ready", "engine", r.cfg.engine, "style", r.cfg.style,
		"style_dir", resolver.HasStyleDir())
	return r, nil
}

// Engine returns the PDF engine in use.
func (r *Renderer) Engine() Engine {
	return r.cfg.engine
}

// Parse splits text into canonical sections. It never fails: missing
// required sections are synthesized and reported as warnings.
func (r *Renderer) Parse(text string) sections.Result {
	return r.parser.Parse(text)
}

// Render produces the structured document of m in format f, using the
// renderer's page and footer settings. m is only read.
// Failures are returned as *RenderError; no fallback is attempted.
func (r *Renderer) Render(ctx context.Context, m sections.Map, f Format) (doc *Document, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts, err := r.renderOptions(nil, nil, render.Meta{})
	if err != nil {
		return nil, err
	}
	return r.renderOne(ctx, uuid.NewString(), m, f, opts)
}

// RenderAll renders m in every format concurrently. Documents are returned
// in the order of formats; with no formats it renders PDF. The first failure
// cancels the remaining renderings.
func (r *Renderer) RenderAll(ctx context.Context, m sections.Map, formats ...Format) ([]*Document, error) {
	formats = uniqueFormats(formats)
	opts, err := r.renderOptions(nil, nil, render.Meta{})
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	docs := make([]*Document, len(formats))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range formats {
		g.Go(func() error {
			doc, err := r.renderOne(gctx, id, m, f, opts)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *Renderer) renderOne(ctx context.Context, id string, m sections.Map, f Format, opts render.Options) (*Document, error) {
	b, err := r.backend(f)
	if err != nil {
		return nil, err
	}
	data, pages, err := r.structured(ctx, m, b, opts)
	if err != nil {
		return nil, err
	}
	r.logger.Info("rendered resume", "render_id", id, "format", f, "tier", TierStructured.String(), "pages", pages, "bytes", len(data))
	return &Document{ID: id, Format: f, Bytes: data, Tier: TierStructured, Pages: pages}, nil
}

// Convert is the end-to-end entry point: it parses input.Text, renders every
// requested format and falls back per format when structured rendering
// fails. Each requested format yields a document; errors are returned only
// for invalid input or a cancelled context.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (r *Renderer) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("internal error: %v", rec)
		}
	}()

	if err := r.validateInput(input); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	logger := r.logger.With("render_id", id)

	text, fm := r.splitFrontMatter(input.Text, logger)
	parsed := r.parser.Parse(text)

	meta := render.Meta{
		Title:  firstNonEmpty(input.Title, fm.Title),
		Author: firstNonEmpty(input.Author, fm.Author, r.cfg.author),
	}
	opts, err := r.renderOptions(input.Page, input.Footer, meta)
	if err != nil {
		return nil, err
	}

	var skip error
	if len(parsed.Missing) > 0 && !input.KeepPlaceholders {
		skip = fmt.Errorf("%w: %s", ErrMissingSections, joinKeys(parsed.Missing))
		logger.Warn("skipping structured layout", "missing", joinKeys(parsed.Missing))
	}

	formats := uniqueFormats(input.Formats)
	docs := make([]*Document, len(formats))
	var g errgroup.Group
	for i, f := range formats {
		g.Go(func() error {
			docs[i] = r.convertOne(ctx, id, text, parsed.Map, f, opts, skip, logger)
			return nil
		})
	}
	_ = g.Wait()

	for _, d := range docs {
		d.Warnings = append([]Warning(nil), parsed.Warnings...)
	}

	return &Result{
		ID:        id,
		Sections:  parsed.Map,
		Warnings:  parsed.Warnings,
		Preamble:  parsed.Preamble,
		Documents: docs,
	}, nil
}

// convertOne renders one format, falling back when the structured layout
// is skipped or fails. It always returns a document.
func (r *Renderer) convertOne(ctx context.Context, id, text string, m sections.Map, f Format, opts render.Options, skip error, logger *slog.Logger) *Document {
	logger = logger.With("format", f)

	b, _ := r.backend(f)
	cause := skip
	if cause == nil && b != nil {
		data, pages, err := r.structured(ctx, m, b, opts)
		if err == nil {
			logger.Info("rendered resume", "tier", TierStructured.String(), "pages", pages, "bytes", len(data))
			return &Document{ID: id, Format: f, Bytes: data, Tier: TierStructured, Pages: pages}
		}
		cause = err
		logger.Error("structured rendering failed", "error", err)
	}

	res := fallback.Document(text, b, opts, logger)
	if res.Err != nil {
		cause = errors.Join(cause, res.Err)
	}
	logger.Info("rendered resume", "tier", res.Tier.String(), "pages", res.Pages, "bytes", len(res.Bytes))
	return &Document{ID: id, Format: res.Format, Bytes: res.Bytes, Tier: res.Tier, Pages: res.Pages, Err: cause}
}

// structured composes m for b, renders it and validates the payload.
func (r *Renderer) structured(ctx context.Context, m sections.Map, b render.Backend, opts render.Options) (data []byte, pages int, err error) {
	f := b.Format()
	defer func() {
		if rec := recover(); rec != nil {
			data, pages = nil, 0
			err = render.Wrap(render.StageRender, f, fmt.Errorf("%w: panic: %v", ErrRenderFailure, rec))
		}
	}()

	align := layout.AlignLeft
	if r.cfg.centeredName {
		align = layout.AlignCenter
	}
	doc, err := layout.Compose(m, layout.Options{Charset: b.Charset(), NameAlign: align})
	if err != nil {
		return nil, 0, render.Wrap(render.StageFormat, f, err)
	}
	if opts.Meta.Title == "" {
		opts.Meta.Title = doc.Title
	}
	if opts.Meta.Author == "" {
		opts.Meta.Author = doc.Title
	}

	if cb, ok := b.(contextBackend); ok {
		data, err = cb.RenderContext(ctx, doc, opts)
	} else {
		if err := ctx.Err(); err != nil {
			return nil, 0, render.Wrap(render.StageRender, f, err)
		}
		data, err = b.Render(doc, opts)
	}
	if err != nil {
		return nil, 0, render.Wrap(render.StageRender, f, err)
	}

	pages, err = render.Validate(f, data)
	if err != nil {
		return nil, 0, render.Wrap(render.StageValidate, f, err)
	}
	return data, pages, nil
}

// backend returns the backend of f or a format-stage *RenderError.
func (r *Renderer) backend(f Format) (render.Backend, error) {
	b, ok := r.backends[f]
	if !ok {
		return nil, render.Wrap(render.StageFormat, f, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f))
	}
	return b, nil
}

// renderOptions merges per-call settings over the renderer defaults.
func (r *Renderer) renderOptions(page *PageSettings, footer *Footer, meta render.Meta) (render.Options, error) {
	if page == nil {
		page = r.cfg.page
	}
	if footer == nil {
		footer = r.cfg.footer
	}
	now := r.cfg.now()
	f, err := footer.resolve(now)
	if err != nil {
		return render.Options{}, err
	}
	meta.Creator = render.Generator
	meta.Created = now
	return render.Options{
		Page:   page.toRender(),
		Footer: f,
		Meta:   meta,
		CSS:    r.css + buildColumnsCSS(page.toRender()),
	}, nil
}

// splitFrontMatter strips a leading YAML block. Invalid front matter is
// logged and dropped.
func (r *Renderer) splitFrontMatter(text string, logger *slog.Logger) (string, FrontMatter) {
	var fm FrontMatter
	raw, body, ok := yamlutil.SplitFrontMatter(text)
	if !ok {
		return text, fm
	}
	if err := yamlutil.Unmarshal(raw, &fm); err != nil {
		logger.Warn("ignoring invalid front matter", "error", err)
		return body, FrontMatter{}
	}
	return body, fm
}

// validateInput checks that required fields are present and valid.
//
// This is a TRUST BOUNDARY for direct library users who build Input manually.
// CLI users have their input validated earlier by Config.Validate() at config load time.
func (r *Renderer) validateInput(input Input) error {
	if strings.TrimSpace(input.Text) == "" {
		return ErrEmptyInput
	}
	if err := input.Page.Validate(); err != nil {
		return err
	}
	if err := input.Footer.Validate(); err != nil {
		return err
	}
	for _, f := range input.Formats {
		if !f.Valid() {
			return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
		}
	}
	return nil
}

// Close releases resources (headless Chrome when the chrome engine is used).
func (r *Renderer) Close() error {
	var errs []error
	for _, c := range r.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// uniqueFormats drops duplicates, keeping order. No formats means PDF.
func uniqueFormats(formats []Format) []Format {
	if len(formats) == 0 {
		return []Format{FormatPDF}
	}
	out := make([]Format, 0, len(formats))
	seen := make(map[Format]bool, len(formats))
	for _, f := range formats {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

func joinKeys(keys []sections.Key) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
