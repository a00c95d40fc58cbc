package resumedoc

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Engine selects how PDF output is produced.
type Engine string

// PDF engines.
const (
	// EngineCanvas draws the two-column layout directly with fpdf.
	EngineCanvas Engine = "canvas"
	// EngineChrome prints the html output in headless Chrome.
	EngineChrome Engine = "chrome"
)

// ParseEngine resolves an engine name. An empty name selects EngineCanvas.
func ParseEngine(s string) (Engine, error) {
	switch Engine(strings.ToLower(strings.TrimSpace(s))) {
	case "", EngineCanvas:
		return EngineCanvas, nil
	case EngineChrome:
		return EngineChrome, nil
	}
	return "", fmt.Errorf("%w: %q (must be canvas or chrome)", ErrUnknownEngine, s)
}

// Option configures a Renderer.
type Option func(*Renderer)

// rendererConfig holds internal configuration for Renderer.
type rendererConfig struct {
	timeout      time.Duration
	engine       Engine
	style        string
	assetPath    string
	page         *PageSettings
	footer       *Footer
	centeredName bool
	lang         string
	author       string
	logger       *slog.Logger
	now          func() time.Time
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the chrome engine timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("resumedoc: WithTimeout duration must be positive")
	}
	return func(r *Renderer) {
		r.cfg.timeout = d
	}
}

// WithEngine selects the PDF engine. NewRenderer rejects unknown engines.
func WithEngine(e Engine) Option {
	return func(r *Renderer) {
		r.cfg.engine = e
	}
}

// WithStyle selects the stylesheet by name, for example "compact".
func WithStyle(name string) Option {
	return func(r *Renderer) {
		r.cfg.style = name
	}
}

// WithAssetPath sets a directory of custom styles and templates. Assets
// missing there fall back to the embedded ones.
func WithAssetPath(path string) Option {
	return func(r *Renderer) {
		r.cfg.assetPath = path
	}
}

// WithPageSettings sets the default page geometry. Input.Page overrides it
// per conversion.
func WithPageSettings(p *PageSettings) Option {
	return func(r *Renderer) {
		r.cfg.page = p
	}
}

// WithFooter sets the default footer. Input.Footer overrides it per
// conversion.
func WithFooter(f *Footer) Option {
	return func(r *Renderer) {
		r.cfg.footer = f
	}
}

// WithCenteredName centers the name line instead of aligning it left.
func WithCenteredName(on bool) Option {
	return func(r *Renderer) {
		r.cfg.centeredName = on
	}
}

// WithLang sets the language tag of html output.
func WithLang(lang string) Option {
	return func(r *Renderer) {
		r.cfg.lang = lang
	}
}

// WithAuthor sets the author metadata used when the input names none.
func WithAuthor(author string) Option {
	return func(r *Renderer) {
		r.cfg.author = author
	}
}

// WithLogger sets the logger. By default the renderer logs nothing.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		r.cfg.logger = l
	}
}

// WithClock sets the time source for footer dates and document metadata.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		if now != nil {
			r.cfg.now = now
		}
	}
}
