// Package fallback produces a document when structured rendering fails.
//
// The chain has two tiers below the structured render. The structural tier
// draws the raw text in one column under a short notice. The total tier
// returns a static error document embedded at build time, so it cannot fail
// for a supported format.
package fallback

import (
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/alnah/go-resumedoc/internal/assets"
	"github.com/alnah/go-resumedoc/internal/layout"
	"github.com/alnah/go-resumedoc/internal/logging"
	"github.com/alnah/go-resumedoc/internal/render"
)

// Notice lines drawn above the raw text.
const (
	Notice   = "Note: Structured formatting could not be applied due to parsing issues."
	RawIntro = "Below is the raw optimized resume text:"
)

// Tier records which path produced a document.
type Tier int

// Tiers, best first.
const (
	TierStructured Tier = iota
	TierStructural
	TierTotal
)

func (t Tier) String() string {
	switch t {
	case TierStructured:
		return "structured"
	case TierStructural:
		return "structural"
	case TierTotal:
		return "total"
	}
	return "unknown"
}

// Layout lays text out as one column: the notice, a spacer, then every
// non-blank line as its own paragraph. Lines are transliterated to cs.
func Layout(text string, cs *charmap.Charmap) layout.Document {
	blocks := []layout.Block{
		paragraph(Notice, cs),
		paragraph(RawIntro, cs),
		{Kind: layout.KindSpacer, Size: layout.SizeBody},
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		blocks = append(blocks, paragraph(line, cs))
	}
	return layout.Document{Main: blocks}
}

func paragraph(s string, cs *charmap.Charmap) layout.Block {
	return layout.Block{
		Kind: layout.KindParagraph,
		Size: layout.SizeBody,
		Runs: []layout.Run{{Text: layout.Transliterate(s, cs)}},
	}
}

// Structural renders text with b as a single raw column and validates the
// payload. Panics in the backend are returned as errors.
func Structural(text string, b render.Backend, opts render.Options) (data []byte, pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			data, pages = nil, 0
			err = render.Wrap(render.StageFallback, b.Format(), fmt.Errorf("panic: %v", r))
		}
	}()

	data, err = b.Render(Layout(text, b.Charset()), opts)
	if err != nil {
		return nil, 0, render.Wrap(render.StageFallback, b.Format(), err)
	}
	pages, err = render.Validate(b.Format(), data)
	if err != nil {
		return nil, 0, render.Wrap(render.StageFallback, b.Format(), err)
	}
	return data, pages, nil
}

// Total returns the static error document for f.
func Total(f render.Format) ([]byte, error) {
	data, ok := assets.ErrorDocument(string(f))
	if !ok {
		return nil, fmt.Errorf("%w: %q", render.ErrUnsupportedFormat, f)
	}
	return data, nil
}

// Result is the outcome of the fallback chain.
type Result struct {
	Bytes  []byte
	Format render.Format
	Tier   Tier
	Pages  int

	// Err is the structural failure that forced the total tier, if any.
	Err error
}

// Document runs the chain for text: structural first, then total. It never
// fails for a supported format. For any other format it returns the html
// error document.
func Document(text string, b render.Backend, opts render.Options, logger *slog.Logger) Result {
	logger = logging.OrDiscard(logger)

	var structErr error
	if b != nil {
		data, pages, err := Structural(text, b, opts)
		if err == nil {
			return Result{Bytes: data, Format: b.Format(), Tier: TierStructural, Pages: pages}
		}
		structErr = err
		logger.Error("structural fallback failed", "format", b.Format(), "error", err)
	}

	f := render.FormatHTML
	if b != nil && b.Format().Valid() {
		f = b.Format()
	}
	data, err := Total(f)
	if err != nil {
		// Unreachable for the embedded formats.
		data, _ = assets.ErrorDocument(string(render.FormatHTML))
		f = render.FormatHTML
	}
	pages, _ := render.Validate(f, data)
	logger.Warn("returning static error document", "format", f, "tier", TierTotal.String())
	return Result{Bytes: data, Format: f, Tier: TierTotal, Pages: pages, Err: structErr}
}
