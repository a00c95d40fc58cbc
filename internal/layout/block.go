// Package layout turns section content into format-agnostic layout
// instructions: styled text runs grouped into blocks, plus the word wrapping
// and character substitution rules every output backend shares.
package layout

import (
	"errors"

	"golang.org/x/text/encoding/charmap"
)

// ErrUnknownSection indicates a section key outside the canonical set.
var ErrUnknownSection = errors.New("unknown section key")

// Kind classifies a block.
type Kind int

// Block kinds.
const (
	KindTitle Kind = iota
	KindHeading
	KindParagraph
	KindBullet
	KindEntryTitle
	KindEntrySubtitle
	KindSpacer
	KindRule
)

var kindNames = [...]string{
	KindTitle:         "title",
	KindHeading:       "heading",
	KindParagraph:     "paragraph",
	KindBullet:        "bullet",
	KindEntryTitle:    "entry-title",
	KindEntrySubtitle: "entry-subtitle",
	KindSpacer:        "spacer",
	KindRule:          "rule",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Size is a font size tier. Backends map tiers to concrete sizes.
type Size int

// Size tiers, smallest first.
const (
	SizeSmall Size = iota
	SizeBody
	SizeHeading
	SizeTitle
)

// Align is the horizontal alignment of a block.
type Align int

// Alignments.
const (
	AlignLeft Align = iota
	AlignCenter
)

// Run is a span of text sharing one style.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
}

// sameStyle reports whether r and o can be merged into one run.
func (r Run) sameStyle(o Run) bool {
	return r.Bold == o.Bold && r.Italic == o.Italic
}

// Block is one layout instruction: a line-level unit of styled runs.
type Block struct {
	Kind   Kind
	Runs   []Run
	Size   Size
	Indent int
	Align  Align
}

// Text returns the concatenated text of all runs.
func (b Block) Text() string {
	switch len(b.Runs) {
	case 0:
		return ""
	case 1:
		return b.Runs[0].Text
	}
	n := 0
	for _, r := range b.Runs {
		n += len(r.Text)
	}
	buf := make([]byte, 0, n)
	for _, r := range b.Runs {
		buf = append(buf, r.Text...)
	}
	return string(buf)
}

// Options controls formatting.
type Options struct {
	// Charset is the target encoding. Nil means the backend accepts any UTF-8.
	Charset *charmap.Charmap

	// NameAlign positions the name line.
	NameAlign Align
}

// BulletGlyph is the canonical glyph backends draw before bullet blocks.
const BulletGlyph = "•"
