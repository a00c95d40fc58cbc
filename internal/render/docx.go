package render

import (
	"bytes"
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
	"golang.org/x/text/encoding/charmap"

	"github.com/alnah/go-resumedoc/internal/layout"
)

// docxBulletStyle is the list paragraph style shipped with the default template.
const docxBulletStyle = "ListBullet"

// Heading levels: the name is a level 1 heading and section titles level 2.
const (
	docxTitleLevel   = 1
	docxSectionLevel = 2
)

// DOCX renders documents as a single-column Word document built on the
// godocx default template. The sidebar is written first, followed by the
// main column. Page geometry and footers come from the template.
type DOCX struct{}

// NewDOCX creates a DOCX backend.
func NewDOCX() *DOCX {
	return &DOCX{}
}

// Format returns FormatDOCX.
func (*DOCX) Format() Format { return FormatDOCX }

// Charset returns nil: WordprocessingML is UTF-8.
func (*DOCX) Charset() *charmap.Charmap { return nil }

// Render writes doc as a .docx package.
func (b *DOCX) Render(doc layout.Document, opts Options) ([]byte, error) {
	if _, _, err := opts.Page.Dimensions(); err != nil {
		return nil, err
	}

	rd, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("creating docx: %w", err)
	}

	// Name first so the document reads top-down like the PDF.
	main := doc.Main
	var blocks []layout.Block
	for len(main) > 0 && (main[0].Kind == layout.KindTitle || main[0].Kind == layout.KindRule) {
		blocks = append(blocks, main[0])
		main = main[1:]
	}
	blocks = append(blocks, doc.Sidebar...)
	if len(doc.Sidebar) > 0 && len(main) > 0 {
		blocks = append(blocks, layout.Block{Kind: layout.KindSpacer})
	}
	blocks = append(blocks, main...)

	for _, blk := range blocks {
		if err := addDOCXBlock(rd, blk); err != nil {
			return nil, fmt.Errorf("writing %s block: %w", blk.Kind, err)
		}
	}

	var buf bytes.Buffer
	if err := rd.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing docx: %w", err)
	}
	return buf.Bytes(), nil
}

func addDOCXBlock(rd *docx.RootDoc, b layout.Block) error {
	switch b.Kind {
	case layout.KindRule:
		// The heading style already carries a bottom border.
		return nil
	case layout.KindTitle:
		_, err := rd.AddHeading(b.Text(), docxTitleLevel)
		return err
	case layout.KindHeading:
		_, err := rd.AddHeading(b.Text(), docxSectionLevel)
		return err
	case layout.KindSpacer:
		rd.AddParagraph("")
		return nil
	}

	p := rd.AddParagraph("")
	if b.Kind == layout.KindBullet {
		p.Style(docxBulletStyle)
	}
	for _, r := range b.Runs {
		run := p.AddText(r.Text)
		if r.Bold || b.Kind == layout.KindEntryTitle {
			run.Bold(true)
		}
		if r.Italic || b.Kind == layout.KindEntrySubtitle {
			run.Italic(true)
		}
	}
	return nil
}
