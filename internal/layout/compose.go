package layout

import (
	"fmt"

	"github.com/alnah/go-resumedoc/internal/sections"
)

// Document is a formatted résumé split into its two columns.
type Document struct {
	// Title is the plain name line, used for document metadata.
	Title string

	// Sidebar holds contact and skills, drawn in the narrow left column.
	Sidebar []Block

	// Main holds the name, a rule and every other section.
	Main []Block
}

// sidebarKeys are drawn in the sidebar, in this order.
var sidebarKeys = []sections.Key{sections.Contact, sections.Skills}

// IsSidebar reports whether key belongs to the sidebar column.
func IsSidebar(key sections.Key) bool {
	for _, k := range sidebarKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Compose formats every present section of m and assigns the blocks to
// columns. Sections keep template order within each column. A blank section
// is skipped. Flow formats read Sidebar then Main.
func Compose(m sections.Map, opts Options) (Document, error) {
	var doc Document

	for _, key := range sidebarKeys {
		blocks, err := formatSection(m, key, opts)
		if err != nil {
			return Document{}, err
		}
		doc.Sidebar = appendSection(doc.Sidebar, blocks)
	}

	for _, key := range sections.TemplateOrder() {
		if IsSidebar(key) {
			continue
		}
		blocks, err := formatSection(m, key, opts)
		if err != nil {
			return Document{}, err
		}
		if key == sections.Name {
			if len(blocks) > 0 {
				doc.Title = blocks[0].Text()
			}
			doc.Main = append(doc.Main, blocks...)
			doc.Main = append(doc.Main, Block{Kind: KindRule})
			continue
		}
		doc.Main = appendSection(doc.Main, blocks)
	}
	return doc, nil
}

func formatSection(m sections.Map, key sections.Key, opts Options) ([]Block, error) {
	if !m.Has(key) {
		return nil, nil
	}
	blocks, err := Format(key, m.Get(key), opts)
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", key, err)
	}
	return blocks, nil
}

// appendSection appends a section, separating it from the previous one.
func appendSection(dst, blocks []Block) []Block {
	if len(blocks) == 0 {
		return dst
	}
	if len(dst) > 0 && dst[len(dst)-1].Kind != KindRule {
		dst = append(dst, Block{Kind: KindSpacer, Size: SizeBody})
	}
	return append(dst, blocks...)
}
