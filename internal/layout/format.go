package layout

import (
	"fmt"
	"strings"

	"github.com/alnah/go-resumedoc/internal/sections"
)

// ContactSeparator joins contact lines into one compact line.
const ContactSeparator = " | "

// Format converts the content of one section into layout blocks, starting
// with the section heading. Name has no heading; its single line is the
// document title. Content is transliterated to opts.Charset before any
// bullet or emphasis detection.
func Format(key sections.Key, content string, opts Options) ([]Block, error) {
	content = Transliterate(content, opts.Charset)

	switch key {
	case sections.Name:
		return formatName(content, opts), nil
	case sections.Contact:
		return withHeading(key, opts, formatContact(content)), nil
	case sections.Summary:
		return withHeading(key, opts, formatParagraphs(content)), nil
	case sections.Skills:
		return withHeading(key, opts, formatSkills(content)), nil
	case sections.Experience:
		return withHeading(key, opts, formatEntries(content)), nil
	case sections.Education:
		return withHeading(key, opts, formatEntries(content)), nil
	case sections.Certifications,
		sections.Projects,
		sections.Awards,
		sections.Publications,
		sections.HobbiesInterests:
		return withHeading(key, opts, formatGeneric(content)), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownSection, int(key))
	}
}

// Heading returns the heading block of a section.
func Heading(key sections.Key, opts Options) Block {
	return Block{
		Kind: KindHeading,
		Runs: []Run{{Text: Transliterate(key.Title(), opts.Charset), Bold: true}},
		Size: SizeHeading,
	}
}

func withHeading(key sections.Key, opts Options, body []Block) []Block {
	return append([]Block{Heading(key, opts)}, body...)
}

// formatName renders the first non-blank line, upper-cased, as the title.
func formatName(content string, opts Options) []Block {
	name := ""
	for _, line := range strings.Split(content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			name = PlainText(stripHeading(line))
			break
		}
	}
	if name == "" {
		return nil
	}
	return []Block{{
		Kind:  KindTitle,
		Runs:  []Run{{Text: strings.ToUpper(name), Bold: true}},
		Size:  SizeTitle,
		Align: opts.NameAlign,
	}}
}

// formatContact joins non-blank lines with ContactSeparator.
func formatContact(content string) []Block {
	var parts []string
	for _, line := range strings.Split(content, "\n") {
		line, _ = StripBullet(line)
		if line != "" {
			parts = append(parts, PlainText(line))
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return []Block{{
		Kind: KindParagraph,
		Runs: []Run{{Text: strings.Join(parts, ContactSeparator)}},
		Size: SizeSmall,
	}}
}

// formatSkills makes one bullet per line; "Label: rest" gets a bold label.
func formatSkills(content string) []Block {
	var out []Block
	for _, line := range strings.Split(content, "\n") {
		line, _ = StripBullet(line)
		if line == "" {
			continue
		}
		runs := ParseInline(line)
		if n := labelEnd(runsText(runs)); n > 0 {
			runs = emboldenPrefix(runs, n)
		}
		out = append(out, Block{Kind: KindBullet, Runs: runs, Size: SizeSmall, Indent: 1})
	}
	return out
}

// formatParagraphs emits one paragraph per blank-line separated block.
// Lines inside a block are joined with spaces.
func formatParagraphs(content string) []Block {
	var out []Block
	for i, block := range splitBlocks(content) {
		if i > 0 {
			out = append(out, Block{Kind: KindSpacer, Size: SizeSmall})
		}
		out = append(out, Block{
			Kind: KindParagraph,
			Runs: ParseInline(strings.Join(block, " ")),
			Size: SizeBody,
		})
	}
	return out
}

// formatEntries renders experience or education entries: bold title, italic
// subtitle, then one bullet per detail line.
func formatEntries(content string) []Block {
	var out []Block
	for i, e := range SplitEntries(content) {
		if i > 0 {
			out = append(out, Block{Kind: KindSpacer, Size: SizeSmall})
		}
		if e.Title != "" {
			out = append(out, Block{
				Kind: KindEntryTitle,
				Runs: setStyle(ParseInline(e.Title), true, false),
				Size: SizeBody,
			})
		}
		if e.Subtitle != "" {
			out = append(out, Block{
				Kind: KindEntrySubtitle,
				Runs: setStyle(ParseInline(e.Subtitle), false, true),
				Size: SizeBody,
			})
		}
		for _, d := range e.Details {
			out = append(out, Block{Kind: KindBullet, Runs: ParseInline(d), Size: SizeBody, Indent: 1})
		}
	}
	return out
}

// formatGeneric emits one block per non-blank line: a bullet when the line
// carries a list marker, a bold entry title for '#' sub-headers, and a
// paragraph otherwise.
func formatGeneric(content string) []Block {
	var out []Block
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			out = append(out, Block{
				Kind: KindEntryTitle,
				Runs: setStyle(ParseInline(stripHeading(line)), true, false),
				Size: SizeBody,
			})
			continue
		}
		if item, ok := StripBullet(line); ok {
			if item != "" {
				out = append(out, Block{Kind: KindBullet, Runs: ParseInline(item), Size: SizeBody, Indent: 1})
			}
			continue
		}
		out = append(out, Block{Kind: KindParagraph, Runs: ParseInline(line), Size: SizeBody})
	}
	return out
}

// labelEnd returns the byte length of a leading "Label:" in s, including the
// colon, or 0. A URL scheme separator or a colon between two digits is not a
// label delimiter.
func labelEnd(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] != ':' {
			continue
		}
		if strings.HasPrefix(s[i+1:], "//") {
			continue
		}
		if i > 0 && i+1 < len(s) && isDigit(s[i-1]) && isDigit(s[i+1]) {
			continue
		}
		if strings.TrimSpace(s[:i]) == "" {
			return 0
		}
		return i + 1
	}
	return 0
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// emboldenPrefix makes the first n bytes of the runs' text bold.
func emboldenPrefix(runs []Run, n int) []Run {
	out := make([]Run, 0, len(runs)+1)
	for _, r := range runs {
		switch {
		case n <= 0:
			out = appendRun(out, r)
		case len(r.Text) <= n:
			n -= len(r.Text)
			r.Bold = true
			out = appendRun(out, r)
		default:
			head, tail := r, r
			head.Text, tail.Text = r.Text[:n], r.Text[n:]
			head.Bold = true
			out = appendRun(out, head)
			out = appendRun(out, tail)
			n = 0
		}
	}
	return out
}
