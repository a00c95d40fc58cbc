package layout

import (
	"regexp"
	"strings"
)

// Entry is one job or one education record inside a section block.
type Entry struct {
	Title    string
	Subtitle string
	Details  []string
}

// trailingDates matches a title ending in a parenthesized segment that
// contains a digit, e.g. "Engineer, Acme (2020-Present)".
var trailingDates = regexp.MustCompile(`^(.*\S)\s*\(([^()]*\d[^()]*)\)$`)

// SplitEntries splits a section block on blank lines into entries.
// The first line of a block is its title (leading '#' markers removed), the
// second line is the subtitle when it is not a bullet, and every remaining
// line is a detail with any bullet glyph removed. When no subtitle line is
// given, a trailing parenthesized date range moves from the title to the
// subtitle. A block starting with a bullet has no title.
func SplitEntries(content string) []Entry {
	var entries []Entry
	for _, block := range splitBlocks(content) {
		var e Entry
		rest := block
		if _, isBullet := StripBullet(block[0]); !isBullet {
			e.Title = stripHeading(block[0])
			rest = block[1:]
			if len(rest) > 0 {
				if _, isBullet := StripBullet(rest[0]); !isBullet {
					e.Subtitle = rest[0]
					rest = rest[1:]
				}
			}
			if e.Subtitle == "" {
				if m := trailingDates.FindStringSubmatch(e.Title); m != nil {
					e.Title, e.Subtitle = m[1], strings.TrimSpace(m[2])
				}
			}
		}
		for _, line := range rest {
			d, _ := StripBullet(line)
			if d != "" {
				e.Details = append(e.Details, d)
			}
		}
		entries = append(entries, e)
	}
	return entries
}

// splitBlocks returns the non-blank lines of content grouped by blank lines.
func splitBlocks(content string) [][]string {
	var (
		blocks [][]string
		cur    []string
	)
	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}

// StripBullet removes a leading list marker from line and reports whether
// one was present. Recognized markers are "-", "+", "*" and "•"; a marker
// must be followed by a space, except '*' and '•' which may touch the text
// as long as the '*' does not open an emphasis span.
func StripBullet(line string) (string, bool) {
	line = strings.TrimSpace(line)
	for _, marker := range []string{"- ", "+ ", "* ", BulletGlyph} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(line[len(marker):]), true
		}
	}
	if line == "-" || line == "*" || line == "+" {
		return "", true
	}
	if strings.HasPrefix(line, "*") && !strings.HasPrefix(line, "**") &&
		!strings.Contains(line[1:], "*") {
		return strings.TrimSpace(line[1:]), true
	}
	return line, false
}

// stripHeading removes leading '#' markers from a sub-header line.
func stripHeading(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "#"))
}
