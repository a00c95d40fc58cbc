package sections

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/alnah/go-resumedoc/internal/logging"
)

// headerPattern pairs a key with the header names that select it.
type headerPattern struct {
	key Key
	re  *regexp.Regexp
}

// headerPatterns is evaluated in order; the first match wins.
// Each pattern is anchored to the whole trimmed line so that a section name
// inside a sentence is never mistaken for a header.
var headerPatterns = compilePatterns([]struct {
	key   Key
	names string
}{
	{Name, `NAME`},
	{Contact, `CONTACT(?:\s+INFO(?:RMATION)?)?`},
	{Summary, `PROFESSIONAL\s+SUMMARY|SUMMARY`},
	{Skills, `SKILLS`},
	{Experience, `PROFESSIONAL\s+EXPERIENCE|EXPERIENCE|WORK\s+EXPERIENCE`},
	{Education, `EDUCATION`},
	{Certifications, `CERTIFICATIONS`},
	{Projects, `PROJECTS`},
	{HobbiesInterests, `HOBBIES\s*&\s*INTERESTS|HOBBIES|INTERESTS`},
	{Awards, `AWARDS`},
	{Publications, `PUBLICATIONS`},
})

func compilePatterns(defs []struct {
	key   Key
	names string
}) []headerPattern {
	out := make([]headerPattern, 0, len(defs))
	for _, d := range defs {
		out = append(out, headerPattern{
			key: d.key,
			re:  regexp.MustCompile(`(?i)^(?:#+)?\s*(?:` + d.names + `)[\s:]*$`),
		})
	}
	return out
}

var (
	crlfOrCR       = regexp.MustCompile(`\r\n?`)
	multipleBlanks = regexp.MustCompile(`\n{3,}`)
)

// Warning is a non-fatal diagnostic produced while parsing.
type Warning struct {
	Key     Key
	Message string
}

func (w Warning) String() string {
	return w.Key.String() + ": " + w.Message
}

// Result is the outcome of parsing a résumé.
type Result struct {
	Map      Map
	Warnings []Warning

	// Preamble holds non-blank lines found before the first recognized header.
	// They are not part of Map.
	Preamble []string

	// Missing lists required keys that were synthesized as placeholders.
	Missing []Key
}

// Parser splits résumé text into canonical sections.
// A Parser holds no mutable state and is safe for concurrent use.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a Parser that reports diagnostics to logger.
// A nil logger discards diagnostics.
func NewParser(logger *slog.Logger) *Parser {
	return &Parser{logger: logging.OrDiscard(logger)}
}

// Parse splits text into sections using a parser without logging.
func Parse(text string) Result {
	return NewParser(nil).Parse(text)
}

// MatchHeader reports which section a line opens, if any.
func MatchHeader(line string) (Key, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, false
	}
	for _, p := range headerPatterns {
		if p.re.MatchString(line) {
			return p.key, true
		}
	}
	return 0, false
}

// Parse scans text top to bottom and returns the section map.
// It never fails: required sections that are absent or blank are filled
// with a placeholder and reported as warnings.
func (p *Parser) Parse(text string) Result {
	res := Result{Map: make(Map)}

	var (
		current    Key
		hasCurrent bool
		buf        []string
	)

	flush := func() {
		if !hasCurrent {
			for _, l := range buf {
				if l != "" {
					res.Preamble = append(res.Preamble, l)
				}
			}
			return
		}
		content := collapse(buf)
		if prev, ok := res.Map[current]; ok && prev != "" && content != "" {
			content = prev + "\n\n" + content
		} else if ok && content == "" {
			content = prev
		}
		res.Map[current] = content
	}

	text = crlfOrCR.ReplaceAllString(text, "\n")
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if key, ok := MatchHeader(line); ok {
			flush()
			current, hasCurrent = key, true
			buf = buf[:0]
			continue
		}
		buf = append(buf, line)
	}
	flush()

	if len(res.Preamble) > 0 {
		msg := fmt.Sprintf("%d line(s) before the first section header were not assigned to any section", len(res.Preamble))
		res.Warnings = append(res.Warnings, Warning{Key: Name, Message: msg})
		p.logger.Warn(msg, "lines", len(res.Preamble))
	}

	for _, key := range required {
		if strings.TrimSpace(res.Map[key]) != "" {
			continue
		}
		res.Map[key] = Placeholder(key)
		res.Missing = append(res.Missing, key)
		msg := capitalize(key.String()) + " section not found or empty in parsed resume"
		res.Warnings = append(res.Warnings, Warning{Key: key, Message: msg})
		p.logger.Warn(msg, "section", key.String())
	}

	p.logger.Debug("parsed resume", "sections", len(res.Map), "missing", len(res.Missing))
	return res
}

// Placeholder returns the sentinel content synthesized for a missing section.
func Placeholder(key Key) string {
	return "[Missing " + capitalize(key.String()) + " Section]"
}

// collapse joins lines, trims the block and reduces blank runs to one blank line.
func collapse(lines []string) string {
	s := strings.TrimSpace(strings.Join(lines, "\n"))
	return multipleBlanks.ReplaceAllString(s, "\n\n")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
