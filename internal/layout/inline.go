package layout

import (
	"strings"
	"unicode"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// inlineParser recognizes inline markdown only. Every line is a paragraph, so
// list markers, headings and other block syntax reach the caller untouched.
var inlineParser = parser.NewParser(
	parser.WithBlockParsers(
		util.Prioritized(parser.NewParagraphParser(), 1000),
	),
	parser.WithInlineParsers(
		util.Prioritized(parser.NewCodeSpanParser(), 100),
		util.Prioritized(parser.NewLinkParser(), 200),
		util.Prioritized(parser.NewAutoLinkParser(), 300),
		util.Prioritized(parser.NewEmphasisParser(), 500),
	),
)

// ParseInline converts one line of inline markdown into styled runs.
// "**x**" and "__x__" are bold, "*x*" and "_x_" italic; code spans keep their
// text; links keep their label followed by the destination in parentheses.
func ParseInline(line string) []Run {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	src := []byte(line)
	doc := inlineParser.Parse(text.NewReader(src))

	var (
		runs   []Run
		bold   int
		italic int
		links  []int
	)
	emit := func(s string) {
		if s == "" {
			return
		}
		runs = appendRun(runs, Run{Text: s, Bold: bold > 0, Italic: italic > 0})
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Emphasis:
			delta := 1
			if !entering {
				delta = -1
			}
			if node.Level >= 2 {
				bold += delta
			} else {
				italic += delta
			}
		case *ast.Text:
			if entering {
				emit(string(util.UnescapePunctuations(node.Segment.Value(src))))
				if node.SoftLineBreak() || node.HardLineBreak() {
					emit(" ")
				}
			}
		case *ast.String:
			if entering {
				emit(string(node.Value))
			}
		case *ast.AutoLink:
			if entering {
				emit(string(node.Label(src)))
			}
		case *ast.Link:
			if entering {
				links = append(links, len(runs))
				break
			}
			start := links[len(links)-1]
			links = links[:len(links)-1]
			dest := string(node.Destination)
			if dest != "" && dest != runsText(runs[min(start, len(runs)):]) {
				emit(" (" + dest + ")")
			}
		}
		return ast.WalkContinue, nil
	})

	if len(runs) == 0 && strings.IndexFunc(line, isAlnum) >= 0 {
		return []Run{{Text: line}}
	}
	return runs
}

// PlainText strips inline markdown from line and returns the bare text.
func PlainText(line string) string {
	return runsText(ParseInline(line))
}

// appendRun appends r, merging it into the last run when the style matches.
func appendRun(runs []Run, r Run) []Run {
	if n := len(runs); n > 0 && runs[n-1].sameStyle(r) {
		runs[n-1].Text += r.Text
		return runs
	}
	return append(runs, r)
}

func runsText(runs []Run) string {
	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// setStyle returns a copy of runs with bold and italic forced on when set.
func setStyle(runs []Run, bold, italic bool) []Run {
	out := make([]Run, 0, len(runs))
	for _, r := range runs {
		r.Bold = r.Bold || bold
		r.Italic = r.Italic || italic
		out = appendRun(out, r)
	}
	return out
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
