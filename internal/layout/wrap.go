package layout

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MeasureFunc returns the rendered width of text in the style of r.
type MeasureFunc func(text string, r Run) float64

// word is a whitespace-free unit. It holds several pieces when the style
// changes inside it, e.g. a bold label immediately followed by ':'.
type word []Run

// Wrap breaks runs into lines of at most width characters, splitting only at
// whitespace. A word longer than width is placed on its own line unsplit.
// A width of zero or less disables wrapping.
//
// Wrap is the reference measure of the line-breaking rules: one column per
// rune, as a monospaced target would see it. The canvas backends call
// WrapFunc with font metrics and get the same breaks in physical units.
func Wrap(runs []Run, width int) [][]Run {
	return WrapFunc(runs, float64(width), func(text string, _ Run) float64 {
		return float64(utf8.RuneCountInString(text))
	})
}

// WrapFunc is Wrap with a caller-supplied measure, used by backends that
// work in physical units. With a measure of one unit per rune it returns
// exactly what Wrap returns.
func WrapFunc(runs []Run, width float64, measure MeasureFunc) [][]Run {
	words := splitWords(runs)
	if len(words) == 0 {
		return nil
	}

	var (
		lines [][]Run
		line  []Run
		lineW float64
	)
	for _, w := range words {
		wordW := 0.0
		for _, piece := range w {
			wordW += measure(piece.Text, piece)
		}

		gap := 0.0
		var space Run
		if len(line) > 0 {
			last := line[len(line)-1]
			space = Run{Text: " ", Bold: last.Bold && w[0].Bold, Italic: last.Italic && w[0].Italic}
			gap = measure(" ", space)
		}

		if len(line) > 0 && width > 0 && lineW+gap+wordW > width {
			lines = append(lines, line)
			line, lineW, gap = nil, 0, 0
		}
		if len(line) > 0 {
			line = appendRun(line, space)
		}
		for _, piece := range w {
			line = appendRun(line, piece)
		}
		lineW += gap + wordW
	}
	return append(lines, line)
}

// splitWords splits runs at whitespace. Text on both sides of a style change
// with no whitespace between stays in one word.
func splitWords(runs []Run) []word {
	var (
		words []word
		cur   word
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, cur)
			cur = nil
		}
	}
	for _, r := range runs {
		s := r.Text
		for s != "" {
			i := strings.IndexFunc(s, unicode.IsSpace)
			switch {
			case i == 0:
				flush()
				s = strings.TrimLeftFunc(s, unicode.IsSpace)
			case i < 0:
				cur = append(cur, Run{Text: s, Bold: r.Bold, Italic: r.Italic})
				s = ""
			default:
				cur = append(cur, Run{Text: s[:i], Bold: r.Bold, Italic: r.Italic})
				s = s[i:]
			}
		}
	}
	flush()
	return words
}
