package layout

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// substitutions maps common typographic runes to plain equivalents.
// It is consulted only for runes the target charset cannot encode.
var substitutions = map[rune]string{
	'‐': "-",   // hyphen
	'‑': "-",   // non-breaking hyphen
	'‒': "-",   // figure dash
	'–': "-",   // en dash
	'—': "-",   // em dash
	'―': "-",   // horizontal bar
	'−': "-",   // minus sign
	'‘': "'",   // left single quote
	'’': "'",   // right single quote
	'‚': "'",   // single low quote
	'′': "'",   // prime
	'“': `"`,   // left double quote
	'”': `"`,   // right double quote
	'„': `"`,   // double low quote
	'″': `"`,   // double prime
	'•': "*",   // bullet
	'●': "*",   // black circle
	'▪': "*",   // small black square
	'◦': "*",   // white bullet
	'‣': "*",   // triangular bullet
	'⁃': "*",   // hyphen bullet
	'…': "...", // ellipsis
	'™': "(TM)",
	'©': "(c)",
	'®': "(R)",
	'€': "EUR",
	'→': "->",
	'←': "<-",
	'↔': "<->",
	'⇒': "=>",
	'≤': "<=",
	'≥': ">=",
	'≠': "!=",
	'×': "x",
	'≈': "~",
	'\u2009': " ", // thin space
	'\u200A': " ", // hair space
	'\u202F': " ", // narrow no-break space
	'\u2003': " ", // em space
	'\u2002': " ", // en space
	'\u00A0': " ", // no-break space
	'\u200B': "",  // zero width space
	'\u00AD': "",  // soft hyphen
	'\uFEFF': "",  // byte order mark
}

// Transliterate rewrites s so that every rune is representable in cs.
// Runes cs cannot encode are replaced from the substitution table, or with
// '?' when no substitution is known. A nil cs targets UTF-8: only invalid
// byte sequences are replaced. Tabs become spaces in both cases.
func Transliterate(s string, cs *charmap.Charmap) string {
	if s == "" || (!strings.ContainsRune(s, '\t') && Representable(s, cs)) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size

		switch {
		case r == utf8.RuneError && size <= 1:
			sb.WriteByte('?')
		case r == '\t':
			sb.WriteByte(' ')
		case cs == nil || representable(cs, r):
			sb.WriteRune(r)
		default:
			if sub, ok := substitutions[r]; ok && representableString(cs, sub) {
				sb.WriteString(sub)
			} else {
				sb.WriteByte('?')
			}
		}
	}
	return sb.String()
}

// Representable reports whether every rune of s can be encoded in cs.
// A nil cs accepts any valid UTF-8.
func Representable(s string, cs *charmap.Charmap) bool {
	if cs == nil {
		return utf8.ValidString(s)
	}
	return representableString(cs, s)
}

// Bullet returns the canonical bullet glyph, or "*" when cs cannot encode it.
func Bullet(cs *charmap.Charmap) string {
	if cs == nil || representableString(cs, BulletGlyph) {
		return BulletGlyph
	}
	return "*"
}

func representable(cs *charmap.Charmap, r rune) bool {
	// Control characters other than newline never reach a canvas safely.
	if r < 0x20 && r != '\n' {
		return false
	}
	_, ok := cs.EncodeRune(r)
	return ok
}

func representableString(cs *charmap.Charmap, s string) bool {
	for _, r := range s {
		if !representable(cs, r) {
			return false
		}
	}
	return true
}
