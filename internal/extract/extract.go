// Package extract pulls plain text out of uploaded résumé files.
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/encoding/charmap"
)

// Sentinel errors.
var (
	ErrUnrecognizedFormat = errors.New("unrecognized file format")
	ErrEmptyDocument      = errors.New("document contains no text")
	ErrCorruptDocument    = errors.New("document could not be read")
)

// Extensions lists the accepted file extensions, lower case with the dot.
func Extensions() []string {
	return []string{".md", ".markdown", ".txt", ".pdf", ".docx"}
}

// Supported reports whether name has an accepted extension.
func Supported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions() {
		if ext == e {
			return true
		}
	}
	return false
}

// Text returns the text content of data, choosing the decoder from the
// extension of name.
func Text(name string, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown", ".txt":
		text = decodePlain(data)
	case ".pdf":
		text, err = pdfText(data)
	case ".docx":
		text, err = docxText(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedFormat, filepath.Base(name))
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}

// decodePlain strips a UTF-8 byte order mark and reads non-UTF-8 input as
// Windows-1252, the usual encoding of legacy plain-text exports.
func decodePlain(data []byte) string {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if utf8.Valid(data) {
		return string(data)
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "�")
	}
	return string(out)
}

func pdfText(data []byte) (text string, err error) {
	// The reader panics on some malformed object streams.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: pdf: %v", ErrCorruptDocument, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: pdf: %v", ErrCorruptDocument, err)
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: pdf: %v", ErrCorruptDocument, err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		return "", fmt.Errorf("%w: pdf: %v", ErrCorruptDocument, err)
	}
	return normalizeWhitespace(buf.String()), nil
}

func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: docx: %v", ErrCorruptDocument, err)
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("%w: docx: %v", ErrCorruptDocument, err)
		}
		defer rc.Close()
		text, err := wordText(rc)
		if err != nil {
			return "", fmt.Errorf("%w: docx: %v", ErrCorruptDocument, err)
		}
		return normalizeWhitespace(text), nil
	}
	return "", fmt.Errorf("%w: docx: no word/document.xml", ErrCorruptDocument)
}

// wordText walks a WordprocessingML body: text runs are kept, paragraphs
// end with a newline, and tabs and breaks become whitespace.
func wordText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var (
		sb     strings.Builder
		inText bool
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return sb.String(), nil
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteByte('\t')
			case "br", "cr":
				sb.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
}

var (
	reHorizontal = regexp.MustCompile(`[ \t\r\f\v\x{00A0}]+`)
	reBlankRuns  = regexp.MustCompile(`\n{3,}`)
)

// normalizeWhitespace collapses horizontal whitespace, trims every line and
// keeps at most one blank line between paragraphs.
func normalizeWhitespace(s string) string {
	s = reHorizontal.ReplaceAllString(s, " ")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	s = strings.Join(lines, "\n")
	s = reBlankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
