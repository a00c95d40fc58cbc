// Package render turns composed layout documents into output payloads.
//
// Three backends share one contract: PDF draws a fixed-page two-column
// layout on an in-process canvas, DOCX writes a flowing WordprocessingML
// package, and HTML fills an html/template page. Every payload is checked by
// Validate before it leaves the renderer.
package render

import (
	"fmt"
	"strings"
)

// Format identifies an output format.
type Format string

// Supported formats.
const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatHTML Format = "html"
)

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatPDF, FormatDOCX, FormatHTML}
}

// ParseFormat resolves a case-insensitive format name. A leading dot is
// accepted so file extensions can be passed directly.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "."))
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
	return f, nil
}

// Valid reports whether f is a supported format.
func (f Format) Valid() bool {
	switch f {
	case FormatPDF, FormatDOCX, FormatHTML:
		return true
	}
	return false
}

// MIMEType returns the media type of the format.
func (f Format) MIMEType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FormatHTML:
		return "text/html; charset=utf-8"
	}
	return "application/octet-stream"
}

// Ext returns the file extension, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Paged reports whether the format has fixed page geometry.
func (f Format) Paged() bool {
	return f == FormatPDF
}
