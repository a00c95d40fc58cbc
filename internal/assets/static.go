package assets

import (
	_ "embed"
)

// Static error documents. They are produced once, checked by hand and by
// tests, and never generated at runtime.
var (
	//go:embed static/error.pdf
	errorPDF []byte

	//go:embed static/error.docx
	errorDOCX []byte

	//go:embed static/error.html
	errorHTML []byte
)

// ErrorDocument returns a copy of the static error document for ext
// ("pdf", "docx" or "html"), and false for any other extension.
func ErrorDocument(ext string) ([]byte, bool) {
	var src []byte
	switch ext {
	case "pdf":
		src = errorPDF
	case "docx":
		src = errorDOCX
	case "html":
		src = errorHTML
	default:
		return nil, false
	}
	out := make([]byte, len(src))
	copy(out, src)
	return out, true
}
