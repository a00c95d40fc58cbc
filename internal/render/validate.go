package render

import (
	"archive/zip"
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	// Keep pdfcpu from creating a config directory under the user's home.
	api.DisableConfigDir()
}

// docxRequiredParts must be present in every docx payload.
var docxRequiredParts = []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml"}

// Validate checks that data is a well-formed payload of format f and returns
// its page count. Formats without fixed pages report zero pages.
func Validate(f Format, data []byte) (pages int, err error) {
	if len(data) == 0 {
		return 0, ErrEmptyPayload
	}
	switch f {
	case FormatPDF:
		return validatePDF(data)
	case FormatDOCX:
		return 0, validateDOCX(data)
	case FormatHTML:
		if !bytes.Contains(bytes.ToLower(data[:min(len(data), 512)]), []byte("<html")) {
			return 0, fmt.Errorf("%w: missing html root element", ErrInvalidPayload)
		}
		return 0, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

func validatePDF(data []byte) (int, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	if err := api.Validate(bytes.NewReader(data), conf); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	n, err := api.PageCount(bytes.NewReader(data), conf)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: pdf has no pages", ErrInvalidPayload)
	}
	return n, nil
}

func validateDOCX(data []byte) error {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	have := make(map[string]bool, len(zr.File))
	for _, f := range zr.File {
		have[f.Name] = true
	}
	for _, name := range docxRequiredParts {
		if !have[name] {
			return fmt.Errorf("%w: docx is missing %s", ErrInvalidPayload, name)
		}
	}
	return nil
}
