package extract_test

// Notes:
// - PDF and DOCX inputs are produced by the render backends so extraction is
//   tested against payloads this module actually writes
// - Corrupt payloads must error, never panic

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alnah/go-resumedoc/internal/extract"
	"github.com/alnah/go-resumedoc/internal/layout"
	"github.com/alnah/go-resumedoc/internal/render"
	"github.com/alnah/go-resumedoc/internal/sections"
)

const resume = "# NAME\nJane Doe\n\n# CONTACT\njane@example.com\n\n# SKILLS\n- Go\n"

func renderWith(t *testing.T, b render.Backend) []byte {
	t.Helper()
	doc, err := layout.Compose(sections.Parse(resume).Map, layout.Options{Charset: b.Charset()})
	require.NoError(t, err)
	data, err := b.Render(doc, render.Options{Page: render.DefaultPage()})
	require.NoError(t, err)
	return data
}

// ---------------------------------------------------------------------------
// TestText - Extension dispatch
// ---------------------------------------------------------------------------

func TestText_Plain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file string
		data []byte
		want string
	}{
		{"markdown", "cv.md", []byte("# NAME\nJane"), "# NAME\nJane"},
		{"markdown long ext upper case", "CV.MARKDOWN", []byte("Jane"), "Jane"},
		{"text with bom", "cv.txt", []byte("\xef\xbb\xbfJane"), "Jane"},
		{"windows-1252 text", "cv.txt", []byte("R\xe9sum\xe9 \x96 Jane"), "Résumé – Jane"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := extract.Text(tt.file, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestText_UnrecognizedFormat(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"cv.odt", "cv", "cv.pdf.exe", "cv.rtf"} {
		_, err := extract.Text(name, []byte("x"))
		assert.True(t, errors.Is(err, extract.ErrUnrecognizedFormat), name)
	}
}

func TestText_Empty(t *testing.T) {
	t.Parallel()

	_, err := extract.Text("cv.md", []byte(" \n\t\n"))

	assert.True(t, errors.Is(err, extract.ErrEmptyDocument))
}

func TestSupported(t *testing.T) {
	t.Parallel()

	assert.True(t, extract.Supported("a/b/CV.Docx"))
	assert.False(t, extract.Supported("cv.doc"))
	assert.Len(t, extract.Extensions(), 5)
}

// ---------------------------------------------------------------------------
// TestText_DOCX - WordprocessingML extraction
// ---------------------------------------------------------------------------

func TestText_DOCXRoundTrip(t *testing.T) {
	t.Parallel()

	text, err := extract.Text("cv.docx", renderWith(t, render.NewDOCX()))

	require.NoError(t, err)
	assert.Contains(t, text, "JANE DOE")
	assert.Contains(t, text, "jane@example.com")
	assert.Contains(t, text, "SKILLS")
}

func TestText_DOCXEntitiesDecoded(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<w:document xmlns:w="x"><w:body>` +
		`<w:p><w:r><w:t>R&amp;D</w:t><w:tab/><w:t>lead</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t xml:space="preserve">  second   line </w:t></w:r></w:p>` +
		`</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	text, err := extract.Text("cv.docx", buf.Bytes())

	require.NoError(t, err)
	assert.Equal(t, "R&D lead\nsecond line", text)
}

func TestText_DOCXCorrupt(t *testing.T) {
	t.Parallel()

	_, err := extract.Text("cv.docx", []byte("not a zip"))
	assert.True(t, errors.Is(err, extract.ErrCorruptDocument))

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err = zw.Create("other.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = extract.Text("cv.docx", buf.Bytes())
	assert.True(t, errors.Is(err, extract.ErrCorruptDocument))
}

// ---------------------------------------------------------------------------
// TestText_PDF - PDF extraction
// ---------------------------------------------------------------------------

func TestText_PDFRoundTrip(t *testing.T) {
	t.Parallel()

	text, err := extract.Text("cv.pdf", renderWith(t, render.NewPDF()))

	require.NoError(t, err)
	assert.Contains(t, text, "CONTACT")
	assert.Contains(t, text, "SKILLS")
}

func TestText_PDFCorrupt(t *testing.T) {
	t.Parallel()

	_, err := extract.Text("cv.pdf", []byte("%PDF-1.4\ngarbage"))

	assert.True(t, errors.Is(err, extract.ErrCorruptDocument))
}
