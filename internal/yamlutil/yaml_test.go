package yamlutil_test

// Notes:
// - Marshal error branch: not tested because yaml.Marshal only fails with
//   unmarshalable types (channels, functions), which no caller passes.

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-resumedoc/internal/yamlutil"
)

type frontMatter struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Pages  int    `yaml:"pages"`
}

// ---------------------------------------------------------------------------
// TestUnmarshal - Lenient and strict decoding
// ---------------------------------------------------------------------------

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	var fm frontMatter
	if err := yamlutil.Unmarshal([]byte("title: CV\nauthor: Jane\nextra: 1"), &fm); err != nil {
		t.Fatalf("Unmarshal() = %v", err)
	}
	if fm.Title != "CV" || fm.Author != "Jane" {
		t.Errorf("got %+v", fm)
	}
}

func TestUnmarshalStrict_RejectsUnknownField(t *testing.T) {
	t.Parallel()

	var fm frontMatter
	err := yamlutil.UnmarshalStrict([]byte("title: CV\nextra: 1"), &fm)
	if err == nil {
		t.Fatal("UnmarshalStrict() = nil, want error for unknown field")
	}
	if !strings.HasPrefix(err.Error(), "yamlutil:") {
		t.Errorf("error %q is not prefixed", err)
	}
}

func TestUnmarshal_InputErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
	}{
		{"nil data", nil, &frontMatter{}, yamlutil.ErrNilData},
		{"empty data", []byte{}, &frontMatter{}, yamlutil.ErrNilData},
		{"nil destination", []byte("title: x"), nil, yamlutil.ErrNilDestination},
		{"too large", []byte(strings.Repeat("a", yamlutil.MaxInputSize+1)), &frontMatter{}, yamlutil.ErrInputTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, fn := range []func([]byte, any) error{yamlutil.Unmarshal, yamlutil.UnmarshalStrict} {
				if err := fn(tt.data, tt.dest); !errors.Is(err, tt.wantErr) {
					t.Errorf("got %v, want %v", err, tt.wantErr)
				}
			}
		})
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	t.Parallel()

	in := frontMatter{Title: "CV", Author: "Jane", Pages: 2}
	data, err := yamlutil.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() = %v", err)
	}
	var out frontMatter
	if err := yamlutil.UnmarshalStrict(data, &out); err != nil {
		t.Fatalf("UnmarshalStrict() = %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

// ---------------------------------------------------------------------------
// TestSplitFrontMatter - Leading metadata block
// ---------------------------------------------------------------------------

func TestSplitFrontMatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		wantMeta string
		wantBody string
		wantOK   bool
	}{
		{
			name:     "block present",
			text:     "---\ntitle: CV\n---\n# NAME\nJane",
			wantMeta: "title: CV",
			wantBody: "# NAME\nJane",
			wantOK:   true,
		},
		{
			name:     "crlf and bom",
			text:     "\ufeff---\r\nauthor: Jane\r\n---\r\n# NAME",
			wantMeta: "author: Jane",
			wantBody: "# NAME",
			wantOK:   true,
		},
		{
			name:     "no fence",
			text:     "# NAME\n---\nJane",
			wantBody: "# NAME\n---\nJane",
		},
		{
			name:     "unclosed block",
			text:     "---\ntitle: CV\n# NAME",
			wantBody: "---\ntitle: CV\n# NAME",
		},
		{
			name:     "fence only",
			text:     "---",
			wantBody: "---",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			meta, body, ok := yamlutil.SplitFrontMatter(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if string(meta) != tt.wantMeta {
				t.Errorf("meta = %q, want %q", meta, tt.wantMeta)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}
