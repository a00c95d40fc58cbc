package main

// Notes:
// - discoverFiles: single files, unsupported extensions, directories with
//   nested layout mirrored under the output directory, stems shared by an
//   earlier run's outputs, hidden directories and the output directory
//   itself being skipped.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/alnah/go-resumedoc/internal/extract"
)

func inputs(files []FileToConvert) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.InputPath
	}
	sort.Strings(out)
	return out
}

// ---------------------------------------------------------------------------
// TestDiscoverFiles - Single file
// ---------------------------------------------------------------------------

func TestDiscoverFiles_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "resume.docx", "x")

	files, err := discoverFiles(path, "out")
	if err != nil {
		t.Fatalf("discoverFiles() = %v", err)
	}
	if len(files) != 1 || files[0].InputPath != path || files[0].OutputDir != "out" {
		t.Errorf("files = %+v", files)
	}
}

func TestDiscoverFiles_UnsupportedFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "resume.odt", "x")

	_, err := discoverFiles(path, "")
	if !errors.Is(err, extract.ErrUnrecognizedFormat) {
		t.Fatalf("discoverFiles() = %v, want ErrUnrecognizedFormat", err)
	}
}

func TestDiscoverFiles_Missing(t *testing.T) {
	t.Parallel()

	_, err := discoverFiles(filepath.Join(t.TempDir(), "nope.md"), "")
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("discoverFiles() = %v, want os.ErrNotExist", err)
	}
}

// ---------------------------------------------------------------------------
// TestDiscoverFiles - Directories
// ---------------------------------------------------------------------------

func TestDiscoverFiles_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := writeFile(t, dir, "alice.md", "x")
	b := writeFile(t, dir, "team/bob.txt", "x")
	writeFile(t, dir, "notes.odt", "x")
	writeFile(t, dir, ".git/HEAD.md", "x")

	out := filepath.Join(t.TempDir(), "out")
	files, err := discoverFiles(dir, out)
	if err != nil {
		t.Fatalf("discoverFiles() = %v", err)
	}

	got := inputs(files)
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("inputs = %v, want [%s %s]", got, a, b)
	}
	for _, f := range files {
		want := out
		if f.InputPath == b {
			want = filepath.Join(out, "team")
		}
		if f.OutputDir != want {
			t.Errorf("%s: OutputDir = %q, want %q", f.InputPath, f.OutputDir, want)
		}
	}
}

func TestDiscoverFiles_PreviousOutputsIgnored(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "resume.pdf", "x")
	src := writeFile(t, dir, "resume.md", "x")
	writeFile(t, dir, "resume.docx", "x")
	other := writeFile(t, dir, "legacy.pdf", "x")

	files, err := discoverFiles(dir, "")
	if err != nil {
		t.Fatalf("discoverFiles() = %v", err)
	}
	got := inputs(files)
	if len(got) != 2 || got[0] != other || got[1] != src {
		t.Errorf("inputs = %v, want [%s %s]", got, other, src)
	}
}

func TestDiscoverFiles_SkipsOutputDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeFile(t, dir, "resume.md", "x")
	writeFile(t, dir, "rendered/old.pdf", "x")

	files, err := discoverFiles(dir, filepath.Join(dir, "rendered"))
	if err != nil {
		t.Fatalf("discoverFiles() = %v", err)
	}
	if got := inputs(files); len(got) != 1 || got[0] != src {
		t.Errorf("inputs = %v, want [%s]", got, src)
	}
}

func TestDiscoverFiles_EmptyDirectory(t *testing.T) {
	t.Parallel()

	files, err := discoverFiles(t.TempDir(), "")
	if err != nil {
		t.Fatalf("discoverFiles() = %v", err)
	}
	if len(files) != 0 {
		t.Errorf("files = %v, want none", files)
	}
}
