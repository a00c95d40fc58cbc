package main

// Notes:
// - runSections: YAML report, canonical markdown, front matter stripped,
//   --check with and without missing sections, usage errors.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"strings"
	"testing"

	resumedoc "github.com/alnah/go-resumedoc"
)

const partialResume = `# NAME
Jane Doe

# EXPERIENCE
## Engineer, ABC Corp (2020-Present)
- Shipped services
`

// ---------------------------------------------------------------------------
// TestRunSections - Output modes
// ---------------------------------------------------------------------------

func TestRunSections_YAML(t *testing.T) {
	t.Parallel()

	src := writeFile(t, t.TempDir(), "resume.md", "---\ntitle: CV\n---\n"+sampleResume)
	env, stdout, _ := testEnv(nil)

	if err := runSections([]string{src}, env); err != nil {
		t.Fatalf("runSections() = %v", err)
	}

	out := stdout.String()
	for _, want := range []string{"file: " + src, "key: name", "header: PROFESSIONAL SUMMARY", "key: skills"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "missing:") || strings.Contains(out, "title: CV") {
		t.Errorf("complete résumé reported missing sections or front matter:\n%s", out)
	}
}

func TestRunSections_Markdown(t *testing.T) {
	t.Parallel()

	src := writeFile(t, t.TempDir(), "resume.txt", partialResume)
	env, stdout, _ := testEnv(nil)

	if err := runSections([]string{"--markdown", src}, env); err != nil {
		t.Fatalf("runSections() = %v", err)
	}

	out := stdout.String()
	name, skills := strings.Index(out, "# NAME"), strings.Index(out, "# SKILLS")
	experience := strings.Index(out, "# PROFESSIONAL EXPERIENCE")
	if name < 0 || skills < 0 || experience < 0 {
		t.Fatalf("canonical markdown missing headers:\n%s", out)
	}
	if !(name < skills && skills < experience) {
		t.Errorf("headers not in template order:\n%s", out)
	}
}

func TestRunSections_Check(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	complete := writeFile(t, dir, "complete.md", sampleResume)
	partial := writeFile(t, dir, "partial.md", partialResume)

	env, _, _ := testEnv(nil)
	if err := runSections([]string{"--check", complete}, env); err != nil {
		t.Errorf("complete résumé: runSections() = %v", err)
	}

	env, stdout, _ := testEnv(nil)
	err := runSections([]string{"--check", partial}, env)
	if !errors.Is(err, resumedoc.ErrMissingSections) {
		t.Fatalf("partial résumé: runSections() = %v, want ErrMissingSections", err)
	}
	for _, key := range []string{"contact", "summary", "skills", "education"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not name %s", err, key)
		}
	}
	if !strings.Contains(stdout.String(), "missing:") {
		t.Errorf("report printed before the check should list missing sections:\n%s", stdout.String())
	}
}

func TestRunSections_Usage(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv(nil)

	if err := runSections(nil, env); !errors.Is(err, ErrUsage) {
		t.Errorf("no file: got %v, want ErrUsage", err)
	}
	if err := runSections([]string{"a.md", "b.md"}, env); !errors.Is(err, ErrUsage) {
		t.Errorf("two files: got %v, want ErrUsage", err)
	}
	if err := runSections([]string{"--help"}, env); err != nil {
		t.Errorf("--help: got %v", err)
	}
	if !strings.Contains(stdout.String(), "resumedoc sections") {
		t.Errorf("help output = %q", stdout.String())
	}
}
