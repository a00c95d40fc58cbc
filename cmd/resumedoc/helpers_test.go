package main

// Notes:
// - Test helpers shared across the CLI tests: an in-memory Environment, a
//   scripted Converter, and a Pool that hands it out.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	resumedoc "github.com/alnah/go-resumedoc"
)

const sampleResume = `# NAME
Jane Doe

# CONTACT
jane@example.com

# PROFESSIONAL SUMMARY
Backend engineer.

# SKILLS
- Go

# PROFESSIONAL EXPERIENCE
## Engineer, ABC Corp (2020-Present)
- Shipped services

# EDUCATION
BSc Computer Science
`

var fixedNow = time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)

// ---------------------------------------------------------------------------
// Environment
// ---------------------------------------------------------------------------

// testEnv returns an Environment with captured output and vars as the
// only environment variables.
func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	env := &Environment{
		Now:    func() time.Time { return fixedNow },
		Stdout: stdout,
		Stderr: stderr,
		Getenv: func(k string) string { return vars[k] },
		Environ: func() []string {
			out := make([]string, 0, len(vars))
			for k, v := range vars {
				out = append(out, k+"="+v)
			}
			return out
		},
	}
	return env, stdout, stderr
}

// writeFile creates dir/name with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("creating dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

// ---------------------------------------------------------------------------
// Mock Implementations
// ---------------------------------------------------------------------------

// mockConverter returns one document per requested format, with tier and
// cause set from its fields.
type mockConverter struct {
	mu     sync.Mutex
	inputs []resumedoc.Input
	tier   resumedoc.Tier
	cause  error
	err    error
}

func (m *mockConverter) Convert(_ context.Context, in resumedoc.Input) (*resumedoc.Result, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, in)
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	formats := in.Formats
	if len(formats) == 0 {
		formats = []resumedoc.Format{resumedoc.FormatPDF}
	}
	res := &resumedoc.Result{ID: "test"}
	for _, f := range formats {
		res.Documents = append(res.Documents, &resumedoc.Document{
			ID:     "test",
			Format: f,
			Bytes:  []byte("rendered " + string(f)),
			Tier:   m.tier,
			Pages:  1,
			Err:    m.cause,
		})
	}
	return res, nil
}

func (m *mockConverter) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.inputs)
}

// mockPool hands out a single converter to every caller.
type mockPool struct {
	conv       Converter
	size       int
	acquireErr error

	mu       sync.Mutex
	acquired int
	released int
	closed   bool
}

func (p *mockPool) Acquire() (Converter, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	p.acquired++
	return p.conv, nil
}

func (p *mockPool) Release(Converter) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.released++
}

func (p *mockPool) Size() int { return p.size }

func (p *mockPool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

// mockFactory returns a poolFactory yielding pool and recording the size
// and options it was called with.
func mockFactory(pool *mockPool, gotSize *int, gotOpts *[]resumedoc.Option) poolFactory {
	return func(size int, opts []resumedoc.Option) (Pool, error) {
		if gotSize != nil {
			*gotSize = size
		}
		if gotOpts != nil {
			*gotOpts = opts
		}
		if pool.size == 0 {
			pool.size = size
		}
		return pool, nil
	}
}
