// Package yamlutil wraps YAML parsing to isolate the external dependency.
// It decodes the CLI configuration file and the optional front matter block
// at the top of a résumé.
package yamlutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

const frontMatterFence = "---"

func decode(data []byte, v any, opts ...yaml.DecodeOption) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	if err := yaml.UnmarshalWithOptions(data, v, opts...); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Unmarshal decodes data into v, ignoring unknown fields.
func Unmarshal(data []byte, v any) error {
	return decode(data, v)
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	return decode(data, v, yaml.Strict())
}

// Marshal encodes v as YAML.
func Marshal(v any) ([]byte, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return out, nil
}

// SplitFrontMatter separates a leading "---" delimited YAML block from the
// rest of text. ok is false, and body is text unchanged, when text does not
// open with a fence or the block is never closed.
func SplitFrontMatter(text string) (meta []byte, body string, ok bool) {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	trimmed := strings.TrimLeft(normalized, "\ufeff")
	first, rest, found := strings.Cut(trimmed, "\n")
	if !found || strings.TrimSpace(first) != frontMatterFence {
		return nil, text, false
	}

	lines := strings.Split(rest, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == frontMatterFence {
			meta := strings.Join(lines[:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return []byte(meta), body, true
		}
	}
	return nil, text, false
}
