package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed styles/*.css templates/*.html
var bundled embed.FS

// Embedded serves the stylesheets and template compiled into the binary.
type Embedded struct{}

// NewEmbedded returns the bundled loader.
func NewEmbedded() *Embedded {
	return &Embedded{}
}

// Style returns the bundled stylesheet name.
func (e *Embedded) Style(name string) (string, error) { return e.read(styleKind, name) }

// Template returns the bundled page template name.
func (e *Embedded) Template(name string) (string, error) { return e.read(templateKind, name) }

func (*Embedded) read(k kind, name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	b, err := bundled.ReadFile(k.file(name))
	if err != nil {
		return "", fmt.Errorf("%w: %q", k.missing, name)
	}
	return string(b), nil
}

// StyleNames lists the bundled styles, sorted.
func StyleNames() []string {
	entries, err := fs.ReadDir(bundled, styleKind.dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), styleKind.ext))
	}
	sort.Strings(names)
	return names
}

var _ Loader = (*Embedded)(nil)
