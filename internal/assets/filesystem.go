package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// StyleDir serves stylesheets and templates from a user directory laid out
// like the bundle.
type StyleDir struct {
	root string // absolute, symlinks resolved
}

// OpenStyleDir checks that path is a readable directory and returns a loader
// rooted at its resolved location.
func OpenStyleDir(path string) (*StyleDir, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}
	root, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	info, err := os.Stat(root)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s does not exist", ErrInvalidBasePath, root)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidBasePath, root)
	}
	if _, err := os.ReadDir(root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	return &StyleDir{root: root}, nil
}

// Style reads <dir>/styles/<name>.css.
func (d *StyleDir) Style(name string) (string, error) { return d.read(styleKind, name) }

// Template reads <dir>/templates/<name>.html.
func (d *StyleDir) Template(name string) (string, error) { return d.read(templateKind, name) }

func (d *StyleDir) read(k kind, name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	path, err := d.inside(filepath.Join(d.root, filepath.FromSlash(k.file(name))))
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(path) // #nosec G304 -- confined to the style directory
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %q", k.missing, name)
	case err != nil:
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(b), nil
}

// inside resolves symlinks in path and fails unless the target stays under
// the style directory. A path that does not exist yet is checked as written.
func (d *StyleDir) inside(path string) (string, error) {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	if !strings.HasPrefix(path, d.root+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrPathTraversal, filepath.Base(path))
	}
	return path, nil
}

var _ Loader = (*StyleDir)(nil)
