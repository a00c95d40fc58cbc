package assets

import "errors"

// Resolver looks assets up in the style directory first, when one is set,
// and in the bundle otherwise or on a miss.
type Resolver struct {
	dir     *StyleDir
	bundled *Embedded
}

// NewResolver returns a resolver over the bundle and, if dir is not empty,
// the style directory at dir.
func NewResolver(dir string) (*Resolver, error) {
	r := &Resolver{bundled: NewEmbedded()}
	if dir == "" {
		return r, nil
	}
	d, err := OpenStyleDir(dir)
	if err != nil {
		return nil, err
	}
	r.dir = d
	return r, nil
}

// Style returns the stylesheet name.
func (r *Resolver) Style(name string) (string, error) { return r.resolve(styleKind, name) }

// Template returns the page template name.
func (r *Resolver) Template(name string) (string, error) { return r.resolve(templateKind, name) }

func (r *Resolver) resolve(k kind, name string) (string, error) {
	if r.dir != nil {
		s, err := r.dir.read(k, name)
		if !errors.Is(err, k.missing) {
			return s, err
		}
	}
	return r.bundled.read(k, name)
}

// HasStyleDir reports whether a style directory overrides the bundle.
func (r *Resolver) HasStyleDir() bool {
	return r.dir != nil
}

var _ Loader = (*Resolver)(nil)
