package assets

import "errors"

// Lookup misses. The resolver falls back to the bundled assets on these two
// and on nothing else.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
)

// ErrInvalidAssetName rejects style and template names that are not plain
// file stems: separators, dots and non-ASCII letters are refused.
var ErrInvalidAssetName = errors.New("invalid asset name")

// Style directory failures (--asset-path).
var (
	// ErrInvalidBasePath means the directory is missing, unreadable or a file.
	ErrInvalidBasePath = errors.New("invalid asset directory")

	// ErrAssetRead wraps I/O failures on a stylesheet or template that exists.
	ErrAssetRead = errors.New("reading asset")

	// ErrPathTraversal means a name resolved, through a symlink, outside the
	// style directory.
	ErrPathTraversal = errors.New("asset escapes its directory")
)
