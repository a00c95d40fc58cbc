// Package assets holds what the html output and the last-resort fallback
// need besides the résumé itself: stylesheets, the page template and the
// static error documents.
//
// Stylesheets and the template are bundled into the binary. A style
// directory given with --asset-path overrides them by name:
//
//	<dir>/styles/<style>.css        e.g. styles/compact.css
//	<dir>/templates/<name>.html     e.g. templates/resume.html
//
// A name missing from the directory is served from the bundle. Any other
// failure, such as a bad name or a symlink leaving the directory, is final.
// The static error documents are never overridable.
package assets
