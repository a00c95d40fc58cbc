package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	quiet     bool
	verbose   bool
	logFormat string
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size         string
	orientation  string
	margin       float64
	sidebarWidth float64
	centerName   bool
}

// footerFlags holds footer-related flags.
type footerFlags struct {
	position   string
	text       string
	date       string
	pageNumber bool
	enabled    bool
	disabled   bool
}

// renderFlags holds engine and asset flags.
type renderFlags struct {
	engine    string
	timeout   string
	style     string
	assetPath string
	lang      string
	author    string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common           commonFlags
	output           string
	formats          []string
	workers          int
	keepPlaceholders bool
	strict           bool
	printConfig      bool
	page             pageFlags
	footer           footerFlags
	render           renderFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show timing and debug logs")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: text, json")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: a4, letter, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in mm (5-50)")
	fs.Float64Var(&f.sidebarWidth, "sidebar-width", 0, "sidebar width in mm (30-120)")
	fs.BoolVar(&f.centerName, "center-name", false, "center the name line")
}

// addFooterFlags adds footer flags to a FlagSet.
func addFooterFlags(fs *flag.FlagSet, f *footerFlags) {
	fs.BoolVar(&f.enabled, "footer", false, "add a page footer")
	fs.StringVar(&f.position, "footer-position", "", "footer position: left, center, right")
	fs.StringVar(&f.text, "footer-text", "", "custom footer text")
	fs.StringVar(&f.date, "footer-date", "", "footer date: literal, \"auto\" or \"auto:FORMAT\"")
	fs.BoolVar(&f.pageNumber, "footer-page-number", false, "show page numbers in footer")
	fs.BoolVar(&f.disabled, "no-footer", false, "disable footer")
}

// addRenderFlags adds engine and asset flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVarP(&f.engine, "engine", "e", "", "pdf engine: canvas, chrome")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "chrome engine timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.style, "style", "", "style name for html output and the chrome engine")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVar(&f.lang, "lang", "", "language tag of html output")
	fs.StringVar(&f.author, "author", "", "author metadata (default: the name section)")
}

// newConvertFlagSet declares the convert command flags into f.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)

	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringSliceVarP(&f.formats, "format", "f", nil, "output formats: pdf, docx, html (repeatable)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.keepPlaceholders, "keep-placeholders", false, "lay out incomplete resumes instead of falling back")
	fs.BoolVar(&f.strict, "strict", false, "fail when a document needed a fallback")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective configuration and exit")

	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	addFooterFlags(fs, &f.footer)
	addRenderFlags(fs, &f.render)

	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
