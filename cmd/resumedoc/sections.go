package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	resumedoc "github.com/alnah/go-resumedoc"
	"github.com/alnah/go-resumedoc/internal/extract"
	"github.com/alnah/go-resumedoc/internal/logging"
	"github.com/alnah/go-resumedoc/internal/sections"
	"github.com/alnah/go-resumedoc/internal/yamlutil"
)

// sectionsFlags holds flags for the sections command.
type sectionsFlags struct {
	common   commonFlags
	markdown bool
	check    bool
}

// sectionsReport is the YAML view of one parsed résumé.
type sectionsReport struct {
	File     string         `yaml:"file"`
	Sections []sectionEntry `yaml:"sections"`
	Missing  []string       `yaml:"missing,omitempty"`
	Preamble []string       `yaml:"preamble,omitempty"`
	Warnings []string       `yaml:"warnings,omitempty"`
}

type sectionEntry struct {
	Key         string `yaml:"key"`
	Header      string `yaml:"header"`
	Placeholder bool   `yaml:"placeholder,omitempty"`
	Content     string `yaml:"content"`
}

// newSectionsFlagSet declares the sections command flags into f.
func newSectionsFlagSet(f *sectionsFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("sections", flag.ContinueOnError)
	fs.BoolVar(&f.markdown, "markdown", false, "print the canonical markdown instead of YAML")
	fs.BoolVar(&f.check, "check", false, "fail when required sections are missing")
	addCommonFlags(fs, &f.common)
	return fs
}

// runSections parses one résumé and prints the detected sections.
func runSections(args []string, env *Environment) error {
	f := &sectionsFlags{}
	fs := newSectionsFlagSet(f)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printSectionsUsage(env.Stdout)
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: sections takes exactly one file", ErrUsage)
	}
	path := fs.Arg(0)

	logger, err := newLogger(logging.NewSyncWriter(env.Stderr), f.common, loadEnvConfig(env.Getenv).LogFormat)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	text, err := extract.Text(path, data)
	if err != nil {
		return err
	}
	if _, body, ok := yamlutil.SplitFrontMatter(text); ok {
		text = body
	}

	res := sections.NewParser(logger).Parse(text)

	if f.markdown {
		if _, err := io.WriteString(env.Stdout, res.Map.Markdown()); err != nil {
			return err
		}
	} else {
		out, err := yamlutil.Marshal(buildSectionsReport(path, res))
		if err != nil {
			return fmt.Errorf("printing sections: %w", err)
		}
		if _, err := env.Stdout.Write(out); err != nil {
			return err
		}
	}

	if f.check && len(res.Missing) > 0 {
		return fmt.Errorf("%w: %s", resumedoc.ErrMissingSections, keyNames(res.Missing))
	}
	return nil
}

func buildSectionsReport(path string, res sections.Result) sectionsReport {
	report := sectionsReport{File: path, Preamble: res.Preamble}
	for _, k := range res.Map.Keys() {
		report.Sections = append(report.Sections, sectionEntry{
			Key:         k.String(),
			Header:      k.Title(),
			Placeholder: res.Map.IsPlaceholder(k),
			Content:     res.Map.Get(k),
		})
	}
	for _, k := range res.Missing {
		report.Missing = append(report.Missing, k.String())
	}
	for _, w := range res.Warnings {
		report.Warnings = append(report.Warnings, w.String())
	}
	return report
}

func keyNames(keys []sections.Key) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}
