package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resumedoc <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Render resumes to PDF, DOCX or HTML (default)")
	fmt.Fprintln(w, "  sections   Show the sections detected in a resume")
	fmt.Fprintln(w, "  doctor     Check the rendering environment")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'resumedoc help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resumedoc convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render resumes in a two-column layout. When a resume cannot be laid out,")
	fmt.Fprintln(w, "a simpler fallback document is written instead and reported as DEGRADED.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    .md, .markdown, .txt, .pdf or .docx file, or a directory")
	fmt.Fprintln(w, "           (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: next to input)")
	fmt.Fprintln(w, "  -f, --format <s>          Output formats: pdf, docx, html (repeatable)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --keep-placeholders   Lay out resumes with missing sections")
	fmt.Fprintln(w, "      --strict              Exit 1 when any output is degraded")
	fmt.Fprintln(w, "      --print-config        Print the effective config and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: a4, letter, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in mm (5-50)")
	fmt.Fprintln(w, "      --sidebar-width <f>   Sidebar width in mm (30-120)")
	fmt.Fprintln(w, "      --center-name         Center the name line")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Footer:")
	fmt.Fprintln(w, "      --footer              Add a page footer")
	fmt.Fprintln(w, "      --footer-position <s> Position: left, center, right")
	fmt.Fprintln(w, "      --footer-text <s>     Custom footer text")
	fmt.Fprintln(w, "      --footer-date <s>     Date: \"auto\", \"auto:FORMAT\", or literal")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w, "      --footer-page-number  Show page numbers")
	fmt.Fprintln(w, "      --no-footer           Disable footer")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -e, --engine <s>          PDF engine: canvas (default), chrome")
	fmt.Fprintln(w, "  -t, --timeout <d>         Chrome engine timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --style <name>        Stylesheet for html output and the chrome engine")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with styles/ and templates/ overrides")
	fmt.Fprintln(w, "      --lang <tag>          Language tag of html output")
	fmt.Fprintln(w, "      --author <s>          Author metadata (default: the name section)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show tiers, timing and debug logs")
	fmt.Fprintln(w, "      --log-format <s>      Log format: text, json")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  RESUMEDOC_CONFIG, RESUMEDOC_STYLE, RESUMEDOC_ENGINE, RESUMEDOC_TIMEOUT,")
	fmt.Fprintln(w, "  RESUMEDOC_FORMATS, RESUMEDOC_INPUT_DIR, RESUMEDOC_OUTPUT_DIR,")
	fmt.Fprintln(w, "  RESUMEDOC_ASSET_PATH, RESUMEDOC_AUTHOR, RESUMEDOC_PAGE_SIZE,")
	fmt.Fprintln(w, "  RESUMEDOC_WORKERS, RESUMEDOC_LOG_FORMAT (also read from .env)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes: 0 ok, 1 failure, 2 usage, 3 I/O, 4 browser")
}

// printSectionsUsage prints usage for the sections command.
func printSectionsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resumedoc sections <file> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show how a resume is split into sections, as YAML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --markdown            Print the canonical markdown instead")
	fmt.Fprintln(w, "      --check               Exit 1 when required sections are missing")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: resumedoc doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check the rendering engine, Chrome and the temp directory.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "sections":
		printSectionsUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: resumedoc version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: resumedoc help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
