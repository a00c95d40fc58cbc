// Command resumedoc renders résumés to PDF, DOCX and HTML.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	resumedoc "github.com/alnah/go-resumedoc"
	"github.com/alnah/go-resumedoc/internal/assets"
	"github.com/alnah/go-resumedoc/internal/config"
	"github.com/alnah/go-resumedoc/internal/extract"
	"github.com/alnah/go-resumedoc/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	logf := func(string, ...any) {}
	if slices.Contains(os.Args[1:], "-v") || slices.Contains(os.Args[1:], "--verbose") {
		logf = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}
	_, _ = maxprocs.Set(maxprocs.Logger(logf))

	ctx, stop := notifyContext(context.Background())
	code := run(ctx, os.Args[1:], DefaultEnv(), newRendererPool)
	stop()
	os.Exit(code)
}

// commands lists the subcommand names; anything else is convert input.
var commands = []string{"convert", "sections", "doctor", "version", "help"}

// run dispatches args to a command and returns the exit code.
func run(ctx context.Context, args []string, env *Environment, newPool poolFactory) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd := "convert"
	if slices.Contains(commands, args[0]) {
		cmd, args = args[0], args[1:]
	} else if args[0] == "-h" || args[0] == "--help" {
		cmd, args = "help", nil
	}

	var err error
	switch cmd {
	case "convert":
		err = runConvertCmd(ctx, args, env, newPool)
	case "sections":
		err = runSections(args, env)
	case "doctor":
		return runDoctorCmd(args, env)
	case "version":
		fmt.Fprintf(env.Stdout, "resumedoc %s\n", Version)
		return ExitSuccess
	case "help":
		return runHelp(args, env)
	}

	if err != nil {
		reportError(env.Stderr, err)
	}
	return exitCodeFor(err)
}

// runConvertCmd parses convert flags and runs the conversion.
func runConvertCmd(ctx context.Context, args []string, env *Environment, newPool poolFactory) error {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printConvertUsage(env.Stdout)
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return runConvert(ctx, positional, flags, newPool, env)
}

// reportError prints err with an actionable hint when one applies.
func reportError(w io.Writer, err error) {
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(w, "interrupted")
		return
	}
	fmt.Fprintf(w, "error: %v%s\n", err, hintFor(err))
	if errors.Is(err, ErrUsage) {
		fmt.Fprintln(w, "Run 'resumedoc help convert' for usage.")
	}
}

// hintFor returns the hint matching err, or "".
func hintFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, resumedoc.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, resumedoc.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.StyleNames())
	case errors.Is(err, extract.ErrUnrecognizedFormat):
		return hints.ForUnrecognizedFormat(extract.Extensions())
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}
