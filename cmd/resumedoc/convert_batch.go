package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	resumedoc "github.com/alnah/go-resumedoc"
	"github.com/alnah/go-resumedoc/internal/extract"
	"github.com/alnah/go-resumedoc/internal/fileutil"
	"github.com/alnah/go-resumedoc/internal/hints"
	"github.com/alnah/go-resumedoc/internal/logging"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// OutputFile is one document written to disk.
type OutputFile struct {
	Path   string
	Format resumedoc.Format
	Tier   resumedoc.Tier
	Pages  int
	Cause  error // why a fallback tier was used
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath string
	Outputs   []OutputFile
	Warnings  []resumedoc.Warning
	Missing   []string // headers of required sections that were synthesized
	Err       error
	Duration  time.Duration
}

// Degraded reports how many outputs came from a fallback tier.
func (r ConversionResult) Degraded() int {
	n := 0
	for _, o := range r.Outputs {
		if o.Tier != resumedoc.TierStructured {
			n++
		}
	}
	return n
}

// convertBatch processes files concurrently using the renderer pool.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(pool.Size(), len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv, err := pool.Acquire()
			if err != nil {
				// Renderer creation failed, mark remaining jobs as failed
				for idx := range jobs {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       fmt.Errorf("%w: %w", ErrRendererInit, err),
					}
				}
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
// Every document the renderer returns is written, fallback tiers included.
func convertFile(ctx context.Context, conv Converter, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{InputPath: f.InputPath}
	finish := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	// Check every destination before reading anything.
	paths := make(map[resumedoc.Format]string, len(params.formats))
	for _, format := range formatsOrDefault(params.formats) {
		out := fileutil.OutputPath(f.InputPath, f.OutputDir, format.Ext())
		if samePath(out, f.InputPath) {
			return finish(fmt.Errorf("%w: %s", ErrOverwriteInput, out))
		}
		paths[format] = out
	}

	data, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return finish(fmt.Errorf("%w: %w", ErrReadInput, err))
	}

	text, err := extract.Text(f.InputPath, data)
	if err != nil {
		return finish(err)
	}

	res, err := conv.Convert(ctx, resumedoc.Input{
		Text:             text,
		Formats:          params.formats,
		KeepPlaceholders: params.keepPlaceholders,
	})
	if err != nil {
		return finish(err)
	}
	result.Warnings = res.Warnings
	for _, k := range res.Sections.Placeholders() {
		result.Missing = append(result.Missing, k.Title())
	}

	for _, doc := range res.Documents {
		out, ok := paths[doc.Format]
		if !ok {
			out = fileutil.OutputPath(f.InputPath, f.OutputDir, doc.Format.Ext())
		}
		if err := os.MkdirAll(filepath.Dir(out), dirPermissions); err != nil {
			return finish(fmt.Errorf("%w: creating output directory: %w", ErrWriteOutput, err))
		}
		// #nosec G306 -- résumés are meant to be readable
		if err := fileutil.WriteFileAtomic(out, doc.Bytes, filePermissions); err != nil {
			return finish(fmt.Errorf("%w: %w", ErrWriteOutput, err))
		}
		result.Outputs = append(result.Outputs, OutputFile{
			Path:   out,
			Format: doc.Format,
			Tier:   doc.Tier,
			Pages:  doc.Pages,
			Cause:  doc.Err,
		})
	}

	return finish(nil)
}

// formatsOrDefault mirrors the renderer default of PDF only.
func formatsOrDefault(formats []resumedoc.Format) []resumedoc.Format {
	if len(formats) == 0 {
		return []resumedoc.Format{resumedoc.FormatPDF}
	}
	return formats
}

// samePath reports whether a and b name the same file.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// ResultSummary holds the count of succeeded, failed and degraded conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
	Degraded  int // outputs, not files
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
			continue
		}
		summary.Succeeded++
		summary.Degraded += r.Degraded()
	}
	return summary
}

// printResults reports each result: created files on stdout, failures,
// fallbacks and parser warnings on stderr.
func printResults(results []ConversionResult, flags commonFlags, stdout io.Writer, stderr *logging.SyncWriter) ResultSummary {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			stderr.Printf("FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err))
			continue
		}

		for _, o := range r.Outputs {
			if o.Tier != resumedoc.TierStructured {
				hint := hintFor(o.Cause)
				if errors.Is(o.Cause, resumedoc.ErrMissingSections) {
					hint = hints.ForMissingSections(r.Missing)
				}
				stderr.Printf("DEGRADED %s (%s fallback): %v%s\n", o.Path, o.Tier, o.Cause, hint)
			}
		}

		if flags.quiet {
			continue
		}

		for _, w := range r.Warnings {
			stderr.Printf("warning: %s: %s\n", r.InputPath, w)
		}
		for _, o := range r.Outputs {
			switch {
			case flags.verbose && o.Format.Paged():
				fmt.Fprintf(stdout, "%s -> %s (%s, %d page(s), %v)\n", r.InputPath, o.Path, o.Tier, o.Pages, r.Duration.Round(time.Millisecond))
			case flags.verbose:
				fmt.Fprintf(stdout, "%s -> %s (%s, %v)\n", r.InputPath, o.Path, o.Tier, r.Duration.Round(time.Millisecond))
			default:
				fmt.Fprintf(stdout, "Created %s\n", o.Path)
			}
		}
	}

	if !flags.quiet && len(results) > 1 {
		fmt.Fprintf(stdout, "\n%d succeeded, %d failed", summary.Succeeded, summary.Failed)
		if summary.Degraded > 0 {
			fmt.Fprintf(stdout, ", %d degraded output(s)", summary.Degraded)
		}
		fmt.Fprintln(stdout)
	}

	return summary
}
