package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	resumedoc "github.com/alnah/go-resumedoc"
	"github.com/alnah/go-resumedoc/internal/config"
	"github.com/alnah/go-resumedoc/internal/logging"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrNoResumes          = errors.New("no resumes found")
	ErrReadInput          = errors.New("failed to read input file")
	ErrWriteOutput        = errors.New("failed to write output file")
	ErrUsage              = errors.New("invalid usage")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrOverwriteInput     = errors.New("output would overwrite input")
	ErrDegraded           = errors.New("document rendered through a fallback")
	ErrRendererInit       = errors.New("failed to initialize renderer")
)

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	formats          []resumedoc.Format
	keepPlaceholders bool
}

// runConvert orchestrates the conversion process.
// Precedence: CLI flags > env vars > config file > defaults.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, newPool poolFactory, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(env.Stderr, env.Environ())

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	if err := mergeFlags(flags, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := validateWorkers(cfg.Render.Workers); err != nil {
		return err
	}

	if flags.printConfig {
		data, err := config.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("printing config: %w", err)
		}
		_, err = env.Stdout.Write(data)
		return err
	}

	stderr := logging.NewSyncWriter(env.Stderr)
	logger, err := newLogger(stderr, flags.common, envCfg.LogFormat)
	if err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoResumes, inputPath)
	}

	formats, err := parseFormats(cfg.Output.Formats)
	if err != nil {
		return err
	}

	opts, err := buildRendererOptions(cfg, logger, env.Now)
	if err != nil {
		return err
	}

	poolSize := resumedoc.ResolvePoolSize(cfg.Render.Workers)
	logger.Debug("starting conversion", "files", len(files), "workers", poolSize, "engine", cfg.Render.Engine)

	pool, err := newPool(poolSize, opts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRendererInit, err)
	}
	defer func() {
		if err := pool.Close(); err != nil {
			logger.Warn("closing renderer pool", "error", err)
		}
	}()

	params := &conversionParams{
		formats:          formats,
		keepPlaceholders: cfg.Render.KeepPlaceholders,
	}

	results := convertBatch(ctx, pool, files, params)

	summary := printResults(results, flags.common, env.Stdout, stderr)
	if summary.Failed > 0 {
		// A single file keeps its own error so the exit code reflects it.
		if len(results) == 1 {
			return results[0].Err
		}
		return fmt.Errorf("%d conversion(s) failed", summary.Failed)
	}
	if flags.strict && summary.Degraded > 0 {
		// Carry the first cause so a browser failure still exits with 4.
		return fmt.Errorf("%w: %d document(s): %w", ErrDegraded, summary.Degraded, firstCause(results))
	}

	return nil
}

// firstCause returns the cause of the first degraded output.
func firstCause(results []ConversionResult) error {
	for _, r := range results {
		for _, o := range r.Outputs {
			if o.Tier != resumedoc.TierStructured && o.Cause != nil {
				return o.Cause
			}
		}
	}
	return errors.New("fallback without cause")
}

// loadConfig loads the named config, or the defaults when no name is given.
// The --config flag wins over RESUMEDOC_CONFIG.
func loadConfig(flagName, envName string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) error {
	// Output flags
	if len(flags.formats) > 0 {
		formats := make([]string, 0, len(flags.formats))
		for _, f := range flags.formats {
			formats = append(formats, splitList(f)...)
		}
		cfg.Output.Formats = formats
	}
	if flags.workers > 0 {
		cfg.Render.Workers = flags.workers
	}
	if flags.keepPlaceholders {
		cfg.Render.KeepPlaceholders = true
	}

	// Page flags
	if flags.page.size != "" {
		cfg.Page.Size = strings.ToLower(flags.page.size)
	}
	if flags.page.orientation != "" {
		cfg.Page.Orientation = strings.ToLower(flags.page.orientation)
	}
	if flags.page.margin > 0 {
		cfg.Page.Margin = flags.page.margin
	}
	if flags.page.sidebarWidth > 0 {
		cfg.Page.SidebarWidth = flags.page.sidebarWidth
	}
	if flags.page.centerName {
		cfg.Page.NameAlign = "center"
	}

	// Footer flags: any footer value turns the footer on
	if flags.footer.enabled {
		cfg.Footer.Enabled = true
	}
	if flags.footer.position != "" {
		cfg.Footer.Position = flags.footer.position
		cfg.Footer.Enabled = true
	}
	if flags.footer.text != "" {
		cfg.Footer.Text = flags.footer.text
		cfg.Footer.Enabled = true
	}
	if flags.footer.date != "" {
		cfg.Footer.Date = flags.footer.date
		cfg.Footer.Enabled = true
	}
	if flags.footer.pageNumber {
		cfg.Footer.ShowPageNumber = true
		cfg.Footer.Enabled = true
	}

	// Render flags
	if flags.render.engine != "" {
		cfg.Render.Engine = strings.ToLower(flags.render.engine)
	}
	if flags.render.timeout != "" {
		d, err := time.ParseDuration(flags.render.timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: --timeout %q is not a positive duration", ErrUsage, flags.render.timeout)
		}
		cfg.Render.Timeout = d
	}
	if flags.render.style != "" {
		cfg.Style.Name = flags.render.style
	}
	if flags.render.assetPath != "" {
		cfg.Assets.BasePath = flags.render.assetPath
	}
	if flags.render.lang != "" {
		cfg.Meta.Lang = flags.render.lang
	}
	if flags.render.author != "" {
		cfg.Meta.Author = flags.render.author
	}

	// Disable flags
	if flags.footer.disabled {
		cfg.Footer.Enabled = false
	}

	return nil
}

// newLogger builds the CLI logger: warnings by default, debug with
// --verbose, errors only with --quiet.
func newLogger(w io.Writer, f commonFlags, envFormat string) (*slog.Logger, error) {
	level := slog.LevelWarn
	switch {
	case f.verbose:
		level = slog.LevelDebug
	case f.quiet:
		level = slog.LevelError
	}

	format := f.logFormat
	if format == "" {
		format = envFormat
	}
	logger, err := logging.New(w, format, level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return logger, nil
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// parseFormats resolves config format names.
func parseFormats(names []string) ([]resumedoc.Format, error) {
	formats := make([]resumedoc.Format, 0, len(names))
	for _, name := range names {
		f, err := resumedoc.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > resumedoc.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, resumedoc.MaxPoolSize)
	}
	return nil
}

// buildRendererOptions translates the effective configuration into
// renderer options.
func buildRendererOptions(cfg *config.Config, logger *slog.Logger, now func() time.Time) ([]resumedoc.Option, error) {
	engine, err := resumedoc.ParseEngine(cfg.Render.Engine)
	if err != nil {
		return nil, err
	}

	page := buildPageSettings(cfg)
	if err := page.Validate(); err != nil {
		return nil, err
	}
	footer := buildFooter(cfg)
	if err := footer.Validate(); err != nil {
		return nil, err
	}

	opts := []resumedoc.Option{
		resumedoc.WithEngine(engine),
		resumedoc.WithPageSettings(page),
		resumedoc.WithFooter(footer),
		resumedoc.WithCenteredName(cfg.Page.NameAlign == "center"),
		resumedoc.WithLogger(logger),
	}
	if cfg.Render.Timeout > 0 {
		opts = append(opts, resumedoc.WithTimeout(cfg.Render.Timeout))
	}
	if cfg.Style.Name != "" {
		opts = append(opts, resumedoc.WithStyle(cfg.Style.Name))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, resumedoc.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Meta.Lang != "" {
		opts = append(opts, resumedoc.WithLang(cfg.Meta.Lang))
	}
	if cfg.Meta.Author != "" {
		opts = append(opts, resumedoc.WithAuthor(cfg.Meta.Author))
	}
	if now != nil {
		opts = append(opts, resumedoc.WithClock(now))
	}
	return opts, nil
}

// buildPageSettings creates resumedoc.PageSettings from config.
// Zero fields fall back to the library defaults.
func buildPageSettings(cfg *config.Config) *resumedoc.PageSettings {
	ps := resumedoc.DefaultPageSettings()
	if cfg.Page.Size != "" {
		ps.Size = cfg.Page.Size
	}
	if cfg.Page.Orientation != "" {
		ps.Orientation = cfg.Page.Orientation
	}
	if cfg.Page.Margin > 0 {
		ps.Margin = cfg.Page.Margin
	}
	if cfg.Page.SidebarWidth > 0 {
		ps.SidebarWidth = cfg.Page.SidebarWidth
	}
	return ps
}

// buildFooter creates resumedoc.Footer from config, or nil when disabled.
func buildFooter(cfg *config.Config) *resumedoc.Footer {
	if !cfg.Footer.Enabled {
		return nil
	}
	return &resumedoc.Footer{
		Position:       cfg.Footer.Position,
		ShowPageNumber: cfg.Footer.ShowPageNumber,
		Date:           cfg.Footer.Date,
		Text:           cfg.Footer.Text,
	}
}
