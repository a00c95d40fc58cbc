package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-resumedoc/internal/config"
)

// envPrefix prefixes every recognized environment variable.
const envPrefix = "RESUMEDOC_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // RESUMEDOC_CONFIG: config file name or path
	Style      string        // RESUMEDOC_STYLE: style name
	Engine     string        // RESUMEDOC_ENGINE: canvas or chrome
	Timeout    time.Duration // RESUMEDOC_TIMEOUT: chrome engine timeout
	Formats    []string      // RESUMEDOC_FORMATS: comma-separated output formats
	InputDir   string        // RESUMEDOC_INPUT_DIR: default input directory
	OutputDir  string        // RESUMEDOC_OUTPUT_DIR: default output directory
	AssetPath  string        // RESUMEDOC_ASSET_PATH: custom asset directory
	Author     string        // RESUMEDOC_AUTHOR: author metadata
	PageSize   string        // RESUMEDOC_PAGE_SIZE: a4, letter, legal
	Workers    int           // RESUMEDOC_WORKERS: parallel workers
	LogFormat  string        // RESUMEDOC_LOG_FORMAT: text or json
}

// knownEnvVars lists valid RESUMEDOC_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"RESUMEDOC_CONFIG":     true,
	"RESUMEDOC_STYLE":      true,
	"RESUMEDOC_ENGINE":     true,
	"RESUMEDOC_TIMEOUT":    true,
	"RESUMEDOC_FORMATS":    true,
	"RESUMEDOC_INPUT_DIR":  true,
	"RESUMEDOC_OUTPUT_DIR": true,
	"RESUMEDOC_ASSET_PATH": true,
	"RESUMEDOC_AUTHOR":     true,
	"RESUMEDOC_PAGE_SIZE":  true,
	"RESUMEDOC_WORKERS":    true,
	"RESUMEDOC_LOG_FORMAT": true,
	"RESUMEDOC_CONTAINER":  true, // read by doctor
}

// loadEnvConfig reads configuration from environment variables.
// Unparsable durations and counts are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("RESUMEDOC_CONFIG"),
		Style:      getenv("RESUMEDOC_STYLE"),
		Engine:     getenv("RESUMEDOC_ENGINE"),
		InputDir:   getenv("RESUMEDOC_INPUT_DIR"),
		OutputDir:  getenv("RESUMEDOC_OUTPUT_DIR"),
		AssetPath:  getenv("RESUMEDOC_ASSET_PATH"),
		Author:     getenv("RESUMEDOC_AUTHOR"),
		PageSize:   getenv("RESUMEDOC_PAGE_SIZE"),
		LogFormat:  getenv("RESUMEDOC_LOG_FORMAT"),
		Formats:    splitList(getenv("RESUMEDOC_FORMATS")),
	}

	if timeout := getenv("RESUMEDOC_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := getenv("RESUMEDOC_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars writes a warning for each unrecognized RESUMEDOC_* variable.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment values over cfg.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" {
		cfg.Style.Name = env.Style
	}
	if env.Engine != "" {
		cfg.Render.Engine = env.Engine
	}
	if env.Timeout > 0 {
		cfg.Render.Timeout = env.Timeout
	}
	if env.Workers > 0 {
		cfg.Render.Workers = env.Workers
	}
	if len(env.Formats) > 0 {
		cfg.Output.Formats = env.Formats
	}
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.AssetPath != "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.Author != "" {
		cfg.Meta.Author = env.Author
	}
	if env.PageSize != "" {
		cfg.Page.Size = env.PageSize
	}
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
			out = append(out, part)
		}
	}
	return out
}
