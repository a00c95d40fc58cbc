// Package config loads the YAML configuration of the resumedoc CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/alnah/go-resumedoc/internal/fileutil"
	"github.com/alnah/go-resumedoc/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid config")
)

// AppDir is the directory name under the user config directory.
const AppDir = "resumedoc"

// Config holds all configuration for résumé rendering.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Style  StyleConfig  `yaml:"style"`
	Page   PageConfig   `yaml:"page"`
	Footer FooterConfig `yaml:"footer"`
	Assets AssetsConfig `yaml:"assets"`
	Render RenderConfig `yaml:"render"`
	Meta   MetaConfig   `yaml:"meta"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir" validate:"max=4096"` // Empty = must specify
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string   `yaml:"defaultDir" validate:"max=4096"`               // Empty = same as source
	Formats    []string `yaml:"formats" validate:"max=3,dive,oneof=pdf docx html"` // Empty = pdf
}

// StyleConfig selects the stylesheet of the html output and chrome engine.
type StyleConfig struct {
	Name string `yaml:"name" validate:"omitempty,max=64,assetname"` // Empty = default
}

// PageConfig defines page geometry in millimetres.
type PageConfig struct {
	Size         string  `yaml:"size" validate:"omitempty,oneof=a4 letter legal A4 Letter Legal"`
	Orientation  string  `yaml:"orientation" validate:"omitempty,oneof=portrait landscape"`
	Margin       float64 `yaml:"margin" validate:"omitempty,gte=5,lte=50"`
	SidebarWidth float64 `yaml:"sidebarWidth" validate:"omitempty,gte=30,lte=120"`
	NameAlign    string  `yaml:"nameAlign" validate:"omitempty,oneof=left center"`
}

// FooterConfig defines page footer options.
type FooterConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Position       string `yaml:"position" validate:"omitempty,oneof=left center right"`
	ShowPageNumber bool   `yaml:"showPageNumber"`
	Date           string `yaml:"date" validate:"max=60"` // Literal, "auto" or "auto:FORMAT"
	Text           string `yaml:"text" validate:"max=500"`
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath" validate:"max=4096"` // Empty = embedded assets only
}

// RenderConfig defines rendering behavior.
type RenderConfig struct {
	Engine           string        `yaml:"engine" validate:"omitempty,oneof=canvas chrome"`
	Timeout          time.Duration `yaml:"timeout" validate:"gte=0"`
	Workers          int           `yaml:"workers" validate:"gte=0,lte=32"`
	KeepPlaceholders bool          `yaml:"keepPlaceholders"`
}

// MetaConfig defines document metadata.
type MetaConfig struct {
	Author string `yaml:"author" validate:"max=100"`
	Lang   string `yaml:"lang" validate:"omitempty,bcp47_language_tag"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// validatorInstance returns the shared validator. Field names in errors use
// the yaml tags.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		_ = validate.RegisterValidation("assetname", func(fl validator.FieldLevel) bool {
			for _, r := range fl.Field().String() {
				if !(r == '-' || r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
					return false
				}
			}
			return true
		})
	})
	return validate
}

// Validate checks value ranges and enumerations. Called automatically by
// LoadConfig, but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// describe formats a field error as "section.field: reason".
func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s: invalid value %q (must be one of %s)", field, fmt.Sprint(fe.Value()), fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s: at most %s entries", field, fe.Param())
		}
		return fmt.Sprintf("%s: exceeds maximum length %s", field, fe.Param())
	case "gte", "lte":
		return fmt.Sprintf("%s: %v out of range (%s %s)", field, fe.Value(), fe.Tag(), fe.Param())
	case "assetname":
		return fmt.Sprintf("%s: %q may only contain letters, digits, '-' and '_'", field, fmt.Sprint(fe.Value()))
	}
	return fmt.Sprintf("%s: failed %s", field, fe.Tag())
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Formats: []string{"pdf"}},
		Page: PageConfig{
			Size:         "a4",
			Orientation:  "portrait",
			Margin:       15,
			SidebarWidth: 50,
			NameAlign:    "left",
		},
		Footer: FooterConfig{Position: "right"},
		Render: RenderConfig{Engine: "canvas", Timeout: 30 * time.Second},
		Meta:   MetaConfig{Lang: "en"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// Values missing from the file keep their DefaultConfig value.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup order:
// current directory first, then the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, AppDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

// Marshal returns cfg as YAML, for printing the effective configuration.
func Marshal(cfg *Config) ([]byte, error) {
	return yamlutil.Marshal(cfg)
}
