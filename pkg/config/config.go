package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ideamans/iconforge/pkg/policy"
	sharedconfig "github.com/ideamans/iconforge/pkg/shared/config"
	"github.com/ideamans/iconforge/pkg/shared/logging"
	"github.com/ideamans/iconforge/pkg/shared/validation"
)

// Default values applied to optional fields
const (
	DefaultRoot        = "."
	DefaultAliasSource = "/src/components"
	DefaultAlias       = "@components"
	DefaultPublicDir   = "/public"
	DefaultConcurrency = 8
	DefaultLogLevel    = "info"
)

// Config represents the generator configuration
type Config struct {
	Root        string            `yaml:"root" json:"root"`               // Project root; all other paths are relative to it (default: ".")
	InputPaths  []string          `yaml:"input_paths" json:"input_paths"` // Ordered glob prefixes or patterns, one icon group each (required)
	OutputPath  string            `yaml:"output_path" json:"output_path"` // Destination of generated files (required)
	Include     []string          `yaml:"include" json:"include"`         // Component kinds to include: tsx, astro
	Exclude     []string          `yaml:"exclude" json:"exclude"`         // Component kinds to exclude: tsx, astro
	ImportAlias ImportAliasConfig `yaml:"import_alias" json:"import_alias"`
	PublicDir   string            `yaml:"public_dir" json:"public_dir"`   // Web root for stylesheet mask URLs (default: "/public")
	Concurrency int               `yaml:"concurrency" json:"concurrency"` // Max parallel artifact writes (default: 8)
	FailFast    bool              `yaml:"fail_fast" json:"fail_fast"`     // Stop scheduling writes after the first failure
	Logging     LoggingConfig     `yaml:"logging" json:"logging"`
}

// ImportAliasConfig rewrites the output path into an import specifier
type ImportAliasConfig struct {
	Source string `yaml:"source" json:"source"` // Path prefix to replace (default: "/src/components")
	Alias  string `yaml:"alias" json:"alias"`   // Replacement (default: "@components")
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string             `yaml:"level" json:"level"`
	Color *bool              `yaml:"color,omitempty" json:"color,omitempty"` // Colored console output (default: true)
	File  *FileLoggingConfig `yaml:"file,omitempty" json:"file,omitempty"`   // Optional file logging configuration
}

// FileLoggingConfig contains file logging and rotation settings
type FileLoggingConfig struct {
	Path       string `yaml:"path" json:"path"`                                   // Log file path (required)
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty" json:"max_size_mb,omitempty"` // Maximum size in megabytes before rotation (default: 10)
	MaxBackups int    `yaml:"max_backups,omitempty" json:"max_backups,omitempty"` // Maximum number of old log files to retain (default: 3)
	MaxAge     int    `yaml:"max_age,omitempty" json:"max_age,omitempty"`         // Maximum number of days to retain old log files (default: 28)
	Compress   bool   `yaml:"compress,omitempty" json:"compress,omitempty"`       // Whether to compress rotated log files (default: false)
}

// UseColor reports whether console output is colored
func (l LoggingConfig) UseColor() bool {
	return l.Color == nil || *l.Color
}

// RotationConfig converts the file settings for the logging factory.
// It returns nil when file logging is not configured.
func (l LoggingConfig) RotationConfig() *logging.FileRotationConfig {
	if l.File == nil || l.File.Path == "" {
		return nil
	}
	return &logging.FileRotationConfig{
		Path:       l.File.Path,
		MaxSizeMB:  l.File.MaxSizeMB,
		MaxBackups: l.File.MaxBackups,
		MaxAge:     l.File.MaxAge,
		Compress:   l.File.Compress,
	}
}

// envOverrides are the settings the environment can override
type envOverrides struct {
	Root     string `env:"ICONFORGE_ROOT"`
	LogLevel string `env:"ICONFORGE_LOG_LEVEL"`
	NoColor  string `env:"NO_COLOR"`
}

// ApplyEnv overrides settings from ICONFORGE_ROOT, ICONFORGE_LOG_LEVEL and
// NO_COLOR. Unset variables leave the configuration unchanged.
func (c *Config) ApplyEnv() error {
	var env envOverrides
	if err := sharedconfig.ParseEnv(&env); err != nil {
		return err
	}
	if env.Root != "" {
		c.Root = env.Root
	}
	if env.LogLevel != "" {
		c.Logging.Level = env.LogLevel
	}
	if env.NoColor != "" {
		color := false
		c.Logging.Color = &color
	}
	return nil
}

// IncludeKinds parses the include list
func (c *Config) IncludeKinds() ([]policy.Kind, error) {
	return policy.ParseKinds(c.Include)
}

// ExcludeKinds parses the exclude list
func (c *Config) ExcludeKinds() ([]policy.Kind, error) {
	return policy.ParseKinds(c.Exclude)
}

// Decision evaluates the inclusion policy for the configured kinds
func (c *Config) Decision() (policy.Decision, error) {
	include, err := c.IncludeKinds()
	if err != nil {
		return policy.Decision{}, fmt.Errorf("include: %w", err)
	}
	exclude, err := c.ExcludeKinds()
	if err != nil {
		return policy.Decision{}, fmt.Errorf("exclude: %w", err)
	}
	return policy.Decide(include, exclude), nil
}

// OutputDir returns the output path relative to the project root, slash-separated
func (c *Config) OutputDir() string {
	dir := strings.Trim(filepath.ToSlash(c.OutputPath), "/")
	if dir == "" {
		return "."
	}
	return dir
}

// Validate validates the configuration and returns every problem found.
// The result is a *validation.Error so callers can list all of them.
func (c *Config) Validate() error {
	verr := validation.New()

	if len(c.InputPaths) == 0 {
		verr.Add(ErrInputPathsRequired)
	}
	for i, p := range c.InputPaths {
		if strings.TrimSpace(p) == "" {
			verr.Add(fmt.Errorf("%w: input_paths[%d]", ErrEmptyInputPath, i))
		}
	}

	if strings.TrimSpace(c.OutputPath) == "" {
		verr.Add(ErrOutputPathRequired)
	}

	if _, err := c.IncludeKinds(); err != nil {
		verr.Add(fmt.Errorf("include: %w", err))
	}
	if _, err := c.ExcludeKinds(); err != nil {
		verr.Add(fmt.Errorf("exclude: %w", err))
	}

	if (c.ImportAlias.Source == "") != (c.ImportAlias.Alias == "") {
		verr.Add(fmt.Errorf("%w: source=%q alias=%q", ErrIncompleteImportAlias, c.ImportAlias.Source, c.ImportAlias.Alias))
	}

	if c.Concurrency < 0 {
		verr.Add(fmt.Errorf("%w: %d", ErrInvalidConcurrency, c.Concurrency))
	}

	return verr.ErrorOrNil()
}
