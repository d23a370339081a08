package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	sharedconfig "github.com/ideamans/iconforge/pkg/shared/config"
)

// Loader is an interface for loading configuration
type Loader interface {
	Load() (*Config, error)
}

// FileLoader loads configuration from a YAML or JSON file
type FileLoader struct {
	path string
}

// NewFileLoader creates a new FileLoader
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Path returns the configuration file path
func (l *FileLoader) Path() string {
	return l.path
}

// Load reads and parses the configuration file
// Supports both YAML (.yaml, .yml) and JSON (.json) formats
// Format is automatically detected from file extension
// Environment variables in the format ${VAR} or ${VAR:-default} are expanded
func (l *FileLoader) Load() (*Config, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigFileNotFound, l.path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(sharedconfig.ExpandEnvBytes(data), filepath.Ext(l.path))
	if err != nil {
		return nil, err
	}

	// Relative roots are resolved against the config file's directory
	if !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(filepath.Dir(l.path), cfg.Root)
	}

	return cfg, nil
}

// Parse decodes configuration data in the format named by ext and applies
// defaults. Validation is left to Config.Validate so every problem can be
// reported at once.
func Parse(data []byte, ext string) (*Config, error) {
	var cfg Config

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s (supported: .yaml, .yml, .json)", ErrUnsupportedFormat, ext)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults sets default values for optional fields
func applyDefaults(cfg *Config) {
	if cfg.Root == "" {
		cfg.Root = DefaultRoot
	}

	// A half-set alias is left for Validate to reject
	if cfg.ImportAlias.Source == "" && cfg.ImportAlias.Alias == "" {
		cfg.ImportAlias.Source = DefaultAliasSource
		cfg.ImportAlias.Alias = DefaultAlias
	}

	if cfg.PublicDir == "" {
		cfg.PublicDir = DefaultPublicDir
	}

	if cfg.Concurrency == 0 {
		cfg.Concurrency = DefaultConcurrency
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
}
