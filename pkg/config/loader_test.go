package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileLoader_Load(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		validate func(*testing.T, *Config)
	}{
		{
			name: "full yaml config",
			file: "iconforge.yaml",
			content: `
root: site
input_paths:
  - /public/icons
  - /public/logos
output_path: /src/components/Icon
include: [astro]
exclude: []
import_alias:
  source: /src
  alias: "~"
public_dir: /static
concurrency: 2
fail_fast: true
logging:
  level: debug
  color: false
  file:
    path: iconforge.log
    max_backups: 2
`,
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"/public/icons", "/public/logos"}, cfg.InputPaths)
				assert.Equal(t, "/src/components/Icon", cfg.OutputPath)
				assert.Equal(t, []string{"astro"}, cfg.Include)
				assert.Equal(t, ImportAliasConfig{Source: "/src", Alias: "~"}, cfg.ImportAlias)
				assert.Equal(t, "/static", cfg.PublicDir)
				assert.Equal(t, 2, cfg.Concurrency)
				assert.True(t, cfg.FailFast)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.False(t, cfg.Logging.UseColor())
				require.NotNil(t, cfg.Logging.File)
				assert.Equal(t, 2, cfg.Logging.File.MaxBackups)
				assert.Equal(t, "site", filepath.Base(cfg.Root))
			},
		},
		{
			name: "defaults",
			file: "iconforge.yml",
			content: `
input_paths: [/public/icons]
output_path: /src/components/Icon
`,
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultAliasSource, cfg.ImportAlias.Source)
				assert.Equal(t, DefaultAlias, cfg.ImportAlias.Alias)
				assert.Equal(t, DefaultPublicDir, cfg.PublicDir)
				assert.Equal(t, DefaultConcurrency, cfg.Concurrency)
				assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
				assert.True(t, cfg.Logging.UseColor())
				assert.False(t, cfg.FailFast)
				assert.Empty(t, cfg.Include)
			},
		},
		{
			name: "json config",
			file: "iconforge.json",
			content: `{
  "input_paths": ["/public/icons"],
  "output_path": "/src/components/Icon",
  "exclude": ["tsx"]
}`,
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"tsx"}, cfg.Exclude)
				assert.Equal(t, DefaultConcurrency, cfg.Concurrency)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewFileLoader(writeConfig(t, tt.file, tt.content)).Load()
			require.NoError(t, err)
			require.NoError(t, cfg.Validate())
			tt.validate(t, cfg)
		})
	}
}

func TestFileLoader_Load_RootRelativeToConfigFile(t *testing.T) {
	path := writeConfig(t, "iconforge.yaml", "input_paths: [/a]\noutput_path: /b\n")

	cfg, err := NewFileLoader(path).Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Dir(path), cfg.Root)
}

func TestFileLoader_Load_ExpandsEnv(t *testing.T) {
	t.Setenv("ICON_OUTPUT", "/src/generated/Icon")
	path := writeConfig(t, "iconforge.yaml", `
input_paths: ["${ICON_INPUT:-/public/icons}"]
output_path: ${ICON_OUTPUT}
`)

	cfg, err := NewFileLoader(path).Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"/public/icons"}, cfg.InputPaths)
	assert.Equal(t, "/src/generated/Icon", cfg.OutputPath)
}

func TestFileLoader_Load_FileNotFound(t *testing.T) {
	_, err := NewFileLoader(filepath.Join(t.TempDir(), "missing.yaml")).Load()
	assert.ErrorIs(t, err, ErrConfigFileNotFound)
}

func TestFileLoader_Load_UnsupportedFormat(t *testing.T) {
	_, err := NewFileLoader(writeConfig(t, "iconforge.toml", "input_paths = []")).Load()
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestFileLoader_Load_Malformed(t *testing.T) {
	_, err := NewFileLoader(writeConfig(t, "iconforge.yaml", "input_paths: [unterminated")).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML config file")

	_, err = NewFileLoader(writeConfig(t, "iconforge.json", "{")).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse JSON config file")
}

func TestParse_HalfConfiguredImportAlias(t *testing.T) {
	tests := []struct {
		name  string
		alias string
		want  ImportAliasConfig
	}{
		{
			name:  "alias only",
			alias: "  alias: '~'\n",
			want:  ImportAliasConfig{Alias: "~"},
		},
		{
			name:  "source only",
			alias: "  source: /src/components\n",
			want:  ImportAliasConfig{Source: "/src/components"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte("input_paths: [/public/icons]\noutput_path: /src/components/Icon\nimport_alias:\n"+tt.alias), ".yaml")
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.ImportAlias, "no default fills the missing side")

			err = cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrIncompleteImportAlias)
		})
	}
}
