package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ideamans/iconforge/pkg/config"
	"github.com/ideamans/iconforge/pkg/shared/logging"
)

const defaultConfigFile = "iconforge.yaml"

var (
	cfgFile string
	rootDir string
	version = "dev" // Set by build
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "iconforge",
	Short: "iconforge - SVG to icon component generator",
	Long: `iconforge turns directories of SVG files into typed icon components.

For every configured input path it writes one icon group: a union type of
all icon keys, a mask stylesheet, React components and Astro templates,
plus an Icon component per framework that looks icons up by key.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	// Default to generate command when no subcommand is specified
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags available to all commands
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", defaultConfigFile, "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Project root (overrides the config file and ICONFORGE_ROOT)")
	addGenerateFlags(rootCmd)
}

// loadConfig loads the configuration through loader and applies environment
// and command-line overrides, in that order.
func loadConfig(cmd *cobra.Command, loader config.Loader) (*config.Config, error) {
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("failed to apply environment: %w", err)
	}

	if cmd.Flags().Changed("root") {
		cfg.Root = rootDir
	}

	return cfg, nil
}

// newLogger sets up the console logger, with file output if configured
func newLogger(cfg *config.Config) (logging.Logger, error) {
	logger, err := logging.NewLoggerWithFile(
		"iconforge",
		logging.ParseLevel(cfg.Logging.Level),
		cfg.Logging.UseColor(),
		cfg.Logging.RotationConfig(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}
