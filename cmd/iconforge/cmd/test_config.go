package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ideamans/iconforge/pkg/config"
	"github.com/ideamans/iconforge/pkg/emitter"
	"github.com/ideamans/iconforge/pkg/pipeline"
	sharedconfig "github.com/ideamans/iconforge/pkg/shared/config"
)

// testConfigCmd represents the test-config command
var testConfigCmd = &cobra.Command{
	Use:   "test-config",
	Short: "Validate the configuration file",
	Long: `Test and validate the configuration file without generating anything.

This command will:
- Load the configuration file from the specified path
- Parse the YAML/JSON content
- Validate all required fields and component kinds
- Resolve every input path and check icon names
- Report the inclusion decision and the discovered groups

If the configuration is valid, the command exits with status 0.
If there are validation errors, the command exits with status 1.`,
	RunE: runTestConfig,
}

func init() {
	rootCmd.AddCommand(testConfigCmd)
}

func runTestConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	loader := config.NewFileLoader(cfgFile)
	fmt.Fprintf(out, "Testing configuration file: %s\n", loader.Path())

	if raw, err := os.ReadFile(loader.Path()); err == nil {
		for _, name := range sharedconfig.MissingEnvVars(string(raw)) {
			fmt.Fprintf(out, "⚠ Environment variable %s is not set\n", name)
		}
	}

	cfg, err := loadConfig(cmd, loader)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "✓ Configuration file loaded successfully")

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	plan, err := pipeline.New(cfg, logger).Plan()
	if err != nil {
		return fmt.Errorf("configuration is invalid: %w", err)
	}
	fmt.Fprintln(out, "✓ Configuration validation passed")

	// Print summary
	fmt.Fprintln(out, "\nConfiguration Summary:")
	fmt.Fprintf(out, "  Root: %s\n", cfg.Root)
	fmt.Fprintf(out, "  Output: %s\n", cfg.OutputPath)
	fmt.Fprintf(out, "  Import Base: %s\n", emitter.ImportBase(cfg.OutputPath, cfg.ImportAlias.Source, cfg.ImportAlias.Alias))
	fmt.Fprintf(out, "  Public Dir: %s\n", cfg.PublicDir)
	fmt.Fprintf(out, "  Concurrency: %d\n", cfg.Concurrency)
	fmt.Fprintf(out, "  Artifacts: %s\n", plan.Decision)

	fmt.Fprintln(out, "\nIcon Groups:")
	for i, g := range plan.Groups {
		names := make([]string, 0, len(g.Files))
		for _, f := range g.Files {
			names = append(names, f.FileName)
		}
		fmt.Fprintf(out, "  %s (%s): %d icons\n", g.Directory, plan.Matches[i].Pattern, len(g.Files))
		fmt.Fprintf(out, "    %s\n", strings.Join(names, ", "))
	}

	fmt.Fprintln(out, "\n✓ Configuration is valid and ready to use")
	return nil
}
