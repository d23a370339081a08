package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ideamans/iconforge/pkg/config"
	"github.com/ideamans/iconforge/pkg/output"
	"github.com/ideamans/iconforge/pkg/pipeline"
)

var (
	includeKinds []string
	excludeKinds []string
	dryRun       bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate icon components from SVG files",
	Long: `Generate icon components with the specified configuration.

The command will:
- Resolve every input path into an ordered group of SVG files
- Check icon keys and component names for collisions
- Decide which artifacts to emit from include/exclude
- Write the type union, stylesheet, components and templates

Nothing is written when discovery or validation fails. Write failures are
reported together once every artifact was attempted.`,
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

// addGenerateFlags registers the generate flags on c. The root command
// carries them too since it runs generate by default.
func addGenerateFlags(c *cobra.Command) {
	c.Flags().StringSliceVar(&includeKinds, "include", nil, "Component kinds to include (tsx, astro); overrides the config file")
	c.Flags().StringSliceVar(&excludeKinds, "exclude", nil, "Component kinds to exclude (tsx, astro); overrides the config file")
	c.Flags().BoolVar(&dryRun, "dry-run", false, "Render artifacts in memory and list them without writing")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, config.NewFileLoader(cfgFile))
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("include") {
		cfg.Include = includeKinds
	}
	if cmd.Flags().Changed("exclude") {
		cfg.Exclude = excludeKinds
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	var opts []pipeline.Option
	var memory *output.MemoryWriter
	if dryRun {
		memory = output.NewMemoryWriter()
		opts = append(opts, pipeline.WithWriter(memory))
		logger.Info("Dry run: nothing will be written")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := pipeline.New(cfg, logger, opts...).Run(ctx)

	if memory != nil && result != nil {
		out := cmd.OutOrStdout()
		for _, name := range memory.Files() {
			data, _ := memory.File(name)
			fmt.Fprintf(out, "%s (%d bytes) %s\n", name, len(data), result.Descriptions[name])
		}
	}

	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	logger.Info("Generation completed", "artifacts", len(result.Written))
	return nil
}
