package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/crel-dev/crel/internal/config"
	"github.com/crel-dev/crel/pkg/publish"
)

func buildCmd() *cobra.Command {
	var (
		pages  string
		output string
		clean  bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render every page document to static HTML",
		Long: `Render every .yaml, .yml and .json document in the pages directory
to <output>/<name>.html.

A failing page is reported and the remaining pages are still built.

Examples:
  crel build
  crel build --output=public --clean`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(pages, output)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			_, err = runBuild(ctx, cfg, clean)
			return err
		},
	}

	cmd.Flags().StringVar(&pages, "pages", "", "Pages directory (default from crel.json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from crel.json)")
	cmd.Flags().BoolVar(&clean, "clean", false, "Clean output directory before build")

	return cmd
}

// loadConfig loads crel.json and applies command-line overrides.
func loadConfig(pages, output string) (*config.Config, error) {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return nil, err
	}
	if pages != "" {
		cfg.Pages = pages
	}
	if output != "" {
		cfg.Output = output
	}
	return cfg, nil
}

func runBuild(ctx context.Context, cfg *config.Config, clean bool) (*publish.BuildResult, error) {
	if clean {
		info("Cleaning %s", cfg.OutputPath())
		if err := os.RemoveAll(cfg.OutputPath()); err != nil {
			return nil, err
		}
	}

	info("Building %s → %s", cfg.PagesPath(), cfg.OutputPath())

	builder := publish.NewBuilder(publish.BuilderConfig{
		PagesDir:  cfg.PagesPath(),
		OutputDir: cfg.OutputPath(),
		MaxDepth:  cfg.NestingLimit(),
	})
	result, err := builder.Build(ctx)
	if err != nil {
		if result != nil && result.Failed > 0 {
			warn("%d pages failed", result.Failed)
		}
		return result, err
	}

	success("Built %d pages (%d bytes) in %s", len(result.Files), result.Bytes, result.Duration.Round(time.Millisecond))
	return result, nil
}
