package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	crelerrors "github.com/crel-dev/crel/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┬─┐┌─┐┬
  │  ├┬┘├┤ │
  └─┘┴└─└─┘┴─┘
`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		crelerrors.PrintError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		noColor bool
	)

	rootCmd := &cobra.Command{
		Use:   "crel",
		Short: "Templateless HTML for Go",
		Long: `crel renders HTML from node trees built in Go or from declarative
page documents (YAML or JSON).

  • Escaped text and attributes by default
  • Page documents rendered to a static site
  • Preview server with live reload
  • Publishing to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			if noColor || os.Getenv("NO_COLOR") != "" {
				crelerrors.DisableColors()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		initCmd(),
		renderCmd(),
		treeCmd(),
		tagsCmd(),
		buildCmd(),
		devCmd(),
		publishCmd(),
		versionCmd(),
	)
	return rootCmd
}

// printBanner prints the crel ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
