package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/crel-dev/crel/internal/dev"
)

func devCmd() *cobra.Command {
	var (
		port     int
		host     string
		pages    string
		noReload bool
	)

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Start the preview server",
		Long: `Start the preview server with live reload.

Pages are rendered on every request, and connected browsers reload
when a page document changes.

Features:
  • Live reload on save
  • Error overlay in browser
  • Prometheus metrics on /metrics

Examples:
  crel dev
  crel dev --port=8080
  crel dev --host=0.0.0.0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(pages, "")
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Dev.Port = port
			}
			if host != "" {
				cfg.Dev.Host = host
			}
			if noReload {
				off := false
				cfg.Dev.HotReload = &off
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			printBanner()
			fmt.Println("  dev")
			fmt.Println()
			info("Serving %s at %s", cfg.PagesPath(), cfg.DevURL())
			fmt.Println()

			server := dev.NewServer(dev.ServerOptions{
				Config: cfg,
				OnReload: func(clients int) {
					success("Reloaded %d browsers", clients)
				},
			})

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			if err := server.Start(ctx); err != nil {
				return err
			}
			fmt.Println("\n  Shutting down...")
			return nil
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from crel.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from crel.json)")
	cmd.Flags().StringVar(&pages, "pages", "", "Pages directory (default from crel.json)")
	cmd.Flags().BoolVar(&noReload, "no-reload", false, "Disable live reload")

	return cmd
}
