package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/crel-dev/crel/internal/config"
	crelerrors "github.com/crel-dev/crel/internal/errors"
)

const samplePage = `- doctype: html
- tag: html
  attrs:
    lang: en
  children:
    - tag: head
      children:
        - tag: meta
          attrs:
            charset: utf-8
        - tag: title
          children: [Hello]
    - tag: body
      children:
        - tag: h1
          children: [Hello from crel]
`

func initCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create crel.json and a sample page",
		Long: `Create a crel.json with default settings and pages/index.yaml.

Examples:
  crel init
  crel init my-site`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(dir, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing crel.json")

	return cmd
}

func runInit(dir string, force bool) error {
	if config.Exists(dir) && !force {
		return crelerrors.New("E031").
			WithDetail("crel.json already exists in " + dir).
			WithSuggestion("Use --force to overwrite it")
	}

	cfg := config.New()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	if err := cfg.SaveTo(filepath.Join(dir, config.ConfigFileName)); err != nil {
		return err
	}
	success("Created %s", cfg.Path())

	pagesDir := filepath.Join(dir, cfg.Pages)
	index := filepath.Join(pagesDir, "index.yaml")
	if _, err := os.Stat(index); err == nil {
		info("Kept existing %s", index)
		return nil
	}
	if err := os.MkdirAll(pagesDir, 0755); err != nil {
		return err
	}
	if err := os.WriteFile(index, []byte(samplePage), 0644); err != nil {
		return err
	}
	success("Created %s", index)
	return nil
}
