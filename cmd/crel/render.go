package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crel-dev/crel/el"
	"github.com/crel-dev/crel/internal/config"
	"github.com/crel-dev/crel/pkg/markup"
	"github.com/crel-dev/crel/pkg/node"
	"github.com/crel-dev/crel/pkg/render"
)

func renderCmd() *cobra.Command {
	var (
		output   string
		maxDepth int
	)

	cmd := &cobra.Command{
		Use:   "render <document>",
		Short: "Render a page document to HTML",
		Long: `Render a single page document (YAML or JSON) to HTML.

Use "-" to read the document from standard input.

Examples:
  crel render pages/index.yaml
  crel render pages/index.yaml -o index.html
  cat page.json | crel render -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, err := loadDocument(cmd, args[0])
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			bw := bufio.NewWriter(w)
			r := render.NewStreamingRenderer(bw, render.RendererConfig{MaxDepth: maxDepth})
			if err := r.Render(nodes...); err != nil {
				return err
			}
			if output == "" {
				bw.WriteString("\n")
			}
			return bw.Flush()
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write HTML to a file instead of stdout")
	cmd.Flags().IntVar(&maxDepth, "max-depth", config.DefaultMaxDepth, "Maximum element nesting (0 = unlimited)")

	return cmd
}

func treeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <document>",
		Short: "Print the node tree of a page document",
		Long: `Print the decoded node tree of a page document, for debugging
documents that render unexpectedly.

Examples:
  crel tree pages/index.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, err := loadDocument(cmd, args[0])
			if err != nil {
				return err
			}
			out, err := render.Dump(nodes...)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func tagsCmd() *cobra.Command {
	var voidOnly bool

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the known HTML elements",
		Long: `List every element name page documents may use without "custom: true".
Void elements are marked with "(void)".`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, name := range el.Names() {
				void := el.IsVoidElement(name)
				switch {
				case voidOnly && !void:
					continue
				case void && !voidOnly:
					fmt.Fprintf(out, "%s (void)\n", name)
				default:
					fmt.Fprintln(out, name)
				}
			}
		},
	}

	cmd.Flags().BoolVar(&voidOnly, "void", false, "List only void elements")

	return cmd
}

// loadDocument decodes the document at path, or stdin for "-".
func loadDocument(cmd *cobra.Command, path string) ([]node.Node, error) {
	if path == "-" {
		return markup.Parse(cmd.InOrStdin())
	}
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("empty document path")
	}
	return markup.DecodeFile(path)
}
