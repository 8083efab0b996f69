package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shadercopy/pkg/document"
	"github.com/matzehuels/shadercopy/pkg/host/sqlite"
	"github.com/matzehuels/shadercopy/pkg/nodes"
	"github.com/matzehuels/shadercopy/pkg/render/nodelink"
)

// showCommand creates the show command.
func (c *CLI) showCommand() *cobra.Command {
	var (
		svg      string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "show <material|file>",
		Short: "Draw a material's node graph",
		Long: `Draw a node graph as a Graphviz diagram. The argument is a material in the
library or, if a file with that path exists, a document file.

Without --svg the DOT source is written to standard output.`,
		Example: `  shadercopy show Wood
  shadercopy show Wood --detailed --svg wood.svg
  shadercopy show wood.json | dot -Tpng -o wood.png`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeMaterials,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			doc, err := c.loadDocument(ctx, args[0])
			if err != nil {
				return err
			}

			dot := nodelink.ToDOT(doc, nodelink.Options{Detailed: detailed, Registry: c.registry})
			if svg == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), dot)
				return err
			}

			prog := newProgress(loggerFromContext(ctx))
			data, err := spin(ctx, "Rendering graph...", func(ctx context.Context) ([]byte, error) {
				return nodelink.RenderSVG(ctx, dot)
			})
			if err != nil {
				return err
			}
			if err := writeFile(svg, string(data)); err != nil {
				return err
			}
			prog.done("Rendered " + doc.Name)
			printFile(svg)
			return nil
		},
	}

	cmd.Flags().StringVar(&svg, "svg", "", "render SVG to this file")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "list input values and properties on nodes")

	return cmd
}

// loadDocument reads a document file when arg names one, and otherwise
// serializes the library material named arg.
func (c *CLI) loadDocument(ctx context.Context, arg string) (document.Document, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return document.ReadFile(arg)
	}
	var doc document.Document
	err := c.withLibrary(func(lib *sqlite.Store) error {
		var err error
		doc, _, err = c.serializer().SerializeByName(ctx, lib, arg)
		return err
	})
	return doc, err
}

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check document files",
		Long: `Check that document files are well formed: every node has a name and a
type, node names are unique, and every link names both endpoints. Node types
this build cannot create are reported as warnings; pasting such a document
skips those nodes.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				if !c.validateFile(path) {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d documents invalid", failed, len(args))
			}
			return nil
		},
	}
}

func (c *CLI) validateFile(path string) bool {
	doc, err := document.ReadFile(path)
	if err != nil {
		printError("%s", path)
		if issues := document.IssuesOf(err); len(issues) > 0 {
			printIssues(err)
		} else {
			printDetail("%v", err)
		}
		return false
	}

	printSuccess("%s", path)
	printStats(len(doc.Nodes), len(doc.Links))
	for _, n := range doc.Nodes {
		if !c.registry.Supports(nodes.Normalize(n.Type)) {
			printWarning("node %q has unsupported type %s", n.Name, n.Type)
		}
	}
	for _, l := range doc.Links {
		if _, ok := doc.Node(l.FromNode); !ok {
			printWarning("link %s: no node %q", l, l.FromNode)
		}
		if _, ok := doc.Node(l.ToNode); !ok {
			printWarning("link %s: no node %q", l, l.ToNode)
		}
	}
	return true
}
