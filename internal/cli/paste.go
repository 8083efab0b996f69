package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shadercopy/pkg/document"
	"github.com/matzehuels/shadercopy/pkg/host"
	"github.com/matzehuels/shadercopy/pkg/host/memory"
	"github.com/matzehuels/shadercopy/pkg/host/sqlite"
	"github.com/matzehuels/shadercopy/pkg/transport"
)

// pasteSource selects where paste reads its text from.
type pasteSource struct {
	file    string
	stdin   bool
	history string
	latest  bool
}

// pasteCommand creates the paste command.
func (c *CLI) pasteCommand() *cobra.Command {
	var (
		src    pasteSource
		name   string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "paste",
		Short: "Rebuild a material from text on the clipboard",
		Long: `Parse a material document and rebuild its node graph as a new material in
the library.

The text is read from the clipboard unless --file, --stdin or --history is
given. JSON and YAML are both accepted. Nodes of unsupported types and links
that cannot be reconnected are skipped and listed after the paste.`,
		Example: `  shadercopy paste
  shadercopy paste --name "Wood (copy)"
  pbpaste | shadercopy paste --stdin
  shadercopy paste --latest
  shadercopy paste --history 3f2a9c`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			text, origin, err := c.readPasteText(ctx, cmd.InOrStdin(), src)
			if err != nil {
				return err
			}
			doc, err := transport.PasteFromText(text)
			if err != nil {
				printIssues(err)
				return err
			}
			c.Logger.Debug("parsed document", "source", origin, "material", doc.Name, "nodes", len(doc.Nodes))

			if dryRun {
				return c.dryRun(ctx, doc, name)
			}
			return c.withLibrary(func(lib *sqlite.Store) error {
				return c.runDeserialize(ctx, lib, doc, name, "Pasted")
			})
		},
	}

	cmd.Flags().StringVar(&src.file, "file", "", "read the document from a file")
	cmd.Flags().BoolVar(&src.stdin, "stdin", false, "read the document from standard input")
	cmd.Flags().StringVar(&src.history, "history", "", "paste a clipboard history entry by hash prefix")
	cmd.Flags().BoolVar(&src.latest, "latest", false, "paste the most recent clipboard history entry")
	cmd.Flags().StringVarP(&name, "name", "n", "", "name of the new material (default: the document's name)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "rebuild in memory only and report what would happen")
	cmd.MarkFlagsMutuallyExclusive("file", "stdin", "history", "latest")

	return cmd
}

// importCommand creates the import command.
func (c *CLI) importCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Rebuild a material from a document file",
		Long: `Read a material document from a file and rebuild it in the library. The
codec is chosen from the extension: .yaml and .yml are YAML, anything else is
JSON.`,
		Example: `  shadercopy import wood.json
  shadercopy import wood.yaml --name Oak`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.ReadFile(args[0])
			if err != nil {
				printIssues(err)
				return err
			}
			return c.withLibrary(func(lib *sqlite.Store) error {
				return c.runDeserialize(cmd.Context(), lib, doc, name, "Imported")
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "name of the new material (default: the document's name)")

	return cmd
}

func (c *CLI) readPasteText(ctx context.Context, in io.Reader, src pasteSource) (text, origin string, err error) {
	switch {
	case src.file != "":
		data, err := os.ReadFile(src.file)
		if err != nil {
			return "", "", fmt.Errorf("read %s: %w", src.file, err)
		}
		return string(data), src.file, nil
	case src.stdin:
		data, err := io.ReadAll(in)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "stdin", nil
	case src.latest:
		e, err := c.history().Latest(ctx)
		if err != nil {
			return "", "", err
		}
		return e.Text, "history " + e.Short(), nil
	case src.history != "":
		e, err := c.history().Get(ctx, src.history)
		if err != nil {
			return "", "", err
		}
		return e.Text, "history " + e.Short(), nil
	default:
		cb := c.clipboard()
		text, err := cb.Read(ctx)
		if err != nil {
			return "", "", err
		}
		return text, cb.Name() + " clipboard", nil
	}
}

func (c *CLI) runDeserialize(ctx context.Context, repo host.Repository, doc document.Document, name, verb string) error {
	m, report, err := c.deserializer(repo).Deserialize(ctx, doc, name)
	if err != nil {
		printIssues(err)
		return err
	}
	printSuccess("%s %s", verb, StyleHighlight.Render(m.Name))
	nodes, links := m.Stats()
	printStats(nodes, links)
	printReport(report)
	return nil
}

// dryRun rebuilds the document in a scratch repository and prints the
// outcome without touching the library.
func (c *CLI) dryRun(ctx context.Context, doc document.Document, name string) error {
	scratch := memory.New(c.registry)
	m, report, err := c.deserializer(scratch).Deserialize(ctx, doc, name)
	if err != nil {
		printIssues(err)
		return err
	}
	nodes, links := m.Stats()
	printInfo("Would create %s", StyleHighlight.Render(m.Name))
	printStats(nodes, links)
	printReport(report)
	return nil
}

// printIssues lists the structural problems carried by a validation error.
func printIssues(err error) {
	for _, issue := range document.IssuesOf(err) {
		printDetail("%s", issue)
	}
}
