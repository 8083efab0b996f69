package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/shadercopy/pkg/errors"
	"github.com/matzehuels/shadercopy/pkg/host/sqlite"
	"github.com/matzehuels/shadercopy/pkg/transport"
)

// copyCommand creates the copy command.
func (c *CLI) copyCommand() *cobra.Command {
	var (
		format  string
		output  string
		compact bool
	)

	cmd := &cobra.Command{
		Use:   "copy [material]",
		Short: "Copy a material to the clipboard as text",
		Long: `Serialize a material from the library and put the document on the clipboard.

Without a material name an interactive picker is shown. Every copy is recorded
in the clipboard history so it can be pasted again later.`,
		Example: `  shadercopy copy Wood
  shadercopy copy Wood --format yaml
  shadercopy copy Wood -o wood.json`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: c.completeMaterials,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.textOptions(format, compact)
			if err != nil {
				return err
			}
			return c.withLibrary(func(lib *sqlite.Store) error {
				name, err := c.materialArg(cmd.Context(), lib, args)
				if err != nil {
					return err
				}
				return c.runCopy(cmd.Context(), lib, name, opts, output)
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "document format: json or yaml (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of the clipboard")
	cmd.Flags().BoolVar(&compact, "compact", false, "single-line JSON")

	return cmd
}

func (c *CLI) runCopy(ctx context.Context, lib *sqlite.Store, name string, opts transport.Options, output string) error {
	doc, report, err := c.serializer().SerializeByName(ctx, lib, name)
	if err != nil {
		return err
	}

	var text string
	if output != "" {
		if text, err = transport.CopyToText(doc, opts); err != nil {
			return err
		}
		if err := writeFile(output, text); err != nil {
			return err
		}
	} else {
		cb := c.clipboard()
		if text, err = transport.Copy(ctx, cb, doc, opts); err != nil {
			if errors.Is(err, errors.ErrCodeClipboardUnavailable) {
				printNextStep("Use a file instead", appName+" copy "+name+" -o "+name+".json")
			}
			return err
		}
	}

	entry, err := c.history().Record(ctx, doc.Name, string(opts.Format), text)
	if err != nil {
		c.Logger.Warn("could not record clipboard history", "err", err)
	}

	if output != "" {
		printSuccess("Copied %s", StyleHighlight.Render(name))
		printFile(output)
	} else {
		printSuccess("Copied %s to the %s clipboard", StyleHighlight.Render(name), c.clipboard().Name())
	}
	printStats(len(doc.Nodes), len(doc.Links))
	if entry.Hash != "" {
		printDetail("history %s", entry.Short())
	}
	printReport(report)
	return nil
}

// materialArg returns the material named on the command line, or asks the
// user to pick one when stdin is a terminal.
func (c *CLI) materialArg(ctx context.Context, lib *sqlite.Store, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if !isTerminal(os.Stdin) {
		return "", errors.New(errors.ErrCodeInvalidInput, "material name required")
	}
	return c.pickMaterial(ctx, lib)
}
