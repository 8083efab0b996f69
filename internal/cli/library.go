package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/shadercopy/pkg/document"
	"github.com/matzehuels/shadercopy/pkg/errors"
	"github.com/matzehuels/shadercopy/pkg/host"
	"github.com/matzehuels/shadercopy/pkg/host/sqlite"
	"github.com/matzehuels/shadercopy/pkg/nodes"
	"github.com/matzehuels/shadercopy/pkg/transport"
)

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		format  string
		output  string
		compact bool
	)

	cmd := &cobra.Command{
		Use:   "export <material>",
		Short: "Print a material's document",
		Long: `Serialize a material and write the document to standard output, or to a
file with --output. With --output the format follows the file extension
unless --format is given.`,
		Example: `  shadercopy export Wood
  shadercopy export Wood --format yaml
  shadercopy export Wood -o wood.yaml`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeMaterials,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" && output != "" {
				format = string(document.FormatFromPath(output))
			}
			opts, err := c.textOptions(format, compact)
			if err != nil {
				return err
			}
			return c.withLibrary(func(lib *sqlite.Store) error {
				doc, report, err := c.serializer().SerializeByName(cmd.Context(), lib, args[0])
				if err != nil {
					return err
				}
				if output == "" {
					return document.Encode(cmd.OutOrStdout(), doc, opts.Format, opts.Indent)
				}
				text, err := transport.CopyToText(doc, opts)
				if err != nil {
					return err
				}
				if err := writeFile(output, text); err != nil {
					return err
				}
				printSuccess("Exported %s", StyleHighlight.Render(doc.Name))
				printFile(output)
				printReport(report)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "document format: json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.Flags().BoolVar(&compact, "compact", false, "single-line JSON")

	return cmd
}

// writeFile writes a document text with a trailing newline, creating
// parent directories.
func writeFile(path, text string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(text+"\n"), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// listCommand creates the list command.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the materials in the library",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withLibrary(func(lib *sqlite.Store) error {
				materials, err := summarize(cmd.Context(), lib)
				if err != nil {
					return err
				}
				if len(materials) == 0 {
					printInfo("The library at %s is empty", lib.Path())
					printNextStep("Create a demo material", appName+" seed")
					return nil
				}
				rows := make([][]string, len(materials))
				for i, m := range materials {
					rows[i] = m.row()
				}
				t := materialTable(rows, func(row, col int) lipgloss.Style {
					if col > 0 {
						return lipgloss.NewStyle().Foreground(colorGray)
					}
					return lipgloss.NewStyle()
				})
				fmt.Fprintln(cmd.OutOrStdout(), t.Render())
				return nil
			})
		},
	}
}

// typesCommand creates the types command.
func (c *CLI) typesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the node types that can be copied",
		Long: `List every node type the converters support, with the properties that are
carried in documents. Legacy type names are accepted on paste and mapped to
the type shown here.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), typesTable(c.registry).Render())
			return nil
		},
	}
}

func typesTable(reg *nodes.Registry) *table.Table {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	var rows [][]string
	for _, typ := range reg.Types() {
		def, _ := reg.Lookup(typ)
		var props []string
		for _, p := range reg.Properties(typ) {
			props = append(props, p.Name)
		}
		rows = append(rows, []string{
			typ,
			def.Label,
			strconv.Itoa(len(def.Inputs)) + "/" + strconv.Itoa(len(def.Outputs)),
			strings.Join(props, ", "),
		})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Type", "Label", "In/Out", "Properties").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return lipgloss.NewStyle().Foreground(colorCyan)
			default:
				return lipgloss.NewStyle()
			}
		})
}

// seedCommand creates the seed command.
func (c *CLI) seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed [name]",
		Short: "Create a demo material",
		Long: `Create a small demo material: a Principled BSDF with an orange base color,
metallic 0.8 and roughness 0.2, connected to a Material Output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := host.DemoMaterialName
			if len(args) > 0 {
				name = args[0]
			}
			if err := errors.ValidateMaterialName(name); err != nil {
				return err
			}
			return c.withLibrary(func(lib *sqlite.Store) error {
				m, err := host.CreateDemoMaterial(cmd.Context(), lib, name)
				if err != nil {
					return err
				}
				printSuccess("Created %s", StyleHighlight.Render(m.Name))
				nodes, links := m.Stats()
				printStats(nodes, links)
				printNextStep("Copy it", appName+" copy "+shellQuote(m.Name))
				return nil
			})
		},
	}
}

// deleteCommand creates the delete command.
func (c *CLI) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:               "delete <material>...",
		Aliases:           []string{"rm"},
		Short:             "Delete materials from the library",
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: c.completeMaterials,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withLibrary(func(lib *sqlite.Store) error {
				for _, name := range args {
					if err := lib.Delete(cmd.Context(), name); err != nil {
						return err
					}
					printSuccess("Deleted %s", StyleHighlight.Render(name))
				}
				return nil
			})
		},
	}
}

// shellQuote quotes s for the suggested-command lines when it contains
// characters a shell would split on.
func shellQuote(s string) string {
	if !strings.ContainsAny(s, " \t'\"$`\\") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
