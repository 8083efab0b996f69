package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/shadercopy/pkg/config"
	"github.com/matzehuels/shadercopy/pkg/transport"
)

// historyCommand creates the history command with its subcommands.
func (c *CLI) historyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the clipboard history",
		Long: `Every copy is remembered for a while (history_ttl in the config, a week by
default) so it can be pasted again with "shadercopy paste --history <hash>".`,
	}

	cmd.AddCommand(c.historyListCommand())
	cmd.AddCommand(c.historyShowCommand())
	cmd.AddCommand(c.historyClearCommand())
	cmd.AddCommand(c.historyPathCommand())

	return cmd
}

func (c *CLI) historyListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List remembered copies, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := c.history().List(cmd.Context())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				printInfo("Clipboard history is empty")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), historyTable(entries, time.Now()).Render())
			return nil
		},
	}
}

func (c *CLI) historyShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [hash]",
		Short: "Print a remembered copy",
		Long:  `Print the text of a history entry. Without a hash the latest entry is shown.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h := c.history()
			var (
				e   transport.Entry
				err error
			)
			if len(args) > 0 {
				e, err = h.Get(cmd.Context(), args[0])
			} else {
				e, err = h.Latest(cmd.Context())
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.Text)
			return nil
		},
	}
}

func (c *CLI) historyClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget every remembered copy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.history().Clear(cmd.Context())
			if err != nil {
				return err
			}
			printSuccess("Removed %d history entries", n)
			return nil
		},
	}
}

func (c *CLI) historyPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the history cache directory",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.CacheDir())
		},
	}
}

func historyTable(entries []transport.Entry, now time.Time) *table.Table {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.Short(), e.Material, e.Format, formatRelativeTime(e.CopiedAt, now)}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Hash", "Material", "Format", "Copied").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return lipgloss.NewStyle().Foreground(colorCyan)
			case col == 3:
				return lipgloss.NewStyle().Foreground(colorGray)
			default:
				return lipgloss.NewStyle()
			}
		})
}

func formatRelativeTime(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Local().Format("Jan 2, 2006")
	}
}
