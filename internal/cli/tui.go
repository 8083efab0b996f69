package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/shadercopy/pkg/errors"
	"github.com/matzehuels/shadercopy/pkg/host"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// MaterialListModel - Interactive material selection
// =============================================================================

// MaterialSummary is one row of the material picker and the list command.
type MaterialSummary struct {
	Name     string
	Nodes    int
	Links    int
	UseNodes bool
}

// MaterialListModel is the bubbletea model for interactive material selection.
type MaterialListModel struct {
	Materials []MaterialSummary
	Cursor    int
	Selected  *MaterialSummary
	Height    int
	Offset    int
}

// NewMaterialListModel creates a new material list model.
func NewMaterialListModel(materials []MaterialSummary) MaterialListModel {
	return MaterialListModel{Materials: materials, Height: 15}
}

func (m MaterialListModel) Init() tea.Cmd {
	return nil
}

func (m MaterialListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Materials)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Materials) == 0 {
				return m, tea.Quit
			}
			sel := m.Materials[m.Cursor]
			m.Selected = &sel
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
	}
	return m, nil
}

func (m MaterialListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Material"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Materials))
	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, append([]string{cursor}, m.Materials[i].row()...))
	}

	t := materialTable(rows, func(row, col int) lipgloss.Style {
		if m.Offset+row == m.Cursor {
			return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
		}
		return lipgloss.NewStyle()
	}, "")

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Materials))))

	return b.String()
}

func (s MaterialSummary) row() []string {
	nodes := "—"
	if s.UseNodes {
		nodes = "✓"
	}
	return []string{s.Name, strconv.Itoa(s.Nodes), strconv.Itoa(s.Links), nodes}
}

// materialTable renders material rows with the shared header. A non-empty
// lead header adds a leading column, used by the picker for its cursor.
func materialTable(rows [][]string, style func(row, col int) lipgloss.Style, lead ...string) *table.Table {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	headers := append(lead, "Material", "Nodes", "Links", "Use nodes")
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return style(row, col)
		})
}

// =============================================================================
// Library Helpers
// =============================================================================

// summarize loads every material in repo and counts its graph.
func summarize(ctx context.Context, repo host.Repository) ([]MaterialSummary, error) {
	names, err := repo.Materials(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]MaterialSummary, 0, len(names))
	for _, name := range names {
		m, err := repo.Material(ctx, name)
		if err != nil {
			return nil, err
		}
		nodes, links := m.Stats()
		out = append(out, MaterialSummary{Name: m.Name, Nodes: nodes, Links: links, UseNodes: m.UseNodes})
	}
	return out, nil
}

// pickMaterial shows the interactive picker and returns the chosen name.
func (c *CLI) pickMaterial(ctx context.Context, repo host.Repository) (string, error) {
	materials, err := summarize(ctx, repo)
	if err != nil {
		return "", err
	}
	if len(materials) == 0 {
		printNextStep("Create a demo material", appName+" seed")
		return "", errors.New(errors.ErrCodeNotFound, "the library has no materials")
	}

	final, err := tea.NewProgram(NewMaterialListModel(materials), tea.WithContext(ctx)).Run()
	if err != nil {
		return "", fmt.Errorf("material picker: %w", err)
	}
	sel := final.(MaterialListModel).Selected
	if sel == nil {
		return "", errors.New(errors.ErrCodeInvalidInput, "no material selected")
	}
	return sel.Name, nil
}

// completeMaterials completes material names from the library.
func (c *CLI) completeMaterials(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	if err := c.loadConfig(cmd, args); err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	lib, err := c.openLibrary()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer lib.Close()

	names, err := lib.Materials(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var out []string
	for _, name := range names {
		if strings.HasPrefix(name, toComplete) {
			out = append(out, name)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
