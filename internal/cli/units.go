package cli

import (
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/allena90/plantsim/pkg/errors"
	"github.com/allena90/plantsim/pkg/units"
)

// unitsCommand lists the registered units, optionally filtered to one
// dimension or browsed interactively.
func (c *CLI) unitsCommand() *cobra.Command {
	var (
		dimension   string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "units",
		Short: "List registered units",
		Long: `List every unit in the registry with its symbol, dimension, and SI
scale factor. Filter to one dimension by naming any unit that has it
(--dimension Pa shows all pressure units), or browse interactively.`,
		Example: `  plantsim units
  plantsim units --dimension Pa
  plantsim units --interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := c.Registry.All()
			if dimension != "" {
				ref, err := c.Registry.Get(dimension)
				if err != nil {
					return err
				}
				list = c.Registry.UnitsFor(ref.Dimension)
				if len(list) == 0 {
					return errors.New(errors.ErrCodeUnitNotFound,
						"no units registered for dimension %s", ref.Dimension)
				}
			}

			if interactive {
				model := newUnitListModel(list)
				if _, err := tea.NewProgram(model, tea.WithOutput(os.Stderr)).Run(); err != nil {
					return err
				}
				return nil
			}

			fmt.Println(renderUnitTable(list))
			printDetail("%d units", len(list))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dimension, "dimension", "d", "", "show only units sharing this unit's dimension")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse units in an interactive list")
	return cmd
}

// renderUnitTable renders units as a bordered table.
func renderUnitTable(list []units.Unit) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(list))
	for _, u := range list {
		rows = append(rows, []string{u.Symbol, u.Name, u.Dimension.String(), formatScale(u)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Symbol", "Name", "Dimension", "SI factor").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			if col >= 2 {
				return StyleDim
			}
			return StyleValue
		})
	return t.Render()
}

// formatScale renders the affine map onto SI as "scale" or
// "scale (+offset)".
func formatScale(u units.Unit) string {
	s := strconv.FormatFloat(u.Scale, 'g', 10, 64)
	if u.Offset != 0 {
		return s + " (+" + strconv.FormatFloat(u.Offset, 'g', 10, 64) + ")"
	}
	return s
}
