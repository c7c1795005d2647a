package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// componentsCommand shows the component library, either the built-in data
// or a TOML file supplied with --file.
func (c *CLI) componentsCommand() *cobra.Command {
	var (
		file string
		show string
	)

	cmd := &cobra.Command{
		Use:   "components",
		Short: "Show the component library",
		Long: `List the components available for thermodynamic calculations with
their key properties. Supply --file to load a TOML library of
[[component]] tables instead of the built-in data, and --show to print
one component's full property set.`,
		Example: `  plantsim components
  plantsim components --file mylib.toml
  plantsim components --show water`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadLibrary(file); err != nil {
				return err
			}

			if show != "" {
				comp, err := c.Library.Get(show)
				if err != nil {
					return err
				}
				fmt.Println(StyleTitle.Render(comp.String()))
				printKeyValue("CAS number", orDash(comp.CASNumber))
				printKeyValue("Molecular weight", fmt.Sprintf("%.3f kg/kmol", comp.MolecularWeight))
				printKeyValue("Critical temperature", fmt.Sprintf("%.2f K", comp.CriticalTemperature))
				printKeyValue("Critical pressure", fmt.Sprintf("%.4f MPa", comp.CriticalPressure/1e6))
				printKeyValue("Critical volume", fmt.Sprintf("%.4f m³/kmol", comp.CriticalVolume))
				printKeyValue("Acentric factor", strconv.FormatFloat(comp.AcentricFactor, 'g', -1, 64))
				if comp.NormalBoilingPoint > 0 {
					printKeyValue("Normal boiling point", fmt.Sprintf("%.2f K", comp.NormalBoilingPoint))
				}
				if comp.NormalMeltingPoint > 0 {
					printKeyValue("Normal melting point", fmt.Sprintf("%.2f K", comp.NormalMeltingPoint))
				}
				if comp.Antoine != nil {
					printKeyValue("Antoine A/B/C", fmt.Sprintf("%g / %g / %g", comp.Antoine.A, comp.Antoine.B, comp.Antoine.C))
					printKeyValue("Antoine range", fmt.Sprintf("%.2f K to %.2f K", comp.Antoine.TMin, comp.Antoine.TMax))
				}
				if comp.HeatOfVaporization > 0 {
					printKeyValue("Heat of vaporization", fmt.Sprintf("%.1f kJ/kmol", comp.HeatOfVaporization/1e3))
				}
				printKeyValue("Phase at STP", comp.PhaseAtSTP)
				if comp.Description != "" {
					printDetail("%s", comp.Description)
				}
				return nil
			}

			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			rows := [][]string{}
			for _, comp := range c.Library.All() {
				antoine := "—"
				if comp.Antoine != nil {
					antoine = fmt.Sprintf("%.0f–%.0f K", comp.Antoine.TMin, comp.Antoine.TMax)
				}
				rows = append(rows, []string{
					comp.Name,
					comp.Formula,
					fmt.Sprintf("%.3f", comp.MolecularWeight),
					fmt.Sprintf("%.1f", comp.CriticalTemperature),
					fmt.Sprintf("%.3f", comp.CriticalPressure/1e6),
					antoine,
					comp.PhaseAtSTP,
				})
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Name", "Formula", "MW kg/kmol", "Tc K", "Pc MPa", "Antoine range", "STP phase").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return headerStyle
					}
					if col == 0 {
						return StyleHighlight
					}
					if col >= 5 {
						return StyleDim
					}
					return StyleValue
				})
			fmt.Println(t.Render())
			printDetail("%d components", c.Library.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "load a TOML component library instead of the built-in data")
	cmd.Flags().StringVarP(&show, "show", "s", "", "print full properties of one component")
	return cmd
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
