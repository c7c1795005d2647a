package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/allena90/plantsim/pkg/errors"
)

// convertCommand converts a value between two units resolved from the
// registry by symbol or name.
func (c *CLI) convertCommand() *cobra.Command {
	var precision int

	cmd := &cobra.Command{
		Use:   "convert <value> <from> <to>",
		Short: "Convert a value between units",
		Long: `Convert a numeric value from one unit to another.

Units resolve by symbol first (case-sensitive, "m" is meter) and by full
name second (case-insensitive, "Meter" works too). Temperatures convert
through their affine offsets, so "convert 25 °C K" yields 298.15.`,
		Example: `  plantsim convert 100 °C °F
  plantsim convert 1 atm psi
  plantsim convert 2.5 kg/s t/h`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.New(errors.ErrCodeInvalidInput, "not a number: %q", args[0])
			}
			fromID, toID := args[1], args[2]

			from, err := c.Registry.Get(fromID)
			if err != nil {
				return err
			}
			to, err := c.Registry.Get(toID)
			if err != nil {
				return err
			}
			logger.Debugf("converting %g %s (%s) to %s", value, from.Symbol, from.Dimension, to.Symbol)

			result, err := from.ConvertTo(value, to)
			if err != nil {
				return err
			}

			fmt.Printf("%s %s %s %s\n",
				StyleNumber.Render(strconv.FormatFloat(value, 'g', -1, 64))+" "+StyleValue.Render(from.Symbol),
				StyleDim.Render(iconArrow),
				StyleNumber.Render(strconv.FormatFloat(result, 'g', precision, 64)),
				StyleValue.Render(to.Symbol))
			return nil
		},
	}

	cmd.Flags().IntVarP(&precision, "precision", "p", -1, "significant digits in the result (-1 for shortest exact)")
	return cmd
}
