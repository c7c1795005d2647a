package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/allena90/plantsim/pkg/component"
	"github.com/allena90/plantsim/pkg/errors"
	"github.com/allena90/plantsim/pkg/thermo"
)

// flashCommand runs an isothermal vapor-liquid flash on a feed mixture.
func (c *CLI) flashCommand() *cobra.Command {
	var (
		temperature float64
		pressure    float64
		feedSpec    string
		file        string
	)

	cmd := &cobra.Command{
		Use:   "flash",
		Short: "Run an isothermal vapor-liquid flash",
		Long: `Split a feed mixture into equilibrium vapor and liquid phases at a
fixed temperature and pressure, using Raoult's law K-values and the
Rachford-Rice equation.

The feed is a comma-separated list of component=fraction pairs; names
resolve against the component library case-insensitively and fractions
must sum to one. Antoine correlations evaluated outside their fitted
temperature range are reported as warnings but do not stop the
calculation.`,
		Example: `  plantsim flash --temperature 320 --pressure 5e5 --feed Water=0.5,Methane=0.5
  plantsim flash -T 350 -P 1e5 --feed benzene=0.4,water=0.6 --file mylib.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			if err := c.loadLibrary(file); err != nil {
				return err
			}
			feed, comps, err := c.parseFeed(feedSpec)
			if err != nil {
				return err
			}

			logger.Debugf("flashing %d components at %g K, %g Pa", len(feed), temperature, pressure)
			prog := newProgress(logger)
			res, err := thermo.IsothermalFlash(temperature, pressure, feed, comps, thermo.FlashOptions{})
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("flash solved in %d iterations", res.Iterations))

			for _, w := range res.Warnings {
				logger.Warn("Antoine correlation out of range",
					"component", w.Component,
					"temperature", fmt.Sprintf("%.2f K", w.Temperature),
					"range", fmt.Sprintf("%.2f–%.2f K", w.TMin, w.TMax))
			}

			printFlashResult(res)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&temperature, "temperature", "T", 0, "flash temperature in K (required)")
	cmd.Flags().Float64VarP(&pressure, "pressure", "P", 0, "flash pressure in Pa (required)")
	cmd.Flags().StringVar(&feedSpec, "feed", "", "feed composition as name=fraction pairs (required)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "load a TOML component library instead of the built-in data")
	_ = cmd.MarkFlagRequired("temperature")
	_ = cmd.MarkFlagRequired("pressure")
	_ = cmd.MarkFlagRequired("feed")
	return cmd
}

// parseFeed turns "Water=0.5,Methane=0.5" into a feed composition and the
// matching component map, resolving names through the library.
func (c *CLI) parseFeed(spec string) (map[string]float64, map[string]component.Component, error) {
	if spec == "" {
		return nil, nil, errors.New(errors.ErrCodeInvalidInput, "feed composition is empty")
	}

	feed := make(map[string]float64)
	comps := make(map[string]component.Component)
	for _, pair := range strings.Split(spec, ",") {
		name, frac, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return nil, nil, errors.New(errors.ErrCodeInvalidInput,
				"feed entry %q is not name=fraction", pair)
		}
		z, err := strconv.ParseFloat(frac, 64)
		if err != nil {
			return nil, nil, errors.New(errors.ErrCodeInvalidInput,
				"feed fraction %q is not a number", frac)
		}
		comp, err := c.Library.Get(strings.TrimSpace(name))
		if err != nil {
			return nil, nil, err
		}
		if _, dup := feed[comp.Name]; dup {
			return nil, nil, errors.New(errors.ErrCodeInvalidInput,
				"component %q appears twice in the feed", comp.Name)
		}
		feed[comp.Name] = z
		comps[comp.Name] = comp
	}
	return feed, comps, nil
}

// printFlashResult renders the phase split and compositions.
func printFlashResult(res thermo.FlashResult) {
	fmt.Println(StyleTitle.Render("Isothermal Flash"))
	printKeyValue("Temperature", fmt.Sprintf("%.2f K (%.2f °C)", res.Temperature, res.Temperature-273.15))
	printKeyValue("Pressure", fmt.Sprintf("%.4f bar", res.Pressure/1e5))

	switch {
	case res.VaporFraction == 0:
		printInfo("feed is entirely %s", StyleHighlight.Render("liquid"))
	case res.VaporFraction == 1:
		printInfo("feed is entirely %s", StyleHighlight.Render("vapor"))
	default:
		printKeyValue("Vapor fraction", fmt.Sprintf("%.4f", res.VaporFraction))
	}

	if !res.Converged {
		printWarning("flash did not converge after %d iterations", res.Iterations)
	} else if res.Iterations > 0 {
		printSuccess("converged in %d iterations", res.Iterations)
	}

	names := sortedKeys(res.KValues)

	fmt.Println()
	fmt.Println(StyleHighlight.Render("Component        K-value    x (liquid)  y (vapor)"))
	for _, name := range names {
		x, hasX := res.LiquidComposition[name]
		y, hasY := res.VaporComposition[name]
		line := fmt.Sprintf("%-16s %-10.4f %-11s %s",
			name, res.KValues[name], fractionOrDash(x, hasX), fractionOrDash(y, hasY))
		fmt.Println(StyleValue.Render(line))
	}
}

func fractionOrDash(v float64, ok bool) string {
	if !ok {
		return "—"
	}
	return fmt.Sprintf("%.4f", v)
}

func sortedKeys(m map[string]float64) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
