package thermo_test

import (
	"fmt"

	"github.com/allena90/plantsim/pkg/component"
	"github.com/allena90/plantsim/pkg/thermo"
)

func ExampleIdealGas() {
	var ig thermo.IdealGas

	v, _ := ig.MolarVolume(273.15, 101325)
	fmt.Printf("V = %.2f m³/kmol\n", v)
	// Output:
	// V = 22.41 m³/kmol
}

func ExampleIsothermalFlash() {
	comps := map[string]component.Component{
		"Water":   component.Water(),
		"Methane": component.Methane(),
	}
	feed := map[string]float64{"Water": 0.5, "Methane": 0.5}

	res, err := thermo.IsothermalFlash(320, 5e5, feed, comps, thermo.FlashOptions{})
	if err != nil {
		fmt.Println("flash failed:", err)
		return
	}

	fmt.Println("converged:", res.Converged)
	fmt.Println("two-phase:", res.VaporFraction > 0 && res.VaporFraction < 1)
	fmt.Println("methane enriched in vapor:",
		res.VaporComposition["Methane"] > feed["Methane"])
	// Output:
	// converged: true
	// two-phase: true
	// methane enriched in vapor: true
}

func ExampleVanDerWaals() {
	var eos thermo.VanDerWaals
	methane := component.Methane()

	z, _ := eos.CompressibilityFactor(300, 1e5, methane, thermo.PhaseVapor)
	fmt.Println("near ideal:", z > 0.99 && z < 1.0)
	// Output:
	// near ideal: true
}
