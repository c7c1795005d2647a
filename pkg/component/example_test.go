package component_test

import (
	"fmt"

	"github.com/allena90/plantsim/pkg/component"
)

func ExampleLibrary_Get() {
	lib := component.DefaultLibrary()

	// Names and formulas resolve case-insensitively.
	water, _ := lib.Get("H2O")
	fmt.Println(water)
	fmt.Printf("MW = %.3f kg/kmol\n", water.MolecularWeight)
	// Output:
	// Water (H2O)
	// MW = 18.015 kg/kmol
}

func ExampleComponent_VaporPressure() {
	water := component.Water()

	psat, _ := water.VaporPressure(373.15)
	fmt.Printf("Psat(373.15 K) = %.0f kPa\n", psat/1e3)
	// Output:
	// Psat(373.15 K) = 101 kPa
}
