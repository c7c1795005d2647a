package stream_test

import (
	"fmt"

	"github.com/allena90/plantsim/pkg/component"
	"github.com/allena90/plantsim/pkg/stream"
)

func ExampleStream_Split() {
	s, _ := stream.New(stream.Stream{
		Name:        "feed",
		Temperature: 320,
		Pressure:    5e5,
		Components: map[string]component.Component{
			"Water":   component.Water(),
			"Methane": component.Methane(),
		},
		MoleFractions: map[string]float64{"Water": 0.5, "Methane": 0.5},
		MolarFlow:     1.0,
	})

	fmt.Printf("MW = %.3f kg/kmol\n", s.MolecularWeight())

	portion, remainder, _ := s.Split(0.3)
	fmt.Printf("portion %.2f kmol/s, remainder %.2f kmol/s\n",
		portion.MolarFlow, remainder.MolarFlow)
	// Output:
	// MW = 17.029 kg/kmol
	// portion 0.30 kmol/s, remainder 0.70 kmol/s
}
