package stream

import (
	"math"
	"strings"
	"testing"

	"github.com/allena90/plantsim/pkg/component"
	"github.com/allena90/plantsim/pkg/errors"
)

func testStream(t *testing.T) Stream {
	t.Helper()
	s, err := New(Stream{
		Name:        "feed",
		Temperature: 320,
		Pressure:    5e5,
		Components: map[string]component.Component{
			"Water":   component.Water(),
			"Methane": component.Methane(),
		},
		MoleFractions: map[string]float64{"Water": 0.5, "Methane": 0.5},
		MolarFlow:     1.0,
		Phase:         PhaseMixed,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNewValidation(t *testing.T) {
	water := component.Water()
	comps := map[string]component.Component{"Water": water}

	tests := []struct {
		name   string
		stream Stream
	}{
		{"empty name", Stream{Temperature: 300, Pressure: 1e5}},
		{"zero temperature", Stream{Name: "s", Pressure: 1e5}},
		{"negative pressure", Stream{Name: "s", Temperature: 300, Pressure: -1}},
		{"negative flow", Stream{Name: "s", Temperature: 300, Pressure: 1e5, MolarFlow: -1}},
		{"fractions not normalized", Stream{
			Name: "s", Temperature: 300, Pressure: 1e5,
			Components:    comps,
			MoleFractions: map[string]float64{"Water": 0.7},
		}},
		{"fraction for unknown component", Stream{
			Name: "s", Temperature: 300, Pressure: 1e5,
			MoleFractions: map[string]float64{"Xenon": 1.0},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.stream); !errors.Is(err, errors.ErrCodeInvalidStream) {
				t.Errorf("got %v, want INVALID_STREAM", err)
			}
		})
	}
}

func TestNewCopiesMaps(t *testing.T) {
	fractions := map[string]float64{"Water": 1.0}
	s, err := New(Stream{
		Name: "s", Temperature: 300, Pressure: 1e5,
		Components:    map[string]component.Component{"Water": component.Water()},
		MoleFractions: fractions,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fractions["Water"] = 0.1
	if s.MoleFractions["Water"] != 1.0 {
		t.Error("stream shares caller's mole fraction map")
	}
}

func TestMolecularWeightAndMassFlow(t *testing.T) {
	s := testStream(t)

	wantMW := 0.5*18.015 + 0.5*16.043
	if got := s.MolecularWeight(); math.Abs(got-wantMW) > 1e-9 {
		t.Errorf("MolecularWeight = %v, want %v", got, wantMW)
	}
	if got := s.MassFlow(); math.Abs(got-wantMW) > 1e-9 {
		t.Errorf("MassFlow = %v, want %v at 1 kmol/s", got, wantMW)
	}
}

func TestComponentFlows(t *testing.T) {
	s := testStream(t)

	molar := s.ComponentMolarFlows()
	if math.Abs(molar["Water"]-0.5) > 1e-12 || math.Abs(molar["Methane"]-0.5) > 1e-12 {
		t.Errorf("ComponentMolarFlows = %v", molar)
	}

	mass := s.ComponentMassFlows()
	if math.Abs(mass["Water"]-0.5*18.015) > 1e-9 {
		t.Errorf("water mass flow = %v", mass["Water"])
	}

	// Mass fractions sum to one and are weighted toward the heavier
	// component.
	fracs := s.MassFractions()
	total := fracs["Water"] + fracs["Methane"]
	if math.Abs(total-1) > 1e-12 {
		t.Errorf("mass fractions sum to %v", total)
	}
	if fracs["Water"] <= fracs["Methane"] {
		t.Errorf("water (heavier) should dominate by mass: %v", fracs)
	}
}

func TestIdealGasProperties(t *testing.T) {
	s := testStream(t)

	vm := s.IdealGasMolarVolume()
	want := 8314.462618 * 320 / 5e5
	if math.Abs(vm-want) > 1e-6 {
		t.Errorf("IdealGasMolarVolume = %v, want %v", vm, want)
	}

	rho := s.IdealGasDensity()
	// rho = P*MW/(R*T) must be consistent with MW/Vm.
	if math.Abs(rho-s.MolecularWeight()/vm) > 1e-9 {
		t.Errorf("IdealGasDensity = %v, want %v", rho, s.MolecularWeight()/vm)
	}

	// Enthalpy above the reference temperature is positive and vanishes
	// at the reference.
	if h := s.IdealGasEnthalpy(298.15); h <= 0 {
		t.Errorf("IdealGasEnthalpy(298.15) = %v, want > 0", h)
	}
	if h := s.IdealGasEnthalpy(s.Temperature); h != 0 {
		t.Errorf("IdealGasEnthalpy at own T = %v, want 0", h)
	}
}

func TestVolumetricFlow(t *testing.T) {
	s := testStream(t)
	q, err := s.VolumetricFlow(1000)
	if err != nil {
		t.Fatalf("VolumetricFlow: %v", err)
	}
	if math.Abs(q-s.MassFlow()/1000) > 1e-12 {
		t.Errorf("VolumetricFlow = %v", q)
	}
	if _, err := s.VolumetricFlow(0); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("got %v, want INVALID_INPUT", err)
	}
}

func TestMix(t *testing.T) {
	water := component.Water()
	methane := component.Methane()

	hot, err := New(Stream{
		Name: "hot", Temperature: 400, Pressure: 3e5,
		Components:    map[string]component.Component{"Water": water},
		MoleFractions: map[string]float64{"Water": 1.0},
		MolarFlow:     1.0,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cold, err := New(Stream{
		Name: "cold", Temperature: 300, Pressure: 2e5,
		Components:    map[string]component.Component{"Methane": methane},
		MoleFractions: map[string]float64{"Methane": 1.0},
		MolarFlow:     1.0,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	mixed, err := hot.Mix(cold)
	if err != nil {
		t.Fatalf("Mix: %v", err)
	}

	if mixed.MolarFlow != 2.0 {
		t.Errorf("MolarFlow = %v, want 2", mixed.MolarFlow)
	}
	if mixed.Pressure != 2e5 {
		t.Errorf("Pressure = %v, want min inlet 2e5", mixed.Pressure)
	}
	if math.Abs(mixed.MoleFractions["Water"]-0.5) > 1e-12 {
		t.Errorf("Water fraction = %v, want 0.5", mixed.MoleFractions["Water"])
	}

	// Mass-weighted outlet temperature lands between the inlets, closer
	// to the heavier (water) stream.
	wantT := (1*18.015*400 + 1*16.043*300) / (18.015 + 16.043)
	if math.Abs(mixed.Temperature-wantT) > 1e-9 {
		t.Errorf("Temperature = %v, want %v", mixed.Temperature, wantT)
	}

	// Mass is conserved.
	if math.Abs(mixed.MassFlow()-(hot.MassFlow()+cold.MassFlow())) > 1e-9 {
		t.Errorf("mass balance violated: %v vs %v", mixed.MassFlow(), hot.MassFlow()+cold.MassFlow())
	}

	// Operands are untouched.
	if hot.MolarFlow != 1.0 || cold.Name != "cold" {
		t.Error("Mix mutated an operand")
	}

	bare := Stream{Name: "bare", Temperature: 300, Pressure: 1e5}
	if _, err := hot.Mix(bare); !errors.Is(err, errors.ErrCodeInvalidStream) {
		t.Errorf("got %v, want INVALID_STREAM", err)
	}
}

func TestSplit(t *testing.T) {
	s := testStream(t)

	portion, remainder, err := s.Split(0.3)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if math.Abs(portion.MolarFlow-0.3) > 1e-12 {
		t.Errorf("portion flow = %v, want 0.3", portion.MolarFlow)
	}
	if math.Abs(remainder.MolarFlow-0.7) > 1e-12 {
		t.Errorf("remainder flow = %v, want 0.7", remainder.MolarFlow)
	}
	// Composition and conditions carry over unchanged.
	if portion.MoleFractions["Water"] != 0.5 || portion.Temperature != 320 {
		t.Errorf("portion = %+v", portion)
	}
	if s.MolarFlow != 1.0 {
		t.Error("Split mutated the source stream")
	}

	for _, f := range []float64{0, 1, -0.5, 1.5} {
		if _, _, err := s.Split(f); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("Split(%v): got %v, want INVALID_INPUT", f, err)
		}
	}
}

func TestSummary(t *testing.T) {
	s := testStream(t)
	got := s.Summary()
	for _, want := range []string{"Stream: feed", "320.00 K", "5.0000 bar", "Water", "Methane", "Composition (molar)", "Composition (mass)"} {
		if !strings.Contains(got, want) {
			t.Errorf("Summary missing %q:\n%s", want, got)
		}
	}
}
