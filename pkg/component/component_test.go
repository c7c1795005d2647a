package component

import (
	"math"
	"testing"

	"github.com/allena90/plantsim/pkg/errors"
	"github.com/allena90/plantsim/pkg/units"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		comp Component
	}{
		{"empty name", Component{Formula: "X2", MolecularWeight: 10}},
		{"empty formula", Component{Name: "X", MolecularWeight: 10}},
		{"zero molecular weight", Component{Name: "X", Formula: "X2"}},
		{"negative molecular weight", Component{Name: "X", Formula: "X2", MolecularWeight: -1}},
		{"negative critical pressure", Component{Name: "X", Formula: "X2", MolecularWeight: 10, CriticalPressure: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.comp); !errors.Is(err, errors.ErrCodeInvalidComponent) {
				t.Errorf("got %v, want INVALID_COMPONENT", err)
			}
		})
	}

	c, err := New(Component{Name: "Argon", Formula: "Ar", MolecularWeight: 39.948})
	if err != nil {
		t.Fatalf("valid component rejected: %v", err)
	}
	if c.PhaseAtSTP != "unknown" {
		t.Errorf("PhaseAtSTP = %q, want default %q", c.PhaseAtSTP, "unknown")
	}
}

func TestVaporPressureWater(t *testing.T) {
	water := Water()

	// At the normal boiling point the Antoine fit should reproduce
	// atmospheric pressure to within a few percent.
	p, err := water.VaporPressure(373.15)
	if err != nil {
		t.Fatalf("VaporPressure: %v", err)
	}
	if math.Abs(p-101325)/101325 > 0.05 {
		t.Errorf("Psat(373.15 K) = %.0f Pa, want ~101325", p)
	}

	// Vapor pressure is monotonically increasing in temperature.
	p25, err := water.VaporPressure(298.15)
	if err != nil {
		t.Fatalf("VaporPressure: %v", err)
	}
	if p25 >= p {
		t.Errorf("Psat(298.15) = %v not below Psat(373.15) = %v", p25, p)
	}
	// Roughly 3.2 kPa at 25°C.
	if p25 < 2000 || p25 > 5000 {
		t.Errorf("Psat(298.15 K) = %.0f Pa, want ~3200", p25)
	}
}

func TestVaporPressureMissingCorrelation(t *testing.T) {
	c := Component{Name: "Mystery", Formula: "Xx", MolecularWeight: 1}
	if _, err := c.VaporPressure(300); !errors.Is(err, errors.ErrCodeMissingCorrelation) {
		t.Errorf("got %v, want MISSING_CORRELATION", err)
	}
	if _, err := c.CpIdealGasAt(300); !errors.Is(err, errors.ErrCodeMissingCorrelation) {
		t.Errorf("got %v, want MISSING_CORRELATION", err)
	}
}

func TestAntoineRangeWarning(t *testing.T) {
	water := Water()

	if _, ok := water.AntoineRangeWarning(300); ok {
		t.Error("300 K is in range for water, no warning expected")
	}

	w, ok := water.AntoineRangeWarning(250)
	if !ok || !w.Below {
		t.Fatalf("250 K: got (%+v, %v), want below-range warning", w, ok)
	}
	if w.Component != "Water" || w.TMin != 273.15 {
		t.Errorf("warning = %+v", w)
	}

	w, ok = water.AntoineRangeWarning(400)
	if !ok || w.Below {
		t.Fatalf("400 K: got (%+v, %v), want above-range warning", w, ok)
	}

	// The evaluation itself still succeeds out of range.
	if _, err := water.VaporPressure(400); err != nil {
		t.Errorf("out-of-range VaporPressure: %v", err)
	}

	// No Antoine data means no warning either.
	bare := Component{Name: "X", Formula: "X2", MolecularWeight: 1}
	if _, ok := bare.AntoineRangeWarning(300); ok {
		t.Error("component without Antoine data should not warn")
	}
}

func TestVaporPressureQ(t *testing.T) {
	water := Water()

	p, err := water.VaporPressureQ(units.Q(100, units.Celsius))
	if err != nil {
		t.Fatalf("VaporPressureQ: %v", err)
	}
	if p.Unit != units.Pascal {
		t.Errorf("unit = %v, want Pa", p.Unit)
	}
	ref, err := water.VaporPressure(373.15)
	if err != nil {
		t.Fatalf("VaporPressure: %v", err)
	}
	if math.Abs(p.Value-ref) > 1e-6 {
		t.Errorf("VaporPressureQ = %v, want %v", p.Value, ref)
	}

	if _, err := water.VaporPressureQ(units.Q(1, units.Meter)); !errors.Is(err, errors.ErrCodeDimensionMismatch) {
		t.Errorf("got %v, want DIMENSION_MISMATCH", err)
	}
}

func TestCpIdealGas(t *testing.T) {
	water := Water()
	cp, err := water.CpIdealGasAt(373.15)
	if err != nil {
		t.Fatalf("CpIdealGasAt: %v", err)
	}
	// Water vapor Cp is about 34 kJ/(kmol·K) near 100°C.
	if cp < 30000 || cp > 40000 {
		t.Errorf("Cp(373.15 K) = %.0f J/(kmol·K), want ~34000", cp)
	}

	methane := Methane()
	cp, err = methane.CpIdealGasAt(300)
	if err != nil {
		t.Fatalf("CpIdealGasAt: %v", err)
	}
	want := 19252.0 + 52.1*300
	if math.Abs(cp-want) > 1e-9 {
		t.Errorf("Cp = %v, want %v", cp, want)
	}
}

func TestReducedProperties(t *testing.T) {
	methane := Methane()

	tr, err := methane.ReducedTemperature(190.6)
	if err != nil {
		t.Fatalf("ReducedTemperature: %v", err)
	}
	if math.Abs(tr-1) > 1e-12 {
		t.Errorf("Tr at Tc = %v, want 1", tr)
	}

	pr, err := methane.ReducedPressure(4.599e6 / 2)
	if err != nil {
		t.Fatalf("ReducedPressure: %v", err)
	}
	if math.Abs(pr-0.5) > 1e-12 {
		t.Errorf("Pr = %v, want 0.5", pr)
	}

	bare := Component{Name: "X", Formula: "X2", MolecularWeight: 1}
	if _, err := bare.ReducedTemperature(300); !errors.Is(err, errors.ErrCodeInvalidComponent) {
		t.Errorf("got %v, want INVALID_COMPONENT", err)
	}
	if _, err := bare.ReducedPressure(1e5); !errors.Is(err, errors.ErrCodeInvalidComponent) {
		t.Errorf("got %v, want INVALID_COMPONENT", err)
	}
}

func TestComponentString(t *testing.T) {
	if got := Water().String(); got != "Water (H2O)" {
		t.Errorf("String() = %q", got)
	}
}
