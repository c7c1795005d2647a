package stream

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/allena90/plantsim/pkg/component"
	"github.com/allena90/plantsim/pkg/errors"
	"github.com/allena90/plantsim/pkg/units"
)

// rKmol is the universal gas constant on the kmol basis, J/(kmol·K).
const rKmol = 1000 * units.GasConstant

// fractionTolerance bounds the allowed deviation of a mole fraction sum
// from unity at construction.
const fractionTolerance = 1e-6

// Phase labels for streams.
const (
	PhaseVapor   = "vapor"
	PhaseLiquid  = "liquid"
	PhaseMixed   = "mixed"
	PhaseUnknown = "unknown"
)

// Stream is a process stream: a flowing mixture at a temperature and
// pressure. Temperatures are in K, pressures in Pa, molar flow in kmol/s.
// Streams are value objects; operations like [Stream.Mix] and
// [Stream.Split] return new streams and leave the operands untouched.
type Stream struct {
	Name          string
	Temperature   float64 // K
	Pressure      float64 // Pa
	Components    map[string]component.Component
	MoleFractions map[string]float64
	MolarFlow     float64 // kmol/s
	Phase         string
}

// New validates a stream and returns it with defensive copies of its maps,
// so later mutation of the caller's maps cannot reach the stream.
func New(s Stream) (Stream, error) {
	if err := s.Validate(); err != nil {
		return Stream{}, err
	}
	s.Components = copyComponents(s.Components)
	s.MoleFractions = copyFractions(s.MoleFractions)
	if s.Phase == "" {
		s.Phase = PhaseUnknown
	}
	return s, nil
}

// Validate checks the stream's construction invariants: positive
// temperature and pressure, non-negative flow, mole fractions that sum to
// one within 1e-6, and every fraction key present in the component map.
func (s Stream) Validate() error {
	if s.Name == "" {
		return errors.New(errors.ErrCodeInvalidStream, "stream name must not be empty")
	}
	if s.Temperature <= 0 {
		return errors.New(errors.ErrCodeInvalidStream,
			"stream %q temperature must be positive kelvin, got %g", s.Name, s.Temperature)
	}
	if s.Pressure <= 0 {
		return errors.New(errors.ErrCodeInvalidStream,
			"stream %q pressure must be positive, got %g", s.Name, s.Pressure)
	}
	if s.MolarFlow < 0 {
		return errors.New(errors.ErrCodeInvalidStream,
			"stream %q molar flow must not be negative, got %g", s.Name, s.MolarFlow)
	}
	if len(s.MoleFractions) > 0 {
		total := 0.0
		for _, x := range s.MoleFractions {
			total += x
		}
		if total > 0 && math.Abs(total-1.0) > fractionTolerance {
			return errors.New(errors.ErrCodeInvalidStream,
				"stream %q mole fractions must sum to 1, got %g", s.Name, total)
		}
		for name := range s.MoleFractions {
			if _, ok := s.Components[name]; !ok {
				return errors.New(errors.ErrCodeInvalidStream,
					"stream %q has mole fraction for unknown component %q", s.Name, name)
			}
		}
	}
	return nil
}

// MolecularWeight returns the mole-fraction weighted average molecular
// weight in kg/kmol, or 0 for a stream without composition data.
func (s Stream) MolecularWeight() float64 {
	if len(s.MoleFractions) == 0 || len(s.Components) == 0 {
		return 0
	}
	mw := 0.0
	for name, c := range s.Components {
		if x, ok := s.MoleFractions[name]; ok {
			mw += x * c.MolecularWeight
		}
	}
	return mw
}

// MassFlow returns the total mass flow in kg/s.
func (s Stream) MassFlow() float64 {
	return s.MolarFlow * s.MolecularWeight()
}

// ComponentMolarFlows returns the per-component molar flows in kmol/s.
// Components without a mole fraction flow at zero.
func (s Stream) ComponentMolarFlows() map[string]float64 {
	out := make(map[string]float64, len(s.Components))
	for name := range s.Components {
		out[name] = s.MolarFlow * s.MoleFractions[name]
	}
	return out
}

// ComponentMassFlows returns the per-component mass flows in kg/s.
func (s Stream) ComponentMassFlows() map[string]float64 {
	out := make(map[string]float64, len(s.Components))
	for name, c := range s.Components {
		out[name] = s.MolarFlow * s.MoleFractions[name] * c.MolecularWeight
	}
	return out
}

// MassFractions returns the composition on a mass basis. Returns an empty
// map for a stream without composition data.
func (s Stream) MassFractions() map[string]float64 {
	out := make(map[string]float64)
	mw := s.MolecularWeight()
	if mw == 0 {
		return out
	}
	for name, c := range s.Components {
		if x, ok := s.MoleFractions[name]; ok {
			out[name] = x * c.MolecularWeight / mw
		}
	}
	return out
}

// VolumetricFlow returns the volumetric flow in m³/s for a given mixture
// density in kg/m³. Returns an INVALID_INPUT error for a non-positive
// density.
func (s Stream) VolumetricFlow(density float64) (float64, error) {
	if density <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidInput,
			"density must be positive, got %g", density)
	}
	return s.MassFlow() / density, nil
}

// IdealGasDensity returns the mixture density in kg/m³ assuming ideal gas
// behavior at the stream conditions.
func (s Stream) IdealGasDensity() float64 {
	return s.Pressure * s.MolecularWeight() / (rKmol * s.Temperature)
}

// IdealGasMolarVolume returns the molar volume in m³/kmol assuming ideal
// gas behavior.
func (s Stream) IdealGasMolarVolume() float64 {
	return rKmol * s.Temperature / s.Pressure
}

// IdealGasEnthalpy returns the specific enthalpy in J/kg relative to a
// reference temperature in K, using each component's ideal gas heat
// capacity evaluated at the average of stream and reference temperature.
// Components without heat capacity data are skipped.
func (s Stream) IdealGasEnthalpy(referenceK float64) float64 {
	tAvg := (s.Temperature + referenceK) / 2

	cpMix := 0.0
	for name, c := range s.Components {
		x, ok := s.MoleFractions[name]
		if !ok {
			continue
		}
		cp, err := c.CpIdealGasAt(tAvg)
		if err != nil {
			continue
		}
		cpMix += x * cp
	}

	mw := s.MolecularWeight()
	if mw == 0 {
		return 0
	}
	return cpMix / mw * (s.Temperature - referenceK)
}

// Mix combines two streams into one. Component flows add, the outlet
// pressure is the lower of the two inlet pressures, and the outlet
// temperature is the mass-weighted average (a constant-Cp energy balance).
// Both streams must carry composition data.
func (s Stream) Mix(other Stream) (Stream, error) {
	if len(s.Components) == 0 || len(other.Components) == 0 {
		return Stream{}, errors.New(errors.ErrCodeInvalidStream,
			"cannot mix streams without component data")
	}

	merged := copyComponents(other.Components)
	for name, c := range s.Components {
		merged[name] = c
	}

	nOut := s.MolarFlow + other.MolarFlow
	fractions := make(map[string]float64)
	if nOut > 0 {
		flows1 := s.ComponentMolarFlows()
		flows2 := other.ComponentMolarFlows()
		for name := range merged {
			if f := flows1[name] + flows2[name]; f > 0 {
				fractions[name] = f / nOut
			}
		}
	}

	m1, m2 := s.MassFlow(), other.MassFlow()
	var tOut float64
	if m1+m2 > 0 {
		tOut = (m1*s.Temperature + m2*other.Temperature) / (m1 + m2)
	} else {
		tOut = (s.Temperature + other.Temperature) / 2
	}

	return New(Stream{
		Name:          s.Name + "+" + other.Name,
		Temperature:   tOut,
		Pressure:      math.Min(s.Pressure, other.Pressure),
		Components:    merged,
		MoleFractions: fractions,
		MolarFlow:     nOut,
		Phase:         PhaseUnknown,
	})
}

// Split divides the stream into a portion carrying the given fraction of
// the molar flow and the remainder. Temperature, pressure, and composition
// are unchanged on both sides. The fraction must lie strictly between 0
// and 1.
func (s Stream) Split(fraction float64) (portion, remainder Stream, err error) {
	if fraction <= 0 || fraction >= 1 {
		return Stream{}, Stream{}, errors.New(errors.ErrCodeInvalidInput,
			"split fraction must be in (0, 1), got %g", fraction)
	}
	portion = s
	portion.Name = s.Name + "_split"
	portion.Components = copyComponents(s.Components)
	portion.MoleFractions = copyFractions(s.MoleFractions)
	portion.MolarFlow = s.MolarFlow * fraction

	remainder = s
	remainder.Name = s.Name + "_rest"
	remainder.Components = copyComponents(s.Components)
	remainder.MoleFractions = copyFractions(s.MoleFractions)
	remainder.MolarFlow = s.MolarFlow * (1 - fraction)
	return portion, remainder, nil
}

// Summary renders a multi-line report of conditions, flows, and
// composition on both molar and mass bases.
func (s Stream) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Stream: %s\n", s.Name)
	fmt.Fprintf(&b, "Temperature: %.2f K (%.2f °C)\n", s.Temperature, s.Temperature-273.15)
	fmt.Fprintf(&b, "Pressure: %.4f bar (%.4f MPa)\n", s.Pressure/1e5, s.Pressure/1e6)
	fmt.Fprintf(&b, "Phase: %s\n", s.Phase)
	fmt.Fprintf(&b, "Molar flow: %.4f kmol/s (%.2f kmol/h)\n", s.MolarFlow, s.MolarFlow*3600)
	fmt.Fprintf(&b, "Mass flow: %.4f kg/s (%.2f kg/h)\n", s.MassFlow(), s.MassFlow()*3600)
	fmt.Fprintf(&b, "Molecular weight: %.4f kg/kmol\n", s.MolecularWeight())

	names := make([]string, 0, len(s.Components))
	for name := range s.Components {
		names = append(names, name)
	}
	sort.Strings(names)

	b.WriteString("Composition (molar):\n")
	for _, name := range names {
		if x, ok := s.MoleFractions[name]; ok {
			fmt.Fprintf(&b, "  %-16s x = %.4f  (%.4f kmol/s)\n", name, x, s.MolarFlow*x)
		}
	}
	b.WriteString("Composition (mass):\n")
	massFracs := s.MassFractions()
	for _, name := range names {
		if w, ok := massFracs[name]; ok {
			fmt.Fprintf(&b, "  %-16s w = %.4f  (%.4f kg/s)\n", name, w, s.MassFlow()*w)
		}
	}
	return b.String()
}

// String renders the stream's headline conditions on one line.
func (s Stream) String() string {
	return fmt.Sprintf("Stream %q: %.1f K, %.2f bar, %.2f kmol/s",
		s.Name, s.Temperature, s.Pressure/1e5, s.MolarFlow)
}

func copyComponents(in map[string]component.Component) map[string]component.Component {
	out := make(map[string]component.Component, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyFractions(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
