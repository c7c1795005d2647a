package component

import (
	"fmt"
	"math"

	"github.com/allena90/plantsim/pkg/errors"
	"github.com/allena90/plantsim/pkg/units"
)

// AntoineCoeffs holds Antoine vapor pressure correlation coefficients for
// log10(P) = A - B/(T+C) with P in Pa and T in K. TMin and TMax bound the
// temperature range the coefficients were fitted over; zero means
// unbounded on that side.
type AntoineCoeffs struct {
	A, B, C    float64
	TMin, TMax float64 // K
}

// CpPolynomial holds ideal gas heat capacity coefficients for
// Cp = A + B*T + C*T² + D*T³ with Cp in J/(kmol·K) and T in K.
type CpPolynomial struct {
	A, B, C, D float64
}

// Component is a chemical compound with the thermodynamic and physical
// properties needed for process calculations. Components are immutable
// after construction through [New]; optional correlations are nil when
// the data is unavailable.
//
// All property fields use SI-coherent engineering units: molecular weight
// in kg/kmol, temperatures in K, pressures in Pa, molar volumes in
// m³/kmol, molar energies in J/kmol.
type Component struct {
	Name      string
	Formula   string
	CASNumber string

	MolecularWeight float64 // kg/kmol

	CriticalTemperature float64 // K
	CriticalPressure    float64 // Pa
	CriticalVolume      float64 // m³/kmol
	AcentricFactor      float64

	NormalBoilingPoint float64 // K, 0 when unknown
	NormalMeltingPoint float64 // K, 0 when unknown

	Antoine    *AntoineCoeffs
	CpIdealGas *CpPolynomial

	HeatOfVaporization float64 // J/kmol at the normal boiling point, 0 when unknown

	PhaseAtSTP  string // "gas", "liquid", "solid", or "unknown"
	Description string
}

// New validates a component and returns it. Name, formula, and a positive
// molecular weight are required; everything else is optional data that the
// property methods check on use.
func New(c Component) (Component, error) {
	if err := c.Validate(); err != nil {
		return Component{}, err
	}
	if c.PhaseAtSTP == "" {
		c.PhaseAtSTP = "unknown"
	}
	return c, nil
}

// Validate checks the construction invariants.
func (c Component) Validate() error {
	if c.Name == "" {
		return errors.New(errors.ErrCodeInvalidComponent, "component name must not be empty")
	}
	if c.Formula == "" {
		return errors.New(errors.ErrCodeInvalidComponent, "component %q formula must not be empty", c.Name)
	}
	if c.MolecularWeight <= 0 {
		return errors.New(errors.ErrCodeInvalidComponent,
			"component %q molecular weight must be positive, got %g", c.Name, c.MolecularWeight)
	}
	if c.CriticalTemperature < 0 || c.CriticalPressure < 0 {
		return errors.New(errors.ErrCodeInvalidComponent,
			"component %q critical properties must not be negative", c.Name)
	}
	return nil
}

// RangeWarning reports that a correlation was evaluated outside its fitted
// temperature range. The result is still returned; the warning is a
// diagnostic for the caller to log or surface.
type RangeWarning struct {
	Component   string
	Temperature float64 // K
	TMin, TMax  float64 // K
	Below       bool    // true when below TMin, false when above TMax
}

func (w RangeWarning) String() string {
	if w.Below {
		return fmt.Sprintf("%s: temperature %.2f K below Antoine range minimum %.2f K",
			w.Component, w.Temperature, w.TMin)
	}
	return fmt.Sprintf("%s: temperature %.2f K above Antoine range maximum %.2f K",
		w.Component, w.Temperature, w.TMax)
}

// VaporPressure evaluates the Antoine correlation at a temperature in K
// and returns the saturation pressure in Pa. Returns a MISSING_CORRELATION
// error when no Antoine coefficients are available. Out-of-range
// temperatures still evaluate; use [Component.AntoineRangeWarning] to
// detect them.
func (c Component) VaporPressure(temperatureK float64) (float64, error) {
	if c.Antoine == nil {
		return 0, errors.New(errors.ErrCodeMissingCorrelation,
			"no Antoine coefficients for %s", c.Name)
	}
	logP := c.Antoine.A - c.Antoine.B/(temperatureK+c.Antoine.C)
	return math.Pow(10, logP), nil
}

// AntoineRangeWarning reports whether a temperature in K falls outside the
// Antoine correlation's fitted range. Returns ok=false when the component
// has no Antoine data or the temperature is in range.
func (c Component) AntoineRangeWarning(temperatureK float64) (RangeWarning, bool) {
	if c.Antoine == nil {
		return RangeWarning{}, false
	}
	w := RangeWarning{
		Component:   c.Name,
		Temperature: temperatureK,
		TMin:        c.Antoine.TMin,
		TMax:        c.Antoine.TMax,
	}
	if c.Antoine.TMin > 0 && temperatureK < c.Antoine.TMin {
		w.Below = true
		return w, true
	}
	if c.Antoine.TMax > 0 && temperatureK > c.Antoine.TMax {
		return w, true
	}
	return RangeWarning{}, false
}

// VaporPressureQ is the quantity-aware form of [Component.VaporPressure]:
// the temperature converts to K through its unit and the result carries
// the pascal unit.
func (c Component) VaporPressureQ(temperature units.Quantity) (units.Quantity, error) {
	tK, err := temperature.Convert(units.Kelvin)
	if err != nil {
		return units.Quantity{}, err
	}
	p, err := c.VaporPressure(tK.Value)
	if err != nil {
		return units.Quantity{}, err
	}
	return units.Q(p, units.Pascal), nil
}

// CpIdealGasAt evaluates the ideal gas heat capacity polynomial at a
// temperature in K and returns Cp in J/(kmol·K). Returns a
// MISSING_CORRELATION error when no coefficients are available.
func (c Component) CpIdealGasAt(temperatureK float64) (float64, error) {
	if c.CpIdealGas == nil {
		return 0, errors.New(errors.ErrCodeMissingCorrelation,
			"no ideal gas heat capacity coefficients for %s", c.Name)
	}
	p := c.CpIdealGas
	return p.A + p.B*temperatureK + p.C*temperatureK*temperatureK +
		p.D*temperatureK*temperatureK*temperatureK, nil
}

// ReducedTemperature returns T/Tc for a temperature in K. Returns an
// INVALID_COMPONENT error when the critical temperature is unset.
func (c Component) ReducedTemperature(temperatureK float64) (float64, error) {
	if c.CriticalTemperature <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidComponent,
			"critical temperature not defined for %s", c.Name)
	}
	return temperatureK / c.CriticalTemperature, nil
}

// ReducedPressure returns P/Pc for a pressure in Pa. Returns an
// INVALID_COMPONENT error when the critical pressure is unset.
func (c Component) ReducedPressure(pressurePa float64) (float64, error) {
	if c.CriticalPressure <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidComponent,
			"critical pressure not defined for %s", c.Name)
	}
	return pressurePa / c.CriticalPressure, nil
}

// String renders the component as "Name (Formula)".
func (c Component) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.Formula)
}
