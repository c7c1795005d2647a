package thermo

import (
	"math"

	"github.com/allena90/plantsim/pkg/component"
	"github.com/allena90/plantsim/pkg/errors"
)

// Phase selects which root of a cubic equation of state to report.
type Phase string

const (
	PhaseVapor  Phase = "vapor"
	PhaseLiquid Phase = "liquid"
)

// EquationOfState computes PVT behavior for a pure component from its
// critical properties.
type EquationOfState interface {
	// Name identifies the model for reports and logs.
	Name() string
	// MolarVolume returns V in m³/kmol at the given state. The phase
	// picks the largest (vapor) or smallest (liquid) physical root.
	MolarVolume(temperatureK, pressurePa float64, c component.Component, phase Phase) (float64, error)
	// CompressibilityFactor returns Z = PV/(RT).
	CompressibilityFactor(temperatureK, pressurePa float64, c component.Component, phase Phase) (float64, error)
}

// VanDerWaals is the van der Waals equation of state:
//
//	(P + a/V²)(V - b) = RT
//	a = 27R²Tc²/(64Pc), b = RTc/(8Pc)
type VanDerWaals struct{}

func (VanDerWaals) Name() string { return "van der Waals" }

// Parameters returns a in Pa·m⁶/kmol² and b in m³/kmol.
func (VanDerWaals) Parameters(c component.Component) (a, b float64, err error) {
	if c.CriticalTemperature <= 0 || c.CriticalPressure <= 0 {
		return 0, 0, errors.New(errors.ErrCodeInvalidComponent,
			"critical properties not defined for %s", c.Name)
	}
	tc, pc := c.CriticalTemperature, c.CriticalPressure
	a = 27 * RKmol * RKmol * tc * tc / (64 * pc)
	b = RKmol * tc / (8 * pc)
	return a, b, nil
}

// MolarVolume solves V³ - (b + RT/P)V² + (a/P)V - ab/P = 0 and picks the
// root for the requested phase. Returns a NO_EOS_ROOT error when no real
// root exceeds the covolume b.
func (e VanDerWaals) MolarVolume(temperatureK, pressurePa float64, c component.Component, phase Phase) (float64, error) {
	if err := checkState(temperatureK, pressurePa); err != nil {
		return 0, err
	}
	a, b, err := e.Parameters(c)
	if err != nil {
		return 0, err
	}
	c2 := -(b + RKmol*temperatureK/pressurePa)
	c1 := a / pressurePa
	c0 := -a * b / pressurePa
	return pickRoot(solveCubic(c2, c1, c0), b, phase, e.Name(), c.Name)
}

func (e VanDerWaals) CompressibilityFactor(temperatureK, pressurePa float64, c component.Component, phase Phase) (float64, error) {
	v, err := e.MolarVolume(temperatureK, pressurePa, c, phase)
	if err != nil {
		return 0, err
	}
	return pressurePa * v / (RKmol * temperatureK), nil
}

// RedlichKwong is the Redlich-Kwong equation of state:
//
//	P = RT/(V-b) - a/(√T·V(V+b))
//	a = 0.42748R²Tc^2.5/Pc, b = 0.08664RTc/Pc
type RedlichKwong struct{}

func (RedlichKwong) Name() string { return "Redlich-Kwong" }

// Parameters returns a in Pa·m⁶·K^0.5/kmol² and b in m³/kmol.
func (RedlichKwong) Parameters(c component.Component) (a, b float64, err error) {
	if c.CriticalTemperature <= 0 || c.CriticalPressure <= 0 {
		return 0, 0, errors.New(errors.ErrCodeInvalidComponent,
			"critical properties not defined for %s", c.Name)
	}
	tc, pc := c.CriticalTemperature, c.CriticalPressure
	a = 0.42748 * RKmol * RKmol * math.Pow(tc, 2.5) / pc
	b = 0.08664 * RKmol * tc / pc
	return a, b, nil
}

// MolarVolume solves the RK cubic in V and picks the root for the
// requested phase. Returns a NO_EOS_ROOT error when no real root exceeds
// the covolume b.
func (e RedlichKwong) MolarVolume(temperatureK, pressurePa float64, c component.Component, phase Phase) (float64, error) {
	if err := checkState(temperatureK, pressurePa); err != nil {
		return 0, err
	}
	a, b, err := e.Parameters(c)
	if err != nil {
		return 0, err
	}
	// A = a/(P√T); cubic V³ - (RT/P)V² - (b²RT/P + bA - A)V - Ab = 0.
	A := a / (pressurePa * math.Sqrt(temperatureK))
	c2 := -RKmol * temperatureK / pressurePa
	c1 := -(b*b*RKmol*temperatureK/pressurePa + b*A - A)
	c0 := -A * b
	return pickRoot(solveCubic(c2, c1, c0), b, phase, e.Name(), c.Name)
}

func (e RedlichKwong) CompressibilityFactor(temperatureK, pressurePa float64, c component.Component, phase Phase) (float64, error) {
	v, err := e.MolarVolume(temperatureK, pressurePa, c, phase)
	if err != nil {
		return 0, err
	}
	return pressurePa * v / (RKmol * temperatureK), nil
}

// pickRoot filters roots to the physical region V > b and selects the
// largest for vapor, smallest for liquid.
func pickRoot(roots []float64, b float64, phase Phase, model, comp string) (float64, error) {
	best := math.NaN()
	for _, r := range roots {
		if r <= b {
			continue
		}
		if math.IsNaN(best) {
			best = r
			continue
		}
		if phase == PhaseLiquid {
			if r < best {
				best = r
			}
		} else if r > best {
			best = r
		}
	}
	if math.IsNaN(best) {
		return 0, errors.New(errors.ErrCodeNoRoot,
			"%s equation of state has no physical root for %s", model, comp)
	}
	return best, nil
}
