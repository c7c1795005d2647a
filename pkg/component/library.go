package component

import (
	"sort"
	"strings"

	"github.com/allena90/plantsim/pkg/errors"
)

// Library is a named collection of components with case-insensitive
// lookup by name or formula. Libraries are explicit dependencies:
// construct one with [NewLibrary] or [DefaultLibrary] and pass it to
// whatever needs component data.
type Library struct {
	byName    map[string]Component
	byFormula map[string]Component
}

// NewLibrary builds an empty library.
func NewLibrary() *Library {
	return &Library{
		byName:    make(map[string]Component),
		byFormula: make(map[string]Component),
	}
}

// DefaultLibrary builds a library seeded with the built-in component data.
func DefaultLibrary() *Library {
	lib := NewLibrary()
	for _, c := range builtins {
		// Built-in data validates by construction.
		_ = lib.Add(c)
	}
	return lib
}

// Add registers a component. The component must validate and its name
// must not collide with an already registered one.
func (l *Library) Add(c Component) error {
	if err := c.Validate(); err != nil {
		return err
	}
	name := strings.ToLower(c.Name)
	if _, ok := l.byName[name]; ok {
		return errors.New(errors.ErrCodeInvalidLibrary, "component %q is already registered", c.Name)
	}
	l.byName[name] = c
	// First registration wins for a shared formula (e.g. isomers).
	formula := strings.ToLower(c.Formula)
	if _, ok := l.byFormula[formula]; !ok {
		l.byFormula[formula] = c
	}
	return nil
}

// Get resolves an identifier to a component, matching the name first and
// the formula second, both case-insensitively. Returns an
// INVALID_COMPONENT error when nothing matches.
func (l *Library) Get(identifier string) (Component, error) {
	key := strings.ToLower(identifier)
	if c, ok := l.byName[key]; ok {
		return c, nil
	}
	if c, ok := l.byFormula[key]; ok {
		return c, nil
	}
	return Component{}, errors.New(errors.ErrCodeInvalidComponent, "unknown component %q", identifier)
}

// Contains reports whether an identifier resolves to a component.
func (l *Library) Contains(identifier string) bool {
	_, err := l.Get(identifier)
	return err == nil
}

// Names returns the registered component names sorted alphabetically.
func (l *Library) Names() []string {
	out := make([]string, 0, len(l.byName))
	for _, c := range l.byName {
		out = append(out, c.Name)
	}
	sort.Strings(out)
	return out
}

// All returns every registered component sorted by name.
func (l *Library) All() []Component {
	out := make([]Component, 0, len(l.byName))
	for _, c := range l.byName {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of registered components.
func (l *Library) Len() int {
	return len(l.byName)
}

// Built-in component data. Critical properties and acentric factors from
// standard correlations literature; Antoine coefficients fitted for P in
// Pa and T in K; Cp polynomials in J/(kmol·K).
var builtins = []Component{
	{
		Name:                "Water",
		Formula:             "H2O",
		CASNumber:           "7732-18-5",
		MolecularWeight:     18.015,
		CriticalTemperature: 647.1,
		CriticalPressure:    22.064e6,
		CriticalVolume:      0.0559,
		AcentricFactor:      0.345,
		NormalBoilingPoint:  373.15,
		NormalMeltingPoint:  273.15,
		CpIdealGas:          &CpPolynomial{A: 33363.0, B: 26.79, C: 0.008687, D: -8.8e-6},
		Antoine:             &AntoineCoeffs{A: 10.196, B: 1730.63, C: -39.724, TMin: 273.15, TMax: 373.15},
		HeatOfVaporization:  40660e3,
		PhaseAtSTP:          "liquid",
		Description:         "Water (steam, H2O)",
	},
	{
		Name:                "Methane",
		Formula:             "CH4",
		CASNumber:           "74-82-8",
		MolecularWeight:     16.043,
		CriticalTemperature: 190.6,
		CriticalPressure:    4.599e6,
		CriticalVolume:      0.0986,
		AcentricFactor:      0.011,
		NormalBoilingPoint:  111.65,
		NormalMeltingPoint:  90.7,
		CpIdealGas:          &CpPolynomial{A: 19252.0, B: 52.1},
		Antoine:             &AntoineCoeffs{A: 8.968, B: 897.84, C: -7.16, TMin: 91.0, TMax: 190.0},
		HeatOfVaporization:  8180e3,
		PhaseAtSTP:          "gas",
		Description:         "Methane (natural gas main component)",
	},
	{
		Name:                "Ethane",
		Formula:             "C2H6",
		CASNumber:           "74-84-0",
		MolecularWeight:     30.069,
		CriticalTemperature: 305.32,
		CriticalPressure:    4.872e6,
		CriticalVolume:      0.1455,
		AcentricFactor:      0.099,
		NormalBoilingPoint:  184.55,
		NormalMeltingPoint:  90.35,
		CpIdealGas:          &CpPolynomial{A: 6900.0, B: 172.7, C: -0.06406, D: 7.285e-6},
		Antoine:             &AntoineCoeffs{A: 8.93835, B: 659.739, C: -16.719, TMin: 135.7, TMax: 199.9},
		HeatOfVaporization:  14690e3,
		PhaseAtSTP:          "gas",
		Description:         "Ethane",
	},
	{
		Name:                "Propane",
		Formula:             "C3H8",
		CASNumber:           "74-98-6",
		MolecularWeight:     44.096,
		CriticalTemperature: 369.83,
		CriticalPressure:    4.248e6,
		CriticalVolume:      0.2,
		AcentricFactor:      0.152,
		NormalBoilingPoint:  231.05,
		NormalMeltingPoint:  85.5,
		CpIdealGas:          &CpPolynomial{A: -4040.0, B: 304.8, C: -0.1572, D: 3.174e-5},
		Antoine:             &AntoineCoeffs{A: 8.98292, B: 819.296, C: -24.417, TMin: 164.0, TMax: 249.0},
		HeatOfVaporization:  19040e3,
		PhaseAtSTP:          "gas",
		Description:         "Propane (LPG component)",
	},
	{
		Name:                "n-Butane",
		Formula:             "C4H10",
		CASNumber:           "106-97-8",
		MolecularWeight:     58.122,
		CriticalTemperature: 425.12,
		CriticalPressure:    3.796e6,
		CriticalVolume:      0.255,
		AcentricFactor:      0.2,
		NormalBoilingPoint:  272.66,
		NormalMeltingPoint:  134.9,
		CpIdealGas:          &CpPolynomial{A: 9487.0, B: 331.3, C: -0.1108, D: -2.822e-6},
		Antoine:             &AntoineCoeffs{A: 8.85002, B: 909.65, C: -36.146, TMin: 195.1, TMax: 272.8},
		HeatOfVaporization:  22440e3,
		PhaseAtSTP:          "gas",
		Description:         "n-Butane (LPG component)",
	},
	{
		Name:                "Nitrogen",
		Formula:             "N2",
		CASNumber:           "7727-37-9",
		MolecularWeight:     28.014,
		CriticalTemperature: 126.2,
		CriticalPressure:    3.4e6,
		CriticalVolume:      0.0901,
		AcentricFactor:      0.038,
		NormalBoilingPoint:  77.36,
		NormalMeltingPoint:  63.15,
		CpIdealGas:          &CpPolynomial{A: 28900.0, B: -1.571, C: 0.008081, D: -2.873e-6},
		Antoine:             &AntoineCoeffs{A: 8.7362, B: 264.651, C: -6.788, TMin: 63.2, TMax: 126.0},
		HeatOfVaporization:  5570e3,
		PhaseAtSTP:          "gas",
		Description:         "Nitrogen (inert diluent)",
	},
	{
		Name:                "Carbon Dioxide",
		Formula:             "CO2",
		CASNumber:           "124-38-9",
		MolecularWeight:     44.009,
		CriticalTemperature: 304.13,
		CriticalPressure:    7.377e6,
		CriticalVolume:      0.094,
		AcentricFactor:      0.224,
		NormalBoilingPoint:  194.69,
		NormalMeltingPoint:  216.59,
		CpIdealGas:          &CpPolynomial{A: 22260.0, B: 59.81, C: -0.03501, D: 7.469e-6},
		Antoine:             &AntoineCoeffs{A: 11.81228, B: 1301.679, C: -3.494, TMin: 154.3, TMax: 195.9},
		HeatOfVaporization:  16700e3,
		PhaseAtSTP:          "gas",
		Description:         "Carbon dioxide",
	},
	{
		Name:                "Benzene",
		Formula:             "C6H6",
		CASNumber:           "71-43-2",
		MolecularWeight:     78.114,
		CriticalTemperature: 562.05,
		CriticalPressure:    4.895e6,
		CriticalVolume:      0.256,
		AcentricFactor:      0.21,
		NormalBoilingPoint:  353.24,
		NormalMeltingPoint:  278.68,
		CpIdealGas:          &CpPolynomial{A: -36220.0, B: 485.4, C: -0.3157, D: 7.762e-5},
		Antoine:             &AntoineCoeffs{A: 9.72583, B: 1660.652, C: -1.461, TMin: 287.7, TMax: 354.1},
		HeatOfVaporization:  30720e3,
		PhaseAtSTP:          "liquid",
		Description:         "Benzene (aromatic solvent)",
	},
}

// Water returns the built-in water component.
func Water() Component { return builtins[0] }

// Methane returns the built-in methane component.
func Methane() Component { return builtins[1] }
