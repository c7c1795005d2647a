package thermo

import (
	"github.com/allena90/plantsim/pkg/component"
	"github.com/allena90/plantsim/pkg/errors"
)

// KValues computes Raoult's law distribution coefficients K_i = Psat_i/P
// for every component in the map. Components without vapor pressure data
// get K = 1 (no separation). Evaluations outside a component's Antoine
// range still count; they are reported in the returned warnings for the
// caller to log or surface.
func KValues(temperatureK, pressurePa float64, comps map[string]component.Component) (map[string]float64, []component.RangeWarning, error) {
	if err := checkState(temperatureK, pressurePa); err != nil {
		return nil, nil, err
	}
	if len(comps) == 0 {
		return nil, nil, errors.New(errors.ErrCodeInvalidInput, "no components given")
	}

	k := make(map[string]float64, len(comps))
	var warnings []component.RangeWarning
	for name, c := range comps {
		psat, err := c.VaporPressure(temperatureK)
		if err != nil {
			k[name] = 1.0
			continue
		}
		if w, ok := c.AntoineRangeWarning(temperatureK); ok {
			warnings = append(warnings, w)
		}
		k[name] = psat / pressurePa
	}
	return k, warnings, nil
}

// BubblePointPressure returns the pressure at which the first vapor
// bubble forms from a liquid of the given composition:
// P_bubble = Σ x_i·Psat_i. Components without vapor pressure data are
// skipped.
func BubblePointPressure(temperatureK float64, liquidFractions map[string]float64, comps map[string]component.Component) (float64, error) {
	if temperatureK <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidInput,
			"temperature must be positive kelvin, got %g", temperatureK)
	}
	p := 0.0
	for name, x := range liquidFractions {
		c, ok := comps[name]
		if !ok {
			continue
		}
		psat, err := c.VaporPressure(temperatureK)
		if err != nil {
			continue
		}
		p += x * psat
	}
	return p, nil
}

// DewPointPressure returns the pressure at which the first liquid drop
// condenses from a vapor of the given composition:
// P_dew = 1/Σ(y_i/Psat_i). Returns 0 when no component contributes.
func DewPointPressure(temperatureK float64, vaporFractions map[string]float64, comps map[string]component.Component) (float64, error) {
	if temperatureK <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidInput,
			"temperature must be positive kelvin, got %g", temperatureK)
	}
	sumInv := 0.0
	for name, y := range vaporFractions {
		c, ok := comps[name]
		if !ok {
			continue
		}
		psat, err := c.VaporPressure(temperatureK)
		if err != nil || psat <= 0 {
			continue
		}
		sumInv += y / psat
	}
	if sumInv <= 0 {
		return 0, nil
	}
	return 1.0 / sumInv, nil
}
