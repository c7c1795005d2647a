package thermo

import "github.com/allena90/plantsim/pkg/errors"

// RKmol is the universal gas constant on the kmol basis, J/(kmol·K).
// All molar volumes in this package are in m³/kmol to match.
const RKmol = 8314.462

// IdealGas implements PV = nRT.
type IdealGas struct{}

// MolarVolume returns V = RT/P in m³/kmol.
func (IdealGas) MolarVolume(temperatureK, pressurePa float64) (float64, error) {
	if err := checkState(temperatureK, pressurePa); err != nil {
		return 0, err
	}
	return RKmol * temperatureK / pressurePa, nil
}

// Pressure returns P = RT/V in Pa for a molar volume in m³/kmol.
func (IdealGas) Pressure(temperatureK, molarVolume float64) (float64, error) {
	if temperatureK <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidInput,
			"temperature must be positive kelvin, got %g", temperatureK)
	}
	if molarVolume <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidInput,
			"molar volume must be positive, got %g", molarVolume)
	}
	return RKmol * temperatureK / molarVolume, nil
}

// CompressibilityFactor is identically 1 for an ideal gas.
func (IdealGas) CompressibilityFactor() float64 {
	return 1.0
}

func checkState(temperatureK, pressurePa float64) error {
	if temperatureK <= 0 {
		return errors.New(errors.ErrCodeInvalidInput,
			"temperature must be positive kelvin, got %g", temperatureK)
	}
	if pressurePa <= 0 {
		return errors.New(errors.ErrCodeInvalidInput,
			"pressure must be positive, got %g", pressurePa)
	}
	return nil
}
