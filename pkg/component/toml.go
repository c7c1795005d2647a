package component

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/allena90/plantsim/pkg/errors"
)

type libraryFile struct {
	Components []componentEntry `toml:"component"`
}

type componentEntry struct {
	Name            string  `toml:"name"`
	Formula         string  `toml:"formula"`
	CASNumber       string  `toml:"cas_number"`
	MolecularWeight float64 `toml:"molecular_weight"`

	CriticalTemperature float64 `toml:"critical_temperature"`
	CriticalPressure    float64 `toml:"critical_pressure"`
	CriticalVolume      float64 `toml:"critical_volume"`
	AcentricFactor      float64 `toml:"acentric_factor"`

	NormalBoilingPoint float64 `toml:"normal_boiling_point"`
	NormalMeltingPoint float64 `toml:"normal_melting_point"`

	Antoine    *antoineEntry `toml:"antoine"`
	CpIdealGas *cpEntry      `toml:"cp_ideal_gas"`

	HeatOfVaporization float64 `toml:"heat_of_vaporization"`

	PhaseAtSTP  string `toml:"phase_at_stp"`
	Description string `toml:"description"`
}

type antoineEntry struct {
	A    float64 `toml:"a"`
	B    float64 `toml:"b"`
	C    float64 `toml:"c"`
	TMin float64 `toml:"tmin"`
	TMax float64 `toml:"tmax"`
}

type cpEntry struct {
	A float64 `toml:"a"`
	B float64 `toml:"b"`
	C float64 `toml:"c"`
	D float64 `toml:"d"`
}

// ParseLibrary decodes a TOML component library from raw bytes. Each
// [[component]] table becomes one validated component; validation or
// duplicate failures abort the parse with the offending entry named.
func ParseLibrary(data []byte) (*Library, error) {
	var file libraryFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLibrary, err, "parsing component library")
	}
	if len(file.Components) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidLibrary, "component library defines no components")
	}

	lib := NewLibrary()
	for _, e := range file.Components {
		c := Component{
			Name:                e.Name,
			Formula:             e.Formula,
			CASNumber:           e.CASNumber,
			MolecularWeight:     e.MolecularWeight,
			CriticalTemperature: e.CriticalTemperature,
			CriticalPressure:    e.CriticalPressure,
			CriticalVolume:      e.CriticalVolume,
			AcentricFactor:      e.AcentricFactor,
			NormalBoilingPoint:  e.NormalBoilingPoint,
			NormalMeltingPoint:  e.NormalMeltingPoint,
			HeatOfVaporization:  e.HeatOfVaporization,
			PhaseAtSTP:          e.PhaseAtSTP,
			Description:         e.Description,
		}
		if e.Antoine != nil {
			c.Antoine = &AntoineCoeffs{
				A: e.Antoine.A, B: e.Antoine.B, C: e.Antoine.C,
				TMin: e.Antoine.TMin, TMax: e.Antoine.TMax,
			}
		}
		if e.CpIdealGas != nil {
			c.CpIdealGas = &CpPolynomial{
				A: e.CpIdealGas.A, B: e.CpIdealGas.B,
				C: e.CpIdealGas.C, D: e.CpIdealGas.D,
			}
		}
		validated, err := New(c)
		if err != nil {
			return nil, err
		}
		if err := lib.Add(validated); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

// LoadLibrary reads and parses a TOML component library from a file.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLibrary, err, "reading component library %s", path)
	}
	return ParseLibrary(data)
}
