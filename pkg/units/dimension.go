package units

import (
	"fmt"
	"strings"
)

// Dimension represents a physical dimension as integer exponents over ten
// orthogonal base axes. Two dimensions are equal exactly when all ten
// exponents match, so Dimension values are comparable with == and usable
// as map keys. Display names never participate in equality.
//
// The zero value is the dimensionless dimension.
type Dimension struct {
	Length      int // L - meter
	Mass        int // M - kilogram
	Time        int // T - second
	Temperature int // Θ - kelvin
	Amount      int // N - mole
	Current     int // I - ampere
	Luminosity  int // J - candela
	Angle       int // A - radian
	SolidAngle  int // Ω - steradian
	Information int // B - bit
}

// Mul returns the dimension of a product: component-wise exponent sum.
func (d Dimension) Mul(other Dimension) Dimension {
	return Dimension{
		Length:      d.Length + other.Length,
		Mass:        d.Mass + other.Mass,
		Time:        d.Time + other.Time,
		Temperature: d.Temperature + other.Temperature,
		Amount:      d.Amount + other.Amount,
		Current:     d.Current + other.Current,
		Luminosity:  d.Luminosity + other.Luminosity,
		Angle:       d.Angle + other.Angle,
		SolidAngle:  d.SolidAngle + other.SolidAngle,
		Information: d.Information + other.Information,
	}
}

// Div returns the dimension of a quotient: component-wise exponent difference.
func (d Dimension) Div(other Dimension) Dimension {
	return Dimension{
		Length:      d.Length - other.Length,
		Mass:        d.Mass - other.Mass,
		Time:        d.Time - other.Time,
		Temperature: d.Temperature - other.Temperature,
		Amount:      d.Amount - other.Amount,
		Current:     d.Current - other.Current,
		Luminosity:  d.Luminosity - other.Luminosity,
		Angle:       d.Angle - other.Angle,
		SolidAngle:  d.SolidAngle - other.SolidAngle,
		Information: d.Information - other.Information,
	}
}

// Pow returns the dimension raised to an integer power: component-wise
// scalar multiply. Zero and negative exponents are valid.
func (d Dimension) Pow(n int) Dimension {
	return Dimension{
		Length:      d.Length * n,
		Mass:        d.Mass * n,
		Time:        d.Time * n,
		Temperature: d.Temperature * n,
		Amount:      d.Amount * n,
		Current:     d.Current * n,
		Luminosity:  d.Luminosity * n,
		Angle:       d.Angle * n,
		SolidAngle:  d.SolidAngle * n,
		Information: d.Information * n,
	}
}

// Equal reports structural equality of the exponent vectors. Dimension is
// comparable, so == works too; Equal exists for call chains.
func (d Dimension) Equal(other Dimension) bool {
	return d == other
}

// IsDimensionless reports whether all ten exponents are zero.
func (d Dimension) IsDimensionless() bool {
	return d == Dimension{}
}

// String renders the dimension as symbol^exponent pairs joined by "·".
// Exponent 1 is omitted and the dimensionless dimension renders as the
// literal "dimensionless".
func (d Dimension) String() string {
	if d.IsDimensionless() {
		return "dimensionless"
	}
	axes := []struct {
		symbol string
		exp    int
	}{
		{"L", d.Length},
		{"M", d.Mass},
		{"T", d.Time},
		{"Θ", d.Temperature},
		{"N", d.Amount},
		{"I", d.Current},
		{"J", d.Luminosity},
		{"A", d.Angle},
		{"Ω", d.SolidAngle},
		{"B", d.Information},
	}
	var parts []string
	for _, a := range axes {
		switch {
		case a.exp == 1:
			parts = append(parts, a.symbol)
		case a.exp != 0:
			parts = append(parts, fmt.Sprintf("%s^%d", a.symbol, a.exp))
		}
	}
	return strings.Join(parts, "·")
}

// Predefined base dimensions.
var (
	Dimensionless  = Dimension{}
	Length         = Dimension{Length: 1}
	Mass           = Dimension{Mass: 1}
	Time           = Dimension{Time: 1}
	Temperature    = Dimension{Temperature: 1}
	Amount         = Dimension{Amount: 1}
	Current        = Dimension{Current: 1}
	Luminosity     = Dimension{Luminosity: 1}
	PlaneAngle     = Dimension{Angle: 1}
	SolidAngleDim  = Dimension{SolidAngle: 1}
	InformationDim = Dimension{Information: 1}
)

// Predefined derived dimensions. These are the quantity kinds the unit
// catalog covers; they are created once and never mutated.
var (
	// Geometric
	Area       = Dimension{Length: 2}
	Volume     = Dimension{Length: 3}
	Wavenumber = Dimension{Length: -1}

	// Mechanical
	Velocity           = Dimension{Length: 1, Time: -1}
	Acceleration       = Dimension{Length: 1, Time: -2}
	Force              = Dimension{Mass: 1, Length: 1, Time: -2}
	Momentum           = Dimension{Mass: 1, Length: 1, Time: -1}
	Torque             = Dimension{Mass: 1, Length: 2, Time: -2}
	Energy             = Dimension{Mass: 1, Length: 2, Time: -2}
	Power              = Dimension{Mass: 1, Length: 2, Time: -3}
	Pressure           = Dimension{Mass: 1, Length: -1, Time: -2}
	Density            = Dimension{Mass: 1, Length: -3}
	SpecificVolume     = Dimension{Mass: -1, Length: 3}
	DynamicViscosity   = Dimension{Mass: 1, Length: -1, Time: -1}
	KinematicViscosity = Dimension{Length: 2, Time: -1}
	SurfaceTension     = Dimension{Mass: 1, Time: -2}

	// Frequency
	Frequency = Dimension{Time: -1}

	// Flow
	MassFlow       = Dimension{Mass: 1, Time: -1}
	VolumetricFlow = Dimension{Length: 3, Time: -1}
	MolarFlow      = Dimension{Amount: 1, Time: -1}

	// Thermodynamic
	HeatCapacity        = Dimension{Mass: 1, Length: 2, Time: -2, Temperature: -1}
	SpecificHeat        = Dimension{Length: 2, Time: -2, Temperature: -1}
	MolarHeatCapacity   = Dimension{Mass: 1, Length: 2, Time: -2, Temperature: -1, Amount: -1}
	ThermalConductivity = Dimension{Mass: 1, Length: 1, Time: -3, Temperature: -1}
	HeatTransferCoeff   = Dimension{Mass: 1, Time: -3, Temperature: -1}

	// Chemical
	MolarMass     = Dimension{Mass: 1, Amount: -1}
	MolarVolume   = Dimension{Length: 3, Amount: -1}
	MolarEnergy   = Dimension{Mass: 1, Length: 2, Time: -2, Amount: -1}
	Concentration = Dimension{Amount: 1, Length: -3}
	Molality      = Dimension{Amount: 1, Mass: -1}

	// Electrical
	ElectricCharge = Dimension{Current: 1, Time: 1}
	Voltage        = Dimension{Mass: 1, Length: 2, Time: -3, Current: -1}
	Capacitance    = Dimension{Mass: -1, Length: -2, Time: 4, Current: 2}
	Resistance     = Dimension{Mass: 1, Length: 2, Time: -3, Current: -2}
	Conductance    = Dimension{Mass: -1, Length: -2, Time: 3, Current: 2}
	Inductance     = Dimension{Mass: 1, Length: 2, Time: -2, Current: -2}
	MagneticFlux   = Dimension{Mass: 1, Length: 2, Time: -2, Current: -1}
	FluxDensity    = Dimension{Mass: 1, Time: -2, Current: -1}

	// Optical
	LuminousFlux = Dimension{Luminosity: 1, SolidAngle: 1}
	Illuminance  = Dimension{Luminosity: 1, SolidAngle: 1, Length: -2}

	// Information
	DataRate = Dimension{Information: 1, Time: -1}
)
