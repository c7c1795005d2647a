package units

import "math"

// Physical constants (CODATA 2018, exact where noted) used by the catalog.
const (
	SpeedOfLight       = 299792458        // m/s (exact)
	ElementaryCharge   = 1.602176634e-19  // C (exact)
	BoltzmannConstant  = 1.380649e-23     // J/K (exact)
	AvogadroNumber     = 6.02214076e23    // 1/mol (exact)
	GasConstant        = 8.314462618      // J/(mol·K)
	StandardGravity    = 9.80665          // m/s² (exact)
	StandardAtmosphere = 101325.0         // Pa (exact)
	FaradayConstant    = 96485.33212      // C/mol
	AtomicMassUnit     = 1.66053906660e-27 // kg
)

// Predefined units. The catalog is curated data, not logic: each entry is a
// literal affine map onto the SI scale. Symbols are unique within the
// catalog so registry lookups are unambiguous.
var (
	// Dimensionless
	Unitless = Unit{Name: "unitless", Symbol: "-", Dimension: Dimensionless, Scale: 1}
	Percent  = Unit{Name: "percent", Symbol: "%", Dimension: Dimensionless, Scale: 0.01}
	Permille = Unit{Name: "permille", Symbol: "‰", Dimension: Dimensionless, Scale: 0.001}
	PPM      = Unit{Name: "parts per million", Symbol: "ppm", Dimension: Dimensionless, Scale: 1e-6}
	PPB      = Unit{Name: "parts per billion", Symbol: "ppb", Dimension: Dimensionless, Scale: 1e-9}

	// Length (SI base: meter)
	Meter        = Unit{Name: "meter", Symbol: "m", Dimension: Length, Scale: 1}
	Angstrom     = Unit{Name: "angstrom", Symbol: "Å", Dimension: Length, Scale: 1e-10}
	Inch         = Unit{Name: "inch", Symbol: "in", Dimension: Length, Scale: 0.0254}
	Foot         = Unit{Name: "foot", Symbol: "ft", Dimension: Length, Scale: 0.3048}
	Yard         = Unit{Name: "yard", Symbol: "yd", Dimension: Length, Scale: 0.9144}
	Mile         = Unit{Name: "mile", Symbol: "mi", Dimension: Length, Scale: 1609.344}
	NauticalMile = Unit{Name: "nautical mile", Symbol: "nmi", Dimension: Length, Scale: 1852}
	Fathom       = Unit{Name: "fathom", Symbol: "ftm", Dimension: Length, Scale: 1.8288}
	AstronomicalUnit = Unit{Name: "astronomical unit", Symbol: "AU", Dimension: Length, Scale: 149597870700}
	LightYear        = Unit{Name: "light-year", Symbol: "ly", Dimension: Length, Scale: 9460730472580800}
	Parsec           = Unit{Name: "parsec", Symbol: "pc", Dimension: Length, Scale: 3.0856775814913673e16}

	// Mass (SI base: kilogram)
	Kilogram  = Unit{Name: "kilogram", Symbol: "kg", Dimension: Mass, Scale: 1}
	Gram      = Unit{Name: "gram", Symbol: "g", Dimension: Mass, Scale: 0.001}
	Tonne     = Unit{Name: "tonne", Symbol: "t", Dimension: Mass, Scale: 1000}
	Pound     = Unit{Name: "pound", Symbol: "lb", Dimension: Mass, Scale: 0.45359237}
	OunceMass = Unit{Name: "ounce", Symbol: "oz", Dimension: Mass, Scale: 0.028349523125}
	Grain     = Unit{Name: "grain", Symbol: "gr", Dimension: Mass, Scale: 6.479891e-5}
	Stone     = Unit{Name: "stone", Symbol: "st", Dimension: Mass, Scale: 6.35029318}
	Slug      = Unit{Name: "slug", Symbol: "slug", Dimension: Mass, Scale: 14.593903}
	TroyOunce = Unit{Name: "troy ounce", Symbol: "oz t", Dimension: Mass, Scale: 0.0311034768}
	Dalton    = Unit{Name: "dalton", Symbol: "Da", Dimension: Mass, Scale: AtomicMassUnit}

	// Time (SI base: second)
	Second = Unit{Name: "second", Symbol: "s", Dimension: Time, Scale: 1}
	Minute = Unit{Name: "minute", Symbol: "min", Dimension: Time, Scale: 60}
	Hour   = Unit{Name: "hour", Symbol: "h", Dimension: Time, Scale: 3600}
	Day    = Unit{Name: "day", Symbol: "d", Dimension: Time, Scale: 86400}
	Week   = Unit{Name: "week", Symbol: "wk", Dimension: Time, Scale: 604800}
	JulianYear = Unit{Name: "Julian year", Symbol: "a", Dimension: Time, Scale: 31557600}

	// Temperature (SI base: kelvin). Celsius and Fahrenheit are affine.
	Kelvin     = Unit{Name: "kelvin", Symbol: "K", Dimension: Temperature, Scale: 1}
	Celsius    = Unit{Name: "celsius", Symbol: "°C", Dimension: Temperature, Scale: 1, Offset: 273.15}
	Fahrenheit = Unit{Name: "fahrenheit", Symbol: "°F", Dimension: Temperature, Scale: 5.0 / 9.0, Offset: 273.15 - 32*5.0/9.0}
	Rankine    = Unit{Name: "rankine", Symbol: "°R", Dimension: Temperature, Scale: 5.0 / 9.0}

	// Amount of substance (SI base: mole)
	Mole      = Unit{Name: "mole", Symbol: "mol", Dimension: Amount, Scale: 1}
	PoundMole = Unit{Name: "pound-mole", Symbol: "lb-mol", Dimension: Amount, Scale: 453.59237}

	// Electric current (SI base: ampere)
	Ampere = Unit{Name: "ampere", Symbol: "A", Dimension: Current, Scale: 1}

	// Luminous intensity (SI base: candela)
	Candela = Unit{Name: "candela", Symbol: "cd", Dimension: Luminosity, Scale: 1}

	// Plane angle (SI: radian)
	Radian    = Unit{Name: "radian", Symbol: "rad", Dimension: PlaneAngle, Scale: 1}
	Degree    = Unit{Name: "degree", Symbol: "°", Dimension: PlaneAngle, Scale: math.Pi / 180}
	Gradian   = Unit{Name: "gradian", Symbol: "gon", Dimension: PlaneAngle, Scale: math.Pi / 200}
	Turn      = Unit{Name: "turn", Symbol: "tr", Dimension: PlaneAngle, Scale: 2 * math.Pi}
	Arcminute = Unit{Name: "arcminute", Symbol: "′", Dimension: PlaneAngle, Scale: math.Pi / 10800}
	Arcsecond = Unit{Name: "arcsecond", Symbol: "″", Dimension: PlaneAngle, Scale: math.Pi / 648000}

	// Solid angle (SI: steradian)
	Steradian = Unit{Name: "steradian", Symbol: "sr", Dimension: SolidAngleDim, Scale: 1}

	// Information (base: bit)
	Bit  = Unit{Name: "bit", Symbol: "b", Dimension: InformationDim, Scale: 1}
	Byte = Unit{Name: "byte", Symbol: "B", Dimension: InformationDim, Scale: 8}

	// Area (derived: m²)
	SquareMeter = Unit{Name: "square meter", Symbol: "m²", Dimension: Area, Scale: 1}
	Hectare     = Unit{Name: "hectare", Symbol: "ha", Dimension: Area, Scale: 1e4}
	SquareInch  = Unit{Name: "square inch", Symbol: "in²", Dimension: Area, Scale: 6.4516e-4}
	SquareFoot  = Unit{Name: "square foot", Symbol: "ft²", Dimension: Area, Scale: 0.09290304}
	Acre        = Unit{Name: "acre", Symbol: "ac", Dimension: Area, Scale: 4046.8564224}
	Barn        = Unit{Name: "barn", Symbol: "barn", Dimension: Area, Scale: 1e-28}

	// Volume (derived: m³)
	CubicMeter = Unit{Name: "cubic meter", Symbol: "m³", Dimension: Volume, Scale: 1}
	Liter      = Unit{Name: "liter", Symbol: "L", Dimension: Volume, Scale: 0.001}
	Milliliter = Unit{Name: "milliliter", Symbol: "mL", Dimension: Volume, Scale: 1e-6}
	CubicInch  = Unit{Name: "cubic inch", Symbol: "in³", Dimension: Volume, Scale: 1.6387064e-5}
	CubicFoot  = Unit{Name: "cubic foot", Symbol: "ft³", Dimension: Volume, Scale: 0.028316846592}
	GallonUS   = Unit{Name: "US gallon", Symbol: "gal", Dimension: Volume, Scale: 0.003785411784}
	GallonUK   = Unit{Name: "UK gallon", Symbol: "gal_UK", Dimension: Volume, Scale: 0.00454609}
	BarrelOil  = Unit{Name: "barrel (oil)", Symbol: "bbl", Dimension: Volume, Scale: 0.158987294928}

	// Velocity (derived: m/s)
	MeterPerSecond   = Unit{Name: "meter per second", Symbol: "m/s", Dimension: Velocity, Scale: 1}
	KilometerPerHour = Unit{Name: "kilometer per hour", Symbol: "km/h", Dimension: Velocity, Scale: 1 / 3.6}
	MilePerHour      = Unit{Name: "mile per hour", Symbol: "mph", Dimension: Velocity, Scale: 0.44704}
	FootPerSecond    = Unit{Name: "foot per second", Symbol: "ft/s", Dimension: Velocity, Scale: 0.3048}
	Knot             = Unit{Name: "knot", Symbol: "kn", Dimension: Velocity, Scale: 0.514444}

	// Acceleration (derived: m/s²)
	MeterPerSecondSq = Unit{Name: "meter per second squared", Symbol: "m/s²", Dimension: Acceleration, Scale: 1}
	StandardGravityUnit = Unit{Name: "standard gravity", Symbol: "g₀", Dimension: Acceleration, Scale: StandardGravity}
	Gal = Unit{Name: "gal", Symbol: "Gal", Dimension: Acceleration, Scale: 0.01}

	// Force (derived: newton)
	Newton        = Unit{Name: "newton", Symbol: "N", Dimension: Force, Scale: 1}
	Kilonewton    = Unit{Name: "kilonewton", Symbol: "kN", Dimension: Force, Scale: 1000}
	Dyne          = Unit{Name: "dyne", Symbol: "dyn", Dimension: Force, Scale: 1e-5}
	KilogramForce = Unit{Name: "kilogram-force", Symbol: "kgf", Dimension: Force, Scale: StandardGravity}
	PoundForce    = Unit{Name: "pound-force", Symbol: "lbf", Dimension: Force, Scale: 4.4482216152605}
	Poundal       = Unit{Name: "poundal", Symbol: "pdl", Dimension: Force, Scale: 0.138254954376}

	// Pressure (derived: pascal)
	Pascal     = Unit{Name: "pascal", Symbol: "Pa", Dimension: Pressure, Scale: 1}
	Kilopascal = Unit{Name: "kilopascal", Symbol: "kPa", Dimension: Pressure, Scale: 1000}
	Megapascal = Unit{Name: "megapascal", Symbol: "MPa", Dimension: Pressure, Scale: 1e6}
	Bar        = Unit{Name: "bar", Symbol: "bar", Dimension: Pressure, Scale: 1e5}
	Millibar   = Unit{Name: "millibar", Symbol: "mbar", Dimension: Pressure, Scale: 100}
	Atmosphere = Unit{Name: "atmosphere", Symbol: "atm", Dimension: Pressure, Scale: StandardAtmosphere}
	PSI        = Unit{Name: "pound per square inch", Symbol: "psi", Dimension: Pressure, Scale: 6894.757293168}
	Torr       = Unit{Name: "torr", Symbol: "Torr", Dimension: Pressure, Scale: 133.32236842105}
	MmHg       = Unit{Name: "millimeter of mercury", Symbol: "mmHg", Dimension: Pressure, Scale: 133.322387415}
	InHg       = Unit{Name: "inch of mercury", Symbol: "inHg", Dimension: Pressure, Scale: 3386.389}
	MmH2O      = Unit{Name: "millimeter of water", Symbol: "mmH₂O", Dimension: Pressure, Scale: 9.80665}

	// Energy (derived: joule)
	Joule        = Unit{Name: "joule", Symbol: "J", Dimension: Energy, Scale: 1}
	Kilojoule    = Unit{Name: "kilojoule", Symbol: "kJ", Dimension: Energy, Scale: 1000}
	Megajoule    = Unit{Name: "megajoule", Symbol: "MJ", Dimension: Energy, Scale: 1e6}
	Erg          = Unit{Name: "erg", Symbol: "erg", Dimension: Energy, Scale: 1e-7}
	Calorie      = Unit{Name: "calorie (thermochemical)", Symbol: "cal", Dimension: Energy, Scale: 4.184}
	Kilocalorie  = Unit{Name: "kilocalorie", Symbol: "kcal", Dimension: Energy, Scale: 4184}
	BTU          = Unit{Name: "British thermal unit", Symbol: "BTU", Dimension: Energy, Scale: 1055.06}
	Therm        = Unit{Name: "therm", Symbol: "thm", Dimension: Energy, Scale: 1.05506e8}
	WattHour     = Unit{Name: "watt-hour", Symbol: "Wh", Dimension: Energy, Scale: 3600}
	KilowattHour = Unit{Name: "kilowatt-hour", Symbol: "kWh", Dimension: Energy, Scale: 3.6e6}
	Electronvolt = Unit{Name: "electronvolt", Symbol: "eV", Dimension: Energy, Scale: ElementaryCharge}
	FootPound    = Unit{Name: "foot-pound", Symbol: "ft·lbf", Dimension: Energy, Scale: 1.3558179483314}

	// Power (derived: watt)
	Watt             = Unit{Name: "watt", Symbol: "W", Dimension: Power, Scale: 1}
	Kilowatt         = Unit{Name: "kilowatt", Symbol: "kW", Dimension: Power, Scale: 1000}
	Megawatt         = Unit{Name: "megawatt", Symbol: "MW", Dimension: Power, Scale: 1e6}
	Horsepower       = Unit{Name: "horsepower", Symbol: "hp", Dimension: Power, Scale: 745.69987158227}
	HorsepowerMetric = Unit{Name: "metric horsepower", Symbol: "PS", Dimension: Power, Scale: 735.49875}
	BTUPerHour       = Unit{Name: "BTU per hour", Symbol: "BTU/h", Dimension: Power, Scale: 0.29307107}
	TonRefrigeration = Unit{Name: "ton of refrigeration", Symbol: "TR", Dimension: Power, Scale: 3516.8528}

	// Frequency (derived: hertz)
	Hertz     = Unit{Name: "hertz", Symbol: "Hz", Dimension: Frequency, Scale: 1}
	Kilohertz = Unit{Name: "kilohertz", Symbol: "kHz", Dimension: Frequency, Scale: 1e3}
	Megahertz = Unit{Name: "megahertz", Symbol: "MHz", Dimension: Frequency, Scale: 1e6}
	RPM       = Unit{Name: "revolutions per minute", Symbol: "rpm", Dimension: Frequency, Scale: 1.0 / 60.0}

	// Density
	KgPerCubicMeter = Unit{Name: "kilogram per cubic meter", Symbol: "kg/m³", Dimension: Density, Scale: 1}
	GramPerCubicCm  = Unit{Name: "gram per cubic centimeter", Symbol: "g/cm³", Dimension: Density, Scale: 1000}
	PoundPerCubicFoot = Unit{Name: "pound per cubic foot", Symbol: "lb/ft³", Dimension: Density, Scale: 16.018463}

	// Dynamic viscosity
	PascalSecond = Unit{Name: "pascal second", Symbol: "Pa·s", Dimension: DynamicViscosity, Scale: 1}
	Poise        = Unit{Name: "poise", Symbol: "P", Dimension: DynamicViscosity, Scale: 0.1}
	Centipoise   = Unit{Name: "centipoise", Symbol: "cP", Dimension: DynamicViscosity, Scale: 0.001}

	// Kinematic viscosity
	SquareMeterPerSecond = Unit{Name: "square meter per second", Symbol: "m²/s", Dimension: KinematicViscosity, Scale: 1}
	Stokes               = Unit{Name: "stokes", Symbol: "St", Dimension: KinematicViscosity, Scale: 1e-4}
	Centistokes          = Unit{Name: "centistokes", Symbol: "cSt", Dimension: KinematicViscosity, Scale: 1e-6}

	// Volumetric flow
	CubicMeterPerSecond = Unit{Name: "cubic meter per second", Symbol: "m³/s", Dimension: VolumetricFlow, Scale: 1}
	CubicMeterPerHour   = Unit{Name: "cubic meter per hour", Symbol: "m³/h", Dimension: VolumetricFlow, Scale: 1.0 / 3600.0}
	LiterPerSecond      = Unit{Name: "liter per second", Symbol: "L/s", Dimension: VolumetricFlow, Scale: 0.001}
	LiterPerMinute      = Unit{Name: "liter per minute", Symbol: "L/min", Dimension: VolumetricFlow, Scale: 1.0 / 60000.0}
	GallonPerMinute     = Unit{Name: "gallon per minute", Symbol: "gpm", Dimension: VolumetricFlow, Scale: 6.30902e-5}
	CubicFootPerMinute  = Unit{Name: "cubic foot per minute", Symbol: "cfm", Dimension: VolumetricFlow, Scale: 4.7194744e-4}
	BarrelPerDay        = Unit{Name: "barrel per day", Symbol: "bpd", Dimension: VolumetricFlow, Scale: 1.8401e-6}

	// Mass flow
	KgPerSecond  = Unit{Name: "kilogram per second", Symbol: "kg/s", Dimension: MassFlow, Scale: 1}
	KgPerHour    = Unit{Name: "kilogram per hour", Symbol: "kg/h", Dimension: MassFlow, Scale: 1.0 / 3600.0}
	TonnePerHour = Unit{Name: "tonne per hour", Symbol: "t/h", Dimension: MassFlow, Scale: 1000.0 / 3600.0}
	PoundPerHour = Unit{Name: "pound per hour", Symbol: "lb/h", Dimension: MassFlow, Scale: 0.45359237 / 3600.0}

	// Molar flow
	MolPerSecond  = Unit{Name: "mole per second", Symbol: "mol/s", Dimension: MolarFlow, Scale: 1}
	KmolPerHour   = Unit{Name: "kilomole per hour", Symbol: "kmol/h", Dimension: MolarFlow, Scale: 1000.0 / 3600.0}
	KmolPerSecond = Unit{Name: "kilomole per second", Symbol: "kmol/s", Dimension: MolarFlow, Scale: 1000}

	// Heat capacity / specific heat
	JoulePerKelvin   = Unit{Name: "joule per kelvin", Symbol: "J/K", Dimension: HeatCapacity, Scale: 1}
	JoulePerKgKelvin = Unit{Name: "joule per kilogram kelvin", Symbol: "J/(kg·K)", Dimension: SpecificHeat, Scale: 1}
	JoulePerMolKelvin = Unit{Name: "joule per mole kelvin", Symbol: "J/(mol·K)", Dimension: MolarHeatCapacity, Scale: 1}

	// Thermal conductivity and heat transfer
	WattPerMeterKelvin   = Unit{Name: "watt per meter kelvin", Symbol: "W/(m·K)", Dimension: ThermalConductivity, Scale: 1}
	WattPerSqMeterKelvin = Unit{Name: "watt per square meter kelvin", Symbol: "W/(m²·K)", Dimension: HeatTransferCoeff, Scale: 1}

	// Molar quantities
	KgPerMol         = Unit{Name: "kilogram per mole", Symbol: "kg/mol", Dimension: MolarMass, Scale: 1}
	GramPerMol       = Unit{Name: "gram per mole", Symbol: "g/mol", Dimension: MolarMass, Scale: 0.001}
	KgPerKmol        = Unit{Name: "kilogram per kilomole", Symbol: "kg/kmol", Dimension: MolarMass, Scale: 0.001}
	CubicMeterPerMol = Unit{Name: "cubic meter per mole", Symbol: "m³/mol", Dimension: MolarVolume, Scale: 1}
	LiterPerMol      = Unit{Name: "liter per mole", Symbol: "L/mol", Dimension: MolarVolume, Scale: 0.001}
	JoulePerMol      = Unit{Name: "joule per mole", Symbol: "J/mol", Dimension: MolarEnergy, Scale: 1}
	KilojoulePerMol  = Unit{Name: "kilojoule per mole", Symbol: "kJ/mol", Dimension: MolarEnergy, Scale: 1000}
	CaloriePerMol    = Unit{Name: "calorie per mole", Symbol: "cal/mol", Dimension: MolarEnergy, Scale: 4.184}

	// Concentration
	MolPerCubicMeter = Unit{Name: "mole per cubic meter", Symbol: "mol/m³", Dimension: Concentration, Scale: 1}
	MolPerLiter      = Unit{Name: "mole per liter", Symbol: "mol/L", Dimension: Concentration, Scale: 1000}

	// Surface tension and torque
	NewtonPerMeter = Unit{Name: "newton per meter", Symbol: "N/m", Dimension: SurfaceTension, Scale: 1}
	NewtonMeter    = Unit{Name: "newton meter", Symbol: "N·m", Dimension: Torque, Scale: 1}

	// Electrical
	Coulomb    = Unit{Name: "coulomb", Symbol: "C", Dimension: ElectricCharge, Scale: 1}
	AmpereHour = Unit{Name: "ampere-hour", Symbol: "Ah", Dimension: ElectricCharge, Scale: 3600}
	Volt       = Unit{Name: "volt", Symbol: "V", Dimension: Voltage, Scale: 1}
	Farad      = Unit{Name: "farad", Symbol: "F", Dimension: Capacitance, Scale: 1}
	Ohm        = Unit{Name: "ohm", Symbol: "Ω", Dimension: Resistance, Scale: 1}
	Siemens    = Unit{Name: "siemens", Symbol: "S", Dimension: Conductance, Scale: 1}
	Henry      = Unit{Name: "henry", Symbol: "H", Dimension: Inductance, Scale: 1}
	Weber      = Unit{Name: "weber", Symbol: "Wb", Dimension: MagneticFlux, Scale: 1}
	Tesla      = Unit{Name: "tesla", Symbol: "T", Dimension: FluxDensity, Scale: 1}
	Gauss      = Unit{Name: "gauss", Symbol: "G", Dimension: FluxDensity, Scale: 1e-4}

	// Optical
	Lumen = Unit{Name: "lumen", Symbol: "lm", Dimension: LuminousFlux, Scale: 1}
	Lux   = Unit{Name: "lux", Symbol: "lx", Dimension: Illuminance, Scale: 1}

	// Data rate
	BitPerSecond  = Unit{Name: "bit per second", Symbol: "bps", Dimension: DataRate, Scale: 1}
	BytePerSecond = Unit{Name: "byte per second", Symbol: "B/s", Dimension: DataRate, Scale: 8}
)

// catalog lists every predefined unit the default registry is seeded with.
var catalog = []Unit{
	Unitless, Percent, Permille, PPM, PPB,
	Meter, Angstrom, Inch, Foot, Yard, Mile, NauticalMile, Fathom,
	AstronomicalUnit, LightYear, Parsec,
	Kilogram, Gram, Tonne, Pound, OunceMass, Grain, Stone, Slug, TroyOunce, Dalton,
	Second, Minute, Hour, Day, Week, JulianYear,
	Kelvin, Celsius, Fahrenheit, Rankine,
	Mole, PoundMole,
	Ampere,
	Candela,
	Radian, Degree, Gradian, Turn, Arcminute, Arcsecond,
	Steradian,
	Bit, Byte,
	SquareMeter, Hectare, SquareInch, SquareFoot, Acre, Barn,
	CubicMeter, Liter, Milliliter, CubicInch, CubicFoot, GallonUS, GallonUK, BarrelOil,
	MeterPerSecond, KilometerPerHour, MilePerHour, FootPerSecond, Knot,
	MeterPerSecondSq, StandardGravityUnit, Gal,
	Newton, Kilonewton, Dyne, KilogramForce, PoundForce, Poundal,
	Pascal, Kilopascal, Megapascal, Bar, Millibar, Atmosphere, PSI, Torr, MmHg, InHg, MmH2O,
	Joule, Kilojoule, Megajoule, Erg, Calorie, Kilocalorie, BTU, Therm,
	WattHour, KilowattHour, Electronvolt, FootPound,
	Watt, Kilowatt, Megawatt, Horsepower, HorsepowerMetric, BTUPerHour, TonRefrigeration,
	Hertz, Kilohertz, Megahertz, RPM,
	KgPerCubicMeter, GramPerCubicCm, PoundPerCubicFoot,
	PascalSecond, Poise, Centipoise,
	SquareMeterPerSecond, Stokes, Centistokes,
	CubicMeterPerSecond, CubicMeterPerHour, LiterPerSecond, LiterPerMinute,
	GallonPerMinute, CubicFootPerMinute, BarrelPerDay,
	KgPerSecond, KgPerHour, TonnePerHour, PoundPerHour,
	MolPerSecond, KmolPerHour, KmolPerSecond,
	JoulePerKelvin, JoulePerKgKelvin, JoulePerMolKelvin,
	WattPerMeterKelvin, WattPerSqMeterKelvin,
	KgPerMol, GramPerMol, KgPerKmol, CubicMeterPerMol, LiterPerMol,
	JoulePerMol, KilojoulePerMol, CaloriePerMol,
	MolPerCubicMeter, MolPerLiter,
	NewtonPerMeter, NewtonMeter,
	Coulomb, AmpereHour, Volt, Farad, Ohm, Siemens, Henry, Weber, Tesla, Gauss,
	Lumen, Lux,
	BitPerSecond, BytePerSecond,
}

// siUnits maps each dimension to its canonical SI (or SI-coherent) unit.
var siUnits = map[Dimension]Unit{
	Dimensionless:       Unitless,
	Length:              Meter,
	Mass:                Kilogram,
	Time:                Second,
	Temperature:         Kelvin,
	Amount:              Mole,
	Current:             Ampere,
	Luminosity:          Candela,
	PlaneAngle:          Radian,
	SolidAngleDim:       Steradian,
	InformationDim:      Bit,
	Area:                SquareMeter,
	Volume:              CubicMeter,
	Velocity:            MeterPerSecond,
	Acceleration:        MeterPerSecondSq,
	Force:               Newton,
	Energy:              Joule,
	Power:               Watt,
	Pressure:            Pascal,
	Frequency:           Hertz,
	Density:             KgPerCubicMeter,
	DynamicViscosity:    PascalSecond,
	KinematicViscosity:  SquareMeterPerSecond,
	VolumetricFlow:      CubicMeterPerSecond,
	MassFlow:            KgPerSecond,
	MolarFlow:           MolPerSecond,
	HeatCapacity:        JoulePerKelvin,
	SpecificHeat:        JoulePerKgKelvin,
	MolarHeatCapacity:   JoulePerMolKelvin,
	ThermalConductivity: WattPerMeterKelvin,
	HeatTransferCoeff:   WattPerSqMeterKelvin,
	MolarMass:           KgPerMol,
	MolarVolume:         CubicMeterPerMol,
	MolarEnergy:         JoulePerMol,
	Concentration:       MolPerCubicMeter,
	SurfaceTension:      NewtonPerMeter,
	ElectricCharge:      Coulomb,
	Voltage:             Volt,
	Capacitance:         Farad,
	Resistance:          Ohm,
	Conductance:         Siemens,
	Inductance:          Henry,
	MagneticFlux:        Weber,
	FluxDensity:         Tesla,
	LuminousFlux:        Lumen,
	Illuminance:         Lux,
	DataRate:            BitPerSecond,
}

// SIUnitFor returns the canonical SI unit for a dimension. Dimensions with
// no catalog entry get a synthetic placeholder unit with scale 1 so that
// SI-value computations remain total.
func SIUnitFor(d Dimension) Unit {
	if u, ok := siUnits[d]; ok {
		return u
	}
	return Unit{Name: "SI(" + d.String() + ")", Symbol: "SI", Dimension: d, Scale: 1}
}
