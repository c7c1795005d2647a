package units

import (
	"fmt"
	"math"

	"github.com/allena90/plantsim/pkg/errors"
)

// scaleTolerance is the absolute tolerance used when comparing unit scale
// factors and offsets for equality.
const scaleTolerance = 1e-15

// Unit is a named affine map from a raw value to its SI-equivalent
// representation: si = raw*Scale + Offset. The offset supports temperature
// scales such as Celsius; every other unit has Offset == 0.
//
// Unit values are immutable: all operations return new units. Two units
// are interchangeable for conversion purposes exactly when their Dimensions
// are equal.
type Unit struct {
	Name      string    // full lowercase name, e.g. "meter"
	Symbol    string    // display symbol, e.g. "m"
	Dimension Dimension // physical dimension of the unit
	Scale     float64   // to-SI multiplicative factor, always > 0
	Offset    float64   // to-SI additive offset, nonzero only for affine scales
}

// New creates a pure (offset-free) scaled unit after validating its fields.
// Returns an INVALID_UNIT error for an empty name or symbol, or a
// non-positive scale factor.
func New(name, symbol string, dim Dimension, scale float64) (Unit, error) {
	return NewAffine(name, symbol, dim, scale, 0)
}

// NewAffine creates a unit with an additive SI offset, used for temperature
// scales. Validation rules match [New].
func NewAffine(name, symbol string, dim Dimension, scale, offset float64) (Unit, error) {
	u := Unit{Name: name, Symbol: symbol, Dimension: dim, Scale: scale, Offset: offset}
	if err := u.Validate(); err != nil {
		return Unit{}, err
	}
	return u, nil
}

// Validate checks the unit's construction invariants: non-empty name and
// symbol, and a strictly positive scale factor.
func (u Unit) Validate() error {
	if u.Name == "" {
		return errors.New(errors.ErrCodeInvalidUnit, "unit name must not be empty")
	}
	if u.Symbol == "" {
		return errors.New(errors.ErrCodeInvalidUnit, "unit symbol must not be empty")
	}
	if u.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidUnit, "unit %q scale factor must be positive, got %g", u.Name, u.Scale)
	}
	return nil
}

// WithPrefix returns a new unit scaled by the prefix factor. The name and
// symbol are concatenated (kilo+meter = kilometer, k+m = km); dimension and
// offset are unchanged.
func (u Unit) WithPrefix(p Prefix) Unit {
	return Unit{
		Name:      p.Name + u.Name,
		Symbol:    p.Symbol + u.Symbol,
		Dimension: u.Dimension,
		Scale:     u.Scale * p.Factor,
		Offset:    u.Offset,
	}
}

// ToSI converts a raw value in this unit to its SI-equivalent value.
func (u Unit) ToSI(value float64) float64 {
	return value*u.Scale + u.Offset
}

// FromSI converts an SI-equivalent value back to a raw value in this unit.
func (u Unit) FromSI(si float64) float64 {
	return (si - u.Offset) / u.Scale
}

// ConvertTo converts a value in this unit to the target unit via the shared
// SI intermediate. Returns a DIMENSION_MISMATCH error when the dimensions
// differ; numerically distinct but dimensionally equal units always convert.
func (u Unit) ConvertTo(value float64, target Unit) (float64, error) {
	if u.Dimension != target.Dimension {
		return 0, errors.New(errors.ErrCodeDimensionMismatch,
			"cannot convert %s (%s) to %s (%s)", u.Name, u.Dimension, target.Name, target.Dimension)
	}
	return target.FromSI(u.ToSI(value)), nil
}

// Mul composes two units into a product unit. The dimensions multiply, the
// scale factors multiply, and the names and symbols join with "·".
//
// Affine units do not compose: multiplying offset-bearing units such as
// Celsius would silently drop the offset and produce physically wrong
// results, so an OFFSET_COMPOSITION error is returned when either operand
// carries a nonzero offset.
func (u Unit) Mul(other Unit) (Unit, error) {
	if err := checkComposable(u, other); err != nil {
		return Unit{}, err
	}
	return Unit{
		Name:      u.Name + "·" + other.Name,
		Symbol:    u.Symbol + "·" + other.Symbol,
		Dimension: u.Dimension.Mul(other.Dimension),
		Scale:     u.Scale * other.Scale,
	}, nil
}

// Div composes two units into a quotient unit. Composition rules match
// [Unit.Mul]; offset-bearing operands are rejected.
func (u Unit) Div(other Unit) (Unit, error) {
	if err := checkComposable(u, other); err != nil {
		return Unit{}, err
	}
	return Unit{
		Name:      u.Name + "/" + other.Name,
		Symbol:    u.Symbol + "/" + other.Symbol,
		Dimension: u.Dimension.Div(other.Dimension),
		Scale:     u.Scale / other.Scale,
	}, nil
}

// Pow raises the unit to an integer power. Pow(1) returns the unit
// unchanged (preserving any offset); for any other exponent the unit must
// be offset-free.
func (u Unit) Pow(n int) (Unit, error) {
	if n == 1 {
		return u, nil
	}
	if u.Offset != 0 {
		return Unit{}, errors.New(errors.ErrCodeOffsetComposition,
			"cannot raise affine unit %s to power %d", u.Name, n)
	}
	return Unit{
		Name:      fmt.Sprintf("%s^%d", u.Name, n),
		Symbol:    fmt.Sprintf("%s^%d", u.Symbol, n),
		Dimension: u.Dimension.Pow(n),
		Scale:     math.Pow(u.Scale, float64(n)),
	}, nil
}

// Equal reports whether two units are numerically interchangeable: same
// dimension and matching scale and offset within a small absolute
// tolerance. Names and symbols do not participate (foot·second/second
// equals foot).
func (u Unit) Equal(other Unit) bool {
	return u.Dimension == other.Dimension &&
		math.Abs(u.Scale-other.Scale) < scaleTolerance &&
		math.Abs(u.Offset-other.Offset) < scaleTolerance
}

// String returns the unit's symbol.
func (u Unit) String() string {
	return u.Symbol
}

func checkComposable(a, b Unit) error {
	if a.Offset != 0 {
		return errors.New(errors.ErrCodeOffsetComposition,
			"cannot compose affine unit %s: offsets do not compose", a.Name)
	}
	if b.Offset != 0 {
		return errors.New(errors.ErrCodeOffsetComposition,
			"cannot compose affine unit %s: offsets do not compose", b.Name)
	}
	return nil
}

// Convert converts a value from one unit to another. It is a convenience
// wrapper around [Unit.ConvertTo] for callers holding two unit values.
func Convert(value float64, from, to Unit) (float64, error) {
	return from.ConvertTo(value, to)
}
