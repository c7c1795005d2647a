package units

import (
	"fmt"
	"math"

	"github.com/allena90/plantsim/pkg/errors"
)

// quantityTolerance is the absolute tolerance on SI-equivalent values used
// by [Quantity.Equal] to absorb floating-point round-trip error.
const quantityTolerance = 1e-10

// Quantity is a numeric value paired with a unit. All arithmetic returns
// new quantities and never mutates operands; operations that require
// dimensional compatibility surface a DIMENSION_MISMATCH error instead of
// silently coercing.
type Quantity struct {
	Value float64
	Unit  Unit
}

// Q constructs a quantity from a value and a unit.
func Q(value float64, unit Unit) Quantity {
	return Quantity{Value: value, Unit: unit}
}

// Dimension returns the physical dimension of the quantity's unit.
func (q Quantity) Dimension() Dimension {
	return q.Unit.Dimension
}

// Convert expresses the quantity in the target unit.
// Returns a DIMENSION_MISMATCH error when the dimensions differ.
func (q Quantity) Convert(target Unit) (Quantity, error) {
	v, err := q.Unit.ConvertTo(q.Value, target)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: v, Unit: target}, nil
}

// ToSI expresses the quantity in the canonical SI unit for its dimension.
// Dimensions without a canonical unit fall back to a synthetic unit with
// scale 1 so the SI value is always well defined.
func (q Quantity) ToSI() Quantity {
	return Quantity{Value: q.Unit.ToSI(q.Value), Unit: SIUnitFor(q.Unit.Dimension)}
}

// siValue is the quantity's value on the SI scale, used for comparisons.
func (q Quantity) siValue() float64 {
	return q.Unit.ToSI(q.Value)
}

// Add returns q + other expressed in q's unit. The right operand is
// converted into the left operand's unit first; a DIMENSION_MISMATCH error
// is returned when the dimensions differ.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	rhs, err := other.Convert(q.Unit)
	if err != nil {
		return Quantity{}, errors.New(errors.ErrCodeDimensionMismatch,
			"cannot add %s and %s", q.Dimension(), other.Dimension())
	}
	return Quantity{Value: q.Value + rhs.Value, Unit: q.Unit}, nil
}

// Sub returns q - other expressed in q's unit. Conversion rules match [Quantity.Add].
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	rhs, err := other.Convert(q.Unit)
	if err != nil {
		return Quantity{}, errors.New(errors.ErrCodeDimensionMismatch,
			"cannot subtract %s and %s", q.Dimension(), other.Dimension())
	}
	return Quantity{Value: q.Value - rhs.Value, Unit: q.Unit}, nil
}

// MulScalar scales the value; the unit is unchanged.
func (q Quantity) MulScalar(s float64) Quantity {
	return Quantity{Value: q.Value * s, Unit: q.Unit}
}

// DivScalar divides the value by a scalar; the unit is unchanged.
func (q Quantity) DivScalar(s float64) Quantity {
	return Quantity{Value: q.Value / s, Unit: q.Unit}
}

// Mul multiplies two quantities: values multiply and units compose.
// Offset-bearing units (Celsius and friends) cannot be composed and
// surface an OFFSET_COMPOSITION error.
func (q Quantity) Mul(other Quantity) (Quantity, error) {
	u, err := q.Unit.Mul(other.Unit)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: q.Value * other.Value, Unit: u}, nil
}

// Div divides two quantities: values divide and units compose.
func (q Quantity) Div(other Quantity) (Quantity, error) {
	u, err := q.Unit.Div(other.Unit)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: q.Value / other.Value, Unit: u}, nil
}

// Pow raises the value and the unit to an integer power.
func (q Quantity) Pow(n int) (Quantity, error) {
	u, err := q.Unit.Pow(n)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: math.Pow(q.Value, float64(n)), Unit: u}, nil
}

// Neg returns the quantity with its value negated.
func (q Quantity) Neg() Quantity {
	return Quantity{Value: -q.Value, Unit: q.Unit}
}

// Abs returns the quantity with its absolute value.
func (q Quantity) Abs() Quantity {
	return Quantity{Value: math.Abs(q.Value), Unit: q.Unit}
}

// Equal reports whether two quantities represent the same physical value.
// Quantities of different dimensions are never equal; quantities of the
// same dimension compare by SI-equivalent value within an absolute
// tolerance of 1e-10, not exact bit equality.
func (q Quantity) Equal(other Quantity) bool {
	if q.Dimension() != other.Dimension() {
		return false
	}
	return math.Abs(q.siValue()-other.siValue()) < quantityTolerance
}

// Less reports whether q is strictly smaller than other on the SI scale.
// Returns a DIMENSION_MISMATCH error when the dimensions differ.
func (q Quantity) Less(other Quantity) (bool, error) {
	if err := q.checkComparable(other); err != nil {
		return false, err
	}
	return q.siValue() < other.siValue(), nil
}

// Greater reports whether q is strictly larger than other on the SI scale.
func (q Quantity) Greater(other Quantity) (bool, error) {
	if err := q.checkComparable(other); err != nil {
		return false, err
	}
	return q.siValue() > other.siValue(), nil
}

// LessEq reports q <= other under the tolerance rules of [Quantity.Equal].
func (q Quantity) LessEq(other Quantity) (bool, error) {
	less, err := q.Less(other)
	if err != nil {
		return false, err
	}
	return less || q.Equal(other), nil
}

// GreaterEq reports q >= other under the tolerance rules of [Quantity.Equal].
func (q Quantity) GreaterEq(other Quantity) (bool, error) {
	greater, err := q.Greater(other)
	if err != nil {
		return false, err
	}
	return greater || q.Equal(other), nil
}

func (q Quantity) checkComparable(other Quantity) error {
	if q.Dimension() != other.Dimension() {
		return errors.New(errors.ErrCodeDimensionMismatch,
			"cannot compare %s and %s", q.Dimension(), other.Dimension())
	}
	return nil
}

// String renders the quantity as "{value} {unit symbol}".
func (q Quantity) String() string {
	return fmt.Sprintf("%v %s", q.Value, q.Unit.Symbol)
}
