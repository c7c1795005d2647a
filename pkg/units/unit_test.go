package units

import (
	"math"
	"testing"

	"github.com/allena90/plantsim/pkg/errors"
)

func TestUnitConvertTo(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		from  Unit
		to    Unit
		want  float64
	}{
		{"meter to foot", 1, Meter, Foot, 1 / 0.3048},
		{"mile to kilometer", 1, Mile, Meter.WithPrefix(Kilo), 1.609344},
		{"hour to second", 2, Hour, Second, 7200},
		{"bar to pascal", 1, Bar, Pascal, 1e5},
		{"atmosphere to psi", 1, Atmosphere, PSI, 14.695948775},
		{"calorie to joule", 1, Calorie, Joule, 4.184},
		{"pound to kilogram", 1, Pound, Kilogram, 0.45359237},
		{"celsius to kelvin", 0, Celsius, Kelvin, 273.15},
		{"boiling celsius to fahrenheit", 100, Celsius, Fahrenheit, 212},
		{"minus forty crossover", -40, Fahrenheit, Celsius, -40},
		{"fahrenheit to rankine", 32, Fahrenheit, Rankine, 491.67},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.from.ConvertTo(tt.value, tt.to)
			if err != nil {
				t.Fatalf("ConvertTo: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("ConvertTo(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestUnitConvertRoundTrip(t *testing.T) {
	pairs := []struct {
		name string
		a, b Unit
	}{
		{"meter/foot", Meter, Foot},
		{"kelvin/fahrenheit", Kelvin, Fahrenheit},
		{"pascal/psi", Pascal, PSI},
		{"joule/btu", Joule, BTU},
	}
	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			const start = 123.456
			mid, err := tt.a.ConvertTo(start, tt.b)
			if err != nil {
				t.Fatalf("forward: %v", err)
			}
			back, err := tt.b.ConvertTo(mid, tt.a)
			if err != nil {
				t.Fatalf("back: %v", err)
			}
			if math.Abs(back-start) > 1e-9 {
				t.Errorf("round trip = %v, want %v", back, start)
			}
		})
	}
}

func TestUnitConvertDimensionMismatch(t *testing.T) {
	_, err := Meter.ConvertTo(1, Second)
	if !errors.Is(err, errors.ErrCodeDimensionMismatch) {
		t.Errorf("got %v, want DIMENSION_MISMATCH", err)
	}
}

func TestUnitWithPrefix(t *testing.T) {
	km := Meter.WithPrefix(Kilo)
	if km.Name != "kilometer" || km.Symbol != "km" {
		t.Errorf("got %q/%q, want kilometer/km", km.Name, km.Symbol)
	}
	if km.Scale != 1000 {
		t.Errorf("Scale = %v, want 1000", km.Scale)
	}
	if km.Dimension != Length {
		t.Errorf("Dimension = %v, want %v", km.Dimension, Length)
	}

	// Prefix scaling is exact on the SI value.
	mg := Gram.WithPrefix(Milli)
	if got := mg.ToSI(1); math.Abs(got-1e-6) > 1e-20 {
		t.Errorf("1 mg = %v kg, want 1e-6", got)
	}

	kib := Byte.WithPrefix(Kibi)
	if got := kib.ToSI(1); got != 8192 {
		t.Errorf("1 KiB = %v bit, want 8192", got)
	}
}

func TestUnitComposition(t *testing.T) {
	mps, err := Meter.Div(Second)
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	if mps.Dimension != Velocity {
		t.Errorf("Dimension = %v, want %v", mps.Dimension, Velocity)
	}
	if mps.Symbol != "m/s" {
		t.Errorf("Symbol = %q, want %q", mps.Symbol, "m/s")
	}

	nm, err := Newton.Mul(Meter)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	if nm.Dimension != Energy {
		t.Errorf("N·m dimension = %v, want %v", nm.Dimension, Energy)
	}
	if !nm.Equal(Joule) {
		t.Errorf("N·m should equal J numerically")
	}

	m2, err := Meter.Pow(2)
	if err != nil {
		t.Fatalf("Pow: %v", err)
	}
	if m2.Dimension != Area || m2.Scale != 1 {
		t.Errorf("m^2 = %+v", m2)
	}
}

func TestUnitOffsetComposition(t *testing.T) {
	if _, err := Celsius.Mul(Meter); !errors.Is(err, errors.ErrCodeOffsetComposition) {
		t.Errorf("Celsius.Mul: got %v, want OFFSET_COMPOSITION", err)
	}
	if _, err := Meter.Div(Fahrenheit); !errors.Is(err, errors.ErrCodeOffsetComposition) {
		t.Errorf("Div by Fahrenheit: got %v, want OFFSET_COMPOSITION", err)
	}
	if _, err := Celsius.Pow(2); !errors.Is(err, errors.ErrCodeOffsetComposition) {
		t.Errorf("Celsius.Pow(2): got %v, want OFFSET_COMPOSITION", err)
	}
	// Pow(1) is the identity and keeps the offset.
	u, err := Celsius.Pow(1)
	if err != nil {
		t.Fatalf("Celsius.Pow(1): %v", err)
	}
	if u != Celsius {
		t.Errorf("Pow(1) = %+v, want Celsius unchanged", u)
	}
	// Rankine has no offset and composes freely.
	if _, err := Rankine.Mul(Meter); err != nil {
		t.Errorf("Rankine.Mul: %v", err)
	}
}

func TestUnitEqualIgnoresNames(t *testing.T) {
	fts, err := Foot.Mul(Second)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	back, err := fts.Div(Second)
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	if !back.Equal(Foot) {
		t.Errorf("ft·s/s should equal ft; got %+v", back)
	}
	if back.Name == Foot.Name {
		t.Errorf("composed name should differ from %q", Foot.Name)
	}
}

func TestUnitValidate(t *testing.T) {
	tests := []struct {
		name string
		unit Unit
	}{
		{"empty name", Unit{Symbol: "x", Scale: 1}},
		{"empty symbol", Unit{Name: "x", Scale: 1}},
		{"zero scale", Unit{Name: "x", Symbol: "x", Scale: 0}},
		{"negative scale", Unit{Name: "x", Symbol: "x", Scale: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.unit.Validate(); !errors.Is(err, errors.ErrCodeInvalidUnit) {
				t.Errorf("got %v, want INVALID_UNIT", err)
			}
		})
	}
	if _, err := New("cubit", "cbt", Length, 0.4572); err != nil {
		t.Errorf("valid unit rejected: %v", err)
	}
}
