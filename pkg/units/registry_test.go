package units

import (
	"math"
	"testing"

	"github.com/allena90/plantsim/pkg/errors"
)

func TestRegistryGet(t *testing.T) {
	reg := NewRegistry()
	tests := []struct {
		name       string
		identifier string
		want       Unit
	}{
		{"symbol exact", "m", Meter},
		{"name lowercase", "meter", Meter},
		{"name mixed case", "Meter", Meter},
		{"name uppercase", "KELVIN", Kelvin},
		{"affine symbol", "°C", Celsius},
		{"multiword name", "us gallon", GallonUS},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.Get(tt.identifier)
			if err != nil {
				t.Fatalf("Get(%q): %v", tt.identifier, err)
			}
			if got != tt.want {
				t.Errorf("Get(%q) = %v, want %v", tt.identifier, got.Name, tt.want.Name)
			}
		})
	}
}

func TestRegistrySymbolsAreCaseSensitive(t *testing.T) {
	reg := NewRegistry()
	// "K" is kelvin's symbol; "k" matches no symbol and no name.
	if _, err := reg.Get("K"); err != nil {
		t.Errorf("Get(K): %v", err)
	}
	if _, err := reg.Get("k"); !errors.Is(err, errors.ErrCodeUnitNotFound) {
		t.Errorf("Get(k): got %v, want UNIT_NOT_FOUND", err)
	}
}

func TestRegistryGetNotFound(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Get("flurble")
	if !errors.Is(err, errors.ErrCodeUnitNotFound) {
		t.Errorf("got %v, want UNIT_NOT_FOUND", err)
	}
	if reg.Contains("flurble") {
		t.Error("Contains(flurble) = true")
	}
	if !reg.Contains("Pa") {
		t.Error("Contains(Pa) = false")
	}
}

func TestRegistryConvert(t *testing.T) {
	reg := NewRegistry()

	got, err := reg.Convert(25, "°C", "K")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if math.Abs(got-298.15) > 1e-9 {
		t.Errorf("25°C = %v K, want 298.15", got)
	}

	got, err = reg.Convert(1, "atm", "Pa")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got != 101325 {
		t.Errorf("1 atm = %v Pa, want 101325", got)
	}

	if _, err := reg.Convert(1, "m", "s"); !errors.Is(err, errors.ErrCodeDimensionMismatch) {
		t.Errorf("got %v, want DIMENSION_MISMATCH", err)
	}
	if _, err := reg.Convert(1, "m", "flurble"); !errors.Is(err, errors.ErrCodeUnitNotFound) {
		t.Errorf("got %v, want UNIT_NOT_FOUND", err)
	}
}

func TestRegistryQuantity(t *testing.T) {
	reg := NewRegistry()
	q, err := reg.Quantity(350, "K")
	if err != nil {
		t.Fatalf("Quantity: %v", err)
	}
	if q.Unit != Kelvin || q.Value != 350 {
		t.Errorf("Quantity = %v", q)
	}
	if _, err := reg.Quantity(1, "nope"); !errors.Is(err, errors.ErrCodeUnitNotFound) {
		t.Errorf("got %v, want UNIT_NOT_FOUND", err)
	}
}

func TestRegistryUnitsFor(t *testing.T) {
	reg := NewRegistry()
	pressures := reg.UnitsFor(Pressure)
	if len(pressures) < 5 {
		t.Fatalf("got %d pressure units, want at least 5", len(pressures))
	}
	for i := 1; i < len(pressures); i++ {
		if pressures[i].Scale < pressures[i-1].Scale {
			t.Errorf("units not sorted by scale: %v before %v",
				pressures[i-1].Name, pressures[i].Name)
		}
	}
	for _, u := range pressures {
		if u.Dimension != Pressure {
			t.Errorf("unit %v has dimension %v", u.Name, u.Dimension)
		}
	}

	if got := reg.UnitsFor(Dimension{Length: 7}); len(got) != 0 {
		t.Errorf("unexpected units for L^7: %v", got)
	}
}

func TestRegistryRegister(t *testing.T) {
	reg := NewEmptyRegistry()
	cubit, err := New("cubit", "cbt", Length, 0.4572)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := reg.Register(cubit); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if got, err := reg.Get("cbt"); err != nil || got != cubit {
		t.Errorf("Get(cbt) = %v, %v", got, err)
	}

	// Duplicate symbol rejected.
	dup := Unit{Name: "other cubit", Symbol: "cbt", Dimension: Length, Scale: 0.5}
	if err := reg.Register(dup); !errors.Is(err, errors.ErrCodeInvalidUnit) {
		t.Errorf("duplicate symbol: got %v, want INVALID_UNIT", err)
	}

	// Invalid unit rejected.
	if err := reg.Register(Unit{Symbol: "x", Scale: 1}); !errors.Is(err, errors.ErrCodeInvalidUnit) {
		t.Errorf("invalid unit: got %v, want INVALID_UNIT", err)
	}
}

func TestRegistryCatalogSize(t *testing.T) {
	reg := NewRegistry()
	if reg.Len() < 120 {
		t.Errorf("catalog has %d units, want at least 120", reg.Len())
	}
	if got := len(reg.All()); got != reg.Len() {
		t.Errorf("All() returned %d units, Len() = %d", got, reg.Len())
	}
}
