package component

import (
	"testing"

	"github.com/allena90/plantsim/pkg/errors"
)

func TestDefaultLibraryLookup(t *testing.T) {
	lib := DefaultLibrary()

	tests := []struct {
		identifier string
		wantName   string
	}{
		{"Water", "Water"},
		{"water", "Water"},
		{"H2O", "Water"},
		{"h2o", "Water"},
		{"methane", "Methane"},
		{"CH4", "Methane"},
		{"n-butane", "n-Butane"},
		{"carbon dioxide", "Carbon Dioxide"},
	}
	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			c, err := lib.Get(tt.identifier)
			if err != nil {
				t.Fatalf("Get(%q): %v", tt.identifier, err)
			}
			if c.Name != tt.wantName {
				t.Errorf("Get(%q) = %q, want %q", tt.identifier, c.Name, tt.wantName)
			}
		})
	}

	if _, err := lib.Get("unobtainium"); !errors.Is(err, errors.ErrCodeInvalidComponent) {
		t.Errorf("got %v, want INVALID_COMPONENT", err)
	}
	if lib.Len() < 8 {
		t.Errorf("Len() = %d, want at least 8 built-ins", lib.Len())
	}
}

func TestLibraryAdd(t *testing.T) {
	lib := NewLibrary()
	ammonia := Component{Name: "Ammonia", Formula: "NH3", MolecularWeight: 17.031}
	if err := lib.Add(ammonia); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !lib.Contains("nh3") {
		t.Error("Contains(nh3) = false")
	}

	if err := lib.Add(ammonia); !errors.Is(err, errors.ErrCodeInvalidLibrary) {
		t.Errorf("duplicate: got %v, want INVALID_LIBRARY", err)
	}
	if err := lib.Add(Component{Name: "Broken"}); !errors.Is(err, errors.ErrCodeInvalidComponent) {
		t.Errorf("invalid: got %v, want INVALID_COMPONENT", err)
	}
}

func TestLibraryNamesSorted(t *testing.T) {
	lib := DefaultLibrary()
	names := lib.Names()
	if len(names) != lib.Len() {
		t.Fatalf("Names() returned %d, Len() = %d", len(names), lib.Len())
	}
	for i := 1; i < len(names); i++ {
		if names[i] < names[i-1] {
			t.Errorf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestParseLibrary(t *testing.T) {
	data := []byte(`
[[component]]
name = "Ammonia"
formula = "NH3"
cas_number = "7664-41-7"
molecular_weight = 17.031
critical_temperature = 405.4
critical_pressure = 11.333e6
acentric_factor = 0.257
normal_boiling_point = 239.82
phase_at_stp = "gas"

[component.antoine]
a = 9.48854
b = 926.133
c = -32.98
tmin = 164.0
tmax = 239.6

[component.cp_ideal_gas]
a = 27310.0
b = 23.83
c = 0.01707
d = -1.185e-5

[[component]]
name = "Argon"
formula = "Ar"
molecular_weight = 39.948
`)

	lib, err := ParseLibrary(data)
	if err != nil {
		t.Fatalf("ParseLibrary: %v", err)
	}
	if lib.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", lib.Len())
	}

	nh3, err := lib.Get("ammonia")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if nh3.Antoine == nil || nh3.Antoine.B != 926.133 {
		t.Errorf("Antoine = %+v", nh3.Antoine)
	}
	if nh3.CpIdealGas == nil || nh3.CpIdealGas.A != 27310.0 {
		t.Errorf("CpIdealGas = %+v", nh3.CpIdealGas)
	}

	ar, err := lib.Get("Ar")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ar.Antoine != nil {
		t.Errorf("Argon should have no Antoine data, got %+v", ar.Antoine)
	}
}

func TestParseLibraryErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty file", ""},
		{"not toml", "{{{{"},
		{"invalid component", "[[component]]\nname = \"X\"\n"},
		{"duplicate component", "[[component]]\nname = \"X\"\nformula = \"X2\"\nmolecular_weight = 1.0\n[[component]]\nname = \"X\"\nformula = \"X2\"\nmolecular_weight = 1.0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLibrary([]byte(tt.data)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
