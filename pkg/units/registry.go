package units

import (
	"sort"
	"strings"

	"github.com/allena90/plantsim/pkg/errors"
)

// Registry resolves unit identifiers to units and groups units by
// dimension. A registry is an explicit dependency: construct one with
// [NewRegistry] and pass it to whatever needs lookups. Lookups are
// read-only after construction, so a registry may be shared across
// goroutines as long as no concurrent Register calls happen.
type Registry struct {
	bySymbol    map[string]Unit
	byName      map[string]Unit
	byDimension map[Dimension][]Unit
}

// NewRegistry builds a registry seeded with the full predefined catalog.
func NewRegistry() *Registry {
	r := &Registry{
		bySymbol:    make(map[string]Unit, len(catalog)),
		byName:      make(map[string]Unit, len(catalog)),
		byDimension: make(map[Dimension][]Unit),
	}
	for _, u := range catalog {
		// The curated catalog has unique symbols and names, so this
		// cannot fail.
		_ = r.Register(u)
	}
	return r
}

// NewEmptyRegistry builds a registry with no units, for callers that want
// full control over the unit set.
func NewEmptyRegistry() *Registry {
	return &Registry{
		bySymbol:    make(map[string]Unit),
		byName:      make(map[string]Unit),
		byDimension: make(map[Dimension][]Unit),
	}
}

// Register adds a unit to the registry. The unit must validate and its
// symbol and name must not collide with an already registered unit;
// violations surface an INVALID_UNIT error.
func (r *Registry) Register(u Unit) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if _, ok := r.bySymbol[u.Symbol]; ok {
		return errors.New(errors.ErrCodeInvalidUnit, "unit symbol %q is already registered", u.Symbol)
	}
	name := strings.ToLower(u.Name)
	if _, ok := r.byName[name]; ok {
		return errors.New(errors.ErrCodeInvalidUnit, "unit name %q is already registered", u.Name)
	}
	r.bySymbol[u.Symbol] = u
	r.byName[name] = u
	r.byDimension[u.Dimension] = append(r.byDimension[u.Dimension], u)
	return nil
}

// Get resolves an identifier to a unit. Symbols match exactly and
// case-sensitively ("m" is meter, "M" is nothing); when no symbol matches,
// the identifier is matched against full unit names case-insensitively
// ("Meter" resolves to meter). Returns a UNIT_NOT_FOUND error when
// neither matches.
func (r *Registry) Get(identifier string) (Unit, error) {
	if u, ok := r.bySymbol[identifier]; ok {
		return u, nil
	}
	if u, ok := r.byName[strings.ToLower(identifier)]; ok {
		return u, nil
	}
	return Unit{}, errors.New(errors.ErrCodeUnitNotFound, "unknown unit %q", identifier)
}

// Contains reports whether an identifier resolves to a registered unit.
func (r *Registry) Contains(identifier string) bool {
	_, err := r.Get(identifier)
	return err == nil
}

// UnitsFor returns all registered units of the given dimension, sorted by
// ascending scale factor and then by name. The returned slice is a copy.
func (r *Registry) UnitsFor(d Dimension) []Unit {
	bucket := r.byDimension[d]
	out := make([]Unit, len(bucket))
	copy(out, bucket)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Scale != out[j].Scale {
			return out[i].Scale < out[j].Scale
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Dimensions returns every dimension with at least one registered unit,
// in no particular order.
func (r *Registry) Dimensions() []Dimension {
	out := make([]Dimension, 0, len(r.byDimension))
	for d := range r.byDimension {
		out = append(out, d)
	}
	return out
}

// Len returns the number of registered units.
func (r *Registry) Len() int {
	return len(r.bySymbol)
}

// All returns every registered unit sorted by name.
func (r *Registry) All() []Unit {
	out := make([]Unit, 0, len(r.bySymbol))
	for _, u := range r.bySymbol {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Quantity constructs a quantity from a value and a unit identifier.
// Returns a UNIT_NOT_FOUND error for unknown identifiers.
func (r *Registry) Quantity(value float64, identifier string) (Quantity, error) {
	u, err := r.Get(identifier)
	if err != nil {
		return Quantity{}, err
	}
	return Q(value, u), nil
}

// Convert converts a value between two units named by identifier. Lookup
// failures surface UNIT_NOT_FOUND; dimensionally incompatible pairs
// surface DIMENSION_MISMATCH.
func (r *Registry) Convert(value float64, fromID, toID string) (float64, error) {
	from, err := r.Get(fromID)
	if err != nil {
		return 0, err
	}
	to, err := r.Get(toID)
	if err != nil {
		return 0, err
	}
	return from.ConvertTo(value, to)
}
