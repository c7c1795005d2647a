// Package units provides dimensional analysis for engineering
// calculations: physical dimensions, units of measure, and quantities
// that carry their unit through arithmetic.
//
// # Overview
//
// A [Dimension] is a vector of integer exponents over ten orthogonal base
// axes (length, mass, time, temperature, amount, current, luminosity,
// plane angle, solid angle, information). Dimensions compose under
// [Dimension.Mul], [Dimension.Div], and [Dimension.Pow], and two
// dimensions are equal exactly when their exponent vectors match, so
// pressure and energy density compare equal by construction.
//
// A [Unit] maps raw values onto the SI scale through an affine transform
// si = raw*Scale + Offset. Offsets exist only for temperature scales such
// as [Celsius]; composing offset-bearing units is rejected with an
// OFFSET_COMPOSITION error rather than silently dropping the offset.
//
// A [Quantity] pairs a value with a unit. Arithmetic checks dimensions
// ([Quantity.Add] of a length and a time fails with DIMENSION_MISMATCH),
// composes units on multiplication and division, and compares by
// SI-equivalent value so 1000 g equals 1 kg.
//
// # Basic Usage
//
// Work directly with the predefined catalog units, or resolve them by
// identifier through a [Registry]:
//
//	d := units.Q(100, units.Meter)
//	t := units.Q(9.58, units.Second)
//	v, _ := d.Div(t) // ~10.44 m/s
//
//	reg := units.NewRegistry()
//	kelvin, _ := reg.Convert(25, "°C", "K") // 298.15
//
// # Registry
//
// [NewRegistry] seeds a registry with the full predefined catalog.
// [Registry.Get] resolves symbols exactly and case-sensitively first, then
// falls back to case-insensitive full names, so both "m" and "Meter"
// resolve to [Meter]. Registries are explicit values: construct one and
// pass it where lookups are needed.
//
// # Prefixes
//
// [Unit.WithPrefix] derives scaled units from SI decimal or IEC binary
// prefixes: units.Meter.WithPrefix(units.Kilo) is the kilometer.
//
// # Concurrency
//
// Dimension, Unit, Prefix, and Quantity are immutable values and safe to
// share. A Registry is safe for concurrent reads once construction and
// all [Registry.Register] calls have completed.
package units
