// Package component defines chemical components and their thermodynamic
// property data.
//
// A [Component] carries identification (name, formula, CAS number),
// critical properties, and optional correlations: Antoine vapor pressure
// and an ideal gas heat capacity polynomial. Property methods return a
// MISSING_CORRELATION error when the data they need is absent, and
// [Component.AntoineRangeWarning] reports out-of-range evaluations as a
// structured diagnostic instead of failing.
//
// A [Library] collects components with case-insensitive lookup by name or
// formula. [DefaultLibrary] seeds one with built-in data for common
// compounds (water, light hydrocarbons, nitrogen, carbon dioxide,
// benzene); [LoadLibrary] reads additional components from a TOML file of
// [[component]] tables.
package component
