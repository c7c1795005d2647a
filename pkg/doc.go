// Package pkg provides the core libraries for plantsim process calculations.
//
// # Overview
//
// Plantsim is a toolkit for the everyday calculations of chemical process
// engineering: dimensional analysis, unit conversion, physical property
// estimation, and vapor-liquid equilibrium. The pkg directory is organized
// into five main areas:
//
//  1. [units] - Dimensional analysis (dimensions, units, quantities, registry)
//  2. [component] - Pure-component property data and correlations
//  3. [stream] - Process streams (composition, balances, mixing, splitting)
//  4. [thermo] - Thermodynamics (equations of state, K-values, flash)
//  5. [errors] - Structured error codes shared by every package
//
// # Architecture
//
// The typical data flow through a plantsim calculation:
//
//	Component Library (built-in or TOML)
//	         ↓
//	    [component] package (Antoine, Cp, critical properties)
//	         ↓
//	    [stream] package (feed composition and balances)
//	         ↓
//	    [thermo] package (K-values, Rachford-Rice flash, EOS)
//	         ↓
//	    Phase split + compositions (+ range warnings)
//
// The [units] package stands alongside this flow: any raw float64 in SI can
// be wrapped in a [units.Quantity] for checked arithmetic and conversion.
//
// # Quick Start
//
// Flash a water/methane feed at fixed temperature and pressure:
//
//	import (
//	    "github.com/allena90/plantsim/pkg/component"
//	    "github.com/allena90/plantsim/pkg/thermo"
//	)
//
//	// 1. Look up components
//	lib := component.DefaultLibrary()
//	water, _ := lib.Get("water")
//	methane, _ := lib.Get("methane")
//
//	// 2. Define the feed
//	feed := map[string]float64{"Water": 0.5, "Methane": 0.5}
//	comps := map[string]component.Component{"Water": water, "Methane": methane}
//
//	// 3. Solve the flash
//	res, _ := thermo.IsothermalFlash(320, 5e5, feed, comps, thermo.FlashOptions{})
//	fmt.Printf("vapor fraction %.4f\n", res.VaporFraction)
//
// # Main Packages
//
// [units] - Dimensional analysis built on exponent vectors over the SI base
// dimensions plus angle, solid angle, and information. Units are affine
// (scale and offset, so °C and °F work), quantities carry a value and a
// unit, and a [units.Registry] resolves symbols and names against a catalog
// of more than 160 predefined units.
//
// [component] - Pure-component data: molecular weight, critical properties,
// Antoine vapor pressure, ideal-gas heat capacity polynomials. A
// [component.Library] resolves names and formulas case-insensitively and
// can be loaded from TOML files of [[component]] tables.
//
// [stream] - Immutable process streams with molar composition, temperature,
// pressure, and flow. Derived quantities (molecular weight, mass flow,
// mass fractions, ideal-gas density and enthalpy) plus Mix and Split
// operations that conserve material.
//
// [thermo] - Vapor-liquid equilibrium and equations of state. Raoult's-law
// K-values, bubble and dew point pressures, the Rachford-Rice isothermal
// flash, and cubic equations of state (van der Waals, Redlich-Kwong)
// solved analytically.
//
// [errors] - Structured errors with stable string codes (INVALID_INPUT,
// DIMENSION_MISMATCH, OFFSET_COMPOSITION, NO_EOS_ROOT, ...) so callers
// can branch on failure class without matching message text.
//
// [buildinfo] - Version metadata injected at build time via ldflags.
//
// # Common Workflows
//
// Convert between units through the registry:
//
//	reg := units.NewRegistry()
//	bar, _ := reg.Convert(101325, "Pa", "bar")
//
// Check a correlation's fitted range:
//
//	if w, ok := water.AntoineRangeWarning(450); ok {
//	    fmt.Printf("%s evaluated outside %g-%g K\n", w.Component, w.TMin, w.TMax)
//	}
//
// Split a stream into two branches:
//
//	portion, remainder, _ := s.Split(0.3)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/thermo/...     # Specific package
//	go test -run Example         # Examples only
//
// [units]: https://pkg.go.dev/github.com/allena90/plantsim/pkg/units
// [component]: https://pkg.go.dev/github.com/allena90/plantsim/pkg/component
// [stream]: https://pkg.go.dev/github.com/allena90/plantsim/pkg/stream
// [thermo]: https://pkg.go.dev/github.com/allena90/plantsim/pkg/thermo
// [errors]: https://pkg.go.dev/github.com/allena90/plantsim/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/allena90/plantsim/pkg/buildinfo
package pkg
