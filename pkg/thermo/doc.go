// Package thermo implements thermodynamic models for phase behavior:
// equations of state, Raoult's law vapor-liquid equilibrium, and
// isothermal flash calculations.
//
// # Equations of State
//
// [IdealGas], [VanDerWaals], and [RedlichKwong] compute molar volumes and
// compressibility factors for pure components. The cubic models derive
// their parameters from critical properties and solve the volume cubic
// analytically; the requested [Phase] picks the largest (vapor) or
// smallest (liquid) physical root, and a NO_EOS_ROOT error reports states
// where no root exceeds the covolume.
//
// # Vapor-Liquid Equilibrium
//
// [KValues] computes Raoult's law distribution coefficients
// K_i = Psat_i/P from Antoine vapor pressures, substituting K = 1 for
// components without data and collecting range diagnostics as values
// instead of logging. [BubblePointPressure] and [DewPointPressure] bound
// the two-phase pressure window at a temperature.
//
// # Flash
//
// [IsothermalFlash] solves the Rachford-Rice equation by Newton-Raphson
// to split a feed into equilibrium vapor and liquid at fixed T and P.
// Single-phase feeds (all K on one side of 1) short-circuit without
// iterating. The [FlashResult] reports the vapor fraction, both phase
// compositions, K-values, convergence state, and any Antoine range
// warnings raised along the way.
//
// All temperatures are in K, pressures in Pa, and molar volumes in
// m³/kmol with R = 8314.462 J/(kmol·K).
package thermo
