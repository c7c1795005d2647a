package thermo

import (
	"math"

	"github.com/allena90/plantsim/pkg/component"
	"github.com/allena90/plantsim/pkg/errors"
)

const (
	// DefaultMaxIterations bounds the Newton-Raphson loop in
	// [IsothermalFlash].
	DefaultMaxIterations = 100
	// DefaultTolerance is the Rachford-Rice residual below which the
	// flash is considered converged.
	DefaultTolerance = 1e-6

	// derivativeFloor aborts the Newton iteration when the Rachford-Rice
	// derivative is too flat for a stable step.
	derivativeFloor = 1e-10

	feedTolerance = 1e-6
)

// FlashOptions tunes the Rachford-Rice iteration. The zero value selects
// [DefaultMaxIterations] and [DefaultTolerance].
type FlashOptions struct {
	MaxIterations int
	Tolerance     float64
}

func (o FlashOptions) withDefaults() FlashOptions {
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	return o
}

// FlashResult holds the outcome of an isothermal flash: the split between
// phases and the equilibrium compositions. A single-phase feed converges
// immediately with vapor fraction 0 or 1 and an empty composition map for
// the absent phase.
type FlashResult struct {
	Temperature   float64 // K
	Pressure      float64 // Pa
	VaporFraction float64 // mol vapor per mol feed, in [0, 1]

	VaporComposition  map[string]float64
	LiquidComposition map[string]float64
	KValues           map[string]float64

	Converged  bool
	Iterations int

	// Warnings collects Antoine range diagnostics raised while
	// evaluating K-values.
	Warnings []component.RangeWarning
}

// IsothermalFlash splits a feed of known composition into vapor and
// liquid at fixed temperature and pressure, solving the Rachford-Rice
// equation
//
//	f(V) = Σ z_i(K_i-1)/(1 + V(K_i-1)) = 0
//
// by Newton-Raphson from V = 0.5 with steps clamped to [0, 1]. K-values
// come from Raoult's law; a feed whose K-values all sit on one side of 1
// short-circuits to a single-phase result without iterating.
func IsothermalFlash(temperatureK, pressurePa float64, feed map[string]float64, comps map[string]component.Component, opts FlashOptions) (FlashResult, error) {
	opts = opts.withDefaults()
	if err := checkState(temperatureK, pressurePa); err != nil {
		return FlashResult{}, err
	}
	if err := validateFeed(feed, comps); err != nil {
		return FlashResult{}, err
	}

	k, warnings, err := KValues(temperatureK, pressurePa, comps)
	if err != nil {
		return FlashResult{}, err
	}

	kMin, kMax := math.Inf(1), math.Inf(-1)
	for _, ki := range k {
		kMin = math.Min(kMin, ki)
		kMax = math.Max(kMax, ki)
	}

	result := FlashResult{
		Temperature: temperatureK,
		Pressure:    pressurePa,
		KValues:     k,
		Warnings:    warnings,
	}

	// Subcooled liquid: nothing can vaporize.
	if kMax <= 1.0 {
		result.VaporFraction = 0.0
		result.VaporComposition = map[string]float64{}
		result.LiquidComposition = copyFractions(feed)
		result.Converged = true
		return result, nil
	}
	// Superheated vapor: nothing can condense.
	if kMin >= 1.0 {
		result.VaporFraction = 1.0
		result.VaporComposition = copyFractions(feed)
		result.LiquidComposition = map[string]float64{}
		result.Converged = true
		return result, nil
	}

	rachfordRice := func(v float64) float64 {
		f := 0.0
		for name, z := range feed {
			ki := k[name]
			f += z * (ki - 1) / (1 + v*(ki-1))
		}
		return f
	}
	derivative := func(v float64) float64 {
		df := 0.0
		for name, z := range feed {
			ki := k[name]
			den := 1 + v*(ki-1)
			df -= z * (ki - 1) * (ki - 1) / (den * den)
		}
		return df
	}

	v := 0.5
	converged := false
	iterations := 0
	for i := 0; i < opts.MaxIterations; i++ {
		iterations = i + 1
		f := rachfordRice(v)
		if math.Abs(f) < opts.Tolerance {
			converged = true
			break
		}
		df := derivative(v)
		if math.Abs(df) < derivativeFloor {
			break
		}
		v = clamp01(v - f/df)
	}

	vapor := make(map[string]float64, len(feed))
	liquid := make(map[string]float64, len(feed))
	for name, z := range feed {
		ki := k[name]
		x := z / (1 + v*(ki-1))
		liquid[name] = x
		vapor[name] = ki * x
	}

	result.VaporFraction = v
	result.VaporComposition = vapor
	result.LiquidComposition = liquid
	result.Converged = converged
	result.Iterations = iterations
	return result, nil
}

func validateFeed(feed map[string]float64, comps map[string]component.Component) error {
	if len(feed) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "feed composition is empty")
	}
	total := 0.0
	for name, z := range feed {
		if z < 0 {
			return errors.New(errors.ErrCodeInvalidInput,
				"feed fraction for %q must not be negative, got %g", name, z)
		}
		if _, ok := comps[name]; !ok {
			return errors.New(errors.ErrCodeInvalidInput,
				"feed names unknown component %q", name)
		}
		total += z
	}
	if math.Abs(total-1.0) > feedTolerance {
		return errors.New(errors.ErrCodeInvalidInput,
			"feed fractions must sum to 1, got %g", total)
	}
	return nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func copyFractions(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
