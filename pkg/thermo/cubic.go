package thermo

import "math"

// solveCubic returns the real roots of x³ + c2·x² + c1·x + c0 = 0 using
// the closed-form Cardano/trigonometric solution. One or three real roots
// come back unsorted; a repeated root appears once per distinct value.
func solveCubic(c2, c1, c0 float64) []float64 {
	// Depressed cubic t³ + pt + q = 0 via x = t - c2/3.
	shift := c2 / 3
	p := c1 - c2*c2/3
	q := 2*c2*c2*c2/27 - c2*c1/3 + c0

	disc := q*q/4 + p*p*p/27

	switch {
	case disc > 0:
		// One real root.
		sq := math.Sqrt(disc)
		t := math.Cbrt(-q/2+sq) + math.Cbrt(-q/2-sq)
		return []float64{t - shift}
	case disc == 0:
		// Repeated roots.
		if q == 0 {
			return []float64{-shift}
		}
		u := math.Cbrt(-q / 2)
		return []float64{2*u - shift, -u - shift}
	default:
		// Three distinct real roots (trigonometric form, p < 0 here).
		// The acos argument is clamped: rounding can push it just past
		// ±1 for near-repeated roots.
		m := 2 * math.Sqrt(-p/3)
		arg := 3 * q / (p * m)
		if arg > 1 {
			arg = 1
		} else if arg < -1 {
			arg = -1
		}
		theta := math.Acos(arg)
		roots := make([]float64, 0, 3)
		for k := 0; k < 3; k++ {
			t := m * math.Cos(theta/3-2*math.Pi*float64(k)/3)
			roots = append(roots, t-shift)
		}
		return roots
	}
}
