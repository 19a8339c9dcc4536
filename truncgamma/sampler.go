package truncgamma

import "math"

// Sample returns one draw from Gamma(shape=a, rate=b) conditioned on
// exceeding the truncation point t > 0.
//
// Sample validates its arguments and then dispatches on the shape: a
// rejection scheme with an exponential envelope for a > 1, a closed-form
// shift for a == 1 and Philippe's A4 rejection scheme for a < 1. Each
// rejection iteration consumes exactly one exponential and one uniform
// draw from src; the source is left ready for the next call whether or
// not iterations were rejected.
func Sample(src Source, a, b, t float64) (float64, error) {
	if src == nil {
		return 0, ErrNilSource
	}
	if math.IsNaN(a) || a <= 0 {
		return 0, ErrBadShape
	}
	if math.IsNaN(b) || b <= 0 {
		return 0, ErrBadRate
	}
	if math.IsNaN(t) || t <= 0 {
		return 0, ErrBadBound
	}

	return sampleLeftTruncated(src, a, b, t), nil
}

// sampleLeftTruncated is the unchecked three-regime kernel.
func sampleLeftTruncated(src Source, a, b, t float64) float64 {
	switch {
	case a > 1:
		// Dagpunar (1978). Work on the rescaled rate so the target support
		// is (b, ∞), then map the accepted candidate back through t/b.
		b = t * b
		amin1 := a - 1
		bmina := b - a
		c0 := 0.5 * (bmina + math.Sqrt(bmina*bmina+4*b)) / b
		oneMinusC0 := 1 - c0
		logM := amin1 * (math.Log(amin1/oneMinusC0) - 1)

		for {
			x := b + src.Exponential()/c0
			threshold := amin1*math.Log(x) - x*oneMinusC0 - logM
			if math.Log1p(-src.Uniform()) <= threshold {
				return t * (x / b)
			}
		}

	case a == 1:
		// Exponential is memoryless: left truncation is an exact shift.
		return t + src.Exponential()/b

	default:
		// Philippe (1997), algorithm A4.
		amin1 := a - 1
		tb := t * b

		for {
			x := 1 + src.Exponential()/tb
			if math.Log1p(-src.Uniform()) <= amin1*math.Log(x) {
				return t * x
			}
		}
	}
}
