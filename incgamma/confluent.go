package incgamma

import (
	"math"

	"github.com/katalvlaran/lvlmath/mathconst"
)

// Continued-fraction evaluation limits, shared by both regimes. The cap and
// tolerance are the reference algorithm's empirical choices; exceeding the
// cap yields the last partial ratio rather than an error.
const (
	// MaxTerms bounds the number of continued-fraction terms evaluated.
	MaxTerms = 100

	// ConvergenceTol is the stop threshold on the per-step multiplicative
	// update |cₙ·dₙ − 1| of the Modified Lentz iteration.
	ConvergenceTol = 1e-7
)

// confluentXSmaller computes the ratio G(p, x) from the continued fraction
// valid for x <= p:
//
//	G(p, x) = a₁/b₁+ a₂/b₂+ …, with a₁ = 1 and for n ≥ 1:
//	a_2n = −(p−1+n)·x, a_(2n+1) = n·x, bₙ = p−1+n.
//
// The b terms reduce to b₁ = p, bₙ = bₙ₋₁ + 1, and with s = x/2 and
// r = −(p−1)·x the a terms collapse to aₙ = s·(n−1) for odd n and
// aₙ = r − s·n for even n, so each step is a couple of multiply-adds.
func confluentXSmaller(p, x float64) float64 {
	a, b := 1.0, p
	r := -(p - 1) * x
	s := 0.5 * x

	f := a / b
	c := a / mathconst.MinNormal
	d := 1 / b

	for n := 2; n < MaxTerms; n++ {
		if n&1 == 1 {
			a = s * float64(n-1)
		} else {
			a = r - s*float64(n)
		}
		b++

		c = b + a/c
		if c < mathconst.MinNormal {
			c = mathconst.MinNormal
		}

		d = a*d + b
		if d < mathconst.MinNormal {
			d = mathconst.MinNormal
		}

		d = 1 / d
		delta := c * d
		f *= delta

		if math.Abs(delta-1) < ConvergenceTol {
			break
		}
	}

	return f
}

// confluentPSmaller computes the ratio G(p, x) from the continued fraction
// valid for x > p:
//
//	G(p, x) = a₁/b₁+ a₂/b₂+ …, with a₁ = 1 and for n > 1:
//	aₙ = −(n−1)·(n−p−1), bₙ = x + 2n − 1 − p.
//
// Rewriting aₙ = (n−1)·(p−(n−1)) lets the counter start at n = 1 with
// a_(n+1) = n·(p−n), and the b terms reduce to b₁ = x−p+1, bₙ = bₙ₋₁ + 2.
func confluentPSmaller(p, x float64) float64 {
	a, b := 1.0, x-p+1

	f := a / b
	c := a / mathconst.MinNormal
	d := 1 / b

	for n := 1; n < MaxTerms; n++ {
		a = float64(n) * (p - float64(n))
		b += 2

		c = b + a/c
		if c < mathconst.MinNormal {
			c = mathconst.MinNormal
		}

		d = a*d + b
		if d < mathconst.MinNormal {
			d = mathconst.MinNormal
		}

		d = 1 / d
		delta := c * d
		f *= delta

		if math.Abs(delta-1) < ConvergenceTol {
			break
		}
	}

	return f
}
