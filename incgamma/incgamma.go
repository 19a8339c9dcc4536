package incgamma

import (
	"math"

	"github.com/katalvlaran/lvlmath/erfc"
	"github.com/katalvlaran/lvlmath/lgamma"
	"github.com/katalvlaran/lvlmath/mathconst"
)

// seriesCutoff bounds the integer / half-integer shapes served by the
// terminating-series fast paths.
const seriesCutoff = 30

// UpperIncomplete returns the upper incomplete gamma function for the pair
// (p, x), with p > 0 and x >= 0.
//
// With normalized=true the result is the regularized form Q(p, x) in [0,1];
// otherwise it is the raw Γ(p, x) >= 0. Intermediate exponent arguments are
// clamped to ±mathconst.MaxExp, so extreme pairs saturate to finite,
// directionally correct values instead of overflowing.
func UpperIncomplete(p, x float64, normalized bool) float64 {
	if normalized && p < seriesCutoff {
		pInt := math.Trunc(p)

		if p == pInt {
			// Q(p, x) = exp(-x) * sum_{k<p} x^k/k!, at most p terms.
			sum, r := 1.0, 1.0
			for k := 1.0; k < pInt; k++ {
				r *= x / k
				sum += r
			}

			return math.Exp(-x) * sum
		}

		if p == pInt+0.5 {
			if x == 0 {
				return 1
			}

			sqrtX := math.Sqrt(x)
			sum, r := 0.0, 1.0
			for k := 1.0; k < pInt+1; k++ {
				r *= x / (k - 0.5)
				sum += r
			}

			return erfc.Erfc(sqrtX) + math.Exp(-x)*mathconst.InvSqrtPi*sum/sqrtX
		}
	}

	return upperGeneral(p, x, normalized)
}

// upperGeneral evaluates Γ(p, x) or Q(p, x) through the continued-fraction
// path, regardless of whether a terminating series exists for p.
func upperGeneral(p, x float64, normalized bool) float64 {
	xSmaller := p >= x
	var f float64
	if xSmaller {
		f = confluentXSmaller(p, x)
	} else {
		f = confluentPSmaller(p, x)
	}

	if normalized {
		out := f * math.Exp(-x+p*math.Log(x)-lgamma.Lgamma(p))
		if xSmaller {
			// The x-smaller fraction yields the complement of Q.
			return 1 - out
		}

		return out
	}

	if xSmaller {
		lgam := lgamma.Lgamma(p)

		expLgam := math.Exp(math.Min(lgam, mathconst.MaxExp))
		arg := -x + p*math.Log(x) - lgam
		arg = math.Min(math.Max(arg, -mathconst.MaxExp), mathconst.MaxExp)

		return (1 - f*math.Exp(arg)) * expLgam
	}

	arg := -x + p*math.Log(x)

	return f * math.Exp(math.Min(arg, mathconst.MaxExp))
}

// LowerRegularized returns the regularized lower incomplete gamma function
// P(p, x) = 1 − Q(p, x), the complement of UpperIncomplete's normalized
// form.
func LowerRegularized(p, x float64) float64 {
	return 1 - UpperIncomplete(p, x, true)
}
