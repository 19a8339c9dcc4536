package lgamma

import (
	"math"

	"github.com/katalvlaran/lvlmath/mathconst"
)

// tableSize is the number of precomputed ln(n!) entries.
const tableSize = 200

// Stirling series correction terms: 1/12, 1/360, 1/1260.
const (
	stirlingA1 = 0.08333333333333333
	stirlingA2 = 0.002777777777777778
	stirlingA3 = 0.0007936507936507937
)

// Coefficients of the degree-4/4 rational fit on [4, 12].
const (
	highP0 = -2.12159572323e+05
	highP1 = 2.30661510616e+05
	highP2 = 2.74647644705e+04
	highP3 = -4.02621119975e+04
	highP4 = -2.29660729780e+03
	highQ0 = -1.16328495004e+05
	highQ1 = -1.46025937511e+05
	highQ2 = -2.42357409629e+04
	highQ3 = -5.70691009324e+02
)

// Coefficients of the (z−2)-scaled fit on (1.5, 4).
const (
	midP0 = -7.83359299449e+01
	midP1 = -1.42046296688e+02
	midP2 = 1.37519416416e+02
	midP3 = 7.86994924154e+01
	midP4 = 4.16438922228
	midQ0 = 4.70668766060e+01
	midQ1 = 3.13399215894e+02
	midQ2 = 2.63505074721e+02
	midQ3 = 4.33400022514e+01
)

// Coefficients of the (z−1)-scaled fit on [0.5, 1.5], also used shifted
// to z+1 for arguments below 0.5.
const (
	lowP0 = -2.66685511495
	lowP1 = -2.44387534237e+01
	lowP2 = -2.19698958928e+01
	lowP3 = 1.11667541262e+01
	lowP4 = 3.13060547623
	lowQ0 = 6.07771387771e-01
	lowQ1 = 1.19400905721e+01
	lowQ2 = 3.14690115749e+01
	lowQ3 = 1.52346874070e+01
)

// Lgamma returns ln Γ(z) for z > 0.
//
// Exact positive integers up to 200 hit the log-factorial table; larger
// arguments use Stirling's expansion and everything in between goes through
// one of three rational Chebyshev fits. Arguments at or below the smallest
// normal float64 return the MaxExp saturating sentinel rather than +Inf.
// Behavior for z <= 0 is undefined.
func Lgamma(z float64) float64 {
	if z <= tableSize && z == math.Trunc(z) && z > 0 {
		return logFactorial[int(z)-1]
	}

	switch {
	case z > 12:
		z2 := z * z
		out := (z-0.5)*math.Log(z) - z + mathconst.LogSqrt2Pi
		out += stirlingA1/z - stirlingA2/(z2*z) + stirlingA3/(z2*z2*z)

		return out

	case z >= 4:
		return ((((highP4*z+highP3)*z+highP2)*z+highP1)*z + highP0) /
			((((z+highQ3)*z+highQ2)*z+highQ1)*z + highQ0)

	case z > 1.5:
		return (z - 2) * ((((midP4*z+midP3)*z+midP2)*z+midP1)*z + midP0) /
			((((z+midQ3)*z+midQ2)*z+midQ1)*z + midQ0)

	case z >= 0.5:
		return (z - 1) * ((((lowP4*z+lowP3)*z+lowP2)*z+lowP1)*z + lowP0) /
			((((z+lowQ3)*z+lowQ2)*z+lowQ1)*z + lowQ0)

	case z > mathconst.Epsilon:
		// Evaluate the fit one recurrence step up, where it is valid.
		x := z + 1

		return z*((((lowP4*x+lowP3)*x+lowP2)*x+lowP1)*x+lowP0)/
			((((x+lowQ3)*x+lowQ2)*x+lowQ1)*x+lowQ0) - math.Log(z)

	case z > mathconst.MinNormal:
		return -math.Log(z)

	default:
		return mathconst.MaxExp
	}
}

// LogFactorial returns ln(n!) for n in [0, 199] straight from the lookup
// table. It panics for n outside the table range.
func LogFactorial(n int) float64 {
	if n < 0 || n >= tableSize {
		panic("lgamma: LogFactorial argument out of table range [0, 199]")
	}

	return logFactorial[n]
}
