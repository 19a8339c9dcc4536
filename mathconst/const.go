package mathconst

const (
	// Pi2Over8 is π²/8.
	Pi2Over8 = 1.233700550136169

	// LogPiOver2 is ln(π/2).
	LogPiOver2 = 0.4515827052894548

	// LogSqrt2Pi is ln(√(2π)), the additive constant of Stirling's series.
	LogSqrt2Pi = 0.9189385332046727

	// MaxExp is the largest x for which math.Exp(x) is finite, and the
	// saturating sentinel used wherever an exponent argument must stay safe.
	MaxExp = 708.3964202663686

	// InvSqrtPi is 1/√π.
	InvSqrtPi = 0.5641895835477563

	// Epsilon is the double-precision machine epsilon, 2^-52.
	Epsilon = 0x1p-52

	// MinNormal is the smallest positive normal float64, 2^-1022
	// (C's DBL_MIN, not the subnormal math.SmallestNonzeroFloat64).
	MinNormal = 0x1p-1022
)
