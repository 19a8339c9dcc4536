// Package mathconst declares the shared floating-point constants the
// lvlmath packages agree on.
//
// Every value is a named, immutable literal with IEEE-754 double semantics;
// nothing here is derived at runtime. Two of them deserve a note:
//
//   - MaxExp is the largest argument for which math.Exp still returns a
//     finite float64. It doubles as the saturating sentinel substituted for
//     quantities that would otherwise overflow a downstream exponential.
//   - MinNormal is the smallest positive *normal* float64 (2^-1022), the
//     direct analogue of C's DBL_MIN. It is deliberately not Go's
//     math.SmallestNonzeroFloat64, which is the subnormal 2^-1074; the
//     Lentz floors and the erfc underflow guard depend on the normal bound.
package mathconst
