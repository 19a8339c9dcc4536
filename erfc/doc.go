// Package erfc computes the complementary error function erfc(x) with
// rational Chebyshev approximations, accurate to about 1e-9 relative error
// against the standard library across all branches.
//
// Algorithm Outline:
//
//	The real line is split into five regions, each served by its own
//	minimax rational (or rational × exponential) fit with fixed published
//	coefficients:
//	  1. x < −6.0036…        → 2 (saturated asymptote)
//	  2. −6.0036… ≤ x < −ε   → 2 − erfc(−x) (reflection, one level deep)
//	  3. |x| < ε             → 1 exactly
//	  4. ε ≤ x < 0.5         → 1 − x·P(x²)/Q(x²), degree 4/3
//	  5. 0.5 ≤ x < 4         → exp(−x²)·P(x)/Q(x), degree 4/4
//	  6. 4 ≤ x < 26.6157…    → exp(−x²)·(1/√π + R(1/x²))/x with an explicit
//	     underflow guard that short-circuits to 0
//	  7. x ≥ 26.6157…        → 0 (true asymptote)
//
// Complexity:
//
//	– Time:  O(1), a handful of multiply-adds per call
//	– Space: O(1), no allocation
//
// Errors:
//
//	None. Erfc is a total function: every real input yields a finite result.
//
// References:
//
//	Cody, W. J. Rational Chebyshev approximations for the error function.
//	Math. Comp. 23 (1969), 631–637.
//
//	Temme, N. (1994). A Set of Algorithms for the Incomplete Gamma
//	Functions. Probability in the Engineering and Informational Sciences,
//	8(2), 291–307.
package erfc
