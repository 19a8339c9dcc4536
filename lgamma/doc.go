// Package lgamma computes the natural logarithm of the gamma function for
// positive arguments, accurate to about 9.4e-10 relative error against the
// standard library.
//
// Algorithm Outline:
//
//	Branch by the magnitude (and integrality) of z:
//	  1. exact integer z in [1, 200]    → ln((z−1)!) lookup table, O(1), exact
//	  2. z > 12                         → Stirling asymptotic expansion
//	  3. 4 ≤ z ≤ 12                     → degree-4/4 rational fit in z
//	  4. 1.5 < z < 4                    → (z−2) · rational fit
//	  5. 0.5 ≤ z ≤ 1.5                  → (z−1) · rational fit
//	  6. ε < z < 0.5                    → the same fit at z+1, minus ln(z)
//	     (recurrence ln Γ(z) = ln Γ(z+1) − ln z keeps the fit in range)
//	  7. MinNormal < z ≤ ε              → −ln(z)
//	  8. z ≤ MinNormal                  → the MaxExp saturating sentinel, so
//	     downstream exp() calls stay finite instead of receiving +∞
//
// Complexity:
//
//	– Time:  O(1)
//	– Space: O(1) beyond the fixed 200-entry table
//
// Errors:
//
//	None. Behavior for z ≤ 0 is undefined; callers validate their domain.
//
// References:
//
//	Cody, W., & Hillstrom, K. (1967). Chebyshev Approximations for the
//	Natural Logarithm of the Gamma Function. Mathematics of Computation,
//	21(98), 198–203.
//
//	Temme, N. (1994). A Set of Algorithms for the Incomplete Gamma
//	Functions. Probability in the Engineering and Informational Sciences,
//	8(2), 291–307.
package lgamma
