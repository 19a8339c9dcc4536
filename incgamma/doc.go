// Package incgamma evaluates the upper incomplete gamma function, either
// regularized — Q(p,x) in [0,1] — or raw — Γ(p,x) ≥ 0.
//
// Algorithm Outline:
//
//	Fast paths (regularized only): when p is an exact integer below 30, the
//	terminating series exp(−x)·Σ_{k<p} xᵏ/k! is evaluated iteratively; when
//	p is an exact half-integer below 30, the analogous series is combined
//	with erfc(√x) via the half-integer identity. Not more than p terms are
//	needed, which beats the continued fraction for small p.
//
//	General path: a confluent-hypergeometric ratio G(p,x) is computed from
//	one of two continued fractions — one defined for x ≤ p, one for x > p —
//	both evaluated with the Modified Lentz method: near-zero partial
//	numerators and denominators are floored at the smallest normal float64,
//	iteration stops once the per-step update is within ConvergenceTol of 1,
//	and the term count is hard-capped at MaxTerms (a best-effort result is
//	returned on cap, never an error). The ratio is then scaled by
//	exp(−x + p·ln x − ln Γ(p)), with every exponent argument clamped to
//	±MaxExp so extreme (p, x) pairs saturate instead of overflowing.
//
// Complexity:
//
//	– Time:  O(min(p, MaxTerms)) for the fast paths, O(MaxTerms) worst case
//	– Space: O(1)
//
// Errors:
//
//	None. Both entry points are total for p > 0, x ≥ 0; behavior outside
//	that domain is undefined.
//
// References:
//
//	Abergel, R., & Moisan, L. (2020). Algorithm 1006: Fast and accurate
//	evaluation of a generalized incomplete gamma function. ACM Transactions
//	on Mathematical Software (TOMS). DOI: 10.1145/3365983.
package incgamma
