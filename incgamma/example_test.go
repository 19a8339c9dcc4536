package incgamma_test

import (
	"fmt"

	"github.com/katalvlaran/lvlmath/incgamma"
)

// ExampleUpperIncomplete evaluates the regularized and raw upper
// incomplete gamma function. Q(1, x) is exactly exp(−x), so Γ(1, x)
// coincides with it (Γ(1) = 1).
func ExampleUpperIncomplete() {
	fmt.Printf("Q(1, 2)  = %.6f\n", incgamma.UpperIncomplete(1, 2, true))
	fmt.Printf("Γ(1, 2)  = %.6f\n", incgamma.UpperIncomplete(1, 2, false))
	fmt.Printf("Q(3, 0)  = %.1f\n", incgamma.UpperIncomplete(3, 0, true))

	// Output:
	// Q(1, 2)  = 0.135335
	// Γ(1, 2)  = 0.135335
	// Q(3, 0)  = 1.0
}

// ExampleLowerRegularized shows the complement P(p, x) = 1 − Q(p, x).
func ExampleLowerRegularized() {
	fmt.Printf("P(1, 2) = %.6f\n", incgamma.LowerRegularized(1, 2))

	// Output:
	// P(1, 2) = 0.864665
}
