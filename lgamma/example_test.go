package lgamma_test

import (
	"fmt"

	"github.com/katalvlaran/lvlmath/lgamma"
)

// ExampleLgamma evaluates ln Γ at an exact integer (table lookup),
// a fractional argument and a large argument (Stirling branch).
func ExampleLgamma() {
	fmt.Printf("lgamma(5)    = %.6f\n", lgamma.Lgamma(5))
	fmt.Printf("lgamma(0.5)  = %.6f\n", lgamma.Lgamma(0.5))
	fmt.Printf("lgamma(1000) = %.3f\n", lgamma.Lgamma(1000))

	// Output:
	// lgamma(5)    = 3.178054
	// lgamma(0.5)  = 0.572365
	// lgamma(1000) = 5905.220
}

// ExampleLogFactorial reads ln(n!) straight from the lookup table.
func ExampleLogFactorial() {
	fmt.Printf("ln(10!) = %.6f\n", lgamma.LogFactorial(10))

	// Output:
	// ln(10!) = 15.104413
}
