package erfc_test

import (
	"fmt"

	"github.com/katalvlaran/lvlmath/erfc"
)

// ExampleErfc evaluates the complementary error function at a few points:
// the exact center, a moderate argument and a saturated tail.
func ExampleErfc() {
	fmt.Printf("erfc(0)  = %.1f\n", erfc.Erfc(0))
	fmt.Printf("erfc(1)  = %.6f\n", erfc.Erfc(1))
	fmt.Printf("erfc(30) = %.1f\n", erfc.Erfc(30))

	// Output:
	// erfc(0)  = 1.0
	// erfc(1)  = 0.157299
	// erfc(30) = 0.0
}
