package erfc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmath/erfc"
)

// relTol is the documented accuracy bound of the rational fits against the
// standard library, with a little slack for the comparison itself.
const relTol = 2e-9

// TestErfc_Zero verifies the exact value erfc(0) = 1.
func TestErfc_Zero(t *testing.T) {
	assert.Equal(t, 1.0, erfc.Erfc(0), "erfc(0) must be exactly 1")
}

// TestErfc_MatchesStdlib sweeps all five approximation regions and
// compares against math.Erfc within the documented relative tolerance.
func TestErfc_MatchesStdlib(t *testing.T) {
	for x := -6.0; x <= 10.0; x += 0.01 {
		want := math.Erfc(x)
		got := erfc.Erfc(x)
		require.InEpsilonf(t, want, got, relTol,
			"erfc(%g): got %g, want %g", x, got, want)
	}
}

// TestErfc_Reflection checks erfc(x) + erfc(−x) == 2 for finite x.
func TestErfc_Reflection(t *testing.T) {
	for _, x := range []float64{1e-12, 0.1, 0.49, 0.5, 1, 2.5, 3.99, 4, 5.5, 10, 25, 100} {
		sum := erfc.Erfc(x) + erfc.Erfc(-x)
		assert.InDeltaf(t, 2.0, sum, 2e-9, "erfc(%g)+erfc(−%g) must be 2", x, x)
	}
}

// TestErfc_Monotone verifies erfc is non-increasing across the whole
// branch structure, including every region boundary.
func TestErfc_Monotone(t *testing.T) {
	prev := erfc.Erfc(-30)
	for x := -30.0; x <= 30.0; x += 0.005 {
		cur := erfc.Erfc(x)
		require.LessOrEqualf(t, cur, prev+1e-12,
			"erfc must be non-increasing, violated near x=%g", x)
		prev = cur
	}
}

// TestErfc_BoundaryContinuity checks that adjacent approximation regions
// agree at their shared cut points.
func TestErfc_BoundaryContinuity(t *testing.T) {
	for _, cut := range []float64{0.5, 4.0} {
		lo := erfc.Erfc(cut - 1e-9)
		hi := erfc.Erfc(cut + 1e-9)
		assert.InEpsilonf(t, lo, hi, 1e-7, "discontinuity at region cut x=%g", cut)
	}
}

// TestErfc_Tails verifies the saturated asymptotes on both ends.
func TestErfc_Tails(t *testing.T) {
	assert.Equal(t, 2.0, erfc.Erfc(-6.5), "deep negative tail saturates at 2")
	assert.Equal(t, 2.0, erfc.Erfc(-1e6), "far negative tail saturates at 2")
	assert.Equal(t, 0.0, erfc.Erfc(26.7), "deep positive tail saturates at 0")
	assert.Equal(t, 0.0, erfc.Erfc(1e6), "far positive tail saturates at 0")
}

// TestErfc_UnderflowGuard exercises the pre-saturation band where the
// naive product would underflow: results must be finite and non-negative.
func TestErfc_UnderflowGuard(t *testing.T) {
	for x := 20.0; x < 26.615; x += 0.05 {
		y := erfc.Erfc(x)
		require.Falsef(t, math.IsNaN(y), "erfc(%g) must not be NaN", x)
		require.GreaterOrEqualf(t, y, 0.0, "erfc(%g) must be non-negative", x)
	}
}
