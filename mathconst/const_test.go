package mathconst_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlmath/mathconst"
)

// TestConstants pins every literal against its defining expression.
func TestConstants(t *testing.T) {
	assert.InDelta(t, math.Pi*math.Pi/8, mathconst.Pi2Over8, 2e-15)
	assert.InDelta(t, math.Log(math.Pi/2), mathconst.LogPiOver2, 1e-15)
	assert.InDelta(t, math.Log(math.Sqrt(2*math.Pi)), mathconst.LogSqrt2Pi, 1e-15)
	assert.InDelta(t, 1/math.Sqrt(math.Pi), mathconst.InvSqrtPi, 1e-15)

	// MaxExp must still exponentiate to a finite float64.
	assert.False(t, math.IsInf(math.Exp(mathconst.MaxExp), 1),
		"exp(MaxExp) must be finite")

	assert.Equal(t, 2.220446049250313e-16, mathconst.Epsilon, "machine epsilon")
	assert.Equal(t, 2.2250738585072014e-308, mathconst.MinNormal, "smallest normal")
}
