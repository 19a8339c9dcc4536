package truncgamma_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/lvlmath/truncgamma"
)

// benchmarkSample draws b.N samples for one parameter set.
func benchmarkSample(b *testing.B, a, rate, t float64) {
	src := truncgamma.NewRandSource(rand.New(rand.NewPCG(5, 17)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := truncgamma.Sample(src, a, rate, t); err != nil {
			b.Fatalf("Sample failed: %v", err)
		}
	}
}

// BenchmarkSample_SmallShape benchmarks the a < 1 rejection regime.
func BenchmarkSample_SmallShape(b *testing.B) { benchmarkSample(b, 0.3, 2, 1) }

// BenchmarkSample_UnitShape benchmarks the closed-form a == 1 regime.
func BenchmarkSample_UnitShape(b *testing.B) { benchmarkSample(b, 1, 2, 1) }

// BenchmarkSample_LargeShape benchmarks the a > 1 rejection regime.
func BenchmarkSample_LargeShape(b *testing.B) { benchmarkSample(b, 3.5, 2, 1) }
