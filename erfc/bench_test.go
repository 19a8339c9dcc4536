package erfc_test

import (
	"testing"

	"github.com/katalvlaran/lvlmath/erfc"
)

// sink prevents the compiler from eliding the benchmarked call.
var sink float64

// BenchmarkErfc_Small benchmarks the low-argument rational branch.
func BenchmarkErfc_Small(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = erfc.Erfc(0.25)
	}
}

// BenchmarkErfc_Mid benchmarks the exp-scaled rational branch on [0.5, 4).
func BenchmarkErfc_Mid(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = erfc.Erfc(2.5)
	}
}

// BenchmarkErfc_Asymptotic benchmarks the 1/x² correction branch.
func BenchmarkErfc_Asymptotic(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink = erfc.Erfc(12)
	}
}
