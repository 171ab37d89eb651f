package quad_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/metacalc/core"
	"github.com/katalvlaran/metacalc/quad"
)

// benchmarkMeta integrates sin over [0, π] under scheme sc at tolerance tol.
func benchmarkMeta(b *testing.B, sc core.Scheme, tol float64) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := quad.Meta(sc, math.Sin, 0, math.Pi, quad.WithTolerance(tol)); err != nil {
			b.Fatalf("Meta failed: %v", err)
		}
	}
}

// BenchmarkMeta_ClassicalLoose measures the classical path at 1e-6.
func BenchmarkMeta_ClassicalLoose(b *testing.B) {
	benchmarkMeta(b, core.Classical(), 1e-6)
}

// BenchmarkMeta_ClassicalTight measures the classical path at 1e-12.
func BenchmarkMeta_ClassicalTight(b *testing.B) {
	benchmarkMeta(b, core.Classical(), 1e-12)
}

// BenchmarkMeta_Geometric adds the generator transforms to every sample
// (β⁻¹ inside the integrand, positive integrand required).
func BenchmarkMeta_Geometric(b *testing.B) {
	sc := core.Geometric()
	f := func(x float64) float64 { return 2 + math.Sin(x) }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := quad.Meta(sc, f, 0, math.Pi); err != nil {
			b.Fatalf("Meta failed: %v", err)
		}
	}
}
