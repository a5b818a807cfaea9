package search

import (
	"context"
	"testing"

	"github.com/krauterlab/permsearch/matrices"
	"github.com/krauterlab/permsearch/subsets"
)

// benchmarkScan runs one full circulant scan at order n (2^n matrices,
// one Ryser evaluation each).
func benchmarkScan(b *testing.B, n int) {
	gen := subsets.All(matrices.CirculantUniverse(n))
	build := func(s subsets.Set) (matrices.Matrix, error) {
		return matrices.NewCirculant(n, s)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Run(context.Background(), gen, build, WithConvention(Buckets)); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}

// BenchmarkScanCirculant_N6 covers the 2^6 space.
func BenchmarkScanCirculant_N6(b *testing.B) { benchmarkScan(b, 6) }

// BenchmarkScanCirculant_N10 covers the 2^10 space, the smallest
// search-like workload.
func BenchmarkScanCirculant_N10(b *testing.B) { benchmarkScan(b, 10) }
