package matrices

import "github.com/krauterlab/permsearch/subsets"

// Universe helpers describe each family's valid index domain in the order
// the exhaustive generators enumerate it. Passing a universe to
// subsets.All yields every parameter set of the family exactly once.

// CirculantUniverse returns the first-row positions 0..n−1 (2^n sets).
func CirculantUniverse(n int) []int { return intRange(0, n-1) }

// ToeplitzUniverse returns the diagonal differences −(n−1)..n−1
// (2^(2n−1) sets).
func ToeplitzUniverse(n int) []int { return intRange(-(n - 1), n-1) }

// HankelUniverse returns the anti-diagonal sums 0..2n−2 (2^(2n−1) sets).
func HankelUniverse(n int) []int { return intRange(0, 2*n-2) }

// UpperTriangleUniverse returns the row-major upper-triangle positions
// 0..n(n+1)/2−1 (2^(n(n+1)/2) sets).
func UpperTriangleUniverse(n int) []int { return intRange(0, n*(n+1)/2-1) }

// UpperToeplitzUniverse returns the free non-negative differences 0..n−1
// of the upper-triangular Toeplitz family (2^n sets once the base is fixed).
func UpperToeplitzUniverse(n int) []int { return intRange(0, n-1) }

// UpperToeplitzBase returns the forced negative differences −(n−1)..−1
// that pin the strict lower triangle to 1. Empty for n = 1.
func UpperToeplitzBase(n int) subsets.Set {
	base := make(subsets.Set, n-1)
	for d := -(n - 1); d < 0; d++ {
		base[d] = struct{}{}
	}
	return base
}

func intRange(lo, hi int) []int {
	if hi < lo {
		return nil
	}
	out := make([]int, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		out = append(out, v)
	}
	return out
}
