package matrices

import (
	"fmt"

	"github.com/krauterlab/permsearch/subsets"
)

// NewHankelTriangular builds the triangle Hankel matrix H_{n,S}:
// the upper triangle (including the diagonal) follows the Hankel rule on
// anti-diagonal sums, the strict lower triangle is fixed to 1:
//
//	H[i][j] = +1 iff (i+j) ∈ S   for i ≤ j
//	H[i][j] = 1                  for i > j
//
// Contract: n ≥ 1; S ⊆ [0, 2n−2].
// Complexity: O(n²) time, O(n²) memory, fresh allocation.
// Errors: ErrNonPositiveOrder, ErrIndexOutOfRange (offending values listed).
func NewHankelTriangular(n int, s subsets.Set) (Matrix, error) {
	if err := validateOrder(n); err != nil {
		return nil, err
	}
	if err := validateIndexRange(s, 0, 2*n-2); err != nil {
		return nil, fmt.Errorf("hankel: %w", err)
	}

	m := make(Matrix, n)
	for i := 0; i < n; i++ {
		m[i] = make([]int, n)
		for j := 0; j < n; j++ {
			switch {
			case i > j:
				m[i][j] = 1
			case s.Contains(i + j):
				m[i][j] = 1
			default:
				m[i][j] = -1
			}
		}
	}

	return m, nil
}

// HankelSet re-derives the defining set S from a triangle Hankel matrix
// by reading each anti-diagonal's upper-triangle representative:
// k ∈ S iff the cell with i+j = k, i ≤ j is +1.
func HankelSet(m Matrix) subsets.Set {
	s := make(subsets.Set)
	n := len(m)
	for k := 0; k <= 2*n-2; k++ {
		// Representative with the smallest valid i such that i ≤ j.
		i := 0
		if k > n-1 {
			i = k - (n - 1)
		}
		j := k - i
		if m[i][j] == 1 {
			s[k] = struct{}{}
		}
	}
	return s
}
