package matrices

import (
	"fmt"

	"github.com/krauterlab/permsearch/subsets"
)

// NewUpperTriangular builds the free upper-triangular (±1) matrix for a
// set S of upper-triangle positions. Positions index the cells with
// i ≤ j in row-major order:
//
//	pos 0 .. n−1        → row 0, columns 0..n−1
//	pos n .. 2n−2       → row 1, columns 1..n−1
//	...                 → n(n+1)/2 positions in total
//
// A member position gets +1, a non-member −1; the strict lower triangle
// is fixed to 1.
//
// Contract: n ≥ 1; S ⊆ [0, n(n+1)/2 − 1].
// Complexity: O(n²) time, O(n²) memory, fresh allocation.
// Errors: ErrNonPositiveOrder, ErrIndexOutOfRange (offending values listed).
func NewUpperTriangular(n int, s subsets.Set) (Matrix, error) {
	if err := validateOrder(n); err != nil {
		return nil, err
	}
	if err := validateIndexRange(s, 0, n*(n+1)/2-1); err != nil {
		return nil, fmt.Errorf("upper triangular: %w", err)
	}

	m := make(Matrix, n)
	pos := 0
	for i := 0; i < n; i++ {
		m[i] = make([]int, n)
		for j := 0; j < i; j++ {
			m[i][j] = 1
		}
		for j := i; j < n; j++ {
			if s.Contains(pos) {
				m[i][j] = 1
			} else {
				m[i][j] = -1
			}
			pos++
		}
	}

	return m, nil
}

// UpperTriangularSet re-derives the position set S from a free
// upper-triangular matrix by scanning the cells with i ≤ j in row-major
// order: the position is a member iff the cell is +1.
func UpperTriangularSet(m Matrix) subsets.Set {
	s := make(subsets.Set)
	pos := 0
	for i, row := range m {
		for j := i; j < len(row); j++ {
			if row[j] == 1 {
				s[pos] = struct{}{}
			}
			pos++
		}
	}
	return s
}
