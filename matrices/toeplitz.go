package matrices

import (
	"fmt"

	"github.com/krauterlab/permsearch/subsets"
)

// NewToeplitz builds the (+1,−1) Toeplitz matrix T_{n,S}: entries default
// to −1 and flip to +1 exactly when their diagonal difference is a member
// of S:
//
//	T[i][j] = +1 iff (j−i) ∈ S, −1 otherwise.
//
// A difference shared by several cells is definitional, not an error —
// one S element controls a whole diagonal.
//
// Contract: n ≥ 1; S ⊆ [−(n−1), n−1].
// Complexity: O(n²) time, O(n²) memory, fresh allocation.
// Errors: ErrNonPositiveOrder, ErrIndexOutOfRange (offending values listed).
func NewToeplitz(n int, s subsets.Set) (Matrix, error) {
	if err := validateOrder(n); err != nil {
		return nil, err
	}
	if err := validateIndexRange(s, -(n - 1), n-1); err != nil {
		return nil, fmt.Errorf("toeplitz: %w", err)
	}

	m := make(Matrix, n)
	for i := 0; i < n; i++ {
		m[i] = make([]int, n)
		for j := 0; j < n; j++ {
			if s.Contains(j - i) {
				m[i][j] = 1
			} else {
				m[i][j] = -1
			}
		}
	}

	return m, nil
}

// NewUpperToeplitz builds the upper-triangular Toeplitz matrix for the
// free set S of non-negative differences: every negative difference is
// forced into S (which pins the strict lower triangle to 1) and the plain
// Toeplitz rule is then applied.
//
// Contract: n ≥ 1; S ⊆ [0, n−1].
// Errors: ErrNonPositiveOrder, ErrIndexOutOfRange.
func NewUpperToeplitz(n int, s subsets.Set) (Matrix, error) {
	if err := validateOrder(n); err != nil {
		return nil, err
	}
	if err := validateIndexRange(s, 0, n-1); err != nil {
		return nil, fmt.Errorf("upper toeplitz: %w", err)
	}

	return NewToeplitz(n, UpperToeplitzBase(n).Union(s))
}

// ToeplitzSet re-derives the defining set S from a Toeplitz matrix by
// scanning the first row and first column: d ∈ S iff the d-diagonal is +1.
func ToeplitzSet(m Matrix) subsets.Set {
	s := make(subsets.Set)
	n := len(m)
	for d := -(n - 1); d <= n-1; d++ {
		var v int
		if d >= 0 {
			v = m[0][d]
		} else {
			v = m[-d][0]
		}
		if v == 1 {
			s[d] = struct{}{}
		}
	}
	return s
}
