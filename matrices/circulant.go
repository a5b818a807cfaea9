package matrices

import (
	"fmt"

	"github.com/krauterlab/permsearch/subsets"
)

// NewCirculant builds the (+1,−1) circulant matrix C_{n,S}: the first row
// has +1 at position k iff k ∈ S (−1 otherwise), and every subsequent row
// is the left cyclic shift of the previous one, i.e.
//
//	C[i][j] = row0[(j−i) mod n].
//
// Contract: n ≥ 1; S ⊆ [0, n−1].
// Complexity: O(n²) time, O(n²) memory, fresh allocation.
// Errors: ErrNonPositiveOrder, ErrIndexOutOfRange (offending values listed).
func NewCirculant(n int, s subsets.Set) (Matrix, error) {
	if err := validateOrder(n); err != nil {
		return nil, err
	}
	if err := validateIndexRange(s, 0, n-1); err != nil {
		return nil, fmt.Errorf("circulant: %w", err)
	}

	row0 := make([]int, n)
	for k := 0; k < n; k++ {
		if s.Contains(k) {
			row0[k] = 1
		} else {
			row0[k] = -1
		}
	}

	m := make(Matrix, n)
	for i := 0; i < n; i++ {
		m[i] = make([]int, n)
		for j := 0; j < n; j++ {
			m[i][j] = row0[((j-i)%n+n)%n]
		}
	}

	return m, nil
}

// CirculantSet re-derives the defining set S from a circulant matrix by
// reading its first row: k ∈ S iff m[0][k] == +1.
func CirculantSet(m Matrix) subsets.Set {
	s := make(subsets.Set)
	if len(m) == 0 {
		return s
	}
	for k, v := range m[0] {
		if v == 1 {
			s[k] = struct{}{}
		}
	}
	return s
}
