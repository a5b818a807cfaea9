package permanent

import "math/big"

// Naive computes the permanent from the definition,
//
//	per(A) = Σ_π ∏_i A[i][π(i)],
//
// summing over all n! column permutations (no alternating sign — that is
// the determinant's business). Permutations are enumerated in place with
// Heap's algorithm.
//
// Factorial blowup makes this usable only for small n; it exists as the
// ground-truth oracle that cross-validates Ryser in tests.
//
// Complexity: O(n!·n) time, O(n) extra memory.
// Errors: ErrNonSquare. The input is never mutated.
func Naive(m [][]int) (*big.Int, error) {
	n, err := checkSquare(m)
	if err != nil {
		return nil, err
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	total := new(big.Int)
	var scratch big.Int
	addTerm := func() {
		prod := int64(1)
		for i, j := range perm {
			prod *= int64(m[i][j])
			if prod == 0 {
				break
			}
		}
		total.Add(total, scratch.SetInt64(prod))
	}

	// Heap's algorithm, iterative form.
	addTerm()
	c := make([]int, n)
	for i := 0; i < n; {
		if c[i] < i {
			if i%2 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[c[i]], perm[i] = perm[i], perm[c[i]]
			}
			addTerm()
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}

	return total, nil
}
