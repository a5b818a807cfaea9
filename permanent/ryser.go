package permanent

import (
	"math/big"
	"math/bits"
)

// Ryser computes the permanent of a square integer matrix via Ryser's
// inclusion–exclusion formula
//
//	per(A) = (−1)^n · Σ_{S ⊆ {1..n}, S ≠ ∅} (−1)^|S| · ∏_i Σ_{j∈S} A[i][j]
//
// Algorithm outline:
//  1. Iterate k = 1 .. 2^n−1; the Gray code of k differs from that of
//     k−1 in exactly one bit, whose position is the number of trailing
//     zeros of k (the lowest set bit of k XOR (k−1)).
//  2. Maintain rowSums[i] = Σ_{j∈S} A[i][j]; each step adds or subtracts
//     the single toggled column — this incremental update is what makes
//     the traversal O(2^n·n) rather than O(2^n·n²).
//  3. The sign starts at (−1)^n for the empty set and flips on every
//     toggle; the signed products of the row sums accumulate into the
//     result.
//
// Arithmetic: row sums fit comfortably in int64 (|rowSums[i]| ≤ n·max|A|),
// and each subset's product is computed in int64 with an overflow guard —
// when a multiplication could leave the safe range, the evaluation
// finishes in math/big for that subset. Signed products accumulate in an
// int64 partial sum flushed into the big.Int total before it can wrap.
// The result is always exact.
//
// Complexity: O(2^n·n) time, O(n) extra memory.
// Errors: ErrNonSquare. The input is never mutated.
func Ryser(m [][]int) (*big.Int, error) {
	n, err := checkSquare(m)
	if err != nil {
		return nil, err
	}

	rowSums := make([]int64, n)
	total := new(big.Int)
	var partial int64 // int64 chunk of the total, flushed before overflow
	sign := int64(1)
	if n%2 != 0 {
		sign = -1 // (−1)^n for the empty set
	}

	var scratch big.Int
	for k := uint64(1); k < uint64(1)<<uint(n); k++ {
		j := bits.TrailingZeros64(k) // toggled column
		grayK := k ^ (k >> 1)
		if grayK&(1<<uint(j)) != 0 {
			for i := 0; i < n; i++ {
				rowSums[i] += int64(m[i][j])
			}
		} else {
			for i := 0; i < n; i++ {
				rowSums[i] -= int64(m[i][j])
			}
		}
		sign = -sign

		prod, ok := product64(rowSums)
		if ok {
			// Fast path: |partial + sign·prod| could overflow only if both
			// halves are near the limit; flush early at half range.
			if overflowRisk(partial, prod) {
				total.Add(total, scratch.SetInt64(partial))
				partial = 0
			}
			partial += sign * prod
			continue
		}
		// Rare wide path: finish this subset in big arithmetic.
		total.Add(total, scratch.SetInt64(partial))
		partial = 0
		total.Add(total, bigProduct(rowSums, sign))
	}

	total.Add(total, scratch.SetInt64(partial))

	return total, nil
}

// safeLimit bounds the magnitudes the fast path may hold; half of the
// int64 range so that one more addition can never wrap.
const safeLimit = int64(1) << 62

// product64 multiplies the row sums in int64, reporting ok=false as soon
// as a step could leave the safe range.
func product64(rowSums []int64) (int64, bool) {
	prod := int64(1)
	for _, s := range rowSums {
		if s == 0 {
			return 0, true
		}
		if abs64(prod) > safeLimit/abs64(s) {
			return 0, false
		}
		prod *= s
	}
	return prod, true
}

// overflowRisk reports whether partial + (±prod) could leave int64.
func overflowRisk(partial, prod int64) bool {
	return abs64(partial) > safeLimit-abs64(prod)
}

// bigProduct computes sign·∏ rowSums exactly.
func bigProduct(rowSums []int64, sign int64) *big.Int {
	prod := big.NewInt(sign)
	var s big.Int
	for _, v := range rowSums {
		prod.Mul(prod, s.SetInt64(v))
	}
	return prod
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
