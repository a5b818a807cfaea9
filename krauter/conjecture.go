package krauter

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
)

// ErrNonPositiveOrder indicates a conjecture value was requested for n ≤ 0.
var ErrNonPositiveOrder = errors.New("krauter: order must be a positive integer")

// ConjectureValue returns the Kräuter conjecture target
// 2^(n − ⌊log₂(n+1)⌋) as an exact integer.
//
// For n = 3..10 the values are 2, 4, 8, 16, 16, 32, 64, 128; n = 6 and
// n = 7 coincide because the exponent grows by the floor-log step.
//
// Complexity: O(1) apart from the big.Int allocation.
// Errors: ErrNonPositiveOrder.
func ConjectureValue(n int) (*big.Int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrNonPositiveOrder)
	}
	// bits.Len(n+1) − 1 == ⌊log₂(n+1)⌋, exact at powers of two.
	exponent := n - (bits.Len(uint(n+1)) - 1)

	return new(big.Int).Lsh(big.NewInt(1), uint(exponent)), nil
}
