package matrices

import (
	"fmt"
	"sort"

	"github.com/krauterlab/permsearch/subsets"
)

// validateOrder rejects non-positive matrix orders.
func validateOrder(n int) error {
	if n <= 0 {
		return fmt.Errorf("n=%d: %w", n, ErrNonPositiveOrder)
	}
	return nil
}

// validateIndexRange checks every element of S against the inclusive
// range [lo, hi]. Violations are a contract error, never clamped; the
// returned error names each offending value and the valid range.
func validateIndexRange(s subsets.Set, lo, hi int) error {
	var invalid []int
	for e := range s {
		if e < lo || e > hi {
			invalid = append(invalid, e)
		}
	}
	if len(invalid) == 0 {
		return nil
	}
	sort.Ints(invalid)

	return fmt.Errorf("invalid indices %v, valid range is %d..%d: %w", invalid, lo, hi, ErrIndexOutOfRange)
}
