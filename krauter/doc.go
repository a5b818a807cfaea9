// Package krauter computes the theoretical target of the searches: the
// Kräuter conjecture value for the minimum positive permanent of an n×n
// ±1 matrix under the structural constraints studied by this module,
//
//	2^(n − ⌊log₂(n+1)⌋).
//
// The value is computed once per search run, compared against observed
// permanents (exactly, or by absolute value, depending on the search
// convention), and doubles as the early-termination criterion.
//
// ⌊log₂(n+1)⌋ is taken with integer bit arithmetic, so the boundary cases
// where n+1 is a power of two (n = 1, 3, 7, 15, …) are exact — a float
// log2 can land on either side of the step there.
//
// Errors: ErrNonPositiveOrder for n ≤ 0.
package krauter
