// Package permanent computes exact permanents and determinants of square
// integer matrices.
//
// What:
//
//   - Ryser — the production evaluator: Ryser's inclusion–exclusion
//     formula, iterating column subsets in Gray-code order so each step
//     toggles exactly one column and updates the running row sums
//     incrementally. O(2^n·n) time, O(n) extra memory.
//   - Naive — the definitional sum over all n! permutations, kept as a
//     cross-validation oracle for small n (≤ ~8).
//   - Compute — dispatch by Method (MethodRyser is the default).
//   - Determinant — Gaussian elimination with partial pivoting; since the
//     matrices under study are ±1-valued the true determinant is integral,
//     so the float result is rounded (never truncated) to the nearest int.
//
// Results are math/big integers: for an n×n ±1 matrix the permanent is
// bounded by n! in magnitude, which overflows int64 past n = 20; exact
// arithmetic removes the silent-wraparound failure mode entirely. The
// Ryser hot loop still runs on int64 row sums and flushes partial sums
// into the big accumulator before they can overflow.
//
// Errors:
//
//   - ErrNonSquare: the input is nil, empty, ragged, or non-square.
//   - ErrUnknownMethod: Compute received a Method outside the enum.
//
// The evaluators never mutate their input and hold no state across calls.
package permanent
