// Package matrices defines the ±1 matrix model and the structured matrix
// families studied in the Kräuter conjecture search.
//
// What:
//
//   - Matrix: a square [][]int whose entries are −1 or +1 for every
//     constructor output; value helpers (Clone, IsPMOne, OnesRatio).
//   - Five family constructors, each a deterministic bijection from its
//     (n, S) parameter domain to a concrete matrix:
//     NewCirculant, NewToeplitz, NewHankelTriangular, NewUpperTriangular,
//     NewUpperToeplitz.
//   - Universe helpers describing each family's valid index range, used
//     to wire subsets.Sequence generators.
//   - ParseNotation for the compact "H_6{0,2,4..10}" parameter syntax,
//     plus the inverse derivations CirculantSet / ToeplitzSet / HankelSet.
//
// Sign conventions are family-specific and intentional — they follow the
// mathematical definitions of each family and are never normalized:
//
//	circulant          row0[k] = +1 iff k ∈ S
//	Toeplitz           M[i][j] = +1 iff (j−i) ∈ S, default −1
//	triangle Hankel    M[i][j] = +1 iff (i+j) ∈ S for i ≤ j; 1 below
//	upper-triangular   position p ∈ S ⇒ +1 for i ≤ j; 1 below
//	upper Toeplitz     Toeplitz with all negative differences forced in S
//
// Complexity: every constructor fills each of the n² cells exactly once —
// O(n²) time, O(n²) memory, freshly allocated, no aliasing.
//
// Errors:
//
//   - ErrNonPositiveOrder: n ≤ 0 requested.
//   - ErrIndexOutOfRange: an S element (or notation range) lies outside
//     the family's valid domain; the message names the offending values
//     and the valid range.
//   - ErrNonSquare: FromRows received a ragged or non-square slice.
//   - ErrBadNotation: malformed family notation text.
package matrices
