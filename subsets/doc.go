// Package subsets provides the index-set model and the exhaustive,
// lazily evaluated subset sequences that drive structured matrix searches.
//
// What:
//
//   - Set: a finite set of ints with value-semantics helpers
//     (Clone, Union, Sorted, Equal) used as the S parameter of every
//     matrix family.
//   - Sequence: enumerates every subset of a finite universe U exactly
//     once — 2^|U| sets in total — in ascending cardinality, and within a
//     cardinality in lexicographic combination order over U.
//   - AllWithBase: the same enumeration with a fixed base set unioned into
//     every yield (used by the upper-triangular Toeplitz family, whose
//     negative differences are forced present).
//
// Why:
//
//   - Search drivers rely on "smaller |S| before larger |S|" so sparse
//     patterns are reached early; no further intra-cardinality order may
//     be assumed beyond "deterministic and exhaustive".
//   - Sequences are restartable (Reset), never resumable mid-stream:
//     consumers pull one Set at a time and own each yielded value.
//
// Complexity:
//
//   - Next: O(|U|) per yield (combination step + copy), O(|U|) memory.
//   - Count: exact 2^|U| as a math/big integer, no overflow.
//
// Errors: the package is total — nil universes yield the one empty set.
package subsets
