package subsets

import "math/big"

// Sequence lazily enumerates every subset of a fixed universe, producing
// exactly 2^|U| sets: first by ascending cardinality r = 0..|U|, then in
// lexicographic combination order over the universe as given.
//
// A Sequence is restartable via Reset but never resumable mid-stream;
// a drained Sequence keeps returning (nil, false) until Reset.
// Not safe for concurrent use — one sequential consumer, per the
// single-threaded search model.
type Sequence struct {
	universe []int
	base     Set   // unioned into every yield; nil when unconstrained
	r        int   // current cardinality
	comb     []int // indices into universe of the current r-combination
	done     bool
	started  bool
}

// All returns a Sequence over every subset of universe.
// The universe slice is copied; later mutation by the caller is harmless.
func All(universe []int) *Sequence {
	u := make([]int, len(universe))
	copy(u, universe)
	return &Sequence{universe: u}
}

// AllWithBase returns a Sequence whose every yield is the union of base
// with a subset of universe. The enumeration order (by cardinality of the
// free part) is unchanged; base is copied once up front.
func AllWithBase(universe []int, base Set) *Sequence {
	seq := All(universe)
	if base.Len() > 0 {
		seq.base = base.Clone()
	}
	return seq
}

// Count returns the exact number of sets the sequence yields: 2^|U|.
func (q *Sequence) Count() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(len(q.universe)))
}

// Reset rewinds the sequence to the empty set.
func (q *Sequence) Reset() {
	q.r = 0
	q.comb = nil
	q.done = false
	q.started = false
}

// Next yields the following subset and true, or (nil, false) once the
// enumeration is exhausted. Each returned Set is a fresh copy owned by
// the caller.
func (q *Sequence) Next() (Set, bool) {
	if q.done {
		return nil, false
	}
	if !q.started {
		q.started = true
		return q.current(), true // the empty (or base-only) set
	}
	if q.advance() {
		return q.current(), true
	}
	q.done = true
	return nil, false
}

// current materializes the combination indices into a caller-owned Set.
func (q *Sequence) current() Set {
	s := make(Set, len(q.comb)+q.base.Len())
	for e := range q.base {
		s[e] = struct{}{}
	}
	for _, idx := range q.comb {
		s[q.universe[idx]] = struct{}{}
	}
	return s
}

// advance steps to the next r-combination, moving to cardinality r+1 when
// the current cardinality is drained. Returns false when all 2^|U|
// subsets have been produced.
func (q *Sequence) advance() bool {
	m := len(q.universe)
	// Standard lexicographic successor on index combinations:
	// find the rightmost index that can still move right.
	for i := q.r - 1; i >= 0; i-- {
		if q.comb[i] < m-(q.r-i) {
			q.comb[i]++
			for j := i + 1; j < q.r; j++ {
				q.comb[j] = q.comb[j-1] + 1
			}
			return true
		}
	}
	// Cardinality r exhausted; open cardinality r+1 with the first combination.
	if q.r == m {
		return false
	}
	q.r++
	q.comb = make([]int, q.r)
	for i := range q.comb {
		q.comb[i] = i
	}
	return true
}
