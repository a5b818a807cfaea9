package search

import (
	"math/big"
	"sort"

	"github.com/krauterlab/permsearch/matrices"
	"github.com/krauterlab/permsearch/subsets"
)

// State is the mutable accumulator of one run. It is owned by the driver
// for the duration of the scan and returned inside the Summary; there are
// no concurrent writers.
type State struct {
	// Processed counts evaluated iterations; Skipped counts rate-filtered
	// ones (never evaluated); Errors counts iterations whose constructor
	// or evaluator failed and whose contribution was therefore dropped.
	Processed uint64
	Skipped   uint64
	Errors    uint64
	// LastErr retains the most recent per-iteration error, if any.
	LastErr error

	// Sign buckets over all evaluated values.
	PositiveCount uint64
	ZeroCount     uint64
	NegativeCount uint64

	// Min and Max are the raw signed extremes over all evaluated values.
	Min *big.Int
	Max *big.Int

	// Best is the convention-dependent "best so far" (nil until one
	// exists; always nil under Buckets). BestSet and BestMatrix are
	// copies of the originating parameters, never aliases.
	Best       *big.Int
	BestSet    subsets.Set
	BestMatrix matrices.Matrix

	// TargetFound is set when the scan ended on an exact target match.
	// NegativeTargetSeen records that −target was observed at least once.
	TargetFound        bool
	NegativeTargetSeen bool

	// Frequency maps value → occurrence count (nil when disabled).
	Frequency *Frequency
}

// observe folds one evaluated value into the raw statistics.
func (st *State) observe(v *big.Int) {
	st.Processed++
	switch v.Sign() {
	case 1:
		st.PositiveCount++
	case 0:
		st.ZeroCount++
	default:
		st.NegativeCount++
	}
	if st.Min == nil || v.Cmp(st.Min) < 0 {
		st.Min = new(big.Int).Set(v)
	}
	if st.Max == nil || v.Cmp(st.Max) > 0 {
		st.Max = new(big.Int).Set(v)
	}
	if st.Frequency != nil {
		st.Frequency.Add(v)
	}
}

// recordBest stores a new best value with copies of its origin.
func (st *State) recordBest(v *big.Int, s subsets.Set, m matrices.Matrix) {
	st.Best = new(big.Int).Set(v)
	st.BestSet = s.Clone()
	st.BestMatrix = m.Clone()
}

// ValueCount is one exported frequency pair.
type ValueCount struct {
	Value *big.Int
	Count uint64
}

// Frequency counts occurrences of arbitrary-precision values. Keys are
// the values' decimal strings, so no magnitude limit applies.
type Frequency struct {
	cells map[string]*ValueCount
}

// NewFrequency returns an empty table.
func NewFrequency() *Frequency {
	return &Frequency{cells: make(map[string]*ValueCount)}
}

// Add increments the count of v, copying v on first sight.
func (f *Frequency) Add(v *big.Int) {
	key := v.String()
	if cell, ok := f.cells[key]; ok {
		cell.Count++
		return
	}
	f.cells[key] = &ValueCount{Value: new(big.Int).Set(v), Count: 1}
}

// Len returns the number of distinct values seen (the r_n statistic).
func (f *Frequency) Len() int { return len(f.cells) }

// Count returns the occurrence count of v (0 when unseen).
func (f *Frequency) Count(v *big.Int) uint64 {
	if cell, ok := f.cells[v.String()]; ok {
		return cell.Count
	}
	return 0
}

// Export returns the table as pairs sorted ascending by value — the bulk
// artifact consumed downstream for distribution analysis.
func (f *Frequency) Export() []ValueCount {
	out := make([]ValueCount, 0, len(f.cells))
	for _, cell := range f.cells {
		out = append(out, *cell)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Value.Cmp(out[j].Value) < 0
	})
	return out
}
