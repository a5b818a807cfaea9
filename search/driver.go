package search

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/krauterlab/permsearch/matrices"
	"github.com/krauterlab/permsearch/permanent"
	"github.com/krauterlab/permsearch/subsets"
)

// Run executes one exhaustive streaming scan: for every index set yielded
// by gen (in the generator's documented order) it builds the matrix with
// build, evaluates it, and folds the value into the returned Summary.
//
// Contracts:
//   - gen and build must be non-nil; gen is Reset before streaming, so a
//     run always starts from the first index set.
//   - Cancellation via ctx is cooperative: checked between iterations,
//     never mid-evaluation. A cancelled run returns OutcomeInterrupted
//     with the accumulated prefix statistics and a nil error.
//   - Per-iteration failures (constructor or evaluator) are counted in
//     State.Errors with the last error retained, and the scan continues.
//
// Complexity: O(|space| · cost(eval)) time; memory is O(n²) plus the
// frequency table (one cell per distinct value).
//
// Errors: ErrNilGenerator, ErrNilConstructor, ErrBadOption — all surfaced
// before any iteration runs.
func Run(ctx context.Context, gen Generator, build Constructor, opts ...Option) (*Summary, error) {
	if gen == nil {
		return nil, ErrNilGenerator
	}
	if build == nil {
		return nil, ErrNilConstructor
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// INIT: fix the target, rewind the space, open the accumulator.
	gen.Reset()
	total := gen.Count()
	state := State{}
	if cfg.frequency {
		state.Frequency = NewFrequency()
	}
	start := time.Now()
	outcome := OutcomeExhausted

	var negTarget *big.Int
	if cfg.target != nil {
		negTarget = new(big.Int).Neg(cfg.target)
	}

	// STREAMING: one sequential scan, no concurrent state.
streaming:
	for {
		select {
		case <-ctx.Done():
			outcome = OutcomeInterrupted
			break streaming
		default:
		}

		s, ok := gen.Next()
		if !ok {
			break // EXHAUSTED
		}

		m, err := build(s)
		if err != nil {
			state.Errors++
			state.LastErr = fmt.Errorf("construct %s: %w", s, err)
			continue
		}

		if cfg.skips(m.OnesRatio()) {
			state.Skipped++
			if cfg.skipEvents {
				emit(cfg.results, state.Processed, s, nil, StatusSkipped)
			}
			continue
		}

		v, err := evaluate(m, cfg.eval)
		if err != nil {
			state.Errors++
			state.LastErr = fmt.Errorf("evaluate %s: %w", s, err)
			continue
		}

		state.observe(v)

		if matched := fold(&cfg, &state, v, s, m, negTarget); matched {
			state.TargetFound = true
			outcome = OutcomeTargetFound
			break
		}

		if cfg.progress != nil && state.Processed%cfg.progressEvery == 0 {
			cfg.progress.Report(Progress{
				Processed: state.Processed,
				Skipped:   state.Skipped,
				Total:     total,
				Elapsed:   time.Since(start),
			})
		}
	}

	return &Summary{
		Outcome: outcome,
		Target:  cfg.target,
		Elapsed: time.Since(start),
		State:   state,
	}, nil
}

// fold applies the convention-specific best/target logic for one value
// and reports whether the scan should stop on an exact target match.
func fold(cfg *config, st *State, v *big.Int, s subsets.Set, m matrices.Matrix, negTarget *big.Int) bool {
	switch cfg.convention {
	case MinPositive:
		// −target is notable but never "best"; reported once.
		if negTarget != nil && !st.NegativeTargetSeen && v.Cmp(negTarget) == 0 {
			st.NegativeTargetSeen = true
			emit(cfg.results, st.Processed, s, v, StatusNegativeTargetFound)
		}
		if v.Sign() <= 0 {
			return false
		}
		if st.Best != nil && v.Cmp(st.Best) >= 0 {
			return false
		}
		st.recordBest(v, s, m)
		status, matched := classify(cfg.target, v)
		emit(cfg.results, st.Processed, s, v, status)
		return matched

	case MinAbsolute:
		if v.Sign() == 0 {
			return false
		}
		abs := new(big.Int).Abs(v)
		if st.Best != nil && abs.Cmp(st.Best) >= 0 {
			return false
		}
		st.recordBest(abs, s, m)
		status, matched := classify(cfg.target, abs)
		emit(cfg.results, st.Processed, s, v, status)
		return matched

	default: // Buckets: no single best; absolute target match stops the scan.
		if cfg.target == nil || v.Sign() == 0 {
			return false
		}
		if new(big.Int).Abs(v).Cmp(cfg.target) != 0 {
			return false
		}
		emit(cfg.results, st.Processed, s, v, StatusMatchesTarget)
		return true
	}
}

// classify tags a new best value against the target.
func classify(target, best *big.Int) (Status, bool) {
	if target == nil {
		return StatusNewMin, false
	}
	switch best.Cmp(target) {
	case 0:
		return StatusMatchesTarget, true
	case -1:
		return StatusBetterThanTarget, false
	default:
		return StatusNewMin, false
	}
}

// emit pushes one event when a sink is configured.
func emit(sink ResultSink, iteration uint64, s subsets.Set, v *big.Int, status Status) {
	if sink == nil {
		return
	}
	var value *big.Int
	if v != nil {
		value = new(big.Int).Set(v)
	}
	sink.Emit(Event{
		Time:      time.Now(),
		Iteration: iteration,
		Set:       s.Sorted(),
		Value:     value,
		Status:    status,
	})
}

// evaluate computes the configured quantity for one matrix.
func evaluate(m matrices.Matrix, eval Eval) (*big.Int, error) {
	if eval == EvalDeterminant {
		d, err := permanent.Determinant(m)
		if err != nil {
			return nil, err
		}
		return big.NewInt(d), nil
	}
	return permanent.Ryser(m)
}
