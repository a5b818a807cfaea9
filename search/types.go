package search

import (
	"errors"
	"math/big"
	"time"

	"github.com/krauterlab/permsearch/matrices"
	"github.com/krauterlab/permsearch/subsets"
)

var (
	// ErrNilGenerator indicates Run received a nil Generator.
	ErrNilGenerator = errors.New("search: generator must not be nil")
	// ErrNilConstructor indicates Run received a nil Constructor.
	ErrNilConstructor = errors.New("search: constructor must not be nil")
	// ErrBadOption indicates an inconsistent or out-of-domain option value.
	ErrBadOption = errors.New("search: invalid option")
)

// Generator streams every index set of a family's parameter space.
// *subsets.Sequence satisfies it.
type Generator interface {
	// Next yields the following set, or (nil, false) when drained.
	Next() (subsets.Set, bool)
	// Reset rewinds the enumeration to its first element.
	Reset()
	// Count returns the exact size of the parameter space.
	Count() *big.Int
}

// Constructor turns one index set into its family matrix.
type Constructor func(subsets.Set) (matrices.Matrix, error)

// Convention selects how "best so far" is tracked; see the package doc.
type Convention int

const (
	// MinPositive tracks the minimum strictly positive value.
	MinPositive Convention = iota
	// MinAbsolute tracks the minimum nonzero absolute value.
	MinAbsolute
	// Buckets tracks raw min/max and sign counts, with no single best.
	Buckets
)

// Eval selects the quantity evaluated per matrix.
type Eval int

const (
	// EvalPermanent evaluates the permanent (Ryser). The default.
	EvalPermanent Eval = iota
	// EvalDeterminant evaluates the determinant, for comparison runs.
	EvalDeterminant
)

// Outcome is the terminal state of a run.
type Outcome int

const (
	// OutcomeExhausted: the generator was drained without a target match.
	OutcomeExhausted Outcome = iota
	// OutcomeTargetFound: an exact target match ended the scan early.
	OutcomeTargetFound
	// OutcomeInterrupted: the context was cancelled mid-stream; the
	// accumulated statistics are valid for the processed prefix.
	OutcomeInterrupted
)

// String names the outcome for reports.
func (o Outcome) String() string {
	switch o {
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeTargetFound:
		return "target found"
	case OutcomeInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Status tags a notable event sent to the result sink.
type Status int

const (
	// StatusNewMin: a new convention-best value was recorded.
	StatusNewMin Status = iota
	// StatusMatchesTarget: the value equals the theoretical target.
	StatusMatchesTarget
	// StatusBetterThanTarget: a positive value strictly below the target
	// was observed — a conjecture counterexample candidate.
	StatusBetterThanTarget
	// StatusSkipped: the iteration was rate-filtered, not evaluated.
	StatusSkipped
	// StatusNegativeTargetFound: −target was observed (MinPositive runs
	// report this once and keep scanning).
	StatusNegativeTargetFound
)

// String returns the canonical log tag of the status.
func (s Status) String() string {
	switch s {
	case StatusNewMin:
		return "NEW_MIN"
	case StatusMatchesTarget:
		return "MATCHES_TARGET"
	case StatusBetterThanTarget:
		return "BETTER_THAN_TARGET"
	case StatusSkipped:
		return "SKIPPED"
	case StatusNegativeTargetFound:
		return "NEGATIVE_TARGET_FOUND"
	default:
		return "UNKNOWN"
	}
}

// Event is one notable observation, pushed to the result sink.
type Event struct {
	// Time is the wall-clock moment of the observation.
	Time time.Time
	// Iteration is the processed count at the moment of emission.
	Iteration uint64
	// Set holds the index set sorted ascending, ready for display.
	Set []int
	// Value is the evaluated quantity; nil for skipped iterations.
	Value *big.Int
	// Status tags the event.
	Status Status
}

// ResultSink receives notable events. Write-only: the core never reads
// results back. Implementations need not be safe for concurrent use —
// the driver is single-threaded.
type ResultSink interface {
	Emit(Event)
}

// Progress is one fire-and-forget cadence report.
type Progress struct {
	Processed uint64
	Skipped   uint64
	Total     *big.Int
	Elapsed   time.Duration
}

// ProgressSink receives periodic progress reports.
type ProgressSink interface {
	Report(Progress)
}

// Summary is the finalized result of one run.
type Summary struct {
	// Outcome is the terminal state of the scan.
	Outcome Outcome
	// Target is the theoretical value the scan compared against
	// (nil when the run had no target).
	Target *big.Int
	// Elapsed is the wall-clock duration of the scan.
	Elapsed time.Duration
	// State holds the accumulated statistics.
	State State
}
