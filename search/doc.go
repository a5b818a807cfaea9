// Package search drives exhaustive streaming scans over structured ±1
// matrix families, evaluating the permanent (or determinant) of every
// member and tracking extremal statistics against the Kräuter target.
//
// State machine:
//
//	INIT → STREAMING → (TARGET_FOUND | EXHAUSTED | INTERRUPTED)
//
// Per iteration the driver pulls one index set from the Generator, builds
// the matrix with the Constructor, optionally skips it on the ones-ratio
// filter (counted, never evaluated), evaluates it, folds the value into
// the running state (frequency table, positive/zero/negative buckets,
// convention-specific "best"), emits notable events to the result sink,
// and decides whether to continue or stop early on a target match.
//
// Conventions (one per family, never silently unified):
//
//   - MinPositive — best is the minimum strictly positive value; zero and
//     negatives never become "best"; early stop requires an exact positive
//     target match; −target is reported once as NEGATIVE_TARGET_FOUND.
//     Used by the Toeplitz, upper-Toeplitz and triangle Hankel searches.
//   - MinAbsolute — best is the minimum nonzero |value|; target matching
//     is by absolute value.
//   - Buckets — no single best: raw min/max plus positive/zero/negative
//     counts; target matching is by absolute value. Used by the circulant
//     and free upper-triangular full enumerations.
//
// Concurrency: the scan is single-threaded and cooperative. Cancellation
// is checked between iterations only (never mid-evaluation); on a
// cancelled context the run finalizes with OutcomeInterrupted and partial
// statistics intact — interruption is a completion status, not an error.
//
// Errors inside one iteration (constructor or evaluator failure) abort
// only that iteration's contribution: they are counted, the last one is
// retained, and the scan continues — never lost, never fatal.
//
// Errors returned by Run itself: ErrNilGenerator, ErrNilConstructor,
// ErrBadOption — input-validation failures surfaced before streaming.
package search
