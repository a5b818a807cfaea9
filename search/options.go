package search

import (
	"fmt"
	"math/big"
)

// DefaultProgressEvery is the progress-report cadence in processed
// iterations when WithProgressEvery is not given.
const DefaultProgressEvery = 1000

// rateMode discriminates the ones-ratio filter forms.
type rateMode int

const (
	rateOff rateMode = iota
	// rateBound skips a matrix when ratio > upper.
	rateBound
	// rateBand skips a matrix when ratio ≤ lower or ratio ≥ upper.
	rateBand
)

// config carries the validated run configuration. Fields are unexported;
// public construction goes through the With* options, and Run validates
// the assembled config before streaming.
type config struct {
	target        *big.Int
	convention    Convention
	eval          Eval
	rate          rateMode
	rateLower     float64
	rateUpper     float64
	results       ResultSink
	progress      ProgressSink
	progressEvery uint64
	skipEvents    bool
	frequency     bool
}

// Option mutates the run configuration.
type Option func(*config)

func defaultConfig() config {
	return config{
		progressEvery: DefaultProgressEvery,
		frequency:     true,
	}
}

// WithTarget sets the theoretical target value the scan compares against
// and stops on. The value is copied. Nil clears the target.
func WithTarget(target *big.Int) Option {
	return func(c *config) {
		if target == nil {
			c.target = nil
			return
		}
		c.target = new(big.Int).Set(target)
	}
}

// WithConvention selects the best-tracking convention (default MinPositive).
func WithConvention(conv Convention) Option {
	return func(c *config) { c.convention = conv }
}

// WithEval selects the evaluated quantity (default EvalPermanent).
func WithEval(eval Eval) Option {
	return func(c *config) { c.eval = eval }
}

// WithRateBound enables the single-bound ones-ratio filter:
// skip a matrix (count it, never evaluate it) when its ones ratio
// exceeds upper.
func WithRateBound(upper float64) Option {
	return func(c *config) {
		c.rate = rateBound
		c.rateUpper = upper
	}
}

// WithRateBand enables the open-interval ones-ratio filter:
// skip a matrix when its ones ratio is ≤ lower or ≥ upper.
func WithRateBand(lower, upper float64) Option {
	return func(c *config) {
		c.rate = rateBand
		c.rateLower = lower
		c.rateUpper = upper
	}
}

// WithResultSink directs notable events to sink. Nil disables emission.
func WithResultSink(sink ResultSink) Option {
	return func(c *config) { c.results = sink }
}

// WithProgressSink directs cadence reports to sink. Nil disables them.
func WithProgressSink(sink ProgressSink) Option {
	return func(c *config) { c.progress = sink }
}

// WithProgressEvery sets the cadence (in processed iterations) of
// progress reports. Must be ≥ 1.
func WithProgressEvery(every uint64) Option {
	return func(c *config) { c.progressEvery = every }
}

// WithSkipEvents emits a SKIPPED event per rate-filtered iteration.
// Off by default: skip volume is combinatorial.
func WithSkipEvents(on bool) Option {
	return func(c *config) { c.skipEvents = on }
}

// WithFrequency toggles the value→count table (default on). Disabling it
// caps memory on runs whose distribution is not needed.
func WithFrequency(on bool) Option {
	return func(c *config) { c.frequency = on }
}

// validate enforces internal consistency; every violation wraps ErrBadOption.
func (c *config) validate() error {
	switch c.convention {
	case MinPositive, MinAbsolute, Buckets:
	default:
		return fmt.Errorf("convention %d: %w", int(c.convention), ErrBadOption)
	}
	switch c.eval {
	case EvalPermanent, EvalDeterminant:
	default:
		return fmt.Errorf("eval %d: %w", int(c.eval), ErrBadOption)
	}
	if c.progressEvery == 0 {
		return fmt.Errorf("progress cadence must be >= 1: %w", ErrBadOption)
	}
	switch c.rate {
	case rateOff:
	case rateBound:
		if c.rateUpper < 0 || c.rateUpper > 1 {
			return fmt.Errorf("rate bound %v outside [0,1]: %w", c.rateUpper, ErrBadOption)
		}
	case rateBand:
		if c.rateLower < 0 || c.rateUpper > 1 || c.rateLower >= c.rateUpper {
			return fmt.Errorf("rate band (%v,%v) invalid: %w", c.rateLower, c.rateUpper, ErrBadOption)
		}
	}
	if c.target != nil && c.target.Sign() <= 0 {
		return fmt.Errorf("target must be positive: %w", ErrBadOption)
	}
	return nil
}

// skips reports whether the configured filter excludes a ones ratio.
func (c *config) skips(ratio float64) bool {
	switch c.rate {
	case rateBound:
		return ratio > c.rateUpper
	case rateBand:
		return ratio <= c.rateLower || ratio >= c.rateUpper
	default:
		return false
	}
}
