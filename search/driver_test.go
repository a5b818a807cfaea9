package search

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krauterlab/permsearch/matrices"
	"github.com/krauterlab/permsearch/subsets"
)

// fakeGen yields the singleton sets {0}, {1}, ..., {n-1} in order.
// Small enough to script a run value-by-value.
type fakeGen struct {
	n, i int
}

func (g *fakeGen) Next() (subsets.Set, bool) {
	if g.i >= g.n {
		return nil, false
	}
	s := subsets.New(g.i)
	g.i++
	return s, true
}

func (g *fakeGen) Reset()          { g.i = 0 }
func (g *fakeGen) Count() *big.Int { return big.NewInt(int64(g.n)) }

// scripted returns a generator/constructor pair whose i-th evaluated
// matrix is diag(vals[i], 1), so the permanent (and determinant) of the
// i-th iteration is exactly vals[i]. builds counts constructor calls.
func scripted(vals []int64) (Generator, Constructor, *int) {
	builds := new(int)
	build := func(subsets.Set) (matrices.Matrix, error) {
		v := vals[*builds]
		*builds++
		return matrices.Matrix{{int(v), 0}, {0, 1}}, nil
	}
	return &fakeGen{n: len(vals)}, build, builds
}

type captureSink struct {
	events []Event
}

func (c *captureSink) Emit(e Event) { c.events = append(c.events, e) }

func (c *captureSink) statuses() []Status {
	out := make([]Status, len(c.events))
	for i, e := range c.events {
		out[i] = e.Status
	}
	return out
}

type captureProgress struct {
	reports []Progress
}

func (c *captureProgress) Report(p Progress) { c.reports = append(c.reports, p) }

func TestRun_NilArguments(t *testing.T) {
	gen, build, _ := scripted([]int64{1})

	sum, err := Run(context.Background(), nil, build)
	require.ErrorIs(t, err, ErrNilGenerator)
	assert.Nil(t, sum)

	sum, err = Run(context.Background(), gen, nil)
	require.ErrorIs(t, err, ErrNilConstructor)
	assert.Nil(t, sum)
}

func TestRun_OptionValidation(t *testing.T) {
	cases := []struct {
		name string
		opt  Option
	}{
		{"unknown convention", WithConvention(Convention(42))},
		{"unknown eval", WithEval(Eval(42))},
		{"zero cadence", WithProgressEvery(0)},
		{"rate bound above one", WithRateBound(1.5)},
		{"inverted rate band", WithRateBand(0.8, 0.2)},
		{"non-positive target", WithTarget(big.NewInt(0))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gen, build, _ := scripted([]int64{1})
			sum, err := Run(context.Background(), gen, build, tc.opt)
			require.ErrorIs(t, err, ErrBadOption)
			assert.Nil(t, sum)
		})
	}
}

func TestRun_ExhaustedMinPositive(t *testing.T) {
	gen, build, _ := scripted([]int64{0, 5, -3, 3})
	sink := &captureSink{}

	sum, err := Run(context.Background(), gen, build, WithResultSink(sink))
	require.NoError(t, err)

	assert.Equal(t, OutcomeExhausted, sum.Outcome)
	assert.Equal(t, uint64(4), sum.State.Processed)
	assert.Equal(t, uint64(2), sum.State.PositiveCount)
	assert.Equal(t, uint64(1), sum.State.ZeroCount)
	assert.Equal(t, uint64(1), sum.State.NegativeCount)
	assert.Equal(t, big.NewInt(-3), sum.State.Min)
	assert.Equal(t, big.NewInt(5), sum.State.Max)

	// Positive minimum is 3, reached via 5.
	require.NotNil(t, sum.State.Best)
	assert.Equal(t, big.NewInt(3), sum.State.Best)
	assert.Equal(t, []int{3}, sum.State.BestSet.Sorted())
	assert.Equal(t, []Status{StatusNewMin, StatusNewMin}, sink.statuses())

	require.NotNil(t, sum.State.Frequency)
	assert.Equal(t, 4, sum.State.Frequency.Len())
	assert.Equal(t, uint64(1), sum.State.Frequency.Count(big.NewInt(5)))
}

// A target match must end the scan on the matching iteration: nothing
// after it is built or evaluated.
func TestRun_TargetMatchStopsEarly(t *testing.T) {
	gen, build, builds := scripted([]int64{5, 2, 7, 3})
	sink := &captureSink{}

	sum, err := Run(context.Background(), gen, build,
		WithTarget(big.NewInt(2)),
		WithResultSink(sink))
	require.NoError(t, err)

	assert.Equal(t, OutcomeTargetFound, sum.Outcome)
	assert.True(t, sum.State.TargetFound)
	assert.Equal(t, uint64(2), sum.State.Processed)
	assert.Equal(t, 2, *builds)
	assert.Equal(t, big.NewInt(2), sum.State.Best)

	require.Len(t, sink.events, 2)
	assert.Equal(t, StatusMatchesTarget, sink.events[1].Status)
	assert.Equal(t, big.NewInt(2), sink.events[1].Value)
}

// A positive value strictly below the target is a counterexample
// candidate: it is tagged BETTER_THAN_TARGET and the scan continues.
func TestRun_BetterThanTarget(t *testing.T) {
	gen, build, _ := scripted([]int64{5, 1, 4})
	sink := &captureSink{}

	sum, err := Run(context.Background(), gen, build,
		WithTarget(big.NewInt(2)),
		WithResultSink(sink))
	require.NoError(t, err)

	assert.Equal(t, OutcomeExhausted, sum.Outcome)
	assert.False(t, sum.State.TargetFound)
	assert.Equal(t, big.NewInt(1), sum.State.Best)
	assert.Equal(t, []Status{StatusNewMin, StatusBetterThanTarget}, sink.statuses())
}

func TestRun_NegativeTargetReportedOnce(t *testing.T) {
	gen, build, _ := scripted([]int64{5, -2, -2, 3})
	sink := &captureSink{}

	sum, err := Run(context.Background(), gen, build,
		WithTarget(big.NewInt(2)),
		WithResultSink(sink))
	require.NoError(t, err)

	assert.Equal(t, OutcomeExhausted, sum.Outcome)
	assert.True(t, sum.State.NegativeTargetSeen)
	assert.False(t, sum.State.TargetFound)
	assert.Equal(t, []Status{
		StatusNewMin,
		StatusNegativeTargetFound,
		StatusNewMin,
	}, sink.statuses())
}

func TestRun_MinAbsolute(t *testing.T) {
	gen, build, _ := scripted([]int64{5, -3, 2, -1})
	sink := &captureSink{}

	sum, err := Run(context.Background(), gen, build,
		WithConvention(MinAbsolute),
		WithTarget(big.NewInt(2)),
		WithResultSink(sink))
	require.NoError(t, err)

	assert.Equal(t, OutcomeTargetFound, sum.Outcome)
	assert.Equal(t, uint64(3), sum.State.Processed)
	// Best is the absolute value; events carry the signed one.
	assert.Equal(t, big.NewInt(2), sum.State.Best)
	require.Len(t, sink.events, 3)
	assert.Equal(t, big.NewInt(-3), sink.events[1].Value)
	assert.Equal(t, []Status{
		StatusNewMin,
		StatusNewMin,
		StatusMatchesTarget,
	}, sink.statuses())
}

func TestRun_BucketsTargetMatch(t *testing.T) {
	gen, build, _ := scripted([]int64{5, -2, 0, 3})

	sum, err := Run(context.Background(), gen, build,
		WithConvention(Buckets),
		WithTarget(big.NewInt(2)))
	require.NoError(t, err)

	// |−2| matches the target; Buckets keeps no single best.
	assert.Equal(t, OutcomeTargetFound, sum.Outcome)
	assert.Equal(t, uint64(2), sum.State.Processed)
	assert.Nil(t, sum.State.Best)
}

func TestRun_BucketsNoTarget(t *testing.T) {
	gen, build, _ := scripted([]int64{5, -2, 0, 3})
	sink := &captureSink{}

	sum, err := Run(context.Background(), gen, build,
		WithConvention(Buckets),
		WithResultSink(sink))
	require.NoError(t, err)

	assert.Equal(t, OutcomeExhausted, sum.Outcome)
	assert.Equal(t, uint64(4), sum.State.Processed)
	assert.Equal(t, big.NewInt(-2), sum.State.Min)
	assert.Equal(t, big.NewInt(5), sum.State.Max)
	assert.Equal(t, uint64(2), sum.State.PositiveCount)
	assert.Equal(t, uint64(1), sum.State.ZeroCount)
	assert.Equal(t, uint64(1), sum.State.NegativeCount)
	assert.Nil(t, sum.State.Best)
	assert.Empty(t, sink.events)
}

// Cancellation is cooperative: the check runs between iterations, so a
// context cancelled during build k stops the scan before iteration k+1,
// leaving valid prefix statistics and a nil error.
func TestRun_Interrupted(t *testing.T) {
	vals := []int64{9, 8, 7, 6, 5, 4, 3, 2}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	builds := 0
	build := func(subsets.Set) (matrices.Matrix, error) {
		v := vals[builds]
		builds++
		if builds == 3 {
			cancel()
		}
		return matrices.Matrix{{int(v), 0}, {0, 1}}, nil
	}

	sum, err := Run(ctx, &fakeGen{n: len(vals)}, build)
	require.NoError(t, err)

	assert.Equal(t, OutcomeInterrupted, sum.Outcome)
	assert.Equal(t, uint64(3), sum.State.Processed)
	assert.Equal(t, 3, builds)
	assert.Equal(t, big.NewInt(7), sum.State.Best)
	assert.Equal(t, big.NewInt(7), sum.State.Min)
	assert.Equal(t, big.NewInt(9), sum.State.Max)
}

func TestRun_RateBoundSkips(t *testing.T) {
	// Ones ratios: 1.0, 0.5, 0.0 in yield order.
	plan := []matrices.Matrix{
		{{1, 1}, {1, 1}},
		{{1, -1}, {-1, 1}},
		{{-1, -1}, {-1, -1}},
	}
	builds := 0
	build := func(subsets.Set) (matrices.Matrix, error) {
		m := plan[builds]
		builds++
		return m, nil
	}
	sink := &captureSink{}

	sum, err := Run(context.Background(), &fakeGen{n: len(plan)}, build,
		WithRateBound(0.6),
		WithSkipEvents(true),
		WithResultSink(sink))
	require.NoError(t, err)

	assert.Equal(t, uint64(1), sum.State.Skipped)
	assert.Equal(t, uint64(2), sum.State.Processed)

	require.NotEmpty(t, sink.events)
	assert.Equal(t, StatusSkipped, sink.events[0].Status)
	assert.Nil(t, sink.events[0].Value)
}

func TestRun_RateBandSkips(t *testing.T) {
	plan := []matrices.Matrix{
		{{1, 1}, {1, 1}},     // ratio 1.0: at/above upper
		{{1, -1}, {-1, 1}},   // ratio 0.5: inside the band, kept
		{{-1, -1}, {-1, -1}}, // ratio 0.0: at/below lower
	}
	builds := 0
	build := func(subsets.Set) (matrices.Matrix, error) {
		m := plan[builds]
		builds++
		return m, nil
	}

	sum, err := Run(context.Background(), &fakeGen{n: len(plan)}, build,
		WithRateBand(0.25, 0.75))
	require.NoError(t, err)

	assert.Equal(t, uint64(2), sum.State.Skipped)
	assert.Equal(t, uint64(1), sum.State.Processed)
}

// A failing constructor costs one iteration, not the run.
func TestRun_ConstructorErrorsContinue(t *testing.T) {
	sentinel := errors.New("bad set")
	builds := 0
	build := func(subsets.Set) (matrices.Matrix, error) {
		builds++
		if builds == 2 {
			return nil, sentinel
		}
		return matrices.Matrix{{1, 0}, {0, 1}}, nil
	}

	sum, err := Run(context.Background(), &fakeGen{n: 3}, build)
	require.NoError(t, err)

	assert.Equal(t, OutcomeExhausted, sum.Outcome)
	assert.Equal(t, uint64(2), sum.State.Processed)
	assert.Equal(t, uint64(1), sum.State.Errors)
	assert.ErrorIs(t, sum.State.LastErr, sentinel)
}

func TestRun_ProgressCadence(t *testing.T) {
	gen, build, _ := scripted([]int64{1, 2, 3, 4, 5})
	progress := &captureProgress{}

	sum, err := Run(context.Background(), gen, build,
		WithConvention(Buckets),
		WithProgressSink(progress),
		WithProgressEvery(2))
	require.NoError(t, err)

	assert.Equal(t, uint64(5), sum.State.Processed)
	require.Len(t, progress.reports, 2)
	assert.Equal(t, uint64(2), progress.reports[0].Processed)
	assert.Equal(t, uint64(4), progress.reports[1].Processed)
	assert.Equal(t, big.NewInt(5), progress.reports[0].Total)
}

func TestRun_FrequencyDisabled(t *testing.T) {
	gen, build, _ := scripted([]int64{1, 2})

	sum, err := Run(context.Background(), gen, build, WithFrequency(false))
	require.NoError(t, err)
	assert.Nil(t, sum.State.Frequency)
}

func TestRun_EvalDeterminant(t *testing.T) {
	gen, build, _ := scripted([]int64{4, 2, 6})

	sum, err := Run(context.Background(), gen, build,
		WithEval(EvalDeterminant),
		WithTarget(big.NewInt(2)))
	require.NoError(t, err)

	assert.Equal(t, OutcomeTargetFound, sum.Outcome)
	assert.Equal(t, uint64(2), sum.State.Processed)
	assert.Equal(t, big.NewInt(2), sum.State.Best)
}

// Full circulant scan at n=3: 2^3 subsets, extremes are the all-ones
// matrix (permanent 6) and its negation (permanent −6).
func TestRun_CirculantEndToEnd(t *testing.T) {
	n := 3
	gen := subsets.All(matrices.CirculantUniverse(n))
	build := func(s subsets.Set) (matrices.Matrix, error) {
		return matrices.NewCirculant(n, s)
	}

	sum, err := Run(context.Background(), gen, build,
		WithConvention(Buckets))
	require.NoError(t, err)

	assert.Equal(t, OutcomeExhausted, sum.Outcome)
	assert.Equal(t, uint64(8), sum.State.Processed)
	assert.Equal(t, big.NewInt(-6), sum.State.Min)
	assert.Equal(t, big.NewInt(6), sum.State.Max)
	require.NotNil(t, sum.State.Frequency)
	assert.Positive(t, sum.State.Frequency.Len())
}

// Hankel scan at n=2 against its conjecture target 2. In enumeration
// order the permanents open 0, −2, 2: the third set {1} is the first
// exact match, so the scan must stop there with 5 of the 8 sets unseen.
func TestRun_HankelTargetStopsMidStream(t *testing.T) {
	const n = 2
	gen := subsets.All(matrices.HankelUniverse(n))
	builds := 0
	build := func(s subsets.Set) (matrices.Matrix, error) {
		builds++
		return matrices.NewHankelTriangular(n, s)
	}
	sink := &captureSink{}

	sum, err := Run(context.Background(), gen, build,
		WithTarget(big.NewInt(2)),
		WithResultSink(sink))
	require.NoError(t, err)

	assert.Equal(t, OutcomeTargetFound, sum.Outcome)
	assert.Equal(t, uint64(3), sum.State.Processed)
	assert.Equal(t, 3, builds)
	assert.True(t, sum.State.NegativeTargetSeen) // the {0} set gives −2
	assert.Equal(t, []int{1}, sum.State.BestSet.Sorted())
	assert.Equal(t, big.NewInt(2), sum.State.Best)
	assert.Equal(t, []Status{
		StatusNegativeTargetFound,
		StatusMatchesTarget,
	}, sink.statuses())
}

func TestOutcomeAndStatusStrings(t *testing.T) {
	assert.Equal(t, "exhausted", OutcomeExhausted.String())
	assert.Equal(t, "target found", OutcomeTargetFound.String())
	assert.Equal(t, "interrupted", OutcomeInterrupted.String())
	assert.Equal(t, "unknown", Outcome(42).String())

	assert.Equal(t, "NEW_MIN", StatusNewMin.String())
	assert.Equal(t, "MATCHES_TARGET", StatusMatchesTarget.String())
	assert.Equal(t, "BETTER_THAN_TARGET", StatusBetterThanTarget.String())
	assert.Equal(t, "SKIPPED", StatusSkipped.String())
	assert.Equal(t, "NEGATIVE_TARGET_FOUND", StatusNegativeTargetFound.String())
}
