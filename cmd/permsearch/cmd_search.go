package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/krauterlab/permsearch/krauter"
	"github.com/krauterlab/permsearch/matrices"
	"github.com/krauterlab/permsearch/search"
	"github.com/krauterlab/permsearch/subsets"
)

// familyRun binds one family name to its parameter universe, constructor
// and default best-tracking convention.
type familyRun struct {
	universe   []int
	build      search.Constructor
	convention search.Convention
}

func resolveFamily(name string, n int) (familyRun, error) {
	switch name {
	case "circulant":
		return familyRun{
			universe:   matrices.CirculantUniverse(n),
			build:      func(s subsets.Set) (matrices.Matrix, error) { return matrices.NewCirculant(n, s) },
			convention: search.Buckets,
		}, nil
	case "toeplitz":
		return familyRun{
			universe:   matrices.ToeplitzUniverse(n),
			build:      func(s subsets.Set) (matrices.Matrix, error) { return matrices.NewToeplitz(n, s) },
			convention: search.MinPositive,
		}, nil
	case "hankel":
		return familyRun{
			universe:   matrices.HankelUniverse(n),
			build:      func(s subsets.Set) (matrices.Matrix, error) { return matrices.NewHankelTriangular(n, s) },
			convention: search.MinPositive,
		}, nil
	case "triangle":
		return familyRun{
			universe:   matrices.UpperTriangleUniverse(n),
			build:      func(s subsets.Set) (matrices.Matrix, error) { return matrices.NewUpperTriangular(n, s) },
			convention: search.Buckets,
		}, nil
	case "upper-toeplitz":
		return familyRun{
			universe:   matrices.UpperToeplitzUniverse(n),
			build:      func(s subsets.Set) (matrices.Matrix, error) { return matrices.NewUpperToeplitz(n, s) },
			convention: search.MinPositive,
		}, nil
	default:
		return familyRun{}, fmt.Errorf(
			"unknown family %q, want 'circulant', 'toeplitz', 'hankel', 'triangle' or 'upper-toeplitz'", name)
	}
}

// parseRateBand splits a "L,U" band flag into its bounds.
func parseRateBand(band string) (lower, upper float64, err error) {
	parts := strings.Split(band, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("rate band %q must be 'L,U'", band)
	}
	lower, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("rate band lower bound: %w", err)
	}
	upper, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("rate band upper bound: %w", err)
	}
	return lower, upper, nil
}

// logSink streams notable events to the structured logger.
type logSink struct{}

func (logSink) Emit(e search.Event) {
	attrs := []any{"iteration", e.Iteration, "set", fmt.Sprint(e.Set)}
	if e.Value != nil {
		attrs = append(attrs, "value", e.Value.String())
	}
	slog.Info(e.Status.String(), attrs...)
}

// logProgress reports scan progress to the structured logger.
type logProgress struct{}

func (logProgress) Report(p search.Progress) {
	slog.Info("progress",
		"processed", p.Processed,
		"skipped", p.Skipped,
		"total", p.Total.String(),
		"elapsed", p.Elapsed.Round(time.Millisecond).String())
}

func runSearch(_ *cobra.Command, _ []string) error {
	if searchN < 1 {
		return fmt.Errorf("order %d must be positive", searchN)
	}
	fam, err := resolveFamily(searchFamily, searchN)
	if err != nil {
		return err
	}

	opts := []search.Option{
		search.WithConvention(fam.convention),
		search.WithProgressEvery(searchEvery),
		search.WithResultSink(logSink{}),
		search.WithProgressSink(logProgress{}),
	}
	if searchDet {
		opts = append(opts, search.WithEval(search.EvalDeterminant))
	} else if !searchNoTarget {
		target, err := krauter.ConjectureValue(searchN)
		if err != nil {
			return err
		}
		opts = append(opts, search.WithTarget(target))
		slog.Info("conjecture target", "n", searchN, "target", target.String())
	}
	switch {
	case searchRateBand != "":
		lower, upper, err := parseRateBand(searchRateBand)
		if err != nil {
			return err
		}
		opts = append(opts, search.WithRateBand(lower, upper))
	case searchRate >= 0:
		opts = append(opts, search.WithRateBound(searchRate))
	}

	// SIGINT/SIGTERM cancel the context; the driver stops between
	// iterations and reports the partial scan.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen := subsets.All(fam.universe)
	slog.Info("scan started",
		"family", searchFamily,
		"n", searchN,
		"space", gen.Count().String())

	sum, err := search.Run(ctx, gen, fam.build, opts...)
	if err != nil {
		return err
	}
	reportSummary(sum)

	if searchFreqCSV != "" && sum.State.Frequency != nil {
		if err := writeFrequencyCSV(searchFreqCSV, sum.State.Frequency); err != nil {
			return err
		}
		slog.Info("frequency table written",
			"path", searchFreqCSV,
			"distinct", sum.State.Frequency.Len())
	}
	return nil
}

func reportSummary(sum *search.Summary) {
	attrs := []any{
		"outcome", sum.Outcome.String(),
		"processed", sum.State.Processed,
		"skipped", sum.State.Skipped,
		"errors", sum.State.Errors,
		"positive", sum.State.PositiveCount,
		"zero", sum.State.ZeroCount,
		"negative", sum.State.NegativeCount,
		"elapsed", sum.Elapsed.Round(time.Millisecond).String(),
	}
	if sum.State.Min != nil {
		attrs = append(attrs, "min", sum.State.Min.String(), "max", sum.State.Max.String())
	}
	if sum.State.Best != nil {
		attrs = append(attrs, "best", sum.State.Best.String(), "best_set", fmt.Sprint(sum.State.BestSet.Sorted()))
	}
	if sum.State.NegativeTargetSeen {
		attrs = append(attrs, "negative_target_seen", true)
	}
	slog.Info("scan finished", attrs...)

	if sum.State.BestMatrix != nil {
		fmt.Printf("best matrix (value %s):\n%s\n", sum.State.Best, sum.State.BestMatrix)
	}
}

// writeFrequencyCSV exports the value→count table sorted ascending by value.
func writeFrequencyCSV(path string, freq *search.Frequency) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err := w.Write([]string{"value", "count"}); err != nil {
		f.Close()
		return err
	}
	for _, vc := range freq.Export() {
		if err := w.Write([]string{vc.Value.String(), strconv.FormatUint(vc.Count, 10)}); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
