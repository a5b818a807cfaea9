package main

import (
	"github.com/spf13/cobra"

	"github.com/krauterlab/permsearch/search"
)

var (
	evalMethod string
	evalDet    bool

	searchFamily   string
	searchN        int
	searchRate     float64
	searchRateBand string
	searchDet      bool
	searchFreqCSV  string
	searchEvery    uint64
	searchNoTarget bool

	rootCmd = &cobra.Command{
		Use:   "permsearch",
		Short: "Permanents of ±1 matrices and exhaustive Kräuter conjecture searches",
		Long: `permsearch evaluates permanents of ±1 matrices and runs exhaustive
searches over structured matrix families (circulant, Toeplitz, Hankel
triangular, upper triangular), tracking extremal values against the
Kräuter conjecture target 2^(n−⌊log₂(n+1)⌋).`,
	}

	evalCmd = &cobra.Command{
		Use:   "eval <notation>",
		Short: "Evaluate one matrix given in family notation, e.g. T_5{0,2,-3}",
		Args:  cobra.ExactArgs(1),
		RunE:  runEval, // cmd_eval.go
	}

	targetCmd = &cobra.Command{
		Use:   "target <n>",
		Short: "Print the Kräuter conjecture value for order n",
		Args:  cobra.ExactArgs(1),
		RunE:  runTarget, // cmd_target.go
	}

	searchCmd = &cobra.Command{
		Use:   "search",
		Short: "Exhaustively scan a matrix family at a fixed order",
		Args:  cobra.NoArgs,
		RunE:  runSearch, // cmd_search.go
	}
)

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringVar(&evalMethod, "method", "ryser", "Permanent method: 'ryser' or 'naive'")
	evalCmd.Flags().BoolVar(&evalDet, "det", false, "Also print the determinant")

	rootCmd.AddCommand(targetCmd)

	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVar(&searchFamily, "family", "",
		"Matrix family: 'circulant', 'toeplitz', 'hankel', 'triangle' or 'upper-toeplitz'")
	searchCmd.Flags().IntVar(&searchN, "n", 0, "Matrix order")
	searchCmd.Flags().Float64Var(&searchRate, "rate", -1,
		"Skip matrices whose +1 ratio exceeds this bound (in [0,1])")
	searchCmd.Flags().StringVar(&searchRateBand, "rate-band", "",
		"Skip matrices whose +1 ratio falls outside the open band 'L,U'")
	searchCmd.Flags().BoolVar(&searchDet, "det", false, "Evaluate determinants instead of permanents")
	searchCmd.Flags().StringVar(&searchFreqCSV, "freq-csv", "",
		"Write the value frequency table to this CSV path when the scan ends")
	searchCmd.Flags().Uint64Var(&searchEvery, "progress-every", search.DefaultProgressEvery,
		"Log a progress line every K processed matrices")
	searchCmd.Flags().BoolVar(&searchNoTarget, "no-target", false,
		"Scan without the conjecture target (never stops early)")
	_ = searchCmd.MarkFlagRequired("family")
	_ = searchCmd.MarkFlagRequired("n")
}
