package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/krauterlab/permsearch/krauter"
	"github.com/krauterlab/permsearch/matrices"
	"github.com/krauterlab/permsearch/permanent"
)

func runEval(_ *cobra.Command, args []string) error {
	family, n, set, err := matrices.ParseNotation(args[0])
	if err != nil {
		return err
	}

	var method permanent.Method
	switch evalMethod {
	case "ryser":
		method = permanent.MethodRyser
	case "naive":
		method = permanent.MethodNaive
	default:
		return fmt.Errorf("unknown method %q, want 'ryser' or 'naive'", evalMethod)
	}

	m, err := family.New(n, set)
	if err != nil {
		return err
	}
	value, err := permanent.Compute(m, method)
	if err != nil {
		return err
	}

	target, err := krauter.ConjectureValue(n)
	if err != nil {
		return err
	}
	slog.Info("evaluated",
		"notation", args[0],
		"n", n,
		"method", method.String(),
		"permanent", value.String(),
		"conjecture", target.String())

	fmt.Printf("%s\n\nper = %s\n", m, value)
	if evalDet {
		det, err := permanent.Determinant(m)
		if err != nil {
			return err
		}
		fmt.Printf("det = %d\n", det)
	}
	return nil
}
