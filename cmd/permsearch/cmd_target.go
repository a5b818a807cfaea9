package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/krauterlab/permsearch/krauter"
)

func runTarget(_ *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("order %q is not an integer: %w", args[0], err)
	}
	value, err := krauter.ConjectureValue(n)
	if err != nil {
		return err
	}
	fmt.Println(value)
	return nil
}
