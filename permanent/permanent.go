package permanent

import (
	"fmt"
	"math/big"
)

// Compute evaluates the permanent of m with the selected method.
// MethodRyser (the zero value) is the production path; MethodNaive is the
// validation oracle. Values outside the enum fail with ErrUnknownMethod
// before any computation proceeds.
func Compute(m [][]int, method Method) (*big.Int, error) {
	switch method {
	case MethodRyser:
		return Ryser(m)
	case MethodNaive:
		return Naive(m)
	default:
		return nil, fmt.Errorf("method %d: %w", int(method), ErrUnknownMethod)
	}
}
