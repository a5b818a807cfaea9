package permanent

import "errors"

var (
	// ErrNonSquare indicates the input matrix is nil, empty, ragged or
	// not square. Surfaced before any computation proceeds.
	ErrNonSquare = errors.New("permanent: matrix must be square")
	// ErrUnknownMethod indicates a Method value outside the closed enum.
	ErrUnknownMethod = errors.New("permanent: unknown evaluation method")
)

// Method selects the permanent evaluation algorithm.
type Method int

const (
	// MethodRyser is the O(2^n·n) Gray-code Ryser evaluator — the
	// production path and the zero value.
	MethodRyser Method = iota
	// MethodNaive is the O(n!) definitional evaluator, reserved for
	// cross-validation on small matrices.
	MethodNaive
)

// String names the method for logs and errors.
func (m Method) String() string {
	switch m {
	case MethodRyser:
		return "ryser"
	case MethodNaive:
		return "naive"
	default:
		return "unknown"
	}
}

// checkSquare validates the evaluator input contract and returns n.
func checkSquare(m [][]int) (int, error) {
	n := len(m)
	if n == 0 {
		return 0, ErrNonSquare
	}
	for _, row := range m {
		if len(row) != n {
			return 0, ErrNonSquare
		}
	}
	return n, nil
}
