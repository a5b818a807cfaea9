package matrices

import "errors"

var (
	// ErrNonPositiveOrder indicates a requested matrix order n ≤ 0.
	ErrNonPositiveOrder = errors.New("matrices: order must be a positive integer")
	// ErrNonSquare indicates input rows that do not form a square matrix.
	ErrNonSquare = errors.New("matrices: matrix must be square")
	// ErrIndexOutOfRange indicates an index-set element outside the
	// family's valid domain. Constructors wrap it with the offending
	// values and the valid range; match with errors.Is.
	ErrIndexOutOfRange = errors.New("matrices: index outside the family's valid range")
	// ErrBadNotation indicates malformed family notation text.
	ErrBadNotation = errors.New("matrices: invalid set notation")
)
