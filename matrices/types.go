package matrices

import (
	"strconv"
	"strings"
)

// Matrix is a square integer matrix, row-major. Family constructors only
// ever produce entries in {−1, +1}. A Matrix is immutable by convention:
// evaluators never write to it, and search state retains copies via Clone.
type Matrix [][]int

// FromRows validates that rows form a non-empty square matrix and returns
// it as a Matrix. The slice is adopted, not copied.
func FromRows(rows [][]int) (Matrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrNonSquare
	}
	for _, r := range rows {
		if len(r) != n {
			return nil, ErrNonSquare
		}
	}
	return Matrix(rows), nil
}

// Order returns n for an n×n matrix.
func (m Matrix) Order() int { return len(m) }

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	c := make(Matrix, len(m))
	for i, row := range m {
		c[i] = make([]int, len(row))
		copy(c[i], row)
	}
	return c
}

// IsPMOne reports whether every entry of m is −1 or +1.
func (m Matrix) IsPMOne() bool {
	for _, row := range m {
		for _, v := range row {
			if v != 1 && v != -1 {
				return false
			}
		}
	}
	return true
}

// IsLowerOnes reports whether every entry strictly below the diagonal is 1,
// the structural invariant of the triangle Hankel and upper-triangular
// families.
func (m Matrix) IsLowerOnes() bool {
	for i, row := range m {
		for j := 0; j < i; j++ {
			if row[j] != 1 {
				return false
			}
		}
	}
	return true
}

// OnesRatio returns the fraction of entries equal to +1, in [0,1].
// Used by the search driver's rate filter.
func (m Matrix) OnesRatio() float64 {
	n := len(m)
	if n == 0 {
		return 0
	}
	ones := 0
	for _, row := range m {
		for _, v := range row {
			if v == 1 {
				ones++
			}
		}
	}
	return float64(ones) / float64(n*n)
}

// String renders m row per line with space-separated entries, for logs.
func (m Matrix) String() string {
	var b strings.Builder
	for i, row := range m {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, v := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			if v >= 0 {
				b.WriteByte(' ') // align -1 and 1 columns
			}
			b.WriteString(strconv.Itoa(v))
		}
	}
	return b.String()
}
