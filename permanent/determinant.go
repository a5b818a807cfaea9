package permanent

import "math"

// Determinant computes the determinant of a square integer matrix by
// Gaussian elimination with partial pivoting on a float64 working copy.
// The matrices under study are integer valued, so the true determinant is
// an integer; accumulated floating-point error is corrected by rounding
// to the nearest integer — never by truncation, which would bias results
// like 3.9999999 down to 3.
//
// Complexity: O(n³) time, O(n²) memory for the working copy.
// Errors: ErrNonSquare. The input is never mutated.
func Determinant(m [][]int) (int64, error) {
	n, err := checkSquare(m)
	if err != nil {
		return 0, err
	}

	a := make([][]float64, n)
	for i, row := range m {
		a[i] = make([]float64, n)
		for j, v := range row {
			a[i][j] = float64(v)
		}
	}

	det := 1.0
	for col := 0; col < n; col++ {
		// Partial pivoting: largest magnitude in the column keeps the
		// elimination numerically stable.
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if a[pivot][col] == 0 {
			return 0, nil
		}
		if pivot != col {
			a[pivot], a[col] = a[col], a[pivot]
			det = -det
		}

		det *= a[col][col]
		for r := col + 1; r < n; r++ {
			factor := a[r][col] / a[col][col]
			for c := col; c < n; c++ {
				a[r][c] -= factor * a[col][c]
			}
		}
	}

	return int64(math.Round(det)), nil
}
