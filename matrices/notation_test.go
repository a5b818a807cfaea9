package matrices_test

import (
	"testing"

	"github.com/krauterlab/permsearch/matrices"
	"github.com/krauterlab/permsearch/subsets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseNotation_Hankel pins the canonical round-trip example:
// "H_6{0,2,4..10}" parses, constructs, and re-derives the same set.
func TestParseNotation_Hankel(t *testing.T) {
	family, n, s, err := matrices.ParseNotation("H_6{0,2,4..10}")
	require.NoError(t, err)
	assert.Equal(t, matrices.FamilyHankel, family)
	assert.Equal(t, 6, n)
	assert.Equal(t, []int{0, 2, 4, 5, 6, 7, 8, 9, 10}, s.Sorted())

	m, err := family.New(n, s)
	require.NoError(t, err)
	assert.True(t, m.IsPMOne())
	assert.True(t, m.IsLowerOnes())
	assert.True(t, matrices.HankelSet(m).Equal(s), "set must survive the matrix round-trip")
}

// TestParseNotation_Families covers each prefix and the braced-n form.
func TestParseNotation_Families(t *testing.T) {
	tests := []struct {
		in     string
		family matrices.Family
		n      int
		want   []int
	}{
		{"C_20{0,1,5}", matrices.FamilyCirculant, 20, []int{0, 1, 5}},
		{"T_{7}{-6,-1..2}", matrices.FamilyToeplitz, 7, []int{-6, -1, 0, 1, 2}},
		{"H_3{0,2,4}", matrices.FamilyHankel, 3, []int{0, 2, 4}},
		{"U_3{0,4,5}", matrices.FamilyUpperTriangular, 3, []int{0, 4, 5}},
	}
	for _, tc := range tests {
		family, n, s, err := matrices.ParseNotation(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.family, family, tc.in)
		assert.Equal(t, tc.n, n, tc.in)
		assert.Equal(t, tc.want, s.Sorted(), tc.in)
	}
}

// TestParseNotation_Rejects covers malformed text, bad ranges and
// out-of-range indices.
func TestParseNotation_Rejects(t *testing.T) {
	for _, in := range []string{
		"",
		"H_6",
		"X_6{0}",
		"H6{0}",
		"H_6{}",
		"H_6{a}",
		"H_6{1..}",
	} {
		_, _, _, err := matrices.ParseNotation(in)
		assert.ErrorIs(t, err, matrices.ErrBadNotation, "input %q", in)
	}

	// Inverted range is malformed, not out-of-range.
	_, _, _, err := matrices.ParseNotation("H_6{5..2}")
	assert.ErrorIs(t, err, matrices.ErrBadNotation)

	// Valid text, invalid domain: H_6 allows 0..10 only.
	_, _, _, err = matrices.ParseNotation("H_6{0,11}")
	require.ErrorIs(t, err, matrices.ErrIndexOutOfRange)
	assert.Contains(t, err.Error(), "11")
	assert.Contains(t, err.Error(), "0..10")

	// Negative indices are never valid for Hankel.
	_, _, _, err = matrices.ParseNotation("H_6{-1}")
	assert.ErrorIs(t, err, matrices.ErrIndexOutOfRange)

	// Circulant domain is 0..n-1.
	_, _, _, err = matrices.ParseNotation("C_5{5}")
	assert.ErrorIs(t, err, matrices.ErrIndexOutOfRange)
}

// TestParseNotation_RoundTripAll re-derives S through each family's
// inverse derivation.
func TestParseNotation_RoundTripAll(t *testing.T) {
	derive := map[matrices.Family]func(matrices.Matrix) subsets.Set{
		matrices.FamilyCirculant:       matrices.CirculantSet,
		matrices.FamilyToeplitz:        matrices.ToeplitzSet,
		matrices.FamilyHankel:          matrices.HankelSet,
		matrices.FamilyUpperTriangular: matrices.UpperTriangularSet,
	}
	for _, in := range []string{
		"C_6{0,2..4}",
		"T_6{-5,-2..1,3}",
		"H_6{1,3..7}",
		"U_6{0,5..9,20}",
	} {
		family, n, s, err := matrices.ParseNotation(in)
		require.NoError(t, err, in)
		m, err := family.New(n, s)
		require.NoError(t, err, in)
		assert.True(t, derive[family](m).Equal(s), "round-trip failed for %s", in)
	}
}
