package matrices_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krauterlab/permsearch/matrices"
	"github.com/krauterlab/permsearch/subsets"
)

func TestUniverseDomains(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, matrices.CirculantUniverse(4))
	assert.Equal(t, []int{-3, -2, -1, 0, 1, 2, 3}, matrices.ToeplitzUniverse(4))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, matrices.HankelUniverse(4))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, matrices.UpperTriangleUniverse(3))
	assert.Equal(t, []int{0, 1, 2, 3}, matrices.UpperToeplitzUniverse(4))

	assert.True(t, matrices.UpperToeplitzBase(4).Equal(subsets.New(-3, -2, -1)))
	assert.Equal(t, 0, matrices.UpperToeplitzBase(1).Len())
}

// The Hankel parameter space at order n has exactly 2^(2n−1) sets, opening
// on the empty set and closing on the full universe.
func TestHankelGeneratorCompleteness(t *testing.T) {
	const n = 3
	universe := matrices.HankelUniverse(n)
	q := subsets.All(universe)
	require.Equal(t, big.NewInt(32), q.Count()) // 2^(2·3−1)

	seen := make(map[string]bool)
	var first, last subsets.Set
	for {
		s, ok := q.Next()
		if !ok {
			break
		}
		if first == nil {
			first = s
		}
		last = s
		key := s.String()
		assert.False(t, seen[key], "duplicate set %s", key)
		seen[key] = true

		// Every yield parameterizes a valid matrix.
		_, err := matrices.NewHankelTriangular(n, s)
		require.NoError(t, err)
	}

	assert.Len(t, seen, 32)
	assert.Equal(t, 0, first.Len())
	assert.Equal(t, universe, last.Sorted())
}
