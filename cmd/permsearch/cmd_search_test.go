package main

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krauterlab/permsearch/search"
	"github.com/krauterlab/permsearch/subsets"
)

func TestResolveFamily(t *testing.T) {
	cases := []struct {
		name       string
		universe   int
		convention search.Convention
	}{
		{"circulant", 4, search.Buckets},
		{"toeplitz", 7, search.MinPositive},
		{"hankel", 7, search.MinPositive},
		{"triangle", 10, search.Buckets},
		{"upper-toeplitz", 4, search.MinPositive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fam, err := resolveFamily(tc.name, 4)
			require.NoError(t, err)
			assert.Len(t, fam.universe, tc.universe)
			assert.Equal(t, tc.convention, fam.convention)

			m, err := fam.build(subsets.New(fam.universe[0]))
			require.NoError(t, err)
			assert.Equal(t, 4, m.Order())
			assert.True(t, m.IsPMOne())
		})
	}

	_, err := resolveFamily("hadamard", 4)
	assert.Error(t, err)
}

func TestParseRateBand(t *testing.T) {
	lower, upper, err := parseRateBand("0.25, 0.75")
	require.NoError(t, err)
	assert.Equal(t, 0.25, lower)
	assert.Equal(t, 0.75, upper)

	_, _, err = parseRateBand("0.5")
	assert.Error(t, err)
	_, _, err = parseRateBand("a,b")
	assert.Error(t, err)
}

func TestWriteFrequencyCSV(t *testing.T) {
	freq := search.NewFrequency()
	freq.Add(big.NewInt(4))
	freq.Add(big.NewInt(-2))
	freq.Add(big.NewInt(4))

	path := filepath.Join(t.TempDir(), "freq.csv")
	require.NoError(t, writeFrequencyCSV(path, freq))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "value,count\n-2,1\n4,2\n", string(data))
}
