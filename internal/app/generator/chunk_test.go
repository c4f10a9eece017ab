package generator

import (
	"iter"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigInt(t *testing.T, s string) *big.Int {
	t.Helper()
	n, err := ParseCount(s)
	require.NoError(t, err)
	return n
}

func mustChunks(t *testing.T, n, unit *big.Int) iter.Seq[int] {
	t.Helper()
	seq, err := Chunks(n, unit)
	require.NoError(t, err)
	return seq
}

func TestChunks_InvalidUnit(t *testing.T) {
	for _, unit := range []string{"0", "9223372036854775808", "100000000000000000000000"} {
		seq, err := Chunks(big.NewInt(10), bigInt(t, unit))
		assert.ErrorIs(t, err, ErrInvalidUnit, unit)
		assert.Nil(t, seq, unit)
	}
}

func TestChunks(t *testing.T) {
	tests := []struct {
		n    string
		unit string
		want []int
	}{
		{n: "0", unit: "5", want: nil},
		{n: "3", unit: "5", want: []int{3}},
		{n: "5", unit: "5", want: []int{5}},
		{n: "12", unit: "5", want: []int{5, 5, 2}},
		{n: "10", unit: "1", want: []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}},
		{n: "65536", unit: "65535", want: []int{65535, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.n+"/"+tt.unit, func(t *testing.T) {
			n, unit := bigInt(t, tt.n), bigInt(t, tt.unit)

			var got []int
			for c := range mustChunks(t, n, unit) {
				got = append(got, c)
			}

			assert.Equal(t, tt.want, got)
			assert.Equal(t, int64(len(tt.want)), ChunkCount(n, unit).Int64())
		})
	}
}

func TestChunks_SumAndBound(t *testing.T) {
	for _, n := range []int64{0, 1, 2, 7, 99, 100, 101, 4096, 100003} {
		for _, unit := range []int64{1, 2, 3, 10, 64, 1000, 65535} {
			sum := int64(0)
			for c := range mustChunks(t, big.NewInt(n), big.NewInt(unit)) {
				assert.Positive(t, c)
				assert.LessOrEqual(t, int64(c), unit)
				sum += int64(c)
			}
			assert.Equal(t, n, sum, "n=%d unit=%d", n, unit)
		}
	}
}

func TestChunks_HugeQuotientIsLazy(t *testing.T) {
	n := bigInt(t, "1000000000000000000000000000000000000001")
	unit := bigInt(t, "1000")

	var got []int
	for c := range mustChunks(t, n, unit) {
		got = append(got, c)
		if len(got) == 3 {
			break
		}
	}

	assert.Equal(t, []int{1000, 1000, 1000}, got)
	assert.Equal(t, "1000000000000000000000000000000000001", ChunkCount(n, unit).String())
}
