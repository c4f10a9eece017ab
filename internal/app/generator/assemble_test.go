package generator

import (
	"context"
	"math/big"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble_ClassOrder(t *testing.T) {
	counts := [classCount]*big.Int{big.NewInt(23), big.NewInt(9), big.NewInt(14)}

	buf, err := assemble(context.Background(), counts, DefaultPool(), big.NewInt(4), 3)
	require.NoError(t, err)
	require.Len(t, buf, 46)

	for i, b := range buf {
		c, ok := classify(b)
		require.True(t, ok)
		switch {
		case i < 23:
			assert.Equal(t, Alphabetic, c, "index %d", i)
		case i < 32:
			assert.Equal(t, Punctuation, c, "index %d", i)
		default:
			assert.Equal(t, Digit, c, "index %d", i)
		}
	}
}

func TestAssembleUnit(t *testing.T) {
	dst := make([]byte, 200)
	assembleUnit(dst, []byte("xy"))

	for _, b := range dst {
		assert.Contains(t, []byte("xy"), b)
	}
	assert.Contains(t, dst, byte('x'))
	assert.Contains(t, dst, byte('y'))
}

func TestShuffle_IsPermutation(t *testing.T) {
	counts := [classCount]*big.Int{big.NewInt(300), big.NewInt(200), big.NewInt(100)}
	buf, err := assemble(context.Background(), counts, DefaultPool(), big.NewInt(64), 0)
	require.NoError(t, err)

	before := slices.Clone(buf)
	shuffle(buf)

	assert.Len(t, buf, len(before))
	slices.Sort(before)
	after := slices.Clone(buf)
	slices.Sort(after)
	assert.Equal(t, before, after)
}

func TestKeyLength(t *testing.T) {
	n, err := keyLength([classCount]*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)})
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	huge, _ := new(big.Int).SetString("100000000000000000000", 10)
	_, err = keyLength([classCount]*big.Int{huge, big.NewInt(0), big.NewInt(0)})
	assert.ErrorIs(t, err, ErrKeyTooLarge)
}
