package base62

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeInteger(t *testing.T) {
	testCases := []struct {
		input    int64
		expected string
	}{
		{0, "0"},
		{1, "1"},
		{12, "C"},
		{61, "z"},
		{62, "10"},
		{1337, "LZ"},
		{916132832, "100000"},
		{1<<53 - 1, "fFgnDxSe7"},
		{math.MaxInt64, "AzL8n0Y58m7"},
	}
	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			encoded, err := EncodeInteger(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, encoded)

			decoded, err := DecodeInteger(encoded)
			require.NoError(t, err)
			assert.Equal(t, tc.input, decoded)
		})
	}
}

func TestEncodeIntegerNegative(t *testing.T) {
	_, err := EncodeInteger(-1)
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = EncodeInteger(math.MinInt64)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestIntegerRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, 12, 123, 1234, 12345, 123456, 1234567, 12345678, 1234567890} {
		encoded, err := EncodeInteger(n)
		require.NoError(t, err)
		decoded, err := DecodeInteger(encoded)
		require.NoError(t, err)
		assert.Equal(t, n, decoded)
	}
}

func TestUint64(t *testing.T) {
	assert.Equal(t, "LygHa16AHYF", EncodeUint64(math.MaxUint64))

	n, err := DecodeUint64("LygHa16AHYF")
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), n)

	_, err = DecodeUint64("LygHa16AHYG")
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = DecodeUint64("100000000000")
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestDecodeIntegerOverflow(t *testing.T) {
	_, err := DecodeInteger("AzL8n0Y58m8")
	require.ErrorIs(t, err, ErrOverflow)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.NotErrorIs(t, err, ErrInvalidCharacter)

	_, err = DecodeInteger("LygHa16AHYF")
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestDecodeInteger(t *testing.T) {
	n, err := DecodeInteger("")
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = DecodeInteger("00LZ")
	require.NoError(t, err)
	assert.Equal(t, int64(1337), n)

	_, err = DecodeInteger("L.Z")
	var charErr *CharacterError
	require.ErrorAs(t, err, &charErr)
	assert.Equal(t, '.', charErr.Char)
	assert.Equal(t, 1, charErr.Offset)
}

func TestEncodeNumber(t *testing.T) {
	encoded, err := EncodeNumber(1337)
	require.NoError(t, err)
	assert.Equal(t, "LZ", encoded)

	encoded, err = EncodeNumber(math.Copysign(0, -1))
	require.NoError(t, err)
	assert.Equal(t, "0", encoded)

	encoded, err = EncodeNumber(1<<53 - 1)
	require.NoError(t, err)
	assert.Equal(t, "fFgnDxSe7", encoded)

	for _, f := range []float64{-1, 1.5, math.NaN(), math.Inf(1), math.Inf(-1), 1 << 53, 1e300} {
		_, err := EncodeNumber(f)
		assert.ErrorIs(t, err, ErrInvalidValue, "input %v", f)
	}
}
