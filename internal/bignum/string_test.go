package bignum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase10RoundTrip(t *testing.T) {
	values := []string{"0", "1", "65535", "65536", "123456789012345678901234567890"}
	for _, v := range values {
		x, err := FromBase10String(v)
		require.NoError(t, err)
		assert.Equal(t, v, x.ToBase10String())
	}
}

func TestFromBase10StringRejectsInvalid(t *testing.T) {
	_, err := FromBase10String("")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = FromBase10String("12a3")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPipeStringRoundTrip(t *testing.T) {
	x := NewFromWideDigit(70000)
	s := x.ToString()
	assert.Equal(t, "1|4464", s)

	got, err := FromString(s)
	require.NoError(t, err)
	assert.True(t, got.Equal(x))
}

func TestFromStringRejectsOutOfRangeChunk(t *testing.T) {
	_, err := FromString("70000")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
