package bignum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncAtDigitBoundary(t *testing.T) {
	x := NewFromDigit(65535)
	got := x.Inc()
	assert.Equal(t, []uint16{0, 1}, got.Digits())
}

func TestIncCarriesThroughMultipleDigits(t *testing.T) {
	x := BigUint{digits: []uint16{65535, 65535}}
	got := x.Inc()
	assert.Equal(t, []uint16{0, 0, 1}, got.Digits())
}

func TestDecAtDigitBoundary(t *testing.T) {
	x := BigUint{digits: []uint16{0, 1}}
	got, err := x.Dec()
	require.NoError(t, err)
	assert.Equal(t, []uint16{65535}, got.Digits())
}

func TestDecZeroIsUnderflow(t *testing.T) {
	_, err := Zero().Dec()
	assert.ErrorIs(t, err, ErrUnderflow)
}

func TestShiftLeftRejectsNegative(t *testing.T) {
	_, err := One().ShiftLeft(-1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestShiftLeftZeroIsNoop(t *testing.T) {
	x := NewFromDigit(42)
	got, err := x.ShiftLeft(0)
	require.NoError(t, err)
	assert.True(t, got.Equal(x))
}

func TestShiftLeftPlacesDigits(t *testing.T) {
	x := NewFromDigit(7)
	got, err := x.ShiftLeft(2)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0, 0, 7}, got.Digits())
}
