package bignum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructionBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		build      func() BigUint
		wantDigits []uint16
	}{
		{"zero", Zero, []uint16{0}},
		{"one", One, []uint16{1}},
		{"wide digit below base", func() BigUint { return NewFromWideDigit(65535) }, []uint16{65535}},
		{"wide digit at base", func() BigUint { return NewFromWideDigit(65536) }, []uint16{0, 1}},
		{"wide digit above base", func() BigUint { return NewFromWideDigit(70000) }, []uint16{4464, 1}},
		{"big-endian literal canonicalizes leading zero digit", func() BigUint {
			return NewFromBigEndianDigits([]uint16{0, 0, 5})
		}, []uint16{5}},
		{"big-endian all-zero collapses to zero", func() BigUint {
			return NewFromBigEndianDigits([]uint16{0, 0})
		}, []uint16{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.build()
			assert.Equal(t, tt.wantDigits, got.Digits())
		})
	}
}

func TestAsDigitAsWideDigitAsByte(t *testing.T) {
	x := NewFromWideDigit(70000)
	_, ok := x.AsDigit()
	assert.False(t, ok, "70000 should not fit a single digit")

	wide, ok := x.AsWideDigit()
	require.True(t, ok)
	assert.Equal(t, uint32(70000), wide)

	_, ok = x.AsByte()
	assert.False(t, ok)

	small := NewFromByte(200)
	b, ok := small.AsByte()
	require.True(t, ok)
	assert.Equal(t, uint8(200), b)
}

func TestIsZeroIsOneIsEvenIsOdd(t *testing.T) {
	assert.True(t, Zero().IsZero())
	assert.True(t, One().IsOne())
	assert.True(t, Zero().IsEven())
	assert.True(t, One().IsOdd())
	assert.True(t, Two().IsEven())
}

func TestCmpOrdering(t *testing.T) {
	a := NewFromWideDigit(70000)
	b := NewFromDigit(5)
	assert.Equal(t, 1, a.Cmp(b))
	assert.Equal(t, -1, b.Cmp(a))
	assert.True(t, a.Equal(a))
	assert.True(t, b.Less(a))
	assert.True(t, a.Greater(b))
}
