package factortable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedTable builds the small table used across these tests: the primes 2,
// 3, 5, 7 and their composites up to 10, exactly the scenario a dev
// resource file for this driver would seed with.
func seedTable() *Table {
	table := New()
	table.Put(num("2"), nil)
	table.Put(num("3"), nil)
	table.Put(num("4"), nums("2", "2"))
	table.Put(num("5"), nil)
	table.Put(num("6"), nums("2", "3"))
	table.Put(num("7"), nil)
	table.Put(num("8"), nums("2", "2", "2"))
	table.Put(num("9"), nums("3", "3"))
	table.Put(num("10"), nums("2", "5"))
	return table
}

func TestFactorizeRejectsZeroAndOne(t *testing.T) {
	table := seedTable()
	_, err := Factorize(num("0"), table)
	assert.ErrorIs(t, err, ErrInvalidNumber)
	_, err = Factorize(num("1"), table)
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestFactorizeReturnsCachedEntry(t *testing.T) {
	table := seedTable()
	factors, err := Factorize(num("8"), table)
	require.NoError(t, err)
	assert.Len(t, factors, 3)
}

func TestFactorizeDetectsNextPrime(t *testing.T) {
	table := seedTable()
	factors, err := Factorize(num("11"), table)
	require.NoError(t, err)
	assert.Empty(t, factors)
}

func TestFactorizeComposesFromQuotient(t *testing.T) {
	table := seedTable()
	table.Put(num("11"), nil)

	factors, err := Factorize(num("12"), table)
	require.NoError(t, err)

	got := make([]string, len(factors))
	for i, f := range factors {
		got[i] = f.ToBase10String()
	}
	assert.Equal(t, []string{"2", "2", "3"}, got)
}

func TestFactorizeFailsWhenQuotientNotYetRecorded(t *testing.T) {
	table := New()
	table.Put(num("2"), nil)

	_, err := Factorize(num("100"), table)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNextPrimeNotFound(t *testing.T) {
	primes := nums("2", "3", "5")
	_, err := NextPrime(primes, num("5"))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = NextPrime(primes, num("4"))
	assert.ErrorIs(t, err, ErrNotFound)
}
