package factortable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bignum/internal/bignum"
)

func num(s string) bignum.BigUint {
	n, err := bignum.FromBase10String(s)
	if err != nil {
		panic(err)
	}
	return n
}

func nums(ss ...string) []bignum.BigUint {
	out := make([]bignum.BigUint, len(ss))
	for i, s := range ss {
		out[i] = num(s)
	}
	return out
}

func TestTablePutGetRoundTrip(t *testing.T) {
	table := New()
	table.Put(num("6"), nums("2", "3"))

	factors, ok := table.Get(num("6"))
	require.True(t, ok)
	assert.Len(t, factors, 2)

	_, ok = table.Get(num("7"))
	assert.False(t, ok)
}

func TestTableMaxReturnsGreatest(t *testing.T) {
	table := New()
	table.Put(num("5"), nil)
	table.Put(num("2"), nil)
	table.Put(num("9"), nums("3", "3"))

	max, ok := table.Max()
	require.True(t, ok)
	assert.Equal(t, "9", max.ToBase10String())
}

func TestTablePrimesAscending(t *testing.T) {
	table := New()
	table.Put(num("7"), nil)
	table.Put(num("4"), nums("2", "2"))
	table.Put(num("2"), nil)
	table.Put(num("3"), nil)

	primes := table.Primes()
	got := make([]string, len(primes))
	for i, p := range primes {
		got[i] = p.ToBase10String()
	}
	assert.Equal(t, []string{"2", "3", "7"}, got)
}

func TestTableEntriesAscending(t *testing.T) {
	table := New()
	table.Put(num("10"), nums("2", "5"))
	table.Put(num("2"), nil)

	entries := table.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "2", entries[0].Number.ToBase10String())
	assert.Equal(t, "10", entries[1].Number.ToBase10String())
}

func TestTableGetReturnsDefensiveCopy(t *testing.T) {
	table := New()
	table.Put(num("6"), nums("2", "3"))

	factors, _ := table.Get(num("6"))
	factors[0] = num("999")

	fresh, _ := table.Get(num("6"))
	assert.Equal(t, "2", fresh[0].ToBase10String())
}
