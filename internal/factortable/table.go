package factortable

import (
	"sort"
	"sync"

	"bignum/internal/bignum"
)

// Table is an in-memory factorization table: for each number it has seen,
// it records the number's prime factors (or an empty slice, meaning the
// number is prime). It corresponds to the original source's
// std::map<BigUint, vector<BigUint>>, keyed the same way by numeric value
// and kept in ascending order.
type Table struct {
	mu      sync.RWMutex
	order   []bignum.BigUint
	entries map[string][]bignum.BigUint
}

// New returns an empty Table.
func New() *Table {
	return &Table{entries: make(map[string][]bignum.BigUint)}
}

// Get returns a defensive copy of n's recorded factors, or (nil, false) if
// n has not been recorded.
func (t *Table) Get(n bignum.BigUint) ([]bignum.BigUint, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	factors, ok := t.entries[n.ToBase10String()]
	if !ok {
		return nil, false
	}
	out := make([]bignum.BigUint, len(factors))
	copy(out, factors)
	return out, true
}

// Put records n's factors, overwriting any prior entry for the same
// number. An empty (possibly nil) factors slice records n as prime.
func (t *Table) Put(n bignum.BigUint, factors []bignum.BigUint) {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := n.ToBase10String()
	if _, exists := t.entries[key]; !exists {
		idx := sort.Search(len(t.order), func(i int) bool { return !t.order[i].Less(n) })
		t.order = append(t.order, bignum.Zero())
		copy(t.order[idx+1:], t.order[idx:])
		t.order[idx] = n
	}

	stored := make([]bignum.BigUint, len(factors))
	copy(stored, factors)
	t.entries[key] = stored
}

// Max returns the greatest recorded number, or (_, false) if the table is
// empty.
func (t *Table) Max() (bignum.BigUint, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if len(t.order) == 0 {
		return bignum.BigUint{}, false
	}
	return t.order[len(t.order)-1], true
}

// Len returns the number of recorded entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.order)
}

// Primes returns every recorded number whose factor list is empty, in
// ascending order.
func (t *Table) Primes() []bignum.BigUint {
	t.mu.RLock()
	defer t.mu.RUnlock()

	primes := make([]bignum.BigUint, 0, len(t.order))
	for _, n := range t.order {
		if len(t.entries[n.ToBase10String()]) == 0 {
			primes = append(primes, n)
		}
	}
	return primes
}

// Entries returns every recorded (number, factors) pair in ascending
// numeric order, matching the iteration order of the original source's
// std::map.
func (t *Table) Entries() []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Entry, 0, len(t.order))
	for _, n := range t.order {
		factors := t.entries[n.ToBase10String()]
		factorsCopy := make([]bignum.BigUint, len(factors))
		copy(factorsCopy, factors)
		out = append(out, Entry{Number: n, Factors: factorsCopy})
	}
	return out
}

// Entry pairs a number with its recorded factors.
type Entry struct {
	Number  bignum.BigUint
	Factors []bignum.BigUint
}
