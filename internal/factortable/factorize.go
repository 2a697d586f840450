package factortable

import (
	"fmt"
	"sort"

	"bignum/internal/bignum"
)

// NextPrime returns the prime immediately following after in the given
// ascending prime list, or ErrNotFound if after is not present or has no
// successor.
func NextPrime(primes []bignum.BigUint, after bignum.BigUint) (bignum.BigUint, error) {
	for i, p := range primes {
		if p.Equal(after) {
			if i+1 >= len(primes) {
				return bignum.BigUint{}, ErrNotFound
			}
			return primes[i+1], nil
		}
	}
	return bignum.BigUint{}, ErrNotFound
}

// Factorize returns n's prime factors in ascending order, or an empty
// slice if n is prime. It rejects 0 and 1. If n is already recorded in
// table, the cached factors are returned directly; otherwise it trial-
// divides by the primes already known to table, stopping once the
// candidate divisor's square exceeds n.
//
// Finding a divisor relies on the quotient already being present in table:
// the driver loop in RunDriver always factorizes numbers in increasing
// order, so by the time a composite n is reached, every smaller quotient
// it could have has already been recorded.
func Factorize(n bignum.BigUint, table *Table) ([]bignum.BigUint, error) {
	if n.IsZero() || n.IsOne() {
		return nil, ErrInvalidNumber
	}

	if factors, ok := table.Get(n); ok {
		return factors, nil
	}

	primes := table.Primes()
	divisor := bignum.Two()
	for {
		square := divisor.Square()
		if square.Greater(n) {
			break
		}

		divisible, err := n.IsDivisibleBy(divisor)
		if err != nil {
			return nil, err
		}
		if divisible {
			quotient, err := n.Div(divisor)
			if err != nil {
				return nil, err
			}

			factors, ok := table.Get(quotient)
			if !ok {
				return nil, fmt.Errorf("%w: quotient %s of %s is not yet recorded", ErrNotFound, quotient, n)
			}
			if len(factors) == 0 {
				factors = append(factors, quotient)
			}

			result := make([]bignum.BigUint, len(factors)+1)
			copy(result, factors)
			result[len(factors)] = divisor
			sort.Slice(result, func(i, j int) bool { return result[i].Less(result[j]) })
			return result, nil
		}

		next, err := NextPrime(primes, divisor)
		if err != nil {
			return nil, err
		}
		divisor = next
	}

	return []bignum.BigUint{}, nil
}
