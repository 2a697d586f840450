package bignum

import "fmt"

// ErrInvalidModulus is returned by the modular combinators when the
// modulus is 0 or 1, neither of which yields a useful residue class. It
// wraps ErrInvalidInput, so errors.Is matches either sentinel.
var ErrInvalidModulus = fmt.Errorf("%w: modulus must be greater than one", ErrInvalidInput)

func checkModulus(m BigUint) error {
	if m.IsZero() || m.IsOne() {
		return ErrInvalidModulus
	}
	return nil
}

// ModAdd returns (x + y) mod m.
func ModAdd(x, y, m BigUint) (BigUint, error) {
	if err := checkModulus(m); err != nil {
		return BigUint{}, err
	}
	sum := x.Add(y)
	_, r, err := sum.DivMod(m)
	if err != nil {
		return BigUint{}, err
	}
	return r, nil
}

// ModSub returns (x - y) mod m. Unlike Sub, this never underflows: it
// reduces x and y mod m first and adds m back in before subtracting if
// needed.
func ModSub(x, y, m BigUint) (BigUint, error) {
	if err := checkModulus(m); err != nil {
		return BigUint{}, err
	}
	_, xr, err := x.DivMod(m)
	if err != nil {
		return BigUint{}, err
	}
	_, yr, err := y.DivMod(m)
	if err != nil {
		return BigUint{}, err
	}

	if yr.LessOrEqual(xr) {
		diff, serr := xr.Sub(yr)
		if serr != nil {
			panic("bignum: modsub invariant violated")
		}
		return diff, nil
	}

	adjusted := xr.Add(m)
	diff, serr := adjusted.Sub(yr)
	if serr != nil {
		panic("bignum: modsub invariant violated")
	}
	return diff, nil
}

// ModMul returns (x * y) mod m.
func ModMul(x, y, m BigUint) (BigUint, error) {
	if err := checkModulus(m); err != nil {
		return BigUint{}, err
	}
	product := x.Mul(y)
	_, r, err := product.DivMod(m)
	if err != nil {
		return BigUint{}, err
	}
	return r, nil
}

// GCD returns the greatest common divisor of x and y via the Euclidean
// algorithm. GCD(0, 0) is 0 by convention; GCD(x, 0) and GCD(0, y) are x
// and y respectively.
func GCD(x, y BigUint) BigUint {
	a, b := x, y
	for !b.IsZero() {
		_, r, err := a.DivMod(b)
		if err != nil {
			panic("bignum: gcd division by zero, unreachable")
		}
		a, b = b, r
	}
	return a
}

// LCM returns the least common multiple of x and y. LCM(0, y) and
// LCM(x, 0) are 0 by convention.
func LCM(x, y BigUint) (BigUint, error) {
	if x.IsZero() || y.IsZero() {
		return Zero(), nil
	}
	g := GCD(x, y)
	q, err := x.Div(g)
	if err != nil {
		return BigUint{}, err
	}
	return q.Mul(y), nil
}
