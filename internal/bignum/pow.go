package bignum

// PowDigit returns x raised to the power of a single base-B digit n, using
// exponentiation by squaring.
//
// PowDigit deliberately departs from the original source's convention that
// 0^n = ONE for every n, including n == 0: here 0^0 is rejected as undefined
// and 0^n for n > 0 is the mathematically correct Zero().
func (x BigUint) PowDigit(n uint16) (BigUint, error) {
	if x.IsZero() {
		if n == 0 {
			return BigUint{}, ErrInvalidInput
		}
		return Zero(), nil
	}
	if n == 0 || x.IsOne() {
		return One(), nil
	}

	return x.powBySquaring(uint64(n)), nil
}

// Pow returns x raised to the power of rhs, using exponentiation by
// squaring. See PowDigit's docs for the 0^0 / 0^n convention.
func (x BigUint) Pow(rhs BigUint) (BigUint, error) {
	if rhs.IsZero() {
		if x.IsZero() {
			return BigUint{}, ErrInvalidInput
		}
		return One(), nil
	}
	if x.IsZero() {
		return Zero(), nil
	}
	if x.IsOne() {
		return One(), nil
	}
	if rhs.IsOne() {
		return x, nil
	}

	result := One()
	base := x
	exponent := rhs
	for !exponent.IsZero() {
		if exponent.IsOdd() {
			result = result.Mul(base)
		}
		exponent = exponent.halve()
		if exponent.IsZero() {
			break
		}
		base = base.Square()
	}
	return result, nil
}

// powBySquaring computes x^n for a native-width exponent n > 0.
func (x BigUint) powBySquaring(n uint64) BigUint {
	result := One()
	base := x
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		n >>= 1
		if n == 0 {
			break
		}
		base = base.Square()
	}
	return result
}

// halve returns x/2, discarding any remainder. It is used internally by Pow
// to walk the exponent's bits without needing a full division.
func (x BigUint) halve() BigUint {
	if x.IsZero() {
		return Zero()
	}

	digits := make([]uint16, len(x.digits))
	var remainder uint32
	for i := len(x.digits) - 1; i >= 0; i-- {
		cur := remainder*base + uint32(x.digits[i])
		digits[i] = uint16(cur / 2)
		remainder = cur % 2
	}

	result := BigUint{digits: digits}
	result.canonicalize()
	return result
}
