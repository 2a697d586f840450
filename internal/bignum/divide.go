package bignum

// DivModDigit returns the quotient and remainder of x / d for a single
// base-B digit d, or ErrDivisionByZero if d == 0.
func (x BigUint) DivModDigit(d uint16) (quotient BigUint, remainder uint16, err error) {
	if d == 0 {
		return BigUint{}, 0, ErrDivisionByZero
	}
	if x.IsZero() {
		return Zero(), 0, nil
	}
	if d == 1 {
		return x, 0, nil
	}

	digits := make([]uint16, len(x.digits))
	var rem uint32
	for i := len(x.digits) - 1; i >= 0; i-- {
		cur := rem*base + uint32(x.digits[i])
		digits[i] = uint16(cur / uint32(d))
		rem = cur % uint32(d)
	}

	result := BigUint{digits: digits}
	result.canonicalize()
	return result, uint16(rem), nil
}

// DivDigit returns x / d, discarding the remainder.
func (x BigUint) DivDigit(d uint16) (BigUint, error) {
	q, _, err := x.DivModDigit(d)
	return q, err
}

// ModDigit returns x mod d.
func (x BigUint) ModDigit(d uint16) (uint16, error) {
	_, r, err := x.DivModDigit(d)
	return r, err
}

// DivMod returns the quotient and remainder of x / rhs, or
// ErrDivisionByZero if rhs is zero. Division proceeds digit-by-digit from
// the most significant end; each quotient digit is found by binary search
// over [0, B) rather than by repeated subtraction, matching the original
// source's divide_by.
func (x BigUint) DivMod(rhs BigUint) (quotient, remainder BigUint, err error) {
	if rhs.IsZero() {
		return BigUint{}, BigUint{}, ErrDivisionByZero
	}
	if len(rhs.digits) == 1 {
		q, r, derr := x.DivModDigit(rhs.digits[0])
		if derr != nil {
			return BigUint{}, BigUint{}, derr
		}
		return q, NewFromDigit(r), nil
	}
	if x.Less(rhs) {
		return Zero(), x, nil
	}
	if x.Equal(rhs) {
		return One(), Zero(), nil
	}

	quotientDigits := make([]uint16, len(x.digits))
	rem := Zero()

	for i := len(x.digits) - 1; i >= 0; i-- {
		shifted, shErr := rem.ShiftLeft(1)
		if shErr != nil {
			panic("bignum: negative shift in DivMod, unreachable")
		}
		rem = shifted.AddDigit(x.digits[i])

		q := binarySearchQuotientDigit(rem, rhs)
		quotientDigits[i] = q

		if q != 0 {
			product := rhs.MulDigit(q)
			newRem, serr := rem.Sub(product)
			if serr != nil {
				panic("bignum: quotient digit overestimate, unreachable")
			}
			rem = newRem
		}
	}

	quotient = BigUint{digits: quotientDigits}
	quotient.canonicalize()
	remainder = rem
	return quotient, remainder, nil
}

// binarySearchQuotientDigit finds the largest digit q in [0, B) such that
// divisor*q <= remainder, via binary search over the digit space.
func binarySearchQuotientDigit(remainder, divisor BigUint) uint16 {
	lo, hi := uint32(0), base-1
	var best uint32

	for lo <= hi {
		mid := lo + (hi-lo)/2
		product := divisor.MulDigit(uint16(mid))
		if product.LessOrEqual(remainder) {
			best = mid
			if mid == base-1 {
				break
			}
			lo = mid + 1
		} else {
			if mid == 0 {
				break
			}
			hi = mid - 1
		}
	}

	return uint16(best)
}

// Div returns x / rhs, discarding the remainder.
func (x BigUint) Div(rhs BigUint) (BigUint, error) {
	q, _, err := x.DivMod(rhs)
	return q, err
}

// Mod returns x mod rhs.
func (x BigUint) Mod(rhs BigUint) (BigUint, error) {
	_, r, err := x.DivMod(rhs)
	return r, err
}
