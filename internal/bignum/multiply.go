package bignum

// MulDigit returns x * d for a single base-B digit d.
func (x BigUint) MulDigit(d uint16) BigUint {
	if d == 0 || x.IsZero() {
		return Zero()
	}
	if d == 1 {
		return x
	}
	if x.IsOne() {
		return BigUint{digits: []uint16{d}}
	}

	digits := make([]uint16, len(x.digits))
	var carry uint32
	for i, xd := range x.digits {
		product := uint32(xd)*uint32(d) + carry
		if product >= base {
			carry = product / base
			digits[i] = uint16(product - carry*base)
		} else {
			carry = 0
			digits[i] = uint16(product)
		}
	}

	if carry != 0 {
		digits = append(digits, uint16(carry))
	}
	return BigUint{digits: digits}
}

// Mul returns x * rhs, dispatching to the naive schoolbook algorithm or, for
// sufficiently large operands, to Karatsuba. It never auto-promotes to FFT;
// see MulFFT for that, and the package docs on fftSafe for why.
func (x BigUint) Mul(rhs BigUint) BigUint {
	if len(x.digits) >= karatsubaThreshold && len(rhs.digits) >= karatsubaThreshold {
		return x.MulKaratsuba(rhs)
	}
	return x.mulNaive(rhs)
}

// mulNaive implements schoolbook long multiplication: multiply by each
// digit of rhs, shift the partial product into place, and sum.
func (x BigUint) mulNaive(rhs BigUint) BigUint {
	if len(rhs.digits) == 1 {
		return x.MulDigit(rhs.digits[0])
	}
	if len(x.digits) == 1 {
		return rhs.MulDigit(x.digits[0])
	}

	result := Zero()
	for i, d := range rhs.digits {
		partial := x.MulDigit(d)
		shifted, err := partial.ShiftLeft(i)
		if err != nil {
			panic("bignum: negative shift in mulNaive, unreachable")
		}
		result = result.Add(shifted)
	}
	return result
}
