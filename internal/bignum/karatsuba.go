package bignum

// karatsubaMinDigits is the minimum operand digit-length Karatsuba will
// recurse on; below it, it falls back to the naive algorithm directly.
const karatsubaMinDigits = 2

// MulKaratsuba returns x * rhs using the Karatsuba divide-and-conquer
// algorithm, recursing down to the naive algorithm below a small digit
// count. It always produces the same canonical result as Mul/mulNaive.
func (x BigUint) MulKaratsuba(rhs BigUint) BigUint {
	if len(x.digits) < karatsubaMinDigits || len(rhs.digits) < karatsubaMinDigits {
		return x.mulNaive(rhs)
	}

	middle := len(x.digits) / 2
	low1, high1 := x.split(middle)
	low2, high2 := rhs.split(middle)

	z0 := low1.MulKaratsuba(low2)
	z2 := high1.MulKaratsuba(high2)
	z1 := low1.Add(high1).MulKaratsuba(low2.Add(high2))

	// z1 - z2 - z0 is always non-negative by construction of Karatsuba.
	mid, err := z1.Sub(z2)
	if err != nil {
		panic("bignum: karatsuba invariant violated: z1 < z2")
	}
	mid, err = mid.Sub(z0)
	if err != nil {
		panic("bignum: karatsuba invariant violated: z1-z2 < z0")
	}

	highShifted, _ := z2.ShiftLeft(2 * middle)
	midShifted, _ := mid.ShiftLeft(middle)

	return highShifted.Add(midShifted).Add(z0)
}

// split divides x into a low part (the least significant pos digits) and a
// high part (the remainder), matching the original C++ BigUint::split.
func (x BigUint) split(pos int) (low, high BigUint) {
	if pos >= len(x.digits) {
		return x, Zero()
	}

	lowDigits := make([]uint16, pos)
	copy(lowDigits, x.digits[:pos])
	low = BigUint{digits: lowDigits}
	low.canonicalize()

	highDigits := make([]uint16, len(x.digits)-pos)
	copy(highDigits, x.digits[pos:])
	high = BigUint{digits: highDigits}
	high.canonicalize()

	return low, high
}
