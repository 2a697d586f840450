package bignum

// IsDivisibleByByte reports whether x is evenly divisible by the given
// byte, by checking whether the remainder of DivModDigit is zero. A zero
// divisor is rejected with ErrInvalidInput.
//
// The original source special-cased the decimal digits 2,3,5,10 with a
// lookup-table shortcut that it documents as wrong; that shortcut is
// intentionally not carried forward here, since a single ModDigit check is
// both simpler and correct for any divisor.
func (x BigUint) IsDivisibleByByte(d uint8) (bool, error) {
	if d == 0 {
		return false, ErrInvalidInput
	}
	r, err := x.ModDigit(uint16(d))
	if err != nil {
		return false, err
	}
	return r == 0, nil
}

// IsDivisibleBy reports whether x is evenly divisible by rhs.
func (x BigUint) IsDivisibleBy(rhs BigUint) (bool, error) {
	_, r, err := x.DivMod(rhs)
	if err != nil {
		return false, err
	}
	return r.IsZero(), nil
}
