// Package bignum implements an arbitrary-precision unsigned integer value
// type (BigUint) backed by a little-endian vector of base-2^16 digits.
package bignum

import "errors"

// Sentinel errors for the arithmetic core. Callers compare with errors.Is,
// not type assertions or string matching.
var (
	// ErrInvalidInput marks a malformed string, an out-of-range digit,
	// an ill-defined operation such as 0^0, or a modulus in {0,1}.
	ErrInvalidInput = errors.New("bignum: invalid input")

	// ErrDivisionByZero marks a division or modulus whose divisor is zero.
	ErrDivisionByZero = errors.New("bignum: division by zero")

	// ErrUnderflow marks a subtraction or decrement that would produce a
	// negative result, which BigUint cannot represent.
	ErrUnderflow = errors.New("bignum: arithmetic underflow")
)
