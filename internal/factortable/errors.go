package factortable

import (
	"errors"
	"fmt"

	"bignum/internal/bignum"
)

var (
	// ErrIoError is returned when the table file cannot be opened for
	// reading or appending.
	ErrIoError = errors.New("factortable: i/o error")

	// ErrParseError is returned when a non-empty line in the table file
	// cannot be parsed into a number and its factors.
	ErrParseError = errors.New("factortable: parse error")

	// ErrNotFound is returned when a lookup (a quotient expected to
	// already be in the table, or a prime expected to have a successor)
	// fails.
	ErrNotFound = errors.New("factortable: not found")

	// ErrInvalidNumber is returned by Factorize for 0 or 1, neither of
	// which has a meaningful factorization. It wraps bignum.ErrInvalidInput.
	ErrInvalidNumber = fmt.Errorf("factortable: number must be greater than one: %w", bignum.ErrInvalidInput)
)
