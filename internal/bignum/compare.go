package bignum

// Cmp implements a total order on BigUint: -1 if x < other, 0 if equal,
// +1 if x > other. Lengths are compared first (the no-leading-zero
// invariant makes that safe), then digits from most to least significant.
func (x BigUint) Cmp(other BigUint) int {
	if len(x.digits) != len(other.digits) {
		if len(x.digits) < len(other.digits) {
			return -1
		}
		return 1
	}
	for i := len(x.digits) - 1; i >= 0; i-- {
		if x.digits[i] != other.digits[i] {
			if x.digits[i] < other.digits[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal reports whether x and other represent the same value.
func (x BigUint) Equal(other BigUint) bool { return x.Cmp(other) == 0 }

// Less reports whether x < other.
func (x BigUint) Less(other BigUint) bool { return x.Cmp(other) < 0 }

// LessOrEqual reports whether x <= other.
func (x BigUint) LessOrEqual(other BigUint) bool { return x.Cmp(other) <= 0 }

// Greater reports whether x > other.
func (x BigUint) Greater(other BigUint) bool { return x.Cmp(other) > 0 }

// GreaterOrEqual reports whether x >= other.
func (x BigUint) GreaterOrEqual(other BigUint) bool { return x.Cmp(other) >= 0 }
