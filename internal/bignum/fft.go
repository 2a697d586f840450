package bignum

import (
	"math"
	"math/cmplx"
)

// fftSafe reports whether an FFT of length n staying within float64's 53-bit
// mantissa can correctly recover a convolution over base-B digits. Each
// output coefficient is a sum of at most n products of two digits, each
// product bounded by (B-1)^2, so the accumulated magnitude must not exceed
// 2^53.
func fftSafe(n int) bool {
	const mantissaBudget = 1 << 53
	maxCoefficient := float64(n) * float64(base-1) * float64(base-1)
	return maxCoefficient < mantissaBudget
}

// FFTSafeForOperands reports whether MulFFT(x, y) stays within the
// double-precision mantissa budget checked by fftSafe. Callers outside the
// package (such as the benchmark harness) use this to decide whether it is
// safe to time MulFFT at all.
func FFTSafeForOperands(x, y BigUint) bool {
	n := 1
	for n < len(x.digits)+len(y.digits) {
		n <<= 1
	}
	return fftSafe(n)
}

// MulFFT returns x * rhs using a Cooley-Tukey radix-2 FFT over complex128.
// It is not used by Mul's automatic dispatch because correctness depends on
// operand sizes staying inside the double-precision mantissa budget
// (see fftSafe); callers that know their inputs are safe (or the benchmark
// harness, which picks sizes deliberately) may call it directly.
func (x BigUint) MulFFT(rhs BigUint) BigUint {
	if x.IsZero() || rhs.IsZero() {
		return Zero()
	}

	n := 1
	for n < len(x.digits)+len(rhs.digits) {
		n <<= 1
	}

	fa := make([]complex128, n)
	for i, d := range x.digits {
		fa[i] = complex(float64(d), 0)
	}
	fb := make([]complex128, n)
	for i, d := range rhs.digits {
		fb[i] = complex(float64(d), 0)
	}

	fft(fa, false)
	fft(fb, false)
	for i := range fa {
		fa[i] *= fb[i]
	}
	fft(fa, true)

	result := make([]uint16, n)
	var carry uint64
	for i := 0; i < n; i++ {
		rounded := int64(math.Round(real(fa[i])))
		sum := uint64(rounded) + carry
		result[i] = uint16(sum % uint64(base))
		carry = sum / uint64(base)
	}
	for carry != 0 {
		result = append(result, uint16(carry%uint64(base)))
		carry /= uint64(base)
	}

	out := BigUint{digits: result}
	out.canonicalize()
	return out
}

// fft applies an in-place recursive Cooley-Tukey radix-2 transform to a,
// whose length must be a power of two. invert selects the inverse
// transform (conjugated twiddle, halving each stage).
func fft(a []complex128, invert bool) {
	n := len(a)
	if n == 1 {
		return
	}

	angle := 2 * math.Pi / float64(n)
	if invert {
		angle = -angle
	}
	wn := cmplx.Exp(complex(0, angle))

	a0 := make([]complex128, n/2)
	a1 := make([]complex128, n/2)
	for i := 0; i < n/2; i++ {
		a0[i] = a[2*i]
		a1[i] = a[2*i+1]
	}

	fft(a0, invert)
	fft(a1, invert)

	w := complex(1, 0)
	for i := 0; i < n/2; i++ {
		temp := w * a1[i]
		a[i] = a0[i] + temp
		a[i+n/2] = a0[i] - temp
		if invert {
			a[i] /= 2
			a[i+n/2] /= 2
		}
		w *= wn
	}
}
