package bench

import (
	"fmt"
	"time"

	"bignum/internal/bignum"
)

// MultiplicationResult reports the average time each multiplication
// algorithm took on the same pair of operands. Naive is the time of
// x.Mul(y), which itself switches to Karatsuba once both operands reach
// bignum's Karatsuba threshold.
type MultiplicationResult struct {
	Naive     time.Duration
	Karatsuba time.Duration
	FFT       time.Duration
	FFTSkipped bool
}

// CompareMultiplication times x.Mul(y) (Mul's own dispatch, reported as
// Naive), x.MulKaratsuba(y) and, when the operand size is safe per bignum's
// fftSafe gate, x.MulFFT(y), over the given number of iterations each.
func CompareMultiplication(x, y bignum.BigUint, iterations int) MultiplicationResult {
	var result MultiplicationResult

	result.Naive = Measure(func() { _ = x.Mul(y) }, iterations)
	result.Karatsuba = Measure(func() { _ = x.MulKaratsuba(y) }, iterations)

	if !bignum.FFTSafeForOperands(x, y) {
		result.FFTSkipped = true
		return result
	}
	result.FFT = Measure(func() { _ = x.MulFFT(y) }, iterations)
	return result
}

// String renders a human-readable summary of a MultiplicationResult.
func (r MultiplicationResult) String() string {
	if r.FFTSkipped {
		return fmt.Sprintf("naive=%s karatsuba=%s fft=skipped (unsafe operand size)", r.Naive, r.Karatsuba)
	}
	return fmt.Sprintf("naive=%s karatsuba=%s fft=%s", r.Naive, r.Karatsuba, r.FFT)
}
