package mathx

import "math"

// decomposeFloat64 splits x into sign, a 53-bit unsigned mantissa (with
// the implicit leading 1 restored for normal values), and a binary
// exponent such that x == (-1)^neg * mant * 2^exp. ok is false for zero,
// NaN, or Inf; SetFloat64 sets zero in all three cases.
func decomposeFloat64(x float64) (neg bool, mant uint64, exp int, ok bool) {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return false, 0, 0, false
	}
	neg = math.Signbit(x)
	frac, e := math.Frexp(math.Abs(x))
	// frac is in [0.5, 1); scale it up into a 53-bit integer mantissa.
	const mantBits = 53
	mant = uint64(frac * (1 << mantBits))
	exp = e - mantBits
	return neg, mant, exp, true
}
