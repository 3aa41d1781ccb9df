package mathx

import (
	"math"
	"strconv"
)

// log2over10 scales a bit count into an estimate of the matching decimal
// digit count (log10(2)), the same estimate the original's decimal-print
// routine uses to pick how large a power of ten to rescale by before
// truncating to an integer.
const log2over10 = 0.3010299956639812

// tenPow returns 10**e as a Float carrying prec bits of working
// precision, computed via PowUint the same way the original's
// get_pow_ten helper leans on float_pow_uint rather than an exact
// big-integer power: the result only needs to be accurate to the
// working precision, not exact down to the last bit.
func tenPow(e uint, prec uint) *Float {
	ten := new(Float).SetPrec(prec).SetInt64(10)
	return new(Float).SetPrec(prec).PowUint(ten, e)
}

// DecDigits returns the decimal digits of z as a signed integer together
// with a base-ten exponent adjustment n, such that z == digits * 10**n
// to about z's working precision. The digits are obtained by rescaling
// z with a power of ten chosen so the rescaled value is close to an
// integer of about z's own precision in decimal digits, then reading
// that integer off the rescaled mantissa directly — the same
// rescale-then-truncate shape as the original's float_dec_digits,
// adapted from its per-limb exponent unit to this type's per-bit one.
func (z *Float) DecDigits() (digits *Int, n int) {
	z.ensure()
	if z.mant.IsZero() {
		return new(Int), 0
	}
	if z.exp == 0 {
		return new(Int).Set(z.mant), 0
	}

	work := z.prec + guardBits
	if z.exp < 0 {
		k := -z.exp
		e := decExponent(k)
		scale := tenPow(uint(e), work)
		rescaled := new(Float).SetPrec(work).Mul(z, scale)
		return intFromFloat(rescaled), -e
	}

	k := z.exp
	e := decExponent(k)
	scale := tenPow(uint(e), work)
	rescaled, err := new(Float).SetPrec(work).Div(z, scale)
	if err != nil {
		// scale is 10**e for e derived from z's own non-zero exponent;
		// tenPow never produces zero, so Div cannot fail here.
		panic("mathx: unreachable divide by tenPow result")
	}
	return intFromFloat(rescaled), e
}

// decExponent converts a bit count into the matching decimal exponent
// estimate, floor(k * log10(2)).
func decExponent(k int) int {
	e := int(math.Floor(float64(k) * log2over10))
	if e < 0 {
		e = 0
	}
	return e
}

// intFromFloat reads off f's value as an integer by shifting its
// mantissa by its exponent, truncating any fractional bits that remain
// (f is expected to already be within a few bits of an integer, as
// DecDigits' rescale arranges).
func intFromFloat(f *Float) *Int {
	if f.exp >= 0 {
		return new(Int).Lsh(f.mant, uint(f.exp))
	}
	return new(Int).Rsh(f.mant, uint(-f.exp))
}

// printSize bounds the characters needed to print the given DecDigits
// result: the digit run's own size (mirroring Int.PrintSize), plus room
// for an "e" and a signed exponent when one will be printed.
func printSize(digits *Int, n int) int {
	size := digits.PrintSize()
	if n != 0 {
		size += 1 + len(strconv.Itoa(n))
	}
	return size
}

// PrintSize upper-bounds the number of characters Print needs to write
// z. DecDigits is the expensive part of printing a Float (it runs a
// guard-precision rescale), so String computes it once and shares the
// result between sizing and writing rather than calling PrintSize then
// Print independently.
func (z *Float) PrintSize() int {
	digits, n := z.DecDigits()
	return printSize(digits, n)
}

// printTo writes digits and n (as returned by DecDigits) into buf in
// the form "[-]<digits>[e<±int>]" — a plain run of decimal digits with
// no decimal point, followed by an "e" and the base-ten exponent
// adjustment only when that adjustment is non-zero — and returns the
// number of bytes written. If buf cannot be proven large enough, it
// writes nothing and returns 0, mirroring Int.Print's and Rat.Print's
// buffer-too-small contract.
func printTo(buf []byte, digits *Int, n int) int {
	if len(buf) < printSize(digits, n) {
		return 0
	}
	written := digits.Print(buf)
	if written == 0 {
		return 0
	}
	if n == 0 {
		return written
	}
	buf[written] = 'e'
	written++
	written += copy(buf[written:], strconv.Itoa(n))
	return written
}

// Print writes z's decimal representation into buf (see printTo) and
// returns the number of bytes written.
func (z *Float) Print(buf []byte) int {
	digits, n := z.DecDigits()
	return printTo(buf, digits, n)
}

// String returns z's decimal representation, in the form
// "[-]<digits>[e<±int>]" (see Print).
func (z *Float) String() string {
	digits, n := z.DecDigits()
	buf := make([]byte, printSize(digits, n))
	w := printTo(buf, digits, n)
	return string(buf[:w])
}
