package limb

import "math/bits"

// Div divides a by b (b non-zero) and returns the quotient and remainder,
// dispatching to the single-limb fast path when b fits in one word and to
// DivKnuth otherwise.
func Div(a, b []Word) (q, r []Word) {
	b = Normalize(b)
	if len(b) == 1 {
		qq, rr := DivLimb(a, b[0])
		if rr == 0 {
			return qq, nil
		}
		return qq, []Word{rr}
	}
	return DivKnuth(a, b)
}

// DivLimb divides a by the single limb b (b != 0), returning the quotient
// and the remainder. It processes from the most to the least significant
// limb using double-width division.
func DivLimb(a []Word, b Word) (q []Word, r Word) {
	a = Normalize(a)
	if len(a) == 0 {
		return nil, 0
	}
	z := make([]Word, len(a))
	for i := len(a) - 1; i >= 0; i-- {
		z[i], r = bits.Div64(r, a[i], b)
	}
	return Normalize(z), r
}

// DivKnuth divides a by b (len(b) >= 2, b normalized and non-zero) using
// Knuth's Algorithm D (TAOCP Vol. 2 §4.3.1): normalize so the divisor's top
// bit is set, estimate each quotient digit from the top two limbs of the
// current window, refine the estimate downward, multiply-subtract, and add
// back on over-subtraction. The quotient has at most len(a)-len(b)+1 limbs,
// the remainder at most len(b).
func DivKnuth(aIn, bIn []Word) (q, r []Word) {
	a := Normalize(aIn)
	b := Normalize(bIn)
	n := len(b)
	if n < 2 {
		panic("limb: DivKnuth requires a divisor of at least two limbs")
	}
	if Cmp(a, b) < 0 {
		return nil, Clone(a)
	}
	m := len(a) - n

	shift := uint(bits.LeadingZeros64(b[n-1]))

	vn := make([]Word, n)
	if shift == 0 {
		copy(vn, b)
	} else {
		shlVU(vn, b, shift)
	}

	un := make([]Word, len(a)+1)
	if shift == 0 {
		copy(un, a)
	} else {
		un[len(a)] = shlVU(un[:len(a)], a, shift)
	}

	q = make([]Word, m+1)

	for j := m; j >= 0; j-- {
		var qhat, rhat Word
		var rhatValid bool
		top := un[j+n]
		next := un[j+n-1]
		if top == vn[n-1] {
			// The true 128-bit/64-bit quotient would be exactly 2^64, which
			// cannot fit in a limb; cap it at the maximal estimate and
			// derive the matching remainder.
			qhat = ^Word(0)
			rhat = top + next
			rhatValid = rhat >= top // false means rhat wrapped past 2^64
		} else {
			qhat, rhat = bits.Div64(top, next, vn[n-1])
			rhatValid = true
		}

		for rhatValid && n >= 2 {
			hi, lo := bits.Mul64(qhat, vn[n-2])
			rhi, rlo := rhat, un[j+n-2]
			if hi < rhi || (hi == rhi && lo <= rlo) {
				break
			}
			qhat--
			newRhat := rhat + vn[n-1]
			if newRhat < rhat { // rhat overflowed past the base: stop refining
				break
			}
			rhat = newRhat
		}

		borrow := mulSub(un[j:j+n+1], vn, qhat)
		if borrow != 0 {
			// qhat was one too large: add the divisor back and discard the
			// carry, which exactly cancels the borrow above.
			qhat--
			c := addVV(un[j:j+n], vn, un[j:j+n])
			un[j+n] += c
		}
		q[j] = qhat
	}

	r = make([]Word, n)
	if shift == 0 {
		copy(r, un[:n])
	} else {
		shrVU(r, un[:n], shift)
	}

	return Normalize(q), Normalize(r)
}

// mulSub computes z -= vn*qhat (vn has one fewer limb than z) and returns
// the borrow out of the top limb of z.
func mulSub(z, vn []Word, qhat Word) Word {
	var borrow, carry Word
	for i, vi := range vn {
		hi, lo := bits.Mul64(qhat, vi)
		lo, c := bits.Add64(lo, carry, 0)
		hi += c
		d := z[i] - lo
		b2 := Word(0)
		if d > z[i] {
			b2 = 1
		}
		d2 := d - borrow
		if d2 > d {
			b2 = 1
		}
		z[i] = d2
		borrow = b2
		carry = hi
	}
	d := z[len(vn)] - carry
	b2 := Word(0)
	if d > z[len(vn)] {
		b2 = 1
	}
	d2 := d - borrow
	if d2 > d {
		b2 = 1
	}
	z[len(vn)] = d2
	return b2
}
