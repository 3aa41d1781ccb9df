package mathx

// Add sets z = x + y, computing the exact sum of the aligned mantissas
// before truncating to the working precision, so a cancellation between
// near-equal, opposite-signed operands loses no more precision than the
// final truncation step accounts for.
func (z *Float) Add(x, y *Float) *Float {
	x.ensure()
	y.ensure()
	if x.IsZero() {
		return z.setFrom(y, maxPrec(x, y))
	}
	if y.IsZero() {
		return z.setFrom(x, maxPrec(x, y))
	}
	mx, my, exp := align(x, y)
	z.mant = new(Int).Add(mx, my)
	z.exp = exp
	z.prec = maxPrec(x, y)
	return z.normalize()
}

// Sub sets z = x - y. See Add's note on cancellation: the subtraction
// happens on exactly aligned mantissas, so an (almost-)cancelling pair
// yields the exact difference, not an artifact of prior truncation.
func (z *Float) Sub(x, y *Float) *Float {
	x.ensure()
	y.ensure()
	if y.IsZero() {
		return z.setFrom(x, maxPrec(x, y))
	}
	mx, my, exp := align(x, y)
	z.mant = new(Int).Sub(mx, my)
	z.exp = exp
	z.prec = maxPrec(x, y)
	return z.normalize()
}

// setFrom copies x's mantissa and exponent into z at the given working
// precision — the zero-operand fast path for Add/Sub, which must still
// land on maxPrec(x, y) rather than silently keeping z's own leftover
// precision or adopting only one operand's.
func (z *Float) setFrom(x *Float, prec uint) *Float {
	z.mant = new(Int).Set(x.mant)
	z.exp = x.exp
	z.prec = prec
	return z.normalize()
}

// Mul sets z = x * y.
func (z *Float) Mul(x, y *Float) *Float {
	x.ensure()
	y.ensure()
	z.mant = new(Int).Mul(x.mant, y.mant)
	z.exp = x.exp + y.exp
	z.prec = maxPrec(x, y)
	return z.normalize()
}

// Div sets z = x / y, carrying guardBits of extra precision through the
// division before truncating, and returns an error if y is zero.
func (z *Float) Div(x, y *Float) (*Float, error) {
	x.ensure()
	y.ensure()
	if y.IsZero() {
		return nil, ErrDivByZero
	}
	prec := maxPrec(x, y)
	shift := int(prec) + guardBits
	num := new(Int).Lsh(x.mant, uint(shift))
	q, err := Div(num, y.mant)
	if err != nil {
		return nil, err
	}
	z.mant = q
	z.exp = x.exp - y.exp - shift
	z.prec = prec
	return z.normalize(), nil
}

// PowUint sets z = b**e by exponentiation-by-squaring, using only Mul: b
// is squared on every step and folded into the accumulator whenever the
// corresponding bit of e is set, the same binary-exponentiation shape as
// Int.Pow but carried out over Float temporaries recast to z's precision
// so intermediate squarings don't drift onto b's own precision.
func (z *Float) PowUint(b *Float, e uint) *Float {
	b.ensure()
	prec := z.prec
	if prec == 0 {
		prec = b.prec
	}
	base := recastPrec(b, prec)
	result := new(Float).SetPrec(prec).SetInt64(1)
	if e&1 != 0 {
		result.Set(base)
	}
	for e >>= 1; e != 0; e >>= 1 {
		base = new(Float).Mul(base, base)
		if e&1 != 0 {
			result = new(Float).Mul(result, base)
		}
	}
	z.mant = result.mant
	z.exp = result.exp
	z.prec = prec
	return z.normalize()
}

// Inv sets z = 1/x and returns an error if x is zero.
func (z *Float) Inv(x *Float) (*Float, error) {
	one := new(Float).SetPrec(x.Prec()).SetInt64(1)
	return z.Div(one, x)
}

// Sqrt sets z = sqrt(x) and returns an error if x is negative.
//
// The mantissa is shifted left until the scaled exponent is even and the
// result carries guardBits of extra precision, then the kernel's integer
// square root is taken directly: sqrt(mant * 2^(2k)) == isqrt(mant *
// 2^(2k)) exactly bounds the truncation error to the final normalize
// step, the same guard-then-truncate discipline Div uses.
func (z *Float) Sqrt(x *Float) (*Float, error) {
	x.ensure()
	if x.Sign() < 0 {
		return nil, ErrNegativeSqrtOperand
	}
	if x.IsZero() {
		z.mant = new(Int)
		z.exp = 0
		if z.prec == 0 {
			z.prec = x.prec
		}
		return z, nil
	}
	prec := x.prec
	if prec == 0 {
		prec = DefaultPrecision()
	}
	extra := int(prec) + guardBits

	m := new(Int).Set(x.mant)
	e := x.exp
	if e%2 != 0 {
		m = new(Int).Lsh(m, 1)
		e--
	}
	m = new(Int).Lsh(m, uint(2*extra))
	e -= 2 * extra

	root, err := new(Int).Sqrt(m)
	if err != nil {
		return nil, err
	}
	z.mant = root
	z.exp = e / 2
	z.prec = prec
	return z.normalize(), nil
}
