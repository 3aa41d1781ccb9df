package mathx

// Rat is an arbitrary-precision rational number kept in canonical form:
// denominator positive, numerator carrying the sign, and gcd(|num|, den)
// == 1 after every mutating operation. The zero value is the rational
// zero (0/1).
type Rat struct {
	num *Int
	den *Int
}

// NewRat returns a new Rat equal to num/den, normalized. It panics if den
// is zero, matching the contract-violation treatment the kernel uses for
// a zero denominator supplied directly by the caller rather than produced
// by a division.
func NewRat(num, den int64) *Rat {
	r := &Rat{num: NewInt(num), den: NewInt(den)}
	if r.den.IsZero() {
		panic("mathx: zero denominator")
	}
	return r.Normalize()
}

func (z *Rat) ensure() {
	if z.num == nil {
		z.num = new(Int)
	}
	if z.den == nil {
		z.den = NewInt(1)
	}
}

// SetInt sets z = x/1.
func (z *Rat) SetInt(x *Int) *Rat {
	z.num = new(Int).Set(x)
	z.den = NewInt(1)
	return z
}

// SetFrac sets z = num/den and normalizes it. It panics if den is zero.
func (z *Rat) SetFrac(num, den *Int) *Rat {
	if den.IsZero() {
		panic("mathx: zero denominator")
	}
	z.num = new(Int).Set(num)
	z.den = new(Int).Set(den)
	return z.Normalize()
}

// Set sets z to a deep copy of x.
func (z *Rat) Set(x *Rat) *Rat {
	x.ensure()
	if z == x {
		return z
	}
	z.num = new(Int).Set(x.num)
	z.den = new(Int).Set(x.den)
	return z
}

// Normalize reduces z to lowest terms with a positive denominator: the
// sign migrates onto the numerator, and both are divided by their gcd.
// This is the invariant every other Rat method assumes on entry and
// restores on exit.
func (z *Rat) Normalize() *Rat {
	z.ensure()
	if z.den.Sign() < 0 {
		z.num.Neg(z.num)
		z.den.Neg(z.den)
	}
	if z.num.IsZero() {
		z.den.SetInt64(1)
		return z
	}
	g := GCD(z.num, z.den)
	if !g.IsZero() && g.Cmp(NewInt(1)) != 0 {
		q, _, _ := DivMod(z.num, g)
		z.num = q
		q, _, _ = DivMod(z.den, g)
		z.den = q
	}
	return z
}

// Sign returns -1, 0, or +1 depending on the sign of z.
func (z *Rat) Sign() int {
	z.ensure()
	return z.num.Sign()
}

// IsZero reports whether z is zero.
func (z *Rat) IsZero() bool {
	z.ensure()
	return z.num.IsZero()
}

// Cmp compares x and y, returning -1, 0, or +1. Both are assumed
// normalized, so cross-multiplication against positive denominators
// preserves ordering.
func (x *Rat) Cmp(y *Rat) int {
	x.ensure()
	y.ensure()
	lhs := new(Int).Mul(x.num, y.den)
	rhs := new(Int).Mul(y.num, x.den)
	return lhs.Cmp(rhs)
}

// Neg sets z = -x.
func (z *Rat) Neg(x *Rat) *Rat {
	x.ensure()
	z.num = new(Int).Neg(x.num)
	z.den = new(Int).Set(x.den)
	return z
}

// Add sets z = x + y.
func (z *Rat) Add(x, y *Rat) *Rat {
	x.ensure()
	y.ensure()
	num := new(Int).Add(new(Int).Mul(x.num, y.den), new(Int).Mul(y.num, x.den))
	den := new(Int).Mul(x.den, y.den)
	z.num, z.den = num, den
	return z.Normalize()
}

// Sub sets z = x - y.
func (z *Rat) Sub(x, y *Rat) *Rat {
	x.ensure()
	y.ensure()
	num := new(Int).Sub(new(Int).Mul(x.num, y.den), new(Int).Mul(y.num, x.den))
	den := new(Int).Mul(x.den, y.den)
	z.num, z.den = num, den
	return z.Normalize()
}

// Mul sets z = x * y.
func (z *Rat) Mul(x, y *Rat) *Rat {
	x.ensure()
	y.ensure()
	z.num = new(Int).Mul(x.num, y.num)
	z.den = new(Int).Mul(x.den, y.den)
	return z.Normalize()
}

// Div sets z = x / y and returns an error if y is zero.
func (z *Rat) Div(x, y *Rat) (*Rat, error) {
	x.ensure()
	y.ensure()
	if y.num.IsZero() {
		return nil, ErrDivByZero
	}
	z.num = new(Int).Mul(x.num, y.den)
	z.den = new(Int).Mul(x.den, y.num)
	return z.Normalize(), nil
}

// Inv sets z = 1/x and returns an error if x is zero.
func (z *Rat) Inv(x *Rat) (*Rat, error) {
	x.ensure()
	if x.num.IsZero() {
		return nil, ErrDivByZero
	}
	z.num, z.den = new(Int).Set(x.den), new(Int).Set(x.num)
	return z.Normalize(), nil
}

// Num returns the numerator of z (a copy is not made; callers must not
// mutate the result).
func (z *Rat) Num() *Int { z.ensure(); return z.num }

// Denom returns the denominator of z (a copy is not made; callers must
// not mutate the result).
func (z *Rat) Denom() *Int { z.ensure(); return z.den }

// PrintSize upper-bounds the number of characters Print needs to write
// z: the numerator's own size (mirroring Int.PrintSize), plus a "/" and
// the denominator's size when the denominator isn't 1.
func (z *Rat) PrintSize() int {
	z.ensure()
	size := z.num.PrintSize()
	if z.den.Cmp(NewInt(1)) != 0 {
		size += 1 + z.den.PrintSize()
	}
	return size
}

// Print writes z's decimal representation into buf ("num" when the
// denominator is 1, otherwise "num/den") and returns the number of
// bytes written, reusing Int.Print's size discipline for each part. If
// buf cannot be proven large enough via PrintSize, Print writes nothing
// and returns 0.
func (z *Rat) Print(buf []byte) int {
	z.ensure()
	if len(buf) < z.PrintSize() {
		return 0
	}
	written := z.num.Print(buf)
	if written == 0 {
		return 0
	}
	if z.den.Cmp(NewInt(1)) == 0 {
		return written
	}
	buf[written] = '/'
	written++
	w := z.den.Print(buf[written:])
	if w == 0 {
		return 0
	}
	return written + w
}

// String returns "num" when the denominator is 1, otherwise "num/den".
func (z *Rat) String() string {
	buf := make([]byte, z.PrintSize())
	n := z.Print(buf)
	return string(buf[:n])
}

// Float converts z to a Float with the given precision in bits.
func (z *Rat) Float(prec uint) (*Float, error) {
	z.ensure()
	f := new(Float).SetPrec(prec)
	return f.SetRat(z)
}
