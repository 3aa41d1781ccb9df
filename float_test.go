package mathx

import "testing"

func TestFloatDivExact(t *testing.T) {
	x := new(Float).SetPrec(64).SetInt64(6)
	y := new(Float).SetPrec(64).SetInt64(3)
	q, err := new(Float).SetPrec(64).Div(x, y)
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	if got := q.String(); got != "2000000000000000000e-18" {
		t.Fatalf("6/3 = %s, want 2000000000000000000e-18", got)
	}
}

func TestFloatDivByZero(t *testing.T) {
	x := new(Float).SetPrec(64).SetInt64(1)
	zero := new(Float).SetPrec(64)
	if _, err := new(Float).Div(x, zero); err != ErrDivByZero {
		t.Fatalf("Div by zero err = %v, want ErrDivByZero", err)
	}
}

func TestFloatSqrtExact(t *testing.T) {
	x := new(Float).SetPrec(64).SetInt64(4)
	r, err := new(Float).SetPrec(64).Sqrt(x)
	if err != nil {
		t.Fatalf("Sqrt: %v", err)
	}
	if got := r.String(); got != "2000000000000000000e-18" {
		t.Fatalf("sqrt(4) = %s, want 2000000000000000000e-18", got)
	}
}

func TestFloatSqrtNegative(t *testing.T) {
	x := new(Float).SetPrec(64).SetInt64(-1)
	if _, err := new(Float).Sqrt(x); err != ErrNegativeSqrtOperand {
		t.Fatalf("Sqrt(-1) err = %v, want ErrNegativeSqrtOperand", err)
	}
}

func TestFloatAddSubRoundTrip(t *testing.T) {
	a := new(Float).SetPrec(128).SetInt64(7)
	b := new(Float).SetPrec(128).SetInt64(3)
	sum := new(Float).Add(a, b)
	back := new(Float).Sub(sum, b)
	if back.Cmp(a) != 0 {
		t.Fatalf("(7+3)-3 = %s, want %s", back, a)
	}
}

func TestFloatAddZeroOperandPrec(t *testing.T) {
	z := new(Float).SetPrec(5)
	x := new(Float).SetPrec(10).SetInt64(3)
	y := new(Float).SetPrec(100)
	z.Add(x, y)
	if z.Prec() != 100 {
		t.Fatalf("Add(x,0).Prec() = %d, want 100 (max of operand precisions)", z.Prec())
	}

	z2 := new(Float).SetPrec(10).SetInt64(3)
	z2.Sub(z2, new(Float).SetPrec(100))
	if z2.Prec() != 100 {
		t.Fatalf("Sub(x,0).Prec() = %d, want 100 (max of operand precisions)", z2.Prec())
	}
}

func TestFloatCmp(t *testing.T) {
	a := new(Float).SetPrec(64).SetInt64(5)
	b := new(Float).SetPrec(64).SetInt64(9)
	if a.Cmp(b) >= 0 {
		t.Fatalf("5 should compare less than 9")
	}
	if b.Cmp(a) <= 0 {
		t.Fatalf("9 should compare greater than 5")
	}
	if a.Cmp(a) != 0 {
		t.Fatalf("5 should equal itself")
	}
}

func TestRatToFloatExact(t *testing.T) {
	r := NewRat(1, 4)
	f, err := r.Float(64)
	if err != nil {
		t.Fatalf("Rat.Float: %v", err)
	}
	if got := f.String(); got != "2500000000000000000e-19" {
		t.Fatalf("1/4 as float = %s, want 2500000000000000000e-19", got)
	}
}

func TestFloatZeroString(t *testing.T) {
	z := new(Float).SetPrec(64)
	if got := z.String(); got != "0" {
		t.Fatalf("zero float = %s, want 0", got)
	}
}

func TestFloatPowUintExact(t *testing.T) {
	two := new(Float).SetPrec(64).SetInt64(2)
	got := new(Float).SetPrec(64).PowUint(two, 10)
	want := "1024000000000000000e-15"
	if s := got.String(); s != want {
		t.Fatalf("2^10 as float = %s, want %s", s, want)
	}
}

func TestFloatPowUintZeroExponent(t *testing.T) {
	five := new(Float).SetPrec(64).SetInt64(5)
	got := new(Float).SetPrec(64).PowUint(five, 0)
	want := "1000000000000000000e-18"
	if s := got.String(); s != want {
		t.Fatalf("5^0 as float = %s, want %s", s, want)
	}
}

func TestFloatPrintBufferTooSmall(t *testing.T) {
	x := new(Float).SetPrec(64).SetInt64(4)
	size := x.PrintSize()
	if n := x.Print(make([]byte, size-1)); n != 0 {
		t.Fatalf("Print into undersized buffer = %d, want 0", n)
	}
	buf := make([]byte, size)
	n := x.Print(buf)
	if n == 0 || string(buf[:n]) != x.String() {
		t.Fatalf("Print into exact buffer = %q, want %q", buf[:n], x.String())
	}
}
