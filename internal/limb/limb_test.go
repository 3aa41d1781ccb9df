package limb

import "testing"

func w(vals ...uint64) []Word {
	out := make([]Word, len(vals))
	for i, v := range vals {
		out[i] = Word(v)
	}
	return out
}

func TestNormalize(t *testing.T) {
	x := w(1, 2, 0, 0)
	got := Normalize(x)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("Normalize(%v) = %v", x, got)
	}
	if len(Normalize(w(0, 0, 0))) != 0 {
		t.Fatalf("Normalize of all-zero should be empty")
	}
}

func TestCmp(t *testing.T) {
	cases := []struct {
		x, y []Word
		want int
	}{
		{w(), w(), 0},
		{w(1), w(), 1},
		{w(), w(1), -1},
		{w(1, 2), w(5, 1), 1},
		{w(5, 1), w(1, 2), -1},
		{w(3, 4), w(3, 4), 0},
	}
	for _, c := range cases {
		if got := Cmp(c.x, c.y); got != c.want {
			t.Errorf("Cmp(%v, %v) = %d, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestAddSub(t *testing.T) {
	x := w(^uint64(0), 0)
	y := w(1)
	sum := Add(x, y)
	want := w(0, 1)
	if Cmp(sum, want) != 0 {
		t.Fatalf("Add carry: got %v, want %v", sum, want)
	}
	diff := Sub(sum, y)
	if Cmp(diff, Normalize(x)) != 0 {
		t.Fatalf("Sub: got %v, want %v", diff, x)
	}
}

func TestSubBorrowAcrossLimbs(t *testing.T) {
	// 0x1_0000_0000_0000_0000_0000_0000_0000_0000 - 1, exercising a
	// borrow that must propagate through an all-zero middle limb.
	x := w(0, 0, 1)
	y := w(1)
	got := Sub(x, y)
	want := w(^uint64(0), ^uint64(0))
	if Cmp(got, want) != 0 {
		t.Fatalf("Sub borrow propagation: got %v, want %v", got, want)
	}
}

func TestMul(t *testing.T) {
	x := w(1<<32, 0)
	y := w(1 << 32)
	got := Mul(x, y)
	want := w(0, 1) // (2^32)^2 = 2^64
	if Cmp(got, want) != 0 {
		t.Fatalf("Mul: got %v, want %v", got, want)
	}
}

func TestBitLen(t *testing.T) {
	if BitLen(nil) != 0 {
		t.Fatal("BitLen(nil) != 0")
	}
	if BitLen(w(1)) != 1 {
		t.Fatalf("BitLen(1) = %d", BitLen(w(1)))
	}
	if BitLen(w(0, 1)) != Bits+1 {
		t.Fatalf("BitLen(2^64) = %d, want %d", BitLen(w(0, 1)), Bits+1)
	}
}
