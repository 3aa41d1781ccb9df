package mathx

import "testing"

func TestExtendedGCD(t *testing.T) {
	g, u, v := ExtendedGCD(NewInt(12), NewInt(28))
	if g.String() != "4" {
		t.Fatalf("gcd(12,28) = %s, want 4", g)
	}
	check := new(Int).Add(new(Int).Mul(u, NewInt(12)), new(Int).Mul(v, NewInt(28)))
	if check.Cmp(g) != 0 {
		t.Fatalf("u*12+v*28 = %s, want %s (u=%s v=%s)", check, g, u, v)
	}
}

func TestGCDZero(t *testing.T) {
	if g := GCD(NewInt(0), NewInt(0)); !g.IsZero() {
		t.Fatalf("gcd(0,0) = %s, want 0", g)
	}
	if g := GCD(NewInt(0), NewInt(5)); g.String() != "5" {
		t.Fatalf("gcd(0,5) = %s, want 5", g)
	}
}

func TestGCDNegativeOperands(t *testing.T) {
	g := GCD(NewInt(-12), NewInt(18))
	if g.String() != "6" {
		t.Fatalf("gcd(-12,18) = %s, want 6", g)
	}
}
