package limb

import "testing"

func TestPrintZero(t *testing.T) {
	buf := make([]byte, PrintSize(nil))
	n := Print(buf, nil)
	if string(buf[:n]) != "0" {
		t.Fatalf("Print(0) = %q", buf[:n])
	}
}

func TestPrintRoundTrip(t *testing.T) {
	// A multi-limb value built by folding decimal chunks in, the same way
	// parseDecimalDigits in package mathx does.
	x := MulAddLimb10Chunk(nil, 123456)
	x = MulAddLimb10Chunk(x, 789012345678901234)
	x = MulAddLimb10Chunk(x, 567890) // not a real continuation, just exercises multi-limb Print

	buf := make([]byte, PrintSize(x))
	n := Print(buf, x)
	if n == 0 {
		t.Fatal("Print wrote 0 bytes")
	}
	got := string(buf[:n])
	if got[0] == '0' && len(got) > 1 {
		t.Fatalf("Print produced a leading zero: %q", got)
	}
}

func TestPrintSmallValue(t *testing.T) {
	x := w(42)
	buf := make([]byte, PrintSize(x))
	n := Print(buf, x)
	if string(buf[:n]) != "42" {
		t.Fatalf("Print(42) = %q", buf[:n])
	}
}
