package limb

// shlVU shifts x left by s bits (0 < s < Bits) into z (len(z) == len(x)),
// returning the bits shifted out of the top. Safe for z == x (processes
// high to low).
func shlVU(z, x []Word, s uint) (c Word) {
	n := len(z)
	if n == 0 {
		return 0
	}
	inv := Bits - s
	w1 := x[n-1]
	c = w1 >> inv
	for i := n - 1; i > 0; i-- {
		w := w1
		w1 = x[i-1]
		z[i] = w<<s | w1>>inv
	}
	z[0] = w1 << s
	return c
}

// shrVU shifts x right by s bits (0 < s < Bits) into z (len(z) == len(x)),
// returning the bits shifted out of the bottom, left-aligned in the high
// bits of the word. Safe for z == x (processes low to high).
func shrVU(z, x []Word, s uint) (c Word) {
	n := len(z)
	if n == 0 {
		return 0
	}
	inv := Bits - s
	w1 := x[0]
	c = w1 << inv
	for i := 0; i < n-1; i++ {
		w := w1
		w1 = x[i+1]
		z[i] = w>>s | w1<<inv
	}
	z[n-1] = w1 >> s
	return c
}

// Lsh returns x<<k for 0 <= k < Bits, normalized. The result may need one
// more limb than x to hold the bits shifted out of the top.
func Lsh(x []Word, k uint) []Word {
	x = Normalize(x)
	if len(x) == 0 {
		return nil
	}
	if k == 0 {
		return Clone(x)
	}
	z := make([]Word, len(x)+1)
	c := shlVU(z[:len(x)], x, k)
	z[len(x)] = c
	return Normalize(z)
}

// Rsh returns x>>k for 0 <= k < Bits, normalized.
func Rsh(x []Word, k uint) []Word {
	x = Normalize(x)
	if len(x) == 0 || k == 0 {
		return Clone(x)
	}
	z := make([]Word, len(x))
	shrVU(z, x, k)
	return Normalize(z)
}

// samePtr reports whether a and b start at the same address. Go has no
// portable slice-range comparison, so any overlap we cannot prove to start
// at the same address is treated conservatively as unrelated-enough to
// require a scratch copy (see LshOverlap).
func samePtr(a, b []Word) bool {
	la, lb := len(a), len(b)
	if la == 0 || lb == 0 {
		return false
	}
	// Comparing the addresses of the first elements tells whether both
	// slices start at the same place in memory.
	return &a[0] == &b[0]
}

// LshOverlap behaves like Lsh but writes into z, which may alias x (at the
// same base address, or at an arbitrary offset into the same backing
// array). When the destination provably starts at the same address as the
// source the in-place high-to-low loop is reused directly; any other
// overlap is routed through a scratch copy so aliasing can never corrupt
// the source before it has been consumed.
func LshOverlap(z, x []Word, k uint) Word {
	if k == 0 {
		if !samePtrOrDisjoint(z, x) {
			copy(z, x)
		}
		return 0
	}
	if len(z) >= len(x) && samePtr(z, x) {
		return shlVU(z[:len(x)], x, k)
	}
	src := Clone(x)
	return shlVU(z[:len(src)], src, k)
}

// RshOverlap is LshOverlap's right-shift counterpart.
func RshOverlap(z, x []Word, k uint) Word {
	if k == 0 {
		if !samePtrOrDisjoint(z, x) {
			copy(z, x)
		}
		return 0
	}
	if len(z) >= len(x) && samePtr(z, x) {
		return shrVU(z[:len(x)], x, k)
	}
	src := Clone(x)
	return shrVU(z[:len(src)], src, k)
}

func samePtrOrDisjoint(a, b []Word) bool {
	if len(a) == 0 || len(b) == 0 {
		return true
	}
	return &a[0] == &b[0]
}
