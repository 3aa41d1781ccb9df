package mathx

// Pi computes pi to prec bits of working precision using the
// Gauss-Legendre arithmetic-geometric-mean iteration, which doubles the
// number of correct bits on every pass: starting from a0=1, b0=1/sqrt(2),
// t0=1/4, p0=1, each step sets
//
//	a' = (a+b)/2
//	b' = sqrt(a*b)
//	t' = t - p*(a-a')^2
//	p' = 2p
//
// and pi is recovered as (a+b)^2 / (4t) once the sequence has converged.
// The whole computation runs at prec+guardBits bits of working
// precision so the final truncation to prec bits is the only place
// accuracy is deliberately given up.
func Pi(prec uint) (*Float, error) {
	work := prec + guardBits

	one := new(Float).SetPrec(work).SetInt64(1)
	two := new(Float).SetPrec(work).SetInt64(2)
	four := new(Float).SetPrec(work).SetInt64(4)

	a := new(Float).SetPrec(work).SetInt64(1)
	sqrt2, err := new(Float).SetPrec(work).Sqrt(two)
	if err != nil {
		return nil, err
	}
	b, err := new(Float).SetPrec(work).Inv(sqrt2)
	if err != nil {
		return nil, err
	}
	t, err := new(Float).SetPrec(work).Div(one, four)
	if err != nil {
		return nil, err
	}
	p := new(Float).SetPrec(work).SetInt64(1)

	for i := 0; i < piIterations(work); i++ {
		aNext := new(Float).SetPrec(work).Add(a, b)
		aNext, err = aNext.Div(aNext, two)
		if err != nil {
			return nil, err
		}
		ab := new(Float).SetPrec(work).Mul(a, b)
		bNext, err := new(Float).SetPrec(work).Sqrt(ab)
		if err != nil {
			return nil, err
		}
		diff := new(Float).SetPrec(work).Sub(a, aNext)
		diffSq := new(Float).SetPrec(work).Mul(diff, diff)
		pDiffSq := new(Float).SetPrec(work).Mul(p, diffSq)
		tNext := new(Float).SetPrec(work).Sub(t, pDiffSq)
		pNext := new(Float).SetPrec(work).Mul(p, two)

		a, b, t, p = aNext, bNext, tNext, pNext
	}

	apb := new(Float).SetPrec(work).Add(a, b)
	apbSq := new(Float).SetPrec(work).Mul(apb, apb)
	fourT := new(Float).SetPrec(work).Mul(four, t)
	result, err := new(Float).SetPrec(work).Div(apbSq, fourT)
	if err != nil {
		return nil, err
	}
	return result.SetPrec(prec), nil
}

// piIterations returns the number of Gauss-Legendre passes needed for
// work bits of precision: each pass doubles the correct-bit count, so
// ceil(log2(work)) passes suffice once two extra passes absorb the
// startup transient before quadratic convergence kicks in.
func piIterations(work uint) int {
	n := 0
	b := uint(1)
	for b < work {
		b <<= 1
		n++
	}
	return n + 2
}
