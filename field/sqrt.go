package field

import "github.com/cryptokernel/ecc/bigint"

// SquareRoots returns the roots of x in Fp: an empty slice if x is not a
// quadratic residue, or the two roots [r, p-r] with the smaller root
// first otherwise. For p ≡ 3 (mod 4) — secp256k1's field — the fast path
// r = x^((p+1)/4) mod p is used and verified by squaring, matching the
// teacher's field/inverse.go Sqrt. Curve25519's prime is 2^255-19 ≡ 5
// (mod 8), so the general Tonelli-Shanks algorithm is required as a
// fallback for p ≡ 1 (mod 4).
func (f *Field) SquareRoots(x *Element) []*Element {
	if x.IsZero() {
		return f.orderedPair(f.Zero())
	}

	four := bigint.FromInt64(4)
	pMod4, _ := f.p.Mod(four)
	if pMod4.Cmp(bigint.FromInt64(3)) == 0 {
		return f.sqrtFastPath(x)
	}
	return f.sqrtTonelliShanks(x)
}

func (f *Field) sqrtFastPath(x *Element) []*Element {
	exp := f.p.Add(bigint.One()).Rsh(2)
	r, err := bigint.Pow(x.v, exp, f.p)
	if err != nil {
		return nil
	}
	root := &Element{f: f, v: r}
	if !f.Square(root).Equal(x) {
		return nil
	}
	return f.orderedPair(root)
}

func (f *Field) sqrtTonelliShanks(n *Element) []*Element {
	// Euler's criterion: n^((p-1)/2) must be 1 for n to be a QR.
	pMinus1 := f.p.Sub(bigint.One())
	legendreExp := pMinus1.Rsh(1)
	legendre, err := bigint.Pow(n.v, legendreExp, f.p)
	if err != nil {
		return nil
	}
	if legendre.Cmp(bigint.One()) != 0 {
		return nil
	}

	// Factor p-1 = q * 2^s with q odd.
	q := pMinus1.Clone()
	s := 0
	two := bigint.FromInt64(2)
	for {
		rem, _ := q.Mod(two)
		if !rem.IsZero() {
			break
		}
		q, _ = q.Div(two)
		s++
	}

	// Find a quadratic non-residue z.
	z := f.ElemFromInt64(2)
	for {
		zLegendre, _ := bigint.Pow(z.v, legendreExp, f.p)
		if zLegendre.Cmp(pMinus1) == 0 {
			break
		}
		z = f.Add(z, f.One())
	}

	m := s
	c, _ := bigint.Pow(z.v, q, f.p)
	cElem := &Element{f: f, v: c}
	tInt, _ := bigint.Pow(n.v, q, f.p)
	t := &Element{f: f, v: tInt}
	qPlus1Half := q.Add(bigint.One()).Rsh(1)
	rInt, _ := bigint.Pow(n.v, qPlus1Half, f.p)
	r := &Element{f: f, v: rInt}

	for {
		if t.IsZero() {
			return f.orderedPair(f.Zero())
		}
		if t.Equal(f.One()) {
			return f.orderedPair(r)
		}

		// Find least i, 0 < i < m, such that t^(2^i) == 1.
		i := 0
		tt := t
		for i = 1; i < m; i++ {
			tt = f.Square(tt)
			if tt.Equal(f.One()) {
				break
			}
		}
		if i == m {
			return nil
		}

		bExp := bigint.One().Lsh(uint(m - i - 1))
		bInt, _ := bigint.Pow(cElem.v, bExp, f.p)
		b := &Element{f: f, v: bInt}

		m = i
		cElem = f.Square(b)
		t = f.Mul(t, cElem)
		r = f.Mul(r, b)
	}
}

// orderedPair returns [root, p-root] with the smaller value first.
func (f *Field) orderedPair(root *Element) []*Element {
	other := f.Negate(root)
	if root.v.Cmp(other.v) <= 0 {
		return []*Element{root, other}
	}
	return []*Element{other, root}
}
