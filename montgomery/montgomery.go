// Package montgomery implements the Montgomery XZ-ladder engine (C6)
// used for Curve25519-style scalar multiplication: the differential
// add-and-double step (mladd-1987-m-3), a constant-time conditional
// swap, the MSB-first ladder, and Coron's projective-coordinate DPA
// countermeasure.
//
// The teacher repo never implements a Montgomery curve (it is
// secp256k1-only); this package is grounded on
// golang-crypto__curve25519.go in the retrieval pack's other_examples,
// whose add/double/scalarMult trio over big.Int is restructured here
// into the XZ-ladder form spec §4.4 specifies, with the MSB-first bit
// order that reference already uses (for i := 254; i >= 0; i--) rather
// than the LSB-first loop the spec's §9 open question warns against
// replicating.
package montgomery

import (
	"crypto/subtle"

	"github.com/cryptokernel/ecc/bigint"
	"github.com/cryptokernel/ecc/curve"
	"github.com/cryptokernel/ecc/eccerrors"
	"github.com/cryptokernel/ecc/field"
	"github.com/cryptokernel/ecc/point"
	"github.com/cryptokernel/ecc/rng"
)

// ConditionalSwap swaps (n1, n2) when flag is true, and leaves them
// unchanged otherwise, executing the same sequence of operations in
// both cases: mask = -flag (all-ones or all-zeros, selected via
// crypto/subtle.ConstantTimeSelect rather than a data-dependent branch),
// delta = mask & (n1 XOR n2), n1 ^= delta, n2 ^= delta. Per spec §4.4,
// n1 == n2 is a caller bug and is rejected with InternalInvariantError.
func ConditionalSwap(n1, n2 *bigint.Integer, flag bool) (*bigint.Integer, *bigint.Integer, error) {
	const op = "montgomery.ConditionalSwap"
	if n1.Cmp(n2) == 0 {
		return nil, nil, eccerrors.New(op, eccerrors.InternalInvariantError)
	}

	flagInt := 0
	if flag {
		flagInt = 1
	}
	mask := bigint.FromInt64(int64(subtle.ConstantTimeSelect(flagInt, -1, 0)))
	delta := mask.And(n1.Xor(n2))
	r1 := n1.Xor(delta)
	r2 := n2.Xor(delta)
	return r1, r2, nil
}

// swapXZ applies ConditionalSwap across the X and Z limbs of a and b.
// The ladder's first swap pairs the identity (1,0) with the randomised
// lift (l*x, l), whose Z limbs differ. If a limb pair is ever equal,
// ConditionalSwap's equal-operand check fails and the error is returned.
func swapXZ(d *curve.Descriptor, a, b point.MontgomeryXZ, flag bool) (point.MontgomeryXZ, point.MontgomeryXZ, error) {
	f := d.Field
	xr1, xr2, err := ConditionalSwap(a.X.Int(), b.X.Int(), flag)
	if err != nil {
		return point.MontgomeryXZ{}, point.MontgomeryXZ{}, err
	}
	zr1, zr2, err := ConditionalSwap(a.Z.Int(), b.Z.Int(), flag)
	if err != nil {
		return point.MontgomeryXZ{}, point.MontgomeryXZ{}, err
	}
	return point.MontgomeryXZ{X: f.Elem(xr1), Z: f.Elem(zr1)},
		point.MontgomeryXZ{X: f.Elem(xr2), Z: f.Elem(zr2)}, nil
}

// DifferentialAddAndDouble implements mladd-1987-m-3: given the current
// accumulators r (≈ R), s (≈ S), and the fixed difference point diff (D,
// with D.z == 1), it computes (2R, R+P) into (r2, s2), per spec §4.4.
func DifferentialAddAndDouble(d *curve.Descriptor, r, s, diff point.MontgomeryXZ) (r2, s2 point.MontgomeryXZ, err error) {
	const op = "montgomery.DifferentialAddAndDouble"
	if !diff.Z.Equal(d.Field.One()) {
		return point.MontgomeryXZ{}, point.MontgomeryXZ{}, eccerrors.New(op, eccerrors.InternalInvariantError)
	}

	f := d.Field
	a := f.Add(r.X, r.Z)
	aa := f.Square(a)
	b := f.Sub(r.X, r.Z)
	bb := f.Square(b)
	e := f.Sub(aa, bb)
	c := f.Add(s.X, s.Z)
	dd := f.Sub(s.X, s.Z)
	da := f.Mul(dd, a)
	cb := f.Mul(c, b)

	sx := f.Mul(diff.Z, f.Square(f.Add(da, cb)))
	sz := f.Mul(diff.X, f.Square(f.Sub(da, cb)))

	rx := f.Mul(aa, bb)
	rz := f.Mul(e, f.Add(bb, f.Mul(d.A24, e)))

	return point.MontgomeryXZ{X: rx, Z: rz}, point.MontgomeryXZ{X: sx, Z: sz}, nil
}

// Randomize applies Coron's projective-coordinate DPA countermeasure:
// given P = (x, z) and a uniformly random l in [2, p) drawn from src, it
// returns (l*x mod p, l*z mod p), retrying on RNG failure or l < 2.
func Randomize(d *curve.Descriptor, p point.MontgomeryXZ, src rng.Source) (point.MontgomeryXZ, error) {
	const op = "montgomery.Randomize"
	f := d.Field
	pLen := (d.Field.P().BitLen() + 7) / 8

	const maxAttempts = 64
	for attempt := 0; attempt < maxAttempts; attempt++ {
		raw, err := src.Bytes(pLen)
		if err != nil {
			continue
		}
		l := bigint.FromBytes(raw)
		reduced, _ := l.Mod(d.Field.P())
		if reduced.Cmp(bigint.FromInt64(2)) < 0 {
			continue
		}
		lElem := f.Elem(reduced)
		return point.MontgomeryXZ{X: f.Mul(lElem, p.X), Z: f.Mul(lElem, p.Z)}, nil
	}
	return point.MontgomeryXZ{}, eccerrors.New(op, eccerrors.RngFailure)
}

// Ladder computes n*p for an affine base point p (Z implicitly 1), per
// spec §4.4: save D = P, initialise R = identity and S = randomise(P),
// then walk every bit of the scalar MSB-first, starting at its leading 1,
// conditionally swapping, applying the differential add-and-double, and
// swapping back. The final R is normalised to affine x before return.
func Ladder(d *curve.Descriptor, n *bigint.Integer, p point.Affine, src rng.Source) (*field.Element, error) {
	const op = "montgomery.Ladder"
	f := d.Field

	diff := point.FromAffineXZ(f, p.X)
	r := point.IdentityXZ(f)
	s0 := point.FromAffineXZ(f, p.X)
	s, err := Randomize(d, s0, src)
	if err != nil {
		return nil, eccerrors.Wrap(op, eccerrors.RngFailure, err)
	}

	l := n.BitLen()
	for i := l - 1; i >= 0; i-- {
		b := n.Bit(i)
		var err error
		r, s, err = swapXZ(d, r, s, b)
		if err != nil {
			return nil, eccerrors.Wrap(op, eccerrors.InternalInvariantError, err)
		}
		r, s, err = DifferentialAddAndDouble(d, r, s, diff)
		if err != nil {
			return nil, eccerrors.Wrap(op, eccerrors.InternalInvariantError, err)
		}
		r, s, err = swapXZ(d, r, s, b)
		if err != nil {
			return nil, eccerrors.Wrap(op, eccerrors.InternalInvariantError, err)
		}
	}

	x, err := point.ToAffineX(f, r)
	if err != nil {
		return nil, eccerrors.Wrap(op, eccerrors.ArithmeticError, err)
	}
	return x, nil
}
