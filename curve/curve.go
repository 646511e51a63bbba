// Package curve implements named curve descriptors (C4): immutable
// records of the curve's field, coefficients, generator, order and
// cofactor, validated at construction per spec §3. It generalizes the
// teacher's package-level secp256k1-only constants (group.Generator,
// scalar's curve-order constants) into a small registry that can also
// describe Curve25519, following design note §9's "tagged variant...
// key derivation inspects the tag" guidance instead of a class
// hierarchy.
package curve

import (
	"github.com/cryptokernel/ecc/bigint"
	"github.com/cryptokernel/ecc/eccerrors"
	"github.com/cryptokernel/ecc/field"
	"github.com/cryptokernel/ecc/point"
)

// Form is the tagged variant distinguishing curve algebra families.
type Form int

const (
	// ShortWeierstrass describes curves of the form y^2 = x^3 + ax + b.
	ShortWeierstrass Form = iota
	// Montgomery describes curves of the form by^2 = x(x^2 + ax + 1).
	Montgomery
)

// ID names a registered curve.
type ID string

const (
	// Secp256k1ID names the secp256k1 short-Weierstrass curve.
	Secp256k1ID ID = "secp256k1"
	// Curve25519ID names the Curve25519 Montgomery curve.
	Curve25519ID ID = "curve25519"
)

// Descriptor is the immutable curve record of spec §3. Descriptors are
// safe to share by reference; they never mutate after construction.
type Descriptor struct {
	ID   ID
	Form Form

	Field *field.Field
	A, B  *field.Element
	G     point.Affine
	N     *bigint.Integer
	H     *bigint.Integer

	// A24 is (a+2)/4 mod p, precomputed for the Montgomery ladder. It is
	// only meaningful when Form == Montgomery.
	A24 *field.Element
}

func newShortWeierstrass(id ID, p, a, b, gx, gy, n, h *bigint.Integer) (*Descriptor, error) {
	const op = "curve.newShortWeierstrass"
	f := field.NewField(p)
	ae := f.Elem(a)
	be := f.Elem(b)

	// 4a^3 + 27b^2 !≡ 0 (mod p), the non-singularity / discriminant
	// condition of spec §3.
	four := f.ElemFromInt64(4)
	twentySeven := f.ElemFromInt64(27)
	aCubed := f.Mul(f.Square(ae), ae)
	lhs := f.Mul(four, aCubed)
	bSquared := f.Square(be)
	rhs := f.Mul(twentySeven, bSquared)
	discriminant := f.Add(lhs, rhs)
	if discriminant.IsZero() {
		return nil, eccerrors.New(op, eccerrors.CurveInvariantError)
	}

	g := point.NewAffine(f.Elem(gx), f.Elem(gy))
	return &Descriptor{
		ID: id, Form: ShortWeierstrass,
		Field: f, A: ae, B: be, G: g, N: n.Clone(), H: h.Clone(),
	}, nil
}

func newMontgomery(id ID, p, a, b, gx, gy, n, h *bigint.Integer) (*Descriptor, error) {
	const op = "curve.newMontgomery"
	f := field.NewField(p)
	ae := f.Elem(a)
	be := f.Elem(b)

	// b(a^2 - 4) !≡ 0 (mod p), spec §3.
	four := f.ElemFromInt64(4)
	aSquaredMinus4 := f.Sub(f.Square(ae), four)
	discriminant := f.Mul(be, aSquaredMinus4)
	if discriminant.IsZero() {
		return nil, eccerrors.New(op, eccerrors.CurveInvariantError)
	}

	// a24 = (a+2)/4 mod p.
	aPlus2 := f.Add(ae, f.ElemFromInt64(2))
	a24, err := f.Div(aPlus2, four)
	if err != nil {
		return nil, eccerrors.Wrap(op, eccerrors.CurveInvariantError, err)
	}

	g := point.NewAffine(f.Elem(gx), f.Elem(gy))
	return &Descriptor{
		ID: id, Form: Montgomery,
		Field: f, A: ae, B: be, G: g, N: n.Clone(), H: h.Clone(), A24: a24,
	}, nil
}

// EvalShortWeierstrassRHS returns x^3 + ax + b mod p, used both to
// validate points and to recover y during decompression.
func (d *Descriptor) EvalShortWeierstrassRHS(x *field.Element) *field.Element {
	f := d.Field
	x3 := f.Mul(f.Square(x), x)
	ax := f.Mul(d.A, x)
	return f.Add(f.Add(x3, ax), d.B)
}

// IsOnCurve reports whether p satisfies the curve equation (always true
// for the point at infinity), per spec §3's affine-point invariant.
func (d *Descriptor) IsOnCurve(p point.Affine) bool {
	if p.Infinity {
		return true
	}
	switch d.Form {
	case ShortWeierstrass:
		lhs := d.Field.Square(p.Y)
		rhs := d.EvalShortWeierstrassRHS(p.X)
		return lhs.Equal(rhs)
	case Montgomery:
		// by^2 = x^3 + ax^2 + x
		f := d.Field
		lhs := f.Mul(d.B, f.Square(p.Y))
		x2 := f.Square(p.X)
		rhs := f.Add(f.Add(f.Mul(x2, p.X), f.Mul(d.A, x2)), p.X)
		return lhs.Equal(rhs)
	default:
		return false
	}
}
