// Package point implements the three point representations named in
// spec §3: affine (x, y) with a distinguished point at infinity,
// projective (X, Y, Z) for the short-Weierstrass engine, and
// Montgomery XZ-coordinates for the Montgomery ladder. Conversions
// between forms are total functions, per design note §9.
//
// The teacher's group.Point mixed the affine representation with a
// Jacobian JacobianPoint tailored to secp256k1's a=0; this package
// generalizes both into field-parametric types that work for any
// curve's field, and adds MontgomeryXZ, which the teacher never needed
// because it only implemented short Weierstrass.
package point

import "github.com/cryptokernel/ecc/field"

// Affine is an ordinary (x, y) point, or the point at infinity when
// Infinity is true (in which case X and Y are ignored).
type Affine struct {
	X, Y     *field.Element
	Infinity bool
}

// NewAffine constructs a finite affine point.
func NewAffine(x, y *field.Element) Affine {
	return Affine{X: x, Y: y}
}

// InfinityAffine returns the affine point at infinity (the group identity).
func InfinityAffine() Affine {
	return Affine{Infinity: true}
}

// Equal reports coordinate-wise equality, per spec §3.
func (a Affine) Equal(b Affine) bool {
	if a.Infinity || b.Infinity {
		return a.Infinity == b.Infinity
	}
	return a.X.Equal(b.X) && a.Y.Equal(b.Y)
}

// Projective is a triple (X, Y, Z); the affine interpretation is
// (X/Z, Y/Z) when Z != 0. Identity is (0, 1, 0).
type Projective struct {
	X, Y, Z *field.Element
}

// InfinityProjective returns the projective identity (0, 1, 0) in f.
func InfinityProjective(f *field.Field) Projective {
	return Projective{X: f.Zero(), Y: f.One(), Z: f.Zero()}
}

// IsInfinity reports whether p represents the identity (Z == 0).
func (p Projective) IsInfinity() bool { return p.Z.IsZero() }

// ToAffine converts p to affine coordinates via (X/Z, Y/Z). It returns
// the point at infinity when Z == 0.
func (p Projective) ToAffine(f *field.Field) (Affine, error) {
	if p.Z.IsZero() {
		return InfinityAffine(), nil
	}
	zInv, err := f.Inverse(p.Z)
	if err != nil {
		return Affine{}, err
	}
	return NewAffine(f.Mul(p.X, zInv), f.Mul(p.Y, zInv)), nil
}

// FromAffine lifts an affine point into projective coordinates.
func FromAffine(f *field.Field, a Affine) Projective {
	if a.Infinity {
		return InfinityProjective(f)
	}
	return Projective{X: a.X, Y: a.Y, Z: f.One()}
}

// MontgomeryXZ is the (x, z) pair used exclusively inside the Montgomery
// ladder; the y coordinate is never materialised here. Identity is
// (1, 0).
type MontgomeryXZ struct {
	X, Z *field.Element
}

// IdentityXZ returns the Montgomery-ladder identity (1, 0) in f.
func IdentityXZ(f *field.Field) MontgomeryXZ {
	return MontgomeryXZ{X: f.One(), Z: f.Zero()}
}

// FromAffineXZ lifts an affine x-coordinate into XZ form with Z = 1, the
// form the ladder requires for its fixed difference point D.
func FromAffineXZ(f *field.Field, x *field.Element) MontgomeryXZ {
	return MontgomeryXZ{X: x, Z: f.One()}
}

// ToAffineX recovers the affine x-coordinate x/z from an XZ pair.
func ToAffineX(f *field.Field, p MontgomeryXZ) (*field.Element, error) {
	zInv, err := f.Inverse(p.Z)
	if err != nil {
		return nil, err
	}
	return f.Mul(p.X, zInv), nil
}
