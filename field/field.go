// Package field implements arithmetic in a prime field Fp (C2),
// generalizing the teacher's compile-time-fixed secp256k1 field
// (fieldPrime0..7 in the original field.FieldVal) into a Field
// descriptor parametric in any prime p, so the same code serves
// secp256k1's field and Curve25519's field.
package field

import (
	"crypto/subtle"

	"github.com/cryptokernel/ecc/bigint"
	"github.com/cryptokernel/ecc/eccerrors"
)

// Field is an immutable descriptor for arithmetic modulo a prime p. It
// never mutates after construction and is safe to share by reference
// across goroutines.
type Field struct {
	p *bigint.Integer
}

// NewField constructs a Field for the given prime modulus. p is trusted
// to be prime and greater than 3, per the §3 invariant; primality is not
// re-verified here (the curve registry is the only expected caller and
// its constants are well-known primes).
func NewField(p *bigint.Integer) *Field {
	return &Field{p: p.Clone()}
}

// P returns the field's prime modulus.
func (f *Field) P() *bigint.Integer { return f.p }

// Element is a value in the field, tied to the Field that produced it.
type Element struct {
	f *Field
	v *bigint.Integer
}

// Zero returns the additive identity of f.
func (f *Field) Zero() *Element { return &Element{f: f, v: bigint.Zero()} }

// One returns the multiplicative identity of f.
func (f *Field) One() *Element { return &Element{f: f, v: bigint.One()} }

// Elem reduces x modulo p and returns the resulting Element.
func (f *Field) Elem(x *bigint.Integer) *Element {
	r, _ := x.Mod(f.p) // f.p is always > 0 by construction.
	return &Element{f: f, v: r}
}

// ElemFromBytes reduces the big-endian magnitude of b modulo p.
func (f *Field) ElemFromBytes(b []byte) *Element {
	return f.Elem(bigint.FromBytes(b))
}

// ElemFromInt64 reduces v modulo p.
func (f *Field) ElemFromInt64(v int64) *Element {
	return f.Elem(bigint.FromInt64(v))
}

// Field returns the Field this element belongs to.
func (e *Element) Field() *Field { return e.f }

// Int returns the reduced integer value of e, in [0, p).
func (e *Element) Int() *bigint.Integer { return e.v.Clone() }

// Bytes returns the big-endian magnitude of e with no padding.
func (e *Element) Bytes() []byte { return e.v.Bytes() }

// FillBytes returns the big-endian magnitude of e, left-padded to n bytes.
func (e *Element) FillBytes(n int) []byte { return e.v.FillBytes(n) }

// IsZero reports whether e is the additive identity.
func (e *Element) IsZero() bool { return e.v.IsZero() }

// IsOdd reports whether e, interpreted as an integer in [0, p), is odd.
func (e *Element) IsOdd() bool { return e.v.Bit(0) }

// Equal reports whether e and other represent the same value in the same
// field. The value comparison runs in constant time via crypto/subtle,
// matching the teacher's FieldVal.Equal/Scalar.Equal contract that field
// comparisons must not leak timing information about secret operands.
func (e *Element) Equal(other *Element) bool {
	if e.f != other.f {
		return false
	}
	width := (e.f.p.BitLen() + 7) / 8
	return subtle.ConstantTimeCompare(e.v.FillBytes(width), other.v.FillBytes(width)) == 1
}

func (f *Field) mod(x *bigint.Integer) *Element {
	r, _ := x.Mod(f.p)
	return &Element{f: f, v: r}
}

// Add returns a + b mod p.
func (f *Field) Add(a, b *Element) *Element { return f.mod(a.v.Add(b.v)) }

// Sub returns a - b mod p.
func (f *Field) Sub(a, b *Element) *Element { return f.mod(a.v.Sub(b.v)) }

// Mul returns a * b mod p.
func (f *Field) Mul(a, b *Element) *Element { return f.mod(a.v.Mul(b.v)) }

// Square returns a^2 mod p.
func (f *Field) Square(a *Element) *Element { return f.Mul(a, a) }

// Negate returns -a mod p.
func (f *Field) Negate(a *Element) *Element {
	if a.IsZero() {
		return f.Zero()
	}
	return f.mod(a.v.Neg())
}

// ModDeferred reduces the value produced by compute() modulo p. The
// contract is purely the reduced value: compute is free to work with
// intermediate values larger than p, as long as the final result is
// reduced by ModDeferred before being handed back to a caller.
func (f *Field) ModDeferred(compute func() *bigint.Integer) *Element {
	return f.mod(compute())
}

// Inverse returns a^-1 mod p via Fermat's little theorem (a^(p-2) mod p),
// which holds because p is prime. Fails with ArithmeticError/NotInvertible
// when a is zero, the only element of Fp with no inverse.
func (f *Field) Inverse(a *Element) (*Element, error) {
	const op = "field.Inverse"
	if a.IsZero() {
		return nil, eccerrors.WithReason(op, eccerrors.ArithmeticError, eccerrors.NotInvertible)
	}
	pMinus2 := f.p.Sub(bigint.FromInt64(2))
	r, err := bigint.Pow(a.v, pMinus2, f.p)
	if err != nil {
		return nil, eccerrors.Wrap(op, eccerrors.ArithmeticError, err)
	}
	return &Element{f: f, v: r}, nil
}

// Div returns a * b^-1 mod p.
func (f *Field) Div(a, b *Element) (*Element, error) {
	const op = "field.Div"
	bInv, err := f.Inverse(b)
	if err != nil {
		return nil, eccerrors.Wrap(op, eccerrors.ArithmeticError, err)
	}
	return f.Mul(a, bInv), nil
}
