// Package key implements private/public key derivation and
// serialization (C7), generalizing the teacher's flat, secp256k1-only
// PrivateKey/PublicKey (secp256k1.go) into types carrying a
// *curve.Descriptor so the same code serves both short-Weierstrass and
// Montgomery curves. Derive dispatches on curve.Form exactly as design
// note §9 describes: short Weierstrass calls weierstrass.ScalarMultAffine,
// Montgomery calls montgomery.Ladder.
package key

import (
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"github.com/cryptokernel/ecc/bigint"
	"github.com/cryptokernel/ecc/curve"
	"github.com/cryptokernel/ecc/eccerrors"
	"github.com/cryptokernel/ecc/field"
	"github.com/cryptokernel/ecc/montgomery"
	"github.com/cryptokernel/ecc/point"
	"github.com/cryptokernel/ecc/rng"
	"github.com/cryptokernel/ecc/weierstrass"
)

// PrivateKey is a scalar in [1, N) tied to the curve it was generated or
// parsed for.
type PrivateKey struct {
	curve  *curve.Descriptor
	scalar *bigint.Integer
}

func byteWidth(d *curve.Descriptor) int {
	return (d.N.BitLen() + 7) / 8
}

// Generate draws a uniformly random scalar in [1, N) from src, retrying
// on an out-of-range draw, the same rejection-sampling loop as the
// teacher's GeneratePrivateKey (secp256k1.go), generalized to any
// registered curve and to an injectable rng.Source.
func Generate(d *curve.Descriptor, src rng.Source) (*PrivateKey, error) {
	const op = "key.Generate"
	width := byteWidth(d)

	const maxAttempts = 1000
	for attempt := 0; attempt < maxAttempts; attempt++ {
		raw, err := src.Bytes(width)
		if err != nil {
			return nil, eccerrors.Wrap(op, eccerrors.RngFailure, err)
		}
		candidate := bigint.FromBytes(raw)
		if candidate.IsZero() || candidate.Cmp(d.N) >= 0 {
			continue
		}
		return &PrivateKey{curve: d, scalar: candidate}, nil
	}
	return nil, eccerrors.New(op, eccerrors.RngFailure)
}

// FromBytes parses a fixed-width big-endian scalar, rejecting 0 and any
// value >= the curve order, per spec §7's ScalarOutOfRange condition.
func FromBytes(d *curve.Descriptor, b []byte) (*PrivateKey, error) {
	const op = "key.FromBytes"
	if len(b) != byteWidth(d) {
		return nil, eccerrors.New(op, eccerrors.ParseError)
	}
	scalar := bigint.FromBytes(b)
	if scalar.IsZero() || scalar.Cmp(d.N) >= 0 {
		return nil, eccerrors.New(op, eccerrors.ScalarOutOfRange)
	}
	return &PrivateKey{curve: d, scalar: scalar}, nil
}

// FromHex parses a private-key scalar from a case-insensitive hex string
// with an optional "0x"/"0X" prefix and an even digit count, per spec
// §6's hex input contract, rejecting 0 and any value >= the curve order.
func FromHex(d *curve.Descriptor, s string) (*PrivateKey, error) {
	const op = "key.FromHex"
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if trimmed == "" || len(trimmed)%2 != 0 {
		return nil, eccerrors.New(op, eccerrors.ParseError)
	}
	scalar, err := bigint.FromHex(trimmed)
	if err != nil {
		return nil, eccerrors.Wrap(op, eccerrors.ParseError, err)
	}
	if scalar.IsZero() || scalar.Cmp(d.N) >= 0 {
		return nil, eccerrors.New(op, eccerrors.ScalarOutOfRange)
	}
	return &PrivateKey{curve: d, scalar: scalar}, nil
}

// FromBase64 parses a private-key scalar from standard-alphabet, padded
// base64 (spec §6), rejecting 0 and any value >= the curve order.
func FromBase64(d *curve.Descriptor, s string) (*PrivateKey, error) {
	const op = "key.FromBase64"
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, eccerrors.Wrap(op, eccerrors.ParseError, err)
	}
	scalar := bigint.FromBytes(raw)
	if scalar.IsZero() || scalar.Cmp(d.N) >= 0 {
		return nil, eccerrors.New(op, eccerrors.ScalarOutOfRange)
	}
	return &PrivateKey{curve: d, scalar: scalar}, nil
}

// FromDecimal parses a private-key scalar from a base-10 string, per spec
// §6, rejecting 0, negative values and any value >= the curve order.
func FromDecimal(d *curve.Descriptor, s string) (*PrivateKey, error) {
	const op = "key.FromDecimal"
	scalar, err := bigint.FromDecimal(s)
	if err != nil {
		return nil, eccerrors.Wrap(op, eccerrors.ParseError, err)
	}
	if scalar.Sign() <= 0 || scalar.Cmp(d.N) >= 0 {
		return nil, eccerrors.New(op, eccerrors.ScalarOutOfRange)
	}
	return &PrivateKey{curve: d, scalar: scalar}, nil
}

// Curve returns the curve this private key belongs to.
func (priv *PrivateKey) Curve() *curve.Descriptor { return priv.curve }

// Scalar returns the private scalar. The returned value must not be
// mutated.
func (priv *PrivateKey) Scalar() *bigint.Integer { return priv.scalar }

// Bytes returns the private key as a fixed-width big-endian scalar.
func (priv *PrivateKey) Bytes() []byte {
	return priv.scalar.FillBytes(byteWidth(priv.curve))
}

// Hex returns the private key as fixed-width, zero-padded lower-case hex
// (64 digits for a 256-bit scalar), for external collaborators per spec
// §4.6.
func (priv *PrivateKey) Hex() string {
	return priv.scalar.HexPadded(byteWidth(priv.curve) * 2)
}

// Base64 returns the private key as standard-alphabet, padded base64 of
// its fixed-width big-endian bytes, for external collaborators per spec
// §4.6.
func (priv *PrivateKey) Base64() string {
	return base64.StdEncoding.EncodeToString(priv.Bytes())
}

// Equal reports whether priv and other hold the same scalar on the same
// curve, comparing in constant time via crypto/subtle so that neither the
// early-exit-on-mismatch shape nor its timing can leak which scalar bytes
// differ, the same guarantee the teacher's scalar.Scalar.Equal makes.
func (priv *PrivateKey) Equal(other *PrivateKey) bool {
	if priv.curve != other.curve {
		return false
	}
	width := byteWidth(priv.curve)
	return subtle.ConstantTimeCompare(priv.scalar.FillBytes(width), other.scalar.FillBytes(width)) == 1
}

// Clear overwrites the in-memory scalar with zero. Per design note §9,
// this is best-effort: math/big.Int does not guarantee the original
// limbs are scrubbed from memory, only that this PrivateKey no longer
// references the secret value.
func (priv *PrivateKey) Clear() {
	priv.scalar = bigint.Zero()
}

// PublicKey is a curve point with an optional y-coordinate: Montgomery
// derivation (the XZ-ladder) only ever produces an x-coordinate, so y is
// nil for any PublicKey derived on a Montgomery curve.
type PublicKey struct {
	curve *curve.Descriptor
	x, y  *field.Element
}

// Derive computes priv's public key: k*G via weierstrass.ScalarMultAffine
// for a ShortWeierstrass curve, or montgomery.Ladder (which needs its own
// randomization draw from src) for a Montgomery curve.
func Derive(priv *PrivateKey, src rng.Source) (*PublicKey, error) {
	const op = "key.Derive"
	d := priv.curve
	switch d.Form {
	case curve.ShortWeierstrass:
		p := weierstrass.ScalarMultAffine(d, priv.scalar, d.G)
		if p.Infinity {
			return nil, eccerrors.New(op, eccerrors.ScalarOutOfRange)
		}
		return &PublicKey{curve: d, x: p.X, y: p.Y}, nil
	case curve.Montgomery:
		x, err := montgomery.Ladder(d, priv.scalar, d.G, src)
		if err != nil {
			return nil, eccerrors.Wrap(op, eccerrors.ArithmeticError, err)
		}
		return &PublicKey{curve: d, x: x}, nil
	default:
		return nil, eccerrors.New(op, eccerrors.CurveInvariantError)
	}
}

// Curve returns the curve this public key belongs to.
func (pub *PublicKey) Curve() *curve.Descriptor { return pub.curve }

// X returns the public key's x-coordinate.
func (pub *PublicKey) X() *field.Element { return pub.x }

// Y returns the public key's y-coordinate and whether it is known. It is
// unknown for any key derived on a Montgomery curve.
func (pub *PublicKey) Y() (*field.Element, bool) {
	if pub.y == nil {
		return nil, false
	}
	return pub.y, true
}

// Point returns the public key as an affine point, for callers that need
// to feed it back into weierstrass package operations. Only valid when Y
// is known.
func (pub *PublicKey) Point() (point.Affine, error) {
	const op = "key.PublicKey.Point"
	if pub.y == nil {
		return point.Affine{}, eccerrors.New(op, eccerrors.CurveInvariantError)
	}
	return point.NewAffine(pub.x, pub.y), nil
}

// Compressed serializes the public key: a 0x02/0x03 parity prefix
// followed by the x-coordinate for a ShortWeierstrass key (generalizing
// the teacher's PublicKey.Bytes()), or the bare x-coordinate for a
// Montgomery key (the X25519 wire format, which carries no parity byte
// because Montgomery ladder never distinguishes y from -y).
func (pub *PublicKey) Compressed() []byte {
	width := byteWidth(pub.curve)
	xBytes := pub.x.FillBytes(width)
	if pub.curve.Form == curve.Montgomery {
		return xBytes
	}
	prefix := byte(0x02)
	if pub.y.IsOdd() {
		prefix = 0x03
	}
	out := make([]byte, width+1)
	out[0] = prefix
	copy(out[1:], xBytes)
	return out
}

// Uncompressed serializes a ShortWeierstrass public key as 0x04 || X ||
// Y. It errors for a Montgomery key, which has no materialized
// y-coordinate to serialize.
func (pub *PublicKey) Uncompressed() ([]byte, error) {
	const op = "key.PublicKey.Uncompressed"
	if pub.y == nil {
		return nil, eccerrors.New(op, eccerrors.CurveInvariantError)
	}
	width := byteWidth(pub.curve)
	out := make([]byte, 2*width+1)
	out[0] = 0x04
	copy(out[1:1+width], pub.x.FillBytes(width))
	copy(out[1+width:], pub.y.FillBytes(width))
	return out, nil
}

// FromCompressed parses a compressed public key for d. For a
// ShortWeierstrass curve this recovers y from the curve equation and
// selects the root matching the parity prefix; for a Montgomery curve
// the bytes are the bare x-coordinate.
func FromCompressed(d *curve.Descriptor, b []byte) (*PublicKey, error) {
	const op = "key.FromCompressed"
	width := byteWidth(d)

	if d.Form == curve.Montgomery {
		if len(b) != width {
			return nil, eccerrors.New(op, eccerrors.ParseError)
		}
		x := d.Field.ElemFromBytes(b)
		return &PublicKey{curve: d, x: x}, nil
	}

	if len(b) != width+1 || (b[0] != 0x02 && b[0] != 0x03) {
		return nil, eccerrors.New(op, eccerrors.ParseError)
	}
	x := d.Field.ElemFromBytes(b[1:])
	rhs := d.EvalShortWeierstrassRHS(x)
	roots := d.Field.SquareRoots(rhs)
	if len(roots) == 0 {
		return nil, eccerrors.New(op, eccerrors.CurveInvariantError)
	}
	wantOdd := b[0] == 0x03
	for _, r := range roots {
		if r.IsOdd() == wantOdd {
			return &PublicKey{curve: d, x: x, y: r}, nil
		}
	}
	return nil, eccerrors.New(op, eccerrors.CurveInvariantError)
}
