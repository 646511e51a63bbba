// Package kdf computes Diffie-Hellman shared secrets: a scalar
// multiplication of the peer's public point by the local private
// scalar, followed by a SHA-256 hash of the resulting x-coordinate.
//
// It generalizes the teacher's ecdh/ecdh.go ComputeSharedSecret, which
// performs the same two steps over secp256k1-only big.Int affine
// arithmetic, into a curve-parametric form that also serves Curve25519
// X25519 exchange — one of the "key exchange on curves like Curve25519"
// applications the kernel exists to support. It performs no protocol
// beyond that scalar multiplication and hash, so it does not cross into
// higher-level signature-scheme territory.
package kdf

import (
	"crypto/sha256"

	"github.com/cryptokernel/ecc/curve"
	"github.com/cryptokernel/ecc/eccerrors"
	"github.com/cryptokernel/ecc/key"
	"github.com/cryptokernel/ecc/montgomery"
	"github.com/cryptokernel/ecc/point"
	"github.com/cryptokernel/ecc/rng"
	"github.com/cryptokernel/ecc/weierstrass"
)

// SharedSecret computes SHA256(x(priv * peer)) for a ShortWeierstrass
// curve, or SHA256(ladder(priv, peer.x)) for a Montgomery curve, the
// same shared-secret shape ecdh/ecdh.go used (SHA-256 over a padded
// x-coordinate), generalized across curve forms.
func SharedSecret(priv *key.PrivateKey, peerX *key.PublicKey, src rng.Source) ([]byte, error) {
	const op = "kdf.SharedSecret"
	d := priv.Curve()
	if peerX.Curve() != d {
		return nil, eccerrors.New(op, eccerrors.CurveInvariantError)
	}

	var xBytes []byte
	switch d.Form {
	case curve.ShortWeierstrass:
		peerPoint, err := peerX.Point()
		if err != nil {
			return nil, eccerrors.Wrap(op, eccerrors.CurveInvariantError, err)
		}
		shared := weierstrass.ScalarMultAffine(d, priv.Scalar(), peerPoint)
		if shared.Infinity {
			return nil, eccerrors.New(op, eccerrors.CurveInvariantError)
		}
		xBytes = shared.X.FillBytes((d.Field.P().BitLen() + 7) / 8)
	case curve.Montgomery:
		peerAffine := point.NewAffine(peerX.X(), d.Field.Zero())
		x, err := montgomery.Ladder(d, priv.Scalar(), peerAffine, src)
		if err != nil {
			return nil, eccerrors.Wrap(op, eccerrors.ArithmeticError, err)
		}
		xBytes = x.FillBytes((d.Field.P().BitLen() + 7) / 8)
	default:
		return nil, eccerrors.New(op, eccerrors.CurveInvariantError)
	}

	hash := sha256.Sum256(xBytes)
	return hash[:], nil
}
