package curve

import (
	"github.com/cryptokernel/ecc/bigint"
	"github.com/cryptokernel/ecc/eccerrors"
)

var registry map[ID]*Descriptor

func mustHex(s string) *bigint.Integer {
	v, err := bigint.FromHex(s)
	if err != nil {
		panic(err)
	}
	return v
}

func init() {
	secp256k1, err := newShortWeierstrass(
		Secp256k1ID,
		mustHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"),
		bigint.FromInt64(0),
		bigint.FromInt64(7),
		mustHex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"),
		mustHex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"),
		mustHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"),
		bigint.FromInt64(1),
	)
	if err != nil {
		panic(err)
	}

	curve25519, err := newMontgomery(
		Curve25519ID,
		// p = 2^255 - 19
		bigint.One().Lsh(255).Sub(bigint.FromInt64(19)),
		bigint.FromInt64(486662),
		bigint.FromInt64(1),
		bigint.FromInt64(9),
		// y-coordinate of the conventional base point, per RFC 7748 §4.1.
		mustHex("20AE19A1B8A086B4E01EDD2C7748D14C923D4D7E6D7C61B229E9C5A27ECED3D9"),
		// n = 2^252 + 27742317777372353535851937790883648493
		func() *bigint.Integer {
			base := bigint.One().Lsh(252)
			rest := mustHex("14DEF9DEA2F79CD65812631A5CF5D3ED")
			return base.Add(rest)
		}(),
		bigint.FromInt64(8),
	)
	if err != nil {
		panic(err)
	}

	registry = map[ID]*Descriptor{
		Secp256k1ID:  secp256k1,
		Curve25519ID: curve25519,
	}
}

// ByID looks up a registered curve descriptor. Lookup cost does not
// depend on which id is requested, only on the (small, fixed) number of
// registered curves, per spec §4.5.
func ByID(id ID) (*Descriptor, error) {
	const op = "curve.ByID"
	d, ok := registry[id]
	if !ok {
		return nil, eccerrors.New(op, eccerrors.ParseError)
	}
	return d, nil
}

// Secp256k1 returns the secp256k1 short-Weierstrass descriptor.
func Secp256k1() *Descriptor {
	d, _ := ByID(Secp256k1ID)
	return d
}

// Curve25519 returns the Curve25519 Montgomery descriptor.
func Curve25519() *Descriptor {
	d, _ := ByID(Curve25519ID)
	return d
}
