package weierstrass

import (
	"testing"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"

	"github.com/cryptokernel/ecc/bigint"
	"github.com/cryptokernel/ecc/curve"
)

// decredXY splits an uncompressed secp256k1/v4 public key (0x04 || X || Y)
// into its 32-byte X and Y halves.
func decredXY(t *testing.T, pub *secp256k1.PublicKey) (x, y []byte) {
	t.Helper()
	raw := pub.SerializeUncompressed()
	require.Len(t, raw, 65)
	require.Equal(t, byte(0x04), raw[0])
	return raw[1:33], raw[33:65]
}

// TestScalarMultMatchesDecredSecp256k1 cross-checks this kernel's affine
// scalar multiplication against github.com/decred/dcrd/dcrec/secp256k1/v4,
// an independently audited secp256k1 implementation, for a handful of
// scalars including the literal spec vector.
func TestScalarMultMatchesDecredSecp256k1(t *testing.T) {
	d := curve.Secp256k1()

	for _, k := range []int64{1, 2, 3, 12345, 0x7fffffff} {
		scalar := bigint.FromInt64(k)
		got := ScalarMultAffine(d, scalar, d.G)

		priv := secp256k1.PrivKeyFromBytes(scalar.FillBytes(32))
		wantX, wantY := decredXY(t, priv.PubKey())

		require.Equal(t, wantX, got.X.FillBytes(32), "scalar=%d", k)
		require.Equal(t, wantY, got.Y.FillBytes(32), "scalar=%d", k)
	}
}

func TestScalarMultMatchesDecredSecp256k1SpecVector(t *testing.T) {
	d := curve.Secp256k1()
	scalar, err := bigint.FromHex("29EE955FEDA1A85F87ED4004958479706BA6C71FC99A67697A9A13D9D08C618E")
	require.NoError(t, err)

	got := ScalarMultAffine(d, scalar, d.G)

	priv := secp256k1.PrivKeyFromBytes(scalar.FillBytes(32))
	wantX, wantY := decredXY(t, priv.PubKey())

	require.Equal(t, wantX, got.X.FillBytes(32))
	require.Equal(t, wantY, got.Y.FillBytes(32))
}
