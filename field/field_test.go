package field

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptokernel/ecc/bigint"
)

func secp256k1Field(t *testing.T) *Field {
	t.Helper()
	p, err := bigint.FromHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")
	require.NoError(t, err)
	return NewField(p)
}

func curve25519Field(t *testing.T) *Field {
	t.Helper()
	p := bigint.One().Lsh(255).Sub(bigint.FromInt64(19))
	return NewField(p)
}

func TestAddSubMulReduceIntoRange(t *testing.T) {
	f := secp256k1Field(t)
	a := f.Elem(f.P().Sub(bigint.One()))
	b := f.One()

	sum := f.Add(a, b)
	require.True(t, sum.IsZero(), "p-1 + 1 should wrap to 0")

	diff := f.Sub(f.Zero(), b)
	require.False(t, diff.IsZero())
	require.True(t, diff.Int().Sign() >= 0)
	require.True(t, diff.Int().Cmp(f.P()) < 0)
}

func TestInverseIsInvolutionAndMultipliesToOne(t *testing.T) {
	f := secp256k1Field(t)
	x := f.ElemFromInt64(12345)

	inv, err := f.Inverse(x)
	require.NoError(t, err)

	invInv, err := f.Inverse(inv)
	require.NoError(t, err)
	require.True(t, x.Equal(invInv))

	product := f.Mul(x, inv)
	require.True(t, product.Equal(f.One()))
}

func TestInverseOfZeroFails(t *testing.T) {
	f := secp256k1Field(t)
	_, err := f.Inverse(f.Zero())
	require.Error(t, err)
}

func TestDivIsMulByInverse(t *testing.T) {
	f := secp256k1Field(t)
	a := f.ElemFromInt64(10)
	b := f.ElemFromInt64(3)

	quotient, err := f.Div(a, b)
	require.NoError(t, err)

	bInv, err := f.Inverse(b)
	require.NoError(t, err)
	require.True(t, quotient.Equal(f.Mul(a, bInv)))
}

func TestSquareRootsFastPathSecp256k1(t *testing.T) {
	f := secp256k1Field(t)
	x := f.ElemFromInt64(4)

	roots := f.SquareRoots(x)
	require.Len(t, roots, 2)
	for _, r := range roots {
		require.True(t, f.Square(r).Equal(x))
	}
	require.True(t, roots[0].Int().Cmp(roots[1].Int()) <= 0)
}

func TestSquareRootsNonResidueSecp256k1(t *testing.T) {
	f := secp256k1Field(t)
	// 3 is not a QR mod the secp256k1 field prime.
	x := f.ElemFromInt64(3)
	roots := f.SquareRoots(x)
	require.Empty(t, roots)
}

func TestSquareRootsTonelliShanksCurve25519(t *testing.T) {
	f := curve25519Field(t)
	// A known QR: 4 is always a residue.
	x := f.ElemFromInt64(4)
	roots := f.SquareRoots(x)
	require.Len(t, roots, 2)
	for _, r := range roots {
		require.True(t, f.Square(r).Equal(x))
	}
}

func TestSquareRootsOfZero(t *testing.T) {
	f := secp256k1Field(t)
	roots := f.SquareRoots(f.Zero())
	require.Len(t, roots, 2)
	require.True(t, roots[0].IsZero())
	require.True(t, roots[1].IsZero())
}

func TestElementEqualAcrossSameField(t *testing.T) {
	f := secp256k1Field(t)
	a := f.ElemFromInt64(7)
	b := f.ElemFromBytes(a.Bytes())
	require.True(t, a.Equal(b))
}

// FuzzInverseInvolutionAndSquareRootRoundTrip checks the field universal
// laws of spec §8 over arbitrary nonzero inputs: inverse(inverse(x)) = x,
// x * inverse(x) = 1, and every returned square root squares back to its
// input.
func FuzzInverseInvolutionAndSquareRootRoundTrip(f *testing.F) {
	f.Add([]byte{1})
	f.Add([]byte{0xff, 0x00, 0x11})
	f.Add(make([]byte, 32))

	f.Fuzz(func(t *testing.T, raw []byte) {
		fld := secp256k1Field(t)
		x := fld.ElemFromBytes(raw)
		if x.IsZero() {
			t.Skip()
		}

		inv, err := fld.Inverse(x)
		require.NoError(t, err)
		invInv, err := fld.Inverse(inv)
		require.NoError(t, err)
		require.True(t, x.Equal(invInv))
		require.True(t, fld.Mul(x, inv).Equal(fld.One()))

		roots := fld.SquareRoots(x)
		for _, r := range roots {
			require.True(t, fld.Square(r).Equal(x))
		}
	})
}
