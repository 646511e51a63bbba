package curve

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptokernel/ecc/bigint"
	"github.com/cryptokernel/ecc/eccerrors"
	"github.com/cryptokernel/ecc/point"
)

func TestByIDResolvesRegisteredCurves(t *testing.T) {
	secp, err := ByID(Secp256k1ID)
	require.NoError(t, err)
	require.Equal(t, Secp256k1ID, secp.ID)
	require.Equal(t, ShortWeierstrass, secp.Form)

	curve25519, err := ByID(Curve25519ID)
	require.NoError(t, err)
	require.Equal(t, Curve25519ID, curve25519.ID)
	require.Equal(t, Montgomery, curve25519.Form)
}

func TestByIDRejectsUnknownID(t *testing.T) {
	_, err := ByID(ID("nonesuch"))
	require.Error(t, err)
	require.True(t, errors.Is(err, eccerrors.KindOf(eccerrors.ParseError)))
}

func TestSecp256k1AndCurve25519HelpersMatchRegistry(t *testing.T) {
	viaID, err := ByID(Secp256k1ID)
	require.NoError(t, err)
	require.Same(t, viaID, Secp256k1())

	viaID25519, err := ByID(Curve25519ID)
	require.NoError(t, err)
	require.Same(t, viaID25519, Curve25519())
}

func TestSecp256k1GeneratorIsOnCurve(t *testing.T) {
	d := Secp256k1()
	require.True(t, d.IsOnCurve(d.G))
}

func TestCurve25519GeneratorIsOnCurve(t *testing.T) {
	d := Curve25519()
	require.True(t, d.IsOnCurve(d.G))
}

func TestCurve25519A24IsAPlus2Over4(t *testing.T) {
	d := Curve25519()
	four := d.Field.ElemFromInt64(4)
	got := d.Field.Mul(d.A24, four)
	want := d.Field.Add(d.A, d.Field.ElemFromInt64(2))
	require.True(t, got.Equal(want))
}

func TestNewShortWeierstrassRejectsSingularCurve(t *testing.T) {
	// a = 0, b = 0 makes 4a^3 + 27b^2 = 0, the singular case spec §3
	// forbids.
	p := mustHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")
	_, err := newShortWeierstrass(
		Secp256k1ID,
		p,
		bigint.FromInt64(0),
		bigint.FromInt64(0),
		bigint.FromInt64(1),
		bigint.FromInt64(1),
		bigint.FromInt64(1),
		bigint.FromInt64(1),
	)
	require.Error(t, err)
	require.True(t, errors.Is(err, eccerrors.KindOf(eccerrors.CurveInvariantError)))
}

func TestNewMontgomeryRejectsSingularCurve(t *testing.T) {
	// b = 0 makes b(a^2 - 4) = 0 regardless of a, the singular case spec
	// §3 forbids.
	p := bigint.One().Lsh(255).Sub(bigint.FromInt64(19))
	_, err := newMontgomery(
		Curve25519ID,
		p,
		bigint.FromInt64(486662),
		bigint.FromInt64(0),
		bigint.FromInt64(9),
		bigint.FromInt64(1),
		bigint.FromInt64(1),
		bigint.FromInt64(1),
	)
	require.Error(t, err)
	require.True(t, errors.Is(err, eccerrors.KindOf(eccerrors.CurveInvariantError)))
}

func TestNewMontgomeryRejectsAEqualsTwo(t *testing.T) {
	// a = 2 makes a^2 - 4 = 0, the other way b(a^2 - 4) can vanish.
	p := bigint.One().Lsh(255).Sub(bigint.FromInt64(19))
	_, err := newMontgomery(
		Curve25519ID,
		p,
		bigint.FromInt64(2),
		bigint.FromInt64(1),
		bigint.FromInt64(9),
		bigint.FromInt64(1),
		bigint.FromInt64(1),
		bigint.FromInt64(1),
	)
	require.Error(t, err)
	require.True(t, errors.Is(err, eccerrors.KindOf(eccerrors.CurveInvariantError)))
}

func TestEvalShortWeierstrassRHSMatchesGeneratorYSquared(t *testing.T) {
	d := Secp256k1()
	rhs := d.EvalShortWeierstrassRHS(d.G.X)
	require.True(t, d.Field.Square(d.G.Y).Equal(rhs))
}

func TestIsOnCurveRejectsOffCurvePoint(t *testing.T) {
	d := Secp256k1()
	off := d.Field.Add(d.G.Y, d.Field.One())
	require.False(t, d.IsOnCurve(point.NewAffine(d.G.X, off)))
}
