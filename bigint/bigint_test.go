package bigint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromHexAcceptsOptionalPrefix(t *testing.T) {
	a, err := FromHex("0xFF")
	require.NoError(t, err)
	require.Equal(t, "ff", a.HexLower())

	b, err := FromHex("ff")
	require.NoError(t, err)
	require.Equal(t, 0, a.Cmp(b))
}

func TestFromHexRejectsEmptyAndInvalid(t *testing.T) {
	_, err := FromHex("0x")
	require.Error(t, err)

	_, err = FromHex("0xZZ")
	require.Error(t, err)
}

func TestFromDecimalRejectsEmpty(t *testing.T) {
	_, err := FromDecimal("")
	require.Error(t, err)
}

func TestArithmetic(t *testing.T) {
	a := FromInt64(7)
	b := FromInt64(3)

	require.Equal(t, int64(10), a.Add(b).Big().Int64())
	require.Equal(t, int64(4), a.Sub(b).Big().Int64())
	require.Equal(t, int64(21), a.Mul(b).Big().Int64())

	q, err := a.Div(b)
	require.NoError(t, err)
	require.Equal(t, int64(2), q.Big().Int64())
}

func TestDivByZero(t *testing.T) {
	_, err := FromInt64(5).Div(Zero())
	require.Error(t, err)
}

func TestModNormalizesIntoRange(t *testing.T) {
	m := FromInt64(7)
	r, err := FromInt64(-3).Mod(m)
	require.NoError(t, err)
	require.Equal(t, int64(4), r.Big().Int64())
	require.True(t, r.Sign() >= 0)
	require.True(t, r.Cmp(m) < 0)
}

func TestModByZero(t *testing.T) {
	_, err := FromInt64(1).Mod(Zero())
	require.Error(t, err)
}

func TestBitwise(t *testing.T) {
	a := FromInt64(0b1010)
	b := FromInt64(0b0110)
	require.Equal(t, int64(0b0010), a.And(b).Big().Int64())
	require.Equal(t, int64(0b1110), a.Or(b).Big().Int64())
	require.Equal(t, int64(0b1100), a.Xor(b).Big().Int64())
}

func TestShifts(t *testing.T) {
	a := FromInt64(1)
	require.Equal(t, int64(8), a.Lsh(3).Big().Int64())
	require.Equal(t, int64(1), FromInt64(8).Rsh(3).Big().Int64())
}

func TestBitAccessor(t *testing.T) {
	a := FromInt64(0b1010)
	require.False(t, a.Bit(0))
	require.True(t, a.Bit(1))
	require.False(t, a.Bit(2))
	require.True(t, a.Bit(3))
	require.Equal(t, 4, a.BitLen())
}

func TestPow(t *testing.T) {
	r, err := Pow(FromInt64(2), FromInt64(10), FromInt64(1000))
	require.NoError(t, err)
	require.Equal(t, int64(24), r.Big().Int64())
}

func TestPowNegativeExponentRejected(t *testing.T) {
	_, err := Pow(FromInt64(2), FromInt64(-1), FromInt64(1000))
	require.Error(t, err)
}

func TestHexPadded(t *testing.T) {
	a := FromInt64(0xAB)
	require.Equal(t, "00000000000000000000000000000000000000000000000000000000000000ab", a.HexPadded(64))
}

func TestFillBytesRoundTrip(t *testing.T) {
	orig := []byte{0x01, 0x02, 0x03}
	a := FromBytes(orig)
	padded := a.FillBytes(32)
	require.Len(t, padded, 32)
	require.Equal(t, orig, padded[29:])
}
