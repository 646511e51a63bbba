// Package bigint implements the arbitrary-precision signed integer
// substrate (C1) the rest of the kernel builds on: prime-field
// arithmetic, curve coordinates, and scalars are all ultimately backed
// by Integer. Rather than hand-rolling a limb library, Integer wraps
// math/big.Int, per design note §9 ("a dedicated big-integer module is
// an implementation concern... use any mature implementation") — see
// DESIGN.md for why no third-party bigint library from the retrieval
// pack improves on the standard library here.
package bigint

import (
	"encoding/binary"
	"strings"

	"math/big"

	"github.com/cryptokernel/ecc/eccerrors"
)

// Integer is an arbitrary-precision signed integer.
type Integer struct {
	v *big.Int
}

func wrap(v *big.Int) *Integer { return &Integer{v: v} }

// Zero returns the integer 0.
func Zero() *Integer { return wrap(new(big.Int)) }

// One returns the integer 1.
func One() *Integer { return wrap(big.NewInt(1)) }

// FromInt64 constructs an Integer from a native int64.
func FromInt64(v int64) *Integer { return wrap(big.NewInt(v)) }

// FromBytes constructs a non-negative Integer from raw big-endian bytes.
func FromBytes(b []byte) *Integer { return wrap(new(big.Int).SetBytes(b)) }

// FromHex parses a hex string, with an optional "0x"/"0X" prefix. The
// input must be non-empty and contain only hex digits after the prefix
// is stripped.
func FromHex(s string) (*Integer, error) {
	const op = "bigint.FromHex"
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if trimmed == "" || trimmed[0] == '+' || trimmed[0] == '-' {
		return nil, eccerrors.New(op, eccerrors.ParseError)
	}
	v, ok := new(big.Int).SetString(trimmed, 16)
	if !ok {
		return nil, eccerrors.New(op, eccerrors.ParseError)
	}
	return wrap(v), nil
}

// FromDecimal parses a base-10 string.
func FromDecimal(s string) (*Integer, error) {
	const op = "bigint.FromDecimal"
	if s == "" {
		return nil, eccerrors.New(op, eccerrors.ParseError)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, eccerrors.New(op, eccerrors.ParseError)
	}
	return wrap(v), nil
}

// FromWords constructs an Integer from little-endian 32-bit words with an
// explicit sign (negative = true for a negative value).
func FromWords(words []uint32, negative bool) *Integer {
	b := make([]byte, len(words)*4)
	for i, w := range words {
		binary.BigEndian.PutUint32(b[len(b)-4*(i+1):len(b)-4*i], w)
	}
	v := new(big.Int).SetBytes(b)
	if negative {
		v.Neg(v)
	}
	return wrap(v)
}

// Clone returns an independent copy of x.
func (x *Integer) Clone() *Integer { return wrap(new(big.Int).Set(x.v)) }

// Sign returns -1, 0 or 1.
func (x *Integer) Sign() int { return x.v.Sign() }

// IsZero reports whether x is zero.
func (x *Integer) IsZero() bool { return x.v.Sign() == 0 }

// Cmp compares x and y.
func (x *Integer) Cmp(y *Integer) int { return x.v.Cmp(y.v) }

// Add returns x + y.
func (x *Integer) Add(y *Integer) *Integer { return wrap(new(big.Int).Add(x.v, y.v)) }

// Sub returns x - y.
func (x *Integer) Sub(y *Integer) *Integer { return wrap(new(big.Int).Sub(x.v, y.v)) }

// Mul returns x * y.
func (x *Integer) Mul(y *Integer) *Integer { return wrap(new(big.Int).Mul(x.v, y.v)) }

// Div returns the truncated quotient x / y.
func (x *Integer) Div(y *Integer) (*Integer, error) {
	const op = "bigint.Div"
	if y.IsZero() {
		return nil, eccerrors.WithReason(op, eccerrors.ArithmeticError, eccerrors.DivByZero)
	}
	return wrap(new(big.Int).Quo(x.v, y.v)), nil
}

// Mod returns x mod m, normalized into [0, m) for m > 0.
func (x *Integer) Mod(m *Integer) (*Integer, error) {
	const op = "bigint.Mod"
	if m.IsZero() {
		return nil, eccerrors.WithReason(op, eccerrors.ArithmeticError, eccerrors.DivByZero)
	}
	r := new(big.Int).Mod(x.v, m.v)
	return wrap(r), nil
}

// Neg returns -x.
func (x *Integer) Neg() *Integer { return wrap(new(big.Int).Neg(x.v)) }

// Abs returns |x|.
func (x *Integer) Abs() *Integer { return wrap(new(big.Int).Abs(x.v)) }

// And returns x AND y (two's-complement semantics of math/big).
func (x *Integer) And(y *Integer) *Integer { return wrap(new(big.Int).And(x.v, y.v)) }

// Or returns x OR y.
func (x *Integer) Or(y *Integer) *Integer { return wrap(new(big.Int).Or(x.v, y.v)) }

// Xor returns x XOR y.
func (x *Integer) Xor(y *Integer) *Integer { return wrap(new(big.Int).Xor(x.v, y.v)) }

// Not returns the bitwise complement of x.
func (x *Integer) Not() *Integer { return wrap(new(big.Int).Not(x.v)) }

// Lsh returns x << n.
func (x *Integer) Lsh(n uint) *Integer { return wrap(new(big.Int).Lsh(x.v, n)) }

// Rsh returns x >> n (arithmetic shift, matching math/big).
func (x *Integer) Rsh(n uint) *Integer { return wrap(new(big.Int).Rsh(x.v, n)) }

// Bit reports whether the bit at the given index of x is set (negative
// values use math/big's two's-complement view), constant in the sense
// that it performs no
// data-dependent branching beyond math/big's own indexing.
func (x *Integer) Bit(i int) bool { return x.v.Bit(i) == 1 }

// BitLen returns the bit width of the magnitude of x.
func (x *Integer) BitLen() int { return x.v.BitLen() }

// Pow returns base^exp mod m using math/big's fixed-window modular
// exponentiation. exp must be non-negative.
func Pow(base, exp, m *Integer) (*Integer, error) {
	const op = "bigint.Pow"
	if exp.Sign() < 0 {
		return nil, eccerrors.New(op, eccerrors.ArithmeticError)
	}
	return wrap(new(big.Int).Exp(base.v, exp.v, m.v)), nil
}

// HexUpper returns the upper-case hex encoding of the magnitude of x,
// with no padding.
func (x *Integer) HexUpper() string { return strings.ToUpper(x.HexLower()) }

// HexLower returns the lower-case hex encoding of the magnitude of x,
// with no padding.
func (x *Integer) HexLower() string { return new(big.Int).Abs(x.v).Text(16) }

// HexPadded returns the lower-case hex encoding of the magnitude of x,
// zero-padded on the left to width hex characters (64 for a 256-bit
// scalar).
func (x *Integer) HexPadded(width int) string {
	s := x.HexLower()
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// Decimal returns the base-10 encoding of x, including a leading '-' for
// negative values.
func (x *Integer) Decimal() string { return x.v.String() }

// Bytes returns the magnitude of x as big-endian bytes with no sign and
// no padding (empty slice for zero).
func (x *Integer) Bytes() []byte { return x.v.Bytes() }

// FillBytes returns the magnitude of x as big-endian bytes, left-padded
// with zeros to exactly n bytes. It panics, as math/big does, if the
// magnitude does not fit in n bytes.
func (x *Integer) FillBytes(n int) []byte {
	buf := make([]byte, n)
	x.v.FillBytes(buf)
	return buf
}

// Big returns the underlying *big.Int. The returned value must not be
// mutated by callers; it is exposed for interop with stdlib crypto APIs.
func (x *Integer) Big() *big.Int { return x.v }
