package wif

import "encoding/binary"

// ripemd160 implements the RIPEMD-160 hash (Dobbertin, Bosselaers, Preneel
// 1996), needed by the P2PKH address layout in spec §6
// (RIPEMD160(SHA256(pubkey))). The standard library dropped
// crypto/ripemd160, and no repo in the retrieval pack implements it, so
// this is hand-written directly from the published algorithm rather than
// grounded on a pack example — see DESIGN.md.
const (
	ripemd160BlockSize = 64
	ripemd160Size      = 20
)

var ripemd160MsgOrderLeft = [80]int{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8,
	3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12,
	1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2,
	4, 0, 5, 9, 7, 12, 2, 10, 14, 1, 3, 8, 11, 6, 15, 13,
}

var ripemd160MsgOrderRight = [80]int{
	5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12,
	6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2,
	15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13,
	8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14,
	12, 15, 10, 4, 1, 5, 8, 7, 6, 2, 13, 14, 0, 3, 9, 11,
}

var ripemd160ShiftLeft = [80]uint{
	11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8,
	7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12,
	11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5,
	11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12,
	9, 15, 5, 11, 6, 8, 13, 12, 5, 12, 13, 14, 11, 8, 5, 6,
}

var ripemd160ShiftRight = [80]uint{
	8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6,
	9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11,
	9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5,
	15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8,
	8, 5, 12, 9, 12, 5, 14, 6, 8, 13, 6, 5, 15, 13, 11, 11,
}

var ripemd160RoundConstLeft = [5]uint32{0x00000000, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc, 0xa953fd4e}
var ripemd160RoundConstRight = [5]uint32{0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x7a6d76e9, 0x00000000}

func rol32(x uint32, n uint) uint32 { return (x << n) | (x >> (32 - n)) }

func ripemd160F(j int, x, y, z uint32) uint32 {
	switch {
	case j < 16:
		return x ^ y ^ z
	case j < 32:
		return (x & y) | (^x & z)
	case j < 48:
		return (x | ^y) ^ z
	case j < 64:
		return (x & z) | (y &^ z)
	default:
		return x ^ (y | ^z)
	}
}

// ripemd160Sum returns the RIPEMD-160 digest of msg.
func ripemd160Sum(msg []byte) [ripemd160Size]byte {
	origLen := uint64(len(msg))

	padded := make([]byte, 0, len(msg)+ripemd160BlockSize)
	padded = append(padded, msg...)
	padded = append(padded, 0x80)
	for len(padded)%ripemd160BlockSize != 56 {
		padded = append(padded, 0)
	}
	var lenBytes [8]byte
	binary.LittleEndian.PutUint64(lenBytes[:], origLen*8)
	padded = append(padded, lenBytes[:]...)

	h0, h1, h2, h3, h4 := uint32(0x67452301), uint32(0xEFCDAB89), uint32(0x98BADCFE), uint32(0x10325476), uint32(0xC3D2E1F0)

	var x [16]uint32
	for start := 0; start < len(padded); start += ripemd160BlockSize {
		block := padded[start : start+ripemd160BlockSize]
		for i := 0; i < 16; i++ {
			x[i] = binary.LittleEndian.Uint32(block[i*4:])
		}

		a, b, c, d, e := h0, h1, h2, h3, h4
		ap, bp, cp, dp, ep := h0, h1, h2, h3, h4

		for j := 0; j < 80; j++ {
			t := a + ripemd160F(j, b, c, d) + x[ripemd160MsgOrderLeft[j]] + ripemd160RoundConstLeft[j/16]
			t = rol32(t, ripemd160ShiftLeft[j])
			t += e
			a, e, d, c, b = e, d, rol32(c, 10), b, t

			tp := ap + ripemd160F(79-j, bp, cp, dp) + x[ripemd160MsgOrderRight[j]] + ripemd160RoundConstRight[j/16]
			tp = rol32(tp, ripemd160ShiftRight[j])
			tp += ep
			ap, ep, dp, cp, bp = ep, dp, rol32(cp, 10), bp, tp
		}

		t := h1 + c + dp
		h1 = h2 + d + ep
		h2 = h3 + e + ap
		h3 = h4 + a + bp
		h4 = h0 + b + cp
		h0 = t
	}

	var out [ripemd160Size]byte
	binary.LittleEndian.PutUint32(out[0:4], h0)
	binary.LittleEndian.PutUint32(out[4:8], h1)
	binary.LittleEndian.PutUint32(out[8:12], h2)
	binary.LittleEndian.PutUint32(out[12:16], h3)
	binary.LittleEndian.PutUint32(out[16:20], h4)
	return out
}
