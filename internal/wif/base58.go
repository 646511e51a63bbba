package wif

import "github.com/cryptokernel/ecc/eccerrors"

// base58Alphabet is the Bitcoin Base58 alphabet: digits and letters with
// the visually ambiguous 0, O, I, l removed.
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var base58Decode = func() [256]int8 {
	var table [256]int8
	for i := range table {
		table[i] = -1
	}
	for i, c := range base58Alphabet {
		table[byte(c)] = int8(i)
	}
	return table
}()

// base58Encode encodes b in Bitcoin Base58, preserving leading zero bytes
// as leading '1' characters the way Bitcoin's own encoder does.
func base58Encode(b []byte) string {
	zeros := 0
	for zeros < len(b) && b[zeros] == 0 {
		zeros++
	}

	// A big-endian base-256 to base-58 conversion by repeated division;
	// the output is at most ceil(len(b) * 138/100) + 1 digits, the
	// standard log(256)/log(58) bound.
	input := append([]byte(nil), b...)
	digits := make([]byte, 0, len(b)*2)
	for start := zeros; start < len(input); {
		remainder := 0
		nextStart := len(input)
		for i := start; i < len(input); i++ {
			acc := remainder*256 + int(input[i])
			input[i] = byte(acc / 58)
			remainder = acc % 58
			if input[i] != 0 && nextStart == len(input) {
				nextStart = i
			}
		}
		digits = append(digits, base58Alphabet[remainder])
		start = nextStart
	}

	out := make([]byte, zeros+len(digits))
	for i := 0; i < zeros; i++ {
		out[i] = base58Alphabet[0]
	}
	for i, d := range digits {
		out[len(out)-1-i] = d
	}
	return string(out)
}

// base58DecodeString reverses base58Encode.
func base58DecodeString(s string) ([]byte, error) {
	const op = "wif.base58DecodeString"
	zeros := 0
	for zeros < len(s) && s[zeros] == base58Alphabet[0] {
		zeros++
	}

	digits := make([]byte, 0, len(s))
	for i := zeros; i < len(s); i++ {
		v := base58Decode[s[i]]
		if v < 0 {
			return nil, eccerrors.New(op, eccerrors.ParseError)
		}
		digits = append(digits, byte(v))
	}

	out := make([]byte, 0, len(digits))
	for start := 0; start < len(digits); {
		remainder := 0
		nextStart := len(digits)
		for i := start; i < len(digits); i++ {
			acc := remainder*58 + int(digits[i])
			digits[i] = byte(acc / 256)
			remainder = acc % 256
			if digits[i] != 0 && nextStart == len(digits) {
				nextStart = i
			}
		}
		out = append(out, byte(remainder))
		start = nextStart
	}

	result := make([]byte, zeros+len(out))
	for i, b := range out {
		result[zeros+len(out)-1-i] = b
	}
	return result, nil
}
