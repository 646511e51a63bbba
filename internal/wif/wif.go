// Package wif is a demo external-collaborator codec exercising the
// output formats spec §6 names but explicitly excludes from the core
// kernel: Base58, double-SHA256 checksumming, the WIF envelope, P2PKH
// addresses, and the Zilliqa-style fingerprint. It is internal/ because
// nothing in key, curve, weierstrass, or montgomery imports it — it
// depends on them, never the other way around.
package wif

import (
	"crypto/sha256"

	"github.com/cryptokernel/ecc/eccerrors"
	"github.com/cryptokernel/ecc/key"
)

// Network selects the version byte used in a WIF envelope or address.
type Network struct {
	WIFPrefix     byte
	AddressPrefix byte
}

// Mainnet is Bitcoin mainnet's WIF (0x80) and P2PKH address (0x00) prefixes.
var Mainnet = Network{WIFPrefix: 0x80, AddressPrefix: 0x00}

// Testnet is Bitcoin testnet's WIF (0xEF) and P2PKH address (0x6F) prefixes.
var Testnet = Network{WIFPrefix: 0xEF, AddressPrefix: 0x6F}

func doubleSHA256(b []byte) [32]byte {
	first := sha256.Sum256(b)
	return sha256.Sum256(first[:])
}

// EncodeWIF builds the WIF envelope of spec §6: network.wif_prefix ||
// priv_bytes [|| 0x01 if compressed] || dsha256(prefix||priv[||0x01])[0:4],
// Base58-encoded.
func EncodeWIF(net Network, priv *key.PrivateKey, compressed bool) string {
	payload := make([]byte, 0, 1+len(priv.Bytes())+1)
	payload = append(payload, net.WIFPrefix)
	payload = append(payload, priv.Bytes()...)
	if compressed {
		payload = append(payload, 0x01)
	}
	checksum := doubleSHA256(payload)
	payload = append(payload, checksum[:4]...)
	return base58Encode(payload)
}

// DecodeWIF reverses EncodeWIF, validating the checksum and returning the
// raw private-key bytes and whether the compressed flag byte was present.
func DecodeWIF(net Network, s string) (privBytes []byte, compressed bool, err error) {
	const op = "wif.DecodeWIF"
	raw, err := base58DecodeString(s)
	if err != nil {
		return nil, false, eccerrors.Wrap(op, eccerrors.ParseError, err)
	}
	if len(raw) < 1+32+4 {
		return nil, false, eccerrors.New(op, eccerrors.ParseError)
	}
	if raw[0] != net.WIFPrefix {
		return nil, false, eccerrors.New(op, eccerrors.ParseError)
	}

	payload := raw[:len(raw)-4]
	checksum := raw[len(raw)-4:]
	want := doubleSHA256(payload)
	for i := 0; i < 4; i++ {
		if checksum[i] != want[i] {
			return nil, false, eccerrors.New(op, eccerrors.ParseError)
		}
	}

	body := payload[1:]
	switch len(body) {
	case 32:
		return body, false, nil
	case 33:
		if body[32] != 0x01 {
			return nil, false, eccerrors.New(op, eccerrors.ParseError)
		}
		return body[:32], true, nil
	default:
		return nil, false, eccerrors.New(op, eccerrors.ParseError)
	}
}
