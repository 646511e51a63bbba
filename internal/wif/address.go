package wif

import (
	"crypto/sha256"
	"fmt"
)

// P2PKHAddress builds the Base58Check address of spec §6:
// RIPEMD160(SHA256(pubkey_bytes)) prefixed by the network's address byte,
// double-SHA256 checksummed, Base58-encoded.
func P2PKHAddress(net Network, pubkeyBytes []byte) string {
	shaHash := sha256.Sum256(pubkeyBytes)
	ripe := ripemd160Sum(shaHash[:])

	payload := make([]byte, 0, 1+ripemd160Size+4)
	payload = append(payload, net.AddressPrefix)
	payload = append(payload, ripe[:]...)
	checksum := doubleSHA256(payload)
	payload = append(payload, checksum[:4]...)
	return base58Encode(payload)
}

// ZilliqaFingerprint returns the last 20 bytes of SHA256(pubkey_bytes) as
// uppercase hex, per spec §6.
func ZilliqaFingerprint(pubkeyBytes []byte) string {
	hash := sha256.Sum256(pubkeyBytes)
	tail := hash[len(hash)-20:]
	return fmt.Sprintf("%X", tail)
}
