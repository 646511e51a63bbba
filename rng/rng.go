// Package rng provides the swappable randomness source the rest of the
// kernel draws on for key generation and projective-coordinate
// randomization (spec §4.4, design note §9: "RNG must be swappable in
// test mode with a fixed seed").
//
// CryptoSource generalizes the teacher's GeneratePrivateKey, which calls
// crypto/rand.Read directly (secp256k1.go); DeterministicSource gives
// tests a reproducible replacement without threading a *rand.Rand
// through every call site.
package rng

import (
	"crypto/rand"
	"encoding/binary"
	rand2 "math/rand/v2"

	"github.com/cryptokernel/ecc/eccerrors"
)

// Source produces cryptographically-relevant random bytes on demand.
type Source interface {
	// Bytes returns n freshly drawn random bytes, or an error if the
	// source is exhausted or otherwise fails.
	Bytes(n int) ([]byte, error)
}

// CryptoSource draws from crypto/rand, the default source for any
// production key generation or projective randomization.
type CryptoSource struct{}

// NewCrypto returns the default, crypto/rand-backed Source.
func NewCrypto() CryptoSource { return CryptoSource{} }

// Bytes reads n bytes from crypto/rand.Reader.
func (CryptoSource) Bytes(n int) ([]byte, error) {
	const op = "rng.CryptoSource.Bytes"
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, eccerrors.Wrap(op, eccerrors.RngFailure, err)
	}
	return b, nil
}

// DeterministicSource draws from a seeded math/rand/v2 ChaCha8 stream,
// giving tests and fuzz harnesses a reproducible substitute for
// CryptoSource. It is never appropriate outside tests.
type DeterministicSource struct {
	r *rand2.ChaCha8
}

// NewDeterministic returns a DeterministicSource seeded from seed, a
// convenience that expands a uint64 into a ChaCha8 key so callers don't
// need to hand-construct a [32]byte seed for common test cases.
func NewDeterministic(seed uint64) *DeterministicSource {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[0:8], seed)
	binary.LittleEndian.PutUint64(key[8:16], seed^0x9e3779b97f4a7c15)
	binary.LittleEndian.PutUint64(key[16:24], seed*2654435761)
	binary.LittleEndian.PutUint64(key[24:32], ^seed)
	return &DeterministicSource{r: rand2.NewChaCha8(key)}
}

// Bytes returns n bytes drawn from the deterministic stream.
func (d *DeterministicSource) Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, _ = d.r.Read(b)
	return b, nil
}
