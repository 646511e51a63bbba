package kdf

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptokernel/ecc/curve"
	"github.com/cryptokernel/ecc/key"
	"github.com/cryptokernel/ecc/rng"
)

func TestSharedSecretIsSymmetricShortWeierstrass(t *testing.T) {
	d := curve.Secp256k1()
	alice, err := key.Generate(d, rng.NewDeterministic(1))
	require.NoError(t, err)
	bob, err := key.Generate(d, rng.NewDeterministic(2))
	require.NoError(t, err)

	alicePub, err := key.Derive(alice, rng.NewDeterministic(3))
	require.NoError(t, err)
	bobPub, err := key.Derive(bob, rng.NewDeterministic(4))
	require.NoError(t, err)

	s1, err := SharedSecret(alice, bobPub, rng.NewDeterministic(5))
	require.NoError(t, err)
	s2, err := SharedSecret(bob, alicePub, rng.NewDeterministic(6))
	require.NoError(t, err)

	require.Equal(t, s1, s2)
	require.Len(t, s1, 32)
}

func TestSharedSecretIsSymmetricMontgomery(t *testing.T) {
	d := curve.Curve25519()
	alice, err := key.Generate(d, rng.NewDeterministic(7))
	require.NoError(t, err)
	bob, err := key.Generate(d, rng.NewDeterministic(8))
	require.NoError(t, err)

	alicePub, err := key.Derive(alice, rng.NewDeterministic(9))
	require.NoError(t, err)
	bobPub, err := key.Derive(bob, rng.NewDeterministic(10))
	require.NoError(t, err)

	s1, err := SharedSecret(alice, bobPub, rng.NewDeterministic(11))
	require.NoError(t, err)
	s2, err := SharedSecret(bob, alicePub, rng.NewDeterministic(12))
	require.NoError(t, err)

	require.Equal(t, s1, s2)
	require.Len(t, s1, 32)
}

func TestSharedSecretRejectsCrossCurvePeers(t *testing.T) {
	secp := curve.Secp256k1()
	mont := curve.Curve25519()

	alice, err := key.Generate(secp, rng.NewDeterministic(13))
	require.NoError(t, err)
	bob, err := key.Generate(mont, rng.NewDeterministic(14))
	require.NoError(t, err)
	bobPub, err := key.Derive(bob, rng.NewDeterministic(15))
	require.NoError(t, err)

	_, err = SharedSecret(alice, bobPub, rng.NewDeterministic(16))
	require.Error(t, err)
}
