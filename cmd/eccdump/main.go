// Command eccdump is a small end-to-end exercise of the kernel: given a
// hex private key and a curve name, it derives the public key and prints
// its serializations, matching spec §8's literal derive/serialize
// scenario. It generalizes the teacher's top-level secp256k1.go, which
// played the same "do everything" role for a single hardcoded curve, and
// follows go-ethereum's convention of thin cmd/* wrappers around library
// packages.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/cryptokernel/ecc/curve"
	"github.com/cryptokernel/ecc/internal/wif"
	"github.com/cryptokernel/ecc/key"
	"github.com/cryptokernel/ecc/rng"
)

func main() {
	privHex := flag.String("priv", "", "hex-encoded private scalar")
	curveName := flag.String("curve", string(curve.Secp256k1ID), "curve id (secp256k1 or curve25519)")
	testnet := flag.Bool("testnet", false, "use testnet WIF/address prefixes (secp256k1 only)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *privHex == "" {
		logger.Error("missing required flag", "flag", "-priv")
		os.Exit(2)
	}

	if err := run(logger, curve.ID(*curveName), *privHex, *testnet); err != nil {
		logger.Error("eccdump failed", "curve", *curveName, "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, curveID curve.ID, privHex string, testnet bool) error {
	const op = "eccdump.run"

	d, err := curve.ByID(curveID)
	if err != nil {
		return fmt.Errorf("%s: unknown curve: %w", op, err)
	}

	priv, err := key.FromHex(d, privHex)
	if err != nil {
		return fmt.Errorf("%s: invalid private key: %w", op, err)
	}
	defer priv.Clear()

	logger.Info("derived private key", "curve", string(curveID))

	src := rng.NewCrypto()
	pub, err := key.Derive(priv, src)
	if err != nil {
		return fmt.Errorf("%s: derive: %w", op, err)
	}

	fmt.Printf("curve:      %s\n", curveID)
	fmt.Printf("compressed: %s\n", hex.EncodeToString(pub.Compressed()))

	switch d.Form {
	case curve.ShortWeierstrass:
		uncompressed, err := pub.Uncompressed()
		if err != nil {
			return fmt.Errorf("%s: uncompressed: %w", op, err)
		}
		fmt.Printf("uncompressed: %s\n", hex.EncodeToString(uncompressed))

		net := wif.Mainnet
		if testnet {
			net = wif.Testnet
		}
		fmt.Printf("wif (uncompressed): %s\n", wif.EncodeWIF(net, priv, false))
		fmt.Printf("wif (compressed):   %s\n", wif.EncodeWIF(net, priv, true))
		fmt.Printf("address:            %s\n", wif.P2PKHAddress(net, pub.Compressed()))
		fmt.Printf("zilliqa fingerprint: %s\n", wif.ZilliqaFingerprint(pub.Compressed()))
	case curve.Montgomery:
		fmt.Printf("public x (u): %s\n", hex.EncodeToString(pub.Compressed()))
	}

	return nil
}
