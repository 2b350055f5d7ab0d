package main

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/kaspanet/hdkeychain/bip32"
	"github.com/kaspanet/hdkeychain/curve/gosecp256k1"
	"github.com/tyler-smith/go-bip39"
)

// The mnemonic of the all-zero 128-bit entropy, from the BIP-39 test vectors.
const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestReadSeed(t *testing.T) {
	seed, err := readSeed(&SeedFlags{Seed: "000102030405060708090a0b0c0d0e0f"})
	if err != nil {
		t.Fatalf("readSeed: %+v", err)
	}
	if hex.EncodeToString(seed) != "000102030405060708090a0b0c0d0e0f" {
		t.Fatalf("Unexpected seed %x", seed)
	}

	seed, err = readSeed(&SeedFlags{Mnemonic: "  abandon abandon abandon abandon abandon abandon\tabandon abandon abandon abandon abandon about "})
	if err != nil {
		t.Fatalf("readSeed: %+v", err)
	}
	if !bytes.Equal(seed, bip39.NewSeed(testMnemonic, "")) {
		t.Fatalf("Unexpected seed %x", seed)
	}

	seedWithPassphrase, err := readSeed(&SeedFlags{Mnemonic: testMnemonic, Passphrase: "TREZOR"})
	if err != nil {
		t.Fatalf("readSeed: %+v", err)
	}
	if bytes.Equal(seed, seedWithPassphrase) {
		t.Fatalf("The passphrase should change the seed")
	}

	badInputs := []*SeedFlags{
		{Seed: "xyz"},
		{Seed: "00", Mnemonic: testMnemonic},
		{Mnemonic: "abandon abandon abandon"},
	}
	for _, conf := range badInputs {
		_, err := readSeed(conf)
		if err == nil {
			t.Fatalf("readSeed(%+v): expected an error", conf)
		}
	}
}

func TestDeriveMasterKey(t *testing.T) {
	seedConf := &SeedFlags{Seed: "000102030405060708090a0b0c0d0e0f", SeedKey: bitcoinSeedKeyName}
	keyConf := &KeyFlags{Curve: gosecp256k1.Name}

	masterKey, err := deriveMasterKey(seedConf, keyConf)
	if err != nil {
		t.Fatalf("deriveMasterKey: %+v", err)
	}

	encoded := bip32.EncodeExtendedPrivKey(keyConf.privateVersion(), bip32.KeyHeader{}, masterKey)
	expected := "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi"
	if encoded != expected {
		t.Fatalf("Expected %s but got %s", expected, encoded)
	}

	seedConf.SeedKey = enclaveSeedKeyName
	enclaveMasterKey, err := deriveMasterKey(seedConf, keyConf)
	if err != nil {
		t.Fatalf("deriveMasterKey: %+v", err)
	}
	if enclaveMasterKey == masterKey {
		t.Fatalf("Different seed keys should give different master keys")
	}

	_, err = deriveMasterKey(seedConf, &KeyFlags{Curve: "unknown"})
	if err == nil {
		t.Fatalf("Expected an error for an unknown curve")
	}
}

func TestParsePublicKey(t *testing.T) {
	c := gosecp256k1.Curve{}
	const xpub = "xpub6DxSCdWu6jKqr4isjo7bsPeDD6s3J4YVQV1JSHZg12Eagdqnf7XX4fxqyW2sLhUoFWutL7tAELU2LiGZrEXtjVbvYptvTX5Eoa4Mamdjm9u"

	key, header, err := parsePublicKey(c, xpub)
	if err != nil {
		t.Fatalf("parsePublicKey: %+v", err)
	}
	if header.Depth != 4 {
		t.Fatalf("Expected depth 4 but got %d", header.Depth)
	}

	fromHex, hexHeader, err := parsePublicKey(c, hex.EncodeToString(key.Serialize()))
	if err != nil {
		t.Fatalf("parsePublicKey: %+v", err)
	}
	if fromHex != key || hexHeader != (bip32.KeyHeader{}) {
		t.Fatalf("Parsing the serialized key gave a different key")
	}

	_, _, err = parsePublicKey(c, "not a key")
	if err == nil {
		t.Fatalf("Expected an error for an invalid key")
	}
}

func TestChildNumberString(t *testing.T) {
	if childNumberString(7) != "7" {
		t.Fatalf("Unexpected child number %s", childNumberString(7))
	}
	if childNumberString(bip32.HardenedKeyStart+7) != "7'" {
		t.Fatalf("Unexpected child number %s", childNumberString(bip32.HardenedKeyStart+7))
	}
}
