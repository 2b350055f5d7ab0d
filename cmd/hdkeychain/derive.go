package main

import (
	"encoding/hex"
	"fmt"

	"github.com/kaspanet/hdkeychain/bip32"
)

func derive(conf *deriveConfig) error {
	masterKey, err := deriveMasterKey(&conf.SeedFlags, &conf.KeyFlags)
	if err != nil {
		return err
	}

	key, derivation, err := bip32.NewDefaultKeyChain(masterKey).DerivePrivateKey(bip32.NewChainPath(conf.Path))
	if err != nil {
		return err
	}
	log.Debugf("Derived %s at depth %d", conf.Path, derivation.Depth)

	fmt.Printf("Path:                 %s\n", conf.Path)
	return printPrivateKey(&conf.KeyFlags, key, derivation, conf.Public)
}

func printPrivateKey(conf *KeyFlags, key bip32.ExtendedPrivKey, derivation bip32.Derivation, publicOnly bool) error {
	header, err := derivation.Header()
	if err != nil {
		return err
	}

	publicKey, err := key.Public()
	if err != nil {
		return err
	}

	if !publicOnly {
		fmt.Printf("Extended private key: %s\n", bip32.EncodeExtendedPrivKey(conf.privateVersion(), header, key))
		fmt.Printf("Serialized private:   %s\n", hex.EncodeToString(key.Serialize()))
	}
	printPublicKey(conf, publicKey, header)
	return nil
}

func printPublicKey(conf *KeyFlags, key bip32.ExtendedPubKey, header bip32.KeyHeader) {
	publicKey, _ := key.PublicKey()
	fingerprint, _ := key.Fingerprint()

	fmt.Printf("Extended public key:  %s\n", bip32.EncodeExtendedPubKey(conf.publicVersion(), header, key))
	fmt.Printf("Serialized public:    %s\n", hex.EncodeToString(key.Serialize()))
	fmt.Printf("Public key:           %x\n", publicKey)
	fmt.Printf("Fingerprint:          %x\n", fingerprint)
	fmt.Printf("Depth:                %d\n", header.Depth)
	fmt.Printf("Child number:         %s\n", childNumberString(header.ChildNumber))
	fmt.Printf("Parent fingerprint:   %x\n", header.ParentFingerprint)
}

func childNumberString(childNumber uint32) string {
	if childNumber >= bip32.HardenedKeyStart {
		return fmt.Sprintf("%d'", childNumber-bip32.HardenedKeyStart)
	}
	return fmt.Sprintf("%d", childNumber)
}
