package main

import (
	"fmt"

	"github.com/kaspanet/hdkeychain/bip32"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
)

func generate(conf *generateConfig) error {
	if conf.Raw {
		seed, err := bip32.GenerateSeed()
		if err != nil {
			return err
		}
		fmt.Printf("Seed:\n%x\n", seed)
		return nil
	}

	entropy, err := bip39.NewEntropy(conf.EntropyBits)
	if err != nil {
		return errors.Wrapf(err, "cannot generate %d bits of entropy", conf.EntropyBits)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return err
	}
	log.Debugf("Generated a mnemonic from %d bits of entropy", conf.EntropyBits)

	seed := bip39.NewSeed(mnemonic, conf.Passphrase)
	fmt.Printf("Mnemonic:\n%s\n\nSeed:\n%x\n", mnemonic, seed)
	return nil
}
