package main

import "github.com/kaspanet/hdkeychain/bip32"

func master(conf *masterConfig) error {
	masterKey, err := deriveMasterKey(&conf.SeedFlags, &conf.KeyFlags)
	if err != nil {
		return err
	}

	return printPrivateKey(&conf.KeyFlags, masterKey, bip32.MasterDerivation(), false)
}
