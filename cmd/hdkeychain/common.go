package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/kaspanet/hdkeychain/bip32"
	"github.com/kaspanet/hdkeychain/infrastructure/logger"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/term"
)

func printErrorAndExit(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	logger.BackendLog.Close()
	os.Exit(1)
}

// deriveMasterKey derives the master key selected by the seed and key flags.
func deriveMasterKey(seedConf *SeedFlags, keyConf *KeyFlags) (bip32.ExtendedPrivKey, error) {
	seed, err := readSeed(seedConf)
	if err != nil {
		return bip32.ExtendedPrivKey{}, err
	}

	seedKey, err := seedConf.seedKey()
	if err != nil {
		return bip32.ExtendedPrivKey{}, err
	}

	c, err := keyConf.selectedCurve()
	if err != nil {
		return bip32.ExtendedPrivKey{}, err
	}

	log.Debugf("Deriving the master key on curve %s with seed key %s", c.Name(), seedConf.SeedKey)
	return bip32.NewMasterWithCurve(c, seedKey, seed)
}

// readSeed returns the seed given by --seed or --mnemonic, or asks for one on the
// terminal when neither is set.
func readSeed(conf *SeedFlags) ([]byte, error) {
	if conf.Seed != "" && conf.Mnemonic != "" {
		return nil, errors.New("--seed and --mnemonic cannot be used together")
	}

	if conf.Seed != "" {
		return decodeSeed(conf.Seed)
	}
	if conf.Mnemonic != "" {
		return seedFromMnemonic(conf.Mnemonic, conf.Passphrase)
	}

	input, err := getSecret("Enter a mnemonic or a seed (encoded in hex): ")
	if err != nil {
		return nil, err
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, errors.New("no seed was given")
	}

	if seed, err := hex.DecodeString(input); err == nil {
		log.Debugf("Read a %d byte seed from the terminal", len(seed))
		return seed, nil
	}
	return seedFromMnemonic(input, conf.Passphrase)
}

func decodeSeed(seedHex string) ([]byte, error) {
	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		return nil, errors.Wrap(err, "seed must be encoded in hex")
	}
	if len(seed) == 0 {
		return nil, errors.New("seed is empty")
	}
	return seed, nil
}

func seedFromMnemonic(mnemonic string, passphrase string) ([]byte, error) {
	seed, err := bip39.NewSeedWithErrorChecking(strings.Join(strings.Fields(mnemonic), " "), passphrase)
	if err != nil {
		return nil, errors.Wrap(err, "invalid mnemonic")
	}
	return seed, nil
}

// getSecret reads a line from the terminal without echoing it. The terminal state is
// restored if the process is interrupted while reading.
func getSecret(prompt string) (string, error) {
	stdin := int(syscall.Stdin)
	if !term.IsTerminal(stdin) {
		return "", errors.New("no seed was given and stdin is not a terminal")
	}

	initialTermState, err := term.GetState(stdin)
	if err != nil {
		return "", err
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	defer func() {
		signal.Stop(interrupt)
		close(done)
	}()
	go func() {
		select {
		case <-interrupt:
			_ = term.Restore(stdin, initialTermState)
			os.Exit(1)
		case <-done:
		}
	}()

	fmt.Fprint(os.Stderr, prompt)
	secret, err := term.ReadPassword(stdin)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(secret), nil
}
