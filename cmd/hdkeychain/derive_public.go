package main

import (
	"encoding/hex"
	"fmt"
	"math"

	"github.com/kaspanet/hdkeychain/bip32"
	"github.com/kaspanet/hdkeychain/curve"
	"github.com/pkg/errors"
)

func derivePublic(conf *derivePublicConfig) error {
	c, err := conf.selectedCurve()
	if err != nil {
		return err
	}

	parentKey, parentHeader, err := parsePublicKey(c, conf.Key)
	if err != nil {
		return err
	}

	key, derivation, err := bip32.DerivePublicKey(parentKey, bip32.NewChainPath(conf.Path))
	if err != nil {
		return err
	}

	header := parentHeader
	if derivation.Depth > 0 {
		header, err = derivation.Header()
		if err != nil {
			return err
		}
		if int(parentHeader.Depth)+int(derivation.Depth) > math.MaxUint8 {
			return errors.Errorf("%s is deeper than %d below a key at depth %d",
				conf.Path, math.MaxUint8, parentHeader.Depth)
		}
		header.Depth += parentHeader.Depth
	}
	log.Debugf("Derived %s at depth %d", conf.Path, header.Depth)

	fmt.Printf("Path:                 %s\n", conf.Path)
	printPublicKey(&conf.KeyFlags, key, header)
	return nil
}

// parsePublicKey accepts an encoded extended key, private or public, or the hex of a
// serialized extended public key. The latter carries no header, so it is treated as a
// master key.
func parsePublicKey(c curve.Curve, encoded string) (bip32.ExtendedPubKey, bip32.KeyHeader, error) {
	decoded, decodeErr := bip32.DecodeExtendedKeyWithCurve(c, encoded)
	if decodeErr == nil {
		return decoded.PublicKey, decoded.KeyHeader, nil
	}

	serialized, err := hex.DecodeString(encoded)
	if err != nil {
		return bip32.ExtendedPubKey{}, bip32.KeyHeader{}, errors.Wrap(decodeErr, "invalid extended key")
	}
	key, err := bip32.DeserializeExtendedPubKeyWithCurve(c, serialized)
	if err != nil {
		return bip32.ExtendedPubKey{}, bip32.KeyHeader{}, err
	}
	return key, bip32.KeyHeader{}, nil
}
