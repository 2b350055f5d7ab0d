package bip32

import (
	"math"

	"github.com/kaspanet/hdkeychain/infrastructure/logger"
	"github.com/pkg/errors"
)

// Derivation records how a key returned by DerivePrivateKey was reached.
type Derivation struct {
	// Depth is the number of derivation steps; 0 for the master key.
	Depth uint8
	// ParentKey is a copy of the key the last step derived from, nil for the master key.
	ParentKey *ExtendedPrivKey
	// KeyIndex is the index of the last step, nil for the master key.
	KeyIndex *KeyIndex
}

// MasterDerivation is the derivation of a master key.
func MasterDerivation() Derivation {
	return Derivation{}
}

// Header returns the BIP-32 header fields recorded by the derivation.
func (d Derivation) Header() (KeyHeader, error) {
	header := KeyHeader{Depth: d.Depth}
	if d.KeyIndex != nil {
		header.ChildNumber = d.KeyIndex.Index()
	}
	if d.ParentKey != nil {
		parentFingerprint, err := d.ParentKey.Fingerprint()
		if err != nil {
			return KeyHeader{}, err
		}
		header.ParentFingerprint = parentFingerprint
	}
	return header, nil
}

// PublicDerivation records how a key returned by DerivePublicKey was reached.
type PublicDerivation struct {
	Depth     uint8
	ParentKey *ExtendedPubKey
	KeyIndex  *KeyIndex
}

// Header returns the BIP-32 header fields recorded by the derivation.
func (d PublicDerivation) Header() (KeyHeader, error) {
	header := KeyHeader{Depth: d.Depth}
	if d.KeyIndex != nil {
		header.ChildNumber = d.KeyIndex.Index()
	}
	if d.ParentKey != nil {
		header.ParentFingerprint = fingerprint(d.ParentKey.publicKey)
	}
	return header, nil
}

// KeyChain derives keys from a master key by chain path.
type KeyChain interface {
	DerivePrivateKey(path ChainPath) (ExtendedPrivKey, Derivation, error)
}

// DefaultKeyChain is a KeyChain over a fixed master key.
type DefaultKeyChain struct {
	masterKey ExtendedPrivKey
}

var _ KeyChain = (*DefaultKeyChain)(nil)

// NewDefaultKeyChain returns a KeyChain rooted at masterKey.
func NewDefaultKeyChain(masterKey ExtendedPrivKey) *DefaultKeyChain {
	return &DefaultKeyChain{masterKey: masterKey}
}

// MasterKey returns the root of the key chain.
func (kc *DefaultKeyChain) MasterKey() ExtendedPrivKey {
	return kc.masterKey
}

// DerivePrivateKey derives the private key at path from the master key.
func (kc *DefaultKeyChain) DerivePrivateKey(path ChainPath) (ExtendedPrivKey, Derivation, error) {
	return DerivePrivateKey(kc.masterKey, path)
}

// DerivePublicKey derives the public key at path from the public half of the master key.
// The path may contain normal indexes only.
func (kc *DefaultKeyChain) DerivePublicKey(path ChainPath) (ExtendedPubKey, PublicDerivation, error) {
	masterPublicKey, err := kc.masterKey.Public()
	if err != nil {
		return ExtendedPubKey{}, PublicDerivation{}, err
	}
	return DerivePublicKey(masterPublicKey, path)
}

// DerivePrivateKey walks path from masterKey, applying DerivePrivateKey once per child
// step. The path must start with the master symbol. The first error, whether from parsing
// or from derivation, aborts the walk and is returned as is.
func DerivePrivateKey(masterKey ExtendedPrivKey, path ChainPath) (ExtendedPrivKey, Derivation, error) {
	onEnd := logger.LogAndMeasureExecutionTime(log, "DerivePrivateKey")
	defer onEnd()

	key := masterKey
	derivation := MasterDerivation()
	err := walkChainPath(path, func(depth uint8, keyIndex KeyIndex) error {
		child, err := key.DerivePrivateKey(keyIndex)
		if err != nil {
			return err
		}

		parent := key
		derivation = Derivation{
			Depth:     depth,
			ParentKey: &parent,
			KeyIndex:  &keyIndex,
		}
		key = child
		return nil
	})
	if err != nil {
		log.Debugf("Failed deriving private key along %q: %s", path, err)
		return ExtendedPrivKey{}, Derivation{}, err
	}

	return key, derivation, nil
}

// DerivePublicKey walks path from masterKey, applying DerivePublicKey once per child
// step. Hardened steps fail with a *KeyIndexOutOfRangeError.
func DerivePublicKey(masterKey ExtendedPubKey, path ChainPath) (ExtendedPubKey, PublicDerivation, error) {
	onEnd := logger.LogAndMeasureExecutionTime(log, "DerivePublicKey")
	defer onEnd()

	key := masterKey
	var derivation PublicDerivation
	err := walkChainPath(path, func(depth uint8, keyIndex KeyIndex) error {
		child, err := key.DerivePublicKey(keyIndex)
		if err != nil {
			return err
		}

		parent := key
		derivation = PublicDerivation{
			Depth:     depth,
			ParentKey: &parent,
			KeyIndex:  &keyIndex,
		}
		key = child
		return nil
	})
	if err != nil {
		log.Debugf("Failed deriving public key along %q: %s", path, err)
		return ExtendedPubKey{}, PublicDerivation{}, err
	}

	return key, derivation, nil
}

// walkChainPath checks that path starts at the root and calls deriveChild for every
// following step, with the depth that step reaches.
func walkChainPath(path ChainPath, deriveChild func(depth uint8, keyIndex KeyIndex) error) error {
	iterator := path.Iter()
	if !iterator.Next() {
		return iterator.Err()
	}
	if first := iterator.SubPath(); !first.IsRoot() {
		return &ChainPathError{
			Segment:  first.String(),
			Position: 0,
			Err:      errors.Wrapf(ErrInvalidPath, "chain path must start with %q", masterSymbol),
		}
	}

	var depth uint8
	for iterator.Next() {
		subPath := iterator.SubPath()
		position := iterator.Position() - 1
		if subPath.IsRoot() {
			return &ChainPathError{
				Segment:  masterSymbol,
				Position: position,
				Err:      errors.Wrapf(ErrInvalidPath, "%q may only start a chain path", masterSymbol),
			}
		}
		if depth == math.MaxUint8 {
			return &ChainPathError{
				Segment:  subPath.String(),
				Position: position,
				Err:      errors.Wrapf(ErrInvalidPath, "chain path is deeper than %d", math.MaxUint8),
			}
		}

		depth++
		log.Tracef("Deriving child %s at depth %d", subPath.KeyIndex, depth)
		err := deriveChild(depth, subPath.KeyIndex)
		if err != nil {
			return err
		}
	}

	return iterator.Err()
}
