package bip32

import (
	"github.com/kaspanet/hdkeychain/curve"
	"github.com/kaspanet/hdkeychain/curve/gosecp256k1"
)

// Domain separation keys for deriving a master key from a seed.
const (
	// EnclaveSeedKey is the key used by NewMaster.
	EnclaveSeedKey = "Enclave seed"

	// BitcoinSeedKey is the key defined by BIP-32. Use it to interoperate with other
	// BIP-32 wallets.
	BitcoinSeedKey = "Bitcoin seed"
)

// ChainCodeSize is the size of a chain code.
const ChainCodeSize = 32

// ChainCode is the extra entropy an extended key carries into child derivation.
type ChainCode [ChainCodeSize]byte

// ExtendedKey is the part shared by extended private and public keys.
type ExtendedKey interface {
	// IsPrivate reports whether the key can derive hardened children.
	IsPrivate() bool
	ChainCode() ChainCode
	PublicKey() (curve.PublicKey, error)
	// Identifier is Hash160 of the compressed public key.
	Identifier() ([]byte, error)
	// Fingerprint is the first four bytes of the identifier.
	Fingerprint() ([4]byte, error)
	// Serialize returns the fixed-layout encoding of the key.
	Serialize() []byte
}

var (
	_ ExtendedKey = ExtendedPrivKey{}
	_ ExtendedKey = ExtendedPubKey{}
)

// DefaultCurve returns the curve used when none is given.
func DefaultCurve() curve.Curve {
	return gosecp256k1.Curve{}
}

func curveOrDefault(c curve.Curve) curve.Curve {
	if c == nil {
		return DefaultCurve()
	}
	return c
}

func identifier(publicKey curve.PublicKey) []byte {
	return hash160(publicKey[:])
}

func fingerprint(publicKey curve.PublicKey) [4]byte {
	var fingerprint [4]byte
	copy(fingerprint[:], identifier(publicKey)[:4])
	return fingerprint
}
