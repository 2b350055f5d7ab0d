// Package libsecp256k1 implements curve.Curve using the cgo bindings to bitcoin-core's
// libsecp256k1.
package libsecp256k1

import (
	"github.com/kaspanet/go-secp256k1"
	"github.com/kaspanet/hdkeychain/curve"
	"github.com/pkg/errors"
)

// Name is the provider name used in configuration.
const Name = "libsecp256k1"

// Curve is the libsecp256k1 provider. The zero value is ready to use.
type Curve struct{}

var _ curve.Curve = Curve{}

// Name returns the provider name.
func (Curve) Name() string {
	return Name
}

// ParsePrivateKey validates a serialized private scalar.
func (Curve) ParsePrivateKey(data []byte) (curve.PrivateKey, error) {
	privateKey, err := secp256k1.DeserializeECDSAPrivateKeyFromSlice(data)
	if err != nil {
		return curve.PrivateKey{}, err
	}

	return serializePrivateKey(privateKey), nil
}

// ParsePublicKey validates a compressed public point.
func (Curve) ParsePublicKey(data []byte) (curve.PublicKey, error) {
	if len(data) != curve.PublicKeySize {
		return curve.PublicKey{}, errors.Errorf("public key must be %d bytes but got %d",
			curve.PublicKeySize, len(data))
	}

	publicKey, err := secp256k1.DeserializeECDSAPubKey(data)
	if err != nil {
		return curve.PublicKey{}, err
	}

	return serializePublicKey(publicKey)
}

// PublicKey returns privateKey*G.
func (Curve) PublicKey(privateKey curve.PrivateKey) (curve.PublicKey, error) {
	parsedPrivateKey, err := secp256k1.DeserializeECDSAPrivateKeyFromSlice(privateKey[:])
	if err != nil {
		return curve.PublicKey{}, err
	}

	publicKey, err := parsedPrivateKey.ECDSAPublicKey()
	if err != nil {
		return curve.PublicKey{}, errors.Wrap(err, "error calculating point")
	}

	return serializePublicKey(publicKey)
}

// AddPrivateKey returns privateKey + tweak mod n. libsecp256k1 rejects a tweak that is not
// below the group order and a zero result.
func (Curve) AddPrivateKey(privateKey curve.PrivateKey, tweak [curve.TweakSize]byte) (curve.PrivateKey, error) {
	parsedPrivateKey, err := secp256k1.DeserializeECDSAPrivateKeyFromSlice(privateKey[:])
	if err != nil {
		return curve.PrivateKey{}, err
	}

	err = parsedPrivateKey.Add(tweak)
	if err != nil {
		return curve.PrivateKey{}, err
	}

	return serializePrivateKey(parsedPrivateKey), nil
}

// AddPublicKey returns publicKey + tweak*G. libsecp256k1 rejects a tweak that is not below
// the group order and the point at infinity.
func (Curve) AddPublicKey(publicKey curve.PublicKey, tweak [curve.TweakSize]byte) (curve.PublicKey, error) {
	parsedPublicKey, err := secp256k1.DeserializeECDSAPubKey(publicKey[:])
	if err != nil {
		return curve.PublicKey{}, err
	}

	err = parsedPublicKey.Add(tweak)
	if err != nil {
		return curve.PublicKey{}, err
	}

	return serializePublicKey(parsedPublicKey)
}

func serializePrivateKey(privateKey *secp256k1.ECDSAPrivateKey) curve.PrivateKey {
	var serialized curve.PrivateKey
	copy(serialized[:], privateKey.Serialize()[:])
	return serialized
}

func serializePublicKey(publicKey *secp256k1.ECDSAPublicKey) (curve.PublicKey, error) {
	serializedPoint, err := publicKey.Serialize()
	if err != nil {
		return curve.PublicKey{}, errors.Wrap(err, "error serializing public key")
	}

	var serialized curve.PublicKey
	copy(serialized[:], serializedPoint[:])
	return serialized, nil
}
