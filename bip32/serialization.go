package bip32

import (
	"github.com/kaspanet/hdkeychain/curve"
	"github.com/pkg/errors"
)

const (
	// ExtendedPrivKeySerializationLen is the length of a serialized ExtendedPrivKey:
	// the private key followed by the chain code.
	ExtendedPrivKeySerializationLen = curve.PrivateKeySize + ChainCodeSize

	// ExtendedPubKeySerializationLen is the length of a serialized ExtendedPubKey:
	// the compressed public key followed by the chain code.
	ExtendedPubKeySerializationLen = curve.PublicKeySize + ChainCodeSize
)

// Serialize returns the private key followed by the chain code. The layout carries no
// version or checksum; see EncodeExtendedPrivKey for that.
func (k ExtendedPrivKey) Serialize() []byte {
	serialized := make([]byte, 0, ExtendedPrivKeySerializationLen)
	serialized = append(serialized, k.privateKey[:]...)
	serialized = append(serialized, k.chainCode[:]...)
	return serialized
}

// DeserializeExtendedPrivKey is DeserializeExtendedPrivKeyWithCurve on the default curve.
func DeserializeExtendedPrivKey(serialized []byte) (ExtendedPrivKey, error) {
	return DeserializeExtendedPrivKeyWithCurve(DefaultCurve(), serialized)
}

// DeserializeExtendedPrivKeyWithCurve parses the output of ExtendedPrivKey.Serialize. The
// private key is validated by the curve; any chain code is accepted.
func DeserializeExtendedPrivKeyWithCurve(c curve.Curve, serialized []byte) (ExtendedPrivKey, error) {
	if len(serialized) != ExtendedPrivKeySerializationLen {
		return ExtendedPrivKey{}, errors.Wrapf(ErrInvalidKeyLength, "extended private key must be %d bytes but got %d",
			ExtendedPrivKeySerializationLen, len(serialized))
	}

	c = curveOrDefault(c)
	privateKey, err := c.ParsePrivateKey(serialized[:curve.PrivateKeySize])
	if err != nil {
		return ExtendedPrivKey{}, newCurveError("private key", err)
	}

	extendedPrivKey := ExtendedPrivKey{
		curve:      c,
		privateKey: privateKey,
	}
	copy(extendedPrivKey.chainCode[:], serialized[curve.PrivateKeySize:])
	return extendedPrivKey, nil
}

// Serialize returns the compressed public key followed by the chain code. The layout
// carries no version or checksum; see EncodeExtendedPubKey for that.
func (k ExtendedPubKey) Serialize() []byte {
	serialized := make([]byte, 0, ExtendedPubKeySerializationLen)
	serialized = append(serialized, k.publicKey[:]...)
	serialized = append(serialized, k.chainCode[:]...)
	return serialized
}

// DeserializeExtendedPubKey is DeserializeExtendedPubKeyWithCurve on the default curve.
func DeserializeExtendedPubKey(serialized []byte) (ExtendedPubKey, error) {
	return DeserializeExtendedPubKeyWithCurve(DefaultCurve(), serialized)
}

// DeserializeExtendedPubKeyWithCurve parses the output of ExtendedPubKey.Serialize. The
// public key is validated by the curve; any chain code is accepted.
func DeserializeExtendedPubKeyWithCurve(c curve.Curve, serialized []byte) (ExtendedPubKey, error) {
	if len(serialized) != ExtendedPubKeySerializationLen {
		return ExtendedPubKey{}, errors.Wrapf(ErrInvalidKeyLength, "extended public key must be %d bytes but got %d",
			ExtendedPubKeySerializationLen, len(serialized))
	}

	c = curveOrDefault(c)
	publicKey, err := c.ParsePublicKey(serialized[:curve.PublicKeySize])
	if err != nil {
		return ExtendedPubKey{}, newCurveError("public key", err)
	}

	extendedPubKey := ExtendedPubKey{
		curve:     c,
		publicKey: publicKey,
	}
	copy(extendedPubKey.chainCode[:], serialized[curve.PublicKeySize:])
	return extendedPubKey, nil
}
