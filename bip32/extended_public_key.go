package bip32

import (
	"fmt"

	"github.com/kaspanet/hdkeychain/curve"
)

// ExtendedPubKey is a public key together with its chain code. It can derive normal
// children only.
type ExtendedPubKey struct {
	curve     curve.Curve
	publicKey curve.PublicKey
	chainCode ChainCode
}

// NewExtendedPubKey returns the public half of privateKey: the point privateKey*G with
// the same chain code.
func NewExtendedPubKey(privateKey ExtendedPrivKey) (ExtendedPubKey, error) {
	publicKey, err := privateKey.PublicKey()
	if err != nil {
		return ExtendedPubKey{}, err
	}

	return ExtendedPubKey{
		curve:     privateKey.Curve(),
		publicKey: publicKey,
		chainCode: privateKey.chainCode,
	}, nil
}

// NewExtendedPubKeyFromParts builds an extended public key from its parts, validating
// the point.
func NewExtendedPubKeyFromParts(c curve.Curve, publicKey curve.PublicKey, chainCode ChainCode) (ExtendedPubKey, error) {
	c = curveOrDefault(c)
	parsedPublicKey, err := c.ParsePublicKey(publicKey[:])
	if err != nil {
		return ExtendedPubKey{}, newCurveError("public key", err)
	}

	return ExtendedPubKey{
		curve:     c,
		publicKey: parsedPublicKey,
		chainCode: chainCode,
	}, nil
}

// Curve returns the curve the key was created on.
func (k ExtendedPubKey) Curve() curve.Curve {
	return curveOrDefault(k.curve)
}

// PublicKey returns the compressed public point.
func (k ExtendedPubKey) PublicKey() (curve.PublicKey, error) {
	return k.publicKey, nil
}

// ChainCode returns the chain code.
func (k ExtendedPubKey) ChainCode() ChainCode {
	return k.chainCode
}

// IsPrivate is always false for an ExtendedPubKey.
func (k ExtendedPubKey) IsPrivate() bool {
	return false
}

// Identifier returns Hash160 of the compressed public key.
func (k ExtendedPubKey) Identifier() ([]byte, error) {
	return identifier(k.publicKey), nil
}

// Fingerprint returns the first four bytes of the identifier.
func (k ExtendedPubKey) Fingerprint() ([4]byte, error) {
	return fingerprint(k.publicKey), nil
}

func (k ExtendedPubKey) String() string {
	return fmt.Sprintf("ExtendedPubKey(%x)", k.publicKey)
}
