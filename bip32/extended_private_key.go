package bip32

import (
	"fmt"

	"github.com/kaspanet/hdkeychain/curve"
)

// ExtendedPrivKey is a private key together with its chain code. It is an immutable value:
// deriving a child never changes the parent, and copies share nothing.
type ExtendedPrivKey struct {
	curve      curve.Curve
	privateKey curve.PrivateKey
	chainCode  ChainCode
}

// NewMaster derives a master key from seed on the default curve, using EnclaveSeedKey as
// the HMAC key.
func NewMaster(seed []byte) (ExtendedPrivKey, error) {
	return NewMasterWithCurve(DefaultCurve(), []byte(EnclaveSeedKey), seed)
}

// NewMasterWithCurve derives a master key from seed: the left half of
// HMAC-SHA512(seedKey, seed) is the private key and the right half is the chain code.
// It fails if the left half is not a valid private key.
func NewMasterWithCurve(c curve.Curve, seedKey []byte, seed []byte) (ExtendedPrivKey, error) {
	c = curveOrDefault(c)

	mac := newHMACWriter(seedKey)
	mac.InfallibleWrite(seed)
	iL, iR := splitI(mac.Sum(nil))

	privateKey, err := c.ParsePrivateKey(iL[:])
	if err != nil {
		return ExtendedPrivKey{}, newCurveError("master key", err)
	}

	return ExtendedPrivKey{
		curve:      c,
		privateKey: privateKey,
		chainCode:  iR,
	}, nil
}

// NewExtendedPrivKey builds an extended private key from its parts, validating the
// private key.
func NewExtendedPrivKey(c curve.Curve, privateKey curve.PrivateKey, chainCode ChainCode) (ExtendedPrivKey, error) {
	c = curveOrDefault(c)
	parsedPrivateKey, err := c.ParsePrivateKey(privateKey[:])
	if err != nil {
		return ExtendedPrivKey{}, newCurveError("private key", err)
	}

	return ExtendedPrivKey{
		curve:      c,
		privateKey: parsedPrivateKey,
		chainCode:  chainCode,
	}, nil
}

// Curve returns the curve the key was created on.
func (k ExtendedPrivKey) Curve() curve.Curve {
	return curveOrDefault(k.curve)
}

// PrivateKey returns the private scalar.
func (k ExtendedPrivKey) PrivateKey() curve.PrivateKey {
	return k.privateKey
}

// ChainCode returns the chain code.
func (k ExtendedPrivKey) ChainCode() ChainCode {
	return k.chainCode
}

// IsPrivate is always true for an ExtendedPrivKey.
func (k ExtendedPrivKey) IsPrivate() bool {
	return true
}

// PublicKey returns the compressed public point of the key.
func (k ExtendedPrivKey) PublicKey() (curve.PublicKey, error) {
	publicKey, err := k.Curve().PublicKey(k.privateKey)
	if err != nil {
		return curve.PublicKey{}, newCurveError("public key", err)
	}
	return publicKey, nil
}

// Public returns the extended public key with the same chain code.
func (k ExtendedPrivKey) Public() (ExtendedPubKey, error) {
	return NewExtendedPubKey(k)
}

// Identifier returns Hash160 of the compressed public key.
func (k ExtendedPrivKey) Identifier() ([]byte, error) {
	publicKey, err := k.PublicKey()
	if err != nil {
		return nil, err
	}
	return identifier(publicKey), nil
}

// Fingerprint returns the first four bytes of the identifier.
func (k ExtendedPrivKey) Fingerprint() ([4]byte, error) {
	publicKey, err := k.PublicKey()
	if err != nil {
		return [4]byte{}, err
	}
	return fingerprint(publicKey), nil
}

// String identifies the key by its fingerprint. Key material is never printed.
func (k ExtendedPrivKey) String() string {
	keyFingerprint, err := k.Fingerprint()
	if err != nil {
		return "ExtendedPrivKey(invalid)"
	}
	return fmt.Sprintf("ExtendedPrivKey(%x)", keyFingerprint)
}

// GoString is the same as String so that %#v does not print key material either.
func (k ExtendedPrivKey) GoString() string {
	return k.String()
}
