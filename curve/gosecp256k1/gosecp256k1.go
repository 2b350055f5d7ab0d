// Package gosecp256k1 implements curve.Curve in pure Go on top of btcec.
package gosecp256k1

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/kaspanet/hdkeychain/curve"
	"github.com/pkg/errors"
)

// Name is the provider name used in configuration.
const Name = "go"

var (
	// ErrInvalidScalar is returned for a scalar that is zero or not below the group order.
	ErrInvalidScalar = errors.New("invalid scalar")

	// ErrPointAtInfinity is returned when an addition results in the point at infinity.
	ErrPointAtInfinity = errors.New("resulting point is the point at infinity")
)

// Curve is the pure Go secp256k1 provider. The zero value is ready to use.
type Curve struct{}

var _ curve.Curve = Curve{}

// Name returns the provider name.
func (Curve) Name() string {
	return Name
}

// ParsePrivateKey validates a serialized private scalar.
func (Curve) ParsePrivateKey(data []byte) (curve.PrivateKey, error) {
	if len(data) != curve.PrivateKeySize {
		return curve.PrivateKey{}, errors.Errorf("private key must be %d bytes but got %d",
			curve.PrivateKeySize, len(data))
	}

	var privateKey curve.PrivateKey
	copy(privateKey[:], data)
	_, err := parseScalar(privateKey, false)
	if err != nil {
		return curve.PrivateKey{}, err
	}

	return privateKey, nil
}

// ParsePublicKey validates a compressed public point.
func (Curve) ParsePublicKey(data []byte) (curve.PublicKey, error) {
	if len(data) != curve.PublicKeySize {
		return curve.PublicKey{}, errors.Errorf("public key must be %d bytes but got %d",
			curve.PublicKeySize, len(data))
	}

	publicKey, err := btcec.ParsePubKey(data)
	if err != nil {
		return curve.PublicKey{}, err
	}

	return serializePublicKey(publicKey), nil
}

// PublicKey returns privateKey*G.
func (Curve) PublicKey(privateKey curve.PrivateKey) (curve.PublicKey, error) {
	scalar, err := parseScalar(privateKey, false)
	if err != nil {
		return curve.PublicKey{}, err
	}

	var point btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(scalar, &point)
	return affinePublicKey(&point)
}

// AddPrivateKey returns privateKey + tweak mod n.
func (Curve) AddPrivateKey(privateKey curve.PrivateKey, tweak [curve.TweakSize]byte) (curve.PrivateKey, error) {
	scalar, err := parseScalar(privateKey, false)
	if err != nil {
		return curve.PrivateKey{}, err
	}

	tweakScalar, err := parseScalar(tweak, true)
	if err != nil {
		return curve.PrivateKey{}, errors.Wrap(err, "invalid tweak")
	}

	scalar.Add(tweakScalar)
	if scalar.IsZero() {
		return curve.PrivateKey{}, errors.Wrap(ErrInvalidScalar, "tweaked private key is zero")
	}

	return scalar.Bytes(), nil
}

// AddPublicKey returns publicKey + tweak*G.
func (Curve) AddPublicKey(publicKey curve.PublicKey, tweak [curve.TweakSize]byte) (curve.PublicKey, error) {
	parsedPublicKey, err := btcec.ParsePubKey(publicKey[:])
	if err != nil {
		return curve.PublicKey{}, err
	}

	tweakScalar, err := parseScalar(tweak, true)
	if err != nil {
		return curve.PublicKey{}, errors.Wrap(err, "invalid tweak")
	}

	var tweakPoint, point, result btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(tweakScalar, &tweakPoint)
	parsedPublicKey.AsJacobian(&point)
	btcec.AddNonConst(&point, &tweakPoint, &result)
	return affinePublicKey(&result)
}

// parseScalar reads a big-endian scalar, rejecting values not below the group order and,
// unless allowZero is set, zero.
func parseScalar(data [32]byte, allowZero bool) (*btcec.ModNScalar, error) {
	var scalar btcec.ModNScalar
	overflow := scalar.SetBytes(&data)
	if overflow != 0 {
		return nil, errors.Wrap(ErrInvalidScalar, "scalar is not below the group order")
	}
	if !allowZero && scalar.IsZero() {
		return nil, errors.Wrap(ErrInvalidScalar, "scalar is zero")
	}

	return &scalar, nil
}

func affinePublicKey(point *btcec.JacobianPoint) (curve.PublicKey, error) {
	if (point.X.IsZero() && point.Y.IsZero()) || point.Z.IsZero() {
		return curve.PublicKey{}, ErrPointAtInfinity
	}

	point.ToAffine()
	return serializePublicKey(btcec.NewPublicKey(&point.X, &point.Y)), nil
}

func serializePublicKey(publicKey *btcec.PublicKey) curve.PublicKey {
	var serialized curve.PublicKey
	copy(serialized[:], publicKey.SerializeCompressed())
	return serialized
}
