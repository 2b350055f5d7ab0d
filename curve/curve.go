// Package curve defines the elliptic curve capability the bip32 package derives keys with.
//
// Keys cross the boundary in their serialized form only, so extended keys stay plain
// comparable values and any provider satisfying Curve can be swapped in.
package curve

const (
	// PrivateKeySize is the size of a serialized private scalar.
	PrivateKeySize = 32

	// PublicKeySize is the size of a compressed public point.
	PublicKeySize = 33

	// TweakSize is the size of a scalar added to a key during derivation.
	TweakSize = 32
)

// PrivateKey is a big-endian private scalar in the range [1, n-1].
type PrivateKey [PrivateKeySize]byte

// PublicKey is a compressed public point.
type PublicKey [PublicKeySize]byte

// Curve is the group arithmetic needed for child key derivation.
//
// Every method validates its inputs and outputs: a scalar that is zero or not below the
// group order, a point that is not on the curve and the point at infinity are all errors.
// Implementations must be stateless and safe for concurrent use.
type Curve interface {
	// Name identifies the provider in logs and configuration.
	Name() string

	// ParsePrivateKey validates a 32-byte scalar.
	ParsePrivateKey(data []byte) (PrivateKey, error)

	// ParsePublicKey validates a 33-byte compressed point.
	ParsePublicKey(data []byte) (PublicKey, error)

	// PublicKey returns privateKey*G.
	PublicKey(privateKey PrivateKey) (PublicKey, error)

	// AddPrivateKey returns privateKey + tweak mod n. The tweak must be below n.
	AddPrivateKey(privateKey PrivateKey, tweak [TweakSize]byte) (PrivateKey, error)

	// AddPublicKey returns publicKey + tweak*G. The tweak must be below n.
	AddPublicKey(publicKey PublicKey, tweak [TweakSize]byte) (PublicKey, error)
}
