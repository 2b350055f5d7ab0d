package bip32

import (
	"bytes"
	"encoding/binary"

	"github.com/btcsuite/btcutil/base58"
	"github.com/kaspanet/hdkeychain/curve"
	"github.com/pkg/errors"
)

// Extended key versions as registered by BIP-32.
var (
	BitcoinMainnetPrivate = [4]byte{0x04, 0x88, 0xad, 0xe4}
	BitcoinMainnetPublic  = [4]byte{0x04, 0x88, 0xb2, 0x1e}
	BitcoinTestnetPrivate = [4]byte{0x04, 0x35, 0x83, 0x94}
	BitcoinTestnetPublic  = [4]byte{0x04, 0x35, 0x87, 0xcf}
)

var privateToPublicVersions = map[[4]byte][4]byte{
	BitcoinMainnetPrivate: BitcoinMainnetPublic,
	BitcoinTestnetPrivate: BitcoinTestnetPublic,
}

// ToPublicVersion returns the public counterpart of a private version.
func ToPublicVersion(version [4]byte) ([4]byte, error) {
	publicVersion, ok := privateToPublicVersions[version]
	if !ok {
		return [4]byte{}, errors.Wrapf(ErrUnknownVersion, "no public version for %x", version)
	}
	return publicVersion, nil
}

func isPublicVersion(version [4]byte) bool {
	for _, publicVersion := range privateToPublicVersions {
		if publicVersion == version {
			return true
		}
	}
	return false
}

// KeyHeader holds the fields of an encoded extended key that describe where it sits in
// the tree. Build it from a Derivation or a PublicDerivation.
type KeyHeader struct {
	Depth             uint8
	ParentFingerprint [4]byte
	ChildNumber       uint32
}

const (
	versionSerializationLen     = 4
	depthSerializationLen       = 1
	fingerprintSerializationLen = 4
	childNumberSerializationLen = 4
	chainCodeSerializationLen   = ChainCodeSize
	keySerializationLen         = curve.PublicKeySize
	checkSumLen                 = 4
)

const (
	chainCodeOffset = versionSerializationLen +
		depthSerializationLen +
		fingerprintSerializationLen +
		childNumberSerializationLen
	keyOffset      = chainCodeOffset + chainCodeSerializationLen
	checkSumOffset = keyOffset + keySerializationLen
)

// ExtendedKeyEncodingLen is the length of an encoded extended key before base58.
const ExtendedKeyEncodingLen = checkSumOffset + checkSumLen

// EncodeExtendedPrivKey returns the base58 form of key, e.g. xprv... for
// BitcoinMainnetPrivate.
func EncodeExtendedPrivKey(version [4]byte, header KeyHeader, key ExtendedPrivKey) string {
	var keyData [keySerializationLen]byte
	privateKey := key.PrivateKey()
	copy(keyData[1:], privateKey[:])
	return encodeExtendedKey(version, header, key.chainCode, keyData)
}

// EncodeExtendedPubKey returns the base58 form of key, e.g. xpub... for
// BitcoinMainnetPublic.
func EncodeExtendedPubKey(version [4]byte, header KeyHeader, key ExtendedPubKey) string {
	return encodeExtendedKey(version, header, key.chainCode, key.publicKey)
}

func encodeExtendedKey(version [4]byte, header KeyHeader, chainCode ChainCode,
	keyData [keySerializationLen]byte) string {

	var serialized [ExtendedKeyEncodingLen]byte
	copy(serialized[:versionSerializationLen], version[:])
	serialized[versionSerializationLen] = header.Depth
	copy(serialized[versionSerializationLen+depthSerializationLen:], header.ParentFingerprint[:])
	binary.BigEndian.PutUint32(
		serialized[versionSerializationLen+depthSerializationLen+fingerprintSerializationLen:],
		header.ChildNumber,
	)
	copy(serialized[chainCodeOffset:], chainCode[:])
	copy(serialized[keyOffset:], keyData[:])
	copy(serialized[checkSumOffset:], calcChecksum(serialized[:checkSumOffset]))
	return base58.Encode(serialized[:])
}

// DecodedExtendedKey is the content of an encoded extended key.
type DecodedExtendedKey struct {
	Version [4]byte
	KeyHeader
	// PrivateKey is nil when a public key was encoded.
	PrivateKey *ExtendedPrivKey
	// PublicKey is set for both private and public encodings.
	PublicKey ExtendedPubKey
}

// IsPrivate reports whether a private key was encoded.
func (d *DecodedExtendedKey) IsPrivate() bool {
	return d.PrivateKey != nil
}

// DecodeExtendedKey is DecodeExtendedKeyWithCurve on the default curve.
func DecodeExtendedKey(encoded string) (*DecodedExtendedKey, error) {
	return DecodeExtendedKeyWithCurve(DefaultCurve(), encoded)
}

// DecodeExtendedKeyWithCurve parses the base58 form of an extended key. Known private
// versions must carry a zero-padded private key and known public versions a compressed
// point. For other versions the first key byte decides.
func DecodeExtendedKeyWithCurve(c curve.Curve, encoded string) (*DecodedExtendedKey, error) {
	serialized := base58.Decode(encoded)
	if len(serialized) != ExtendedKeyEncodingLen {
		return nil, errors.Wrapf(ErrInvalidKeyLength, "encoded key must be %d bytes but got %d",
			ExtendedKeyEncodingLen, len(serialized))
	}

	err := validateChecksum(serialized)
	if err != nil {
		return nil, err
	}

	decoded := &DecodedExtendedKey{}
	copy(decoded.Version[:], serialized[:versionSerializationLen])
	decoded.Depth = serialized[versionSerializationLen]
	copy(decoded.ParentFingerprint[:], serialized[versionSerializationLen+depthSerializationLen:])
	decoded.ChildNumber = binary.BigEndian.Uint32(
		serialized[versionSerializationLen+depthSerializationLen+fingerprintSerializationLen:],
	)
	var chainCode ChainCode
	copy(chainCode[:], serialized[chainCodeOffset:keyOffset])
	keyData := serialized[keyOffset:checkSumOffset]

	_, isPrivateVersion := privateToPublicVersions[decoded.Version]
	isPrivate := keyData[0] == 0
	if isPrivateVersion && !isPrivate {
		return nil, errors.Wrapf(ErrInvalidPadding, "expected 0 padding for private key but got %d", keyData[0])
	}
	if isPublicVersion(decoded.Version) {
		isPrivate = false
	}

	if isPrivate {
		var privateKey curve.PrivateKey
		copy(privateKey[:], keyData[1:])
		extendedPrivKey, err := NewExtendedPrivKey(c, privateKey, chainCode)
		if err != nil {
			return nil, err
		}
		decoded.PrivateKey = &extendedPrivKey
		decoded.PublicKey, err = extendedPrivKey.Public()
		if err != nil {
			return nil, err
		}
		return decoded, nil
	}

	var publicKey curve.PublicKey
	copy(publicKey[:], keyData)
	decoded.PublicKey, err = NewExtendedPubKeyFromParts(c, publicKey, chainCode)
	if err != nil {
		return nil, err
	}
	return decoded, nil
}

func calcChecksum(data []byte) []byte {
	return doubleSha256(data)[:checkSumLen]
}

func validateChecksum(data []byte) error {
	checksum := data[len(data)-checkSumLen:]
	expectedChecksum := calcChecksum(data[:len(data)-checkSumLen])
	if !bytes.Equal(expectedChecksum, checksum) {
		return errors.Wrapf(ErrChecksumMismatch, "expected checksum %x but got %x", expectedChecksum, checksum)
	}

	return nil
}
