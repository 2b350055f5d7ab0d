package bip32

import (
	"encoding/binary"

	"github.com/kaspanet/hdkeychain/curve"
)

// DerivePrivateKey derives the child private key at keyIndex (CKDpriv).
//
// For a normal index I = HMAC-SHA512(chainCode, serP(K) || ser32(i)); for a hardened
// index I = HMAC-SHA512(chainCode, 0x00 || ser256(k) || ser32(i)). The child key is
// IL + k mod n and the child chain code is IR. An IL that is not below n, or a zero
// child key, is reported as a *CurveError.
func (k ExtendedPrivKey) DerivePrivateKey(keyIndex KeyIndex) (ExtendedPrivKey, error) {
	if !keyIndex.IsValid() {
		return ExtendedPrivKey{}, keyIndex.outOfRangeError()
	}

	I, err := k.calcI(keyIndex)
	if err != nil {
		return ExtendedPrivKey{}, err
	}
	iL, iR := splitI(I)

	childPrivateKey, err := k.Curve().AddPrivateKey(k.privateKey, iL)
	if err != nil {
		return ExtendedPrivKey{}, newCurveError("private key addition", err)
	}

	return ExtendedPrivKey{
		curve:      k.Curve(),
		privateKey: childPrivateKey,
		chainCode:  iR,
	}, nil
}

func (k ExtendedPrivKey) calcI(keyIndex KeyIndex) ([]byte, error) {
	if !keyIndex.IsHardened() {
		publicKey, err := k.PublicKey()
		if err != nil {
			return nil, err
		}
		return calcNormalI(k.chainCode, publicKey, keyIndex), nil
	}

	mac := newHMACWriter(k.chainCode[:])
	mac.InfallibleWrite([]byte{0x00})
	mac.InfallibleWrite(k.privateKey[:])
	mac.InfallibleWrite(serializeUint32(keyIndex.Index()))
	return mac.Sum(nil), nil
}

// DerivePublicKey derives the child public key at keyIndex (CKDpub). Only normal indexes
// can be derived from a public key; a hardened index is a *KeyIndexOutOfRangeError.
//
// I = HMAC-SHA512(chainCode, serP(K) || ser32(i)); the child point is K + IL*G and the
// child chain code is IR. An IL that is not below n, or a child that is the point at
// infinity, is reported as a *CurveError.
func (k ExtendedPubKey) DerivePublicKey(keyIndex KeyIndex) (ExtendedPubKey, error) {
	if !keyIndex.IsValid() || keyIndex.IsHardened() {
		return ExtendedPubKey{}, keyIndex.outOfRangeError()
	}

	iL, iR := splitI(calcNormalI(k.chainCode, k.publicKey, keyIndex))

	childPublicKey, err := k.Curve().AddPublicKey(k.publicKey, iL)
	if err != nil {
		return ExtendedPubKey{}, newCurveError("public key addition", err)
	}

	return ExtendedPubKey{
		curve:     k.Curve(),
		publicKey: childPublicKey,
		chainCode: iR,
	}, nil
}

func calcNormalI(chainCode ChainCode, publicKey curve.PublicKey, keyIndex KeyIndex) []byte {
	mac := newHMACWriter(chainCode[:])
	mac.InfallibleWrite(publicKey[:])
	mac.InfallibleWrite(serializeUint32(keyIndex.Index()))
	return mac.Sum(nil)
}

func serializeUint32(v uint32) []byte {
	serialized := make([]byte, 4)
	binary.BigEndian.PutUint32(serialized, v)
	return serialized
}
