/*
Package bip32 implements hierarchical deterministic key derivation over secp256k1.

A master key is derived from a seed with NewMaster. Children are derived one step at a time
with ExtendedPrivKey.DerivePrivateKey and ExtendedPubKey.DerivePublicKey, or along a whole
chain path such as m/0/1 or m/44'/0H with DerivePrivateKey and DerivePublicKey.

Keys serialize to a fixed binary layout (Serialize, DeserializeExtendedPrivKey) and to the
base58 xprv/xpub form (EncodeExtendedPrivKey, DecodeExtendedKey).
*/
package bip32
