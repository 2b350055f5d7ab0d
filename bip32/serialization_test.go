package bip32

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

func TestSerializeRoundTrip(t *testing.T) {
	for _, c := range testCurves() {
		master, err := NewMasterWithCurve(c, []byte(EnclaveSeedKey), testSeed)
		if err != nil {
			t.Fatalf("NewMasterWithCurve: %+v", err)
		}

		for _, path := range []string{"m", "m/0", "m/1'/2/3H"} {
			key, _, err := DerivePrivateKey(master, NewChainPath(path))
			if err != nil {
				t.Fatalf("DerivePrivateKey: %+v", err)
			}

			serialized := key.Serialize()
			if len(serialized) != ExtendedPrivKeySerializationLen {
				t.Fatalf("Expected %d bytes but got %d", ExtendedPrivKeySerializationLen, len(serialized))
			}
			privateKey := key.PrivateKey()
			chainCode := key.ChainCode()
			if !bytes.Equal(serialized[:32], privateKey[:]) || !bytes.Equal(serialized[32:], chainCode[:]) {
				t.Fatalf("Unexpected layout %x", serialized)
			}

			deserialized, err := DeserializeExtendedPrivKeyWithCurve(c, serialized)
			if err != nil {
				t.Fatalf("DeserializeExtendedPrivKeyWithCurve: %+v", err)
			}
			if deserialized != key {
				t.Fatalf("%s, %s: deserializing and serializing the extended private key didn't preserve the data",
					c.Name(), path)
			}

			publicKey, err := key.Public()
			if err != nil {
				t.Fatalf("Public: %+v", err)
			}
			serialized = publicKey.Serialize()
			if len(serialized) != ExtendedPubKeySerializationLen {
				t.Fatalf("Expected %d bytes but got %d", ExtendedPubKeySerializationLen, len(serialized))
			}

			deserializedPublicKey, err := DeserializeExtendedPubKeyWithCurve(c, serialized)
			if err != nil {
				t.Fatalf("DeserializeExtendedPubKeyWithCurve: %+v", err)
			}
			if deserializedPublicKey != publicKey {
				t.Fatalf("%s, %s: deserializing and serializing the extended public key didn't preserve the data",
					c.Name(), path)
			}
		}
	}
}

func TestDeserializeDefaultCurve(t *testing.T) {
	master := newTestMaster(t)
	deserialized, err := DeserializeExtendedPrivKey(master.Serialize())
	if err != nil {
		t.Fatalf("DeserializeExtendedPrivKey: %+v", err)
	}
	if deserialized != master {
		t.Fatalf("Round trip on the default curve failed")
	}

	masterPublic, err := master.Public()
	if err != nil {
		t.Fatalf("Public: %+v", err)
	}
	deserializedPublic, err := DeserializeExtendedPubKey(masterPublic.Serialize())
	if err != nil {
		t.Fatalf("DeserializeExtendedPubKey: %+v", err)
	}
	if deserializedPublic != masterPublic {
		t.Fatalf("Round trip on the default curve failed")
	}
}

func TestDeserializeErrors(t *testing.T) {
	master := newTestMaster(t)
	serialized := master.Serialize()

	for _, length := range []int{0, ExtendedPrivKeySerializationLen - 1, ExtendedPrivKeySerializationLen + 1} {
		data := make([]byte, length)
		copy(data, serialized)
		_, err := DeserializeExtendedPrivKey(data)
		if !errors.Is(err, ErrInvalidKeyLength) {
			t.Fatalf("Length %d: expected ErrInvalidKeyLength but got %v", length, err)
		}
	}

	zeroKey := make([]byte, ExtendedPrivKeySerializationLen)
	_, err := DeserializeExtendedPrivKey(zeroKey)
	var curveErr *CurveError
	if !errors.As(err, &curveErr) {
		t.Fatalf("Expected a CurveError for a zero private key but got %v", err)
	}

	masterPublic, err := master.Public()
	if err != nil {
		t.Fatalf("Public: %+v", err)
	}
	serialized = masterPublic.Serialize()

	_, err = DeserializeExtendedPubKey(serialized[:ExtendedPubKeySerializationLen-1])
	if !errors.Is(err, ErrInvalidKeyLength) {
		t.Fatalf("Expected ErrInvalidKeyLength but got %v", err)
	}

	badPrefix := append([]byte{}, serialized...)
	badPrefix[0] = 0x04
	_, err = DeserializeExtendedPubKey(badPrefix)
	if !errors.As(err, &curveErr) {
		t.Fatalf("Expected a CurveError for an invalid point prefix but got %v", err)
	}
}
