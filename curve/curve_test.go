package curve_test

import (
	"encoding/hex"
	"testing"

	"github.com/kaspanet/hdkeychain/curve"
	"github.com/kaspanet/hdkeychain/curve/gosecp256k1"
	"github.com/kaspanet/hdkeychain/curve/libsecp256k1"
	"github.com/stretchr/testify/require"
)

const (
	groupOrderHex      = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
	groupOrderMinusOne = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140"
	generatorHex       = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	twoGeneratorHex    = "02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5"
	threeGeneratorHex  = "02f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9"
)

func providers() []curve.Curve {
	return []curve.Curve{gosecp256k1.Curve{}, libsecp256k1.Curve{}}
}

func scalar(t *testing.T, hexString string) [32]byte {
	t.Helper()
	decoded, err := hex.DecodeString(hexString)
	require.NoError(t, err)
	require.Len(t, decoded, 32)

	var result [32]byte
	copy(result[:], decoded)
	return result
}

func smallScalar(value byte) [32]byte {
	var result [32]byte
	result[31] = value
	return result
}

func point(t *testing.T, hexString string) curve.PublicKey {
	t.Helper()
	decoded, err := hex.DecodeString(hexString)
	require.NoError(t, err)
	require.Len(t, decoded, curve.PublicKeySize)

	var result curve.PublicKey
	copy(result[:], decoded)
	return result
}

func TestParsePrivateKey(t *testing.T) {
	for _, c := range providers() {
		t.Run(c.Name(), func(t *testing.T) {
			one := smallScalar(1)
			privateKey, err := c.ParsePrivateKey(one[:])
			require.NoError(t, err)
			require.Equal(t, curve.PrivateKey(one), privateKey)

			maxScalar := scalar(t, groupOrderMinusOne)
			_, err = c.ParsePrivateKey(maxScalar[:])
			require.NoError(t, err)

			zero := smallScalar(0)
			_, err = c.ParsePrivateKey(zero[:])
			require.Error(t, err)

			order := scalar(t, groupOrderHex)
			_, err = c.ParsePrivateKey(order[:])
			require.Error(t, err)

			_, err = c.ParsePrivateKey(one[:31])
			require.Error(t, err)
		})
	}
}

func TestPublicKey(t *testing.T) {
	for _, c := range providers() {
		t.Run(c.Name(), func(t *testing.T) {
			publicKey, err := c.PublicKey(smallScalar(1))
			require.NoError(t, err)
			require.Equal(t, point(t, generatorHex), publicKey)

			publicKey, err = c.PublicKey(smallScalar(3))
			require.NoError(t, err)
			require.Equal(t, point(t, threeGeneratorHex), publicKey)

			_, err = c.PublicKey(smallScalar(0))
			require.Error(t, err)
		})
	}
}

func TestParsePublicKey(t *testing.T) {
	for _, c := range providers() {
		t.Run(c.Name(), func(t *testing.T) {
			generator := point(t, generatorHex)
			publicKey, err := c.ParsePublicKey(generator[:])
			require.NoError(t, err)
			require.Equal(t, generator, publicKey)

			badPrefix := generator
			badPrefix[0] = 0x05
			_, err = c.ParsePublicKey(badPrefix[:])
			require.Error(t, err)

			_, err = c.ParsePublicKey(generator[:32])
			require.Error(t, err)
		})
	}
}

func TestAddPrivateKey(t *testing.T) {
	for _, c := range providers() {
		t.Run(c.Name(), func(t *testing.T) {
			sum, err := c.AddPrivateKey(smallScalar(1), smallScalar(2))
			require.NoError(t, err)
			require.Equal(t, curve.PrivateKey(smallScalar(3)), sum)

			// n-1 + 2 wraps around to 1
			sum, err = c.AddPrivateKey(scalar(t, groupOrderMinusOne), smallScalar(2))
			require.NoError(t, err)
			require.Equal(t, curve.PrivateKey(smallScalar(1)), sum)

			_, err = c.AddPrivateKey(scalar(t, groupOrderMinusOne), smallScalar(1))
			require.Error(t, err, "a zero sum must be rejected")

			_, err = c.AddPrivateKey(smallScalar(1), scalar(t, groupOrderHex))
			require.Error(t, err, "a tweak equal to the group order must be rejected")
		})
	}
}

func TestAddPublicKey(t *testing.T) {
	for _, c := range providers() {
		t.Run(c.Name(), func(t *testing.T) {
			sum, err := c.AddPublicKey(point(t, generatorHex), smallScalar(1))
			require.NoError(t, err)
			require.Equal(t, point(t, twoGeneratorHex), sum)

			sum, err = c.AddPublicKey(point(t, generatorHex), smallScalar(2))
			require.NoError(t, err)
			require.Equal(t, point(t, threeGeneratorHex), sum)

			_, err = c.AddPublicKey(point(t, generatorHex), scalar(t, groupOrderMinusOne))
			require.Error(t, err, "the point at infinity must be rejected")

			_, err = c.AddPublicKey(point(t, generatorHex), scalar(t, groupOrderHex))
			require.Error(t, err, "a tweak equal to the group order must be rejected")
		})
	}
}

func TestProvidersAgree(t *testing.T) {
	goCurve := gosecp256k1.Curve{}
	cgoCurve := libsecp256k1.Curve{}

	privateKey := curve.PrivateKey(scalar(t, "e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35"))
	tweak := scalar(t, "873dff81c02f525623fd1fe5167eac3a55a049de3d314bb42ee227ffed37d508")

	goPublicKey, err := goCurve.PublicKey(privateKey)
	require.NoError(t, err)
	cgoPublicKey, err := cgoCurve.PublicKey(privateKey)
	require.NoError(t, err)
	require.Equal(t, goPublicKey, cgoPublicKey)

	goSum, err := goCurve.AddPrivateKey(privateKey, tweak)
	require.NoError(t, err)
	cgoSum, err := cgoCurve.AddPrivateKey(privateKey, tweak)
	require.NoError(t, err)
	require.Equal(t, goSum, cgoSum)

	goPointSum, err := goCurve.AddPublicKey(goPublicKey, tweak)
	require.NoError(t, err)
	cgoPointSum, err := cgoCurve.AddPublicKey(cgoPublicKey, tweak)
	require.NoError(t, err)
	require.Equal(t, goPointSum, cgoPointSum)

	expectedPointSum, err := goCurve.PublicKey(goSum)
	require.NoError(t, err)
	require.Equal(t, expectedPointSum, goPointSum)
}
