package rsa

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextbookVector(t *testing.T) {
	p := big.NewInt(61)
	q := big.NewInt(53)
	e := big.NewInt(17)

	pub, priv, err := KeyPairFromPrimes(p, q, e)
	require.NoError(t, err)

	require.Equal(t, big.NewInt(3233), pub.N)
	require.Equal(t, big.NewInt(2753), priv.D)

	msg := big.NewInt(65)
	ciphertext := pub.Crypt(msg)
	require.Equal(t, big.NewInt(2790), ciphertext)

	recovered := priv.Crypt(ciphertext)
	require.Equal(t, msg, recovered)
}

func TestGenerateKeyPairRoundTrips(t *testing.T) {
	pub, priv, err := GenerateKeyPair(rand.Reader, DefaultExponent(), 64)
	require.NoError(t, err)

	msg := big.NewInt(42)
	ciphertext := pub.Crypt(msg)
	recovered := priv.Crypt(ciphertext)
	require.Equal(t, msg, recovered)
}

func TestPrivateKeyWithoutCRTMatchesCRTPath(t *testing.T) {
	p := big.NewInt(61)
	q := big.NewInt(53)
	e := big.NewInt(17)

	pub, priv, err := KeyPairFromPrimes(p, q, e)
	require.NoError(t, err)

	plain := &PrivateKey{N: priv.N, D: priv.D}

	msg := big.NewInt(65)
	ciphertext := pub.Crypt(msg)

	require.Equal(t, plain.Crypt(ciphertext), priv.Crypt(ciphertext))
}
