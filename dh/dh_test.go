package dh

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func exchangeWithParams(t *testing.T, params *Parameters) {
	t.Helper()

	priv1, err := params.PrivateKey(rand.Reader)
	require.NoError(t, err)
	priv2, err := params.PrivateKey(rand.Reader)
	require.NoError(t, err)

	pub1 := priv1.PublicKey()
	pub2 := priv2.PublicKey()

	shared1 := priv2.Exchange(pub1)
	shared2 := priv1.Exchange(pub2)

	require.Equal(t, 0, shared1.Cmp(shared2))
}

func TestExchangeToyGroup(t *testing.T) {
	params := NewParameters(big.NewInt(0x17), big.NewInt(5))
	exchangeWithParams(t, params)
}

func TestExchangeRFC2409Group768(t *testing.T) {
	exchangeWithParams(t, Group768)
}

func TestExchangeRFC2409Group1024(t *testing.T) {
	exchangeWithParams(t, Group1024)
}

func TestPublicKeyIsDeterministicForGivenPrivateKey(t *testing.T) {
	params := NewParameters(big.NewInt(0x17), big.NewInt(5))
	priv, err := params.PrivateKey(rand.Reader)
	require.NoError(t, err)

	pub1 := priv.PublicKey()
	pub2 := priv.PublicKey()
	require.Equal(t, 0, pub1.Y.Cmp(pub2.Y))
}
