package bignum

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPowMod(t *testing.T) {
	base := big.NewInt(4)
	exp := big.NewInt(13)
	mod := big.NewInt(497)

	got := PowMod(base, exp, mod)
	require.Equal(t, big.NewInt(445), got)
}

func TestInverseKnownPair(t *testing.T) {
	a := big.NewInt(3)
	m := big.NewInt(11)

	x, ok := Inverse(a, m)
	require.True(t, ok)
	require.Equal(t, big.NewInt(4), x)

	check := new(big.Int).Mul(a, x)
	check.Mod(check, m)
	require.Equal(t, big.NewInt(1), check)
}

func TestInverseNoInverseWhenNotCoprime(t *testing.T) {
	_, ok := Inverse(big.NewInt(6), big.NewInt(9))
	require.False(t, ok)
}

func TestFermatAndMillerRabinAgreeOnSmallPrime(t *testing.T) {
	n := big.NewInt(4393139)
	ok, err := TestLoop(FermatTest, n, 20, rand.Reader)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = TestLoop(MillerRabinTest, n, 20, rand.Reader)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestFermatAndMillerRabinAgreeOnSmallComposite(t *testing.T) {
	n := big.NewInt(4393137)
	ok, err := TestLoop(FermatTest, n, 20, rand.Reader)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = TestLoop(MillerRabinTest, n, 20, rand.Reader)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestGeneratePrimeProducesOddRightSizedProbablePrime(t *testing.T) {
	p, err := GeneratePrime(rand.Reader, 64)
	require.NoError(t, err)

	require.Equal(t, 64, p.BitLen())
	require.Equal(t, uint(1), p.Bit(0))
	require.True(t, p.ProbablyPrime(20))
}
