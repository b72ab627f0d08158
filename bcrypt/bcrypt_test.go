package bcrypt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashIsDeterministicForFixedSaltAndCost(t *testing.T) {
	salt := []byte("0123456789abcdef")
	h1, err := Hash(MinCost, salt, []byte("correct horse battery staple"))
	require.NoError(t, err)
	h2, err := Hash(MinCost, salt, []byte("correct horse battery staple"))
	require.NoError(t, err)
	require.Equal(t, h1, h2)
}

func TestHashDiffersByCostAndSalt(t *testing.T) {
	base, err := Hash(MinCost, []byte("0123456789abcdef"), []byte("password"))
	require.NoError(t, err)

	diffSalt, err := Hash(MinCost, []byte("fedcba9876543210"), []byte("password"))
	require.NoError(t, err)
	require.NotEqual(t, base, diffSalt)

	diffCost, err := Hash(MinCost+1, []byte("0123456789abcdef"), []byte("password"))
	require.NoError(t, err)
	require.NotEqual(t, base, diffCost)
}

func TestHashRejectsBadCostAndSizes(t *testing.T) {
	salt := []byte("0123456789abcdef")
	_, err := Hash(MinCost-1, salt, []byte("password"))
	require.Error(t, err)
	_, err = Hash(MaxCost+1, salt, []byte("password"))
	require.Error(t, err)
	_, err = Hash(MinCost, []byte("tooshort"), []byte("password"))
	require.Error(t, err)
	_, err = Hash(MinCost, salt, nil)
	require.Error(t, err)
}

func TestGenerateAndCompareRoundTrip(t *testing.T) {
	encoded, err := GenerateFromPassword([]byte("correct horse battery staple"), MinCost)
	require.NoError(t, err)
	require.NoError(t, CompareHashAndPassword([]byte(encoded), []byte("correct horse battery staple")))
}

func TestCompareRejectsWrongPassword(t *testing.T) {
	encoded, err := GenerateFromPassword([]byte("correct horse battery staple"), MinCost)
	require.NoError(t, err)
	require.Error(t, CompareHashAndPassword([]byte(encoded), []byte("wrong password")))
}

func TestCompareRejectsMalformedHash(t *testing.T) {
	require.Error(t, CompareHashAndPassword([]byte("not-a-bcrypt-hash"), []byte("password")))
}
