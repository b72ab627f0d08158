package aes

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestFIPS197Vector(t *testing.T) {
	key := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	plaintext := mustHex(t, "00112233445566778899aabbccddeeff")
	want := mustHex(t, "69c4e0d86a7b0430d8cdb78070b4c55a")

	c, err := NewCipher(key)
	require.NoError(t, err)

	got := make([]byte, 16)
	c.EncryptBlock(got, plaintext)
	require.Equal(t, want, got)

	back := make([]byte, 16)
	c.DecryptBlock(back, got)
	require.Equal(t, plaintext, back)
}

func TestRejectsWrongKeySize(t *testing.T) {
	_, err := NewCipher(make([]byte, 24))
	require.Error(t, err)
}

func TestEncryptDecryptRoundTripsRandomBlocks(t *testing.T) {
	key := mustHex(t, "00112233445566778899aabbccddeeff")
	c, err := NewCipher(key)
	require.NoError(t, err)

	for seed := 0; seed < 16; seed++ {
		block := make([]byte, 16)
		for i := range block {
			block[i] = byte(seed*16 + i)
		}
		enc := make([]byte, 16)
		c.EncryptBlock(enc, block)

		dec := make([]byte, 16)
		c.DecryptBlock(dec, enc)
		require.Equal(t, block, dec)
	}
}
