package chacha20

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

// TestRFC7539BlockVector checks the first keystream block against the
// RFC 7539 section 2.3.2 block-function test vector (key bytes 0x00..
// 0x1f, nonce 00:00:00:09:00:00:00:4a:00:00:00:00, counter 1).
func TestRFC7539BlockVector(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	nonce := mustHex(t, "000000090000004a00000000")

	c, err := New(key, nonce, 1)
	require.NoError(t, err)

	c.block()

	want := mustHex(t, "10f1e7e4d13b5915500fdd1fa32071c4c7d1f4c"+
		"733c068030422aa9ac3d46c4ed2826446079faa0914c2d705d9"+
		"8b02a2b5129cd1de164eb9cbd083e8a2503c4e")
	require.Equal(t, want, c.stream[:])
}

func TestXORKeyStreamIsInvolution(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(2*i + 1)
	}
	nonce := mustHex(t, "000000000000000000000000")

	plaintext := []byte("some message spanning more than one 64-byte block of keystream, repeated to be sure")

	enc, err := New(key, nonce, 0)
	require.NoError(t, err)
	ciphertext := make([]byte, len(plaintext))
	enc.XORKeyStream(ciphertext, plaintext)
	require.NotEqual(t, plaintext, ciphertext)

	dec, err := New(key, nonce, 0)
	require.NoError(t, err)
	recovered := make([]byte, len(ciphertext))
	dec.XORKeyStream(recovered, ciphertext)
	require.Equal(t, plaintext, recovered)
}

func TestPartialCallsMatchOneShot(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	nonce := mustHex(t, "000000000000000000000000")

	plaintext := make([]byte, 200)
	for i := range plaintext {
		plaintext[i] = byte(i * 7)
	}

	oneShot, err := New(key, nonce, 0)
	require.NoError(t, err)
	wholeOut := make([]byte, len(plaintext))
	oneShot.XORKeyStream(wholeOut, plaintext)

	piecewise, err := New(key, nonce, 0)
	require.NoError(t, err)
	pieceOut := make([]byte, len(plaintext))
	sizes := []int{1, 5, 64, 30, 100}
	pos := 0
	for _, n := range sizes {
		if pos+n > len(plaintext) {
			n = len(plaintext) - pos
		}
		piecewise.XORKeyStream(pieceOut[pos:pos+n], plaintext[pos:pos+n])
		pos += n
	}

	require.Equal(t, wholeOut, pieceOut)
}

func TestRejectsBadSizes(t *testing.T) {
	_, err := New(make([]byte, 16), make([]byte, 12), 0)
	require.Error(t, err)

	_, err = New(make([]byte, 32), make([]byte, 8), 0)
	require.Error(t, err)
}
