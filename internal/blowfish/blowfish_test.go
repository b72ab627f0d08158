package blowfish

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestKnownVector exercises one widely reproduced Blowfish test vector
// (all-zero key, all-zero plaintext block) from Bruce Schneier's
// reference test suite.
func TestKnownVector(t *testing.T) {
	c, err := NewCipher(make([]byte, 8))
	require.NoError(t, err)

	l, r := c.Encrypt(0, 0)
	require.Equal(t, uint32(0x4ef99745), l)
	require.Equal(t, uint32(0x6198dd78), r)
	l2, r2 := c.Decrypt(l, r)
	require.Equal(t, uint32(0), l2)
	require.Equal(t, uint32(0), r2)
}

func TestEncryptDecryptRoundTrips(t *testing.T) {
	c, err := NewCipher([]byte("a sixteen byte key!!"))
	require.NoError(t, err)

	for _, pair := range [][2]uint32{
		{0x01234567, 0x89abcdef},
		{0xdeadbeef, 0xfeedface},
		{0, 0xffffffff},
	} {
		l, r := c.Encrypt(pair[0], pair[1])
		gotL, gotR := c.Decrypt(l, r)
		require.Equal(t, pair[0], gotL)
		require.Equal(t, pair[1], gotR)
	}
}

func TestExpandKeyWithSaltIsDeterministic(t *testing.T) {
	salt := []byte("0123456789abcdef")
	key := []byte("hunter2")

	c1 := New()
	c1.ExpandKeyWithSalt(salt, key)
	c2 := New()
	c2.ExpandKeyWithSalt(salt, key)

	l1, r1 := c1.Encrypt(1, 2)
	l2, r2 := c2.Encrypt(1, 2)
	require.Equal(t, l1, l2)
	require.Equal(t, r1, r2)
}

func TestDifferentSaltsDivergeTheSchedule(t *testing.T) {
	key := []byte("hunter2")

	c1 := New()
	c1.ExpandKeyWithSalt([]byte("0000000000000000"), key)
	c2 := New()
	c2.ExpandKeyWithSalt([]byte("0000000000000001"), key)

	l1, r1 := c1.Encrypt(1, 2)
	l2, r2 := c2.Encrypt(1, 2)
	require.False(t, l1 == l2 && r1 == r2)
}
