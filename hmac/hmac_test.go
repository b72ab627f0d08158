package hmac

import (
	"testing"

	"github.com/libOctavo/octavo/digest"
	"github.com/libOctavo/octavo/md5"
	"github.com/stretchr/testify/require"
)

func newMd5() digest.Digest { return md5.New() }

func TestRFC2104Vector1(t *testing.T) {
	h := New(newMd5, bytesOf(0x0b, 16))
	h.Update([]byte("Hi There"))

	out := make([]byte, h.OutputBytes())
	h.Result(out)

	require.Equal(t, []byte{
		0x92, 0x94, 0x72, 0x7a, 0x36, 0x38, 0xbb, 0x1c,
		0x13, 0xf4, 0x8e, 0xf8, 0x15, 0x8b, 0xfc, 0x9d,
	}, out)
}

func TestRFC2104Vector2(t *testing.T) {
	h := New(newMd5, []byte("Jefe"))
	h.Update([]byte("what do ya want for nothing?"))

	out := make([]byte, h.OutputBytes())
	h.Result(out)

	require.Equal(t, []byte{
		0x75, 0x0c, 0x78, 0x3e, 0x6a, 0xb0, 0xb5, 0x03,
		0xea, 0xa8, 0x6e, 0x31, 0x0a, 0x5d, 0xb7, 0x38,
	}, out)
}

func TestRFC2104Vector3(t *testing.T) {
	h := New(newMd5, bytesOf(0xaa, 16))
	for i := 0; i < 50; i++ {
		h.Update([]byte{0xdd})
	}

	out := make([]byte, h.OutputBytes())
	h.Result(out)

	require.Equal(t, []byte{
		0x56, 0xbe, 0x34, 0x52, 0x1d, 0x14, 0x4c, 0x88,
		0xdb, 0xb8, 0xc7, 0x33, 0xf0, 0xe8, 0xb3, 0xf6,
	}, out)
}

func TestKeyLongerThanBlockIsHashedDown(t *testing.T) {
	longKey := make([]byte, 200)
	for i := range longKey {
		longKey[i] = byte(i)
	}
	h := New(newMd5, longKey)
	h.Update([]byte("message"))
	out := make([]byte, h.OutputBytes())
	h.Result(out)
	require.Len(t, out, 16)
}

func TestCloneIndependence(t *testing.T) {
	h := New(newMd5, []byte("key"))
	h.Update([]byte("shared"))
	clone := h.Clone()

	h.Update([]byte(" original"))
	clone.Update([]byte(" clone"))

	a := make([]byte, 16)
	b := make([]byte, 16)
	h.Result(a)
	clone.Result(b)
	require.NotEqual(t, a, b)
}

func bytesOf(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}
