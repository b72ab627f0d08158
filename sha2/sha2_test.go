package sha2

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSha256Vectors(t *testing.T) {
	cases := []struct {
		input, want string
	}{
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}
	for _, c := range cases {
		d := NewSha256()
		d.Update([]byte(c.input))
		out := make([]byte, 32)
		d.Result(out)

		want, err := hex.DecodeString(c.want)
		require.NoError(t, err)
		require.Equal(t, want, out, "input %q", c.input)
	}
}

func TestSha512Vectors(t *testing.T) {
	cases := []struct {
		input, want string
	}{
		{"", "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"},
	}
	for _, c := range cases {
		d := NewSha512()
		d.Update([]byte(c.input))
		out := make([]byte, 64)
		d.Result(out)

		want, err := hex.DecodeString(c.want)
		require.NoError(t, err)
		require.Equal(t, want, out, "input %q", c.input)
	}
}

func TestSha224And384OutputSizes(t *testing.T) {
	d224 := NewSha224()
	d224.Update([]byte("abc"))
	out224 := make([]byte, d224.OutputBytes())
	d224.Result(out224)
	require.Len(t, out224, 28)

	d384 := NewSha384()
	d384.Update([]byte("abc"))
	out384 := make([]byte, d384.OutputBytes())
	d384.Result(out384)
	require.Len(t, out384, 48)
}

func TestSha512TruncatedVariantsDifferFromSha512(t *testing.T) {
	d512 := NewSha512()
	d512.Update([]byte("abc"))
	out512 := make([]byte, 64)
	d512.Result(out512)

	d224 := NewSha512_224()
	d224.Update([]byte("abc"))
	out224 := make([]byte, 28)
	d224.Result(out224)

	require.NotEqual(t, out512[:28], out224)
}

func TestCloneIndependence(t *testing.T) {
	d := NewSha256()
	d.Update([]byte("shared"))
	clone := d.Clone()

	d.Update([]byte(" original"))
	clone.Update([]byte(" clone"))

	var a, b [32]byte
	d.Result(a[:])
	clone.Result(b[:])
	require.NotEqual(t, a, b)
}
