package md5

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func sum(p []byte) []byte {
	d := New()
	d.Update(p)
	out := make([]byte, d.OutputBytes())
	d.Result(out)
	return out
}

func TestVectors(t *testing.T) {
	cases := []struct {
		input, want string
	}{
		{"", "d41d8cd98f00b204e9800998ecf8427e"},
		{"abc", "900150983cd24fb0d6963f7d28e17f72"},
	}
	for _, c := range cases {
		want, err := hex.DecodeString(c.want)
		require.NoError(t, err)
		require.Equal(t, want, sum([]byte(c.input)), "input %q", c.input)
	}
}

func TestCloneIndependence(t *testing.T) {
	d := New()
	d.Update([]byte("shared"))
	clone := d.Clone()

	d.Update([]byte(" original"))
	clone.Update([]byte(" clone"))

	var a, b [16]byte
	d.Result(a[:])
	clone.Result(b[:])
	require.NotEqual(t, a, b)
}

func TestHashHashInterface(t *testing.T) {
	d := New()
	_, _ = d.Write([]byte("abc"))
	got := d.Sum(nil)

	want, _ := hex.DecodeString("900150983cd24fb0d6963f7d28e17f72")
	require.Equal(t, want, got)
	require.Equal(t, 16, d.Size())
	require.Equal(t, 64, d.BlockSize())
}
