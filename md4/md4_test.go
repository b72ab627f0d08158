package md4

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
		{"", "31d6cfe0d16ae931b73c59d7e0c089c0"},
		{"abc", "a448017aaf21d8525fc10ae87aa6729d"},
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
