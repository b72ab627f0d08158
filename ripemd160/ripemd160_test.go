package ripemd160

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
		{"", "9c1185a5c5e9fc54612808977ee8f548b2258d31"},
		{"abc", "8eb208f7e05d987a9b044a8e98c6b087f15a0bfc"},
	}
	for _, c := range cases {
		want, err := hex.DecodeString(c.want)
		require.NoError(t, err)
		require.Equal(t, want, sum([]byte(c.input)), "input %q", c.input)
	}
}
