package sha1

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
		{"", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{"abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
	}
	for _, c := range cases {
		want, err := hex.DecodeString(c.want)
		require.NoError(t, err)
		require.Equal(t, want, sum([]byte(c.input)), "input %q", c.input)
	}
}

func TestBlockAlignedInputMatchesBytewise(t *testing.T) {
	msg := []byte("the quick brown fox jumps over the lazy dog, twice over, to span blocks")

	whole := New()
	whole.Update(msg)
	var wholeOut [20]byte
	whole.Result(wholeOut[:])

	piecewise := New()
	for _, b := range msg {
		piecewise.Update([]byte{b})
	}
	var pieceOut [20]byte
	piecewise.Result(pieceOut[:])

	require.Equal(t, wholeOut, pieceOut)
}
