package whirlpool

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWhirlpoolEmpty(t *testing.T) {
	d := New()
	out := make([]byte, d.OutputBytes())
	d.Result(out)

	want, err := hex.DecodeString(
		"19FA61D75522A4669B44E39C1D2E1726C530232130D407F" +
			"89AFEE0964997F7A73E83BE698B288FEBCF88E3E03C4F075" +
			"7EA8964E59B63D93708B138CC42A66EB3")
	require.NoError(t, err)
	require.Equal(t, want, out)
}

func TestCloneIndependence(t *testing.T) {
	d := New()
	d.Update([]byte("shared prefix"))
	clone := d.Clone()

	d.Update([]byte(" original tail"))
	clone.Update([]byte(" clone tail"))

	a := make([]byte, 64)
	b := make([]byte, 64)
	d.Result(a)
	clone.Result(b)
	require.NotEqual(t, a, b)
}

func TestBlockBoundaryInput(t *testing.T) {
	msg := make([]byte, 192)
	for i := range msg {
		msg[i] = byte(i)
	}

	whole := New()
	whole.Update(msg)
	wholeOut := make([]byte, 64)
	whole.Result(wholeOut)

	piecewise := New()
	piecewise.Update(msg[:64])
	piecewise.Update(msg[64:100])
	piecewise.Update(msg[100:])
	pieceOut := make([]byte, 64)
	piecewise.Result(pieceOut)

	require.Equal(t, wholeOut, pieceOut)
}

func TestHashInterface(t *testing.T) {
	d := New()
	n, err := d.Write([]byte("abc"))
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, 64, d.Size())

	sum := d.Sum(nil)
	require.Len(t, sum, 64)
}
