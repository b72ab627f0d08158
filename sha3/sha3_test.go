package sha3

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVectorsEmpty(t *testing.T) {
	cases := []struct {
		new  func() *Digest
		want string
	}{
		{New256, "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
		{New512, "a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a615b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26"},
	}
	for _, c := range cases {
		d := c.new()
		out := make([]byte, d.OutputBytes())
		d.Result(out)

		want, err := hex.DecodeString(c.want)
		require.NoError(t, err)
		require.Equal(t, want, out)
	}
}

func TestOutputSizesDistinctRates(t *testing.T) {
	require.Equal(t, 144, New224().BlockSize())
	require.Equal(t, 136, New256().BlockSize())
	require.Equal(t, 104, New384().BlockSize())
	require.Equal(t, 72, New512().BlockSize())
}

func TestCloneIndependence(t *testing.T) {
	d := New256()
	d.Update([]byte("shared"))
	clone := d.Clone()

	d.Update([]byte(" original"))
	clone.Update([]byte(" clone"))

	a := make([]byte, 32)
	b := make([]byte, 32)
	d.Result(a)
	clone.Result(b)
	require.NotEqual(t, a, b)
}

func TestBlockAlignedInputMatchesBytewise(t *testing.T) {
	msg := make([]byte, 500)
	for i := range msg {
		msg[i] = byte(i)
	}

	whole := New256()
	whole.Update(msg)
	wholeOut := make([]byte, 32)
	whole.Result(wholeOut)

	piecewise := New256()
	for _, b := range msg {
		piecewise.Update([]byte{b})
	}
	pieceOut := make([]byte, 32)
	piecewise.Result(pieceOut)

	require.Equal(t, wholeOut, pieceOut)
}
