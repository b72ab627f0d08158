package tiger

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTigerEmpty(t *testing.T) {
	d := New()
	out := make([]byte, d.OutputBytes())
	d.Result(out)

	want, err := hex.DecodeString("3293AC630C13F0245F92BBB1766E16167A4E58492DDE73F0")
	require.NoError(t, err)
	require.Equal(t, want, out)
}

func TestTigerAndTiger2Differ(t *testing.T) {
	msg := []byte("abc")

	d1 := New()
	d1.Update(msg)
	out1 := make([]byte, d1.OutputBytes())
	d1.Result(out1)

	d2 := New2()
	d2.Update(msg)
	out2 := make([]byte, d2.OutputBytes())
	d2.Result(out2)

	require.NotEqual(t, out1, out2, "Tiger and Tiger2 differ only in padding, and should diverge")
}

func TestCloneIndependence(t *testing.T) {
	d := New()
	d.Update([]byte("shared prefix"))
	clone := d.Clone()

	d.Update([]byte(" original tail"))
	clone.Update([]byte(" clone tail"))

	a := make([]byte, 24)
	b := make([]byte, 24)
	d.Result(a)
	clone.Result(b)
	require.NotEqual(t, a, b)
}

func TestHashInterface(t *testing.T) {
	d := New()
	n, err := d.Write([]byte("abc"))
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, 24, d.Size())

	sum := d.Sum(nil)
	require.Len(t, sum, 24)
}
