package blake2

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlake2bEmpty(t *testing.T) {
	d, err := New2b(nil, nil, nil, 64)
	require.NoError(t, err)

	out := make([]byte, 64)
	d.Result(out)

	want, err := hex.DecodeString("786a02f742015903c6c6fd852552d272912f4740e15847618a86e217f71f5419d25e1031afee585313896444934eb04b903a685b1448b755d56f701afe9be8")
	require.NoError(t, err)
	require.Equal(t, want, out)
}

func TestBlake2sEmpty(t *testing.T) {
	d, err := New2s(nil, nil, nil, 32)
	require.NoError(t, err)

	out := make([]byte, 32)
	d.Result(out)

	want, err := hex.DecodeString("69217a3079908094e11121d042354a7c1f55b6482ca1a51e1b250dfd1ed0eef9")
	require.NoError(t, err)
	require.Equal(t, want, out)
}

func TestBlake2bIncrementalMatchesOneShot(t *testing.T) {
	msg := []byte("the quick brown fox jumps over the lazy dog")

	oneShot, err := New2b(nil, nil, nil, 32)
	require.NoError(t, err)
	oneShot.Update(msg)
	var wantOut [32]byte
	oneShot.Result(wantOut[:])

	incremental, err := New2b(nil, nil, nil, 32)
	require.NoError(t, err)
	for _, b := range msg {
		incremental.Update([]byte{b})
	}
	var gotOut [32]byte
	incremental.Result(gotOut[:])

	require.Equal(t, wantOut, gotOut)
}

func TestBlake2bCloneIndependence(t *testing.T) {
	d, err := New2b(nil, nil, nil, 32)
	require.NoError(t, err)
	d.Update([]byte("shared prefix"))

	clone := d.Clone()
	d.Update([]byte(" original suffix"))
	clone.Update([]byte(" clone suffix"))

	var originalOut, cloneOut [32]byte
	d.Result(originalOut[:])
	clone.Result(cloneOut[:])

	require.NotEqual(t, originalOut, cloneOut)
}

func TestBlake2KeyTooLarge(t *testing.T) {
	_, err := New2b(make([]byte, maxKeyB+1), nil, nil, 32)
	require.Error(t, err)

	_, err = New2s(make([]byte, maxKeyS+1), nil, nil, 16)
	require.Error(t, err)
}
