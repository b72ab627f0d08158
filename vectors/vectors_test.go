package vectors

import (
	"crypto/md5"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeHexPrefix(t *testing.T) {
	b, err := Decode("hex:68656c6c6f")
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), b)
}

func TestDecodePlainString(t *testing.T) {
	b, err := Decode("hello")
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), b)
}

func TestDecodeRejectsInvalidHex(t *testing.T) {
	_, err := Decode("hex:zz")
	require.Error(t, err)
}

func TestLoadTestdataAgainstStdlibMD5(t *testing.T) {
	raw, err := os.ReadFile("testdata/md5.toml")
	require.NoError(t, err)

	f, err := Load(raw)
	require.NoError(t, err)
	require.NotEmpty(t, f.Tests)

	for _, c := range f.Tests {
		input, err := c.InputBytes()
		require.NoError(t, err)
		want, err := c.OutputBytes()
		require.NoError(t, err)

		sum := md5.Sum(input)
		require.Equal(t, want, sum[:])
	}
}
