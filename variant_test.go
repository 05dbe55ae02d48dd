package gosha

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlockAndOutputSizes(t *testing.T) {
	cases := []struct {
		name           Name
		blockBytes     int
		outBytes       int
	}{
		{SHA1, 64, 20},
		{SHA224, 64, 28},
		{SHA256, 64, 32},
		{SHA384, 128, 48},
		{SHA512, 128, 64},
		{SHA512_224, 128, 28},
		{SHA512_256, 128, 32},
	}
	for _, c := range cases {
		h, err := NewHasher(c.name)
		require.NoError(t, err)
		require.Equal(t, c.blockBytes, h.BlockSize())
		require.Equal(t, c.outBytes, h.OutputSize())
	}
}

func TestSHA512TIVsDifferFromSHA512AndFromEachOther(t *testing.T) {
	h224, err := NewHasher(SHA512_224)
	require.NoError(t, err)
	h256, err := NewHasher(SHA512_256)
	require.NoError(t, err)
	h512, err := NewHasher(SHA512)
	require.NoError(t, err)

	out224, _ := h224.Digest()
	out256, _ := h256.Digest()
	out512, _ := h512.Digest()

	require.NotEqual(t, out224, out512[:56])
	require.NotEqual(t, out256, out512[:64])
	require.NotEqual(t, out224, out256[:56])
}
