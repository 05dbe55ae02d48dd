package engine64

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func pad1024(msg []byte) []byte {
	nbits := uint64(len(msg)) * 8
	padded := append([]byte{}, msg...)
	padded = append(padded, 0x80)
	for (len(padded)*8+128)%1024 != 0 {
		padded = append(padded, 0)
	}
	lenField := make([]byte, 16)
	putBEWord(lenField[8:], nbits)
	padded = append(padded, lenField...)
	return padded
}

func compressAll(h [Words]uint64, padded []byte) [Words]uint64 {
	for off := 0; off < len(padded); off += BlockBytes {
		Compress(&h, padded[off:off+BlockBytes])
	}
	return h
}

func TestSHA512KnownAnswer(t *testing.T) {
	h := compressAll(SHA512IV, pad1024([]byte("abc")))
	require.Equal(t,
		"ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
		hex.EncodeToString(Sum(&h)),
	)
}

func TestSHA384KnownAnswer(t *testing.T) {
	h := compressAll(SHA384IV, pad1024([]byte("abc")))
	require.Equal(t,
		"cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7",
		hex.EncodeToString(Sum(&h))[:96],
	)
}

func TestSHA512_224KnownAnswer(t *testing.T) {
	h := compressAll(SHA512_224IV(), pad1024([]byte("abc")))
	require.Equal(t,
		"4634270f707b6a54daae7530460842e20e37ed265ceee9a43e8924aa",
		hex.EncodeToString(Sum(&h))[:56],
	)
}

func TestSHA512_256KnownAnswer(t *testing.T) {
	h := compressAll(SHA512_256IV(), pad1024([]byte("abc")))
	require.Equal(t,
		"53048e2681941ef99b2e29b76b4c7dabe4c2d0c634fc6d46e0e2f13107e7af23",
		hex.EncodeToString(Sum(&h))[:64],
	)
}

func TestSHA512MultiBlock(t *testing.T) {
	// A message long enough to force two 1024-bit blocks.
	msg := make([]byte, 200)
	for i := range msg {
		msg[i] = byte(i)
	}
	h := compressAll(SHA512IV, pad1024(msg))
	require.Len(t, Sum(&h), 64)
}
