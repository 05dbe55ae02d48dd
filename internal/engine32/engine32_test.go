package engine32

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func padSHA1(msg []byte) []byte {
	nbits := uint64(len(msg)) * 8
	padded := append([]byte{}, msg...)
	padded = append(padded, 0x80)
	for (len(padded)*8+64)%512 != 0 {
		padded = append(padded, 0)
	}
	lenField := make([]byte, 8)
	putBEWord(lenField[4:], uint32(nbits))
	padded = append(padded, lenField...)
	return padded
}

func padSHA2_32(msg []byte) []byte {
	return padSHA1(msg) // identical framing parameters (64-byte block, 8-byte length field)
}

func TestSHA1KnownAnswer(t *testing.T) {
	h := SHA1IV
	padded := padSHA1([]byte("abc"))
	for off := 0; off < len(padded); off += BlockBytes {
		SHA1Compress(&h, padded[off:off+BlockBytes])
	}
	require.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d", hex.EncodeToString(SHA1Sum(&h)))
}

func TestSHA256KnownAnswer(t *testing.T) {
	h := SHA256IV
	padded := padSHA2_32([]byte("abc"))
	for off := 0; off < len(padded); off += BlockBytes {
		SHA2Compress(&h, padded[off:off+BlockBytes])
	}
	require.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		hex.EncodeToString(SHA2Sum(&h)),
	)
}

func TestSHA224KnownAnswer(t *testing.T) {
	h := SHA224IV
	padded := padSHA2_32([]byte("abc"))
	for off := 0; off < len(padded); off += BlockBytes {
		SHA2Compress(&h, padded[off:off+BlockBytes])
	}
	require.Equal(t,
		"23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7",
		hex.EncodeToString(SHA2Sum(&h))[:56],
	)
}

func TestSHA256EmptyInput(t *testing.T) {
	h := SHA256IV
	padded := padSHA2_32(nil)
	for off := 0; off < len(padded); off += BlockBytes {
		SHA2Compress(&h, padded[off:off+BlockBytes])
	}
	require.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		hex.EncodeToString(SHA2Sum(&h)),
	)
}
