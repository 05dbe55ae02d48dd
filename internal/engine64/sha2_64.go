package engine64

import "sync"

// SHA512IV is the FIPS 180-4 §5.3.5 initial chaining value for SHA-512.
var SHA512IV = [Words]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

// SHA384IV is the FIPS 180-4 §5.3.4 initial chaining value for SHA-384.
var SHA384IV = [Words]uint64{
	0xcbbb9d5dc1059ed8, 0x629a292a367cd507, 0x9159015a3070dd17, 0x152fecd8f70e5939,
	0x67332667ffc00b31, 0x8eb44a8768581511, 0xdb0c2e0d64f98fa7, 0x47b5481dbefa4fa4,
}

// sha2_64K holds the 80 FIPS 180-4 SHA-512 round constants: the first 64
// bits of the fractional parts of the cube roots of the first 80 primes.
var sha2_64K = [80]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}

func smallSigma0(x uint64) uint64 {
	return rotr(x, 1) ^ rotr(x, 8) ^ shr(x, 7)
}

func smallSigma1(x uint64) uint64 {
	return rotr(x, 19) ^ rotr(x, 61) ^ shr(x, 6)
}

func bigSigma0(x uint64) uint64 {
	return rotr(x, 28) ^ rotr(x, 34) ^ rotr(x, 39)
}

func bigSigma1(x uint64) uint64 {
	return rotr(x, 14) ^ rotr(x, 18) ^ rotr(x, 41)
}

func ch(x, y, z uint64) uint64 {
	return (x & y) ^ (^x & z)
}

func maj(x, y, z uint64) uint64 {
	return (x & y) ^ (y & z) ^ (x & z)
}

// Compress mutates h in place by compressing one 1024-bit block, per
// FIPS 180-4 §6.4.2. This single round function drives SHA-384, SHA-512,
// and both SHA-512/t truncations; they differ only in initial chaining
// value and output truncation, both handled above the engine.
func Compress(h *[Words]uint64, block []byte) {
	var w [80]uint64
	for j := 0; j < 16; j++ {
		w[j] = beWord(block[j*8:])
	}
	for j := 16; j < 80; j++ {
		w[j] = smallSigma1(w[j-2]) + w[j-7] + smallSigma0(w[j-15]) + w[j-16]
	}

	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
	for t := 0; t < 80; t++ {
		t1 := hh + bigSigma1(e) + ch(e, f, g) + sha2_64K[t] + w[t]
		t2 := bigSigma0(a) + maj(a, b, c)
		hh = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
	h[5] += f
	h[6] += g
	h[7] += hh
}

// Sum serializes h to its 64-byte big-endian digest. Callers truncate for
// SHA-384 (48 bytes), SHA-512/224 (28 bytes), and SHA-512/256 (32 bytes).
func Sum(h *[Words]uint64) []byte {
	out := make([]byte, Words*WordBytes)
	for i, word := range h {
		putBEWord(out[i*WordBytes:], word)
	}
	return out
}

var (
	sha512t224Once sync.Once
	sha512t224IV   [Words]uint64
	sha512t256Once sync.Once
	sha512t256IV   [Words]uint64
)

// sha512tSeedIV derives the SHA-512/t "seed" chaining value per FIPS 180-4
// §5.3.6: SHA-512's own IV with every word XORed by 0xa5a5a5a5a5a5a5a5.
func sha512tSeedIV() [Words]uint64 {
	var h [Words]uint64
	for i, word := range SHA512IV {
		h[i] = word ^ 0xa5a5a5a5a5a5a5a5
	}
	return h
}

// sha512tIV computes the initial chaining value for SHA-512/t by running
// SHA-512 (seeded per sha512tSeedIV) over the ASCII message "SHA-512/t",
// t given as a decimal string, and padding it exactly as a normal SHA-512
// message. This reuses Compress itself rather than hard-coding the
// resulting constants, per FIPS 180-4 §5.3.6.
func sha512tIV(t string) [Words]uint64 {
	h := sha512tSeedIV()

	msg := []byte("SHA-512/" + t)
	nbits := uint64(len(msg)) * 8

	padded := make([]byte, 0, BlockBytes*2)
	padded = append(padded, msg...)
	padded = append(padded, 0x80)
	for (len(padded)*8+128)%1024 != 0 {
		padded = append(padded, 0x00)
	}
	lenField := make([]byte, 16)
	putBEWord(lenField[8:], nbits)
	padded = append(padded, lenField...)

	for off := 0; off < len(padded); off += BlockBytes {
		Compress(&h, padded[off:off+BlockBytes])
	}
	return h
}

// SHA512_224IV returns the FIPS 180-4 §5.3.6 initial chaining value for
// SHA-512/224, computed on first use and cached.
func SHA512_224IV() [Words]uint64 {
	sha512t224Once.Do(func() {
		sha512t224IV = sha512tIV("224")
	})
	return sha512t224IV
}

// SHA512_256IV returns the FIPS 180-4 §5.3.6 initial chaining value for
// SHA-512/256, computed on first use and cached.
func SHA512_256IV() [Words]uint64 {
	sha512t256Once.Do(func() {
		sha512t256IV = sha512tIV("256")
	})
	return sha512t256IV
}
