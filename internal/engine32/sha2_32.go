package engine32

// SHA2Words is the number of chaining-value words shared by SHA-224 and
// SHA-256 (the former simply truncates the serialized output).
const SHA2Words = 8

// SHA256IV is the FIPS 180-4 §5.3.3 initial chaining value for SHA-256.
var SHA256IV = [SHA2Words]uint32{
	0x6A09E667, 0xBB67AE85, 0x3C6EF372, 0xA54FF53A,
	0x510E527F, 0x9B05688C, 0x1F83D9AB, 0x5BE0CD19,
}

// SHA224IV is the FIPS 180-4 §5.3.2 initial chaining value for SHA-224.
var SHA224IV = [SHA2Words]uint32{
	0xC1059ED8, 0x367CD507, 0x3070DD17, 0xF70E5939,
	0xFFC00B31, 0x68581511, 0x64F98FA7, 0xBEFA4FA4,
}

// sha2K holds the 64 FIPS 180-4 SHA-256 round constants: the first 32 bits
// of the fractional parts of the cube roots of the first 64 primes.
var sha2K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

func sha2SmallSigma0(x uint32) uint32 {
	return rotr(x, 7) ^ rotr(x, 18) ^ shr(x, 3)
}

func sha2SmallSigma1(x uint32) uint32 {
	return rotr(x, 17) ^ rotr(x, 19) ^ shr(x, 10)
}

func sha2BigSigma0(x uint32) uint32 {
	return rotr(x, 2) ^ rotr(x, 13) ^ rotr(x, 22)
}

func sha2BigSigma1(x uint32) uint32 {
	return rotr(x, 6) ^ rotr(x, 11) ^ rotr(x, 25)
}

func sha2Ch(x, y, z uint32) uint32 {
	return (x & y) ^ (^x & z)
}

func sha2Maj(x, y, z uint32) uint32 {
	return (x & y) ^ (y & z) ^ (x & z)
}

// SHA2Compress mutates h in place by compressing one 512-bit block, per
// FIPS 180-4 §6.2.2. The same round function drives both SHA-224 and
// SHA-256; they differ only in initial chaining value and output
// truncation, both handled above the engine.
func SHA2Compress(h *[SHA2Words]uint32, block []byte) {
	var w [64]uint32
	for j := 0; j < 16; j++ {
		w[j] = beWord(block[j*4:])
	}
	for j := 16; j < 64; j++ {
		w[j] = sha2SmallSigma1(w[j-2]) + w[j-7] + sha2SmallSigma0(w[j-15]) + w[j-16]
	}

	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
	for t := 0; t < 64; t++ {
		t1 := hh + sha2BigSigma1(e) + sha2Ch(e, f, g) + sha2K[t] + w[t]
		t2 := sha2BigSigma0(a) + sha2Maj(a, b, c)
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

// SHA2Sum serializes h to its 32-byte big-endian digest. Callers truncate
// for SHA-224 (28 bytes).
func SHA2Sum(h *[SHA2Words]uint32) []byte {
	out := make([]byte, SHA2Words*WordBytes)
	for i, word := range h {
		putBEWord(out[i*WordBytes:], word)
	}
	return out
}
