package gosha

import (
	"github.com/dhing1024/gosha/internal/engine32"
	"github.com/dhing1024/gosha/internal/engine64"
)

// Name identifies one of the seven FIPS 180-4 SHA variants.
type Name string

// The seven variant names accepted by NewHasher.
const (
	SHA1       Name = "SHA-1"
	SHA224     Name = "SHA-224"
	SHA256     Name = "SHA-256"
	SHA384     Name = "SHA-384"
	SHA512     Name = "SHA-512"
	SHA512_224 Name = "SHA-512/224"
	SHA512_256 Name = "SHA-512/256"
)

// descriptor is the immutable, per-variant parameterization: block size,
// length-field size, output truncation, and how to build a fresh engine.
// One descriptor exists per variant name and is shared by every Hasher
// constructed for that name.
type descriptor struct {
	name          Name
	blockBytes    int
	lenFieldBytes int
	outBytes      int
	newEngine     func() engine
}

var registry map[Name]*descriptor

func init() {
	registry = map[Name]*descriptor{
		SHA1: {
			name: SHA1, blockBytes: 64, lenFieldBytes: 8, outBytes: 20,
			newEngine: func() engine { return newSHA1Engine() },
		},
		SHA224: {
			name: SHA224, blockBytes: 64, lenFieldBytes: 8, outBytes: 28,
			newEngine: func() engine { return newSHA2_32Engine(engine32.SHA224IV) },
		},
		SHA256: {
			name: SHA256, blockBytes: 64, lenFieldBytes: 8, outBytes: 32,
			newEngine: func() engine { return newSHA2_32Engine(engine32.SHA256IV) },
		},
		SHA384: {
			name: SHA384, blockBytes: 128, lenFieldBytes: 16, outBytes: 48,
			newEngine: func() engine { return newSHA2_64Engine(engine64.SHA384IV) },
		},
		SHA512: {
			name: SHA512, blockBytes: 128, lenFieldBytes: 16, outBytes: 64,
			newEngine: func() engine { return newSHA2_64Engine(engine64.SHA512IV) },
		},
		SHA512_224: {
			name: SHA512_224, blockBytes: 128, lenFieldBytes: 16, outBytes: 28,
			newEngine: func() engine { return newSHA2_64Engine(engine64.SHA512_224IV()) },
		},
		SHA512_256: {
			name: SHA512_256, blockBytes: 128, lenFieldBytes: 16, outBytes: 32,
			newEngine: func() engine { return newSHA2_64Engine(engine64.SHA512_256IV()) },
		},
	}
}

// lookup returns the descriptor for name, or an InvalidVariantError.
func lookup(name Name) (*descriptor, error) {
	d, ok := registry[name]
	if !ok {
		return nil, &InvalidVariantError{Name: name}
	}
	return d, nil
}
