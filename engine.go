package gosha

import (
	"github.com/dhing1024/gosha/internal/engine32"
	"github.com/dhing1024/gosha/internal/engine64"
)

// engine is the compression-engine abstraction the variant registry
// selects between. Concrete implementations wrap a fixed-size chaining
// value (an array, not a slice), so a plain Go value copy — what clone
// does — is already a correct, independent deep copy. That sidesteps the
// original implementation's bug of resetting state to a shared reference
// to the initial vector instead of a fresh copy.
type engine interface {
	compress(block []byte)
	sum() []byte
	clone() engine
}

// --- SHA-1 --------------------------------------------------------------

type sha1Engine struct {
	h [engine32.SHA1Words]uint32
}

func newSHA1Engine() *sha1Engine {
	e := &sha1Engine{}
	e.h = engine32.SHA1IV
	return e
}

func (e *sha1Engine) compress(block []byte) { engine32.SHA1Compress(&e.h, block) }
func (e *sha1Engine) sum() []byte           { return engine32.SHA1Sum(&e.h) }
func (e *sha1Engine) clone() engine         { cp := *e; return &cp }

// --- SHA-2/32 (SHA-224, SHA-256) -----------------------------------------

type sha2_32Engine struct {
	h [engine32.SHA2Words]uint32
}

func newSHA2_32Engine(iv [engine32.SHA2Words]uint32) *sha2_32Engine {
	return &sha2_32Engine{h: iv}
}

func (e *sha2_32Engine) compress(block []byte) { engine32.SHA2Compress(&e.h, block) }
func (e *sha2_32Engine) sum() []byte           { return engine32.SHA2Sum(&e.h) }
func (e *sha2_32Engine) clone() engine         { cp := *e; return &cp }

// --- SHA-2/64 (SHA-384, SHA-512, SHA-512/224, SHA-512/256) ---------------

type sha2_64Engine struct {
	h [engine64.Words]uint64
}

func newSHA2_64Engine(iv [engine64.Words]uint64) *sha2_64Engine {
	return &sha2_64Engine{h: iv}
}

func (e *sha2_64Engine) compress(block []byte) { engine64.Compress(&e.h, block) }
func (e *sha2_64Engine) sum() []byte           { return engine64.Sum(&e.h) }
func (e *sha2_64Engine) clone() engine         { cp := *e; return &cp }
