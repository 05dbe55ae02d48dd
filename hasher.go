package gosha

import (
	"encoding/hex"

	"github.com/dhing1024/gosha/internal/frame"
)

// Hasher is a streaming FIPS 180-4 hash instance for one variant. A
// Hasher is not safe for concurrent use by multiple goroutines; distinct
// Hasher instances share no mutable state and may be used independently.
type Hasher struct {
	descriptor *descriptor
	eng        engine
	frame      *frame.Frame

	// input accumulates every byte ever passed to Update, for the
	// optional CurrentInput accessor. This is the only part of a
	// Hasher whose memory grows with total input rather than staying
	// bounded to one block; see spec §5.
	input []byte

	verbosity int
	log       Logger

	cachedOutput string
	outputValid  bool
}

// Option configures a Hasher at construction time.
type Option func(*Hasher)

// WithVerbosity sets the diagnostic verbosity level (0–5). Levels above
// zero cause the Hasher to report construction, finalization and digest
// events to its Logger; levels above one also report each Update. No
// per-block or per-round events are reported, and the compression inner
// loop never branches on verbosity.
func WithVerbosity(level int) Option {
	return func(h *Hasher) { h.verbosity = level }
}

// WithLogger installs the diagnostic sink events are reported to. The
// default is a no-op logger, so omitting this option costs nothing.
// *zap.SugaredLogger satisfies Logger directly.
func WithLogger(l Logger) Option {
	return func(h *Hasher) { h.log = l }
}

// NewHasher constructs a Hasher for the named variant. It returns an
// *InvalidVariantError if name is not one of the seven variants in this
// package's constants.
func NewHasher(name Name, opts ...Option) (*Hasher, error) {
	d, err := lookup(name)
	if err != nil {
		return nil, err
	}

	h := &Hasher{
		descriptor: d,
		log:        defaultLogger,
	}
	for _, opt := range opts {
		opt(h)
	}

	h.eng = d.newEngine()
	h.frame = frame.New(d.blockBytes, d.lenFieldBytes, h.eng.compress)

	if h.verbosity > 0 {
		h.log.Debugf("gosha: constructed %s hasher (block=%dB, length-field=%dB, output=%dB)",
			d.name, d.blockBytes, d.lenFieldBytes, d.outBytes)
	}

	return h, nil
}

// Update appends data to the accumulated input stream. Any whole blocks
// the new data completes are compressed immediately. Calling Update
// invalidates any previously cached Digest output.
func (h *Hasher) Update(data []byte) {
	h.input = append(h.input, data...)
	h.frame.Absorb(data)
	h.outputValid = false
	h.cachedOutput = ""

	if h.verbosity > 1 {
		h.log.Debugf("gosha: %s absorbed %d bytes (%d total)", h.descriptor.name, len(data), len(h.input))
	}
}

// Digest computes and returns the lowercase hex digest of the input
// accumulated so far. It is a pure read: finalization runs against a
// clone of the engine and frame state, so a subsequent Update behaves
// exactly as if Digest had never been called. Returns ErrInputTooLong if
// the accumulated bit count no longer fits the variant's length field.
func (h *Hasher) Digest() (string, error) {
	if h.frame.Overflowed() {
		return "", ErrInputTooLong
	}

	engClone := h.eng.clone()
	frameClone := h.frame.Clone()
	frameClone.Compress = engClone.compress

	if h.verbosity > 0 {
		h.log.Debugf("gosha: %s finalizing over %d accumulated bytes", h.descriptor.name, len(h.input))
	}

	frameClone.Finalize()

	sum := engClone.sum()
	out := hex.EncodeToString(sum[:h.descriptor.outBytes])

	h.cachedOutput = out
	h.outputValid = true

	if h.verbosity > 0 {
		h.log.Debugf("gosha: %s digest = %s", h.descriptor.name, out)
	}

	return out, nil
}

// CurrentInput returns the full accumulated input since the last Reset.
// This accessor costs O(total input) bytes of memory regardless of the
// Hasher's own streaming footprint; omit calling Update at all if that
// cost matters and this accessor is never used.
func (h *Hasher) CurrentInput() []byte {
	out := make([]byte, len(h.input))
	copy(out, h.input)
	return out
}

// CurrentOutput returns the cached output of the last successful Digest
// call. It returns ErrOutputUnavailable if no Digest has succeeded since
// construction or the last invalidating Update/Reset.
func (h *Hasher) CurrentOutput() (string, error) {
	if !h.outputValid {
		return "", ErrOutputUnavailable
	}
	return h.cachedOutput, nil
}

// Reset restores the Hasher to its freshly constructed state: chaining
// value back to the variant's initial vector, pending buffer and
// accumulated input cleared, cached output invalidated. A Hasher may be
// reset and reused any number of times.
func (h *Hasher) Reset() {
	h.eng = h.descriptor.newEngine()
	h.frame.Reset()
	h.frame.Compress = h.eng.compress
	h.input = nil
	h.cachedOutput = ""
	h.outputValid = false
}

// OutputSize returns the variant's digest length in bytes (L_out).
func (h *Hasher) OutputSize() int { return h.descriptor.outBytes }

// BlockSize returns the variant's block size in bytes.
func (h *Hasher) BlockSize() int { return h.descriptor.blockBytes }
