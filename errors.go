package gosha

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrOutputUnavailable is returned by CurrentOutput when no Digest has
// succeeded since construction or the last invalidating Update/Reset.
var ErrOutputUnavailable = errors.New("gosha: no digest available; call Digest or re-Digest after the last Update")

// ErrInputTooLong is returned when the cumulative bit count absorbed by a
// hasher would no longer fit in its variant's length field (2^64 bits for
// the 32-bit engines, 2^128 bits for the 64-bit engines).
var ErrInputTooLong = errors.New("gosha: input exceeds the variant's length-field capacity")

// InvalidVariantError is returned by NewHasher when asked to construct an
// unknown variant name.
type InvalidVariantError struct {
	Name Name
}

func (e *InvalidVariantError) Error() string {
	return fmt.Sprintf("gosha: unknown variant %q", string(e.Name))
}
