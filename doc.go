// Package gosha implements the FIPS 180-4 Secure Hash Standard family:
// SHA-1, SHA-224, SHA-256, SHA-384, SHA-512, SHA-512/224, and SHA-512/256.
//
// The package exposes a single streaming Hasher that can be constructed for
// any of the seven variants. SHA-1 is provided for interoperability only —
// it is cryptographically broken for collision resistance and should not be
// used for new designs requiring collision resistance.
package gosha
