// Package pindrop derives cryptographic keys from low-entropy PINs.
//
// A PIN and a 32-byte salt are stretched with a memory-hard function into two
// independent keys: an access key, used to locate and authenticate to a remote
// custodian holding an encrypted backup, and an encryption key, used to decrypt
// the backup once recovered. Both keys come from a single derivation, so an
// attacker must pay the full memory and time cost to learn either of them.
//
// Pindrop also produces local verification hashes: self-describing strings
// which embed the algorithm, its cost parameters, a random salt, and a digest,
// allowing a client to check a re-entered PIN without a network round-trip.
//
// All functions in this package are stateless and safe for concurrent use.
// Derivations are deliberately expensive -- a single call can take tens to
// hundreds of milliseconds and tens of megabytes of scratch memory -- so
// callers inside request-serving systems should run them on a bounded worker
// pool.
package pindrop

import "errors"

const (
	// SaltSize is the length of a salt in bytes.
	SaltSize = 32

	// KeySize is the length of the access key and the encryption key in bytes.
	KeySize = 32
)

// ErrInvalidSalt is returned when a caller-supplied salt is not exactly
// SaltSize bytes long.
var ErrInvalidSalt = errors.New("invalid salt")

// ErrInvalidLocalHash is returned when an encoded local hash does not parse or
// uses an algorithm this version cannot verify.
var ErrInvalidLocalHash = errors.New("invalid local hash")

// ErrDerivationFailed is returned when the memory-hard derivation could not
// run, e.g. because its working memory could not be allocated.
var ErrDerivationFailed = errors.New("derivation failed")
