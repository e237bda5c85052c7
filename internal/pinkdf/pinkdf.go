// Package pinkdf stretches PINs into key material with Argon2.
package pinkdf

import (
	"fmt"

	"golang.org/x/crypto/argon2"
)

// The supported Argon2 variants.
const (
	Argon2id = "argon2id"
	Argon2i  = "argon2i"
)

// Derive returns an n-byte block derived from the PIN and salt using the given
// Argon2 variant and cost parameters. Identical inputs always produce
// identical blocks.
//
// The argon2 package reports unusable parameters and failed working-memory
// allocation by panicking; Derive converts those panics into errors so a
// failed derivation doesn't take the caller down with it.
func Derive(variant string, pin, salt []byte, time, memory uint32, parallelism uint8, n uint32) (block []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			block, err = nil, fmt.Errorf("argon2: %v", r)
		}
	}()

	switch variant {
	case Argon2id:
		return argon2.IDKey(pin, salt, time, memory, parallelism, n), nil
	case Argon2i:
		return argon2.Key(pin, salt, time, memory, parallelism, n), nil
	default:
		return nil, fmt.Errorf("unknown argon2 variant %q", variant)
	}
}
