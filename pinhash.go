package pindrop

import (
	"fmt"

	"github.com/codahale/pindrop/internal/pinkdf"
	"github.com/codahale/pindrop/internal/scrub"
)

// PinHash is the result of stretching a PIN and a salt into key material. For
// a given PIN and salt the result is always byte-identical.
//
// Call Wipe once the keys have been handed off.
type PinHash struct {
	accessKey     [KeySize]byte
	encryptionKey [KeySize]byte
}

// Hash stretches the given PIN and salt into a PinHash using Argon2id with the
// deployment's fixed cost parameters. The salt must be exactly SaltSize bytes;
// any other length returns an error wrapping ErrInvalidSalt.
func Hash(pin, salt []byte) (*PinHash, error) {
	if err := validateSalt(salt); err != nil {
		return nil, err
	}

	// Derive both keys from a single 64-byte block, binding them to the same
	// memory-hard computation.
	block, err := pinkdf.Derive(pinkdf.Argon2id, pin, salt,
		hashParams.Time, hashParams.Memory, hashParams.Parallelism, 2*KeySize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDerivationFailed, err)
	}

	defer scrub.Bytes(block)

	// Split the block by position: the encryption key is the 32-byte prefix,
	// the access key the 32-byte suffix.
	var ph PinHash
	copy(ph.encryptionKey[:], block[:KeySize])
	copy(ph.accessKey[:], block[KeySize:])

	return &ph, nil
}

// AccessKey returns a copy of the key used to locate and authenticate to the
// remote custodian.
func (ph *PinHash) AccessKey() []byte {
	k := make([]byte, KeySize)
	copy(k, ph.accessKey[:])

	return k
}

// EncryptionKey returns a copy of the key used to encrypt and decrypt the
// recovered backup payload.
func (ph *PinHash) EncryptionKey() []byte {
	k := make([]byte, KeySize)
	copy(k, ph.encryptionKey[:])

	return k
}

// Wipe zeroes the backing key material. The receiver must not be used
// afterwards.
func (ph *PinHash) Wipe() {
	scrub.Bytes(ph.accessKey[:])
	scrub.Bytes(ph.encryptionKey[:])
}

func validateSalt(salt []byte) error {
	if len(salt) != SaltSize {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSalt, SaltSize, len(salt))
	}

	return nil
}
