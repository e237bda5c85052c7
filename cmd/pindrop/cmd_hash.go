package main

import (
	"encoding/hex"
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/codahale/pindrop"
	"github.com/codahale/pindrop/internal/scrub"
	"github.com/mr-tron/base58"
)

type hashCmd struct {
	Salt string `arg:"" help:"The salt as a hex string."`

	Hex bool `help:"Encode the keys as hex instead of base58."`
}

func (cmd *hashCmd) Run(_ *kong.Context) error {
	// Decode the salt.
	salt, err := hex.DecodeString(cmd.Salt)
	if err != nil {
		return fmt.Errorf("invalid salt: %w", err)
	}

	// Prompt for the PIN.
	pin, err := askPIN("Enter PIN: ")
	if err != nil {
		return err
	}

	defer scrub.Bytes(pin)

	// Derive the keys.
	ph, err := pindrop.Hash(pin, salt)
	if err != nil {
		return err
	}

	defer ph.Wipe()

	fmt.Printf("access key:     %s\n", cmd.encode(ph.AccessKey()))
	fmt.Printf("encryption key: %s\n", cmd.encode(ph.EncryptionKey()))

	return nil
}

func (cmd *hashCmd) encode(key []byte) string {
	if cmd.Hex {
		return hex.EncodeToString(key)
	}

	return base58.Encode(key)
}
