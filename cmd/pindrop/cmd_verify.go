package main

import (
	"errors"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/codahale/pindrop"
	"github.com/codahale/pindrop/internal/scrub"
)

type verifyCmd struct {
	Hash string `arg:"" help:"The local verification hash, or the path to a file containing it."`
}

func (cmd *verifyCmd) Run(_ *kong.Context) error {
	encoded := cmd.Hash

	// Treat anything which doesn't look like a hash as a path.
	if !strings.HasPrefix(encoded, "$") {
		b, err := os.ReadFile(cmd.Hash)
		if err != nil {
			return err
		}

		encoded = strings.TrimSpace(string(b))
	}

	// Prompt for the PIN.
	pin, err := askPIN("Enter PIN: ")
	if err != nil {
		return err
	}

	defer scrub.Bytes(pin)

	// Verify the PIN against the hash. A mismatch is an error here: the exit
	// status is the result.
	ok, err := pindrop.VerifyLocalHash(encoded, pin)
	if err != nil {
		return err
	}

	if !ok {
		return errors.New("PIN didn't match")
	}

	return nil
}
