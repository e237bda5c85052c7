package main

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/codahale/pindrop"
	"github.com/codahale/pindrop/internal/scrub"
)

type localHashCmd struct {
	Algorithm string `enum:"argon2id,argon2i,balloon" default:"argon2id" help:"The memory-hard algorithm to use."`
}

func (cmd *localHashCmd) Run(_ *kong.Context) error {
	// Prompt for the PIN, twice.
	pin, err := askPIN("Enter PIN: ")
	if err != nil {
		return err
	}

	defer scrub.Bytes(pin)

	confirm, err := askPIN("Confirm PIN: ")
	if err != nil {
		return err
	}

	defer scrub.Bytes(confirm)

	if !bytes.Equal(pin, confirm) {
		return errors.New("PINs didn't match")
	}

	// Create and print the local verification hash.
	encoded, err := pindrop.LocalHashUsing(pindrop.Algorithm(cmd.Algorithm), pin)
	if err != nil {
		return err
	}

	fmt.Println(encoded)

	return nil
}
