package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"golang.org/x/term"
)

type cli struct {
	Hash      hashCmd      `cmd:"" help:"Derive the access and encryption keys from a PIN and salt."`
	LocalHash localHashCmd `cmd:"" name:"local-hash" help:"Create a local verification hash for a PIN."`
	Verify    verifyCmd    `cmd:"" help:"Verify a PIN against a local verification hash."`
}

func main() {
	var cli cli

	ctx := kong.Parse(&cli)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func askPIN(prompt string) ([]byte, error) {
	defer func() { _, _ = fmt.Fprintln(os.Stderr) }()

	_, _ = fmt.Fprint(os.Stderr, prompt)

	return term.ReadPassword(int(os.Stdin.Fd()))
}
