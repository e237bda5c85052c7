package pindrop

// Params contains the cost parameters of an Argon2 derivation.
type Params struct {
	Time, Memory uint32 // The time and memory parameters. Memory is in KiB.
	Parallelism  uint8  // The parallelism parameter.
}

// hashParams is the parameter set used for Hash. It is fixed for the
// deployment: the access key must be bit-identical across every client that
// derives it, so these values can never change without re-enrolling all
// backups.
var hashParams = Params{
	Time:        32,
	Memory:      16 * 1024, // 16MiB
	Parallelism: 1,
}

// localParams is the parameter set used for new Argon2 local hashes. Local
// verification runs on every PIN entry, so these are interactive-scale costs.
// They are embedded in each encoded hash, which makes them safe to raise:
// hashes produced under the old values still verify.
var localParams = Params{
	Time:        3,
	Memory:      64 * 1024, // 64MiB
	Parallelism: 1,
}

const (
	// The space and time parameters for new balloon local hashes.
	balloonSpace = 1024
	balloonTime  = 64

	// The digest length of a local hash in bytes.
	localDigestSize = 32
)
