package pindrop

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math"

	"github.com/codahale/pindrop/internal/balloon"
	"github.com/codahale/pindrop/internal/phc"
	"github.com/codahale/pindrop/internal/pinkdf"
	"github.com/codahale/pindrop/internal/scrub"
	"golang.org/x/crypto/argon2"
)

// Algorithm identifies the memory-hard function behind a local hash. The set
// is open: new variants can be added without invalidating stored hashes, since
// every encoded hash names its own algorithm and parameters.
type Algorithm string

const (
	// Argon2id is the default algorithm for new local hashes.
	Argon2id Algorithm = "argon2id"

	// Argon2i is verified for compatibility with hashes produced by older
	// deployments.
	Argon2i Algorithm = "argon2i"

	// Balloon is memory-hard balloon hashing via STROBE. Experimental; there
	// is no standard balloon hashing algorithm, so hashes produced with it are
	// only verifiable by this library.
	Balloon Algorithm = "balloon"
)

// LocalHash returns a self-describing hash of the given PIN, suitable for
// verifying re-entered PINs without a remote round-trip. The result embeds the
// algorithm, its cost parameters, a freshly generated random salt, and the
// digest.
func LocalHash(pin []byte) (string, error) {
	return LocalHashUsing(Argon2id, pin)
}

// LocalHashUsing is LocalHash with an explicit algorithm variant.
func LocalHashUsing(alg Algorithm, pin []byte) (string, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	h, err := newLocalHash(alg, pin, salt)
	if err != nil {
		return "", err
	}

	return phc.Encode(h), nil
}

// VerifyLocalHash reports whether the given PIN matches the given encoded
// local hash, recomputing the digest with the parameters the hash itself
// carries. A wrong PIN is a false result, not an error; errors are reserved
// for hashes which do not parse (wrapping ErrInvalidLocalHash) or derivations
// which cannot run (wrapping ErrDerivationFailed).
func VerifyLocalHash(encoded string, pin []byte) (bool, error) {
	h, err := phc.Decode(encoded)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidLocalHash, err)
	}

	digest, err := recompute(h, pin)
	if err != nil {
		return false, err
	}

	defer scrub.Bytes(digest)

	// Compare the full digests in constant time to avoid leaking prefix
	// information.
	return subtle.ConstantTimeCompare(digest, h.Digest) == 1, nil
}

// newLocalHash derives a digest of pin with the given algorithm's current
// parameters and returns the filled-in codec structure.
func newLocalHash(alg Algorithm, pin, salt []byte) (*phc.Hash, error) {
	switch alg {
	case Argon2id, Argon2i:
		digest, err := pinkdf.Derive(string(alg), pin, salt,
			localParams.Time, localParams.Memory, localParams.Parallelism, localDigestSize)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDerivationFailed, err)
		}

		return &phc.Hash{
			Algorithm: string(alg),
			Version:   argon2.Version,
			Params: []phc.Param{
				{Name: "m", Value: localParams.Memory},
				{Name: "t", Value: localParams.Time},
				{Name: "p", Value: uint32(localParams.Parallelism)},
			},
			Salt:   salt,
			Digest: digest,
		}, nil
	case Balloon:
		return &phc.Hash{
			Algorithm: string(alg),
			Version:   balloon.Version,
			Params: []phc.Param{
				{Name: "s", Value: balloonSpace},
				{Name: "t", Value: balloonTime},
			},
			Salt:   salt,
			Digest: balloon.Hash(pin, salt, balloonSpace, balloonTime, localDigestSize),
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidLocalHash, alg)
	}
}

// recompute re-derives a digest of pin using the algorithm and parameters
// decoded from a stored hash.
func recompute(h *phc.Hash, pin []byte) ([]byte, error) {
	switch Algorithm(h.Algorithm) {
	case Argon2id, Argon2i:
		if h.Version != argon2.Version {
			return nil, fmt.Errorf("%w: unsupported argon2 version %d", ErrInvalidLocalHash, h.Version)
		}

		m, okM := h.Param("m")
		t, okT := h.Param("t")
		p, okP := h.Param("p")

		if !okM || !okT || !okP || len(h.Params) != 3 || p == 0 || p > math.MaxUint8 {
			return nil, fmt.Errorf("%w: bad argon2 parameters", ErrInvalidLocalHash)
		}

		digest, err := pinkdf.Derive(h.Algorithm, pin, h.Salt, t, m, uint8(p), uint32(len(h.Digest)))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDerivationFailed, err)
		}

		return digest, nil
	case Balloon:
		if h.Version != balloon.Version {
			return nil, fmt.Errorf("%w: unsupported balloon version %d", ErrInvalidLocalHash, h.Version)
		}

		s, okS := h.Param("s")
		t, okT := h.Param("t")

		if !okS || !okT || len(h.Params) != 2 || s < 2 || s > maxBalloonSpace || t == 0 {
			return nil, fmt.Errorf("%w: bad balloon parameters", ErrInvalidLocalHash)
		}

		return balloon.Hash(pin, h.Salt, int(s), int(t), len(h.Digest)), nil
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidLocalHash, h.Algorithm)
	}
}

// maxBalloonSpace bounds the buffer a decoded balloon hash can make us
// allocate.
const maxBalloonSpace = 1 << 20
