package pindrop

import (
	"strings"
	"testing"

	"github.com/codahale/gubbins/assert"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLocalHashRoundTrip(t *testing.T) {
	t.Parallel()

	for _, alg := range []Algorithm{Argon2id, Argon2i, Balloon} {
		alg := alg

		t.Run(string(alg), func(t *testing.T) {
			t.Parallel()

			encoded, err := LocalHashUsing(alg, []byte("password"))
			if err != nil {
				t.Fatal(err)
			}

			ok, err := VerifyLocalHash(encoded, []byte("password"))
			if err != nil {
				t.Fatal(err)
			}

			assert.Equal(t, "correct PIN", true, ok)

			ok, err = VerifyLocalHash(encoded, []byte("badpassword"))
			if err != nil {
				t.Fatal(err)
			}

			assert.Equal(t, "wrong PIN", false, ok)
		})
	}
}

func TestLocalHashFormat(t *testing.T) {
	t.Parallel()

	encoded, err := LocalHash([]byte("password"))
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(encoded, "$argon2id$v=19$m=65536,t=3,p=1$") {
		t.Errorf("unexpected encoding: %q", encoded)
	}
}

func TestLocalHashSaltsDiffer(t *testing.T) {
	t.Parallel()

	a, err := LocalHash([]byte("password"))
	if err != nil {
		t.Fatal(err)
	}

	b, err := LocalHash([]byte("password"))
	if err != nil {
		t.Fatal(err)
	}

	if a == b {
		t.Error("local hashes of the same PIN should have distinct salts")
	}
}

func TestLocalHashUsingUnknownAlgorithm(t *testing.T) {
	t.Parallel()

	_, err := LocalHashUsing("bcrypt", []byte("password"))

	assert.Equal(t, "error", ErrInvalidLocalHash, err, cmpopts.EquateErrors())
}

func TestVerifyLocalHashMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		encoded string
	}{
		{name: "not a hash", encoded: "not-a-hash"},
		{name: "empty", encoded: ""},
		{name: "truncated", encoded: "$argon2id$v=19$m=65536,t=3,p=1"},
		{name: "empty digest", encoded: "$argon2id$v=19$m=65536,t=3,p=1$YWJjYWJjYWJj$"},
		{name: "bad salt encoding", encoded: "$argon2id$v=19$m=65536,t=3,p=1$***$YWJjYWJjYWJj"},
		{name: "unknown algorithm", encoded: "$scrypt$v=1$n=16384$YWJjYWJjYWJj$YWJjYWJjYWJj"},
		{name: "unknown argon2 version", encoded: "$argon2id$v=18$m=65536,t=3,p=1$YWJjYWJjYWJj$YWJjYWJjYWJj"},
		{name: "missing parameter", encoded: "$argon2id$v=19$m=65536,t=3$YWJjYWJjYWJj$YWJjYWJjYWJj"},
		{name: "extra parameter", encoded: "$argon2id$v=19$m=65536,t=3,p=1,q=2$YWJjYWJjYWJj$YWJjYWJjYWJj"},
		{name: "oversized parallelism", encoded: "$argon2id$v=19$m=65536,t=3,p=256$YWJjYWJjYWJj$YWJjYWJjYWJj"},
		{name: "non-decimal parameter", encoded: "$argon2id$v=19$m=64k,t=3,p=1$YWJjYWJjYWJj$YWJjYWJjYWJj"},
		{name: "oversized balloon space", encoded: "$balloon$v=1$s=4294967295,t=64$YWJjYWJjYWJj$YWJjYWJjYWJj"},
		{name: "trailing garbage", encoded: "$argon2id$v=19$m=65536,t=3,p=1$YWJjYWJjYWJj$YWJjYWJjYWJj$extra"},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := VerifyLocalHash(test.encoded, []byte("password"))

			assert.Equal(t, "error", ErrInvalidLocalHash, err, cmpopts.EquateErrors())
		})
	}
}

func TestVerifyLocalHashTamperedDigest(t *testing.T) {
	t.Parallel()

	encoded, err := LocalHash([]byte("password"))
	if err != nil {
		t.Fatal(err)
	}

	// Flip a character in the middle of the digest field. The result still
	// parses, so this is a mismatch, not an error.
	fields := strings.Split(encoded, "$")
	digest := []byte(fields[5])

	if digest[10] == 'A' {
		digest[10] = 'B'
	} else {
		digest[10] = 'A'
	}

	fields[5] = string(digest)

	ok, err := VerifyLocalHash(strings.Join(fields, "$"), []byte("password"))
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "tampered digest", false, ok)
}
