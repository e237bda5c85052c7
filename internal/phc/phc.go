// Package phc encodes and decodes self-describing password hashes.
//
// The format is a PHC-style string:
//
//     $<algorithm>$v=<version>$<name=value{,name=value}>$<salt>$<digest>
//
// where the salt and digest are unpadded standard base64 and parameter values
// are decimal. The algorithm tag is an open set: this package carries the
// structure, not the semantics, so callers can register new variants without
// breaking the decoding of old ones.
//
// Decoding is strict. A string which does not match the grammar exactly --
// wrong field count, padding or junk in the base64 segments, non-decimal
// values, trailing garbage -- is rejected rather than partially parsed.
package phc

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed is returned when a string does not match the hash grammar.
var ErrMalformed = errors.New("malformed hash string")

// A Param is a single named cost parameter.
type Param struct {
	Name  string
	Value uint32
}

// A Hash is the decoded form of an encoded hash string.
type Hash struct {
	Algorithm string  // The algorithm tag, e.g. "argon2id".
	Version   int     // The algorithm version.
	Params    []Param // The cost parameters, in encoded order.
	Salt      []byte
	Digest    []byte
}

// Param returns the value of the named parameter.
func (h *Hash) Param(name string) (uint32, bool) {
	for _, p := range h.Params {
		if p.Name == name {
			return p.Value, true
		}
	}

	return 0, false
}

// Encode returns the hash as a string.
func Encode(h *Hash) string {
	params := make([]string, len(h.Params))
	for i, p := range h.Params {
		params[i] = fmt.Sprintf("%s=%d", p.Name, p.Value)
	}

	return fmt.Sprintf("$%s$v=%d$%s$%s$%s",
		h.Algorithm, h.Version, strings.Join(params, ","),
		base64.RawStdEncoding.EncodeToString(h.Salt),
		base64.RawStdEncoding.EncodeToString(h.Digest))
}

// Decode parses an encoded hash string. It returns an error wrapping
// ErrMalformed if the string does not match the grammar.
func Decode(s string) (*Hash, error) {
	fields := strings.Split(s, "$")
	if len(fields) != 6 || fields[0] != "" {
		return nil, fmt.Errorf("%w: expected 5 $-delimited fields", ErrMalformed)
	}

	if !validTag(fields[1]) {
		return nil, fmt.Errorf("%w: bad algorithm tag", ErrMalformed)
	}

	version, err := parseVersion(fields[2])
	if err != nil {
		return nil, err
	}

	params, err := parseParams(fields[3])
	if err != nil {
		return nil, err
	}

	salt, err := base64.RawStdEncoding.DecodeString(fields[4])
	if err != nil || len(salt) == 0 {
		return nil, fmt.Errorf("%w: bad salt", ErrMalformed)
	}

	digest, err := base64.RawStdEncoding.DecodeString(fields[5])
	if err != nil || len(digest) == 0 {
		return nil, fmt.Errorf("%w: bad digest", ErrMalformed)
	}

	return &Hash{
		Algorithm: fields[1],
		Version:   version,
		Params:    params,
		Salt:      salt,
		Digest:    digest,
	}, nil
}

func parseVersion(s string) (int, error) {
	if !strings.HasPrefix(s, "v=") {
		return 0, fmt.Errorf("%w: bad version field", ErrMalformed)
	}

	v, err := strconv.ParseUint(s[2:], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: bad version field", ErrMalformed)
	}

	return int(v), nil
}

func parseParams(s string) ([]Param, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty parameter field", ErrMalformed)
	}

	pairs := strings.Split(s, ",")
	params := make([]Param, len(pairs))

	for i, pair := range pairs {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 || !validName(kv[0]) {
			return nil, fmt.Errorf("%w: bad parameter %q", ErrMalformed, pair)
		}

		v, err := strconv.ParseUint(kv[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: bad parameter %q", ErrMalformed, pair)
		}

		for _, p := range params[:i] {
			if p.Name == kv[0] {
				return nil, fmt.Errorf("%w: duplicate parameter %q", ErrMalformed, kv[0])
			}
		}

		params[i] = Param{Name: kv[0], Value: uint32(v)}
	}

	return params, nil
}

// validTag reports whether s is a plausible algorithm tag: non-empty lowercase
// letters, digits, and dashes.
func validTag(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !('a' <= r && r <= 'z') && !('0' <= r && r <= '9') && r != '-' {
			return false
		}
	}

	return true
}

// validName reports whether s is a valid parameter name: non-empty lowercase
// letters.
func validName(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !('a' <= r && r <= 'z') {
			return false
		}
	}

	return true
}
