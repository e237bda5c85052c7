// Package balloon implements memory-hard balloon hashing via STROBE.
//
// Given a PIN P, salt S, space parameter X, time parameter T, and digest size
// N, the protocol transcript is:
//
//     INIT('pindrop.balloon', level=256)
//     AD(LE_U32(X), meta=true)
//     AD(LE_U32(T), meta=true)
//     AD(LE_U32(N), meta=true)
//     KEY(P)
//     AD(S)
//
// The buffer of X 32-byte blocks is then filled and mixed per the balloon
// hashing algorithm, each block produced by:
//
//     AD(LE_U64(C))
//     AD(L)
//     AD(R)
//     PRF(32)
//
// with C a running counter and L, R the dependency blocks. Finally the last
// block keys the protocol and the digest is extracted:
//
//     KEY(B_x)
//     PRF(N)
//
// There is no standard balloon hashing algorithm, so this is an experimental
// local format: digests are only verifiable by this library.
//
// See https://eprint.iacr.org/2016/027.pdf
package balloon

import (
	"encoding/binary"

	"github.com/sammyne/strobe"
)

// Version is the format version of digests produced by this package.
const Version = 1

const (
	blockSize = 32 // The size of a buffer block in bytes.
	delta     = 3  // The number of pseudo-random dependencies mixed per block.
)

// Hash returns an n-byte digest of the PIN and salt, filling and mixing a
// buffer of space blocks over time rounds. Identical inputs always produce
// identical digests.
func Hash(pin, salt []byte, space, time, n int) []byte {
	w := newWalk(pin, salt, space, time, n)

	// Allocate the buffer and fill it sequentially.
	buf := make([]byte, space*blockSize)
	w.squeeze(block(buf, 0), nil, nil)

	for m := 1; m < space; m++ {
		w.squeeze(block(buf, m), block(buf, m-1), nil)
	}

	// Mix the buffer, hashing each block with its predecessor and with delta
	// pseudo-randomly chosen blocks.
	idx := make([]byte, blockSize)

	for t := 1; t < time; t++ {
		for m := 1; m < space; m++ {
			w.squeeze(block(buf, m), block(buf, m-1), block(buf, m))

			for i := 0; i < delta; i++ {
				// Derive a pseudo-random block index from the current
				// coordinates and the salt.
				binary.LittleEndian.PutUint32(idx[0:], uint32(t))
				binary.LittleEndian.PutUint32(idx[4:], uint32(m))
				binary.LittleEndian.PutUint32(idx[8:], uint32(i))
				w.squeeze(idx, salt, idx)

				other := int(binary.LittleEndian.Uint64(idx) % uint64(space))
				w.squeeze(block(buf, m), block(buf, other), nil)
			}
		}
	}

	// Key the protocol with the final block and extract the digest.
	must(w.st.KEY(block(buf, space-1), false))

	digest := make([]byte, n)
	must(w.st.PRF(digest, false))

	return digest
}

// A walk is the STROBE state threaded through one hash computation.
type walk struct {
	st  *strobe.Strobe
	ctr uint64
}

func newWalk(pin, salt []byte, space, time, n int) *walk {
	st, err := strobe.New("pindrop.balloon", strobe.Bit256)
	if err != nil {
		panic(err)
	}

	// Bind the cost parameters and digest size as metadata.
	must(st.AD(leU32(space), &strobe.Options{Meta: true}))
	must(st.AD(leU32(time), &strobe.Options{Meta: true}))
	must(st.AD(leU32(n), &strobe.Options{Meta: true}))

	// Key the protocol with a copy of the PIN; KEY modifies its argument.
	k := make([]byte, len(pin))
	copy(k, pin)
	must(st.KEY(k, false))

	// Bind the salt.
	must(st.AD(salt, &strobe.Options{}))

	return &walk{st: st}
}

// squeeze hashes the counter and the left and right blocks, then extracts a
// new block into dst.
func (w *walk) squeeze(dst, left, right []byte) {
	w.ctr++

	var ctr [8]byte
	binary.LittleEndian.PutUint64(ctr[:], w.ctr)

	must(w.st.AD(ctr[:], &strobe.Options{}))
	must(w.st.AD(left, &strobe.Options{}))
	must(w.st.AD(right, &strobe.Options{}))
	must(w.st.PRF(dst, false))
}

// block returns the m-th block of buf.
func block(buf []byte, m int) []byte {
	return buf[m*blockSize : (m+1)*blockSize]
}

func leU32(n int) []byte {
	var b [4]byte

	binary.LittleEndian.PutUint32(b[:], uint32(n))

	return b[:]
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
