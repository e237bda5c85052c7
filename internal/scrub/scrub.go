// Package scrub zeroes buffers which held sensitive material.
package scrub

// Bytes overwrites the given slice with zeros. It does nothing for a nil
// slice.
func Bytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
