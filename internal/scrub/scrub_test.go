package scrub

import (
	"testing"

	"github.com/codahale/gubbins/assert"
)

func TestBytes(t *testing.T) {
	t.Parallel()

	b := []byte("a very sensitive PIN")

	Bytes(b)

	assert.Equal(t, "scrubbed", make([]byte, len(b)), b)
}

func TestBytesNil(t *testing.T) {
	t.Parallel()

	Bytes(nil)
}
