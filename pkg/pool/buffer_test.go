package pool

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferPoolGetIsEmpty(t *testing.T) {
	t.Parallel()
	bp := NewBufferPool(64)

	buf := bp.Get()
	assert.Equal(t, 0, buf.Len())
	assert.GreaterOrEqual(t, buf.Cap(), 64)

	buf.WriteString("Hex: FBFD\n")
	bp.Put(buf)

	again := bp.Get()
	assert.Equal(t, 0, again.Len())
}

func TestBufferPoolDropsLargeBuffers(t *testing.T) {
	t.Parallel()
	bp := NewBufferPool(8)
	big := bytes.NewBuffer(make([]byte, 0, 1024))
	bp.Put(big)
	bp.Put(nil)

	// Whatever comes back must be usable and empty.
	assert.Equal(t, 0, bp.Get().Len())
}

func TestBufferPoolWith(t *testing.T) {
	t.Parallel()
	bp := NewBufferPool(16)
	sentinel := errors.New("sentinel")

	var seen string
	err := bp.With(func(buf *bytes.Buffer) error {
		buf.WriteString("captured")
		seen = buf.String()
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, "captured", seen)
}
