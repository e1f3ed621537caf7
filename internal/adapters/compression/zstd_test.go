package compression

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/ipchecksum/internal/core/domain"
)

func newCodec(t *testing.T, opts Options) *ZstdCompression {
	t.Helper()
	z, err := NewZstdCompression(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = z.Close() })
	return z
}

func TestZstdDecompressRestoresInput(t *testing.T) {
	t.Parallel()
	z := newCodec(t, Options{})

	for _, data := range [][]byte{
		{},
		{0xAB},
		bytes.Repeat([]byte("internet checksum "), 1000),
	} {
		packed, err := z.Compress(data)
		require.NoError(t, err)
		assert.True(t, z.IsCompressed(packed))

		out, err := z.Decompress(packed)
		require.NoError(t, err)
		assert.Equal(t, len(data), len(out))
		assert.True(t, bytes.Equal(data, out))
	}
}

func TestZstdIsCompressed(t *testing.T) {
	t.Parallel()
	z := newCodec(t, Options{})

	assert.False(t, z.IsCompressed(nil))
	assert.False(t, z.IsCompressed([]byte{0x28, 0xB5, 0x2F}))
	assert.False(t, z.IsCompressed([]byte("plain text input")))
	assert.True(t, z.IsCompressed([]byte{0x28, 0xB5, 0x2F, 0xFD, 0x00}))
}

func TestZstdCorruptFrame(t *testing.T) {
	t.Parallel()
	z := newCodec(t, Options{})

	_, err := z.Decompress([]byte{0x28, 0xB5, 0x2F, 0xFD, 0xFF, 0xFF, 0xFF})
	assert.Error(t, err)
}

func TestZstdMaxDecodedSize(t *testing.T) {
	t.Parallel()
	big := newCodec(t, Options{})
	packed, err := big.Compress(make([]byte, 1<<20))
	require.NoError(t, err)

	small := newCodec(t, Options{MaxDecodedSize: 1 << 10})
	_, err = small.Decompress(packed)
	assert.Error(t, err)
}

func TestZstdClosed(t *testing.T) {
	t.Parallel()
	z, err := NewZstdCompression(Options{DecoderConcurrency: 1})
	require.NoError(t, err)
	require.NoError(t, z.Close())
	require.NoError(t, z.Close())

	_, err = z.Compress([]byte("x"))
	assert.ErrorIs(t, err, ErrClosed)
	_, err = z.Decompress([]byte("x"))
	assert.ErrorIs(t, err, ErrClosed)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	assert.NoError(t, Validate(nil))
	assert.NoError(t, Validate(DefaultOptions()))
	assert.NoError(t, Validate(&domain.CompressionOptions{Enable: false, DecoderConcurrency: 255}))

	if runtime.NumCPU() < 255 {
		err := Validate(&domain.CompressionOptions{Enable: true, DecoderConcurrency: 255})
		assert.Error(t, err)

		_, err = NewZstdCompression(Options{DecoderConcurrency: 255})
		assert.Error(t, err)
	}
}
