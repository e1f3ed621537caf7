package input

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamNilotpal/ipchecksum/internal/adapters/compression"
	cerrors "github.com/iamNilotpal/ipchecksum/pkg/errors"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func newZstd(t *testing.T) *compression.ZstdCompression {
	t.Helper()
	z, err := compression.NewZstdCompression(compression.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = z.Close() })
	return z
}

func TestLoadPlainFile(t *testing.T) {
	t.Parallel()
	path := writeFile(t, t.TempDir(), "a.bin", []byte{0x01, 0x02, 0x03})

	data, err := NewLoader(nil).Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, data)
}

func TestLoadEmptyFile(t *testing.T) {
	t.Parallel()
	path := writeFile(t, t.TempDir(), "empty.bin", nil)

	data, err := NewLoader(&Config{Compressor: newZstd(t)}).Load(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	_, err := NewLoader(nil).Load(context.Background(), filepath.Join(t.TempDir(), "nope.bin"))

	require.Error(t, err)
	assert.True(t, cerrors.IsCategory(err, cerrors.ErrorFileAccess))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadCancelled(t *testing.T) {
	t.Parallel()
	path := writeFile(t, t.TempDir(), "a.bin", []byte{0x01})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader(nil).Load(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, cerrors.IsCategory(err, cerrors.ErrorFileAccess))
}

func TestLoadCompressedFile(t *testing.T) {
	t.Parallel()
	z := newZstd(t)
	raw := []byte("The quick brown fox jumps over the lazy dog")
	packed, err := z.Compress(raw)
	require.NoError(t, err)
	path := writeFile(t, t.TempDir(), "fox.bin.zst", packed)

	data, err := NewLoader(&Config{Compressor: z}).Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, raw, data)

	// Without a compressor the frame is checksummed as-is.
	data, err = NewLoader(nil).Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, packed, data)
}

func TestLoadCorruptCompressedFile(t *testing.T) {
	t.Parallel()
	path := writeFile(t, t.TempDir(), "bad.zst", []byte{0x28, 0xB5, 0x2F, 0xFD, 0xFF, 0xFF})

	_, err := NewLoader(&Config{Compressor: newZstd(t)}).Load(context.Background(), path)
	require.Error(t, err)
	assert.True(t, cerrors.IsCategory(err, cerrors.ErrorCompression))
}
