package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFileSystem(t *testing.T) {
	t.Parallel()
	lfs := NewLocalFileSystem()
	dir := t.TempDir()

	path := filepath.Join(dir, "nested", "b.bin")
	require.NoError(t, lfs.WriteFile(path, 0644, []byte{0x01, 0x02}))
	require.NoError(t, lfs.WriteFile(filepath.Join(dir, "nested", "a.bin"), 0644, nil))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested", "sub"), 0755))

	data, err := lfs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, data)

	names, err := lfs.ReadDir(filepath.Join(dir, "nested"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a.bin", "b.bin"}, names)

	f, err := lfs.Open(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = lfs.ReadDir(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
