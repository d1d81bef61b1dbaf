package atomicfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile_ReplacesContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "account_meta.txt")
	require.NoError(t, os.WriteFile(path, []byte("1001"), 0o600))

	require.NoError(t, WriteFile(path, []byte("1002"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1002", string(data))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestWriteFile_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "account_meta.txt")

	require.NoError(t, WriteFile(path, []byte("1001"), 0o644))

	matches, err := filepath.Glob(filepath.Join(dir, "*"+TempPattern))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "account_meta.txt")

	assert.Error(t, WriteFile(path, []byte("1001"), 0o644))
}
