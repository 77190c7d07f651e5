package targets

import (
	"github.com/iaksit/linux-timemachine/lib"

	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalExistence(t *testing.T) {
	dir := t.TempDir()
	ops := newLocalOperations()

	sub := filepath.Join(dir, "snapshots")
	require.NoError(t, os.Mkdir(sub, 0o755))
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	link := filepath.Join(dir, timemachine.CurrentLink)
	require.NoError(t, os.Symlink("snapshots", link))

	ok, err := ops.PathExists(sub)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ops.DirectoryExists(sub)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ops.DirectoryExists(file)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = ops.SymlinkExists(link)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ops.SymlinkExists(file)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = ops.PathExists(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalSymlinkReplace(t *testing.T) {
	dir := t.TempDir()
	ops := newLocalOperations()
	link := filepath.Join(dir, timemachine.CurrentLink)

	require.NoError(t, ops.Symlink("2024-01-01__00-00-00", link))

	target, err := ops.ReadLink(link)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01__00-00-00", target)

	// Symlink does not overwrite: replacing goes through Remove first
	err = ops.Symlink("2024-01-02__00-00-00", link)
	assert.ErrorIs(t, err, timemachine.ErrLocalIO)

	require.NoError(t, ops.Remove(link))
	require.NoError(t, ops.Symlink("2024-01-02__00-00-00", link))

	target, err = ops.ReadLink(link)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02__00-00-00", target)
}

func TestLocalRenameCollision(t *testing.T) {
	dir := t.TempDir()
	ops := newLocalOperations()

	staging := filepath.Join(dir, timemachine.StagingDir)
	snapshot := filepath.Join(dir, "2024-01-01__00-00-00")

	require.NoError(t, os.Mkdir(staging, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(staging, "f"), []byte("x"), 0o644))
	require.NoError(t, ops.Rename(staging, snapshot))

	// Same-second collision: the published snapshot is populated, so a second
	// rename to the same name must fail instead of silently overwriting.
	require.NoError(t, os.Mkdir(staging, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(staging, "g"), []byte("y"), 0o644))
	err := ops.Rename(staging, snapshot)
	assert.ErrorIs(t, err, timemachine.ErrLocalIO)

	ok, err := ops.DirectoryExists(staging)
	require.NoError(t, err)
	assert.True(t, ok, "staging must survive a failed publish")
}

func TestLocalListDir(t *testing.T) {
	dir := t.TempDir()
	ops := newLocalOperations()

	require.NoError(t, os.Mkdir(filepath.Join(dir, "2024-01-01__00-00-00"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, timemachine.StagingDir), 0o755))
	require.NoError(t, os.Symlink("2024-01-01__00-00-00", filepath.Join(dir, timemachine.CurrentLink)))

	entries, err := ops.ListDir(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"2024-01-01__00-00-00", timemachine.StagingDir, timemachine.CurrentLink}, entries)

	_, err = ops.ListDir(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, timemachine.ErrLocalIO)
}
