package replicator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplicate_CreatesNestedDirs(t *testing.T) {
	dest := t.TempDir()

	created, err := Replicate(dest, []string{
		"a",
		filepath.Join("a", "b"),
		filepath.Join("a", "b", "c"),
		"d",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, created)

	for _, dir := range []string{"a", "a/b", "a/b/c", "d"} {
		info, err := os.Stat(filepath.Join(dest, filepath.FromSlash(dir)))
		require.NoError(t, err, "expected %s to exist", dir)
		assert.True(t, info.IsDir())
	}
}

func TestReplicate_ExistingDirsLeftUntouched(t *testing.T) {
	dest := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dest, "a", "b"), 0755))

	created, err := Replicate(dest, []string{"a", filepath.Join("a", "b"), "c"})
	require.NoError(t, err)
	assert.Equal(t, 1, created)
}

func TestReplicate_SecondRunCreatesNothing(t *testing.T) {
	dest := t.TempDir()
	dirs := []string{"a", filepath.Join("a", "b")}

	_, err := Replicate(dest, dirs)
	require.NoError(t, err)

	created, err := Replicate(dest, dirs)
	require.NoError(t, err)
	assert.Zero(t, created)
}

// A file occupying a directory's path is a structural failure and aborts
// the replication.
func TestReplicate_FileInTheWayFails(t *testing.T) {
	dest := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dest, "a"), []byte("x"), 0644))

	_, err := Replicate(dest, []string{"a"})
	assert.Error(t, err)
}

func TestReplicate_NoDirs(t *testing.T) {
	created, err := Replicate(t.TempDir(), nil)

	require.NoError(t, err)
	assert.Zero(t, created)
}
