package copier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sampledir/core/models"
)

func setup(t *testing.T) (string, string, *Copier) {
	t.Helper()
	src := t.TempDir()
	dest := t.TempDir()
	return src, dest, NewCopier(src, dest)
}

func TestCopyFile_CopiesContent(t *testing.T) {
	src, dest, c := setup(t)
	require.NoError(t, os.MkdirAll(filepath.Join(src, "a"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "a", "1.csv"), []byte("id,name\n"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dest, "a"), 0755))

	copied, err := c.CopyFile(models.NewFileEntry(filepath.Join("a", "1.csv")))
	require.NoError(t, err)
	assert.True(t, copied)

	data, err := os.ReadFile(filepath.Join(dest, "a", "1.csv"))
	require.NoError(t, err)
	assert.Equal(t, "id,name\n", string(data))
}

func TestCopyFile_NeverOverwrites(t *testing.T) {
	src, dest, c := setup(t)
	require.NoError(t, os.WriteFile(filepath.Join(src, "1.txt"), []byte("new"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dest, "1.txt"), []byte("old"), 0644))

	copied, err := c.CopyFile(models.NewFileEntry("1.txt"))
	require.NoError(t, err, "an existing destination is a skip, not a failure")
	assert.False(t, copied)

	data, err := os.ReadFile(filepath.Join(dest, "1.txt"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
}

// The copier creates missing destination directories itself, which covers
// files directly under the source root and anything the replication pass
// could not have known about.
func TestCopyFile_CreatesMissingDestinationDir(t *testing.T) {
	src, dest, c := setup(t)
	require.NoError(t, os.MkdirAll(filepath.Join(src, "deep", "er"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "deep", "er", "x.log"), []byte("x"), 0644))

	copied, err := c.CopyFile(models.NewFileEntry(filepath.Join("deep", "er", "x.log")))
	require.NoError(t, err)
	assert.True(t, copied)

	_, err = os.Stat(filepath.Join(dest, "deep", "er", "x.log"))
	assert.NoError(t, err)
}

func TestCopyFile_PreservesMode(t *testing.T) {
	src, dest, c := setup(t)
	require.NoError(t, os.WriteFile(filepath.Join(src, "run.sh"), []byte("#!/bin/sh\n"), 0755))

	copied, err := c.CopyFile(models.NewFileEntry("run.sh"))
	require.NoError(t, err)
	require.True(t, copied)

	info, err := os.Stat(filepath.Join(dest, "run.sh"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestCopyFile_MissingSourceFails(t *testing.T) {
	_, _, c := setup(t)

	copied, err := c.CopyFile(models.NewFileEntry("vanished.csv"))
	assert.Error(t, err)
	assert.False(t, copied)
}
