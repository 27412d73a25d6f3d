package walker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestWalk_CollectsDirsAndFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "1.csv"))
	writeFile(t, filepath.Join(root, "a", "b", "2.txt"))
	writeFile(t, filepath.Join(root, "top.md"))

	w := NewSourceWalker(root, nil, nil)
	dirs, files, err := w.Walk()
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a", filepath.Join("a", "b")}, dirs)

	var relPaths []string
	for _, f := range files {
		relPaths = append(relPaths, f.RelPath)
	}
	assert.ElementsMatch(t, []string{
		filepath.Join("a", "1.csv"),
		filepath.Join("a", "b", "2.txt"),
		"top.md",
	}, relPaths)
}

// WalkDir visits entries lexically, so files come back in a deterministic
// order regardless of creation order.
func TestWalk_LexicalOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "3.csv"))
	writeFile(t, filepath.Join(root, "a", "1.csv"))
	writeFile(t, filepath.Join(root, "a", "2.csv"))

	w := NewSourceWalker(root, nil, nil)
	_, files, err := w.Walk()
	require.NoError(t, err)

	require.Len(t, files, 3)
	assert.Equal(t, filepath.Join("a", "1.csv"), files[0].RelPath)
	assert.Equal(t, filepath.Join("a", "2.csv"), files[1].RelPath)
	assert.Equal(t, filepath.Join("a", "3.csv"), files[2].RelPath)
}

func TestWalk_ExcludeNamesPruneSubtrees(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".git", "config"))
	writeFile(t, filepath.Join(root, "src", "main.go"))
	writeFile(t, filepath.Join(root, "src", ".DS_Store"))

	w := NewSourceWalker(root, []string{".git", ".DS_Store"}, nil)
	dirs, files, err := w.Walk()
	require.NoError(t, err)

	assert.Equal(t, []string{"src"}, dirs)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join("src", "main.go"), files[0].RelPath)
}

func TestWalk_SkipPrefixes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "data", "1.csv"))
	writeFile(t, filepath.Join(root, "out", "sampled", "1.csv"))

	w := NewSourceWalker(root, nil, []string{"out"})
	dirs, files, err := w.Walk()
	require.NoError(t, err)

	assert.Equal(t, []string{"data"}, dirs)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join("data", "1.csv"), files[0].RelPath)
}

func TestWalk_EmptyRoot(t *testing.T) {
	w := NewSourceWalker(t.TempDir(), nil, nil)
	dirs, files, err := w.Walk()

	require.NoError(t, err)
	assert.Empty(t, dirs)
	assert.Empty(t, files)
}

func TestWalk_MissingRootFails(t *testing.T) {
	w := NewSourceWalker(filepath.Join(t.TempDir(), "nope"), nil, nil)
	_, _, err := w.Walk()

	assert.Error(t, err)
}
