package walker

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"sampledir/core/logger"
	"sampledir/core/models"
)

type SourceWalker interface {
	Walk() ([]string, []models.FileEntry, error)
}

// SourceWalkerImpl enumerates the tree under Root in a single pass.
// Directories and files come back as root-relative paths in filepath.WalkDir
// order, which visits each directory's entries lexically. That order is part
// of the contract: it decides which files win a sample group that has more
// candidates than the sample size.
type SourceWalkerImpl struct {
	Root         string
	ExcludeNames []string
	SkipPrefixes []string
}

func NewSourceWalker(root string, excludeNames, skipPrefixes []string) *SourceWalkerImpl {
	return &SourceWalkerImpl{
		Root:         root,
		ExcludeNames: excludeNames,
		SkipPrefixes: skipPrefixes,
	}
}

// Walk returns every directory under the root (excluding the root itself)
// and every file, both relative to the root.
func (w *SourceWalkerImpl) Walk() ([]string, []models.FileEntry, error) {
	var dirs []string
	var files []models.FileEntry

	err := filepath.WalkDir(w.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(w.Root, path)
		if err != nil {
			return err
		}
		if relPath == "." {
			return nil
		}

		if w.shouldSkip(relPath, d) {
			if d.IsDir() {
				logger.Debug("Excluding directory: %s", relPath)
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			dirs = append(dirs, relPath)
			return nil
		}

		files = append(files, models.NewFileEntry(relPath))
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to walk %s: %w", w.Root, err)
	}

	logger.Debug("Walked %s: %d directories, %d files", w.Root, len(dirs), len(files))
	return dirs, files, nil
}

func (w *SourceWalkerImpl) shouldSkip(relPath string, d fs.DirEntry) bool {
	for _, name := range w.ExcludeNames {
		if d.Name() == name {
			return true
		}
	}

	relPath = filepath.Clean(relPath)
	for _, prefix := range w.SkipPrefixes {
		prefix = filepath.Clean(prefix)
		if relPath == prefix || strings.HasPrefix(relPath, prefix+string(filepath.Separator)) {
			return true
		}
	}

	return false
}
