package copier

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"sampledir/core/logger"
	"sampledir/core/models"
)

// Copier copies selected files from the source root to their mirrored
// destination paths. Existing destination files are never overwritten.
type Copier struct {
	srcRoot  string
	destRoot string
}

func NewCopier(srcRoot, destRoot string) *Copier {
	return &Copier{
		srcRoot:  srcRoot,
		destRoot: destRoot,
	}
}

// CopyFile copies one selected file. It reports (true, nil) when the file
// was written, (false, nil) when the destination already existed, and
// (false, err) on any other failure. The destination directory is created
// if missing, which covers files directly under the source root.
func (c *Copier) CopyFile(entry models.FileEntry) (bool, error) {
	sourcePath := filepath.Join(c.srcRoot, entry.RelPath)
	targetPath := filepath.Join(c.destRoot, entry.RelPath)

	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		return false, fmt.Errorf("failed to create target directory: %w", err)
	}

	src, err := os.Open(sourcePath)
	if err != nil {
		return false, fmt.Errorf("failed to open source file %s: %w", sourcePath, err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return false, fmt.Errorf("failed to stat source file %s: %w", sourcePath, err)
	}

	// O_EXCL makes the no-overwrite guarantee atomic per destination path.
	dst, err := os.OpenFile(targetPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			logger.Debug("Destination already exists, skipping: %s", targetPath)
			return false, nil
		}
		return false, fmt.Errorf("failed to create destination file %s: %w", targetPath, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(targetPath)
		return false, fmt.Errorf("failed to copy %s: %w", entry.RelPath, err)
	}

	if err := dst.Close(); err != nil {
		return false, fmt.Errorf("failed to close destination file %s: %w", targetPath, err)
	}

	logger.Debug("Copied %s -> %s", sourcePath, targetPath)
	return true, nil
}
