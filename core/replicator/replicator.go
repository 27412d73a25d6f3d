package replicator

import (
	"fmt"
	"os"
	"path/filepath"

	"sampledir/core/logger"
)

// Replicate mirrors the given root-relative directory paths under destRoot.
// Existing directories are left untouched. Any creation failure aborts the
// whole replication (fail-fast: the copy phase depends on the full tree
// being in place). Returns the number of directories actually created.
func Replicate(destRoot string, dirs []string) (int, error) {
	created := 0

	for _, dir := range dirs {
		target := filepath.Join(destRoot, dir)

		if info, err := os.Stat(target); err == nil {
			if !info.IsDir() {
				return created, fmt.Errorf("destination path %s exists and is not a directory", target)
			}
			logger.Debug("Directory already exists: %s", target)
			continue
		}

		if err := os.MkdirAll(target, 0755); err != nil {
			return created, fmt.Errorf("failed to create directory %s: %w", target, err)
		}
		logger.Debug("Created directory: %s", target)
		created++
	}

	return created, nil
}
