package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"sampledir/core/logger"
	"sampledir/core/models"
)

const debounceDelay = 500 * time.Millisecond

// FileWatcher watches the source root and re-runs the sampling pass,
// debounced, whenever files appear or change. Re-runs are safe because the
// copier never overwrites an existing destination file.
type FileWatcher struct {
	State *models.WatchState
}

func NewFileWatcher(rootDir string, excludePaths []string) (*FileWatcher, error) {
	state, err := models.NewWatchState(rootDir, excludePaths)
	if err != nil {
		return nil, err
	}
	return &FileWatcher{State: state}, nil
}

func (fw *FileWatcher) Watch() error {
	if err := fw.addWatchersRecursively(fw.State.RootDir); err != nil {
		return fmt.Errorf("failed to add watchers: %w", err)
	}

	logger.Info("Watching %s for changes", fw.State.RootDir)

	for {
		select {
		case event, ok := <-fw.State.Watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if fw.shouldExcludePath(event.Name) {
				continue
			}

			logger.Debug("File event: %s %s", event.Op, event.Name)

			if event.Has(fsnotify.Create) {
				if stat, err := os.Stat(event.Name); err == nil && stat.IsDir() {
					logger.Debug("Adding watcher for new directory: %s", event.Name)
					fw.State.Watcher.Add(event.Name)
				}
			}

			fw.debounceResample()

		case err, ok := <-fw.State.Watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			logger.Error("Watcher error: %v", err)
		}
	}
}

func (fw *FileWatcher) debounceResample() {
	fw.State.Mutex.Lock()
	defer fw.State.Mutex.Unlock()

	if fw.State.DebounceTimer != nil {
		fw.State.DebounceTimer.Stop()
	}

	fw.State.DebounceTimer = time.AfterFunc(debounceDelay, func() {
		logger.Debug("File changes detected, resampling...")
		if err := fw.State.OnChange(); err != nil {
			logger.Error("Resample failed: %v", err)
		}
	})
}

func (fw *FileWatcher) Close() error {
	fw.State.Mutex.Lock()
	defer fw.State.Mutex.Unlock()

	if fw.State.DebounceTimer != nil {
		fw.State.DebounceTimer.Stop()
	}

	return fw.State.Watcher.Close()
}

func (fw *FileWatcher) shouldExcludePath(path string) bool {
	relPath, err := filepath.Rel(fw.State.RootDir, path)
	if err != nil {
		return false
	}

	relPath = filepath.Clean(relPath)

	for _, excludePath := range fw.State.ExcludePaths {
		excludePath = filepath.Clean(excludePath)

		if relPath == excludePath || filepath.Base(relPath) == excludePath {
			return true
		}
		if strings.HasPrefix(relPath, excludePath+string(filepath.Separator)) {
			return true
		}
	}

	return false
}

func (fw *FileWatcher) addWatchersRecursively(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			return nil
		}

		if fw.shouldExcludePath(path) {
			logger.Debug("Excluding directory: %s", path)
			return filepath.SkipDir
		}

		logger.Debug("Adding watcher for: %s", path)
		if err := fw.State.Watcher.Add(path); err != nil {
			return fmt.Errorf("failed to add watcher for %s: %w", path, err)
		}

		return nil
	})
}
