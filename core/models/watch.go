package models

import (
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchState holds the shared pieces of a watch session: the fsnotify
// handle, the paths to ignore, and the debounce timer guarding OnChange.
type WatchState struct {
	Watcher       *fsnotify.Watcher
	RootDir       string
	ExcludePaths  []string
	DebounceTimer *time.Timer
	Mutex         sync.Mutex
	OnChange      func() error
}

func NewWatchState(rootDir string, excludePaths []string) (*WatchState, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &WatchState{
		Watcher:      w,
		RootDir:      rootDir,
		ExcludePaths: excludePaths,
		OnChange:     func() error { return fmt.Errorf("OnChange not set") },
	}, nil
}
