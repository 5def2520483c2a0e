package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// FileWatcher calls back when watched files change, coalescing bursts of events
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	logger    *zap.Logger
	mu        sync.Mutex
	callbacks map[string]func(string)
	debounce  time.Duration
	timers    map[string]*time.Timer
}

// NewFileWatcher creates a new file watcher
func NewFileWatcher(debounce time.Duration, logger *zap.Logger) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &FileWatcher{
		watcher:   watcher,
		logger:    logger,
		callbacks: make(map[string]func(string)),
		debounce:  debounce,
		timers:    make(map[string]*time.Timer),
	}, nil
}

// Watch registers callback for each file. The parent directory is watched so that
// editors replacing the file on save are still noticed.
func (fw *FileWatcher) Watch(files []string, callback func(string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}

		if err := fw.watcher.Add(filepath.Dir(absPath)); err != nil {
			return fmt.Errorf("failed to watch %s: %w", absPath, err)
		}

		fw.callbacks[absPath] = callback
	}

	return nil
}

// Run dispatches events until ctx is done or the watcher is closed
func (fw *FileWatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				fw.handleFileChange(event.Name)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Warn("watcher error", zap.Error(err))
		}
	}
}

// handleFileChange restarts the debounce timer of a watched file
func (fw *FileWatcher) handleFileChange(filePath string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	callback, exists := fw.callbacks[filepath.Clean(filePath)]
	if !exists {
		return
	}

	if timer, exists := fw.timers[filePath]; exists {
		timer.Stop()
	}

	fw.logger.Debug("file changed", zap.String("path", filePath))
	fw.timers[filePath] = time.AfterFunc(fw.debounce, func() {
		callback(filePath)
	})
}

// Close stops the watcher and any pending callbacks
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	for _, timer := range fw.timers {
		timer.Stop()
	}
	fw.timers = make(map[string]*time.Timer)
	fw.mu.Unlock()

	return fw.watcher.Close()
}
