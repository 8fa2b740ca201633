package fs

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tally-labs/tally/internal/ports"
)

// Watcher monitors a value file via fsnotify and invokes a callback when it
// changes. Events are debounced so editors that write in multiple steps
// trigger only one recompute.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   ports.Logger

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher creates a Watcher for the given file path.
func NewWatcher(path string, debounce time.Duration, logger ports.Logger) *Watcher {
	return &Watcher{
		path:     path,
		debounce: debounce,
		logger:   logger,
	}
}

// Run watches the file's directory and calls onChange after each debounced
// write or create event on the file. It blocks until ctx is canceled.
//
// The directory is watched rather than the file itself so rename-based
// atomic writes keep delivering events.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return err
	}

	w.logger.Info("watching value file", ports.String("path", w.path))

	for {
		select {
		case <-ctx.Done():
			w.stopTimer()
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule(onChange)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", ports.Err(err))
		}
	}
}

// schedule arms the debounce timer, replacing any pending one.
func (w *Watcher) schedule(onChange func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, onChange)
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}
