// Package watch reruns a regeneration whenever one of its input files
// changes.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce is the quiet period after the last change before a
// regeneration starts.
const DefaultDebounce = 200 * time.Millisecond

// Func regenerates every output.
type Func func(ctx context.Context) error

// Watcher serializes regenerations triggered by input changes.
type Watcher struct {
	watcher  *fsnotify.Watcher
	inputs   map[string]bool
	debounce time.Duration
	run      Func
	logger   *logrus.Entry

	mu   sync.Mutex
	runs int
}

// New watches inputs. Their directories are watched rather than the files
// so editors saving through a rename are seen.
func New(inputs []string, debounce time.Duration, run Func, logger *logrus.Entry) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		logger = logrus.NewEntry(l)
	}

	w := &Watcher{
		watcher:  watcher,
		inputs:   make(map[string]bool, len(inputs)),
		debounce: debounce,
		run:      run,
		logger:   logger,
	}

	dirs := make(map[string]bool)

	for _, in := range inputs {
		path, err := filepath.Abs(in)
		if err != nil {
			watcher.Close()
			return nil, err
		}

		w.inputs[path] = true

		dir := filepath.Dir(path)
		if dirs[dir] {
			continue
		}

		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, err
		}

		dirs[dir] = true
		logger.Debugf("Watching directory: %s", dir)
	}

	return w, nil
}

// Run blocks until ctx is cancelled. Failed regenerations are logged and
// watching goes on.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			if !w.relevant(event) {
				continue
			}

			w.logger.Debugf("fsnotify event: %s op=%v", event.Name, event.Op)

			timer.Reset(w.debounce)
		case <-timer.C:
			w.regenerate(ctx)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}

			w.logger.Errorf("Watcher error: %v", err)
		case <-ctx.Done():
			timer.Stop()
			return nil
		}
	}
}

// Runs returns the number of regenerations started so far.
func (w *Watcher) Runs() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.runs
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}

	path, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}

	return w.inputs[path]
}

func (w *Watcher) regenerate(ctx context.Context) {
	w.mu.Lock()
	w.runs++
	w.mu.Unlock()

	start := time.Now()

	if err := w.run(ctx); err != nil {
		w.logger.WithError(err).Error("Regeneration failed")
		return
	}

	w.logger.WithField("elapsed", time.Since(start).Round(time.Millisecond)).Info("Regenerated")
}
