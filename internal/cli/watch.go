package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 300 * time.Millisecond

// watcher calls onChange after every (debounced) write to one file.
type watcher struct {
	file     string
	onChange func() error
	onError  func(error)
	fsw      *fsnotify.Watcher
}

// newWatcher watches the directory holding file, since editors often replace
// the file instead of writing it in place.
func newWatcher(file string, onChange func() error, onError func(error)) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	absPath, err := filepath.Abs(file)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("resolve %s: %w", file, err)
	}

	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(absPath), err)
	}

	return &watcher{
		file:     absPath,
		onChange: onChange,
		onError:  onError,
		fsw:      fsw,
	}, nil
}

// run blocks until ctx is done. Callback errors are reported through onError
// and do not stop the watch.
func (w *watcher) run(ctx context.Context) error {
	defer w.fsw.Close()

	timer := time.NewTimer(debounceDelay)
	timer.Stop()
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if path, err := filepath.Abs(event.Name); err != nil || path != w.file {
				continue
			}
			timer.Reset(debounceDelay)
			fire = timer.C

		case <-fire:
			fire = nil
			if err := w.onChange(); err != nil {
				w.onError(err)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.onError(err)
		}
	}
}
