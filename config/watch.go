package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/lixenwraith/yes-or-no/core"
)

// debounceWindow is the quiet period that ends a burst of writes from one save
const debounceWindow = 100 * time.Millisecond

// Watcher reports changes to a single config file
// The parent directory is watched so atomic rename-on-save is seen
type Watcher struct {
	watcher *fsnotify.Watcher
	target  string
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher starts watching path
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	watcher := &Watcher{
		watcher: w,
		target:  abs,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	core.Go(watcher.run)
	return watcher, nil
}

// Close stops the watcher and closes both channels
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

// run emits one event per burst, debounceWindow after its last write,
// so the reload reads what the editor finished writing
func (w *Watcher) run() {
	defer close(w.done)

	settle := time.NewTimer(debounceWindow)
	settle.Stop()
	defer settle.Stop()

	var pending string
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.target {
				continue
			}
			pending = event.Name
			settle.Reset(debounceWindow)

		case <-settle.C:
			if pending == "" {
				continue
			}
			select {
			case w.Events <- pending:
			case <-w.closeCh:
				return
			}
			pending = ""

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
				// Consumer is behind, drop
			}

		case <-w.closeCh:
			return
		}
	}
}
