package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce window for editor save bursts
const watchDebounce = 100 * time.Millisecond

// Watcher reports edits to a single config file. It watches the
// containing directory so atomic save strategies (write temp, rename
// over) are still seen. The game applies changes on the next match
// reset; a running tick never observes a config change.
type Watcher struct {
	Events chan string
	Errors chan error

	path    string
	fsw     *fsnotify.Watcher
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		path:    abs,
		fsw:     fsw,
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fsw.Close()
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	var lastEvent time.Time
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !w.matches(event.Name) {
				continue
			}
			now := time.Now()
			if now.Sub(lastEvent) < watchDebounce {
				continue
			}
			lastEvent = now
			select {
			case w.Events <- event.Name:
			default:
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) matches(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	return abs == w.path
}
