package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is the quiet period after the last write before a reload.
const debounce = 100 * time.Millisecond

// Reload is delivered by a Watcher each time the watched file changes.
// Err is set when the new file could not be read or is invalid.
type Reload struct {
	Config FloppyConfig
	Err    error
}

// Watcher reloads a tuning file whenever it changes on disk.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Reloads chan Reload
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches path for changes. The parent directory is watched so
// that editors replacing the file are noticed too.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: cannot create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("config: cannot watch %s: %w", filepath.Dir(abs), err)
	}

	watcher := &Watcher{
		watcher: w,
		path:    abs,
		Reloads: make(chan Reload, 4),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops watching. Reloads is closed once the watcher goroutine exits.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.Reloads)

	// Reload on the trailing edge so a truncate+write pair yields one
	// reload of the final content.
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			timer.Reset(debounce)
		case <-timer.C:
			w.send(w.load())
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(Reload{Err: fmt.Errorf("config: watch error: %w", err)})
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) load() Reload {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return Reload{Err: fmt.Errorf("config: failed to read %s: %w", w.path, err)}
	}
	cfg, err := Parse(data)
	if err != nil {
		return Reload{Err: err}
	}
	return Reload{Config: cfg}
}

func (w *Watcher) send(r Reload) {
	select {
	case w.Reloads <- r:
	case <-w.closeCh:
	}
}
