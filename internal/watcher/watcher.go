// Package watcher notices changes under the entry directories and
// requests a rescan, debounced so a burst of writes from a package
// manager collapses into one.
package watcher

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher wraps fsnotify over the entry directories. The rescan
// channel carries at most one pending request; a consumer that is
// busy ranking never queues a backlog.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	rescans  chan struct{}
	done     chan struct{}
}

// New watches dirs for entry file changes. Directories that cannot be
// watched are skipped; New fails only when none can. Close releases
// the watcher.
func New(dirs []string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	added := 0
	for _, d := range dirs {
		if err := fsw.Add(d); err == nil {
			added++
		}
	}
	if added == 0 {
		fsw.Close()
		return nil, errors.New("no watchable entry directories")
	}

	w := &Watcher{
		fsw:      fsw,
		debounce: debounce,
		rescans:  make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Rescans returns the channel that fires once changes have settled
func (w *Watcher) Rescans() <-chan struct{} { return w.rescans }

// Close stops the watcher
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) run() {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Stop()
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			select {
			case w.rescans <- struct{}{}:
			default:
			}

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

// relevant filters events down to entry file changes
func relevant(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Base(ev.Name)
	return strings.HasSuffix(name, ".desktop") || name == "entries.yaml"
}
