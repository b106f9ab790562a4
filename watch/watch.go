// Package watch reloads LDtk projects when the editor saves them.
package watch

import (
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/milk9111/ldtk/config"
	"github.com/rs/zerolog"
)

// Watcher reports changed project files on Events. A path is reported once
// it has been quiet for the configured debounce, so an editor writing a file
// in several steps produces a single event.
type Watcher struct {
	watcher  *fsnotify.Watcher
	Events   chan string
	Errors   chan error
	closeCh  chan struct{}
	once     sync.Once
	debounce time.Duration
	exts     []string
	log      zerolog.Logger
}

func NewWatcher(cfg config.WatchConfig, log zerolog.Logger, dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	exts := make([]string, 0, len(cfg.Extensions))
	for _, ext := range cfg.Extensions {
		exts = append(exts, strings.ToLower(ext))
	}
	watcher := &Watcher{
		watcher:  w,
		Events:   make(chan string, 16),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
		debounce: cfg.Debounce,
		exts:     exts,
		log:      log,
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. Events and Errors are closed once the run loop
// has exited.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Errors)
	defer close(w.Events)

	due := make(map[string]time.Time)
	timer := time.NewTimer(time.Hour)
	timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !w.matches(event.Name) {
				continue
			}
			due[event.Name] = time.Now().Add(w.debounce)
			timer.Reset(w.untilNext(due))
		case <-timer.C:
			now := time.Now()
			var ready []string
			for name, at := range due {
				if !at.After(now) {
					ready = append(ready, name)
				}
			}
			slices.Sort(ready)
			for _, name := range ready {
				delete(due, name)
				w.log.Debug().Str("file", name).Msg("file changed")
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
			}
			if len(due) > 0 {
				timer.Reset(w.untilNext(due))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.closeCh:
				return
			}
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) untilNext(due map[string]time.Time) time.Duration {
	var next time.Time
	for _, at := range due {
		if next.IsZero() || at.Before(next) {
			next = at
		}
	}
	return max(time.Until(next), 0)
}

func (w *Watcher) matches(path string) bool {
	if len(w.exts) == 0 {
		return true
	}
	return slices.Contains(w.exts, strings.ToLower(filepath.Ext(path)))
}
