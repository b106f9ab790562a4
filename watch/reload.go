package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/ldtk"
	"github.com/milk9111/ldtk/config"
	"github.com/rs/zerolog"
)

// Reload is the outcome of reloading a project after a change. Exactly one
// of Project and Err is set.
type Reload struct {
	Changed string
	Project *ldtk.Project
	Err     error
}

// Reloader loads a project again every time it, or one of its external
// level files, changes on disk.
type Reloader struct {
	path    string
	opts    []ldtk.Option
	watcher *Watcher
	reloads chan Reload
	log     zerolog.Logger
}

// NewReloader watches the project's directory and, when it exists, the
// directory LDtk keeps external levels in (the project path without its
// extension).
func NewReloader(path string, cfg config.Config, log zerolog.Logger, opts ...ldtk.Option) (*Reloader, error) {
	dirs := []string{filepath.Dir(path)}
	levelDir := strings.TrimSuffix(path, filepath.Ext(path))
	if info, err := os.Stat(levelDir); err == nil && info.IsDir() {
		dirs = append(dirs, levelDir)
	}

	w, err := NewWatcher(cfg.Watch, log, dirs...)
	if err != nil {
		return nil, err
	}

	opts = append([]ldtk.Option{ldtk.WithConfig(cfg), ldtk.WithLogger(log)}, opts...)
	return &Reloader{
		path:    path,
		opts:    opts,
		watcher: w,
		reloads: make(chan Reload, 1),
		log:     log.With().Str("project", path).Logger(),
	}, nil
}

func (r *Reloader) Reloads() <-chan Reload { return r.reloads }

// Run publishes a Reload for every change until ctx is done or the watcher
// is closed. Reloads is closed when Run returns.
func (r *Reloader) Run(ctx context.Context) error {
	defer close(r.reloads)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case name, ok := <-r.watcher.Events:
			if !ok {
				return nil
			}
			reload := Reload{Changed: name}
			reload.Project, reload.Err = ldtk.Load(r.path, r.opts...)
			if reload.Err != nil {
				r.log.Warn().Err(reload.Err).Str("changed", name).Msg("reload failed")
			} else {
				r.log.Info().Str("changed", name).Msg("project reloaded")
			}
			select {
			case r.reloads <- reload:
			case <-ctx.Done():
				return ctx.Err()
			}
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return nil
			}
			r.log.Error().Err(err).Msg("watch error")
		}
	}
}

func (r *Reloader) Close() error {
	return r.watcher.Close()
}
