package ldtk

import (
	"github.com/milk9111/ldtk/config"
	"github.com/rs/zerolog"
)

type Option func(*options)

type options struct {
	version Version
	logger  zerolog.Logger
	baseDir string
	err     error
}

func newOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithVersion skips detection and decodes with the given revision.
func WithVersion(v Version) Option {
	return func(o *options) { o.version = v }
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithBaseDir sets the directory external levels are resolved against when
// loading from a reader.
func WithBaseDir(dir string) Option {
	return func(o *options) { o.baseDir = dir }
}

// WithConfig applies the version and log level from cfg. An invalid version
// string makes the load fail with that error.
func WithConfig(cfg config.Config) Option {
	return func(o *options) {
		v, err := ParseVersion(cfg.Version)
		if err != nil {
			o.err = err
			return
		}
		if v != VersionAuto {
			o.version = v
		}
		if lvl, err := cfg.Level(); err == nil {
			o.logger = o.logger.Level(lvl)
		}
	}
}
