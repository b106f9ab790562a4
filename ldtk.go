// Package ldtk loads LDtk project files.
//
// A project is decoded with the schema revision that matches its jsonVersion
// (or the one forced with WithVersion) and kept in that revision's types.
// Levels stored in separate .ldtkl files are not read during Load; resolve
// them one at a time with ResolveLevel, or all at once with ResolveAll.
package ldtk

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/milk9111/ldtk/levels"
	"github.com/milk9111/ldtk/schema/v063"
	"github.com/milk9111/ldtk/schema/v092"
	"github.com/milk9111/ldtk/schema/v113"
	"github.com/rs/zerolog"
)

// Project is a decoded root document. Exactly one of V063, V092 and V113 is
// set, matching Version.
type Project struct {
	Version Version
	V063    *v063.Project
	V092    *v092.Project
	V113    *v113.Project

	// Path is the file the project came from, empty for readers.
	Path string
	ID   ProjectID

	baseDir string
	fsys    fs.FS
	log     zerolog.Logger
	view    *levels.Project
}

// Level is one level of any revision. Exactly one of V063, V092 and V113 is
// set.
type Level struct {
	Version Version
	V063    *v063.Level
	V092    *v092.Level
	V113    *v113.Level
}

func Load(path string, opts ...Option) (*Project, error) {
	o := newOptions(opts)
	if o.err != nil {
		return nil, o.err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: SourceUnavailable, Path: path, Err: err}
	}
	p, err := decode(data, path, o)
	if err != nil {
		return nil, err
	}
	p.Path = path
	p.baseDir = filepath.Dir(path)
	return p, nil
}

// LoadReader reads r to the end and decodes it. External levels resolve
// against WithBaseDir, or the working directory when it is not given.
func LoadReader(r io.Reader, opts ...Option) (*Project, error) {
	o := newOptions(opts)
	if o.err != nil {
		return nil, o.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &Error{Kind: SourceUnavailable, Err: err}
	}
	p, err := decode(data, "", o)
	if err != nil {
		return nil, err
	}
	p.baseDir = o.baseDir
	return p, nil
}

// LoadFS loads name from fsys. External levels are read from the same fsys.
func LoadFS(fsys fs.FS, name string, opts ...Option) (*Project, error) {
	o := newOptions(opts)
	if o.err != nil {
		return nil, o.err
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, &Error{Kind: SourceUnavailable, Path: name, Err: err}
	}
	p, err := decode(data, name, o)
	if err != nil {
		return nil, err
	}
	p.Path = name
	p.baseDir = path.Dir(name)
	p.fsys = fsys
	return p, nil
}

func decode(data []byte, src string, o options) (*Project, error) {
	log := o.logger.With().Str("source", src).Logger()

	v := o.version
	if v == VersionAuto {
		detected, err := DetectVersion(data)
		if err != nil {
			return nil, withPath(err, src)
		}
		v = detected
		log.Debug().Str("version", v.String()).Msg("detected schema version")
	}

	start := time.Now()
	p := &Project{Version: v, ID: NewProjectID(src, data), log: log}
	var err error
	switch v {
	case Version063:
		p.V063, err = v063.Decode(data)
	case Version092:
		p.V092, err = v092.Decode(data)
	default:
		p.Version = Version113
		p.V113, err = v113.Decode(data)
	}
	if err != nil {
		return nil, classify(err, src)
	}
	if p.view, err = p.buildView(); err != nil {
		return nil, classify(err, src)
	}
	log.Debug().
		Str("version", p.Version.String()).
		Int("levels", p.LevelCount()).
		Dur("took", time.Since(start)).
		Msg("decoded project")
	return p, nil
}

func withPath(err error, path string) error {
	if le, ok := err.(*Error); ok && le.Path == "" {
		le.Path = path
	}
	return err
}

// JSONVersion is the jsonVersion recorded in the document.
func (p *Project) JSONVersion() string {
	switch {
	case p.V063 != nil:
		return p.V063.JSONVersion
	case p.V092 != nil:
		return p.V092.JSONVersion
	case p.V113 != nil:
		return p.V113.JSONVersion
	}
	return ""
}

// LevelCount counts levels in document order; for 1.1.3 projects that
// includes the levels of every world.
func (p *Project) LevelCount() int {
	switch {
	case p.V063 != nil:
		return len(p.V063.Levels)
	case p.V092 != nil:
		return len(p.V092.Levels)
	case p.V113 != nil:
		return len(p.V113.AllLevels())
	}
	return 0
}

// Level returns the i-th level as stored in the root document, which for
// external levels is a stub without layers.
func (p *Project) Level(i int) (*Level, bool) {
	if i < 0 || i >= p.LevelCount() {
		return nil, false
	}
	switch {
	case p.V063 != nil:
		return &Level{Version: Version063, V063: &p.V063.Levels[i]}, true
	case p.V092 != nil:
		return &Level{Version: Version092, V092: &p.V092.Levels[i]}, true
	default:
		return &Level{Version: Version113, V113: p.V113.AllLevels()[i]}, true
	}
}

// Encode writes the project back out with its own revision's encoder.
func (p *Project) Encode() ([]byte, error) {
	switch {
	case p.V063 != nil:
		return v063.Encode(p.V063)
	case p.V092 != nil:
		return v092.Encode(p.V092)
	default:
		return v113.Encode(p.V113)
	}
}

func (l *Level) Identifier() string {
	switch {
	case l.V063 != nil:
		return l.V063.Identifier
	case l.V092 != nil:
		return l.V092.Identifier
	case l.V113 != nil:
		return l.V113.Identifier
	}
	return ""
}

func (l *Level) UID() int {
	switch {
	case l.V063 != nil:
		return l.V063.UID
	case l.V092 != nil:
		return l.V092.UID
	case l.V113 != nil:
		return l.V113.UID
	}
	return 0
}

// IsExternal reports whether the level is a stub whose layers live in
// another file.
func (l *Level) IsExternal() bool {
	switch {
	case l.V063 != nil:
		return l.V063.IsExternal()
	case l.V092 != nil:
		return l.V092.IsExternal()
	case l.V113 != nil:
		return l.V113.IsExternal()
	}
	return false
}

func (l *Level) externalRelPath() (string, bool) {
	switch {
	case l.V063 != nil:
		return l.V063.ExternalRelPath.Get()
	case l.V092 != nil:
		return l.V092.ExternalRelPath.Get()
	case l.V113 != nil:
		return l.V113.ExternalRelPath.Get()
	}
	return "", false
}

// LayerCount is 0 for unresolved external levels.
func (l *Level) LayerCount() int {
	switch {
	case l.V063 != nil:
		return len(l.V063.LayerInstances.Or(nil))
	case l.V092 != nil:
		return len(l.V092.LayerInstances.Or(nil))
	case l.V113 != nil:
		return len(l.V113.LayerInstances.Or(nil))
	}
	return 0
}

// Encode writes the level in the form of a standalone .ldtkl file.
func (l *Level) Encode() ([]byte, error) {
	switch {
	case l.V063 != nil:
		return v063.EncodeLevel(l.V063)
	case l.V092 != nil:
		return v092.EncodeLevel(l.V092)
	default:
		return v113.EncodeLevel(l.V113)
	}
}

func decodeLevel(data []byte, v Version) (*Level, error) {
	switch v {
	case Version063:
		l, err := v063.DecodeLevel(data)
		if err != nil {
			return nil, err
		}
		return &Level{Version: v, V063: l}, nil
	case Version092:
		l, err := v092.DecodeLevel(data)
		if err != nil {
			return nil, err
		}
		return &Level{Version: v, V092: l}, nil
	default:
		l, err := v113.DecodeLevel(data)
		if err != nil {
			return nil, err
		}
		return &Level{Version: Version113, V113: l}, nil
	}
}

