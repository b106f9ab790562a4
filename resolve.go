package ldtk

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// LoadLevelExternal decodes the standalone level file at relPath, relative to
// baseDir, with revision v. VersionAuto reads it as 1.1.3.
func LoadLevelExternal(relPath, baseDir string, v Version) (*Level, error) {
	full := filepath.Join(baseDir, filepath.FromSlash(relPath))
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, unresolved(err, full)
	}
	l, err := decodeLevel(data, v)
	if err != nil {
		return nil, unresolved(err, full)
	}
	return l, nil
}

// LoadLevelExternal decodes relPath against the project's own directory with
// the project's revision. The project itself is left untouched.
func (p *Project) LoadLevelExternal(relPath string) (*Level, error) {
	start := time.Now()
	var (
		l   *Level
		err error
	)
	if p.fsys != nil {
		l, err = p.loadLevelFS(relPath)
	} else {
		l, err = LoadLevelExternal(relPath, p.baseDir, p.Version)
	}
	if err != nil {
		p.log.Debug().Err(err).Str("level", relPath).Msg("external level failed")
		return nil, err
	}
	p.log.Debug().
		Str("level", relPath).
		Int("layers", l.LayerCount()).
		Dur("took", time.Since(start)).
		Msg("resolved external level")
	return l, nil
}

func (p *Project) loadLevelFS(relPath string) (*Level, error) {
	full := path.Join(p.baseDir, relPath)
	data, err := fs.ReadFile(p.fsys, full)
	if err != nil {
		return nil, unresolved(err, full)
	}
	l, err := decodeLevel(data, p.Version)
	if err != nil {
		return nil, unresolved(err, full)
	}
	return l, nil
}

var (
	errNoRelPath  = errors.New("level has no layers and no externalRelPath")
	errLevelIndex = errors.New("level index out of range")
)

// ResolveLevel returns level i with its layers. Inline levels come back as
// they are; external stubs are read from their .ldtkl file into a new Level.
// Calling it twice reads the file twice and yields equal values.
func (p *Project) ResolveLevel(i int) (*Level, error) {
	stub, ok := p.Level(i)
	if !ok {
		return nil, &Error{Kind: ExternalReferenceUnresolved, Path: p.Path, Err: errLevelIndex}
	}
	if stub.IsExternal() {
		rel, _ := stub.externalRelPath()
		return p.LoadLevelExternal(rel)
	}
	if !hasLayers(stub) {
		return nil, &Error{Kind: ExternalReferenceUnresolved, Path: p.Path, Field: stub.Identifier(), Err: errNoRelPath}
	}
	return stub, nil
}

// hasLayers reports whether layerInstances is present, even if empty.
func hasLayers(l *Level) bool {
	switch {
	case l.V063 != nil:
		return l.V063.LayerInstances.IsPresent()
	case l.V092 != nil:
		return l.V092.LayerInstances.IsPresent()
	case l.V113 != nil:
		return l.V113.LayerInstances.IsPresent()
	}
	return false
}

// ResolveAll resolves every level, reading external files concurrently. The
// result is in document order. Once ctx is done no further files are read;
// a read already in progress runs to completion.
func (p *Project) ResolveAll(ctx context.Context) ([]*Level, error) {
	out := make([]*Level, p.LevelCount())
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range out {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			l, err := p.ResolveLevel(i)
			if err != nil {
				return err
			}
			out[i] = l
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
