package ldtk

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/ldtk/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveExternalLevel(t *testing.T) {
	p, err := Load("testdata/external/project.ldtk")
	require.NoError(t, err)
	require.True(t, p.V113.ExternalLevels)

	stub, ok := p.Level(0)
	require.True(t, ok)
	assert.True(t, stub.IsExternal())
	assert.True(t, stub.V113.LayerInstances.IsNull())
	assert.Equal(t, 0, stub.LayerCount())

	lvl, err := p.ResolveLevel(0)
	require.NoError(t, err)
	require.Equal(t, 1, lvl.LayerCount())
	assert.False(t, lvl.IsExternal())

	layer, ok := lvl.V113.Layer("Walls")
	require.True(t, ok)
	assert.Equal(t, "IntGrid", string(layer.Kind))
	assert.Equal(t, []int{0, 1, 1, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0}, layer.IntGridCSV)

	// The root document keeps its stub.
	assert.True(t, stub.IsExternal())
	assert.True(t, p.V113.Levels[0].LayerInstances.IsNull())

	again, err := p.ResolveLevel(0)
	require.NoError(t, err)
	assert.Equal(t, lvl, again)
	assert.NotSame(t, lvl.V113, again.V113)
}

func TestResolveInlineLevel(t *testing.T) {
	p, err := Load("testdata/tiles.ldtk")
	require.NoError(t, err)

	lvl, err := p.ResolveLevel(0)
	require.NoError(t, err)
	assert.Same(t, &p.V113.Levels[0], lvl.V113)
}

func TestResolveLevelErrors(t *testing.T) {
	project, err := os.ReadFile("testdata/external/project.ldtk")
	require.NoError(t, err)
	dir := t.TempDir()
	path := filepath.Join(dir, "project.ldtk")
	require.NoError(t, os.WriteFile(path, project, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "level_1.ldtkl"), []byte(`{"identifier": "Level_1"}`), 0o644))

	p, err := Load(path)
	require.NoError(t, err)

	cases := []struct {
		name  string
		index int
		path  string
		field string
	}{
		{"missing_file", 0, filepath.Join(dir, "level_0.ldtkl"), ""},
		{"bad_level_file", 1, filepath.Join(dir, "level_1.ldtkl"), "__bgColor"},
		{"out_of_range", 2, path, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := p.ResolveLevel(c.index)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrExternalReferenceUnresolved))

			var le *Error
			require.True(t, errors.As(err, &le))
			assert.Equal(t, c.path, le.Path)
			assert.Equal(t, c.field, le.Field)
		})
	}
}

func TestResolveLevelWithoutLayersOrPath(t *testing.T) {
	p, err := Load("testdata/external/project.ldtk")
	require.NoError(t, err)
	p.V113.Levels[1].ExternalRelPath = wire.Nil[string]()

	_, err = p.ResolveLevel(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errNoRelPath)
	assert.True(t, errors.Is(err, ErrExternalReferenceUnresolved))
}

func TestLoadLevelExternal(t *testing.T) {
	lvl, err := LoadLevelExternal("level_1.ldtkl", "testdata/external", Version113)
	require.NoError(t, err)
	assert.Equal(t, "Level_1", lvl.Identifier())
	assert.Equal(t, 1, lvl.UID())
	assert.Equal(t, Version113, lvl.Version)

	_, err = LoadLevelExternal("level_1.ldtkl", "testdata", Version113)
	assert.True(t, errors.Is(err, ErrExternalReferenceUnresolved))
}

func TestResolveAll(t *testing.T) {
	p, err := Load("testdata/external/project.ldtk")
	require.NoError(t, err)

	all, err := p.ResolveAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Level_0", all[0].Identifier())
	assert.Equal(t, "Level_1", all[1].Identifier())
	for _, l := range all {
		assert.Equal(t, 1, l.LayerCount())
	}

	again, err := p.ResolveAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, all, again)
}

func TestResolveAllCancelled(t *testing.T) {
	p, err := Load("testdata/external/project.ldtk")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	all, err := p.ResolveAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, all)
}

func TestResolveAllStopsOnError(t *testing.T) {
	p, err := Load("testdata/external/project.ldtk")
	require.NoError(t, err)
	p.baseDir = t.TempDir()

	_, err = p.ResolveAll(context.Background())
	assert.True(t, errors.Is(err, ErrExternalReferenceUnresolved))
}
