package ldtk

import (
	"context"
	"testing"

	"github.com/milk9111/ldtk/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView(t *testing.T) {
	cases := []struct {
		path   string
		levels int
	}{
		{"schema/v063/testdata/project.ldtk", 1},
		{"schema/v092/testdata/project.ldtk", 1},
		{"schema/v113/testdata/project.ldtk", 2},
	}

	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			p, err := Load(c.path)
			require.NoError(t, err)
			view, err := p.View()
			require.NoError(t, err)
			assert.Equal(t, p.JSONVersion(), view.JSONVersion)
			require.Len(t, view.Levels, c.levels)
			for i, l := range view.Levels {
				stub, ok := p.Level(i)
				require.True(t, ok)
				assert.Equal(t, stub.Identifier(), l.Identifier)
			}
		})
	}

	_, err := (&Project{}).View()
	assert.Error(t, err)
}

func TestViewBuiltOnce(t *testing.T) {
	p, err := Load("testdata/external/project.ldtk")
	require.NoError(t, err)

	first, err := p.View()
	require.NoError(t, err)
	second, err := p.View()
	require.NoError(t, err)
	assert.Same(t, first, second)

	resolved, err := p.ResolvedView(context.Background())
	require.NoError(t, err)
	assert.NotSame(t, first, resolved)
	assert.False(t, resolved.Levels[0].External)
	assert.True(t, first.Levels[0].External, "resolving must leave the loaded view alone")
	assert.Empty(t, first.Levels[0].Layers)

	hand := &Project{Version: p.Version, V113: p.V113}
	a, err := hand.View()
	require.NoError(t, err)
	b, err := hand.View()
	require.NoError(t, err)
	assert.NotSame(t, a, b)
	assert.Equal(t, first, a)
}

func TestViewTiles(t *testing.T) {
	p, err := Load("testdata/tiles.ldtk")
	require.NoError(t, err)
	view, err := p.View()
	require.NoError(t, err)

	lvl, ok := view.Level("Level_0")
	require.True(t, ok)
	assert.Equal(t, 256, lvl.PxHei)
	layer, ok := lvl.Layer("Ground")
	require.True(t, ok)
	assert.Equal(t, levels.Tiles, layer.Kind)
	require.Len(t, layer.Tiles, 1)
	assert.True(t, layer.Tiles[0].FlipX)
	assert.True(t, layer.Tiles[0].FlipY)
}

func TestResolvedView(t *testing.T) {
	p, err := Load("testdata/external/project.ldtk")
	require.NoError(t, err)

	stubs, err := p.View()
	require.NoError(t, err)
	for _, l := range stubs.Levels {
		assert.True(t, l.External)
		assert.Empty(t, l.Layers)
	}

	view, err := p.ResolvedView(context.Background())
	require.NoError(t, err)
	require.Len(t, view.Levels, 2)

	lvl := view.Levels[0]
	assert.False(t, lvl.External)
	assert.Equal(t, "level_0.ldtkl", lvl.ExternalRelPath)
	walls, ok := lvl.Layer("Walls")
	require.True(t, ok)
	assert.Equal(t, levels.IntGrid, walls.Kind)
	assert.Equal(t, []int{0, 1, 1, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0}, walls.IntGrid)
	assert.Equal(t, 1, walls.IntGridAt(2, 1))

	again, err := p.ResolvedView(context.Background())
	require.NoError(t, err)
	assert.Equal(t, view, again)
}

func TestLevelView(t *testing.T) {
	lvl, err := LoadLevelExternal("level_1.ldtkl", "testdata/external", Version113)
	require.NoError(t, err)
	v := lvl.View()
	assert.Equal(t, "Level_1", v.Identifier)
	assert.Equal(t, 64, v.WorldX)
	require.Len(t, v.Layers, 1)
	assert.Equal(t, []int{1, 0}, v.Layers[0].IntGrid)

	assert.Equal(t, levels.Level{}, (&Level{}).View())
}
