package v092

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/milk9111/ldtk/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) (*Project, []byte) {
	t.Helper()
	src, err := os.ReadFile("testdata/project.ldtk")
	require.NoError(t, err)
	p, err := Decode(src)
	require.NoError(t, err)
	return p, src
}

func TestDecodeProject(t *testing.T) {
	p, _ := loadFixture(t)

	assert.Equal(t, WorldLinearHorizontal, p.WorldLayout)
	assert.Equal(t, []Flag{FlagDiscardPreCsvIntGrid}, p.Flags)
	assert.True(t, p.PNGFilePattern.IsNull())

	rules := p.Defs.Layers[0].AutoRuleGroups[0].Rules
	require.Len(t, rules, 1)
	assert.Equal(t, CheckerNone, rules[0].Checker)
	assert.Equal(t, TileModeSingle, rules[0].TileMode)

	music, ok := p.LevelField(60)
	require.True(t, ok)
	assert.Equal(t, LangJS, music.TextLangageMode.Or(""))

	item, ok := p.Enum(40)
	require.True(t, ok)
	coin, ok := item.Value("Coin")
	require.True(t, ok)
	assert.True(t, coin.TileSrcRect.IsNull())
}

func TestLevelContents(t *testing.T) {
	p, _ := loadFixture(t)
	lvl, ok := p.LevelByIdentifier("Level_0")
	require.True(t, ok)

	assert.Equal(t, "#101010", lvl.LevelBgColor.Or(""))
	assert.True(t, lvl.BgPos.IsNull())
	require.Len(t, lvl.Neighbours, 1)
	assert.Equal(t, 9, lvl.Neighbours[0].LevelUID)

	music, ok := lvl.Field("music")
	require.True(t, ok)
	v, _ := music.Value.Get()
	s, _ := v.Str()
	assert.Equal(t, "cave.ogg", s)

	walls, ok := lvl.Layer("Walls")
	require.True(t, ok)
	assert.True(t, walls.IntGrid.IsAbsent())
	assert.Equal(t, 1, walls.IntGridAt(1, 1))
	assert.Equal(t, 2, walls.IntGridAt(2, 1))
	assert.Equal(t, 0, walls.IntGridAt(3, 1))
	assert.False(t, walls.AutoLayerTiles[0].FlipX())
	assert.True(t, walls.AutoLayerTiles[0].FlipY())

	ents, ok := lvl.Layer("Entities")
	require.True(t, ok)
	mob := ents.EntityInstances[0]
	tile, ok := mob.Tile.Get()
	require.True(t, ok)
	assert.Equal(t, []int{24, 0, 8, 8}, tile.SrcRect)

	patrol, ok := mob.Field("patrol")
	require.True(t, ok)
	tn, err := patrol.Typed()
	require.NoError(t, err)
	assert.True(t, tn.Array)
	assert.Equal(t, wire.ShapePoint, tn.Shape())
}

func TestRoundTrip(t *testing.T) {
	p, src := loadFixture(t)
	out, err := Encode(p)
	require.NoError(t, err)
	assert.JSONEq(t, string(src), string(out))
}

func TestDecodeLevel(t *testing.T) {
	p, _ := loadFixture(t)
	b, err := EncodeLevel(&p.Levels[0])
	require.NoError(t, err)

	lvl, err := DecodeLevel(b)
	require.NoError(t, err)
	assert.Equal(t, p.Levels[0].Identifier, lvl.Identifier)
	assert.Len(t, *lvl.LayerInstances.Ptr(), 2)
}

func TestDanglingReferences(t *testing.T) {
	p, _ := loadFixture(t)
	ents, _ := p.Levels[0].Layer("Entities")

	_, ok := p.LayerDef(ents.LayerDefUID)
	assert.False(t, ok, "layer def 3 is not declared")
	_, ok = p.Level(9)
	assert.False(t, ok, "neighbour level 9 is not declared")
	_, ok = p.EntityDef(ents.EntityInstances[0].DefUID)
	assert.True(t, ok)
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		old  string
		new  string
		path string
	}{
		{"defs_required", `"defs": {`, `"defz": {`, "defs"},
		{"unknown_checker", `"checker": "None"`, `"checker": "Diagonal"`, "defs.layers[0].autoRuleGroups[0].rules[0].checker"},
		{"unknown_flag", `["DiscardPreCsvIntGrid"]`, `["Foo"]`, "flags[0]"},
		{"csv_not_array", `"intGridCsv": [0, 0, 0, 0, 1, 2]`, `"intGridCsv": "0,0,0,0,1,2"`, "levels[0].layerInstances[0].intGridCsv"},
		{"bool_for_int", `"backupLimit": 10`, `"backupLimit": true`, "backupLimit"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, src := loadFixture(t)
			edited := strings.Replace(string(src), c.old, c.new, 1)
			require.NotEqual(t, string(src), edited)

			_, err := Decode([]byte(edited))
			var se *wire.SchemaError
			require.True(t, errors.As(err, &se), "expected SchemaError, got %v", err)
			assert.Equal(t, c.path, se.FieldPath())
		})
	}
}
