package v113

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

	assert.Equal(t, WorldFree, p.WorldLayout.Or(""))
	assert.Equal(t, IdentCapitalize, p.IdentifierStyle)
	assert.Equal(t, ExportNone, p.ImageExportMode)
	assert.Equal(t, []Flag{FlagMultiWorlds}, p.Flags)
	assert.True(t, p.ForcedRefs.IsAbsent())
	assert.Contains(t, p.Extra, "__header__")
	assert.Contains(t, p.Extra, "iid")

	chest, ok := p.EntityDef(10)
	require.True(t, ok)
	assert.Equal(t, TileNineSlice, chest.TileRenderMode)
	rect, ok := chest.TileRect.Get()
	require.True(t, ok)
	assert.Equal(t, TilesetRectangle{TilesetUID: 5, X: 64, Y: 0, W: 16, H: 16}, rect)

	ts, ok := p.Tileset(5)
	require.True(t, ok)
	assert.Equal(t, "tiles.png", ts.RelPath.Or(""))
	assert.True(t, ts.EmbedAtlas.IsNull())
	data, ok := ts.TileData(4)
	require.True(t, ok)
	assert.Equal(t, "solid", data)
	_, ok = ts.TileData(5)
	assert.False(t, ok)

	walls, ok := p.LayerDef(2)
	require.True(t, ok)
	wall, ok := walls.IntGridValue(1)
	require.True(t, ok)
	assert.Equal(t, "wall", wall.Identifier.Or(""))
}

func TestWorlds(t *testing.T) {
	p, _ := loadFixture(t)

	require.Len(t, p.Worlds, 1)
	assert.Equal(t, WorldGridVania, p.Worlds[0].WorldLayout.Or(""))
	assert.Len(t, p.AllLevels(), 2)

	cave, ok := p.Level(7)
	require.True(t, ok)
	assert.Equal(t, "Cave_0", cave.Identifier)
	require.Len(t, cave.Neighbours, 1)
	assert.Equal(t, 0, cave.Neighbours[0].LevelUID.Or(-1))

	lvl, ok := p.LevelByIdentifier("Level_0")
	require.True(t, ok)
	require.Len(t, lvl.Neighbours, 1)
	assert.True(t, lvl.Neighbours[0].LevelUID.IsAbsent())
	next, ok := p.LevelByIID(lvl.Neighbours[0].LevelIID)
	require.True(t, ok)
	assert.Same(t, cave, next)

	w, ok := p.World("5e8a4b10-3f6c-11ee-9b2a-0d1f6a7c0100")
	require.True(t, ok)
	assert.Equal(t, "Caves", w.Identifier)
}

func TestFieldValues(t *testing.T) {
	p, _ := loadFixture(t)
	lvl, _ := p.LevelByIdentifier("Level_0")
	ents, ok := lvl.Layer("Entities")
	require.True(t, ok)
	chest := ents.EntityInstances[0]

	value := func(name string) FieldValue {
		t.Helper()
		f, ok := chest.Field(name)
		require.True(t, ok, name)
		v, _ := f.Value.Get()
		return v
	}

	loot := value("loot")
	require.Equal(t, ValueArray, loot.Kind())
	require.Len(t, loot.Items(), 3)
	key, ok := loot.Items()[0].Enum()
	assert.True(t, ok)
	assert.Equal(t, "Key", key)
	assert.True(t, loot.Items()[2].IsNull())

	spot, ok := value("spot").Point()
	require.True(t, ok)
	assert.Equal(t, 3, spot.Cx)
	assert.Equal(t, 4, spot.Cy)

	icon, ok := value("icon").Tile()
	require.True(t, ok)
	assert.Equal(t, 64, icon.X)

	weight, ok := value("weight").Float()
	require.True(t, ok)
	assert.Equal(t, 2.0, weight)

	count, ok := value("count").Int()
	require.True(t, ok)
	assert.Equal(t, 3, count)

	tint, ok := value("tint").Color()
	require.True(t, ok)
	assert.Equal(t, "#FF0000", tint)

	label, ok := chest.Field("label")
	require.True(t, ok)
	assert.True(t, label.Value.IsNull())

	raw, ok := value("sprite").Raw()
	require.True(t, ok)
	frame, _ := raw.Get("frame")
	n, _ := frame.Int()
	assert.Equal(t, int64(2), n)

	ref, ok := value("target").EntityRef()
	require.True(t, ok)
	door, ok := p.Entity(ref)
	require.True(t, ok)
	assert.Equal(t, "Door", door.Identifier)
}

func TestFieldValueUnmarshalTyped(t *testing.T) {
	cases := []struct {
		name string
		typ  string
		doc  string
		kind ValueKind
		path string // set when decoding must fail
	}{
		{"int", "Int", `7`, ValueInt, ""},
		{"float_from_int", "Float", `1`, ValueFloat, ""},
		{"bool", "Bool", `true`, ValueBool, ""},
		{"multilines", "Multilines", `"a\nb"`, ValueString, ""},
		{"file_path", "FilePath", `"a.png"`, ValueString, ""},
		{"legacy_enum", "Enum(Item)", `"Key"`, ValueEnum, ""},
		{"null_point", "Point", `null`, ValueNull, ""},
		{"points", "Array<Point>", `[{"cx":1,"cy":2},null]`, ValueArray, ""},
		{"unknown_type", "Sprite", `{"frame":1}`, ValueRaw, ""},
		{"untyped", "", `[1,"a"]`, ValueRaw, ""},
		{"int_fraction", "Int", `1.5`, ValueNull, "<root>"},
		{"enum_item_kind", "Array<LocalEnum.Item>", `["Key",5]`, ValueNull, "[1]"},
		{"point_missing_cy", "Array<Point>", `[{"cx":1}]`, ValueNull, "[0].cy"},
		{"ref_not_object", "EntityRef", `"abc"`, ValueNull, "<root>"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var v FieldValue
			err := v.UnmarshalTyped([]byte(c.doc), c.typ)
			if c.path == "" {
				require.NoError(t, err)
				assert.Equal(t, c.kind, v.Kind())
				return
			}
			var se *wire.SchemaError
			require.True(t, errors.As(err, &se), "expected SchemaError, got %v", err)
			path := se.FieldPath()
			if path == "" {
				path = "<root>"
			}
			assert.Equal(t, c.path, path)
		})
	}
}

func TestFieldValueMarshal(t *testing.T) {
	cases := []struct {
		typ string
		doc string
	}{
		{"Int", `-4`},
		{"Float", `0.25`},
		{"Bool", `false`},
		{"Color", `"#00FF00"`},
		{"Array<LocalEnum.Item>", `["Key",null]`},
		{"Point", `{"cx":1,"cy":2}`},
		{"EntityRef", `{"entityIid":"a","layerIid":"b","levelIid":"c","worldIid":"d"}`},
		{"Sprite", `{"b":1,"a":[true]}`},
	}

	for _, c := range cases {
		t.Run(c.typ, func(t *testing.T) {
			var v FieldValue
			require.NoError(t, v.UnmarshalTyped([]byte(c.doc), c.typ))
			b, err := v.MarshalJSON()
			require.NoError(t, err)
			assert.JSONEq(t, c.doc, string(b))
		})
	}
}

func TestLayers(t *testing.T) {
	p, _ := loadFixture(t)
	lvl, _ := p.LevelByIdentifier("Level_0")

	ground, ok := lvl.Layer("Ground")
	require.True(t, ok)
	tiles := ground.Tiles()
	require.Len(t, tiles, 1)
	assert.Equal(t, 4, tiles[0].T)
	assert.Equal(t, []int{32, 48}, tiles[0].Px)
	assert.True(t, tiles[0].FlipX())
	assert.True(t, tiles[0].FlipY())

	walls, ok := lvl.Layer("Walls")
	require.True(t, ok)
	assert.Equal(t, 1, walls.IntGridAt(1, 0))
	assert.Equal(t, 2, walls.IntGridAt(0, 1))
	assert.Equal(t, 0, walls.IntGridAt(2, 0))
	assert.Empty(t, walls.Tiles())
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
	assert.False(t, lvl.IsExternal())
	assert.Equal(t, p.Levels[0].IID, lvl.IID)
	assert.Len(t, *lvl.LayerInstances.Ptr(), 3)
}

func TestDanglingReferences(t *testing.T) {
	p, _ := loadFixture(t)
	ents, _ := p.Levels[0].Layer("Entities")

	_, ok := p.EntityDef(ents.EntityInstances[1].DefUID)
	assert.False(t, ok, "entity def 11 is not declared")
	_, ok = p.LevelByIID("missing")
	assert.False(t, ok)
	_, ok = p.Entity(FieldInstanceEntityReference{LevelIID: p.Levels[0].IID, EntityIID: "missing"})
	assert.False(t, ok)
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		old  string
		new  string
		path string
	}{
		{"value_kind", `"__value": 3`, `"__value": "three"`, "levels[0].layerInstances[0].entityInstances[0].fieldInstances[5].__value"},
		{"point_member", `"cy": 4`, `"cz": 4`, "levels[0].layerInstances[0].entityInstances[0].fieldInstances[2].__value.cy"},
		{"identifier_style", `"identifierStyle": "Capitalize"`, `"identifierStyle": "Camel"`, "identifierStyle"},
		{"world_layout", `"worldLayout": "GridVania"`, `"worldLayout": "Spiral"`, "worlds[0].worldLayout"},
		{"embed_atlas", `"embedAtlas": null`, `"embedAtlas": "Icons"`, "defs.tilesets[0].embedAtlas"},
		{"worlds_required", `"worlds": [`, `"worldz": [`, "worlds"},
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
