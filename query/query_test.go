package query

import (
	"image"
	"testing"

	"github.com/google/uuid"
	"github.com/milk9111/ldtk/levels"
	"github.com/milk9111/ldtk/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testView() *levels.Project {
	chest := levels.Entity{
		Identifier: "Chest",
		IID:        uuid.MustParse("5e8a4b10-3f6c-11ee-9b2a-0d1f6a7c0010"),
		DefUID:     10,
		Px:         image.Pt(48, 32),
		Grid:       image.Pt(3, 2),
		Width:      16,
		Height:     16,
		Tags:       []string{"loot"},
		Fields: []levels.Field{
			{Identifier: "count", Value: wire.IntValue(3)},
			{Identifier: "label", Value: wire.Null()},
			{Identifier: "loot", Value: wire.SeqValue(wire.StringValue("Key"), wire.StringValue("Coin"))},
		},
	}
	door := levels.Entity{Identifier: "Door", DefUID: 11, Px: image.Pt(96, 32), Width: 16, Height: 32}

	return &levels.Project{
		Levels: []levels.Level{
			{Identifier: "Level_0", Layers: []levels.Layer{{Identifier: "Entities", Kind: levels.Entities, Entities: []levels.Entity{chest, door}}}},
			{Identifier: "Level_1", External: true},
			{Identifier: "Level_2", Layers: []levels.Layer{{Identifier: "Things", Kind: levels.Entities, Entities: []levels.Entity{door}}}},
		},
	}
}

func TestFilterEntities(t *testing.T) {
	cases := []struct {
		expr string
		want []string
	}{
		{"", []string{"Level_0/Chest", "Level_0/Door", "Level_2/Door"}},
		{`identifier == "Door"`, []string{"Level_0/Door", "Level_2/Door"}},
		{`identifier == "Door" && level == "Level_2"`, []string{"Level_2/Door"}},
		{`layer == "Things"`, []string{"Level_2/Door"}},
		{`len(tags) > 0`, []string{"Level_0/Chest"}},
		{`is_int(fields.count) && fields.count > 2`, []string{"Level_0/Chest"}},
		{`is_undefined(fields.count)`, []string{"Level_0/Door", "Level_2/Door"}},
		{`is_array(fields.loot) && len(fields.loot) == 2 && fields.loot[1] == "Coin"`, []string{"Level_0/Chest"}},
		{`px[0] >= 96`, []string{"Level_0/Door", "Level_2/Door"}},
		{`height > width`, []string{"Level_0/Door", "Level_2/Door"}},
		{`iid == "5e8a4b10-3f6c-11ee-9b2a-0d1f6a7c0010"`, []string{"Level_0/Chest"}},
		{`import("text").has_prefix(identifier, "Ch")`, []string{"Level_0/Chest"}},
		{`defUid == 99`, nil},
	}

	view := testView()
	for _, c := range cases {
		t.Run(c.expr, func(t *testing.T) {
			f, err := Compile(c.expr)
			require.NoError(t, err)
			hits, err := f.Entities(view)
			require.NoError(t, err)

			var got []string
			for _, h := range hits {
				got = append(got, h.Level.Identifier+"/"+h.Entity.Identifier)
			}
			assert.Equal(t, c.want, got)
		})
	}
}

func TestMatchRuntimeError(t *testing.T) {
	f, err := Compile(`fields.count > 2`)
	require.NoError(t, err)
	_, err = f.Entities(testView())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query: Door")
}

func TestCompileError(t *testing.T) {
	_, err := Compile(`identifier ==`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query: compile")

	_, err = Compile(`nosuchvar == 1`)
	assert.Error(t, err)
}

func TestMatchReusesCompiled(t *testing.T) {
	f, err := Compile(`fields.count == 3`)
	require.NoError(t, err)
	view := testView()
	lvl := &view.Levels[0]
	layer := &lvl.Layers[0]

	ok, err := f.Match(lvl, layer, &layer.Entities[0])
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.Match(lvl, layer, &layer.Entities[1])
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.Match(lvl, layer, &layer.Entities[0])
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "fields.count == 3", f.String())
}
