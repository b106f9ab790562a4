package levels

import (
	"image"
	"image/color"

	"github.com/google/uuid"
	"github.com/milk9111/ldtk/config"
	"github.com/milk9111/ldtk/schema/v063"
	"github.com/milk9111/ldtk/schema/v092"
	"github.com/milk9111/ldtk/schema/v113"
	"github.com/milk9111/ldtk/wire"
)

// FromV063 builds the view of a 0.6.3 project. Projects saved without a defs
// block get empty Defs.
func FromV063(p *v063.Project) *Project {
	out := &Project{
		JSONVersion:    p.JSONVersion,
		WorldLayout:    string(p.WorldLayout.Or("")),
		BgColor:        parseColor(p.BgColor),
		ExternalLevels: p.ExternalLevels,
	}
	if defs, ok := p.Defs.Get(); ok {
		for _, t := range defs.Tilesets {
			out.Defs.Tilesets = append(out.Defs.Tilesets, Tileset{
				UID:          t.UID,
				Identifier:   t.Identifier,
				RelPath:      t.RelPath,
				PxWid:        t.PxWid,
				PxHei:        t.PxHei,
				TileGridSize: t.TileGridSize,
				Spacing:      t.Spacing,
				Padding:      t.Padding,
			})
		}
		for _, l := range defs.Layers {
			ld := LayerDef{
				UID:        l.UID,
				Identifier: l.Identifier,
				Kind:       LayerKind(l.Kind),
				GridSize:   l.GridSize,
				Opacity:    l.DisplayOpacity,
				TilesetUID: l.TilesetDefUID.Or(-1),
			}
			for i, v := range l.IntGridValues {
				ld.IntGridValues = append(ld.IntGridValues, IntGridValue{
					// Values were implicit in this revision: the n-th entry is n+1.
					Value:      i + 1,
					Identifier: anyString(v["identifier"]),
					Color:      parseColor(anyString(v["color"])),
				})
			}
			out.Defs.Layers = append(out.Defs.Layers, ld)
		}
		for _, e := range defs.Entities {
			out.Defs.Entities = append(out.Defs.Entities, EntityDef{
				UID:        e.UID,
				Identifier: e.Identifier,
				Width:      e.Width,
				Height:     e.Height,
				Color:      parseColor(e.Color),
				PivotX:     e.PivotX,
				PivotY:     e.PivotY,
			})
		}
		for _, list := range []struct {
			enums    []v063.EnumDefinition
			external bool
		}{{defs.Enums, false}, {defs.ExternalEnums, true}} {
			for _, e := range list.enums {
				en := Enum{UID: e.UID, Identifier: e.Identifier, External: list.external}
				for _, v := range e.Values {
					en.Values = append(en.Values, anyString(v["id"]))
				}
				out.Defs.Enums = append(out.Defs.Enums, en)
			}
		}
	}
	for i := range p.Levels {
		lvl := LevelFromV063(&p.Levels[i])
		out.Defs.SizeEntities(&lvl)
		out.Levels = append(out.Levels, lvl)
	}
	return out
}

// LevelFromV063 converts one level on its own. Entities come out without a
// size; Defs.SizeEntities fills it in from the project's definitions.
func LevelFromV063(l *v063.Level) Level {
	out := Level{
		UID:             l.UID,
		Identifier:      l.Identifier,
		WorldX:          l.WorldX,
		WorldY:          l.WorldY,
		PxWid:           l.PxWid,
		PxHei:           l.PxHei,
		BgColor:         parseColor(l.BgColor),
		ExternalRelPath: l.ExternalRelPath.Or(""),
		External:        l.IsExternal(),
	}
	for _, n := range l.Neighbours {
		nb := Neighbour{Dir: anyString(n["dir"]), LevelUID: -1}
		if uid, ok := n["levelUid"].Int(); ok {
			nb.LevelUID = int(uid)
		}
		out.Neighbours = append(out.Neighbours, nb)
	}
	for _, li := range l.LayerInstances.Or(nil) {
		layer := Layer{
			Identifier:     li.Identifier,
			Kind:           LayerKind(li.Kind),
			DefUID:         li.LayerDefUID,
			GridSize:       li.GridSize,
			CWid:           li.CWid,
			CHei:           li.CHei,
			Opacity:        li.Opacity,
			OffsetX:        li.PxTotalOffsetX,
			OffsetY:        li.PxTotalOffsetY,
			TilesetUID:     li.TilesetDefUID.Or(-1),
			TilesetRelPath: li.TilesetRelPath.Or(""),
			Visible:        true,
		}
		if li.Kind == v063.LayerIntGrid {
			layer.IntGrid = li.IntGridDense()
		}
		layer.Tiles = convertTiles063(li.GridTiles, li.AutoLayerTiles)
		for _, e := range li.EntityInstances {
			ent := Entity{
				Identifier: e.Identifier,
				DefUID:     e.DefUID,
				Px:         point(e.Px),
				Grid:       point(e.Grid),
			}
			for _, f := range e.FieldInstances {
				ent.Fields = append(ent.Fields, Field{
					Identifier: f.Identifier,
					Type:       wire.ParseTypeName(f.FieldType),
					DefUID:     f.DefUID,
					Value:      f.Value.Or(wire.Null()),
				})
			}
			layer.Entities = append(layer.Entities, ent)
		}
		out.Layers = append(out.Layers, layer)
	}
	return out
}

func convertTiles063(lists ...[]v063.TileInstance) []Tile {
	var out []Tile
	for _, list := range lists {
		for _, t := range list {
			out = append(out, Tile{ID: t.T, Px: point(t.Px), Src: point(t.Src), FlipX: t.FlipX(), FlipY: t.FlipY()})
		}
	}
	return out
}

func FromV092(p *v092.Project) *Project {
	out := &Project{
		JSONVersion:    p.JSONVersion,
		WorldLayout:    string(p.WorldLayout),
		BgColor:        parseColor(p.BgColor),
		ExternalLevels: p.ExternalLevels,
	}
	defs := &p.Defs
	for _, t := range defs.Tilesets {
		ts := Tileset{
			UID:          t.UID,
			Identifier:   t.Identifier,
			RelPath:      t.RelPath,
			PxWid:        t.PxWid,
			PxHei:        t.PxHei,
			TileGridSize: t.TileGridSize,
			Spacing:      t.Spacing,
			Padding:      t.Padding,
		}
		// Tile metadata is still untyped in this revision.
		for _, c := range t.CustomData {
			id, ok := c["tileId"].Int()
			if !ok {
				continue
			}
			if ts.CustomData == nil {
				ts.CustomData = make(map[int]string)
			}
			ts.CustomData[int(id)] = anyString(c["data"])
		}
		for _, e := range t.EnumTags {
			name := anyString(e["enumValueId"])
			if ts.EnumTags == nil {
				ts.EnumTags = make(map[string][]int)
			}
			for _, id := range e["tileIds"].Items() {
				if n, ok := id.Int(); ok {
					ts.EnumTags[name] = append(ts.EnumTags[name], int(n))
				}
			}
		}
		out.Defs.Tilesets = append(out.Defs.Tilesets, ts)
	}
	for _, l := range defs.Layers {
		ld := LayerDef{
			UID:        l.UID,
			Identifier: l.Identifier,
			Kind:       LayerKind(l.Kind),
			GridSize:   l.GridSize,
			Opacity:    l.DisplayOpacity,
			TilesetUID: l.TilesetDefUID.Or(-1),
		}
		for _, v := range l.IntGridValues {
			ld.IntGridValues = append(ld.IntGridValues, IntGridValue{
				Value:      v.Value,
				Identifier: v.Identifier.Or(""),
				Color:      parseColor(v.Color),
			})
		}
		out.Defs.Layers = append(out.Defs.Layers, ld)
	}
	for _, e := range defs.Entities {
		out.Defs.Entities = append(out.Defs.Entities, EntityDef{
			UID:        e.UID,
			Identifier: e.Identifier,
			Width:      e.Width,
			Height:     e.Height,
			Color:      parseColor(e.Color),
			PivotX:     e.PivotX,
			PivotY:     e.PivotY,
			Tags:       e.Tags,
		})
	}
	for _, list := range []struct {
		enums    []v092.EnumDefinition
		external bool
	}{{defs.Enums, false}, {defs.ExternalEnums, true}} {
		for _, e := range list.enums {
			en := Enum{UID: e.UID, Identifier: e.Identifier, External: list.external}
			for _, v := range e.Values {
				en.Values = append(en.Values, v.ID)
			}
			out.Defs.Enums = append(out.Defs.Enums, en)
		}
	}
	for i := range p.Levels {
		out.Levels = append(out.Levels, LevelFromV092(&p.Levels[i]))
	}
	return out
}

func LevelFromV092(l *v092.Level) Level {
	out := Level{
		UID:             l.UID,
		Identifier:      l.Identifier,
		WorldX:          l.WorldX,
		WorldY:          l.WorldY,
		PxWid:           l.PxWid,
		PxHei:           l.PxHei,
		BgColor:         parseColor(l.BgColor),
		BgRelPath:       l.BgRelPath.Or(""),
		ExternalRelPath: l.ExternalRelPath.Or(""),
		External:        l.IsExternal(),
		Fields:          convertFields092(l.FieldInstances),
	}
	for _, n := range l.Neighbours {
		out.Neighbours = append(out.Neighbours, Neighbour{Dir: n.Dir, LevelUID: n.LevelUID})
	}
	for _, li := range l.LayerInstances.Or(nil) {
		layer := Layer{
			Identifier:     li.Identifier,
			Kind:           LayerKind(li.Kind),
			DefUID:         li.LayerDefUID,
			GridSize:       li.GridSize,
			CWid:           li.CWid,
			CHei:           li.CHei,
			Opacity:        li.Opacity,
			OffsetX:        li.PxTotalOffsetX,
			OffsetY:        li.PxTotalOffsetY,
			TilesetUID:     li.OverrideTilesetUID.Or(li.TilesetDefUID.Or(-1)),
			TilesetRelPath: li.TilesetRelPath.Or(""),
			Visible:        li.Visible,
		}
		if li.Kind == v092.LayerIntGrid {
			layer.IntGrid = denseCSV(li.IntGridCSV, li.CWid, li.CHei)
		}
		for _, list := range [][]v092.TileInstance{li.GridTiles, li.AutoLayerTiles} {
			for _, t := range list {
				layer.Tiles = append(layer.Tiles, Tile{ID: t.T, Px: point(t.Px), Src: point(t.Src), FlipX: t.FlipX(), FlipY: t.FlipY()})
			}
		}
		for _, e := range li.EntityInstances {
			ent := Entity{
				Identifier: e.Identifier,
				DefUID:     e.DefUID,
				Px:         point(e.Px),
				Grid:       point(e.Grid),
				Width:      e.Width,
				Height:     e.Height,
				Fields:     convertFields092(e.FieldInstances),
			}
			ent.PivotX, ent.PivotY = pivot(e.Pivot)
			layer.Entities = append(layer.Entities, ent)
		}
		out.Layers = append(out.Layers, layer)
	}
	return out
}

func convertFields092(fields []v092.FieldInstance) []Field {
	var out []Field
	for _, f := range fields {
		out = append(out, Field{
			Identifier: f.Identifier,
			Type:       wire.ParseTypeName(f.FieldType),
			DefUID:     f.DefUID,
			Value:      f.Value.Or(wire.Null()),
		})
	}
	return out
}

// FromV113 builds the view of a 1.1.3 project. Levels of every world are
// appended after the top level ones, matching Project.AllLevels.
func FromV113(p *v113.Project) *Project {
	out := &Project{
		JSONVersion:    p.JSONVersion,
		WorldLayout:    string(p.WorldLayout.Or("")),
		BgColor:        parseColor(p.BgColor),
		ExternalLevels: p.ExternalLevels,
	}
	defs := &p.Defs
	for _, t := range defs.Tilesets {
		ts := Tileset{
			UID:          t.UID,
			Identifier:   t.Identifier,
			RelPath:      t.RelPath.Or(""),
			PxWid:        t.PxWid,
			PxHei:        t.PxHei,
			TileGridSize: t.TileGridSize,
			Spacing:      t.Spacing,
			Padding:      t.Padding,
		}
		if len(t.CustomData) > 0 {
			ts.CustomData = make(map[int]string, len(t.CustomData))
			for _, c := range t.CustomData {
				ts.CustomData[c.TileID] = c.Data
			}
		}
		if len(t.EnumTags) > 0 {
			ts.EnumTags = make(map[string][]int, len(t.EnumTags))
			for _, e := range t.EnumTags {
				ts.EnumTags[e.EnumValueID] = e.TileIDs
			}
		}
		out.Defs.Tilesets = append(out.Defs.Tilesets, ts)
	}
	for _, l := range defs.Layers {
		ld := LayerDef{
			UID:        l.UID,
			Identifier: l.Identifier,
			Kind:       LayerKind(l.Kind),
			GridSize:   l.GridSize,
			Opacity:    l.DisplayOpacity,
			TilesetUID: l.TilesetDefUID.Or(-1),
		}
		for _, v := range l.IntGridValues {
			ld.IntGridValues = append(ld.IntGridValues, IntGridValue{
				Value:      v.Value,
				Identifier: v.Identifier.Or(""),
				Color:      parseColor(v.Color),
			})
		}
		out.Defs.Layers = append(out.Defs.Layers, ld)
	}
	for _, e := range defs.Entities {
		out.Defs.Entities = append(out.Defs.Entities, EntityDef{
			UID:        e.UID,
			Identifier: e.Identifier,
			Width:      e.Width,
			Height:     e.Height,
			Color:      parseColor(e.Color),
			PivotX:     e.PivotX,
			PivotY:     e.PivotY,
			Tags:       e.Tags,
		})
	}
	for _, list := range []struct {
		enums    []v113.EnumDefinition
		external bool
	}{{defs.Enums, false}, {defs.ExternalEnums, true}} {
		for _, e := range list.enums {
			en := Enum{UID: e.UID, Identifier: e.Identifier, External: list.external}
			for _, v := range e.Values {
				en.Values = append(en.Values, v.ID)
			}
			out.Defs.Enums = append(out.Defs.Enums, en)
		}
	}

	for i := range p.Levels {
		out.Levels = append(out.Levels, LevelFromV113(&p.Levels[i]))
	}
	for _, w := range p.Worlds {
		world := World{
			IID:        parseIID(w.IID),
			Identifier: w.Identifier,
			Layout:     string(w.WorldLayout.Or("")),
			GridWidth:  w.WorldGridWidth,
			GridHeight: w.WorldGridHeight,
		}
		for i := range w.Levels {
			world.Levels = append(world.Levels, len(out.Levels))
			out.Levels = append(out.Levels, LevelFromV113(&w.Levels[i]))
		}
		out.Worlds = append(out.Worlds, world)
	}
	return out
}

func LevelFromV113(l *v113.Level) Level {
	out := Level{
		UID:             l.UID,
		IID:             parseIID(l.IID),
		Identifier:      l.Identifier,
		WorldX:          l.WorldX,
		WorldY:          l.WorldY,
		WorldDepth:      l.WorldDepth,
		PxWid:           l.PxWid,
		PxHei:           l.PxHei,
		BgColor:         parseColor(l.BgColor),
		BgRelPath:       l.BgRelPath.Or(""),
		ExternalRelPath: l.ExternalRelPath.Or(""),
		External:        l.IsExternal(),
		Fields:          convertFields113(l.FieldInstances),
	}
	for _, n := range l.Neighbours {
		out.Neighbours = append(out.Neighbours, Neighbour{
			Dir:      n.Dir,
			LevelUID: n.LevelUID.Or(-1),
			LevelIID: parseIID(n.LevelIID),
		})
	}
	for _, li := range l.LayerInstances.Or(nil) {
		layer := Layer{
			Identifier:     li.Identifier,
			IID:            parseIID(li.IID),
			Kind:           LayerKind(li.Kind),
			DefUID:         li.LayerDefUID,
			GridSize:       li.GridSize,
			CWid:           li.CWid,
			CHei:           li.CHei,
			Opacity:        li.Opacity,
			OffsetX:        li.PxTotalOffsetX,
			OffsetY:        li.PxTotalOffsetY,
			TilesetUID:     li.OverrideTilesetUID.Or(li.TilesetDefUID.Or(-1)),
			TilesetRelPath: li.TilesetRelPath.Or(""),
			Visible:        li.Visible,
		}
		if li.Kind == v113.LayerIntGrid {
			layer.IntGrid = denseCSV(li.IntGridCSV, li.CWid, li.CHei)
		}
		for _, list := range [][]v113.TileInstance{li.GridTiles, li.AutoLayerTiles} {
			for _, t := range list {
				layer.Tiles = append(layer.Tiles, Tile{ID: t.T, Px: point(t.Px), Src: point(t.Src), FlipX: t.FlipX(), FlipY: t.FlipY()})
			}
		}
		for _, e := range li.EntityInstances {
			ent := Entity{
				Identifier: e.Identifier,
				IID:        parseIID(e.IID),
				DefUID:     e.DefUID,
				Px:         point(e.Px),
				Grid:       point(e.Grid),
				Width:      e.Width,
				Height:     e.Height,
				Tags:       e.Tags,
				Fields:     convertFields113(e.FieldInstances),
			}
			ent.PivotX, ent.PivotY = pivot(e.Pivot)
			layer.Entities = append(layer.Entities, ent)
		}
		out.Layers = append(out.Layers, layer)
	}
	return out
}

func convertFields113(fields []v113.FieldInstance) []Field {
	var out []Field
	for _, f := range fields {
		field := Field{
			Identifier: f.Identifier,
			Type:       wire.ParseTypeName(f.FieldType),
			DefUID:     f.DefUID,
		}
		if v, ok := f.Value.Get(); ok {
			field.Value = fieldValueAny(v)
		}
		out = append(out, field)
	}
	return out
}

// fieldValueAny re-reads a typed value as a plain JSON value.
func fieldValueAny(v v113.FieldValue) wire.Any {
	b, err := v.MarshalJSON()
	if err != nil {
		return wire.Null()
	}
	var a wire.Any
	if err := wire.Unmarshal(b, &a); err != nil {
		return wire.Null()
	}
	return a
}

// denseCSV copies a CSV grid, padding or trimming it to cwid*chei cells.
func denseCSV(csv []int, cwid, chei int) []int {
	if cwid <= 0 || chei <= 0 {
		return nil
	}
	cells := make([]int, cwid*chei)
	copy(cells, csv)
	return cells
}

func point(xy []int) image.Point {
	if len(xy) < 2 {
		return image.Point{}
	}
	return image.Pt(xy[0], xy[1])
}

func pivot(p []float64) (float64, float64) {
	if len(p) < 2 {
		return 0, 0
	}
	return p[0], p[1]
}

// parseColor is lenient: a malformed colour becomes transparent black.
func parseColor(s string) color.NRGBA {
	c, err := config.ParseHex(s)
	if err != nil {
		return color.NRGBA{}
	}
	return c
}

func parseIID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func anyString(a wire.Any) string {
	s, _ := a.Str()
	return s
}
