// Package levels is a read-only, revision-independent view of a decoded
// project. Editor bookkeeping is dropped, double-underscore names become
// plain fields, colours are parsed, iids become UUIDs and int grids are
// always dense.
//
// A view is built once from a schema tree and never written back.
package levels

import (
	"image"
	"image/color"

	"github.com/google/uuid"
	"github.com/milk9111/ldtk/wire"
)

type LayerKind string

const (
	IntGrid   LayerKind = "IntGrid"
	Entities  LayerKind = "Entities"
	Tiles     LayerKind = "Tiles"
	AutoLayer LayerKind = "AutoLayer"
)

type Project struct {
	JSONVersion    string
	WorldLayout    string
	BgColor        color.NRGBA
	ExternalLevels bool
	Defs           Defs
	Levels         []Level
	Worlds         []World
}

// World groups levels in multi-world projects. Levels holds indexes into
// Project.Levels.
type World struct {
	IID        uuid.UUID
	Identifier string
	Layout     string
	GridWidth  int
	GridHeight int
	Levels     []int
}

type Defs struct {
	Tilesets []Tileset
	Layers   []LayerDef
	Entities []EntityDef
	Enums    []Enum
}

type Tileset struct {
	UID          int
	Identifier   string
	RelPath      string
	PxWid        int
	PxHei        int
	TileGridSize int
	Spacing      int
	Padding      int
	// CustomData maps tile ids to their custom data string.
	CustomData map[int]string
	// EnumTags maps enum value ids to the tile ids tagged with them.
	EnumTags map[string][]int
}

// TileRect is the source rectangle of a tile id inside the tileset image.
func (t *Tileset) TileRect(id int) image.Rectangle {
	step := t.TileGridSize + t.Spacing
	if step <= 0 {
		return image.Rectangle{}
	}
	cols := (t.PxWid - 2*t.Padding + t.Spacing) / step
	if cols <= 0 {
		return image.Rectangle{}
	}
	x := t.Padding + (id%cols)*step
	y := t.Padding + (id/cols)*step
	return image.Rect(x, y, x+t.TileGridSize, y+t.TileGridSize)
}

type LayerDef struct {
	UID           int
	Identifier    string
	Kind          LayerKind
	GridSize      int
	Opacity       float64
	TilesetUID    int
	IntGridValues []IntGridValue
}

// IntGridValue finds the definition for a cell value.
func (l *LayerDef) IntGridValue(v int) (*IntGridValue, bool) {
	for i := range l.IntGridValues {
		if l.IntGridValues[i].Value == v {
			return &l.IntGridValues[i], true
		}
	}
	return nil, false
}

type IntGridValue struct {
	Value      int
	Identifier string
	Color      color.NRGBA
}

type EntityDef struct {
	UID        int
	Identifier string
	Width      int
	Height     int
	Color      color.NRGBA
	PivotX     float64
	PivotY     float64
	Tags       []string
}

type Enum struct {
	UID        int
	Identifier string
	Values     []string
	External   bool
}

func (d *Defs) Tileset(uid int) (*Tileset, bool) {
	for i := range d.Tilesets {
		if d.Tilesets[i].UID == uid {
			return &d.Tilesets[i], true
		}
	}
	return nil, false
}

func (d *Defs) LayerDef(uid int) (*LayerDef, bool) {
	for i := range d.Layers {
		if d.Layers[i].UID == uid {
			return &d.Layers[i], true
		}
	}
	return nil, false
}

func (d *Defs) EntityDef(uid int) (*EntityDef, bool) {
	for i := range d.Entities {
		if d.Entities[i].UID == uid {
			return &d.Entities[i], true
		}
	}
	return nil, false
}

// SizeEntities gives entities of l that carry no size of their own (0.6.3
// instances) the width, height and pivot of their definition. Entities whose
// definition is missing keep a zero size.
func (d *Defs) SizeEntities(l *Level) {
	for li := range l.Layers {
		ents := l.Layers[li].Entities
		for ei := range ents {
			e := &ents[ei]
			if e.Width != 0 || e.Height != 0 {
				continue
			}
			if def, ok := d.EntityDef(e.DefUID); ok {
				e.Width, e.Height = def.Width, def.Height
				e.PivotX, e.PivotY = def.PivotX, def.PivotY
			}
		}
	}
}

func (d *Defs) Enum(uid int) (*Enum, bool) {
	for i := range d.Enums {
		if d.Enums[i].UID == uid {
			return &d.Enums[i], true
		}
	}
	return nil, false
}

type Level struct {
	UID             int
	IID             uuid.UUID
	Identifier      string
	WorldX          int
	WorldY          int
	WorldDepth      int
	PxWid           int
	PxHei           int
	BgColor         color.NRGBA
	BgRelPath       string
	ExternalRelPath string
	// External is set while the layers still live in ExternalRelPath.
	External   bool
	Fields     []Field
	Neighbours []Neighbour
	Layers     []Layer
}

// Bounds is the level rectangle in world pixels.
func (l *Level) Bounds() image.Rectangle {
	return image.Rect(l.WorldX, l.WorldY, l.WorldX+l.PxWid, l.WorldY+l.PxHei)
}

func (l *Level) Layer(identifier string) (*Layer, bool) {
	for i := range l.Layers {
		if l.Layers[i].Identifier == identifier {
			return &l.Layers[i], true
		}
	}
	return nil, false
}

func (l *Level) Field(identifier string) (*Field, bool) {
	return findField(l.Fields, identifier)
}

// Merge returns a copy of l with the layers of resolved, which is the same
// level read from its external file. l itself is not changed, so merging the
// same file twice gives equal results.
func (l Level) Merge(resolved Level) Level {
	out := l
	out.Layers = append([]Layer(nil), resolved.Layers...)
	if len(out.Fields) == 0 {
		out.Fields = resolved.Fields
	}
	out.External = false
	return out
}

func (p *Project) Level(identifier string) (*Level, bool) {
	for i := range p.Levels {
		if p.Levels[i].Identifier == identifier {
			return &p.Levels[i], true
		}
	}
	return nil, false
}

func (p *Project) LevelByUID(uid int) (*Level, bool) {
	for i := range p.Levels {
		if p.Levels[i].UID == uid {
			return &p.Levels[i], true
		}
	}
	return nil, false
}

// Neighbour points at an adjacent level. Older projects only carry the uid,
// newer ones only the iid; the missing one is -1 or uuid.Nil.
type Neighbour struct {
	Dir      string
	LevelUID int
	LevelIID uuid.UUID
}

type Layer struct {
	Identifier     string
	IID            uuid.UUID
	Kind           LayerKind
	DefUID         int
	GridSize       int
	CWid           int
	CHei           int
	Opacity        float64
	OffsetX        int
	OffsetY        int
	TilesetUID     int
	TilesetRelPath string
	Visible        bool
	// IntGrid is row-major, CWid*CHei cells, 0 for empty.
	IntGrid  []int
	Tiles    []Tile
	Entities []Entity
}

// IntGridAt returns the value of cell (cx, cy), 0 for empty or out of range.
func (l *Layer) IntGridAt(cx, cy int) int {
	if cx < 0 || cy < 0 || cx >= l.CWid || cy >= l.CHei {
		return 0
	}
	i := cy*l.CWid + cx
	if i >= len(l.IntGrid) {
		return 0
	}
	return l.IntGrid[i]
}

type Tile struct {
	ID    int
	Px    image.Point
	Src   image.Point
	FlipX bool
	FlipY bool
}

type Entity struct {
	Identifier string
	IID        uuid.UUID
	DefUID     int
	Px         image.Point
	Grid       image.Point
	Width      int
	Height     int
	PivotX     float64
	PivotY     float64
	Tags       []string
	Fields     []Field
}

// Bounds is the entity rectangle in level pixels, placed by its pivot.
func (e *Entity) Bounds() image.Rectangle {
	x := e.Px.X - int(e.PivotX*float64(e.Width))
	y := e.Px.Y - int(e.PivotY*float64(e.Height))
	return image.Rect(x, y, x+e.Width, y+e.Height)
}

func (e *Entity) Field(identifier string) (*Field, bool) {
	return findField(e.Fields, identifier)
}

// Field is a custom field value with its declared type.
type Field struct {
	Identifier string
	Type       wire.TypeName
	DefUID     int
	Value      wire.Any
}

func findField(fields []Field, identifier string) (*Field, bool) {
	for i := range fields {
		if fields[i].Identifier == identifier {
			return &fields[i], true
		}
	}
	return nil, false
}
