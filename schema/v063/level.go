package v063

import (
	"fmt"

	"github.com/milk9111/ldtk/wire"
)

type Level struct {
	BgColor         string                      `json:"__bgColor"`
	Neighbours      []map[string]wire.Any       `json:"__neighbours"`
	LevelBgColor    wire.Field[string]          `json:"bgColor"`
	ExternalRelPath wire.Field[string]          `json:"externalRelPath"`
	Identifier      string                      `json:"identifier"`
	LayerInstances  wire.Field[[]LayerInstance] `json:"layerInstances"`
	PxHei           int                         `json:"pxHei"`
	PxWid           int                         `json:"pxWid"`
	UID             int                         `json:"uid"`
	WorldX          int                         `json:"worldX"`
	WorldY          int                         `json:"worldY"`
	Extra           wire.Extra                  `json:"-"`
}

// IsExternal reports whether the level is a stub whose layers live in a
// separate file.
func (l *Level) IsExternal() bool {
	return l.ExternalRelPath.IsPresent() && !l.LayerInstances.IsPresent()
}

// Layer finds a layer instance by identifier.
func (l *Level) Layer(identifier string) (*LayerInstance, bool) {
	layers := l.LayerInstances.Ptr()
	if layers == nil {
		return nil, false
	}
	for i := range *layers {
		if (*layers)[i].Identifier == identifier {
			return &(*layers)[i], true
		}
	}
	return nil, false
}

type LayerInstance struct {
	CHei            int                    `json:"__cHei"`
	CWid            int                    `json:"__cWid"`
	GridSize        int                    `json:"__gridSize"`
	Identifier      string                 `json:"__identifier"`
	Opacity         float64                `json:"__opacity"`
	PxTotalOffsetX  int                    `json:"__pxTotalOffsetX"`
	PxTotalOffsetY  int                    `json:"__pxTotalOffsetY"`
	TilesetDefUID   wire.Field[int]        `json:"__tilesetDefUid"`
	TilesetRelPath  wire.Field[string]     `json:"__tilesetRelPath"`
	Kind            LayerType              `json:"__type"`
	AutoLayerTiles  []TileInstance         `json:"autoLayerTiles"`
	EntityInstances []EntityInstance       `json:"entityInstances"`
	GridTiles       []TileInstance         `json:"gridTiles"`
	IntGrid         []IntGridValueInstance `json:"intGrid"`
	LayerDefUID     int                    `json:"layerDefUid"`
	LevelID         int                    `json:"levelId"`
	PxOffsetX       int                    `json:"pxOffsetX"`
	PxOffsetY       int                    `json:"pxOffsetY"`
	Seed            int                    `json:"seed"`
	Extra           wire.Extra             `json:"-"`
}

// IntGridDense expands the sparse int grid into a row-major slice of
// CWid*CHei cells. The sparse v is a 0-based index into the layer def's
// intGridValues; dense cells hold v+1 so that 0 stays empty, as in later
// revisions' intGridCsv. Entries whose coordId falls outside the grid are
// dropped.
func (l *LayerInstance) IntGridDense() []int {
	if l.CWid <= 0 || l.CHei <= 0 {
		return nil
	}
	cells := make([]int, l.CWid*l.CHei)
	for _, v := range l.IntGrid {
		if v.CoordID >= 0 && v.CoordID < len(cells) {
			cells[v.CoordID] = v.V + 1
		}
	}
	return cells
}

// IntGridValueInstance is one populated cell of a sparse int grid.
type IntGridValueInstance struct {
	CoordID int        `json:"coordId"`
	V       int        `json:"v"`
	Extra   wire.Extra `json:"-"`
}

// TileInstance is one tile placement. F holds the flip bits.
type TileInstance struct {
	D     []int      `json:"d"`
	F     int        `json:"f"`
	Px    []int      `json:"px"`
	Src   []int      `json:"src"`
	T     int        `json:"t"`
	Extra wire.Extra `json:"-"`
}

func (t TileInstance) FlipX() bool { return t.F&1 != 0 }
func (t TileInstance) FlipY() bool { return t.F&2 != 0 }

type EntityInstance struct {
	Grid           []int                           `json:"__grid"`
	Identifier     string                          `json:"__identifier"`
	Tile           wire.Field[map[string]wire.Any] `json:"__tile"`
	DefUID         int                             `json:"defUid"`
	FieldInstances []FieldInstance                 `json:"fieldInstances"`
	Px             []int                           `json:"px"`
	Extra          wire.Extra                      `json:"-"`
}

// Field finds a field instance by identifier.
func (e *EntityInstance) Field(identifier string) (*FieldInstance, bool) {
	for i := range e.FieldInstances {
		if e.FieldInstances[i].Identifier == identifier {
			return &e.FieldInstances[i], true
		}
	}
	return nil, false
}

type FieldInstance struct {
	Identifier       string               `json:"__identifier"`
	FieldType        string               `json:"__type"`
	Value            wire.Field[wire.Any] `json:"__value"`
	DefUID           int                  `json:"defUid"`
	RealEditorValues []wire.Any           `json:"realEditorValues"`
	Extra            wire.Extra           `json:"-"`
}

// Typed parses the declared type and checks the held value against it.
// The value is kept untyped in this revision, so the check runs on demand
// rather than at decode time.
func (f *FieldInstance) Typed() (wire.TypeName, error) {
	tn := wire.ParseTypeName(f.FieldType)
	v, ok := f.Value.Get()
	if !ok {
		return tn, nil
	}
	if err := tn.Check(v); err != nil {
		return tn, fmt.Errorf("v063: field %s: __value: %w", f.Identifier, err)
	}
	return tn, nil
}
