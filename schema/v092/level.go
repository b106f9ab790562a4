package v092

import (
	"fmt"

	"github.com/milk9111/ldtk/wire"
)

type Level struct {
	BgColor           string                              `json:"__bgColor"`
	BgPos             wire.Field[LevelBackgroundPosition] `json:"__bgPos"`
	Neighbours        []NeighbourLevel                    `json:"__neighbours"`
	LevelBgColor      wire.Field[string]                  `json:"bgColor"`
	BgPivotX          float64                             `json:"bgPivotX"`
	BgPivotY          float64                             `json:"bgPivotY"`
	LevelBgPos        wire.Field[BgPos]                   `json:"bgPos"`
	BgRelPath         wire.Field[string]                  `json:"bgRelPath"`
	ExternalRelPath   wire.Field[string]                  `json:"externalRelPath"`
	FieldInstances    []FieldInstance                     `json:"fieldInstances"`
	Identifier        string                              `json:"identifier"`
	LayerInstances    wire.Field[[]LayerInstance]         `json:"layerInstances"`
	PxHei             int                                 `json:"pxHei"`
	PxWid             int                                 `json:"pxWid"`
	UID               int                                 `json:"uid"`
	UseAutoIdentifier bool                                `json:"useAutoIdentifier"`
	WorldX            int                                 `json:"worldX"`
	WorldY            int                                 `json:"worldY"`
	Extra             wire.Extra                          `json:"-"`
}

func (l *Level) IsExternal() bool {
	return l.ExternalRelPath.IsPresent() && !l.LayerInstances.IsPresent()
}

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

func (l *Level) Field(identifier string) (*FieldInstance, bool) {
	return findField(l.FieldInstances, identifier)
}

type LevelBackgroundPosition struct {
	CropRect  []float64  `json:"cropRect"`
	Scale     []float64  `json:"scale"`
	TopLeftPx []int      `json:"topLeftPx"`
	Extra     wire.Extra `json:"-"`
}

type NeighbourLevel struct {
	Dir      string     `json:"dir"`
	LevelUID int        `json:"levelUid"`
	Extra    wire.Extra `json:"-"`
}

// LayerInstance is one layer of a level. IntGrid is the sparse encoding the
// editor stopped writing after 0.9.1; it is kept when present but IntGridCSV
// is authoritative.
type LayerInstance struct {
	CHei               int                                `json:"__cHei"`
	CWid               int                                `json:"__cWid"`
	GridSize           int                                `json:"__gridSize"`
	Identifier         string                             `json:"__identifier"`
	Opacity            float64                            `json:"__opacity"`
	PxTotalOffsetX     int                                `json:"__pxTotalOffsetX"`
	PxTotalOffsetY     int                                `json:"__pxTotalOffsetY"`
	TilesetDefUID      wire.Field[int]                    `json:"__tilesetDefUid"`
	TilesetRelPath     wire.Field[string]                 `json:"__tilesetRelPath"`
	Kind               LayerType                          `json:"__type"`
	AutoLayerTiles     []TileInstance                     `json:"autoLayerTiles"`
	EntityInstances    []EntityInstance                   `json:"entityInstances"`
	GridTiles          []TileInstance                     `json:"gridTiles"`
	IntGrid            wire.Field[[]IntGridValueInstance] `json:"intGrid"`
	IntGridCSV         []int                              `json:"intGridCsv"`
	LayerDefUID        int                                `json:"layerDefUid"`
	LevelID            int                                `json:"levelId"`
	OptionalRules      []int                              `json:"optionalRules"`
	OverrideTilesetUID wire.Field[int]                    `json:"overrideTilesetUid"`
	PxOffsetX          int                                `json:"pxOffsetX"`
	PxOffsetY          int                                `json:"pxOffsetY"`
	Seed               int                                `json:"seed"`
	Visible            bool                               `json:"visible"`
	Extra              wire.Extra                         `json:"-"`
}

// IntGridAt returns the value of cell (cx, cy), 0 for empty or out of range.
func (l *LayerInstance) IntGridAt(cx, cy int) int {
	if cx < 0 || cy < 0 || cx >= l.CWid || cy >= l.CHei {
		return 0
	}
	i := cy*l.CWid + cx
	if i >= len(l.IntGridCSV) {
		return 0
	}
	return l.IntGridCSV[i]
}

type IntGridValueInstance struct {
	CoordID int        `json:"coordId"`
	V       int        `json:"v"`
	Extra   wire.Extra `json:"-"`
}

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
	Grid           []int                          `json:"__grid"`
	Identifier     string                         `json:"__identifier"`
	Pivot          []float64                      `json:"__pivot"`
	Tile           wire.Field[EntityInstanceTile] `json:"__tile"`
	DefUID         int                            `json:"defUid"`
	FieldInstances []FieldInstance                `json:"fieldInstances"`
	Height         int                            `json:"height"`
	Px             []int                          `json:"px"`
	Width          int                            `json:"width"`
	Extra          wire.Extra                     `json:"-"`
}

func (e *EntityInstance) Field(identifier string) (*FieldInstance, bool) {
	return findField(e.FieldInstances, identifier)
}

// EntityInstanceTile points at the tileset rectangle used to draw an entity.
type EntityInstanceTile struct {
	SrcRect    []int      `json:"srcRect"`
	TilesetUID int        `json:"tilesetUid"`
	Extra      wire.Extra `json:"-"`
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
func (f *FieldInstance) Typed() (wire.TypeName, error) {
	tn := wire.ParseTypeName(f.FieldType)
	v, ok := f.Value.Get()
	if !ok {
		return tn, nil
	}
	if err := tn.Check(v); err != nil {
		return tn, fmt.Errorf("v092: field %s: __value: %w", f.Identifier, err)
	}
	return tn, nil
}

func findField(fields []FieldInstance, identifier string) (*FieldInstance, bool) {
	for i := range fields {
		if fields[i].Identifier == identifier {
			return &fields[i], true
		}
	}
	return nil, false
}
