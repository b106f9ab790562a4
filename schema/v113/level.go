package v113

import "github.com/milk9111/ldtk/wire"

type Level struct {
	BgColor           string                              `json:"__bgColor"`
	BgPos             wire.Field[LevelBackgroundPosition] `json:"__bgPos"`
	Neighbours        []NeighbourLevel                    `json:"__neighbours"`
	SmartColor        string                              `json:"__smartColor"`
	LevelBgColor      wire.Field[string]                  `json:"bgColor"`
	BgPivotX          float64                             `json:"bgPivotX"`
	BgPivotY          float64                             `json:"bgPivotY"`
	LevelBgPos        wire.Field[BgPos]                   `json:"bgPos"`
	BgRelPath         wire.Field[string]                  `json:"bgRelPath"`
	ExternalRelPath   wire.Field[string]                  `json:"externalRelPath"`
	FieldInstances    []FieldInstance                     `json:"fieldInstances"`
	Identifier        string                              `json:"identifier"`
	IID               string                              `json:"iid"`
	LayerInstances    wire.Field[[]LayerInstance]         `json:"layerInstances"`
	PxHei             int                                 `json:"pxHei"`
	PxWid             int                                 `json:"pxWid"`
	UID               int                                 `json:"uid"`
	UseAutoIdentifier bool                                `json:"useAutoIdentifier"`
	WorldDepth        int                                 `json:"worldDepth"`
	WorldX            int                                 `json:"worldX"`
	WorldY            int                                 `json:"worldY"`
	Extra             wire.Extra                          `json:"-"`
}

// IsExternal reports whether the level body lives in a separate file that
// has not been merged in yet.
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

// Entity finds an entity instance by iid across every loaded layer.
func (l *Level) Entity(iid string) (*EntityInstance, bool) {
	layers := l.LayerInstances.Ptr()
	if layers == nil {
		return nil, false
	}
	for i := range *layers {
		ents := (*layers)[i].EntityInstances
		for j := range ents {
			if ents[j].IID == iid {
				return &ents[j], true
			}
		}
	}
	return nil, false
}

type LevelBackgroundPosition struct {
	CropRect  []float64  `json:"cropRect"`
	Scale     []float64  `json:"scale"`
	TopLeftPx []int      `json:"topLeftPx"`
	Extra     wire.Extra `json:"-"`
}

// NeighbourLevel points at an adjacent level. LevelUID predates iids and is
// only retained.
type NeighbourLevel struct {
	Dir      string          `json:"dir"`
	LevelIID string          `json:"levelIid"`
	LevelUID wire.Field[int] `json:"levelUid"`
	Extra    wire.Extra      `json:"-"`
}

// LayerInstance is one layer of a level. IntGrid is only written when the
// project sets ExportPreCsvIntGridFormat; IntGridCSV is authoritative.
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
	IID                string                             `json:"iid"`
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

// Tiles returns grid tiles for Tiles layers and auto tiles otherwise.
func (l *LayerInstance) Tiles() []TileInstance {
	if l.Kind == LayerTiles {
		return l.GridTiles
	}
	return l.AutoLayerTiles
}

type IntGridValueInstance struct {
	CoordID int        `json:"coordId"`
	V       int        `json:"v"`
	Extra   wire.Extra `json:"-"`
}

// TileInstance is one placed tile. F holds the flip bits: 1 for X, 2 for Y.
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
	Grid           []int                        `json:"__grid"`
	Identifier     string                       `json:"__identifier"`
	Pivot          []float64                    `json:"__pivot"`
	SmartColor     string                       `json:"__smartColor"`
	Tags           []string                     `json:"__tags"`
	Tile           wire.Field[TilesetRectangle] `json:"__tile"`
	DefUID         int                          `json:"defUid"`
	FieldInstances []FieldInstance              `json:"fieldInstances"`
	Height         int                          `json:"height"`
	IID            string                       `json:"iid"`
	Px             []int                        `json:"px"`
	Width          int                          `json:"width"`
	Extra          wire.Extra                   `json:"-"`
}

func (e *EntityInstance) Field(identifier string) (*FieldInstance, bool) {
	return findField(e.FieldInstances, identifier)
}

// FieldInstance is a custom field value. Value is decoded according to
// FieldType, so a value whose JSON kind disagrees with its declared type is
// rejected at load time.
type FieldInstance struct {
	Identifier       string                       `json:"__identifier"`
	Tile             wire.Field[TilesetRectangle] `json:"__tile"`
	FieldType        string                       `json:"__type"`
	Value            wire.Field[FieldValue]       `json:"__value" wire:"by=__type"`
	DefUID           int                          `json:"defUid"`
	RealEditorValues []wire.Any                   `json:"realEditorValues"`
	Extra            wire.Extra                   `json:"-"`
}

type FieldInstanceEntityReference struct {
	EntityIID string     `json:"entityIid"`
	LayerIID  string     `json:"layerIid"`
	LevelIID  string     `json:"levelIid"`
	WorldIID  string     `json:"worldIid"`
	Extra     wire.Extra `json:"-"`
}

type FieldInstanceGridPoint struct {
	Cx    int        `json:"cx"`
	Cy    int        `json:"cy"`
	Extra wire.Extra `json:"-"`
}

func findField(fields []FieldInstance, identifier string) (*FieldInstance, bool) {
	for i := range fields {
		if fields[i].Identifier == identifier {
			return &fields[i], true
		}
	}
	return nil, false
}
