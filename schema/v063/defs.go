package v063

import "github.com/milk9111/ldtk/wire"

type EntityDefinition struct {
	Color          string                     `json:"color"`
	FieldDefs      []FieldDefinition          `json:"fieldDefs"`
	Height         int                        `json:"height"`
	Identifier     string                     `json:"identifier"`
	LimitBehavior  wire.Field[LimitBehavior]  `json:"limitBehavior"`
	MaxPerLevel    int                        `json:"maxPerLevel"`
	PivotX         float64                    `json:"pivotX"`
	PivotY         float64                    `json:"pivotY"`
	RenderMode     wire.Field[RenderMode]     `json:"renderMode"`
	ShowName       bool                       `json:"showName"`
	TileID         wire.Field[int]            `json:"tileId"`
	TileRenderMode wire.Field[TileRenderMode] `json:"tileRenderMode"`
	TilesetID      wire.Field[int]            `json:"tilesetId"`
	UID            int                        `json:"uid"`
	Width          int                        `json:"width"`
	Extra          wire.Extra                 `json:"-"`
}

// FieldDefinition describes one custom field. In this revision the editor
// wrote Type either as a bare name ("F_Int") or as an object carrying
// parameters ({"id":"F_Enum","params":["Weapon"]}).
type FieldDefinition struct {
	FieldType         string                          `json:"__type"`
	AcceptFileTypes   wire.Field[[]string]            `json:"acceptFileTypes"`
	ArrayMaxLength    wire.Field[int]                 `json:"arrayMaxLength"`
	ArrayMinLength    wire.Field[int]                 `json:"arrayMinLength"`
	CanBeNull         bool                            `json:"canBeNull"`
	DefaultOverride   wire.Field[wire.Any]            `json:"defaultOverride"`
	EditorAlwaysShow  bool                            `json:"editorAlwaysShow"`
	EditorDisplayMode wire.Field[EditorDisplayMode]   `json:"editorDisplayMode"`
	EditorDisplayPos  wire.Field[EditorDisplayPos]    `json:"editorDisplayPos"`
	Identifier        string                          `json:"identifier"`
	IsArray           bool                            `json:"isArray"`
	Max               wire.Field[float64]             `json:"max"`
	Min               wire.Field[float64]             `json:"min"`
	Regex             wire.Field[string]              `json:"regex"`
	Type              wire.Field[wire.StringOrObject] `json:"type"`
	UID               int                             `json:"uid"`
	Extra             wire.Extra                      `json:"-"`
}

type EnumDefinition struct {
	ExternalFileChecksum wire.Field[string]    `json:"externalFileChecksum"`
	ExternalRelPath      wire.Field[string]    `json:"externalRelPath"`
	IconTilesetUID       wire.Field[int]       `json:"iconTilesetUid"`
	Identifier           string                `json:"identifier"`
	UID                  int                   `json:"uid"`
	Values               []map[string]wire.Any `json:"values"`
	Extra                wire.Extra            `json:"-"`
}

type LayerDefinition struct {
	Kind                  LayerType             `json:"__type"`
	AutoRuleGroups        []map[string]wire.Any `json:"autoRuleGroups"`
	AutoSourceLayerDefUID wire.Field[int]       `json:"autoSourceLayerDefUid"`
	AutoTilesetDefUID     wire.Field[int]       `json:"autoTilesetDefUid"`
	DisplayOpacity        float64               `json:"displayOpacity"`
	GridSize              int                   `json:"gridSize"`
	Identifier            string                `json:"identifier"`
	IntGridValues         []map[string]wire.Any `json:"intGridValues"`
	PxOffsetX             int                   `json:"pxOffsetX"`
	PxOffsetY             int                   `json:"pxOffsetY"`
	TilePivotX            float64               `json:"tilePivotX"`
	TilePivotY            float64               `json:"tilePivotY"`
	TilesetDefUID         wire.Field[int]       `json:"tilesetDefUid"`
	Type                  wire.Field[LayerType] `json:"type"`
	UID                   int                   `json:"uid"`
	Extra                 wire.Extra            `json:"-"`
}

type TilesetDefinition struct {
	CachedPixelData wire.Field[map[string]wire.Any] `json:"cachedPixelData"`
	Identifier      string                          `json:"identifier"`
	Padding         int                             `json:"padding"`
	PxHei           int                             `json:"pxHei"`
	PxWid           int                             `json:"pxWid"`
	RelPath         string                          `json:"relPath"`
	SavedSelections []map[string]wire.Any           `json:"savedSelections"`
	Spacing         int                             `json:"spacing"`
	TileGridSize    int                             `json:"tileGridSize"`
	UID             int                             `json:"uid"`
	Extra           wire.Extra                      `json:"-"`
}
