package v092

import "github.com/milk9111/ldtk/wire"

type EntityDefinition struct {
	Color           string            `json:"color"`
	FieldDefs       []FieldDefinition `json:"fieldDefs"`
	FillOpacity     float64           `json:"fillOpacity"`
	Height          int               `json:"height"`
	Hollow          bool              `json:"hollow"`
	Identifier      string            `json:"identifier"`
	KeepAspectRatio bool              `json:"keepAspectRatio"`
	LimitBehavior   LimitBehavior     `json:"limitBehavior"`
	LimitScope      LimitScope        `json:"limitScope"`
	LineOpacity     float64           `json:"lineOpacity"`
	MaxCount        int               `json:"maxCount"`
	PivotX          float64           `json:"pivotX"`
	PivotY          float64           `json:"pivotY"`
	RenderMode      RenderMode        `json:"renderMode"`
	ResizableX      bool              `json:"resizableX"`
	ResizableY      bool              `json:"resizableY"`
	ShowName        bool              `json:"showName"`
	Tags            []string          `json:"tags"`
	TileID          wire.Field[int]   `json:"tileId"`
	TileRenderMode  TileRenderMode    `json:"tileRenderMode"`
	TilesetID       wire.Field[int]   `json:"tilesetId"`
	UID             int               `json:"uid"`
	Width           int               `json:"width"`
	Extra           wire.Extra        `json:"-"`
}

type FieldDefinition struct {
	FieldType           string                      `json:"__type"`
	AcceptFileTypes     wire.Field[[]string]        `json:"acceptFileTypes"`
	ArrayMaxLength      wire.Field[int]             `json:"arrayMaxLength"`
	ArrayMinLength      wire.Field[int]             `json:"arrayMinLength"`
	CanBeNull           bool                        `json:"canBeNull"`
	DefaultOverride     wire.Field[wire.Any]        `json:"defaultOverride"`
	EditorAlwaysShow    bool                        `json:"editorAlwaysShow"`
	EditorCutLongValues bool                        `json:"editorCutLongValues"`
	EditorDisplayMode   EditorDisplayMode           `json:"editorDisplayMode"`
	EditorDisplayPos    EditorDisplayPos            `json:"editorDisplayPos"`
	Identifier          string                      `json:"identifier"`
	IsArray             bool                        `json:"isArray"`
	Max                 wire.Field[float64]         `json:"max"`
	Min                 wire.Field[float64]         `json:"min"`
	Regex               wire.Field[string]          `json:"regex"`
	TextLangageMode     wire.Field[TextLangageMode] `json:"textLangageMode"`
	Type                wire.Field[wire.Any]        `json:"type"`
	UID                 int                         `json:"uid"`
	Extra               wire.Extra                  `json:"-"`
}

type EnumDefinition struct {
	ExternalFileChecksum wire.Field[string]    `json:"externalFileChecksum"`
	ExternalRelPath      wire.Field[string]    `json:"externalRelPath"`
	IconTilesetUID       wire.Field[int]       `json:"iconTilesetUid"`
	Identifier           string                `json:"identifier"`
	UID                  int                   `json:"uid"`
	Values               []EnumValueDefinition `json:"values"`
	Extra                wire.Extra            `json:"-"`
}

// Value finds an enum value by id.
func (e *EnumDefinition) Value(id string) (*EnumValueDefinition, bool) {
	for i := range e.Values {
		if e.Values[i].ID == id {
			return &e.Values[i], true
		}
	}
	return nil, false
}

type EnumValueDefinition struct {
	TileSrcRect wire.Field[[]int] `json:"__tileSrcRect"`
	Color       int               `json:"color"`
	ID          string            `json:"id"`
	TileID      wire.Field[int]   `json:"tileId"`
	Extra       wire.Extra        `json:"-"`
}

type LayerDefinition struct {
	Kind                  LayerType                `json:"__type"`
	AutoRuleGroups        []AutoLayerRuleGroup     `json:"autoRuleGroups"`
	AutoSourceLayerDefUID wire.Field[int]          `json:"autoSourceLayerDefUid"`
	AutoTilesetDefUID     wire.Field[int]          `json:"autoTilesetDefUid"`
	DisplayOpacity        float64                  `json:"displayOpacity"`
	ExcludedTags          []string                 `json:"excludedTags"`
	GridSize              int                      `json:"gridSize"`
	Identifier            string                   `json:"identifier"`
	IntGridValues         []IntGridValueDefinition `json:"intGridValues"`
	PxOffsetX             int                      `json:"pxOffsetX"`
	PxOffsetY             int                      `json:"pxOffsetY"`
	RequiredTags          []string                 `json:"requiredTags"`
	TilePivotX            float64                  `json:"tilePivotX"`
	TilePivotY            float64                  `json:"tilePivotY"`
	TilesetDefUID         wire.Field[int]          `json:"tilesetDefUid"`
	Type                  LayerType                `json:"type"`
	UID                   int                      `json:"uid"`
	Extra                 wire.Extra               `json:"-"`
}

type AutoLayerRuleGroup struct {
	Active     bool                      `json:"active"`
	Collapsed  bool                      `json:"collapsed"`
	IsOptional bool                      `json:"isOptional"`
	Name       string                    `json:"name"`
	Rules      []AutoLayerRuleDefinition `json:"rules"`
	UID        int                       `json:"uid"`
	Extra      wire.Extra                `json:"-"`
}

type AutoLayerRuleDefinition struct {
	Active           bool            `json:"active"`
	BreakOnMatch     bool            `json:"breakOnMatch"`
	Chance           float64         `json:"chance"`
	Checker          Checker         `json:"checker"`
	FlipX            bool            `json:"flipX"`
	FlipY            bool            `json:"flipY"`
	OutOfBoundsValue wire.Field[int] `json:"outOfBoundsValue"`
	Pattern          []int           `json:"pattern"`
	PerlinActive     bool            `json:"perlinActive"`
	PerlinOctaves    float64         `json:"perlinOctaves"`
	PerlinScale      float64         `json:"perlinScale"`
	PerlinSeed       float64         `json:"perlinSeed"`
	PivotX           float64         `json:"pivotX"`
	PivotY           float64         `json:"pivotY"`
	Size             int             `json:"size"`
	TileIDs          []int           `json:"tileIds"`
	TileMode         TileMode        `json:"tileMode"`
	UID              int             `json:"uid"`
	XModulo          int             `json:"xModulo"`
	YModulo          int             `json:"yModulo"`
	Extra            wire.Extra      `json:"-"`
}

type IntGridValueDefinition struct {
	Color      string             `json:"color"`
	Identifier wire.Field[string] `json:"identifier"`
	Value      int                `json:"value"`
	Extra      wire.Extra         `json:"-"`
}

type TilesetDefinition struct {
	CHei              int                             `json:"__cHei"`
	CWid              int                             `json:"__cWid"`
	CachedPixelData   wire.Field[map[string]wire.Any] `json:"cachedPixelData"`
	CustomData        []map[string]wire.Any           `json:"customData"`
	EnumTags          []map[string]wire.Any           `json:"enumTags"`
	Identifier        string                          `json:"identifier"`
	Padding           int                             `json:"padding"`
	PxHei             int                             `json:"pxHei"`
	PxWid             int                             `json:"pxWid"`
	RelPath           string                          `json:"relPath"`
	SavedSelections   []map[string]wire.Any           `json:"savedSelections"`
	Spacing           int                             `json:"spacing"`
	TagsSourceEnumUID wire.Field[int]                 `json:"tagsSourceEnumUid"`
	TileGridSize      int                             `json:"tileGridSize"`
	UID               int                             `json:"uid"`
	Extra             wire.Extra                      `json:"-"`
}
