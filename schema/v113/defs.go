package v113

import "github.com/milk9111/ldtk/wire"

// EntityDefinition describes an entity kind. TileID is superseded by TileRect
// and is only retained.
type EntityDefinition struct {
	Color            string                       `json:"color"`
	FieldDefs        []FieldDefinition            `json:"fieldDefs"`
	FillOpacity      float64                      `json:"fillOpacity"`
	Height           int                          `json:"height"`
	Hollow           bool                         `json:"hollow"`
	Identifier       string                       `json:"identifier"`
	KeepAspectRatio  bool                         `json:"keepAspectRatio"`
	LimitBehavior    LimitBehavior                `json:"limitBehavior"`
	LimitScope       LimitScope                   `json:"limitScope"`
	LineOpacity      float64                      `json:"lineOpacity"`
	MaxCount         int                          `json:"maxCount"`
	NineSliceBorders []int                        `json:"nineSliceBorders"`
	PivotX           float64                      `json:"pivotX"`
	PivotY           float64                      `json:"pivotY"`
	RenderMode       RenderMode                   `json:"renderMode"`
	ResizableX       bool                         `json:"resizableX"`
	ResizableY       bool                         `json:"resizableY"`
	ShowName         bool                         `json:"showName"`
	Tags             []string                     `json:"tags"`
	TileID           wire.Field[int]              `json:"tileId"`
	TileOpacity      float64                      `json:"tileOpacity"`
	TileRect         wire.Field[TilesetRectangle] `json:"tileRect"`
	TileRenderMode   TileRenderMode               `json:"tileRenderMode"`
	TilesetID        wire.Field[int]              `json:"tilesetId"`
	UID              int                          `json:"uid"`
	Width            int                          `json:"width"`
	Extra            wire.Extra                   `json:"-"`
}

type FieldDefinition struct {
	FieldType           string                       `json:"__type"`
	AcceptFileTypes     wire.Field[[]string]         `json:"acceptFileTypes"`
	AllowedRefs         AllowedRefs                  `json:"allowedRefs"`
	AllowedRefTags      []string                     `json:"allowedRefTags"`
	AllowOutOfLevelRef  bool                         `json:"allowOutOfLevelRef"`
	ArrayMaxLength      wire.Field[int]              `json:"arrayMaxLength"`
	ArrayMinLength      wire.Field[int]              `json:"arrayMinLength"`
	AutoChainRef        bool                         `json:"autoChainRef"`
	CanBeNull           bool                         `json:"canBeNull"`
	DefaultOverride     wire.Field[wire.Any]         `json:"defaultOverride"`
	EditorAlwaysShow    bool                         `json:"editorAlwaysShow"`
	EditorCutLongValues bool                         `json:"editorCutLongValues"`
	EditorDisplayMode   EditorDisplayMode            `json:"editorDisplayMode"`
	EditorDisplayPos    EditorDisplayPos             `json:"editorDisplayPos"`
	EditorTextPrefix    wire.Field[string]           `json:"editorTextPrefix"`
	EditorTextSuffix    wire.Field[string]           `json:"editorTextSuffix"`
	Identifier          string                       `json:"identifier"`
	IsArray             bool                         `json:"isArray"`
	Max                 wire.Field[float64]          `json:"max"`
	Min                 wire.Field[float64]          `json:"min"`
	Regex               wire.Field[string]           `json:"regex"`
	SymmetricalRef      bool                         `json:"symmetricalRef"`
	TextLanguageMode    wire.Field[TextLanguageMode] `json:"textLanguageMode"`
	TilesetUID          wire.Field[int]              `json:"tilesetUid"`
	Type                string                       `json:"type"`
	UID                 int                          `json:"uid"`
	UseForSmartColor    bool                         `json:"useForSmartColor"`
	Extra               wire.Extra                   `json:"-"`
}

// TilesetRectangle is a pixel rectangle inside a tileset.
type TilesetRectangle struct {
	H          int        `json:"h"`
	TilesetUID int        `json:"tilesetUid"`
	W          int        `json:"w"`
	X          int        `json:"x"`
	Y          int        `json:"y"`
	Extra      wire.Extra `json:"-"`
}

type EnumDefinition struct {
	ExternalFileChecksum wire.Field[string]    `json:"externalFileChecksum"`
	ExternalRelPath      wire.Field[string]    `json:"externalRelPath"`
	IconTilesetUID       wire.Field[int]       `json:"iconTilesetUid"`
	Identifier           string                `json:"identifier"`
	Tags                 []string              `json:"tags"`
	UID                  int                   `json:"uid"`
	Values               []EnumValueDefinition `json:"values"`
	Extra                wire.Extra            `json:"-"`
}

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

// LayerDefinition describes a layer kind. AutoTilesetDefUID only appears in
// projects saved before TilesetDefUID took over auto layers.
type LayerDefinition struct {
	Kind                   LayerType                `json:"__type"`
	AutoRuleGroups         []AutoLayerRuleGroup     `json:"autoRuleGroups"`
	AutoSourceLayerDefUID  wire.Field[int]          `json:"autoSourceLayerDefUid"`
	AutoTilesetDefUID      wire.Field[int]          `json:"autoTilesetDefUid"`
	DisplayOpacity         float64                  `json:"displayOpacity"`
	ExcludedTags           []string                 `json:"excludedTags"`
	GridSize               int                      `json:"gridSize"`
	GuideGridHei           int                      `json:"guideGridHei"`
	GuideGridWid           int                      `json:"guideGridWid"`
	HideFieldsWhenInactive bool                     `json:"hideFieldsWhenInactive"`
	HideInList             bool                     `json:"hideInList"`
	Identifier             string                   `json:"identifier"`
	InactiveOpacity        float64                  `json:"inactiveOpacity"`
	IntGridValues          []IntGridValueDefinition `json:"intGridValues"`
	ParallaxFactorX        float64                  `json:"parallaxFactorX"`
	ParallaxFactorY        float64                  `json:"parallaxFactorY"`
	ParallaxScaling        bool                     `json:"parallaxScaling"`
	PxOffsetX              int                      `json:"pxOffsetX"`
	PxOffsetY              int                      `json:"pxOffsetY"`
	RequiredTags           []string                 `json:"requiredTags"`
	TilePivotX             float64                  `json:"tilePivotX"`
	TilePivotY             float64                  `json:"tilePivotY"`
	TilesetDefUID          wire.Field[int]          `json:"tilesetDefUid"`
	Type                   LayerType                `json:"type"`
	UID                    int                      `json:"uid"`
	Extra                  wire.Extra               `json:"-"`
}

// IntGridValue finds the definition for a cell value.
func (l *LayerDefinition) IntGridValue(v int) (*IntGridValueDefinition, bool) {
	for i := range l.IntGridValues {
		if l.IntGridValues[i].Value == v {
			return &l.IntGridValues[i], true
		}
	}
	return nil, false
}

type AutoLayerRuleGroup struct {
	Active     bool                      `json:"active"`
	Collapsed  wire.Field[bool]          `json:"collapsed"`
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
	XOffset          int             `json:"xOffset"`
	YModulo          int             `json:"yModulo"`
	YOffset          int             `json:"yOffset"`
	Extra            wire.Extra      `json:"-"`
}

type IntGridValueDefinition struct {
	Color      string             `json:"color"`
	Identifier wire.Field[string] `json:"identifier"`
	Value      int                `json:"value"`
	Extra      wire.Extra         `json:"-"`
}

// TilesetDefinition describes a tileset image. RelPath is null for embedded
// atlases, which name themselves through EmbedAtlas instead.
type TilesetDefinition struct {
	CHei              int                             `json:"__cHei"`
	CWid              int                             `json:"__cWid"`
	CachedPixelData   wire.Field[map[string]wire.Any] `json:"cachedPixelData"`
	CustomData        []TileCustomMetadata            `json:"customData"`
	EmbedAtlas        wire.Field[EmbedAtlas]          `json:"embedAtlas"`
	EnumTags          []EnumTagValue                  `json:"enumTags"`
	Identifier        string                          `json:"identifier"`
	Padding           int                             `json:"padding"`
	PxHei             int                             `json:"pxHei"`
	PxWid             int                             `json:"pxWid"`
	RelPath           wire.Field[string]              `json:"relPath"`
	SavedSelections   []map[string]wire.Any           `json:"savedSelections"`
	Spacing           int                             `json:"spacing"`
	Tags              []string                        `json:"tags"`
	TagsSourceEnumUID wire.Field[int]                 `json:"tagsSourceEnumUid"`
	TileGridSize      int                             `json:"tileGridSize"`
	UID               int                             `json:"uid"`
	Extra             wire.Extra                      `json:"-"`
}

// TileData returns the custom data string attached to a tile id.
func (t *TilesetDefinition) TileData(tileID int) (string, bool) {
	for _, c := range t.CustomData {
		if c.TileID == tileID {
			return c.Data, true
		}
	}
	return "", false
}

type TileCustomMetadata struct {
	Data   string     `json:"data"`
	TileID int        `json:"tileId"`
	Extra  wire.Extra `json:"-"`
}

type EnumTagValue struct {
	EnumValueID string     `json:"enumValueId"`
	TileIDs     []int      `json:"tileIds"`
	Extra       wire.Extra `json:"-"`
}
