// Package v113 models project files written by the LDtk 1.x editor series.
// Levels may live in the top level list or, for multi-world projects, inside
// Worlds; every instance carries an iid that references resolve against.
package v113

import "github.com/milk9111/ldtk/wire"

const JSONVersion = "1.1.3"

// Project is the root document. ExportPNG is deprecated in favour of
// ImageExportMode and is kept only so it survives a round trip.
type Project struct {
	ForcedRefs          wire.Field[ForcedRefs]  `json:"__FORCED_REFS"`
	AppBuildID          float64                 `json:"appBuildId"`
	BackupLimit         int                     `json:"backupLimit"`
	BackupOnSave        bool                    `json:"backupOnSave"`
	BgColor             string                  `json:"bgColor"`
	DefaultGridSize     int                     `json:"defaultGridSize"`
	DefaultLevelBgColor string                  `json:"defaultLevelBgColor"`
	DefaultLevelHeight  wire.Field[int]         `json:"defaultLevelHeight"`
	DefaultLevelWidth   wire.Field[int]         `json:"defaultLevelWidth"`
	DefaultPivotX       float64                 `json:"defaultPivotX"`
	DefaultPivotY       float64                 `json:"defaultPivotY"`
	Defs                Definitions             `json:"defs"`
	ExportPNG           wire.Field[bool]        `json:"exportPng"`
	ExportTiled         bool                    `json:"exportTiled"`
	ExternalLevels      bool                    `json:"externalLevels"`
	Flags               []Flag                  `json:"flags"`
	IdentifierStyle     IdentifierStyle         `json:"identifierStyle"`
	ImageExportMode     ImageExportMode         `json:"imageExportMode"`
	JSONVersion         string                  `json:"jsonVersion"`
	LevelNamePattern    string                  `json:"levelNamePattern"`
	Levels              []Level                 `json:"levels"`
	MinifyJSON          bool                    `json:"minifyJson"`
	NextUID             int                     `json:"nextUid"`
	PNGFilePattern      wire.Field[string]      `json:"pngFilePattern"`
	SimplifiedExport    bool                    `json:"simplifiedExport"`
	TutorialDesc        wire.Field[string]      `json:"tutorialDesc"`
	WorldGridHeight     wire.Field[int]         `json:"worldGridHeight"`
	WorldGridWidth      wire.Field[int]         `json:"worldGridWidth"`
	WorldLayout         wire.Field[WorldLayout] `json:"worldLayout"`
	Worlds              []World                 `json:"worlds"`
	Extra               wire.Extra              `json:"-"`
}

type Definitions struct {
	Entities      []EntityDefinition  `json:"entities"`
	Enums         []EnumDefinition    `json:"enums"`
	ExternalEnums []EnumDefinition    `json:"externalEnums"`
	Layers        []LayerDefinition   `json:"layers"`
	LevelFields   []FieldDefinition   `json:"levelFields"`
	Tilesets      []TilesetDefinition `json:"tilesets"`
	Extra         wire.Extra          `json:"-"`
}

type World struct {
	DefaultLevelHeight int                     `json:"defaultLevelHeight"`
	DefaultLevelWidth  int                     `json:"defaultLevelWidth"`
	Identifier         string                  `json:"identifier"`
	IID                string                  `json:"iid"`
	Levels             []Level                 `json:"levels"`
	WorldGridHeight    int                     `json:"worldGridHeight"`
	WorldGridWidth     int                     `json:"worldGridWidth"`
	WorldLayout        wire.Field[WorldLayout] `json:"worldLayout"`
	Extra              wire.Extra              `json:"-"`
}

// ForcedRefs only exists so the editor's schema generator emits every type.
// Real projects usually leave it out.
type ForcedRefs struct {
	AutoLayerRuleGroup   wire.Field[AutoLayerRuleGroup]           `json:"AutoLayerRuleGroup"`
	AutoRuleDef          wire.Field[AutoLayerRuleDefinition]      `json:"AutoRuleDef"`
	Definitions          wire.Field[Definitions]                  `json:"Definitions"`
	EntityDef            wire.Field[EntityDefinition]             `json:"EntityDef"`
	EntityInstance       wire.Field[EntityInstance]               `json:"EntityInstance"`
	EntityReferenceInfos wire.Field[FieldInstanceEntityReference] `json:"EntityReferenceInfos"`
	EnumDef              wire.Field[EnumDefinition]               `json:"EnumDef"`
	EnumDefValues        wire.Field[EnumValueDefinition]          `json:"EnumDefValues"`
	EnumTagValue         wire.Field[EnumTagValue]                 `json:"EnumTagValue"`
	FieldDef             wire.Field[FieldDefinition]              `json:"FieldDef"`
	FieldInstance        wire.Field[FieldInstance]                `json:"FieldInstance"`
	GridPoint            wire.Field[FieldInstanceGridPoint]       `json:"GridPoint"`
	IntGridValueDef      wire.Field[IntGridValueDefinition]       `json:"IntGridValueDef"`
	IntGridValueInstance wire.Field[IntGridValueInstance]         `json:"IntGridValueInstance"`
	LayerDef             wire.Field[LayerDefinition]              `json:"LayerDef"`
	LayerInstance        wire.Field[LayerInstance]                `json:"LayerInstance"`
	Level                wire.Field[Level]                        `json:"Level"`
	LevelBgPosInfos      wire.Field[LevelBackgroundPosition]      `json:"LevelBgPosInfos"`
	NeighbourLevel       wire.Field[NeighbourLevel]               `json:"NeighbourLevel"`
	Tile                 wire.Field[TileInstance]                 `json:"Tile"`
	TileCustomMetadata   wire.Field[TileCustomMetadata]           `json:"TileCustomMetadata"`
	TilesetDef           wire.Field[TilesetDefinition]            `json:"TilesetDef"`
	TilesetRect          wire.Field[TilesetRectangle]             `json:"TilesetRect"`
	World                wire.Field[World]                        `json:"World"`
	Extra                wire.Extra                               `json:"-"`
}

func (p *Project) Tileset(uid int) (*TilesetDefinition, bool) {
	for i := range p.Defs.Tilesets {
		if p.Defs.Tilesets[i].UID == uid {
			return &p.Defs.Tilesets[i], true
		}
	}
	return nil, false
}

func (p *Project) LayerDef(uid int) (*LayerDefinition, bool) {
	for i := range p.Defs.Layers {
		if p.Defs.Layers[i].UID == uid {
			return &p.Defs.Layers[i], true
		}
	}
	return nil, false
}

func (p *Project) EntityDef(uid int) (*EntityDefinition, bool) {
	for i := range p.Defs.Entities {
		if p.Defs.Entities[i].UID == uid {
			return &p.Defs.Entities[i], true
		}
	}
	return nil, false
}

// Enum searches local enums first, then external ones.
func (p *Project) Enum(uid int) (*EnumDefinition, bool) {
	for _, list := range [][]EnumDefinition{p.Defs.Enums, p.Defs.ExternalEnums} {
		for i := range list {
			if list[i].UID == uid {
				return &list[i], true
			}
		}
	}
	return nil, false
}

func (p *Project) LevelField(uid int) (*FieldDefinition, bool) {
	for i := range p.Defs.LevelFields {
		if p.Defs.LevelFields[i].UID == uid {
			return &p.Defs.LevelFields[i], true
		}
	}
	return nil, false
}

// AllLevels returns pointers to the top level levels followed by the levels
// of each world, in document order.
func (p *Project) AllLevels() []*Level {
	var out []*Level
	for i := range p.Levels {
		out = append(out, &p.Levels[i])
	}
	for w := range p.Worlds {
		for i := range p.Worlds[w].Levels {
			out = append(out, &p.Worlds[w].Levels[i])
		}
	}
	return out
}

func (p *Project) Level(uid int) (*Level, bool) {
	for _, l := range p.AllLevels() {
		if l.UID == uid {
			return l, true
		}
	}
	return nil, false
}

func (p *Project) LevelByIdentifier(identifier string) (*Level, bool) {
	for _, l := range p.AllLevels() {
		if l.Identifier == identifier {
			return l, true
		}
	}
	return nil, false
}

func (p *Project) LevelByIID(iid string) (*Level, bool) {
	for _, l := range p.AllLevels() {
		if l.IID == iid {
			return l, true
		}
	}
	return nil, false
}

func (p *Project) World(iid string) (*World, bool) {
	for i := range p.Worlds {
		if p.Worlds[i].IID == iid {
			return &p.Worlds[i], true
		}
	}
	return nil, false
}

// Entity follows an entity reference. It only sees levels whose layers are
// loaded; a reference into an unresolved external level reports false.
func (p *Project) Entity(ref FieldInstanceEntityReference) (*EntityInstance, bool) {
	l, ok := p.LevelByIID(ref.LevelIID)
	if !ok {
		return nil, false
	}
	return l.Entity(ref.EntityIID)
}
